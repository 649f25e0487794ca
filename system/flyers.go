package system

import (
	"math"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
)

// Birds

type bird struct {
	x, y      float64
	speed     float64
	flapTimer int
	wingsUp   bool
}

// BirdSystem flies a few flapping birds across the upper sky
type BirdSystem struct {
	birds *particle.Engine[bird]
}

func NewBirdSystem() *BirdSystem {
	return &BirdSystem{birds: particle.New[bird](birdBehavior{})}
}

// Birds returns the live count
func (s *BirdSystem) Birds() int {
	return s.birds.Len()
}

func (s *BirdSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.birds.Tick(b, rng, cv)
}

type birdBehavior struct{}

func (birdBehavior) Integrate(p *bird, b particle.Bounds, rng *rand.Rand) {
	p.x += p.speed
	p.flapTimer++
	if p.flapTimer > parameter.BirdFlapInterval {
		p.flapTimer = 0
		p.wingsUp = !p.wingsUp
	}
}

func (birdBehavior) Alive(p *bird, b particle.Bounds) bool {
	return p.x < float64(b.Width) && p.y < float64(b.Height)
}

func (birdBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(bird)) {
	if live >= parameter.BirdMax || !particle.Chance(rng, parameter.BirdSpawnChance) {
		return
	}
	emit(bird{
		y:     float64(particle.IntN(rng, b.Height/3)),
		speed: particle.Between(rng, parameter.BirdSpeedMin, parameter.BirdSpeedRange),
	})
}

func (birdBehavior) Project(p *bird) (int, int, rune, tcell.Color, bool) {
	glyph := '-'
	if p.wingsUp {
		glyph = 'v'
	}
	return int(p.x), int(p.y), glyph, visual.Yellow, true
}

// Art flyers: airplane and UFO share one engine type with per-kind art

var airplaneArt = []string{
	"           _",
	"         -=\\`\\",
	"     |\\ ____\\_\\__",
	"   -=\\c`\"\"\"\"\"\"\" \"`)",
	"      `~~~~~/ /~~`",
	"        -==/ /",
	"          '-'",
}

var ufoArt = []string{
	"    .---.    ",
	"  _/__~0_\\_  ",
	" (_________) ",
	"   *  *  *   ",
}

func airplaneColor(r rune) tcell.Color {
	switch r {
	case '"':
		return visual.Cyan
	case '\\':
		return visual.Blue
	case '_':
		return visual.DarkGrey
	case '~':
		return visual.Grey
	default:
		return visual.White
	}
}

func ufoColor(r rune) tcell.Color {
	switch r {
	case '~', '0':
		return visual.Green
	case '*':
		return visual.Cyan
	case '-', '_', '\\', '/', '(', ')', '.':
		return visual.Grey
	default:
		return visual.White
	}
}

type craft struct {
	x, y   float64
	speed  float64
	wobble float64
}

// craftProfile parameterizes an art flyer
type craftProfile struct {
	art         []string
	color       func(rune) tcell.Color
	chance      float64
	cooldownMin int
	cooldownRng int
	speedMin    float64
	speedRange  float64
	startX      float64
	leftMargin  float64
	rowDivisor  int
	wobbles     bool
}

var airplaneProfile = craftProfile{
	art:         airplaneArt,
	color:       airplaneColor,
	chance:      parameter.AirplaneSpawnChance,
	cooldownMin: parameter.AirplaneCooldownMin,
	cooldownRng: parameter.AirplaneCooldownRange,
	speedMin:    parameter.AirplaneSpeedMin,
	speedRange:  parameter.AirplaneSpeedRange,
	startX:      0,
	leftMargin:  0,
	rowDivisor:  4,
}

var ufoProfile = craftProfile{
	art:         ufoArt,
	color:       ufoColor,
	chance:      parameter.UFOSpawnChance,
	cooldownMin: parameter.UFOCooldownMin,
	cooldownRng: parameter.UFOCooldownRange,
	speedMin:    parameter.UFOSpeedMin,
	speedRange:  parameter.UFOSpeedRange,
	startX:      parameter.UFOStartX,
	leftMargin:  parameter.UFOLeftMargin,
	rowDivisor:  3,
	wobbles:     true,
}

// CraftSystem flies one piece of sky art at a time, separated by a cooldown
type CraftSystem struct {
	profile  craftProfile
	crafts   *particle.Engine[craft]
	cooldown int
}

// NewAirplaneSystem creates the airplane flyer
func NewAirplaneSystem() *CraftSystem {
	return newCraftSystem(airplaneProfile)
}

// NewUFOSystem creates the UFO flyer
func NewUFOSystem() *CraftSystem {
	return newCraftSystem(ufoProfile)
}

func newCraftSystem(profile craftProfile) *CraftSystem {
	s := &CraftSystem{profile: profile}
	s.crafts = particle.New[craft]((*craftBehavior)(s))
	return s
}

// Active reports whether a craft is on screen
func (s *CraftSystem) Active() bool {
	return s.crafts.Len() > 0
}

func (s *CraftSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.crafts.Tick(b, rng, cv)
}

type craftBehavior CraftSystem

func (cr *craftBehavior) Integrate(p *craft, b particle.Bounds, rng *rand.Rand) {
	p.x += p.speed
	if cr.profile.wobbles {
		p.wobble += parameter.UFOWobbleStep
		p.y += math.Sin(p.wobble) * parameter.UFOWobbleScale
	}
}

func (cr *craftBehavior) Alive(p *craft, b particle.Bounds) bool {
	return p.x < float64(b.Width) && p.x > cr.profile.leftMargin-1 && p.y < float64(b.Height)
}

// Spawn counts the cooldown down and then launches with a low probability
func (cr *craftBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(craft)) {
	if live > 0 {
		return
	}
	if cr.cooldown > 0 {
		cr.cooldown--
		return
	}
	if !particle.Chance(rng, cr.profile.chance) {
		return
	}
	cr.cooldown = cr.profile.cooldownMin + rng.IntN(cr.profile.cooldownRng)
	emit(craft{
		x:     cr.profile.startX,
		y:     float64(particle.IntN(rng, b.Height/cr.profile.rowDivisor)),
		speed: particle.Between(rng, cr.profile.speedMin, cr.profile.speedRange),
	})
}

// Stamp draws the art with transparent spaces
func (cr *craftBehavior) Stamp(p *craft, cv render.Canvas) {
	x0, y0 := int(p.x), int(p.y)
	for i, line := range cr.profile.art {
		col := x0
		for _, r := range line {
			if r != ' ' {
				cv.Put(col, y0+i, r, cr.profile.color(r))
			}
			col++
		}
	}
}
