package system

import (
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
)

type puff struct {
	x, y   float64
	drift  float64
	age    int
	maxAge int
}

// SmokeSystem rises puffs from a chimney tip
type SmokeSystem struct {
	puffs        *particle.Engine[puff]
	originX      int
	originY      int
	spawnCounter int
}

func NewSmokeSystem() *SmokeSystem {
	s := &SmokeSystem{}
	s.puffs = particle.New[puff]((*smokeBehavior)(s))
	return s
}

// SetOrigin moves the chimney tip; live puffs keep their position
func (s *SmokeSystem) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// Puffs returns the live count
func (s *SmokeSystem) Puffs() int {
	return s.puffs.Len()
}

func (s *SmokeSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.puffs.Tick(b, rng, cv)
}

type smokeBehavior SmokeSystem

func (sm *smokeBehavior) Integrate(p *puff, b particle.Bounds, rng *rand.Rand) {
	p.age++
	p.y -= parameter.SmokeRiseSpeed
	p.x += p.drift
}

func (sm *smokeBehavior) Alive(p *puff, b particle.Bounds) bool {
	return p.age < p.maxAge && p.y >= 0 && p.x < float64(b.Width) && p.y < float64(b.Height)
}

func (sm *smokeBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(puff)) {
	sm.spawnCounter++
	if sm.spawnCounter < parameter.SmokeSpawnInterval || live >= parameter.SmokeMaxParticles {
		return
	}
	sm.spawnCounter = 0
	emit(puff{
		x:      float64(sm.originX) + (rng.Float64()-0.5)*2,
		y:      float64(sm.originY),
		drift:  (rng.Float64() - 0.5) * parameter.SmokeDriftRange,
		maxAge: parameter.SmokeMaxAgeMin + rng.IntN(parameter.SmokeMaxAgeRange),
	})
}

// Project thins the glyph with age and fades the color by life fraction
func (sm *smokeBehavior) Project(p *puff) (int, int, rune, tcell.Color, bool) {
	var glyph rune
	switch {
	case p.age <= 6:
		glyph = 'o'
	case p.age <= 14:
		glyph = '.'
	case p.age <= 25:
		glyph = '~'
	default:
		glyph = '·'
	}

	ratio := float64(p.age) / float64(p.maxAge)
	color := visual.DarkGrey
	switch {
	case ratio < parameter.SmokeYoungRatio:
		color = visual.White
	case ratio < parameter.SmokeMiddleRatio:
		color = visual.Grey
	}
	return int(p.x), int(p.y), glyph, color, p.x >= 0
}
