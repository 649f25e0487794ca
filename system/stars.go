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

type star struct {
	x, y       int
	brightness float64
	phase      float64
}

type meteor struct {
	x, y   float64
	speedX float64
	speedY float64
}

// StarSystem twinkles a fixed star field in the upper half of the sky and
// occasionally sends a shooting star across it
type StarSystem struct {
	stars   *particle.Engine[star]
	meteors *particle.Engine[meteor]
}

func NewStarSystem() *StarSystem {
	s := &StarSystem{}
	s.stars = particle.New[star]((*starBehavior)(s))
	s.meteors = particle.New[meteor](meteorBehavior{})
	return s
}

// StarCount is the field density for a w x h terminal
func StarCount(w, h int) int {
	return w * h / parameter.StarDensity
}

// Stars returns the live star count
func (s *StarSystem) Stars() int {
	return s.stars.Len()
}

// ShootingStar reports whether a shooting star is in flight
func (s *StarSystem) ShootingStar() bool {
	return s.meteors.Len() > 0
}

func (s *StarSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.stars.Tick(b, rng, cv)
	s.meteors.Tick(b, rng, cv)
}

// Stamp paints the head and a trail that fades toward the night sky
func (meteorBehavior) Stamp(m *meteor, cv render.Canvas) {
	cv.Put(int(m.x), int(m.y), '*', visual.White)
	for i := 1; i < parameter.ShootingStarLength; i++ {
		tx := int(m.x - m.speedX*float64(i))
		ty := int(m.y - m.speedY*float64(i))
		glyph := '.'
		if i == 1 {
			glyph = '+'
		}
		fade := float64(i) / float64(parameter.ShootingStarLength)
		cv.Put(tx, ty, glyph, render.Blend(visual.White, visual.ShootingTail, fade))
	}
}

type starBehavior StarSystem

// Integrate advances the twinkle phase; brightness follows a sine of it
func (sb *starBehavior) Integrate(p *star, b particle.Bounds, rng *rand.Rand) {
	p.phase += parameter.StarTwinkleSpeed
	p.brightness = (math.Sin(p.phase) + 1) / 2
}

// Alive keeps stars that still fit the upper half after a resize
func (sb *starBehavior) Alive(p *star, b particle.Bounds) bool {
	return p.x < b.Width && p.y < b.Height/2
}

// Spawn fills the field up to its density using rejection sampling against
// a minimum distance. After StarMaxAttempts the last candidate is accepted
// even if it is too close.
func (sb *starBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(star)) {
	target := StarCount(b.Width, b.Height)
	if live >= target || b.Height/2 == 0 {
		return
	}

	placed := make([]star, 0, target)
	(*StarSystem)(sb).stars.Each(func(p *star) {
		placed = append(placed, *p)
	})

	for range target - live {
		var cand star
		for attempt := 0; ; attempt++ {
			cand = star{x: rng.IntN(b.Width), y: rng.IntN(b.Height / 2)}
			if attempt >= parameter.StarMaxAttempts || !tooClose(placed, cand) {
				break
			}
		}
		cand.brightness = rng.Float64()
		cand.phase = rng.Float64() * 2 * math.Pi
		placed = append(placed, cand)
		emit(cand)
	}
}

func tooClose(stars []star, c star) bool {
	for _, s := range stars {
		dx := float64(s.x - c.x)
		dy := float64(s.y - c.y)
		if math.Hypot(dx, dy) < parameter.StarMinDistance {
			return true
		}
	}
	return false
}

func (sb *starBehavior) Project(p *star) (int, int, rune, tcell.Color, bool) {
	glyph := '.'
	switch {
	case p.brightness > 0.8:
		glyph = '*'
	case p.brightness > 0.4:
		glyph = '+'
	}
	color := visual.DarkGrey
	if p.brightness > 0.6 {
		color = visual.White
	}
	return p.x, p.y, glyph, color, true
}

type meteorBehavior struct{}

func (meteorBehavior) Integrate(p *meteor, b particle.Bounds, rng *rand.Rand) {
	p.x += p.speedX
	p.y += p.speedY
}

func (meteorBehavior) Alive(p *meteor, b particle.Bounds) bool {
	return p.x >= 0 && p.x < float64(b.Width) && p.y < float64(b.Height)
}

// Spawn launches one shooting star at a time from the middle of the sky
func (meteorBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(meteor)) {
	if live > 0 || !particle.Chance(rng, parameter.ShootingStarChance) {
		return
	}
	emit(meteor{
		x:      float64(particle.IntN(rng, b.Width/2) + b.Width/4),
		y:      float64(particle.IntN(rng, b.Height/4)),
		speedX: parameter.ShootingStarSpeedX * randomSign(rng),
		speedY: particle.Between(rng, parameter.ShootingStarSpeedY, parameter.ShootingStarSpeedY),
	})
}
