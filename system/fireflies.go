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

type firefly struct {
	x, y       float64
	vx, vy     float64
	glowPhase  float64
	glowSpeed  float64
	brightness int
}

// FireflySystem keeps a small glowing swarm just above the horizon
type FireflySystem struct {
	flies *particle.Engine[firefly]
}

func NewFireflySystem() *FireflySystem {
	s := &FireflySystem{}
	s.flies = particle.New[firefly](fireflyBehavior{})
	return s
}

// MaxFireflies is the population cap at width w
func MaxFireflies(w int) int {
	return max(parameter.FireflyMin, w/parameter.FireflyWidthDivisor)
}

// Fireflies returns the live count
func (s *FireflySystem) Fireflies() int {
	return s.flies.Len()
}

// Tick never culls; a shrink below the cap trims the newest flies instead
func (s *FireflySystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.flies.Step(b, rng)
	s.flies.Truncate(MaxFireflies(b.Width))
	s.flies.Render(cv)
}

// fireflyBand returns the vertical range flies bounce within
func fireflyBand(b particle.Bounds) (lo, hi float64) {
	horizon := max(b.Height-parameter.GroundHeight, 0)
	return float64(max(horizon-parameter.FireflyBandHeight, 0)), float64(max(horizon-1, 0))
}

type fireflyBehavior struct{}

func (fireflyBehavior) Integrate(p *firefly, b particle.Bounds, rng *rand.Rand) {
	p.x += p.vx
	p.y += p.vy

	if particle.Chance(rng, parameter.FireflyRerollChance) {
		p.vx = (rng.Float64() - 0.5) * parameter.FireflyDriftX
		p.vy = (rng.Float64() - 0.5) * parameter.FireflyDriftY
	}

	// Wrap horizontally
	w := float64(b.Width)
	if p.x < 0 {
		p.x = w
	} else if p.x > w {
		p.x = 0
	}

	// Bounce off the band edges
	lo, hi := fireflyBand(b)
	if p.y < lo {
		p.y = lo
		p.vy = math.Abs(p.vy)
	} else if p.y > hi {
		p.y = hi
		p.vy = -math.Abs(p.vy)
	}

	p.glowPhase += p.glowSpeed
	if p.glowPhase > 2*math.Pi {
		p.glowPhase -= 2 * math.Pi
	}
	p.brightness = int((math.Sin(p.glowPhase) + 1) / 2 * 255)
}

func (fireflyBehavior) Alive(*firefly, particle.Bounds) bool {
	return true
}

func (fireflyBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(firefly)) {
	if live >= MaxFireflies(b.Width) || !particle.Chance(rng, parameter.FireflySpawnChance) {
		return
	}
	lo, hi := fireflyBand(b)
	emit(firefly{
		x:         rng.Float64() * float64(b.Width),
		y:         lo + rng.Float64()*(hi-lo),
		vx:        (rng.Float64() - 0.5) * parameter.FireflyDriftX,
		vy:        (rng.Float64() - 0.5) * parameter.FireflyDriftY,
		glowPhase: rng.Float64() * 2 * math.Pi,
		glowSpeed: particle.Between(rng, parameter.FireflyGlowSpeedMin, parameter.FireflyGlowSpeedRange),
	})
}

// Project maps brightness onto a glyph staircase; dim flies are hidden
func (fireflyBehavior) Project(p *firefly) (int, int, rune, tcell.Color, bool) {
	x, y := int(p.x), int(p.y)
	switch {
	case p.brightness > parameter.FireflyBrightThreshold:
		return x, y, '*', visual.Yellow, true
	case p.brightness > parameter.FireflyMidThreshold:
		return x, y, '.', visual.FireflyGlow, true
	case p.brightness > parameter.FireflyDimThreshold:
		return x, y, '·', visual.FireflyDim, true
	default:
		return x, y, ' ', visual.DarkGrey, false
	}
}
