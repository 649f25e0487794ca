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

type leaf struct {
	x, y      float64
	fallSpeed float64
	swaySpeed float64
	swayPhase float64
	amplitude float64
	rotation  int
	glyph     rune
	color     tcell.Color
}

// LeafSystem drops autumn leaves that sway and flip while falling
type LeafSystem struct {
	leaves       *particle.Engine[leaf]
	spawnCounter int
	seeded       bool
}

func NewLeafSystem() *LeafSystem {
	s := &LeafSystem{}
	s.leaves = particle.New[leaf]((*leafBehavior)(s))
	return s
}

// MaxLeaves is the population cap at width w
func MaxLeaves(w int) int {
	return max(parameter.LeafMaxMin, w/parameter.LeafMaxDivisor)
}

// Leaves returns the live count
func (s *LeafSystem) Leaves() int {
	return s.leaves.Len()
}

func (s *LeafSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.leaves.Tick(b, rng, cv)
}

type leafBehavior LeafSystem

func (l *leafBehavior) Integrate(p *leaf, b particle.Bounds, rng *rand.Rand) {
	p.y += p.fallSpeed
	p.swayPhase += p.swaySpeed
	if p.swayPhase > 2*math.Pi {
		p.swayPhase -= 2 * math.Pi
	}
	p.x += math.Sin(p.swayPhase) * p.amplitude * parameter.LeafSwayScale
	p.rotation = max(int(math.Sin(p.swayPhase*2)*parameter.LeafRotationScale), 0)
}

func (l *leafBehavior) Alive(p *leaf, b particle.Bounds) bool {
	return p.y <= float64(b.Height) && p.x > -5 && p.x < float64(b.Width+5)
}

// Spawn seeds an initial scattered population once, then adds one leaf
// at the top on a fixed interval with a probability
func (l *leafBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(leaf)) {
	if !l.seeded {
		l.seeded = true
		n := max(parameter.LeafInitialMin, b.Width/parameter.LeafInitialDivisor)
		for range n {
			emit(newLeaf(b, rng.Float64()*float64(b.Height), rng))
		}
		return
	}

	l.spawnCounter++
	if l.spawnCounter < parameter.LeafSpawnInterval {
		return
	}
	l.spawnCounter = 0
	if live < MaxLeaves(b.Width) && particle.Chance(rng, parameter.LeafSpawnChance) {
		emit(newLeaf(b, -rng.Float64()*parameter.LeafSpawnHeightBand, rng))
	}
}

func newLeaf(b particle.Bounds, y float64, rng *rand.Rand) leaf {
	return leaf{
		x:         rng.Float64() * float64(b.Width),
		y:         y,
		fallSpeed: particle.Between(rng, parameter.LeafFallMin, parameter.LeafFallRange),
		swaySpeed: particle.Between(rng, parameter.LeafSwaySpeedMin, parameter.LeafSwaySpeedRange),
		swayPhase: rng.Float64() * 2 * math.Pi,
		amplitude: particle.Between(rng, parameter.LeafAmplitudeMin, parameter.LeafAmplitudeRange),
		glyph:     particle.Pick(rng, parameter.LeafGlyphs),
		color:     particle.Pick(rng, visual.LeafPalette),
	}
}

// Project swaps '*' and '+' on alternate rotation steps so leaves appear to tumble
func (l *leafBehavior) Project(p *leaf) (int, int, rune, tcell.Color, bool) {
	glyph := p.glyph
	switch p.rotation % 4 {
	case 1:
		if glyph == '*' {
			glyph = '+'
		}
	case 2:
		if glyph == '+' {
			glyph = '*'
		}
	}
	return int(p.x), int(p.y), glyph, p.color, p.y >= 0
}
