package system

import (
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
	"github.com/lixenwraith/weathr/weather"
)

type wisp struct {
	x, y     float64
	speedX   float64
	glyph    rune
	color    tcell.Color
	age      int
	lifetime int
}

var fogColors = []tcell.Color{visual.Grey, visual.DarkGrey, visual.FogGrey}

// FogSystem keeps slow drifting wisps in a band above the ground
type FogSystem struct {
	wisps      *particle.Engine[wisp]
	intensity  weather.FogIntensity
	spawnTimer int
}

func NewFogSystem(intensity weather.FogIntensity) *FogSystem {
	s := &FogSystem{}
	s.wisps = particle.New[wisp]((*fogBehavior)(s))
	s.SetIntensity(intensity)
	return s
}

func (s *FogSystem) SetIntensity(intensity weather.FogIntensity) {
	if int(intensity) >= len(parameter.FogTiers) {
		intensity = weather.FogLight
	}
	s.intensity = intensity
}

// Target is the live wisp count aimed for at width w
func (s *FogSystem) Target(w int) int {
	return int(float64(w) * parameter.FogTiers[s.intensity].TargetPerWidth)
}

// Wisps returns the live wisp count
func (s *FogSystem) Wisps() int {
	return s.wisps.Len()
}

func (s *FogSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.wisps.Tick(b, rng, cv)
}

type fogBehavior FogSystem

func (f *fogBehavior) Integrate(p *wisp, b particle.Bounds, rng *rand.Rand) {
	p.x += p.speedX
	p.age++
}

func (f *fogBehavior) Alive(p *wisp, b particle.Bounds) bool {
	return p.age < p.lifetime &&
		p.x >= -parameter.FogSideMargin &&
		p.x < float64(b.Width+parameter.FogSideMargin) &&
		p.y < float64(b.Height)
}

// Spawn fires a small burst each time the countdown for the tier elapses
func (f *fogBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(wisp)) {
	s := (*FogSystem)(f)
	target := s.Target(b.Width)
	f.spawnTimer++
	if f.spawnTimer < parameter.FogTiers[s.intensity].SpawnDelay || live >= target {
		return
	}
	f.spawnTimer = 0

	ground := max(b.Height-parameter.GroundHeight, 0)
	top := max(ground-parameter.FogBandHeight, 0)
	for range min(parameter.FogSpawnBurst, target-live) {
		emit(wisp{
			x:        rng.Float64() * float64(b.Width),
			y:        float64(top) + rng.Float64()*parameter.FogBandHeight,
			speedX:   (rng.Float64() - 0.5) * parameter.FogDriftRange,
			glyph:    particle.Pick(rng, parameter.FogGlyphs),
			color:    particle.Pick(rng, fogColors),
			lifetime: parameter.FogLifetimeMin + rng.IntN(parameter.FogLifetimeRange),
		})
	}
}

func (f *fogBehavior) Project(p *wisp) (int, int, rune, tcell.Color, bool) {
	return int(p.x), int(p.y), p.glyph, p.color, p.x >= 0
}
