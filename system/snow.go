package system

import (
	"math"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
	"github.com/lixenwraith/weathr/weather"
)

type snowflake struct {
	x, y       float64
	speedX     float64
	speedY     float64
	swayOffset float64
	glyph      rune
	color      tcell.Color
}

// SnowSystem drives flakes falling with wind drift and a per-flake sway
type SnowSystem struct {
	flakes *particle.Engine[snowflake]

	intensity weather.SnowIntensity
	wind      float64
}

// NewSnowSystem creates a snow system with a random initial wind direction
func NewSnowSystem(intensity weather.SnowIntensity, rng *rand.Rand) *SnowSystem {
	s := &SnowSystem{}
	s.flakes = particle.New[snowflake]((*snowBehavior)(s))
	s.setIntensity(intensity, randomSign(rng))
	return s
}

func (s *SnowSystem) tier() parameter.SnowTier {
	return parameter.SnowTiers[s.intensity]
}

// SetIntensity retunes density and speed, keeping the wind direction
func (s *SnowSystem) SetIntensity(intensity weather.SnowIntensity) {
	s.setIntensity(intensity, sign(s.wind))
}

func (s *SnowSystem) setIntensity(intensity weather.SnowIntensity, dir float64) {
	if int(intensity) >= len(parameter.SnowTiers) {
		intensity = weather.SnowLight
	}
	s.intensity = intensity
	s.wind = s.tier().BaseWind * dir
}

// SetWind replaces the drift with one derived from the weather reading
func (s *SnowSystem) SetWind(speed, direction float64) {
	s.wind = windDrift(speed, direction, parameter.SnowWindDivisor)
}

// Target is the live flake count aimed for at width w
func (s *SnowSystem) Target(w int) int {
	return int(float64(w) * s.tier().TargetPerWidth)
}

// Flakes returns the live flake count
func (s *SnowSystem) Flakes() int {
	return s.flakes.Len()
}

func (s *SnowSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.flakes.Tick(b, rng, cv)
}

type snowBehavior SnowSystem

func (sb *snowBehavior) Integrate(p *snowflake, b particle.Bounds, rng *rand.Rand) {
	p.y += p.speedY
	sway := math.Sin(p.y*parameter.SnowSwayFrequency+p.swayOffset) * parameter.SnowSwayAmplitude
	p.x += p.speedX + sway
}

func (sb *snowBehavior) Alive(p *snowflake, b particle.Bounds) bool {
	if p.y >= float64(b.Height-1) {
		return false
	}
	return p.x >= -parameter.SnowSideMargin && p.x <= float64(b.Width+parameter.SnowSideMargin)
}

func (sb *snowBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(snowflake)) {
	s := (*SnowSystem)(sb)
	tier := s.tier()
	n := min(tier.SpawnPerTick, s.Target(b.Width)-live)
	for range n {
		near := rng.IntN(2) == 0
		speed, color := tier.FarSpeed, visual.DarkGrey
		if near {
			speed, color = tier.NearSpeed, visual.White
		}
		emit(snowflake{
			// Wide spawn band so wind can carry flakes in from either side
			x:          float64(particle.IntN(rng, b.Width*3)) - float64(b.Width),
			speedY:     speed + rng.Float64()*parameter.SnowSpeedJitter,
			speedX:     s.wind + rng.Float64()*0.1 - 0.05,
			swayOffset: rng.Float64() * parameter.SnowSwayOffsetRange,
			glyph:      particle.Pick(rng, tier.Glyphs),
			color:      color,
		})
	}
}

func (sb *snowBehavior) Project(p *snowflake) (int, int, rune, tcell.Color, bool) {
	return int(p.x), int(p.y), p.glyph, p.color, p.y >= 0
}
