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

type raindrop struct {
	x, y   float64
	speedX float64
	speedY float64
	glyph  rune
	color  tcell.Color
	near   bool
}

type splash struct {
	x, y  int
	frame int
}

// RainSystem drives falling drops in two depth layers plus ground splashes
type RainSystem struct {
	drops    *particle.Engine[raindrop]
	splashes *particle.Engine[splash]

	intensity weather.RainIntensity
	wind      float64
}

// NewRainSystem creates a rain system with a random initial wind direction
func NewRainSystem(intensity weather.RainIntensity, rng *rand.Rand) *RainSystem {
	s := &RainSystem{}
	s.drops = particle.New[raindrop]((*rainBehavior)(s))
	s.splashes = particle.New[splash](splashBehavior{})
	s.setIntensity(intensity, randomSign(rng))
	return s
}

func (s *RainSystem) tier() parameter.RainTier {
	return parameter.RainTiers[s.intensity]
}

// SetIntensity retunes density and speed, keeping the wind direction
func (s *RainSystem) SetIntensity(intensity weather.RainIntensity) {
	s.setIntensity(intensity, sign(s.wind))
}

func (s *RainSystem) setIntensity(intensity weather.RainIntensity, dir float64) {
	if int(intensity) >= len(parameter.RainTiers) {
		intensity = weather.RainLight
	}
	s.intensity = intensity
	s.wind = s.tier().BaseWind * dir
}

// SetWind replaces the drift with one derived from the weather reading
func (s *RainSystem) SetWind(speed, direction float64) {
	s.wind = windDrift(speed, direction, parameter.RainWindDivisor)
}

// Intensity returns the current tier
func (s *RainSystem) Intensity() weather.RainIntensity {
	return s.intensity
}

// Target is the live drop count aimed for at width w
func (s *RainSystem) Target(w int) int {
	return int(float64(w) * s.tier().TargetPerWidth)
}

// Drops returns the live drop count
func (s *RainSystem) Drops() int {
	return s.drops.Len()
}

// Splashes returns the live splash count
func (s *RainSystem) Splashes() int {
	return s.splashes.Len()
}

// Tick advances splashes before drops so a splash made this tick shows its first frame
func (s *RainSystem) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas) {
	s.splashes.Step(b, rng)
	s.drops.Step(b, rng)
	s.drops.Render(cv)
	s.splashes.Render(cv)
}

// rainBehavior is RainSystem viewed as the drop policy
type rainBehavior RainSystem

func (r *rainBehavior) Integrate(p *raindrop, b particle.Bounds, rng *rand.Rand) {
	p.y += p.speedY
	p.x += p.speedX
}

func (r *rainBehavior) Alive(p *raindrop, b particle.Bounds) bool {
	if p.y >= float64(b.Height-1) {
		return false
	}
	lo, hi := rainBand(b.Width)
	return p.x >= lo-parameter.RainSideMargin && p.x <= hi+parameter.RainSideMargin
}

// rainBand is the horizontal spawn range. It extends half a screen past each
// edge so wind-carried drops cover the upwind side.
func rainBand(w int) (lo, hi float64) {
	return -float64(w) / 2, float64(w) * 1.5
}

// Expire turns some near-layer ground hits into splashes
func (r *rainBehavior) Expire(p *raindrop, b particle.Bounds, rng *rand.Rand) {
	if !p.near || p.y < float64(b.Height-1) {
		return
	}
	if !particle.Chance(rng, (*RainSystem)(r).tier().SplashChance) {
		return
	}
	if r.splashes.Len() >= parameter.RainMaxSplashes {
		return
	}
	r.splashes.Add(splash{x: int(p.x), y: b.Height - 1})
}

func (r *rainBehavior) Spawn(live int, b particle.Bounds, rng *rand.Rand, emit func(raindrop)) {
	s := (*RainSystem)(r)
	tier := s.tier()
	target := s.Target(b.Width)
	burst := max(tier.SpawnPerTick, (target+parameter.RainFillTicks-1)/parameter.RainFillTicks)
	n := min(burst, target-live)
	for range n {
		emit(s.newDrop(tier, b, rng))
	}
}

func (s *RainSystem) newDrop(tier parameter.RainTier, b particle.Bounds, rng *rand.Rand) raindrop {
	near := rng.IntN(2) == 0
	speed, color := tier.FarSpeed, visual.DarkGrey
	if near {
		speed, color = tier.NearSpeed, tier.NearColor
	}

	lo, _ := rainBand(b.Width)
	glyph := particle.Pick(rng, tier.Glyphs)
	if s.intensity == weather.RainStorm {
		glyph = '/'
		if s.wind > 0 {
			glyph = '\\'
		}
	}

	return raindrop{
		x:      float64(particle.IntN(rng, b.Width*2)) + lo,
		y:      0,
		speedY: speed + rng.Float64()*parameter.RainSpeedJitter,
		speedX: s.wind + rng.Float64()*parameter.RainDriftJitter - parameter.RainDriftJitter/2,
		glyph:  glyph,
		color:  color,
		near:   near,
	}
}

func (r *rainBehavior) Project(p *raindrop) (int, int, rune, tcell.Color, bool) {
	glyph := p.glyph
	if r.intensity >= weather.RainHeavy {
		// Heavy drops lean with strong drift
		switch {
		case p.speedX > parameter.RainSlantThreshold:
			glyph = '\\'
		case p.speedX < -parameter.RainSlantThreshold:
			glyph = '/'
		}
	}
	return int(p.x), int(p.y), glyph, p.color, p.y >= 0
}

type splashBehavior struct{}

func (splashBehavior) Integrate(p *splash, b particle.Bounds, rng *rand.Rand) {
	p.frame++
}

func (splashBehavior) Alive(p *splash, b particle.Bounds) bool {
	return p.frame < parameter.RainSplashFrames && p.x < b.Width && p.y < b.Height
}

func (splashBehavior) Spawn(int, particle.Bounds, *rand.Rand, func(splash)) {}

func (splashBehavior) Project(p *splash) (int, int, rune, tcell.Color, bool) {
	return p.x, p.y, parameter.RainSplashGlyphs[p.frame], visual.White, true
}
