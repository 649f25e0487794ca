package system

import (
	"math/bits"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
	"github.com/lixenwraith/weathr/weather"
)

// Kind identifies one layer of the scene. Declaration order is paint order.
type Kind uint8

const (
	KindStars Kind = iota
	KindMoon
	KindSun
	KindClouds
	KindBirds
	KindAirplane
	KindUFO
	KindScene
	KindSmoke
	KindFireflies
	KindRain
	KindSnow
	KindLightning
	KindFog
	KindLeaves
	KindFlash
	kindCount
)

var kindNames = [kindCount]string{
	"stars", "moon", "sun", "clouds", "birds", "airplane", "ufo", "scene",
	"smoke", "fireflies", "rain", "snow", "lightning", "fog", "leaves", "flash",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Selection is a set of kinds
type Selection uint32

func (s Selection) Has(k Kind) bool {
	return s&(1<<k) != 0
}

func (s Selection) With(k Kind) Selection {
	return s | 1<<k
}

// Len returns the number of selected kinds
func (s Selection) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Kinds lists the selected kinds in paint order
func (s Selection) Kinds() []Kind {
	kinds := make([]Kind, 0, s.Len())
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Select decides which layers run for the given conditions
func Select(c weather.Conditions, leaves bool) Selection {
	var s Selection
	night := !c.Day
	precip := c.Precipitating()

	if night {
		s = s.With(KindStars).With(KindMoon)
	}
	if night && !precip && c.Temperature > parameter.FireflyMinTemperatureC &&
		(c.Condition == weather.Clear || c.Condition == weather.PartlyCloudy) {
		s = s.With(KindFireflies)
	}
	if c.Day && !precip {
		s = s.With(KindBirds)
		switch c.Condition {
		case weather.Clear, weather.PartlyCloudy, weather.Cloudy:
			s = s.With(KindSun)
		}
	}
	if c.Cloudy || c.Condition == weather.Clear {
		s = s.With(KindClouds)
	}
	if !precip && !c.Foggy {
		s = s.With(KindAirplane)
		if night {
			s = s.With(KindUFO)
		}
	}

	s = s.With(KindScene)
	if !c.Raining && !c.Thunderstorm {
		s = s.With(KindSmoke)
	}

	switch {
	case c.Thunderstorm:
		s = s.With(KindRain).With(KindLightning).With(KindFlash)
	case c.Raining:
		s = s.With(KindRain)
	}
	if c.Snowing {
		s = s.With(KindSnow)
	}
	if c.Foggy {
		s = s.With(KindFog)
	}
	if leaves && !precip {
		s = s.With(KindLeaves)
	}
	return s
}

// Backdrop is the static scene painted between the sky and the foreground
type Backdrop interface {
	Draw(cv render.Canvas, day bool)
	// Chimney returns the chimney tip for a w x h terminal
	Chimney(w, h int) (int, int)
}

type flasher interface {
	Flash()
}

// Manager owns one instance of every system and runs the selected ones in
// paint order each tick
type Manager struct {
	stars     *StarSystem
	moon      *MoonSystem
	sun       *SunCycler
	clouds    *CloudSystem
	birds     *BirdSystem
	airplane  *CraftSystem
	ufo       *CraftSystem
	smoke     *SmokeSystem
	fireflies *FireflySystem
	rain      *RainSystem
	snow      *SnowSystem
	lightning *LightningSystem
	fog       *FogSystem
	leaves    *LeafSystem

	backdrop  Backdrop
	leafMode  bool
	cond      weather.Conditions
	selection Selection
}

func NewManager(rng *rand.Rand, leaves bool) *Manager {
	return &Manager{
		stars:     NewStarSystem(),
		moon:      NewMoonSystem(),
		sun:       NewSunCycler(),
		clouds:    NewCloudSystem(),
		birds:     NewBirdSystem(),
		airplane:  NewAirplaneSystem(),
		ufo:       NewUFOSystem(),
		smoke:     NewSmokeSystem(),
		fireflies: NewFireflySystem(),
		rain:      NewRainSystem(weather.RainLight, rng),
		snow:      NewSnowSystem(weather.SnowMedium, rng),
		lightning: NewLightningSystem(rng),
		fog:       NewFogSystem(weather.FogMedium),
		leaves:    NewLeafSystem(),
		leafMode:  leaves,
	}
}

// SetBackdrop installs the scene painted by KindScene
func (m *Manager) SetBackdrop(b Backdrop) {
	m.backdrop = b
}

// OnStrike registers a hook run once per lightning strike
func (m *Manager) OnStrike(fn func()) {
	m.lightning.OnStrike = fn
}

// Apply retunes the systems for new conditions. Live particles are kept;
// only density, speed and wind targets change.
func (m *Manager) Apply(c weather.Conditions) {
	m.cond = c

	m.rain.SetIntensity(c.Rain)
	m.snow.SetIntensity(c.Snow)
	// Calm air means straight down, not the tier's base drift
	m.rain.SetWind(c.WindSpeed, c.WindDirection)
	m.snow.SetWind(c.WindSpeed, c.WindDirection)
	m.fog.SetIntensity(c.Fog)
	m.moon.SetPhase(c.MoonPhase)

	switch c.Condition {
	case weather.Clear:
		m.clouds.SetSky(visual.White, true)
	case weather.PartlyCloudy:
		m.clouds.SetSky(visual.Grey, false)
	default:
		m.clouds.SetSky(visual.DarkGrey, false)
	}

	next := Select(c, m.leafMode)
	if m.selection.Has(KindLightning) && !next.Has(KindLightning) {
		m.lightning.Reset()
	}
	m.selection = next
}

// Selection returns the kinds currently running
func (m *Manager) Selection() Selection {
	return m.selection
}

// Conditions returns the last applied conditions
func (m *Manager) Conditions() weather.Conditions {
	return m.cond
}

// Flashing reports whether the lightning flash covers this frame
func (m *Manager) Flashing() bool {
	return m.selection.Has(KindFlash) && m.lightning.Flashing()
}

// Tick advances and paints every selected layer in order
func (m *Manager) Tick(b particle.Bounds, rng *rand.Rand, cv render.Canvas, now time.Time) {
	for _, k := range m.selection.Kinds() {
		m.tickKind(k, b, rng, cv, now)
	}
}

func (m *Manager) tickKind(k Kind, b particle.Bounds, rng *rand.Rand, cv render.Canvas, now time.Time) {
	switch k {
	case KindStars:
		m.stars.Tick(b, rng, cv)
	case KindMoon:
		m.moon.Draw(cv)
	case KindSun:
		m.sun.Update(now)
		m.sun.Draw(cv)
	case KindClouds:
		m.clouds.Tick(b, rng, cv)
	case KindBirds:
		m.birds.Tick(b, rng, cv)
	case KindAirplane:
		m.airplane.Tick(b, rng, cv)
	case KindUFO:
		m.ufo.Tick(b, rng, cv)
	case KindScene:
		if m.backdrop != nil {
			m.backdrop.Draw(cv, m.cond.Day)
		}
	case KindSmoke:
		if m.backdrop != nil {
			m.smoke.SetOrigin(m.backdrop.Chimney(b.Width, b.Height))
		}
		m.smoke.Tick(b, rng, cv)
	case KindFireflies:
		m.fireflies.Tick(b, rng, cv)
	case KindRain:
		m.rain.Tick(b, rng, cv)
	case KindSnow:
		m.snow.Tick(b, rng, cv)
	case KindLightning:
		m.lightning.Tick(b, rng, cv)
	case KindFog:
		m.fog.Tick(b, rng, cv)
	case KindLeaves:
		m.leaves.Tick(b, rng, cv)
	case KindFlash:
		if f, ok := cv.(flasher); ok && m.lightning.Flashing() {
			f.Flash()
		}
	}
}
