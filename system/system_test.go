package system

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/weather"
)

type testCell struct {
	r rune
	c tcell.Color
}

// gridCanvas is a bounds-checked canvas that can also flash
type gridCanvas struct {
	w, h    int
	cells   []testCell
	flashes int
}

func newGridCanvas(w, h int) *gridCanvas {
	g := &gridCanvas{w: w, h: h, cells: make([]testCell, w*h)}
	g.fill(' ')
	return g
}

func (g *gridCanvas) fill(r rune) {
	for i := range g.cells {
		g.cells[i] = testCell{r: r, c: tcell.ColorReset}
	}
}

func (g *gridCanvas) Put(x, y int, r rune, c tcell.Color) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = testCell{r: r, c: c}
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func (g *gridCanvas) Flash() { g.flashes++ }

func (g *gridCanvas) at(x, y int) testCell { return g.cells[y*g.w+x] }

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestRainStormReachesTarget(t *testing.T) {
	rng := newRNG(1)
	s := NewRainSystem(weather.RainStorm, rng)
	b := particle.Bounds{Width: 100, Height: 30}
	cv := newGridCanvas(b.Width, b.Height)

	target := s.Target(b.Width)
	if target != 150 {
		t.Fatalf("Target(100) = %d, want 150", target)
	}

	reached := -1
	for tick := range 50 {
		s.Tick(b, rng, cv)
		if s.Drops() > target {
			t.Fatalf("tick %d: %d drops exceeds target %d", tick, s.Drops(), target)
		}
		if s.Drops() == target {
			reached = tick
			break
		}
	}
	if reached < 0 || reached > parameter.RainFillTicks {
		t.Errorf("target reached at tick %d, want within %d ticks", reached, parameter.RainFillTicks)
	}
}

func TestRainSplashesOnGround(t *testing.T) {
	rng := newRNG(7)
	s := NewRainSystem(weather.RainHeavy, rng)
	b := particle.Bounds{Width: 80, Height: 24}
	cv := newGridCanvas(b.Width, b.Height)

	seen := false
	for range 300 {
		s.Tick(b, rng, cv)
		if s.Splashes() > parameter.RainMaxSplashes {
			t.Fatalf("%d splashes exceeds cap", s.Splashes())
		}
		if s.Splashes() > 0 {
			seen = true
		}
	}
	if !seen {
		t.Error("no splash after 300 ticks of heavy rain")
	}
}

func TestIntensityScaling(t *testing.T) {
	for _, w := range []int{0, 1, 70, 100, 237} {
		rain := NewRainSystem(weather.RainDrizzle, newRNG(1))
		prev := -1
		for _, in := range []weather.RainIntensity{weather.RainDrizzle, weather.RainLight, weather.RainHeavy, weather.RainStorm} {
			rain.SetIntensity(in)
			if got := rain.Target(w); got < prev {
				t.Errorf("rain w=%d tier %d: target %d < previous %d", w, in, got, prev)
			} else {
				prev = got
			}
		}

		snow := NewSnowSystem(weather.SnowLight, newRNG(1))
		prev = -1
		for _, in := range []weather.SnowIntensity{weather.SnowLight, weather.SnowMedium, weather.SnowHeavy} {
			snow.SetIntensity(in)
			if got := snow.Target(w); got < prev {
				t.Errorf("snow w=%d tier %d: target %d < previous %d", w, in, got, prev)
			} else {
				prev = got
			}
		}

		fog := NewFogSystem(weather.FogLight)
		prev = -1
		for _, in := range []weather.FogIntensity{weather.FogLight, weather.FogMedium, weather.FogHeavy} {
			fog.SetIntensity(in)
			if got := fog.Target(w); got < prev {
				t.Errorf("fog w=%d tier %d: target %d < previous %d", w, in, got, prev)
			} else {
				prev = got
			}
		}
	}
}

func TestSetIntensityKeepsDrops(t *testing.T) {
	rng := newRNG(3)
	s := NewRainSystem(weather.RainHeavy, rng)
	b := particle.Bounds{Width: 80, Height: 24}
	cv := newGridCanvas(b.Width, b.Height)
	for range 5 {
		s.Tick(b, rng, cv)
	}
	before := s.Drops()
	s.SetIntensity(weather.RainDrizzle)
	if s.Drops() != before {
		t.Errorf("SetIntensity changed drops %d -> %d", before, s.Drops())
	}
	if s.Intensity() != weather.RainDrizzle {
		t.Errorf("Intensity() = %v, want drizzle", s.Intensity())
	}
}

func TestConservationWithoutSpawn(t *testing.T) {
	b := particle.Bounds{Width: 90, Height: 26}
	cv := newGridCanvas(b.Width, b.Height)

	t.Run("rain", func(t *testing.T) {
		rng := newRNG(11)
		s := NewRainSystem(weather.RainStorm, rng)
		for range 10 {
			s.Tick(b, rng, cv)
		}
		s.drops.SetSpawning(false)
		prev := s.Drops()
		for tick := range 60 {
			s.Tick(b, rng, cv)
			if s.Drops() > prev {
				t.Fatalf("tick %d: drops grew %d -> %d", tick, prev, s.Drops())
			}
			prev = s.Drops()
			behavior := (*rainBehavior)(s)
			s.drops.Each(func(p *raindrop) {
				if !behavior.Alive(p, b) {
					t.Fatalf("tick %d: dead drop kept at (%.1f,%.1f)", tick, p.x, p.y)
				}
			})
		}
		if s.Drops() != 0 {
			t.Errorf("drops = %d after 60 ticks without spawning, want 0", s.Drops())
		}
	})

	t.Run("snow", func(t *testing.T) {
		rng := newRNG(12)
		s := NewSnowSystem(weather.SnowHeavy, rng)
		for range 40 {
			s.Tick(b, rng, cv)
		}
		s.flakes.SetSpawning(false)
		prev := s.Flakes()
		for tick := range 200 {
			s.Tick(b, rng, cv)
			if s.Flakes() > prev {
				t.Fatalf("tick %d: flakes grew %d -> %d", tick, prev, s.Flakes())
			}
			prev = s.Flakes()
		}
	})
}

// drainWithoutSpawn ticks with spawning off and checks the population never
// grows and only holds particles the behavior considers alive
func drainWithoutSpawn[P any](t *testing.T, e *particle.Engine[P], tick func(), ticks int) {
	t.Helper()
	e.SetSpawning(false)
	prev := e.Len()
	for i := range ticks {
		tick()
		if e.Len() > prev {
			t.Fatalf("tick %d: population grew %d -> %d", i, prev, e.Len())
		}
		if !e.AllAlive() {
			t.Fatalf("tick %d: dead particle survived cull", i)
		}
		prev = e.Len()
	}
}

func TestAmbientConservationWithoutSpawn(t *testing.T) {
	b := particle.Bounds{Width: 90, Height: 26}
	cv := newGridCanvas(b.Width, b.Height)

	t.Run("fog", func(t *testing.T) {
		rng := newRNG(21)
		s := NewFogSystem(weather.FogHeavy)
		for range 60 {
			s.Tick(b, rng, cv)
		}
		if s.wisps.Len() == 0 {
			t.Fatal("fog produced no wisps")
		}
		drainWithoutSpawn(t, s.wisps, func() { s.Tick(b, rng, cv) }, 3000)
	})

	t.Run("leaves", func(t *testing.T) {
		rng := newRNG(22)
		s := NewLeafSystem()
		for range 200 {
			s.Tick(b, rng, cv)
		}
		if s.Leaves() == 0 {
			t.Fatal("no leaves spawned")
		}
		drainWithoutSpawn(t, s.leaves, func() { s.Tick(b, rng, cv) }, 3000)
		if s.Leaves() != 0 {
			t.Errorf("leaves = %d after draining, want 0", s.Leaves())
		}
	})

	t.Run("smoke", func(t *testing.T) {
		rng := newRNG(23)
		s := NewSmokeSystem()
		s.SetOrigin(40, 12)
		for range 100 {
			s.Tick(b, rng, cv)
		}
		if s.Puffs() == 0 {
			t.Fatal("no smoke puffs spawned")
		}
		drainWithoutSpawn(t, s.puffs, func() { s.Tick(b, rng, cv) }, 3000)
		if s.Puffs() != 0 {
			t.Errorf("puffs = %d after draining, want 0", s.Puffs())
		}
	})

	t.Run("clouds", func(t *testing.T) {
		rng := newRNG(24)
		s := NewCloudSystem()
		s.SetSky(visual.Grey, false)
		for range 20 {
			s.Tick(b, rng, cv)
		}
		if s.Clouds() == 0 {
			t.Fatal("no clouds seeded")
		}
		drainWithoutSpawn(t, s.clouds, func() { s.Tick(b, rng, cv) }, 3000)
	})

	t.Run("stars", func(t *testing.T) {
		rng := newRNG(25)
		s := NewStarSystem()
		s.Tick(b, rng, cv)
		s.meteors.Add(meteor{x: 45, y: 2, speedX: 1, speedY: 0.3})
		s.meteors.SetSpawning(false)
		drainWithoutSpawn(t, s.stars, func() { s.Tick(b, rng, cv) }, 500)
		if s.ShootingStar() {
			t.Error("shooting star still in flight after crossing the sky")
		}
		if !s.meteors.AllAlive() {
			t.Error("dead shooting star survived cull")
		}
	})

	t.Run("birds", func(t *testing.T) {
		rng := newRNG(26)
		s := NewBirdSystem()
		s.birds.Add(bird{x: 0, y: 3, speed: 0.5})
		drainWithoutSpawn(t, s.birds, func() { s.Tick(b, rng, cv) }, 3000)
		if s.Birds() != 0 {
			t.Errorf("birds = %d after draining, want 0", s.Birds())
		}
	})

	t.Run("airplane", func(t *testing.T) {
		rng := newRNG(27)
		s := NewAirplaneSystem()
		s.crafts.Add(craft{x: 0, y: 2, speed: 0.5})
		drainWithoutSpawn(t, s.crafts, func() { s.Tick(b, rng, cv) }, 3000)
		if s.Active() {
			t.Error("airplane still active after crossing the screen")
		}
	})

	t.Run("ufo", func(t *testing.T) {
		rng := newRNG(28)
		s := NewUFOSystem()
		s.crafts.Add(craft{x: parameter.UFOStartX, y: 2, speed: 0.5})
		drainWithoutSpawn(t, s.crafts, func() { s.Tick(b, rng, cv) }, 3000)
		if s.Active() {
			t.Error("UFO still active after crossing the screen")
		}
	})
}

func TestMultiCellArtIsStamped(t *testing.T) {
	b := particle.Bounds{Width: 80, Height: 24}
	rng := newRNG(29)

	t.Run("cloud", func(t *testing.T) {
		cv := newGridCanvas(b.Width, b.Height)
		cv.fill('#')
		s := NewCloudSystem()
		s.SetSky(visual.DarkGrey, false)
		s.clouds.SetSpawning(false)
		s.clouds.Add(cloud{x: 5, y: 2, shape: 0})
		s.Tick(b, rng, cv)

		// "   .--.   " is opaque: its leading spaces cover the canvas
		if got := cv.at(5, 2); got.r != ' ' || got.c != visual.DarkGrey {
			t.Errorf("cell (5,2) = %q %v, want opaque space", got.r, got.c)
		}
		if got := cv.at(8, 2); got.r != '.' || got.c != visual.DarkGrey {
			t.Errorf("cell (8,2) = %q %v, want '.' in sky color", got.r, got.c)
		}
	})

	t.Run("airplane", func(t *testing.T) {
		cv := newGridCanvas(b.Width, b.Height)
		cv.fill('#')
		s := NewAirplaneSystem()
		s.crafts.SetSpawning(false)
		s.crafts.Add(craft{x: 5, y: 2})
		s.Tick(b, rng, cv)

		if got := cv.at(16, 2); got.r != '_' || got.c != visual.DarkGrey {
			t.Errorf("cell (16,2) = %q %v, want '_' dark grey", got.r, got.c)
		}
		if got := cv.at(5, 2); got.r != '#' {
			t.Errorf("cell (5,2) = %q, want transparent space", got.r)
		}
	})
}

func TestFirefliesCapped(t *testing.T) {
	rng := newRNG(5)
	s := NewFireflySystem()
	wide := particle.Bounds{Width: 150, Height: 40}
	cv := newGridCanvas(wide.Width, wide.Height)

	for tick := range 3000 {
		s.Tick(wide, rng, cv)
		if s.Fireflies() > MaxFireflies(wide.Width) {
			t.Fatalf("tick %d: %d fireflies > %d", tick, s.Fireflies(), MaxFireflies(wide.Width))
		}
	}
	if s.Fireflies() == 0 {
		t.Fatal("no fireflies spawned")
	}

	narrow := particle.Bounds{Width: 30, Height: 20}
	small := newGridCanvas(narrow.Width, narrow.Height)
	for tick := range 100 {
		s.Tick(narrow, rng, small)
		if s.Fireflies() > MaxFireflies(narrow.Width) {
			t.Fatalf("tick %d after shrink: %d fireflies > %d", tick, s.Fireflies(), MaxFireflies(narrow.Width))
		}
	}

	if MaxFireflies(0) != parameter.FireflyMin {
		t.Errorf("MaxFireflies(0) = %d, want %d", MaxFireflies(0), parameter.FireflyMin)
	}
}

func TestLightningCycle(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42} {
		rng := newRNG(seed)
		s := NewLightningSystem(rng)
		b := particle.Bounds{Width: 100, Height: 30}
		strikes := 0
		s.OnStrike = func() { strikes++ }

		if s.State() != LightningIdle {
			t.Fatalf("seed %d: initial state %v", seed, s.State())
		}

		flashAt := -1
		for tick := range 1000 {
			s.Step(b, rng)
			if s.Flashing() {
				flashAt = tick
				break
			}
		}
		if flashAt < 0 {
			t.Fatalf("seed %d: no flash within 1000 ticks", seed)
		}
		if s.State() != LightningFlash {
			t.Errorf("seed %d: flashing in state %v", seed, s.State())
		}
		if strikes != 1 {
			t.Errorf("seed %d: OnStrike called %d times, want 1", seed, strikes)
		}
		if s.Bolts() == 0 {
			t.Errorf("seed %d: no bolt during flash", seed)
		}

		idle := false
		for range parameter.LightningFlashTicks + parameter.LightningBoltMaxAge + 5 {
			s.Step(b, rng)
			if s.State() == LightningIdle {
				idle = true
				break
			}
		}
		if !idle {
			t.Errorf("seed %d: did not return to idle, state %v", seed, s.State())
		}
		if s.Flashing() || s.Bolts() != 0 {
			t.Errorf("seed %d: idle with flashing=%v bolts=%d", seed, s.Flashing(), s.Bolts())
		}
	}
}

func TestLightningBoltQueueBounded(t *testing.T) {
	rng := newRNG(9)
	s := NewLightningSystem(rng)
	b := particle.Bounds{Width: 80, Height: 24}
	for range 25 {
		s.push(generateBolt(b, rng))
	}
	if s.Bolts() != parameter.LightningMaxBolts {
		t.Errorf("Bolts() = %d, want %d", s.Bolts(), parameter.LightningMaxBolts)
	}
}

func TestGenerateBolt(t *testing.T) {
	rng := newRNG(4)
	b := particle.Bounds{Width: 80, Height: 24}
	for range 50 {
		bolt := generateBolt(b, rng)
		if len(bolt.Segments) == 0 {
			t.Fatal("empty bolt")
		}
		head := bolt.Segments[0]
		if head.Glyph != '+' || head.Y != parameter.LightningTopRow {
			t.Errorf("head = %+v", head)
		}
		for _, seg := range bolt.Segments {
			if seg.Y >= b.Height || seg.Y < 0 {
				t.Errorf("segment %+v outside rows", seg)
			}
		}
	}

	if bolt := generateBolt(particle.Bounds{Width: 5, Height: 5}, rng); len(bolt.Segments) != 0 {
		t.Errorf("tiny terminal bolt has %d segments", len(bolt.Segments))
	}
}

func TestMoonBodyIsOpaque(t *testing.T) {
	cv := newGridCanvas(80, 24)
	cv.fill('*')
	m := NewMoonSystem()
	m.SetPhase(0.5)
	if m.Step() != 4 {
		t.Fatalf("Step() = %d, want 4", m.Step())
	}
	m.Draw(cv)

	x, y := m.Position(80, 24)
	if x != 60 || y != 6 {
		t.Fatalf("Position = (%d,%d), want (60,6)", x, y)
	}
	// Row 2 of the full moon: "    :~~~~~o~~~:   "
	if got := cv.at(x+5, y+2); got.r != ' ' || got.c != visual.White {
		t.Errorf("body cell = %q %v, want blank white", got.r, got.c)
	}
	if got := cv.at(x+4, y+2); got.r != ':' {
		t.Errorf("rim cell = %q, want ':'", got.r)
	}
	if got := cv.at(x, y+2); got.r != '*' {
		t.Errorf("transparent cell = %q, want star kept", got.r)
	}
}

func TestMoonPhaseSteps(t *testing.T) {
	tests := []struct {
		phase float64
		want  int
	}{
		{0, 0},
		{0.06, 0},
		{0.125, 1},
		{0.5, 4},
		{0.74, 6},
		{0.97, 0},
		{1.25, 2},
	}
	m := NewMoonSystem()
	for _, tt := range tests {
		m.SetPhase(tt.phase)
		if got := m.Step(); got != tt.want {
			t.Errorf("phase %v: Step() = %d, want %d", tt.phase, got, tt.want)
		}
	}
}

func TestStarsFillUpperHalf(t *testing.T) {
	rng := newRNG(21)
	s := NewStarSystem()
	b := particle.Bounds{Width: 80, Height: 24}
	cv := newGridCanvas(b.Width, b.Height)
	s.Tick(b, rng, cv)

	if s.Stars() != StarCount(80, 24) {
		t.Fatalf("Stars() = %d, want %d", s.Stars(), StarCount(80, 24))
	}
	s.stars.Each(func(p *star) {
		if p.y >= b.Height/2 || p.x >= b.Width {
			t.Errorf("star at (%d,%d) outside upper half", p.x, p.y)
		}
	})

	// Shrinking keeps only stars that still fit
	small := particle.Bounds{Width: 40, Height: 20}
	s.Tick(small, rng, newGridCanvas(40, 20))
	s.stars.Each(func(p *star) {
		if p.y >= small.Height/2 || p.x >= small.Width {
			t.Errorf("star at (%d,%d) kept after shrink", p.x, p.y)
		}
	})
	if s.Stars() < StarCount(40, 20) {
		t.Errorf("Stars() = %d after shrink, want at least %d", s.Stars(), StarCount(40, 20))
	}
}

func TestSunCycler(t *testing.T) {
	s := NewSunCycler()
	start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	s.Update(start)
	if s.Frame() != 0 {
		t.Fatalf("Frame() = %d, want 0", s.Frame())
	}
	s.Update(start.Add(parameter.SunFramePeriod / 2))
	if s.Frame() != 0 {
		t.Errorf("frame advanced before period")
	}
	s.Update(start.Add(parameter.SunFramePeriod))
	if s.Frame() != 1 {
		t.Errorf("Frame() = %d after one period, want 1", s.Frame())
	}
	s.Update(start.Add(2 * parameter.SunFramePeriod))
	if s.Frame() != 0 {
		t.Errorf("Frame() = %d after two periods, want 0", s.Frame())
	}

	cv := newGridCanvas(80, 30)
	s.Draw(cv)
	found := false
	for _, c := range cv.cells {
		if c.r != ' ' && c.c == visual.Yellow {
			found = true
			break
		}
	}
	if !found {
		t.Error("sun drew nothing")
	}
}
