package particle

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/render"
)

type dot struct {
	x, y, vy float64
}

// fallBehavior drops dots straight down toward a live target
type fallBehavior struct {
	target  int
	expired int
}

func (f *fallBehavior) Integrate(p *dot, b Bounds, rng *rand.Rand) { p.y += p.vy }
func (f *fallBehavior) Alive(p *dot, b Bounds) bool {
	return p.y < float64(b.Height) && p.x >= 0 && p.x < float64(b.Width)
}
func (f *fallBehavior) Spawn(live int, b Bounds, rng *rand.Rand, emit func(dot)) {
	for i := live; i < f.target; i++ {
		emit(dot{x: float64(IntN(rng, b.Width)), vy: Between(rng, 0.5, 1)})
	}
}
func (f *fallBehavior) Project(p *dot) (int, int, rune, tcell.Color, bool) {
	return int(p.x), int(p.y), '|', tcell.ColorWhite, true
}
func (f *fallBehavior) Expire(p *dot, b Bounds, rng *rand.Rand) { f.expired++ }

type gridCanvas struct {
	w, h  int
	cells map[[2]int]rune
}

func (g *gridCanvas) Put(x, y int, r rune, c tcell.Color) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[[2]int{x, y}] = r
}
func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func TestEngineReachesTarget(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	fb := &fallBehavior{target: 20}
	e := New[dot](fb)
	b := Bounds{Width: 80, Height: 24}

	e.Step(b, rng)
	if e.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", e.Len())
	}
}

func TestEngineConservationWithoutSpawn(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	fb := &fallBehavior{target: 50}
	e := New[dot](fb)
	b := Bounds{Width: 80, Height: 24}

	e.Step(b, rng)
	e.SetSpawning(false)

	prev := e.Len()
	for i := 0; i < 100; i++ {
		e.Step(b, rng)
		if e.Len() > prev {
			t.Fatalf("tick %d: live count grew %d -> %d", i, prev, e.Len())
		}
		if !e.AllAlive() {
			t.Fatalf("tick %d: dead particle survived cull", i)
		}
		prev = e.Len()
	}
	if e.Len() != 0 {
		t.Errorf("all dots should have landed, %d left", e.Len())
	}
	if fb.expired != 50 {
		t.Errorf("expired = %d, want 50", fb.expired)
	}
}

func TestEngineResizeCulls(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	fb := &fallBehavior{target: 40}
	e := New[dot](fb)

	e.Step(Bounds{Width: 200, Height: 50}, rng)
	e.SetSpawning(false)
	e.Step(Bounds{Width: 20, Height: 50}, rng)

	e.Each(func(p *dot) {
		if p.x >= 20 {
			t.Errorf("particle at x=%.1f survived shrink to 20", p.x)
		}
	})
}

func TestEngineZeroBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	e := New[dot](&fallBehavior{target: 10})

	e.Step(Bounds{}, rng)
	if e.Len() != 0 {
		t.Errorf("spawned %d into an empty terminal", e.Len())
	}
}

func TestEngineRender(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	e := New[dot](&fallBehavior{})
	e.Add(dot{x: 3, y: 2})
	e.Add(dot{x: 500, y: 2})

	cv := &gridCanvas{w: 10, h: 5, cells: map[[2]int]rune{}}
	e.Tick(Bounds{Width: 10, Height: 5}, rng, cv)

	if e.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", e.Len())
	}
	if cv.cells[[2]int{3, 2}] != '|' {
		t.Error("surviving dot not drawn")
	}

	e.Reset()
	if e.Len() != 0 {
		t.Error("Reset left particles")
	}
}

func TestIntNGuardsZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	if got := IntN(rng, 0); got != 0 {
		t.Errorf("IntN(0) = %d", got)
	}
	if got := IntN(rng, -5); got != 0 {
		t.Errorf("IntN(-5) = %d", got)
	}
}

// barBehavior stamps a three-cell bar and also offers a single-cell projection
type barBehavior struct {
	fallBehavior
}

func (barBehavior) Stamp(p *dot, cv render.Canvas) {
	for dx := range 3 {
		cv.Put(int(p.x)+dx, int(p.y), '=', tcell.ColorWhite)
	}
}

// silentBehavior has no drawing hook
type silentBehavior struct{}

func (silentBehavior) Integrate(p *dot, b Bounds, rng *rand.Rand) {}
func (silentBehavior) Alive(p *dot, b Bounds) bool { return true }
func (silentBehavior) Spawn(live int, b Bounds, rng *rand.Rand, emit func(dot)) {}

func TestRenderPrefersStamp(t *testing.T) {
	e := New[dot](&barBehavior{})
	e.Add(dot{x: 10, y: 5})

	cv := &gridCanvas{w: 80, h: 24, cells: map[[2]int]rune{}}
	e.Render(cv)

	if len(cv.cells) != 3 {
		t.Fatalf("drew %d cells, want 3", len(cv.cells))
	}
	for dx := range 3 {
		if r := cv.cells[[2]int{10 + dx, 5}]; r != '=' {
			t.Errorf("cell (%d,5) = %q, want '='", 10+dx, r)
		}
	}
}

func TestRenderWithoutDrawHook(t *testing.T) {
	e := New[dot](silentBehavior{})
	e.Add(dot{x: 1, y: 1})

	cv := &gridCanvas{w: 80, h: 24, cells: map[[2]int]rune{}}
	e.Render(cv)
	if len(cv.cells) != 0 {
		t.Errorf("drew %d cells, want none", len(cv.cells))
	}
}
