// Package particle runs the shared spawn/integrate/cull/render lifecycle.
// A system supplies a Behavior for its particle type; the Engine owns the
// live collection and applies the five steps in a fixed order every tick.
package particle

import (
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/render"
)

// Bounds is the terminal size a tick runs against
type Bounds struct {
	Width  int
	Height int
}

// Empty reports a zero-area terminal
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Behavior is the per-system policy plugged into an Engine
type Behavior[P any] interface {
	// Integrate advances one particle by one tick
	Integrate(p *P, b Bounds, rng *rand.Rand)
	// Alive reports whether a particle survives culling
	Alive(p *P, b Bounds) bool
	// Spawn emits new particles given the current live count
	Spawn(live int, b Bounds, rng *rand.Rand, emit func(P))
}

// Projector draws a particle as one cell; visible=false skips the draw
type Projector[P any] interface {
	Project(p *P) (x, y int, r rune, c tcell.Color, visible bool)
}

// Stamper draws a particle spanning several cells. Render prefers it over Projector.
type Stamper[P any] interface {
	Stamp(p *P, cv render.Canvas)
}

// Expirer is optionally implemented by a Behavior to observe culled particles
type Expirer[P any] interface {
	Expire(p *P, b Bounds, rng *rand.Rand)
}

// Engine owns a live particle collection driven by a Behavior
type Engine[P any] struct {
	behavior  Behavior[P]
	expirer   Expirer[P]
	projector Projector[P]
	stamper   Stamper[P]

	live   []P
	bounds Bounds

	// spawning gates step 4; disabled engines only age out
	spawning bool
}

// New creates an engine for the behavior
func New[P any](b Behavior[P]) *Engine[P] {
	e := &Engine[P]{
		behavior: b,
		spawning: true,
	}
	if x, ok := b.(Expirer[P]); ok {
		e.expirer = x
	}
	if st, ok := b.(Stamper[P]); ok {
		e.stamper = st
	} else if pr, ok := b.(Projector[P]); ok {
		e.projector = pr
	}
	return e
}

// Tick runs re-seat, integrate, cull, spawn, then render into cv
func (e *Engine[P]) Tick(b Bounds, rng *rand.Rand, cv render.Canvas) {
	e.Step(b, rng)
	e.Render(cv)
}

// Step runs the four simulation steps without drawing
func (e *Engine[P]) Step(b Bounds, rng *rand.Rand) {
	// 1. Re-seat: particles outside the new area fall to the cull below
	e.bounds = b

	// 2. Integrate
	for i := range e.live {
		e.behavior.Integrate(&e.live[i], b, rng)
	}

	// 3. Cull in place, preserving order
	n := 0
	for i := range e.live {
		if e.behavior.Alive(&e.live[i], b) {
			e.live[n] = e.live[i]
			n++
			continue
		}
		if e.expirer != nil {
			e.expirer.Expire(&e.live[i], b, rng)
		}
	}
	clear(e.live[n:])
	e.live = e.live[:n]

	// 4. Spawn
	if e.spawning && !b.Empty() {
		e.behavior.Spawn(len(e.live), b, rng, e.Add)
	}
}

// Render stamps or projects every live particle into cv. A behavior with
// neither hook is simulation-only.
func (e *Engine[P]) Render(cv render.Canvas) {
	switch {
	case e.stamper != nil:
		for i := range e.live {
			e.stamper.Stamp(&e.live[i], cv)
		}
	case e.projector != nil:
		for i := range e.live {
			if x, y, r, c, ok := e.projector.Project(&e.live[i]); ok {
				cv.Put(x, y, r, c)
			}
		}
	}
}

// Add appends a particle to the live collection
func (e *Engine[P]) Add(p P) {
	e.live = append(e.live, p)
}

// SetSpawning enables or disables the spawn step
func (e *Engine[P]) SetSpawning(on bool) {
	e.spawning = on
}

// Len returns the live count
func (e *Engine[P]) Len() int {
	return len(e.live)
}

// Bounds returns the size seen by the last Step
func (e *Engine[P]) Bounds() Bounds {
	return e.bounds
}

// Each visits every live particle
func (e *Engine[P]) Each(fn func(p *P)) {
	for i := range e.live {
		fn(&e.live[i])
	}
}

// AllAlive reports whether every live particle satisfies the behavior's predicate
func (e *Engine[P]) AllAlive() bool {
	for i := range e.live {
		if !e.behavior.Alive(&e.live[i], e.bounds) {
			return false
		}
	}
	return true
}

// Truncate keeps at most n particles, dropping the newest
func (e *Engine[P]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(e.live) {
		return
	}
	clear(e.live[n:])
	e.live = e.live[:n]
}

// Reset drops every live particle
func (e *Engine[P]) Reset() {
	clear(e.live)
	e.live = e.live[:0]
}
