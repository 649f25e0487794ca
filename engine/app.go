// Package engine runs the frame loop: input and resize handling, weather
// updates, painting every layer and flushing the frame difference.
package engine

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/particle"
	"github.com/lixenwraith/weathr/render"
	"github.com/lixenwraith/weathr/scene"
	"github.com/lixenwraith/weathr/system"
	"github.com/lixenwraith/weathr/terminal"
	"github.com/lixenwraith/weathr/weather"
)

// Options configures an App
type Options struct {
	Units        weather.Units
	Location     weather.Location
	HideLocation bool
	HideHUD      bool
	// Night forces night regardless of the reading
	Night  bool
	Leaves bool
	// HUDColor overrides the status line color when valid
	HUDColor tcell.Color
	// OnStrike runs once per lightning strike
	OnStrike func()
}

// App owns the terminal, compositor, systems and HUD for one session
type App struct {
	term    terminal.Terminal
	comp    *render.Compositor
	manager *system.Manager
	scene   *scene.Scene
	hud     *HUD
	rng     *rand.Rand
	updates <-chan weather.Update
	opts    Options
	now     func() time.Time

	frames uint64
}

// New builds an App drawing through out. updates is the single-slot channel
// a weather.Service publishes into; it may be nil in simulate mode.
func New(term terminal.Terminal, out render.Emitter, updates <-chan weather.Update, rng *rand.Rand, opts Options) *App {
	w, h := term.Size()
	a := &App{
		term:    term,
		comp:    render.NewCompositor(out, term.ColorSupport(), w, h),
		manager: system.NewManager(rng, opts.Leaves),
		scene:   scene.New(),
		hud:     NewHUD(opts.Units, opts.Location, opts.HideLocation),
		rng:     rng,
		updates: updates,
		opts:    opts,
		now:     time.Now,
	}
	a.manager.SetBackdrop(a.scene)
	if opts.OnStrike != nil {
		a.manager.OnStrike(opts.OnStrike)
	}
	a.applyPlaceholder()
	return a
}

// SetWeather shows a fixed reading, used by simulate mode
func (a *App) SetWeather(d weather.Data) {
	a.apply(d, false)
}

// HUD returns the status line state
func (a *App) HUD() *HUD {
	return a.hud
}

// Manager returns the system manager
func (a *App) Manager() *system.Manager {
	return a.manager
}

// Frames returns the number of frames flushed
func (a *App) Frames() uint64 {
	return a.frames
}

// applyPlaceholder shows a calm sky for the local time until the first reading
func (a *App) applyPlaceholder() {
	now := a.now()
	hour := now.Hour()
	d := weather.Data{
		Condition: weather.Clear,
		IsDay:     hour >= parameter.OfflineDayStartHour && hour < parameter.OfflineDayEndHour,
		MoonPhase: weather.MoonPhase(now),
	}
	if a.opts.Night {
		d.IsDay = false
	}
	a.manager.Apply(weather.Derive(d))
}

func (a *App) apply(d weather.Data, offline bool) {
	if a.opts.Night {
		d.IsDay = false
	}
	a.hud.SetWeather(d, offline)
	a.manager.Apply(weather.Derive(d))
}

// receive applies a pending weather update without blocking
func (a *App) receive() {
	if a.updates == nil {
		return
	}
	select {
	case u := <-a.updates:
		a.handleUpdate(u)
	default:
	}
}

func (a *App) handleUpdate(u weather.Update) {
	if !u.Offline {
		log.Printf("weather: %s %.1f°C wind %.1fm/s", u.Data.Condition, u.Data.Temperature, u.Data.WindSpeed)
		a.apply(u.Data, false)
		return
	}
	// Keep the last real reading when one exists, only flag it stale
	if a.hud.Loaded() {
		a.hud.SetOffline(true)
		return
	}
	d := weather.Offline(a.rng, a.now())
	log.Printf("weather: offline, showing generated %s", d.Condition)
	a.apply(d, true)
}

// Run loops until a quit key, input closure, ctx cancellation or a flush
// error. Only the flush error is returned.
func (a *App) Run(ctx context.Context) error {
	next := a.now()
	for {
		if ctx.Err() != nil {
			return nil
		}

		wait := next.Sub(a.now())
		if wait > 0 {
			ev := a.term.PollEvent(wait)
			switch {
			case ev.IsQuit():
				return nil
			case ev.Type == terminal.EventResize:
				a.comp.Resize(ev.Width, ev.Height)
				log.Printf("resize: %dx%d", ev.Width, ev.Height)
			case ev.Type == terminal.EventError:
				log.Printf("input: %v", ev.Err)
			}
			continue
		}

		now := a.now()
		if err := a.Frame(now); err != nil {
			return err
		}
		next = next.Add(parameter.FramePeriod)
		if next.Before(now) {
			next = now.Add(parameter.FramePeriod)
		}
	}
}

// Frame paints and flushes one frame
func (a *App) Frame(now time.Time) error {
	a.receive()

	a.comp.Clear()
	w, h := a.comp.Size()
	a.manager.Tick(particle.Bounds{Width: w, Height: h}, a.rng, a.comp, now)

	a.hud.Advance(now)
	if !a.opts.HideHUD {
		a.drawHUD(w)
	}

	if err := a.comp.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	a.frames++
	return nil
}

func (a *App) drawHUD(w int) {
	color := visual.Cyan
	if a.opts.HUDColor.Valid() {
		color = a.opts.HUDColor
	}
	text := render.Truncate(a.hud.Text(), w-parameter.HUDColumn)
	render.PutString(a.comp, parameter.HUDColumn, parameter.HUDRow, text, color)
}
