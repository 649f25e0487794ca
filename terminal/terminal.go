package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

var (
	// ErrNotTerminal is returned by Init when stdin or stdout is not a tty
	ErrNotTerminal = errors.New("stdin/stdout is not a terminal")
	// ErrTooSmall is returned by Init when the terminal is below the configured minimum
	ErrTooSmall = errors.New("terminal too small")
)

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Output is the raw byte sink for rendered frames
	Output() io.Writer

	// ColorSupport returns the capability frames are rendered for
	ColorSupport() ColorSupport

	// PollEvent waits up to timeout for a key or resize event.
	// Returns an event of type EventNone when the timeout elapses first.
	PollEvent(timeout time.Duration) Event
}

// Options configures a Terminal
type Options struct {
	Support   ColorSupport
	MinWidth  int
	MinHeight int
}

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	opts    Options

	input    *inputReader
	resizeCh chan ResizeEvent
	timer    *time.Timer

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout
func New(opts Options) Terminal {
	return newTerminal(newBackend(), opts)
}

func newTerminal(b Backend, opts Options) *termImpl {
	return &termImpl{
		backend:  b,
		opts:     opts,
		resizeCh: make(chan ResizeEvent, 1),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	w, h := t.backend.Size()
	if w < t.opts.MinWidth || h < t.opts.MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, w, h, t.opts.MinWidth, t.opts.MinHeight)
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.input = newInputReader(t.backend)

	t.backend.SetResizeHandler(func(w, h int) {
		t.offerResize(ResizeEvent{Width: w, Height: h})
	})

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)
	// Bottom-right writes must not scroll the screen
	t.writeRaw(csiAutoWrapOff)
	t.writeRaw(csiSGR0)
	t.writeRaw(csiClear)

	t.input.start()

	t.initialized = true
	return nil
}

// offerResize keeps only the latest size pending: drain then replace
func (t *termImpl) offerResize(ev ResizeEvent) {
	select {
	case t.resizeCh <- ev:
	default:
		select {
		case <-t.resizeCh:
		default:
		}
		select {
		case t.resizeCh <- ev:
		default:
		}
	}
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.input != nil {
		t.input.stop()
	}

	t.writeRaw(csiSGR0)
	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)
	// Re-enable wrap after leaving the alt screen so the main buffer has it
	t.writeRaw(csiAutoWrapOn)

	t.backend.Fini()

	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) Output() io.Writer {
	return t.backend
}

func (t *termImpl) ColorSupport() ColorSupport {
	return t.opts.Support
}

// PollEvent returns the pending resize first, then input, else waits up to timeout
func (t *termImpl) PollEvent(timeout time.Duration) Event {
	select {
	case re := <-t.resizeCh:
		return Event{Type: EventResize, Width: re.Width, Height: re.Height}
	default:
	}

	var inputCh <-chan Event
	if t.input != nil {
		inputCh = t.input.events()
	}

	if t.timer == nil {
		t.timer = time.NewTimer(timeout)
	} else {
		t.timer.Reset(timeout)
	}
	defer t.timer.Stop()

	select {
	case re := <-t.resizeCh:
		return Event{Type: EventResize, Width: re.Width, Height: re.Height}
	case ev := <-inputCh:
		return ev
	case <-t.timer.C:
		return Event{Type: EventNone}
	}
}

func (t *termImpl) writeRaw(data []byte) {
	t.backend.Write(data)
}

// crashHandler is invoked on panics inside terminal goroutines
var crashHandler = func(r any) {
	EmergencyReset(os.Stdout)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// SetCrashHandler replaces the panic handler used by terminal goroutines
func SetCrashHandler(fn func(r any)) {
	if fn != nil {
		crashHandler = fn
	}
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
