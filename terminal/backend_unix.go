//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	// readPollMillis bounds how long Read blocks before rechecking its stop channel
	readPollMillis = 100
	readBufferSize = 256

	fallbackWidth  = 80
	fallbackHeight = 24
)

// ttyBackend drives the controlling terminal through stdin and stdout
type ttyBackend struct {
	in, out *os.File
	saved   *term.State

	sigwinch chan os.Signal
	done     chan struct{}
}

func newBackend() Backend {
	return &ttyBackend{in: os.Stdin, out: os.Stdout}
}

func (b *ttyBackend) inFd() int { return int(b.in.Fd()) }
func (b *ttyBackend) outFd() int { return int(b.out.Fd()) }

func (b *ttyBackend) Init() error {
	if !term.IsTerminal(b.inFd()) || !term.IsTerminal(b.outFd()) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(b.inFd())
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	b.saved = state
	return nil
}

func (b *ttyBackend) Fini() {
	if b.sigwinch != nil {
		signal.Stop(b.sigwinch)
		close(b.sigwinch)
		<-b.done
		b.sigwinch = nil
	}
	if b.saved != nil {
		_ = term.Restore(b.inFd(), b.saved)
		b.saved = nil
	}
}

// Size prefers TIOCGWINSZ, then x/term, then 80x24
func (b *ttyBackend) Size() (int, int) {
	fd := b.outFd()
	if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row)
	}
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return fallbackWidth, fallbackHeight
}

func (b *ttyBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *ttyBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	fd := b.inFd()
	buf := make([]byte, readBufferSize)
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		ready, err := unix.Poll(fds, readPollMillis)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if ready == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		switch {
		case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
			continue
		case err != nil:
			return nil, err
		case n == 0:
			return nil, nil
		}
		return append([]byte(nil), buf[:n]...), nil
	}
}

// SetResizeHandler calls handler with the new size on every SIGWINCH until Fini
func (b *ttyBackend) SetResizeHandler(handler func(width, height int)) {
	b.sigwinch = make(chan os.Signal, 1)
	b.done = make(chan struct{})
	signal.Notify(b.sigwinch, syscall.SIGWINCH)

	go func() {
		defer close(b.done)
		for range b.sigwinch {
			if w, h := b.Size(); w > 0 && h > 0 {
				handler(w, h)
			}
		}
	}()
}
