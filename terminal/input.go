package terminal

import (
	"sync"
	"time"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError
}

// inputReader turns raw stdin bytes into key events on a buffered channel
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Persistent buffer for stream assembly so partial UTF-8 and escape sequences survive read boundaries
	buf []byte
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 64),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Reader may be stuck in a blocking read; do not wait forever
	select {
	case <-r.doneCh:
	case <-time.After(150 * time.Millisecond):
	}
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)
	defer func() {
		if rec := recover(); rec != nil {
			crashHandler(rec)
		}
	}()

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			select {
			case <-r.stopCh:
				return
			default:
			}
			// EOF on stdin
			r.sendEvent(Event{Type: EventClosed})
			return
		}

		r.buf = append(r.buf, data...)
		consumed := r.parseInput(r.buf, true)
		if consumed >= len(r.buf) {
			r.buf = r.buf[:0]
		} else if consumed > 0 {
			copy(r.buf, r.buf[consumed:])
			r.buf = r.buf[:len(r.buf)-consumed]
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed.
// A lone trailing ESC is emitted as KeyEscape when final is set, since the
// backend returns whole reads and an escape sequence arrives in one read.
func (r *inputReader) parseInput(data []byte, final bool) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				if !final {
					return i
				}
				r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
				i++
				continue
			}
			i += escapeLen(data[i:])
			r.sendEvent(Event{Type: EventKey, Key: KeyOther})

		case b < 0x20:
			r.sendEvent(Event{Type: EventKey, Key: controlKey(b)})
			i++

		case b == 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyOther})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				if !final {
					return i
				}
				i = n
				continue
			}
			rn, size := utf8.DecodeRune(data[i:])
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			i += size
		}
	}
	return i
}

// escapeLen returns the length of the escape sequence at the start of data.
// CSI (ESC [) runs to the first final byte in 0x40-0x7e; SS3 (ESC O) is three bytes; anything else is Alt+key.
func escapeLen(data []byte) int {
	switch data[1] {
	case '[':
		for j := 2; j < len(data); j++ {
			if data[j] >= 0x40 && data[j] <= 0x7e {
				return j + 1
			}
		}
		return len(data)
	case 'O':
		return min(3, len(data))
	}
	return 2
}

func controlKey(b byte) Key {
	switch b {
	case 0x03:
		return KeyCtrlC
	case 0x04:
		return KeyCtrlD
	case '\r', '\n':
		return KeyEnter
	}
	return KeyOther
}

// sendEvent queues an event, dropping it if the consumer is far behind
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}
