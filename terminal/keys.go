package terminal

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyCtrlD
	KeyOther // recognized control or escape sequence the scene ignores
)

// IsQuit reports whether the event asks the application to exit: q, Q, Esc, Ctrl-C or Ctrl-D
func (ev Event) IsQuit() bool {
	if ev.Type != EventKey {
		return ev.Type == EventClosed
	}
	switch ev.Key {
	case KeyEscape, KeyCtrlC, KeyCtrlD:
		return true
	case KeyRune:
		return ev.Rune == 'q' || ev.Rune == 'Q'
	}
	return false
}
