package terminal

// Backend abstracts platform-specific terminal operations so the
// terminal logic can be exercised without a real tty.
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the saved mode and stops signal watchers
	Fini()

	// Size returns the current dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs.
	// A nil slice with nil error means stop or EOF.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
