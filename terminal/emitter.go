package terminal

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

// ANSIWriter emits cursor, color and character sequences through one buffered
// writer. It is the output end of the compositor: nothing reaches the terminal
// until Flush.
type ANSIWriter struct {
	w       *bufio.Writer
	support ColorSupport
}

// NewANSIWriter wraps out with a frame-sized buffer
func NewANSIWriter(out io.Writer, support ColorSupport) *ANSIWriter {
	return &ANSIWriter{
		w:       bufio.NewWriterSize(out, 65536),
		support: support,
	}
}

// MoveTo positions the cursor (0-indexed)
func (a *ANSIWriter) MoveTo(x, y int) {
	writeCursorPos(a.w, x, y)
}

// SetColor switches the foreground color. Reset and default map to SGR 0.
func (a *ANSIWriter) SetColor(c tcell.Color) {
	if c == tcell.ColorReset || c == tcell.ColorDefault || a.support == ColorNone {
		a.w.Write(csiSGR0)
		return
	}

	if idx, ok := paletteIndex(c); ok {
		writeFgIndexed(a.w, idx)
		return
	}

	if !c.IsRGB() {
		a.w.Write(csiSGR0)
		return
	}

	r, g, b := c.RGB()
	switch a.support {
	case ColorTrueColor:
		writeFgRGB(a.w, r, g, b)
	case Color256:
		writeFgIndexed(a.w, int(computeRGB256(uint8(r), uint8(g), uint8(b))))
	default:
		writeFgIndexed(a.w, 15)
	}
}

// ResetColor restores default attributes
func (a *ANSIWriter) ResetColor() {
	a.w.Write(csiSGR0)
}

// WriteRune writes one character at the cursor
func (a *ANSIWriter) WriteRune(r rune) {
	if r < 0x80 {
		a.w.WriteByte(byte(r))
		return
	}
	a.w.WriteRune(r)
}

// ClearScreen erases the display and homes the cursor
func (a *ANSIWriter) ClearScreen() {
	a.w.Write(csiSGR0)
	a.w.Write(csiClear)
}

// Flush pushes buffered sequences to the terminal
func (a *ANSIWriter) Flush() error {
	return a.w.Flush()
}
