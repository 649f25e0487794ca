package terminal

import (
	"bufio"
	"strconv"
)

// Fixed sequences written on mode changes
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc")
	csiSGR0  = []byte("\x1b[0m")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// ?7l keeps a write to the bottom-right cell from scrolling the screen
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// SGR parameters
const (
	sgrFgBase       = 30
	sgrFgBrightBase = 90
	sgrFgExtended   = 38
	sgrMode256      = 5
	sgrModeRGB      = 2
)

// writeCSI writes ESC [ p1;p2;... final. Negative parameters clamp to 0.
func writeCSI(w *bufio.Writer, final byte, params ...int) {
	var scratch [12]byte
	w.WriteString("\x1b[")
	for i, p := range params {
		if i > 0 {
			w.WriteByte(';')
		}
		w.Write(strconv.AppendInt(scratch[:0], int64(max(p, 0)), 10))
	}
	w.WriteByte(final)
}

// writeCursorPos moves to a 0-indexed cell
func writeCursorPos(w *bufio.Writer, x, y int) {
	writeCSI(w, 'H', y+1, x+1)
}

// writeFgIndexed picks the shortest form for a palette index: 30-37 and
// 90-97 for the 16 named colors, 38;5;N above that
func writeFgIndexed(w *bufio.Writer, index int) {
	switch {
	case index < 8:
		writeCSI(w, 'm', sgrFgBase+index)
	case index < 16:
		writeCSI(w, 'm', sgrFgBrightBase+index-8)
	default:
		writeCSI(w, 'm', sgrFgExtended, sgrMode256, index)
	}
}

func writeFgRGB(w *bufio.Writer, r, g, b int32) {
	writeCSI(w, 'm', sgrFgExtended, sgrModeRGB, int(r), int(g), int(b))
}
