package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one character position: a glyph and its foreground color
type Cell struct {
	Rune  rune
	Color tcell.Color
}

// blankCell is the value every cell holds after Clear and Resize
var blankCell = Cell{Rune: ' ', Color: tcell.ColorReset}

// Emitter is the sink a Compositor writes frame differences to.
// terminal.ANSIWriter satisfies it.
type Emitter interface {
	MoveTo(x, y int)
	SetColor(c tcell.Color)
	ResetColor()
	WriteRune(r rune)
	ClearScreen()
	Flush() error
}

// Canvas is the drawing surface handed to systems and the scene
type Canvas interface {
	Put(x, y int, r rune, c tcell.Color)
	Size() (width, height int)
}
