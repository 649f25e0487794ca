package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/terminal"
)

// Compositor holds the frame being drawn and the frame last flushed.
// Flush emits only cells that differ between the two.
type Compositor struct {
	current  []Cell
	previous []Cell
	width    int
	height   int

	support terminal.ColorSupport
	out     Emitter

	// needClear forces a full clear on the next Flush after allocation or resize
	needClear bool
}

// NewCompositor creates a compositor sized width x height
func NewCompositor(out Emitter, support terminal.ColorSupport, width, height int) *Compositor {
	c := &Compositor{
		out:     out,
		support: support,
	}
	c.alloc(width, height)
	return c
}

func (c *Compositor) alloc(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	c.current = make([]Cell, size)
	c.previous = make([]Cell, size)
	fill(c.current)
	fill(c.previous)
	c.width = width
	c.height = height
	c.needClear = true
}

// fill sets every cell to blank using exponential copy
func fill(cells []Cell) {
	if len(cells) == 0 {
		return
	}
	cells[0] = blankCell
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
}

// Size returns the grid dimensions
func (c *Compositor) Size() (int, int) {
	return c.width, c.height
}

// Support returns the color capability colors are adapted to
func (c *Compositor) Support() terminal.ColorSupport {
	return c.support
}

// Resize reallocates both grids when dimensions change. Same size is a no-op.
func (c *Compositor) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.alloc(width, height)
}

// Clear resets the current frame to blanks
func (c *Compositor) Clear() {
	fill(c.current)
}

// Put writes one cell, adapting the color to the terminal. Out-of-bounds writes are dropped.
func (c *Compositor) Put(x, y int, r rune, col tcell.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.current[y*c.width+x] = Cell{Rune: r, Color: c.support.Adapt(col)}
}

// Cell returns the current-frame cell at (x, y); blank when out of bounds
func (c *Compositor) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return blankCell
	}
	return c.current[y*c.width+x]
}

// Flash recolors every cell of the current frame to white, keeping glyphs
func (c *Compositor) Flash() {
	white := c.support.Adapt(tcell.ColorWhite)
	for i := range c.current {
		c.current[i].Color = white
	}
}

// Flush emits the difference between the current and previous frames.
// Consecutive changed cells on a row share one cursor move and color changes
// are emitted only when the color differs from the last one written.
// The color is reset to default at the end of the frame.
func (c *Compositor) Flush() error {
	out := c.out
	if c.needClear {
		out.ClearScreen()
	}

	color := tcell.ColorReset
	lastX, lastY := -2, -1

	for y := 0; y < c.height; y++ {
		row := y * c.width
		for x := 0; x < c.width; x++ {
			idx := row + x
			cell := c.current[idx]
			if !c.needClear && cell == c.previous[idx] {
				continue
			}
			if c.needClear && cell == blankCell {
				// Screen was just cleared; blanks are already there
				continue
			}

			if !(y == lastY && x == lastX+1) {
				out.MoveTo(x, y)
			}
			if cell.Color != color {
				out.SetColor(cell.Color)
				color = cell.Color
			}
			out.WriteRune(cell.Rune)
			lastX, lastY = x, y
		}
	}

	if color != tcell.ColorReset {
		out.ResetColor()
	}

	if err := out.Flush(); err != nil {
		return err
	}

	copy(c.previous, c.current)
	c.needClear = false
	return nil
}
