package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// PutString writes s starting at (x, y), advancing by each rune's display width
func PutString(cv Canvas, x, y int, s string, c tcell.Color) {
	for _, r := range s {
		cv.Put(x, y, r, c)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		x += w
	}
}

// PutArt writes lines top-down from (x, y). Spaces are skipped so what is below shows through.
func PutArt(cv Canvas, x, y int, lines []string, c tcell.Color) {
	for i, line := range lines {
		col := x
		for _, r := range line {
			if r != ' ' {
				cv.Put(col, y+i, r, c)
			}
			col++
		}
	}
}

// PutLinesCentered writes lines as an opaque block horizontally centered on
// the widest line, starting at row y
func PutLinesCentered(cv Canvas, y int, lines []string, c tcell.Color) {
	width, _ := cv.Size()
	maxWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	x := 0
	if width > maxWidth {
		x = (width - maxWidth) / 2
	}
	for i, line := range lines {
		PutString(cv, x, y+i, line, c)
	}
}

// Truncate shortens s to fit width display columns
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
