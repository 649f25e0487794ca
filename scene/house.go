package scene

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/render"
)

var houseArt = []string{
	"          (                  ",
	"                             ",
	"            )                ",
	"          ( _   _._          ",
	"           |_|-'_~_`-._      ",
	"        _.-'-_~_-~_-~-_`-._  ",
	"    _.-'_~-_~-_-~-_~_~-_~-_`-._",
	"   ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~",
	"     |  []  []   []   []  [] |",
	"     |           __    ___   |",
	"   ._|  []  []  | .|  [___]  |_._._._._._._._._._._._._._._._._.",
	"   |=|________()|__|()_______|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|",
	" ^^^^^^^^^^^^^^^ === ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^",
}

// Row bands of houseArt
const (
	houseSmokeRows = 4 // chimney and the puffs above it
	houseRoofEnd   = 7 // eave line
	houseWallEnd   = 10
	houseBeamRow   = 11
	houseLawnRow   = 12
)

type housePalette struct {
	wood, door, roof, window, lawn tcell.Color
}

func paletteFor(day bool) housePalette {
	if day {
		return housePalette{
			wood:   visual.WoodDay,
			door:   visual.Door,
			roof:   visual.DarkRed,
			window: visual.Cyan,
			lawn:   visual.Green,
		}
	}
	return housePalette{
		wood:   visual.WoodNight,
		door:   visual.Door,
		roof:   visual.DarkMagenta,
		window: visual.Yellow,
		lawn:   visual.DarkGreen,
	}
}

// houseColor picks the color of one house glyph by its row band
func houseColor(row int, r rune, p housePalette) tcell.Color {
	switch {
	case row < houseSmokeRows:
		switch r {
		case '(', ')', '_':
			return visual.DarkGrey
		}
		return visual.Grey
	case row <= houseRoofEnd:
		return p.roof
	case row <= houseWallEnd:
		switch r {
		case '[', ']':
			return p.window
		case '(', ')':
			return p.door
		case '=':
			return visual.DarkGrey
		}
		return p.wood
	case row == houseBeamRow:
		switch r {
		case '=', '|':
			return visual.DarkGrey
		case '(', ')':
			return p.door
		}
		return p.wood
	default:
		switch r {
		case '^':
			return p.lawn
		case '=':
			return visual.DarkGrey
		}
		return tcell.ColorReset
	}
}

func drawHouse(cv render.Canvas, l Layout, day bool) {
	p := paletteFor(day)
	for row, line := range houseArt {
		col := l.HouseX
		for _, r := range line {
			// The eave line is drawn solid
			if r != ' ' || row == houseRoofEnd {
				cv.Put(col, l.HouseY+row, r, houseColor(row, r, p))
			}
			col++
		}
	}
}
