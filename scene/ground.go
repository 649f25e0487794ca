package scene

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/render"
)

// texture is a stable per-cell value in [0,100) so the ground does not
// shimmer between frames
func texture(x, y int) uint32 {
	return ((uint32(x) ^ 0x5DEECE6) * (uint32(y) ^ 0xB)) % 100
}

// groundCell returns the glyph for one ground cell; row 0 is the grass line
func groundCell(x, row int, day bool) (rune, tcell.Color) {
	grass := [2]tcell.Color{visual.Green, visual.DarkGreen}
	flowers := visual.FlowersDay
	soil := visual.SoilDay
	if !day {
		grass = [2]tcell.Color{visual.DarkGreen, visual.NightGrass}
		flowers = visual.FlowersNight
		soil = visual.SoilNight
	}

	r := texture(x, row)
	if row == 0 {
		switch {
		case r < 5:
			return '*', flowers[(x+row)%len(flowers)]
		case r < 15:
			return ',', grass[1]
		default:
			return '^', grass[0]
		}
	}
	switch {
	case r < 20:
		return '~', soil
	case r < 25:
		return '.', soil
	default:
		return ' ', soil
	}
}

func drawGround(cv render.Canvas, l Layout, day bool) {
	for row := range parameter.GroundHeight {
		y := l.Horizon + row
		if y >= l.Height {
			break
		}
		for x := range l.Width {
			r, c := groundCell(x, row, day)
			cv.Put(x, y, r, c)
		}
	}
}
