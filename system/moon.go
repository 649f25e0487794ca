package system

import (
	"math"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/render"
)

// moonFrames is indexed by phase step: new, waxing crescent, first quarter,
// waxing gibbous, full, waning gibbous, last quarter, waning crescent.
// '~' marks the opaque body; ' ' is transparent sky.
var moonFrames = [parameter.MoonPhases][]string{
	{
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		"                 ",
		"                 ",
	},
	{
		"             .    ",
		"            . `.  ",
		"               :  ",
		"               :  ",
		"            . .'  ",
		"             `    ",
	},
	{
		"            _     ",
		"           |~ `.  ",
		"           |~~~~: ",
		"           |~~~~: ",
		"           |~ .'  ",
		"           |-'    ",
	},
	{
		"         ..._     ",
		"       .'~~~~`.   ",
		"      |~~~~o~~~:  ",
		"      |~.~~~~o~:  ",
		"       `.~~~~~'   ",
		"         `...-'   ",
	},
	{
		"       _..._      ",
		"     .'~o~~~`.    ",
		"    :~~~~~o~~~:   ",
		"    :~~o~~~~.~:   ",
		"    `.~~~~~o~.'   ",
		"      `-...-'     ",
	},
	{
		"       _...       ",
		"     .'~~~~`.     ",
		"    :~~~o~~~~|    ",
		"    :~o~~~~.~|    ",
		"    `.~~~~~.'     ",
		"      `-...-'     ",
	},
	{
		"        _         ",
		"      .' ~|       ",
		"     :~~~~|       ",
		"     :~~~~|       ",
		"      `.~ |       ",
		"        `-|       ",
	},
	{
		"        .         ",
		"      .' .        ",
		"     :            ",
		"     :            ",
		"      '. .        ",
		"        `         ",
	},
}

// MoonSystem draws the moon at a size-derived position in the current phase
type MoonSystem struct {
	phase float64
	x, y  int
}

func NewMoonSystem() *MoonSystem {
	return &MoonSystem{phase: parameter.DefaultMoonPhase}
}

// SetPhase sets the phase in [0,1): 0 new, 0.5 full
func (s *MoonSystem) SetPhase(phase float64) {
	if math.IsNaN(phase) {
		return
	}
	s.phase = phase - math.Floor(phase)
}

// Step returns the frame index for the current phase
func (s *MoonSystem) Step() int {
	return int(math.Round(s.phase*parameter.MoonPhases)) % parameter.MoonPhases
}

// Position returns the top-left of the moon art for a w x h terminal
func (s *MoonSystem) Position(w, h int) (int, int) {
	x := min(w/4*3, max(w-parameter.MoonRightInset, 0))
	y := max(h/4, parameter.MoonMinRow)
	return x, y
}

// Draw stamps the moon. Body cells are written as blanks so the stars
// behind them are hidden.
func (s *MoonSystem) Draw(cv render.Canvas) {
	w, h := cv.Size()
	s.x, s.y = s.Position(w, h)
	for i, line := range moonFrames[s.Step()] {
		col := s.x
		for _, r := range line {
			switch r {
			case ' ':
			case '~':
				cv.Put(col, s.y+i, ' ', visual.White)
			default:
				cv.Put(col, s.y+i, r, visual.White)
			}
			col++
		}
	}
}
