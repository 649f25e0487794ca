package system

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/render"
)

var sunFrames = [][]string{
	{
		"      ;   :   ;",
		"   .   \\_,!,_/   ,",
		"    `.,'     `.,'",
		"     /         \\",
		"~ -- :         : -- ~",
		"     \\         /",
		"    ,'`._   _.'`.",
		"   '   / `!` \\   `",
		"      ;   :   ;",
	},
	{
		"      .   |   .",
		"   ;   \\_,|,_/   ;",
		"    `.,'     `.,'",
		"     /         \\",
		"~ -- |         | -- ~",
		"     \\         /",
		"    ,'`._   _.'`.",
		"   ;   / `|` \\   ;",
		"      .   |   .",
	},
}

// SunCycler alternates the sun frames on a wall-clock period independent of the tick rate
type SunCycler struct {
	frames  [][]string
	color   tcell.Color
	period  time.Duration
	current int
	last    time.Time
}

func NewSunCycler() *SunCycler {
	return &SunCycler{
		frames: sunFrames,
		color:  visual.Yellow,
		period: parameter.SunFramePeriod,
	}
}

// Update advances the frame when the period has elapsed since the last switch
func (s *SunCycler) Update(now time.Time) {
	if s.last.IsZero() {
		s.last = now
		return
	}
	if now.Sub(s.last) >= s.period {
		s.current = (s.current + 1) % len(s.frames)
		s.last = now
	}
}

// Frame returns the current frame index
func (s *SunCycler) Frame() int {
	return s.current
}

// Color returns the color frames are drawn in
func (s *SunCycler) Color() tcell.Color {
	return s.color
}

// Draw stamps the current frame centered, lower on tall terminals
func (s *SunCycler) Draw(cv render.Canvas) {
	_, h := cv.Size()
	row := parameter.SunShortRow
	if h > parameter.SunTallHeight {
		row = parameter.SunTallRow
	}
	render.PutLinesCentered(cv, row, s.frames[s.current], s.color)
}
