package scene

import "github.com/lixenwraith/weathr/render"

// Scene paints ground, house and decorations sized to the canvas
type Scene struct {
	layout Layout
}

func New() *Scene {
	return &Scene{}
}

// Layout returns the geometry of the last draw
func (s *Scene) Layout() Layout {
	return s.layout
}

func (s *Scene) Draw(cv render.Canvas, day bool) {
	w, h := cv.Size()
	if s.layout.Width != w || s.layout.Height != h {
		s.layout = NewLayout(w, h)
	}
	drawGround(cv, s.layout, day)
	drawHouse(cv, s.layout, day)
	drawDecorations(cv, s.layout, day)
}

// Chimney returns the chimney tip for a w x h terminal
func (s *Scene) Chimney(w, h int) (int, int) {
	l := NewLayout(w, h)
	return l.ChimneyX, l.ChimneyY
}
