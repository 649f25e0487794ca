package scene

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
)

type cell struct {
	r rune
	c tcell.Color
}

type gridCanvas struct {
	w, h  int
	cells map[[2]int]cell
}

func newGridCanvas(w, h int) *gridCanvas {
	return &gridCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (g *gridCanvas) Put(x, y int, r rune, c tcell.Color) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[[2]int{x, y}] = cell{r, c}
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func TestNewLayout(t *testing.T) {
	tests := []struct {
		w, h                    int
		horizon, houseX, houseY int
	}{
		{100, 30, 23, 18, 10},
		{70, 20, 13, 3, 0},
		{40, 10, 3, 0, 0},
	}
	for _, tt := range tests {
		l := NewLayout(tt.w, tt.h)
		if l.Horizon != tt.horizon || l.HouseX != tt.houseX || l.HouseY != tt.houseY {
			t.Errorf("NewLayout(%d,%d) = horizon %d house (%d,%d), want %d (%d,%d)",
				tt.w, tt.h, l.Horizon, l.HouseX, l.HouseY, tt.horizon, tt.houseX, tt.houseY)
		}
		if l.ChimneyX != l.HouseX+parameter.ChimneyOffsetX || l.ChimneyY != l.HouseY {
			t.Errorf("chimney (%d,%d) not anchored to house", l.ChimneyX, l.ChimneyY)
		}
	}
}

func TestGroundIsStable(t *testing.T) {
	for x := range 50 {
		for row := range parameter.GroundHeight {
			r1, c1 := groundCell(x, row, true)
			r2, c2 := groundCell(x, row, true)
			if r1 != r2 || c1 != c2 {
				t.Fatalf("groundCell(%d,%d) not deterministic", x, row)
			}
		}
	}
}

func TestGroundFillsBand(t *testing.T) {
	cv := newGridCanvas(80, 24)
	New().Draw(cv, true)
	horizon := 24 - parameter.GroundHeight
	for y := horizon; y < 24; y++ {
		for x := range 80 {
			if _, ok := cv.cells[[2]int{x, y}]; !ok {
				t.Fatalf("ground cell (%d,%d) not drawn", x, y)
			}
		}
	}
	for x := range 80 {
		c := cv.cells[[2]int{x, horizon}]
		switch c.r {
		case '^', ',', '*':
		default:
			t.Errorf("grass line cell %d = %q", x, c.r)
		}
	}
}

func TestHouseColors(t *testing.T) {
	cv := newGridCanvas(100, 30)
	s := New()
	s.Draw(cv, true)
	l := s.Layout()

	// Eave row is solid roof color
	for i := range len(houseArt[houseRoofEnd]) {
		c := cv.cells[[2]int{l.HouseX + i, l.HouseY + houseRoofEnd}]
		if c.c != visual.DarkRed {
			t.Fatalf("eave cell %d color %v, want roof", i, c.c)
		}
	}

	// First window bracket on row 8: "     |  []"
	if c := cv.cells[[2]int{l.HouseX + 8, l.HouseY + 8}]; c.r != '[' || c.c != visual.Cyan {
		t.Errorf("window = %q %v, want '[' cyan", c.r, c.c)
	}

	night := newGridCanvas(100, 30)
	s.Draw(night, false)
	if c := night.cells[[2]int{l.HouseX + 8, l.HouseY + 8}]; c.c != visual.Yellow {
		t.Errorf("night window color %v, want yellow", c.c)
	}
}

func TestDecorations(t *testing.T) {
	narrow := decorationsFor(NewLayout(80, 24), true)
	for _, d := range narrow {
		if len(d.art) == len(pineArt) && d.art[0] == pineArt[0] {
			t.Error("pine placed on an 80-column terminal")
		}
	}

	wide := decorationsFor(NewLayout(160, 40), true)
	hasPine, hasTree := false, false
	for _, d := range wide {
		if d.art[0] == pineArt[0] {
			hasPine = true
		}
		if d.art[0] == treeArt[0] {
			hasTree = true
		}
	}
	if !hasPine || !hasTree {
		t.Errorf("wide terminal pine=%v tree=%v, want both", hasPine, hasTree)
	}
}

func TestChimney(t *testing.T) {
	s := New()
	x, y := s.Chimney(100, 30)
	if x != 28 || y != 10 {
		t.Errorf("Chimney(100,30) = (%d,%d), want (28,10)", x, y)
	}
}
