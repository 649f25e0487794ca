// Package scene draws the static backdrop: a house on a textured ground band
// with a few decorations around it.
package scene

import "github.com/lixenwraith/weathr/parameter"

// Layout is the backdrop geometry for one terminal size
type Layout struct {
	Width, Height int
	Horizon       int
	HouseX        int
	HouseY        int
	ChimneyX      int
	ChimneyY      int
}

func NewLayout(w, h int) Layout {
	horizon := max(h-parameter.GroundHeight, 0)
	houseX := max(w/2-parameter.HouseWidth/2, 0)
	houseY := max(horizon-parameter.HouseHeight, 0)
	return Layout{
		Width:    w,
		Height:   h,
		Horizon:  horizon,
		HouseX:   houseX,
		HouseY:   houseY,
		ChimneyX: houseX + parameter.ChimneyOffsetX,
		ChimneyY: houseY,
	}
}
