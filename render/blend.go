package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend mixes two colors in Lab space; t=0 gives a, t=1 gives b.
// Palette colors are resolved to their RGB value first. Reset and default
// colors cannot be blended and return whichever side is nearer.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	ca, okA := toColorful(a)
	cb, okB := toColorful(b)
	if !okA || !okB {
		if t < 0.5 {
			return a
		}
		return b
	}
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	if !c.Valid() || c&tcell.ColorSpecial != 0 {
		return colorful.Color{}, false
	}
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
