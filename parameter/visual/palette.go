// Package visual holds the colors shared by the sky, scene and particle systems
package visual

import (
	"github.com/gdamore/tcell/v2"
)

// Named terminal colors; these survive basic color support unchanged
var (
	White       = tcell.ColorWhite
	Grey        = tcell.ColorSilver
	DarkGrey    = tcell.ColorGray
	Cyan        = tcell.ColorAqua
	Yellow      = tcell.ColorYellow
	DarkYellow  = tcell.ColorOlive
	Green       = tcell.ColorLime
	DarkGreen   = tcell.ColorGreen
	Red         = tcell.ColorRed
	DarkRed     = tcell.ColorMaroon
	Blue        = tcell.ColorBlue
	DarkBlue    = tcell.ColorNavy
	Magenta     = tcell.ColorFuchsia
	DarkMagenta = tcell.ColorPurple
)

// RGB colors; basic terminals render these as white
var (
	FogGrey      = tcell.NewRGBColor(120, 120, 120)
	FireflyGlow  = tcell.NewRGBColor(200, 255, 100)
	FireflyDim   = tcell.NewRGBColor(150, 200, 80)
	NightGrass   = tcell.NewRGBColor(0, 50, 0)
	WoodDay      = tcell.NewRGBColor(210, 180, 140)
	WoodNight    = tcell.NewRGBColor(100, 70, 50)
	Door         = tcell.NewRGBColor(139, 69, 19)
	SoilDay      = tcell.NewRGBColor(101, 67, 33)
	SoilNight    = tcell.NewRGBColor(60, 40, 20)
	ShootingTail = tcell.NewRGBColor(70, 70, 110)
)

// LeafPalette is picked from at random per leaf
var LeafPalette = []tcell.Color{
	tcell.NewRGBColor(255, 165, 0),  // orange
	tcell.NewRGBColor(218, 165, 32), // goldenrod
	tcell.NewRGBColor(184, 134, 11), // dark goldenrod
	tcell.NewRGBColor(205, 92, 92),  // indian red
	tcell.NewRGBColor(160, 82, 45),  // sienna
	tcell.NewRGBColor(139, 69, 19),  // saddle brown
}

// Flower colors cycle by cell position
var (
	FlowersDay   = [4]tcell.Color{Magenta, Red, Cyan, Yellow}
	FlowersNight = [4]tcell.Color{DarkMagenta, DarkRed, Blue, DarkYellow}
)
