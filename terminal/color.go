package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorSupport indicates terminal color capability
type ColorSupport uint8

const (
	ColorNone      ColorSupport = iota // monochrome, every color collapses to reset
	ColorBasic                         // 16 named colors
	Color256                           // xterm-256 palette
	ColorTrueColor                     // 24-bit RGB
)

func (s ColorSupport) String() string {
	switch s {
	case ColorNone:
		return "none"
	case ColorBasic:
		return "basic"
	case Color256:
		return "256"
	case ColorTrueColor:
		return "truecolor"
	}
	return "unknown"
}

// ParseColorSupport maps a --color value to a capability
func ParseColorSupport(s string) (ColorSupport, error) {
	switch strings.ToLower(s) {
	case "none", "mono", "off":
		return ColorNone, nil
	case "basic", "16", "ansi":
		return ColorBasic, nil
	case "256":
		return Color256, nil
	case "truecolor", "true", "24bit":
		return ColorTrueColor, nil
	}
	return ColorNone, fmt.Errorf("unknown color mode %q (valid: auto, none, basic, 256, truecolor)", s)
}

// DetectColorSupport determines capability from environment lookups and output interactivity.
// lookupEnv has the signature of os.LookupEnv.
// Priority: NO_COLOR, TERM=dumb, non-interactive output, COLORTERM, TERM *256color*, basic.
func DetectColorSupport(lookupEnv func(string) (string, bool), isTTY bool) ColorSupport {
	if _, set := lookupEnv("NO_COLOR"); set {
		return ColorNone
	}
	term, _ := lookupEnv("TERM")
	if term == "dumb" {
		return ColorNone
	}
	if !isTTY {
		return ColorNone
	}

	colorterm, _ := lookupEnv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTrueColor
	}

	if strings.Contains(term, "256color") {
		return Color256
	}
	return ColorBasic
}

// Adapt downgrades a requested color to what the capability can display.
// None collapses everything to tcell.ColorReset; Basic maps RGB and extended
// palette entries to white and keeps the 16 named colors; 256 and true color pass through.
func (s ColorSupport) Adapt(c tcell.Color) tcell.Color {
	switch s {
	case ColorNone:
		return tcell.ColorReset
	case ColorBasic:
		if c == tcell.ColorReset || c == tcell.ColorDefault {
			return c
		}
		if idx, ok := paletteIndex(c); ok && idx < 16 {
			return c
		}
		return tcell.ColorWhite
	default:
		return c
	}
}

// paletteIndex returns the xterm palette index of a non-RGB color
func paletteIndex(c tcell.Color) (int, bool) {
	if !c.Valid() || c.IsRGB() || c&tcell.ColorSpecial != 0 {
		return 0, false
	}
	idx := int(c - tcell.ColorValid)
	if idx < 0 || idx > 255 {
		return 0, false
	}
	return idx, true
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := abs(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// computeRGB256 finds the nearest 256-color palette index for an RGB value
func computeRGB256(r, g, b uint8) uint8 {
	// Grayscale ramp 232-255 maps to luminance 8, 18, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := 232 + (gray-8)/10
		if grayIdx > 255 {
			grayIdx = 255
		}

		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)

		cubeDist := abs(int(r)-int(cubeValues[cubeIndex[r]])) +
			abs(int(g)-int(cubeValues[cubeIndex[g]])) +
			abs(int(b)-int(cubeValues[cubeIndex[b]]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}
