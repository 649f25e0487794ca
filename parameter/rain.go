package parameter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter/visual"
)

// Rain density
const (
	// RainMaxSplashes caps live splash markers
	RainMaxSplashes = 100

	// RainSplashFrames is how many ticks a splash lives; one glyph per frame
	RainSplashFrames = 3

	// RainSideMargin is the tolerance past the spawn band before a drop is culled
	RainSideMargin = 10

	// RainWindDivisor converts wind speed (m/s) into per-tick drift
	RainWindDivisor = 40.0

	// RainSpeedJitter is the extra random fall speed added at spawn
	RainSpeedJitter = 0.2

	// RainDriftJitter is the horizontal speed spread around wind
	RainDriftJitter = 0.1

	// RainSlantThreshold above which heavy drops lean with the wind
	RainSlantThreshold = 0.5

	// RainFillTicks bounds how many ticks an empty sky takes to reach its target
	RainFillTicks = 8
)

// RainTier holds per-intensity tuning
type RainTier struct {
	// TargetPerWidth scales the live target by terminal width
	TargetPerWidth float64
	// SpawnPerTick is the minimum burst size while below target
	SpawnPerTick int
	// BaseWind is the drift before weather wind is applied
	BaseWind float64
	// NearSpeed and FarSpeed are fall speeds for the two depth layers
	NearSpeed float64
	FarSpeed  float64
	// Glyphs indexed at random per drop
	Glyphs []rune
	// SplashChance for near-layer drops reaching the ground
	SplashChance float64
	// NearColor for the front layer; the back layer is always dark grey
	NearColor tcell.Color
}

// RainTiers indexed by intensity: drizzle, light, heavy, storm
var RainTiers = [4]RainTier{
	{TargetPerWidth: 0.25, SpawnPerTick: 1, BaseWind: 0.05, NearSpeed: 0.4, FarSpeed: 0.2, Glyphs: []rune{'.', ','}, SplashChance: 0.1, NearColor: visual.Cyan},
	{TargetPerWidth: 0.5, SpawnPerTick: 2, BaseWind: 0.1, NearSpeed: 0.7, FarSpeed: 0.4, Glyphs: []rune{'|', ':', '.'}, SplashChance: 0.3, NearColor: visual.White},
	{TargetPerWidth: 1.0, SpawnPerTick: 5, BaseWind: 0.15, NearSpeed: 0.9, FarSpeed: 0.6, Glyphs: []rune{'|', ':'}, SplashChance: 0.6, NearColor: visual.Cyan},
	{TargetPerWidth: 1.5, SpawnPerTick: 5, BaseWind: 0.8, NearSpeed: 1.8, FarSpeed: 1.2, Glyphs: []rune{'|'}, SplashChance: 0.6, NearColor: visual.White},
}

// RainSplashGlyphs in frame order
var RainSplashGlyphs = [RainSplashFrames]rune{'.', 'o', 'O'}
