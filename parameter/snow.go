package parameter

// Snow motion
const (
	// SnowSideMargin is the horizontal tolerance before a flake is culled
	SnowSideMargin = 20

	// SnowWindDivisor converts wind speed (m/s) into per-tick drift
	SnowWindDivisor = 20.0

	// SnowSpeedJitter is the extra random fall speed added at spawn
	SnowSpeedJitter = 0.05

	// SnowSwayFrequency and SnowSwayAmplitude shape the sinusoidal sway over y
	SnowSwayFrequency = 0.2
	SnowSwayAmplitude = 0.05

	// SnowSwayOffsetRange spreads per-flake phase
	SnowSwayOffsetRange = 100.0
)

// SnowTier holds per-intensity tuning
type SnowTier struct {
	TargetPerWidth float64
	SpawnPerTick   int
	BaseWind       float64
	NearSpeed      float64
	FarSpeed       float64
	Glyphs         []rune
}

// SnowTiers indexed by intensity: light, medium, heavy
var SnowTiers = [3]SnowTier{
	{TargetPerWidth: 0.25, SpawnPerTick: 1, BaseWind: 0.05, NearSpeed: 0.15, FarSpeed: 0.08, Glyphs: []rune{'.', '·'}},
	{TargetPerWidth: 0.5, SpawnPerTick: 2, BaseWind: 0.1, NearSpeed: 0.2, FarSpeed: 0.1, Glyphs: []rune{'.', '·', '*'}},
	{TargetPerWidth: 1.0, SpawnPerTick: 4, BaseWind: 0.2, NearSpeed: 0.3, FarSpeed: 0.15, Glyphs: []rune{'*', '.', '·'}},
}
