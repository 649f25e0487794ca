package parameter

// Fog
const (
	// FogBandHeight is the band above the ground fog lives in
	FogBandHeight = 15

	// FogDriftRange is the full spread of horizontal speed
	FogDriftRange = 0.15

	FogLifetimeMin   = 100
	FogLifetimeRange = 200
	FogSideMargin    = 5
	// FogSpawnBurst is how many banks are added each time the countdown fires
	FogSpawnBurst = 2
)

// FogTier holds per-intensity tuning
type FogTier struct {
	TargetPerWidth float64
	SpawnDelay     int
}

// FogTiers indexed by intensity: light, medium, heavy
var FogTiers = [3]FogTier{
	{TargetPerWidth: 0.3, SpawnDelay: 4},
	{TargetPerWidth: 0.6, SpawnDelay: 2},
	{TargetPerWidth: 1.0, SpawnDelay: 1},
}

// FogGlyphs chosen at spawn
var FogGlyphs = []rune{'.', ',', '-', '~'}

// Falling leaves
const (
	LeafInitialMin      = 5
	LeafInitialDivisor  = 10
	LeafMaxMin          = 10
	LeafMaxDivisor      = 8
	LeafSpawnInterval   = 15
	LeafSpawnChance     = 0.7
	LeafSpawnHeightBand = 5.0
	LeafFallMin         = 0.15
	LeafFallRange       = 0.2
	LeafSwaySpeedMin    = 0.05
	LeafSwaySpeedRange  = 0.1
	LeafAmplitudeMin    = 0.5
	LeafAmplitudeRange  = 1.5
	LeafSwayScale       = 0.1
	LeafRotationScale   = 4.0
)

// LeafGlyphs are the rotation variants
var LeafGlyphs = []rune{'*', '+', ',', '.', '~'}

// Fireflies
const (
	FireflyMin             = 3
	FireflyWidthDivisor    = 15
	FireflySpawnChance     = 0.01
	FireflyBandHeight      = 8
	FireflyDriftX          = 0.3
	FireflyDriftY          = 0.2
	FireflyRerollChance    = 0.02
	FireflyGlowSpeedMin    = 0.1
	FireflyGlowSpeedRange  = 0.15
	FireflyBrightThreshold = 200
	FireflyMidThreshold    = 128
	FireflyDimThreshold    = 64
)

// Chimney smoke
const (
	SmokeMaxParticles  = 200
	SmokeSpawnInterval = 8
	SmokeDriftRange    = 0.15
	SmokeRiseSpeed     = 0.2
	SmokeMaxAgeMin     = 30
	SmokeMaxAgeRange   = 15
	SmokeYoungRatio    = 0.3
	SmokeMiddleRatio   = 0.6
)
