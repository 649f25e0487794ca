package parameter

import "time"

// Clouds
const (
	CloudInitialDivisor  = 20
	CloudMaxDivisor      = 20
	CloudClearMaxDivisor = 40
	CloudSpawnChance     = 0.005
	CloudClearChance     = 0.002
	CloudSpeedMin        = 0.05
	CloudSpeedRange      = 0.1
)

// Birds
const (
	BirdMax          = 3
	BirdSpawnChance  = 0.01
	BirdSpeedMin     = 0.2
	BirdSpeedRange   = 0.2
	BirdFlapInterval = 5
)

// Airplane
const (
	AirplaneSpawnChance   = 0.001
	AirplaneSpeedMin      = 0.3
	AirplaneSpeedRange    = 0.2
	AirplaneCooldownMin   = 600
	AirplaneCooldownRange = 300
)

// UFO
const (
	UFOSpawnChance   = 0.005
	UFOSpeedMin      = 0.5
	UFOSpeedRange    = 0.5
	UFOCooldownMin   = 300
	UFOCooldownRange = 300
	UFOStartX        = -15
	UFOLeftMargin    = -20
	UFOWobbleStep    = 0.1
	UFOWobbleScale   = 0.2
)

// Stars
const (
	// StarDensity is cells per star
	StarDensity      = 80
	StarMinDistance  = 3.0
	StarMaxAttempts  = 50
	StarTwinkleSpeed = 0.05

	ShootingStarChance = 0.005
	ShootingStarSpeedX = 1.5
	ShootingStarSpeedY = 0.5
	ShootingStarLength = 5
)

// Moon
const (
	MoonPhases     = 8
	MoonRightInset = 15
	MoonMinRow     = 2
)

// Sun
const (
	SunFramePeriod = 500 * time.Millisecond
	SunTallRow     = 3
	SunShortRow    = 2
	SunTallHeight  = 20
)
