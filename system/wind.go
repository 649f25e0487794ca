package system

import (
	"math"
	"math/rand/v2"
)

// windDrift converts a wind reading into horizontal cells per tick.
// Direction is where the wind comes from, so a westerly (270°) pushes right.
func windDrift(speed, directionDeg, divisor float64) float64 {
	return speed / divisor * -math.Sin(directionDeg*math.Pi/180)
}

// randomSign returns +1 or -1
func randomSign(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return 1
	}
	return -1
}

// sign returns +1 for non-negative values and -1 otherwise
func sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}
