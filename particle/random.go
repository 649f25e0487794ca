package particle

import (
	"math/rand/v2"
)

// IntN returns a value in [0,n), or 0 when n is not positive
func IntN(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.IntN(n)
}

// Chance returns true with probability p
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Between returns a float in [lo, lo+span)
func Between(rng *rand.Rand, lo, span float64) float64 {
	return lo + rng.Float64()*span
}

// Pick returns a random element of s; s must not be empty
func Pick[T any](rng *rand.Rand, s []T) T {
	return s[rng.IntN(len(s))]
}
