package weather

import (
	"math"
	"time"

	"github.com/lixenwraith/weathr/parameter"
)

// MoonPhase returns the lunar phase in [0,1) for t: 0 new, 0.5 full
func MoonPhase(t time.Time) float64 {
	days := float64(t.Unix()-parameter.KnownNewMoonUnixSeconds) / 86400
	phase := math.Mod(days/parameter.SynodicMonthDays, 1)
	if phase < 0 {
		phase++
	}
	return phase
}
