package weather

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/weathr/parameter"
)

// offlineConditions are the conditions picked from when no data is reachable
var offlineConditions = []Condition{Clear, PartlyCloudy, Cloudy, Rain}

// Offline fabricates a plausible reading used when the first fetch fails
func Offline(rng *rand.Rand, now time.Time) Data {
	cond := offlineConditions[rng.IntN(len(offlineConditions))]
	precip := 0.0
	if cond.IsRaining() {
		precip = between(rng, parameter.OfflinePrecipMin, parameter.OfflinePrecipMax)
	}
	hour := now.Hour()
	return Data{
		Condition:     cond,
		Temperature:   between(rng, parameter.OfflineTempMin, parameter.OfflineTempMax),
		Precipitation: precip,
		WindSpeed:     between(rng, parameter.OfflineWindMin, parameter.OfflineWindMax),
		WindDirection: between(rng, 0, 360),
		IsDay:         hour >= parameter.OfflineDayStartHour && hour < parameter.OfflineDayEndHour,
		MoonPhase:     parameter.DefaultMoonPhase,
		Timestamp:     now,
	}
}

// Simulated builds a fixed reading for a forced condition
func Simulated(cond Condition, night bool, now time.Time) Data {
	precip := 0.0
	if cond.IsRaining() {
		precip = parameter.SimulatedPrecipitation
	}
	wind := parameter.SimulatedWindSpeed
	if cond.IsThunderstorm() {
		wind = parameter.SimulatedStormWindSpeed
	}
	return Data{
		Condition:           cond,
		Temperature:         parameter.SimulatedTemperature,
		ApparentTemperature: parameter.SimulatedApparentTemp,
		Humidity:            parameter.SimulatedHumidity,
		Precipitation:       precip,
		WindSpeed:           wind,
		WindDirection:       parameter.SimulatedWindDirection,
		CloudCover:          parameter.SimulatedCloudCover,
		Pressure:            parameter.SimulatedSurfacePressure,
		IsDay:               !night,
		MoonPhase:           parameter.DefaultMoonPhase,
		Timestamp:           now,
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
