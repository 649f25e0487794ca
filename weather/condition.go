package weather

import (
	"fmt"
	"strings"
)

// Condition is the normalized weather condition
type Condition uint8

const (
	Clear Condition = iota
	PartlyCloudy
	Cloudy
	Overcast
	Fog
	Drizzle
	Rain
	FreezingRain
	RainShowers
	Snow
	SnowGrains
	SnowShowers
	Thunderstorm
	ThunderstormHail
	conditionCount
)

var conditionNames = [conditionCount]string{
	Clear:            "Clear",
	PartlyCloudy:     "Partly Cloudy",
	Cloudy:           "Cloudy",
	Overcast:         "Overcast",
	Fog:              "Fog",
	Drizzle:          "Drizzle",
	Rain:             "Rain",
	FreezingRain:     "Freezing Rain",
	RainShowers:      "Rain Showers",
	Snow:             "Snow",
	SnowGrains:       "Snow Grains",
	SnowShowers:      "Snow Showers",
	Thunderstorm:     "Thunderstorm",
	ThunderstormHail: "Thunderstorm with Hail",
}

// flag names accepted by ParseCondition, in snake case
var conditionKeys = [conditionCount]string{
	Clear:            "clear",
	PartlyCloudy:     "partly_cloudy",
	Cloudy:           "cloudy",
	Overcast:         "overcast",
	Fog:              "fog",
	Drizzle:          "drizzle",
	Rain:             "rain",
	FreezingRain:     "freezing_rain",
	RainShowers:      "rain_showers",
	Snow:             "snow",
	SnowGrains:       "snow_grains",
	SnowShowers:      "snow_showers",
	Thunderstorm:     "thunderstorm",
	ThunderstormHail: "thunderstorm_hail",
}

// String returns the display name shown in the HUD
func (c Condition) String() string {
	if c >= conditionCount {
		return "Unknown"
	}
	return conditionNames[c]
}

// ParseCondition accepts snake_case or kebab-case names, case-insensitive
func ParseCondition(s string) (Condition, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, k := range conditionKeys {
		if k == key {
			return Condition(i), nil
		}
	}
	return Clear, fmt.Errorf("invalid weather condition %q, valid options: %s", s, strings.Join(conditionKeys[:], ", "))
}

// ConditionNames lists the names ParseCondition accepts
func ConditionNames() []string {
	return append([]string(nil), conditionKeys[:]...)
}

// FromWMO maps a WMO weather interpretation code; unknown codes are Clear
func FromWMO(code int) Condition {
	switch code {
	case 0:
		return Clear
	case 1, 2:
		return PartlyCloudy
	case 3:
		return Overcast
	case 45, 48:
		return Fog
	case 51, 53, 55:
		return Drizzle
	case 56, 57, 66, 67:
		return FreezingRain
	case 61, 63, 65:
		return Rain
	case 71, 73, 75:
		return Snow
	case 77:
		return SnowGrains
	case 80, 81, 82:
		return RainShowers
	case 85, 86:
		return SnowShowers
	case 95:
		return Thunderstorm
	case 96, 99:
		return ThunderstormHail
	default:
		return Clear
	}
}

// IsRaining is true for every liquid precipitation condition including storms
func (c Condition) IsRaining() bool {
	switch c {
	case Drizzle, Rain, RainShowers, FreezingRain, Thunderstorm, ThunderstormHail:
		return true
	}
	return false
}

func (c Condition) IsSnowing() bool {
	switch c {
	case Snow, SnowGrains, SnowShowers:
		return true
	}
	return false
}

func (c Condition) IsThunderstorm() bool {
	return c == Thunderstorm || c == ThunderstormHail
}

func (c Condition) IsCloudy() bool {
	switch c {
	case PartlyCloudy, Cloudy, Overcast:
		return true
	}
	return false
}

func (c Condition) IsFoggy() bool {
	return c == Fog
}

// RainIntensity tiers
type RainIntensity uint8

const (
	RainDrizzle RainIntensity = iota
	RainLight
	RainHeavy
	RainStorm
)

// SnowIntensity tiers
type SnowIntensity uint8

const (
	SnowLight SnowIntensity = iota
	SnowMedium
	SnowHeavy
)

// FogIntensity tiers
type FogIntensity uint8

const (
	FogLight FogIntensity = iota
	FogMedium
	FogHeavy
)

// RainIntensity derives the rain tier for a condition
func (c Condition) RainIntensity() RainIntensity {
	switch c {
	case Drizzle:
		return RainDrizzle
	case FreezingRain, Thunderstorm:
		return RainHeavy
	case ThunderstormHail:
		return RainStorm
	default:
		return RainLight
	}
}

// SnowIntensity derives the snow tier for a condition
func (c Condition) SnowIntensity() SnowIntensity {
	switch c {
	case SnowShowers:
		return SnowMedium
	case Snow:
		return SnowHeavy
	default:
		return SnowLight
	}
}

// FogIntensity derives the fog tier for a condition
func (c Condition) FogIntensity() FogIntensity {
	if c == Fog {
		return FogMedium
	}
	return FogLight
}

// Conditions is what the animation systems consume
type Conditions struct {
	Condition Condition

	Raining      bool
	Snowing      bool
	Thunderstorm bool
	Cloudy       bool
	Foggy        bool
	Day          bool

	// WindSpeed in m/s, WindDirection in degrees
	WindSpeed     float64
	WindDirection float64
	// Temperature in °C
	Temperature float64
	MoonPhase   float64

	Rain RainIntensity
	Snow SnowIntensity
	Fog  FogIntensity
}

// Derive builds the flag set for a reading. Thunderstorm suppresses Raining
// so at most one precipitation flag is set.
func Derive(d Data) Conditions {
	c := d.Condition
	return Conditions{
		Condition:     c,
		Raining:       c.IsRaining() && !c.IsThunderstorm(),
		Snowing:       c.IsSnowing(),
		Thunderstorm:  c.IsThunderstorm(),
		Cloudy:        c.IsCloudy(),
		Foggy:         c.IsFoggy(),
		Day:           d.IsDay,
		WindSpeed:     d.WindSpeed,
		WindDirection: d.WindDirection,
		Temperature:   d.Temperature,
		MoonPhase:     d.MoonPhase,
		Rain:          c.RainIntensity(),
		Snow:          c.SnowIntensity(),
		Fog:           c.FogIntensity(),
	}
}

// Precipitating reports any falling precipitation
func (c Conditions) Precipitating() bool {
	return c.Raining || c.Snowing || c.Thunderstorm
}
