package weather

import (
	"fmt"
	"strings"
)

// TemperatureUnit selects the HUD temperature scale
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

// WindUnit selects the HUD wind speed unit
type WindUnit string

const (
	KMH   WindUnit = "kmh"
	MS    WindUnit = "ms"
	MPH   WindUnit = "mph"
	Knots WindUnit = "kn"
)

// PrecipitationUnit selects the HUD precipitation unit
type PrecipitationUnit string

const (
	Millimeters PrecipitationUnit = "mm"
	Inches      PrecipitationUnit = "inch"
)

// Units is the display unit set
type Units struct {
	Temperature   TemperatureUnit   `toml:"temperature"`
	WindSpeed     WindUnit          `toml:"wind_speed"`
	Precipitation PrecipitationUnit `toml:"precipitation"`
}

// MetricUnits is the default set
func MetricUnits() Units {
	return Units{Temperature: Celsius, WindSpeed: KMH, Precipitation: Millimeters}
}

// ImperialUnits is the --imperial set
func ImperialUnits() Units {
	return Units{Temperature: Fahrenheit, WindSpeed: MPH, Precipitation: Inches}
}

// Validate rejects unknown unit names
func (u Units) Validate() error {
	switch u.Temperature {
	case Celsius, Fahrenheit:
	default:
		return fmt.Errorf("invalid temperature unit %q, valid options: celsius, fahrenheit", u.Temperature)
	}
	switch u.WindSpeed {
	case KMH, MS, MPH, Knots:
	default:
		return fmt.Errorf("invalid wind speed unit %q, valid options: kmh, ms, mph, kn", u.WindSpeed)
	}
	switch u.Precipitation {
	case Millimeters, Inches:
	default:
		return fmt.Errorf("invalid precipitation unit %q, valid options: mm, inch", u.Precipitation)
	}
	return nil
}

// Normalize lowercases names and fills blanks with metric defaults
func (u Units) Normalize() Units {
	def := MetricUnits()
	u.Temperature = TemperatureUnit(strings.ToLower(string(u.Temperature)))
	u.WindSpeed = WindUnit(strings.ToLower(string(u.WindSpeed)))
	u.Precipitation = PrecipitationUnit(strings.ToLower(string(u.Precipitation)))
	if u.Temperature == "" {
		u.Temperature = def.Temperature
	}
	if u.WindSpeed == "" {
		u.WindSpeed = def.WindSpeed
	}
	if u.Precipitation == "" {
		u.Precipitation = def.Precipitation
	}
	return u
}

// Conversion factors from internal units
const (
	msToKMH   = 3.6
	msToMPH   = 2.236936
	msToKnots = 1.943844
	mmPerInch = 25.4
)

// ConvertTemperature converts °C to the unit and returns its symbol
func ConvertTemperature(c float64, u TemperatureUnit) (float64, string) {
	if u == Fahrenheit {
		return c*9/5 + 32, "°F"
	}
	return c, "°C"
}

// ConvertWind converts m/s to the unit and returns its symbol
func ConvertWind(ms float64, u WindUnit) (float64, string) {
	switch u {
	case KMH:
		return ms * msToKMH, "km/h"
	case MPH:
		return ms * msToMPH, "mph"
	case Knots:
		return ms * msToKnots, "kn"
	default:
		return ms, "m/s"
	}
}

// ConvertPrecipitation converts mm to the unit and returns its symbol
func ConvertPrecipitation(mm float64, u PrecipitationUnit) (float64, string) {
	if u == Inches {
		return mm / mmPerInch, "in"
	}
	return mm, "mm"
}

// KMHToMS converts a km/h reading into internal units
func KMHToMS(kmh float64) float64 {
	return kmh / msToKMH
}
