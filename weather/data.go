package weather

import (
	"fmt"
	"math"
	"time"
)

// Data is one current-conditions reading in internal units:
// temperatures in °C, wind in m/s, precipitation in mm
type Data struct {
	Condition           Condition `json:"condition"`
	Temperature         float64   `json:"temperature"`
	ApparentTemperature float64   `json:"apparent_temperature"`
	Humidity            float64   `json:"humidity"`
	Precipitation       float64   `json:"precipitation"`
	WindSpeed           float64   `json:"wind_speed"`
	WindDirection       float64   `json:"wind_direction"`
	CloudCover          float64   `json:"cloud_cover"`
	Pressure            float64   `json:"pressure"`
	Visibility          *float64  `json:"visibility,omitempty"`
	IsDay               bool      `json:"is_day"`
	MoonPhase           float64   `json:"moon_phase"`
	Timestamp           time.Time `json:"timestamp"`
}

// Location is a point on the globe with an optional city name
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
}

// Key identifies a location at two-decimal precision for cache matching
func (l Location) Key() string {
	return fmt.Sprintf("%.2f,%.2f", l.Latitude, l.Longitude)
}

// FormatCoordinates renders "52.52°N, 13.41°E"
func (l Location) FormatCoordinates() string {
	ns := 'N'
	if l.Latitude < 0 {
		ns = 'S'
	}
	ew := 'E'
	if l.Longitude < 0 {
		ew = 'W'
	}
	return fmt.Sprintf("%.2f°%c, %.2f°%c", math.Abs(l.Latitude), ns, math.Abs(l.Longitude), ew)
}
