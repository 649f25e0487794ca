package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/weather"
)

var spinnerFrames = [...]rune{'|', '/', '-', '\\'}

// HUD is the single status line shown above the scene
type HUD struct {
	units        weather.Units
	location     weather.Location
	hideLocation bool

	data    *weather.Data
	offline bool

	spinner  int
	lastSpin time.Time
}

func NewHUD(units weather.Units, loc weather.Location, hideLocation bool) *HUD {
	return &HUD{units: units, location: loc, hideLocation: hideLocation}
}

// SetWeather records the reading shown; offline marks fabricated or stale data
func (h *HUD) SetWeather(d weather.Data, offline bool) {
	h.data = &d
	h.offline = offline
}

// SetOffline flags the current reading as stale without replacing it
func (h *HUD) SetOffline(offline bool) {
	h.offline = offline
}

// Loaded reports whether any reading has arrived
func (h *HUD) Loaded() bool {
	return h.data != nil
}

// Advance steps the loading spinner on its own period
func (h *HUD) Advance(now time.Time) {
	if h.lastSpin.IsZero() {
		h.lastSpin = now
		return
	}
	if now.Sub(h.lastSpin) >= parameter.SpinnerInterval {
		h.spinner = (h.spinner + 1) % len(spinnerFrames)
		h.lastSpin = now
	}
}

// Text renders the status line
func (h *HUD) Text() string {
	if h.data == nil {
		return fmt.Sprintf("Weather: Loading... %c", spinnerFrames[h.spinner])
	}

	temp, tempUnit := weather.ConvertTemperature(h.data.Temperature, h.units.Temperature)
	wind, windUnit := weather.ConvertWind(h.data.WindSpeed, h.units.WindSpeed)
	precip, precipUnit := weather.ConvertPrecipitation(h.data.Precipitation, h.units.Precipitation)

	var b strings.Builder
	if h.offline {
		b.WriteString("OFFLINE | ")
	}
	fmt.Fprintf(&b, "Weather: %s | Temp: %.1f%s | Wind: %.1f%s | Precip: %.1f%s",
		h.data.Condition, temp, tempUnit, wind, windUnit, precip, precipUnit)
	if !h.hideLocation {
		fmt.Fprintf(&b, " | Location: %s", h.location.FormatCoordinates())
	}
	b.WriteString(" | Press 'q' to quit")
	return b.String()
}
