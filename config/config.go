// Package config loads the optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/weather"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrNoConfigDir      = errors.New("no config directory")
)

// Location is the [location] table
type Location struct {
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Auto      bool    `toml:"auto"`
	Hide      bool    `toml:"hide"`
}

// Config is the whole file
type Config struct {
	Location Location      `toml:"location"`
	HideHUD  bool          `toml:"hide_hud"`
	Units    weather.Units `toml:"units"`
	Silent   bool          `toml:"silent"`
}

// Default is used when no file exists. Location is auto-detected.
func Default() Config {
	return Config{
		Location: Location{
			Latitude:  parameter.DefaultLatitude,
			Longitude: parameter.DefaultLongitude,
			Auto:      true,
		},
		Units: weather.MetricUnits(),
	}
}

// Example is printed when the file cannot be used
const Example = `hide_hud = false
silent = false

[location]
latitude = 52.52
longitude = 13.41
auto = false
hide = false

[units]
temperature = "celsius"   # celsius, fahrenheit
wind_speed = "kmh"        # kmh, ms, mph, kn
precipitation = "mm"      # mm, inch
`

// Path returns $XDG_CONFIG_HOME/weathr/config.toml or its platform equivalent
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, parameter.CacheDirName, "config.toml"), nil
}

// Result describes how a Load went
type Result struct {
	Found bool
	// Undecoded lists keys present in the file but not understood
	Undecoded []string
}

// Load decodes path over the defaults. A missing file returns the defaults
// with Found false and no error.
func Load(path string) (Config, Result, error) {
	cfg := Default()
	var res Result

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, res, nil
	}
	res.Found = true

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), res, fmt.Errorf("parse %s: %w", path, err)
	}

	// A [location] table without an auto key means a fixed location
	if md.IsDefined("location") && !md.IsDefined("location", "auto") {
		cfg.Location.Auto = false
	}

	for _, key := range md.Undecoded() {
		res.Undecoded = append(res.Undecoded, key.String())
	}

	cfg.Units = cfg.Units.Normalize()
	if err := cfg.Validate(); err != nil {
		return Default(), res, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, res, nil
}

// Validate checks coordinate ranges and unit names
func (c Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("%w, got %v", ErrInvalidLatitude, c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("%w, got %v", ErrInvalidLongitude, c.Location.Longitude)
	}
	return c.Units.Validate()
}

// WeatherLocation converts the configured coordinates
func (c Config) WeatherLocation() weather.Location {
	return weather.Location{Latitude: c.Location.Latitude, Longitude: c.Location.Longitude}
}
