package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/config"
	"github.com/lixenwraith/weathr/terminal"
	"github.com/lixenwraith/weathr/weather"
)

var errUnitConflict = errors.New("--imperial and --metric cannot be used together")

// flags holds every command line option; each can also come from a WEATHR_ env var
type flags struct {
	simulate     string
	night        bool
	leaves       bool
	autoLocation bool
	hideLocation bool
	hideHUD      bool
	imperial     bool
	metric       bool
	silent       bool
	sound        bool
	color        string
	hudColor     string
	configPath   string
	debug        bool
	seed         uint64
}

// settings is the merged result of the config file and the flags
type settings struct {
	cfg       config.Config
	simulate  bool
	condition weather.Condition
	support   terminal.ColorSupport
	hudColor  tcell.Color
}

// resolve merges flags over cfg. lookupEnv and isTTY feed color detection.
func resolve(f flags, cfg config.Config, lookupEnv func(string) (string, bool), isTTY bool) (settings, error) {
	s := settings{cfg: cfg}

	if f.imperial && f.metric {
		return s, errUnitConflict
	}
	switch {
	case f.imperial:
		s.cfg.Units = weather.ImperialUnits()
	case f.metric:
		s.cfg.Units = weather.MetricUnits()
	}

	if f.autoLocation {
		s.cfg.Location.Auto = true
	}
	if f.hideLocation {
		s.cfg.Location.Hide = true
	}
	if f.hideHUD {
		s.cfg.HideHUD = true
	}
	if f.silent {
		s.cfg.Silent = true
	}

	if f.simulate != "" {
		cond, err := weather.ParseCondition(f.simulate)
		if err != nil {
			return s, err
		}
		s.simulate = true
		s.condition = cond
	}

	if f.color == "" || f.color == "auto" {
		s.support = terminal.DetectColorSupport(lookupEnv, isTTY)
	} else {
		support, err := terminal.ParseColorSupport(f.color)
		if err != nil {
			return s, err
		}
		s.support = support
	}

	if f.hudColor != "" {
		c := tcell.GetColor(f.hudColor)
		if c == tcell.ColorDefault {
			return s, fmt.Errorf("unknown HUD color %q", f.hudColor)
		}
		s.hudColor = c
	}
	return s, nil
}

// loadConfig reads the file, reporting problems on stderr and falling back to defaults
func loadConfig(path string, silent bool) config.Config {
	if path == "" {
		p, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
			return config.Default()
		}
		path = p
	}

	cfg, res, err := config.Load(path)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "warning: could not load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "using defaults. Example %s:\n\n%s\n", path, config.Example)
	case !res.Found && !silent:
		fmt.Fprintf(os.Stderr, "Config file not found at %s\n", path)
		fmt.Fprintln(os.Stderr, "Auto-detecting location via IP...")
		fmt.Fprintln(os.Stderr, "(Set auto = false in config to use Berlin as default)")
	}
	for _, key := range res.Undecoded {
		fmt.Fprintf(os.Stderr, "warning: unknown config key %q\n", key)
	}
	return cfg
}
