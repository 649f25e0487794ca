package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/weathr/audio"
	"github.com/lixenwraith/weathr/core"
	"github.com/lixenwraith/weathr/engine"
	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/terminal"
	"github.com/lixenwraith/weathr/weather"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd, _ := buildCLI()
	return rootCmd.ParseAndRun(context.Background(), os.Args[1:])
}

func buildCLI() (*ffcli.Command, *flags) {
	var f flags
	fs := flag.NewFlagSet("weathr", flag.ContinueOnError)
	fs.StringVar(&f.simulate, "simulate", "", "Simulate a condition: "+strings.Join(weather.ConditionNames(), ", "))
	fs.BoolVar(&f.night, "night", false, "Force night")
	fs.BoolVar(&f.leaves, "leaves", false, "Show falling autumn leaves")
	fs.BoolVar(&f.autoLocation, "auto-location", false, "Detect location via IP even if the config sets one")
	fs.BoolVar(&f.hideLocation, "hide-location", false, "Hide coordinates in the status line")
	fs.BoolVar(&f.hideHUD, "hide-hud", false, "Hide the status line")
	fs.BoolVar(&f.imperial, "imperial", false, "Use °F, mph and inches")
	fs.BoolVar(&f.metric, "metric", false, "Use °C, km/h and mm")
	fs.BoolVar(&f.silent, "silent", false, "Suppress messages before the scene starts")
	fs.BoolVar(&f.sound, "sound", false, "Play thunder on lightning strikes")
	fs.StringVar(&f.color, "color", "auto", "Color support: auto, none, basic, 256, truecolor")
	fs.StringVar(&f.hudColor, "hud-color", "", "Status line color name or #rrggbb")
	fs.StringVar(&f.configPath, "config", "", "Config file path (default: user config dir)")
	fs.BoolVar(&f.debug, "debug", false, "Write debug logs to logs/weathr.log")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed, 0 picks one from the clock")

	cmd := &ffcli.Command{
		Name:       "weathr",
		ShortUsage: "weathr [flags]",
		ShortHelp:  "Animated weather in the terminal",
		LongHelp:   "Every flag can also be set through a WEATHR_ environment variable, e.g. WEATHR_SIMULATE=snow.",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("WEATHR")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
			}
			return execWeathr(ctx, f)
		},
	}
	return cmd, &f
}

func execWeathr(ctx context.Context, f flags) error {
	logFile := setupLogging(f.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := loadConfig(f.configPath, f.silent)
	s, err := resolve(f, cfg, os.LookupEnv, terminal.IsInteractive())
	if err != nil {
		return err
	}
	log.Printf("weathr: color=%s simulate=%v units=%+v", s.support, s.simulate, s.cfg.Units)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, err := weather.NewCache("")
	if err != nil {
		log.Printf("weathr: cache disabled: %v", err)
	}

	loc := s.cfg.WeatherLocation()
	if s.cfg.Location.Auto && !s.simulate {
		detected, err := weather.NewGeolocator(parameter.GeolocationURL, cache).Locate(ctx)
		if err != nil {
			if !s.cfg.Silent {
				fmt.Fprintf(os.Stderr, "Location detection failed (%v), using %s\n", err, loc.FormatCoordinates())
			}
		} else {
			loc = detected
			if !s.cfg.Silent {
				name := loc.City
				if name == "" {
					name = "unknown city"
				}
				fmt.Fprintf(os.Stderr, "Location: %s (%s)\n", name, loc.FormatCoordinates())
			}
		}
	}

	term := terminal.New(terminal.Options{
		Support:   s.support,
		MinWidth:  parameter.MinTerminalWidth,
		MinHeight: parameter.MinTerminalHeight,
	})
	if err := term.Init(); err != nil {
		return err
	}
	core.SetCrashTerminal(term)
	terminal.SetCrashHandler(core.HandleCrash)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	seed := f.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	opts := engine.Options{
		Units:        s.cfg.Units,
		Location:     loc,
		HideLocation: s.cfg.Location.Hide,
		HideHUD:      s.cfg.HideHUD,
		Night:        f.night,
		Leaves:       f.leaves,
		HUDColor:     s.hudColor,
	}

	var player *audio.Player
	if f.sound {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("audio: %v", err)
		} else {
			opts.OnStrike = player.PlayThunder
		}
		defer player.Cleanup()
	}

	var updates chan weather.Update
	if !s.simulate {
		updates = weather.NewUpdates()
		svc := weather.NewService(weather.NewClient(parameter.OpenMeteoURL), cache, loc, parameter.WeatherRefreshInterval)
		core.Go(func() { svc.Run(ctx, updates) })
	}

	app := engine.New(term, terminal.NewANSIWriter(term.Output(), term.ColorSupport()), updates, rng, opts)
	if s.simulate {
		app.SetWeather(weather.Simulated(s.condition, f.night, time.Now()))
	}

	runErr := app.Run(ctx)
	term.Fini()
	core.SetCrashTerminal(nil)
	log.Printf("weathr: exit after %d frames", app.Frames())
	return runErr
}
