package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"tanksim/app"
	"tanksim/hal"
	"tanksim/internal/buildinfo"
	"tanksim/internal/config"
	"tanksim/internal/logging"
	"tanksim/tank"
)

func main() {
	var (
		configPath string
		headless   bool
		terminal   bool
		ticks      uint64
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "Config file (default: search for tanksim.yaml).")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&terminal, "terminal", false, "Render into the terminal.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless or terminal mode (0 = run forever).")
	flag.StringVar(&logLevel, "log-level", "", "Override the configured log level.")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	switch {
	case headless:
		cfg.Mode = config.ModeHeadless
	case terminal:
		cfg.Mode = config.ModeTerminal
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	// The terminal is the display, so logs go to a file.
	if cfg.Mode == config.ModeTerminal && cfg.LogFile == "" {
		cfg.LogFile = "tanksim.log"
	}

	log, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, ticks, log); err != nil {
		log.Error().Err(err).Msg("exit")
		closeLog()
		os.Exit(1)
	}
}

func run(cfg config.Config, ticks uint64, log zerolog.Logger) error {
	log.Info().Object("build", buildinfo.Fields()).Str("mode", cfg.Mode).Msg("starting")

	appCfg := app.Config{
		Sim: tank.Options{
			Step:    cfg.Physics.Step,
			Gravity: cfg.Physics.Gravity,
			View:    tank.View(cfg.Camera.View),
			Zoom:    cfg.Camera.Zoom,
		},
		Realtime:        cfg.Physics.Realtime,
		HUD:             cfg.HUD.Enabled,
		Audio:           cfg.Audio.Enabled,
		ToneHz:          cfg.Audio.ToneHz,
		ToneDur:         time.Duration(cfg.Audio.ToneMs) * time.Millisecond,
		KeepPanicScreen: cfg.Mode != config.ModeHeadless,
	}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, appCfg, log).Step
	}
	host := hal.HostConfig{
		Logger: logging.NewLines(log, "hal"),
		Audio:  cfg.Audio.Enabled && cfg.Mode == config.ModeWindow,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cfg.Mode {
	case config.ModeHeadless:
		host.Width, host.Height = cfg.Headless.Width, cfg.Headless.Height
		if ticks == 0 {
			ticks = cfg.Headless.Ticks
		}
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Hz: cfg.Headless.Hz, Ticks: ticks, Host: host})
	case config.ModeTerminal:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: cfg.Terminal.Hz, Ticks: ticks, Host: host})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{
			Title:  buildinfo.Title(),
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Scale:  cfg.Window.Scale,
			TPS:    cfg.Window.TPS,
			Host:   host,
		})
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
