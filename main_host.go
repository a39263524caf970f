//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"ravodash/app"
	"ravodash/hal"
	"ravodash/internal/buildinfo"
	"ravodash/internal/config"
	"ravodash/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := logger.Options{Debug: cfg.Debug, Verbose: cfg.Verbose, File: cfg.LogFile}
	if cfg.Mode == config.ModeTerminal {
		// stdout belongs to the terminal renderer
		opts.Out = os.Stderr
	}
	logger.Init(opts)
	defer logger.Close()

	if err := run(cfg); err != nil {
		logger.Error().Err(err).Str("mode", string(cfg.Mode)).Msg("cluster stopped")
		logger.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	rc := hal.RunConfig{
		Host: hal.HostConfig{
			Width:  cfg.Width * cfg.Scale,
			Height: cfg.Height * cfg.Scale,
			Logger: logger.HALWriter(),
		},
		Hz:       cfg.Hz,
		Ticks:    cfg.Ticks,
		Snapshot: cfg.Snapshot,
	}
	newApp := app.Runner(app.Config{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Scale:         cfg.Scale,
		Demo:          cfg.Demo,
		BlinkPeriod:   cfg.BlinkPeriod,
		SweepInterval: cfg.SweepInterval,
	})

	logger.Info().
		Str("version", buildinfo.String()).
		Str("mode", string(cfg.Mode)).
		Int("hz", cfg.Hz).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cfg.Mode {
	case config.ModeHeadless:
		err = hal.RunHeadless(ctx, newApp, rc)
	case config.ModeTerminal:
		err = hal.RunTerminal(ctx, newApp, rc)
	default:
		err = hal.RunWindow(newApp, rc)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
