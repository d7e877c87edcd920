package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"sevenstone/app"
	"sevenstone/hal"
)

func main() {
	var cfgPath string
	var headless hal.HeadlessConfig
	flag.StringVar(&cfgPath, "config", "", "Path to a YAML config file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := app.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// Geometry construction runs here: an invalid parameter fails before
	// any window is shown.
	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("init viewer", zap.Error(err))
	}

	if headless.Enabled {
		headless.Width = cfg.Width
		headless.Height = cfg.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, a.Step, headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Fatal("headless run", zap.Error(err))
		}
		return
	}

	if err := hal.RunWindow(a.Step, hal.WindowConfig{
		Title:  "sevenstone",
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
	}); err != nil {
		logger.Fatal("window run", zap.Error(err))
	}
}
