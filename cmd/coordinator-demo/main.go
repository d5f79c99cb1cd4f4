package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/config"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/host"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/host/sdlhost"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			coordinator.GetLogger().Error("Failed to load configuration", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg = cfg.ApplyEnv()

	coordinator.Init(cfg)
	defer coordinator.Close()

	logger := coordinator.GetLogger()

	localizer, err := coordinator.NewLocalizer(cfg.Language)
	if err != nil {
		logger.Error("Failed to load translations", "error", err)
		os.Exit(1)
	}

	if cfg.Headless {
		h := host.NewHeadless(localizer, logger)
		// Replays a short session: open the example with data, bump the
		// counter twice, report it back to the launcher, then go back.
		h.Script(
			host.Input{Kind: host.InputSelect, Index: 1},
			host.Input{Kind: host.InputNext},
			host.Input{Kind: host.InputNext},
			host.Input{Kind: host.InputSelect, Index: 0},
			host.Input{Kind: host.InputBack},
			host.Input{Kind: host.InputQuit},
		)
		run(coordinator.New(cfg, h), h)
		return
	}

	h, err := sdlhost.New(cfg, localizer)
	if err != nil {
		logger.Error("Failed to open window", "error", err)
		os.Exit(1)
	}
	defer h.Close()

	run(coordinator.New(cfg, h), h)
}

func run(app *coordinator.App, source host.InputSource) {
	logger := coordinator.GetLogger()

	if err := app.Start(); err != nil {
		logger.Error("Failed to present start destination", "error", err)
		return
	}

	if err := app.Run(source); err != nil {
		logger.Error("Navigation failed", "error", err)
		return
	}

	stats := app.Router().Stats()
	logger.Info("Exiting",
		"dispatched", stats.Dispatched,
		"unrecognized", stats.Unrecognized,
		"failed", stats.Failed)
}
