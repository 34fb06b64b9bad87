package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/tunedex/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring config.toml", "error", err)
		}
	}

	if level, err := shared.ParseLogLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	} else {
		logger.Warn("invalid log level, using info", "level", config.Log.Level)
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: "config.toml",
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "tunedex",
		Usage:    "In-memory music catalog with playlists, listeners & likes",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
