package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/tunedex/internal/server"
	"github.com/desertthunder/tunedex/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve seeds the store when a script is configured and serves the HTTP API until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if host := cmd.String("host"); host != "" {
		config.Server.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		config.Server.Port = port
	}
	if path := cmd.String("seed"); path != "" {
		config.Catalog.SeedPath = path
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if config.Catalog.SeedPath != "" {
		if _, err := r.applyScript(config.Catalog.SeedPath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(r.store, config.Server, r.logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	r.logger.Info("server stopped")
	return nil
}

// resolveConfig loads path when it differs from the config the runner was built with, falling back to that config
// when the file does not exist.
func (r *Runner) resolveConfig(path string) (*shared.Config, error) {
	if path == "" || path == r.configPath {
		copied := *r.config
		return &copied, nil
	}

	if _, err := os.Stat(path); err != nil {
		r.logger.Warn("config file not found, using defaults", "path", path)
		copied := *r.config
		return &copied, nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if level, err := shared.ParseLogLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(r.logger, level)
	}
	return config, nil
}
