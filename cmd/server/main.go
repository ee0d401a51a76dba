// Package main implements the entry point for the TaskHub API server, a
// CRUD service for tasks backed by PostgreSQL with an optional Redis cache.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point for the taskhub server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "taskhub: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, connects the backing services and serves HTTP
// until ctx is cancelled. An unreachable database or cache at startup is
// logged and does not prevent the server from starting.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cache_enabled", cfg.Cache.Enabled)

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	bootstrapSchema(ctx, db, logger)

	appCache := setupAppCache(ctx, cfg, logger)

	app, err := newApplication(cfg, logger, db, appCache)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
