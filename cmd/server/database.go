package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/taskhub/internal/config"
	"github.com/phrazzld/taskhub/internal/platform/postgres"
	"github.com/phrazzld/taskhub/internal/redact"
)

// startupProbeTimeout bounds the initial ping and schema bootstrap.
const startupProbeTimeout = 5 * time.Second

// setupAppDatabase opens the connection pool and checks connectivity.
// Only a malformed configuration is an error; a failed ping is logged and
// the pool is returned so the server can start while the database is down.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		logger.Warn("Database unreachable at startup, continuing",
			"error", redact.Error(err))
		return db, nil
	}

	logger.Info("Database connection established")
	return db, nil
}

// bootstrapSchema creates the tasks table if it is missing. Failures are
// logged; requests will surface store errors until the table exists.
func bootstrapSchema(ctx context.Context, db *sql.DB, logger *slog.Logger) {
	schemaCtx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	defer cancel()

	if err := postgres.EnsureSchema(schemaCtx, db, logger); err != nil {
		logger.Warn("Schema bootstrap failed, continuing",
			"error", redact.Error(err))
	}
}
