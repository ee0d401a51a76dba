package main

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskhub/internal/cache"
	"github.com/phrazzld/taskhub/internal/config"
)

// setupAppCache runs the one-time cache capability check. The result is
// cache.Noop when the cache is disabled or unreachable.
func setupAppCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) cache.Cache {
	return cache.Connect(ctx, cfg.Cache, logger)
}
