package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/taskhub/internal/api/shared"
	"github.com/phrazzld/taskhub/internal/cache"
	"github.com/phrazzld/taskhub/internal/platform/logger"
	"github.com/phrazzld/taskhub/internal/redact"
	"github.com/phrazzld/taskhub/internal/store"
)

// DefaultHealthTimeout bounds each backing service check.
const DefaultHealthTimeout = 2 * time.Second

// HealthHandler reports whether the database and cache are reachable.
type HealthHandler struct {
	db      store.Pinger
	cache   cache.Cache
	timeout time.Duration
	logger  *slog.Logger
}

// NewHealthHandler creates a new HealthHandler. A nil cache is reported as
// unreachable.
func NewHealthHandler(db store.Pinger, c cache.Cache, logger *slog.Logger) *HealthHandler {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil for HealthHandler")
	}
	if c == nil {
		c = cache.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HealthHandler{
		db:      db,
		cache:   c,
		timeout: DefaultHealthTimeout,
		logger:  logger.With(slog.String("component", "health_handler")),
	}
}

// Health handles GET /health requests. It always answers 200; the body
// carries the verdict.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "health_handler")

	resp := HealthResponse{
		Database: h.check(r.Context(), log, "database", h.db.PingContext),
		Redis:    h.check(r.Context(), log, "redis", h.cache.Ping),
	}

	resp.Status = HealthStatusUnhealthy
	if resp.Database && resp.Redis {
		resp.Status = HealthStatusHealthy
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func (h *HealthHandler) check(
	ctx context.Context,
	log *slog.Logger,
	name string,
	ping func(context.Context) error,
) bool {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := ping(ctx); err != nil {
		log.Warn("health check failed",
			slog.String("dependency", name),
			slog.String("error", redact.Error(err)))
		return false
	}
	return true
}
