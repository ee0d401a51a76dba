package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/taskhub/internal/config"
	"github.com/phrazzld/taskhub/internal/platform/logger"
	"github.com/phrazzld/taskhub/internal/redact"
	"github.com/redis/go-redis/v9"
)

// scanBatchSize is the COUNT hint passed to SCAN during prefix deletion.
const scanBatchSize = 100

// connectTimeout bounds the startup PING.
const connectTimeout = 2 * time.Second

// RedisCache implements Cache on a go-redis client.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	if client == nil {
		panic("redis client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{
		client: client,
		logger: logger.With(slog.String("component", "redis_cache")),
	}
}

// Connect performs the one-time capability check. It returns a RedisCache
// when the cache is enabled, the URL parses and the server answers PING;
// otherwise it logs the reason and returns Noop.
func Connect(ctx context.Context, cfg config.CacheConfig, log *slog.Logger) Cache {
	if log == nil {
		log = slog.Default()
	}

	if !cfg.Enabled {
		log.Info("cache disabled by configuration")
		return Noop{}
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Warn("invalid cache URL, continuing without cache",
			slog.String("error", redact.Error(err)))
		return Noop{}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("cache unreachable, continuing without cache",
			slog.String("error", redact.Error(err)))
		_ = client.Close()
		return Noop{}
	}

	log.Info("cache connected", slog.String("addr", opts.Addr), slog.Int("db", opts.DB))
	return NewRedisCache(client, log)
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log(ctx).Warn("cache get failed",
				slog.String("key", key),
				slog.String("error", redact.Error(err)))
		}
		return nil, false
	}
	return val, true
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log(ctx).Warn("cache set failed",
			slog.String("key", key),
			slog.String("error", redact.Error(err)))
	}
}

// Delete implements Cache.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log(ctx).Warn("cache delete failed",
			slog.Any("keys", keys),
			slog.String("error", redact.Error(err)))
	}
}

// DeleteByPrefix implements Cache. Matching keys are collected with a full
// SCAN pass before any of them is removed; deleting mid-iteration lets the
// server rehash and skip keys. Removal runs in DEL batches of scanBatchSize.
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	var keys []string
	iter := c.client.Scan(ctx, 0, prefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log(ctx).Warn("cache scan failed",
			slog.String("prefix", prefix),
			slog.String("error", redact.Error(err)))
		return
	}

	var deleted int64
	for start := 0; start < len(keys); start += scanBatchSize {
		end := min(start+scanBatchSize, len(keys))
		n, err := c.client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			c.log(ctx).Warn("cache prefix delete failed",
				slog.String("prefix", prefix),
				slog.String("error", redact.Error(err)))
			return
		}
		deleted += n
	}

	c.log(ctx).Debug("cache prefix invalidated",
		slog.String("prefix", prefix),
		slog.Int("matched", len(keys)),
		slog.Int64("deleted", deleted))
}

// Ping implements Cache.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) log(ctx context.Context) *slog.Logger {
	return logger.ForComponent(ctx, c.logger, "redis_cache")
}
