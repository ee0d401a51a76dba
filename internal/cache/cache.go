package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable is returned by Ping when no cache backend is in use.
var ErrUnavailable = errors.New("cache unavailable")

// ListPrefix is shared by every cached task list, whatever its window.
const ListPrefix = "tasks:"

// Cache is a best-effort key-value store for serialized query results.
type Cache interface {
	// Get returns the value stored under key. The second result is false
	// on a miss or any backend failure.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string)

	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(ctx context.Context, prefix string)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// ListKey returns the key of a cached task list window.
func ListKey(skip, limit int) string {
	return fmt.Sprintf("%s%d:%d", ListPrefix, skip, limit)
}

// TaskKey returns the key of a single cached task.
func TaskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

// Noop is a Cache that stores nothing.
type Noop struct{}

var _ Cache = Noop{}

// Get always misses.
func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }

// Set does nothing.
func (Noop) Set(context.Context, string, []byte, time.Duration) {}

// Delete does nothing.
func (Noop) Delete(context.Context, ...string) {}

// DeleteByPrefix does nothing.
func (Noop) DeleteByPrefix(context.Context, string) {}

// Ping always returns ErrUnavailable.
func (Noop) Ping(context.Context) error { return ErrUnavailable }
