// Package cache provides the optional read-through cache used by the task
// service. A Cache is never a source of truth: every failure is logged and
// reported to the caller as a miss or a no-op, so callers never see a cache
// error.
//
// Two implementations exist. RedisCache stores entries in Redis with a
// per-entry TTL. Noop always misses and is used when the cache is disabled or
// Redis was unreachable at startup. Connect picks between them once, at
// startup.
package cache
