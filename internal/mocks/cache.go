package mocks

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/taskhub/internal/cache"
)

// MockCache is an in-process cache.Cache that records its traffic.
// TTLs are recorded but never enforced.
type MockCache struct {
	mu      sync.Mutex
	Entries map[string][]byte
	TTLs    map[string]time.Duration
	Deleted []string
	Prefix  []string
	PingErr error
}

var _ cache.Cache = (*MockCache)(nil)

// NewMockCache returns an empty MockCache.
func NewMockCache() *MockCache {
	return &MockCache{
		Entries: make(map[string][]byte),
		TTLs:    make(map[string]time.Duration),
	}
}

// Get implements cache.Cache.
func (m *MockCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Entries[key]
	return v, ok
}

// Set implements cache.Cache.
func (m *MockCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries[key] = value
	m.TTLs[key] = ttl
}

// Delete implements cache.Cache.
func (m *MockCache) Delete(_ context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.Entries, k)
		m.Deleted = append(m.Deleted, k)
	}
}

// DeleteByPrefix implements cache.Cache.
func (m *MockCache) DeleteByPrefix(_ context.Context, prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prefix = append(m.Prefix, prefix)
	for k := range m.Entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.Entries, k)
		}
	}
}

// Ping implements cache.Cache.
func (m *MockCache) Ping(context.Context) error {
	return m.PingErr
}

// Has reports whether key is currently cached.
func (m *MockCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Entries[key]
	return ok
}
