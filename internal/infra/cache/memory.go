// Package cache holds the last-known value caches for provider data.
package cache

import (
	"context"
	"sync"
	"time"

	"tidewise/internal/domain/service"

	"github.com/jonboulle/clockwork"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

type memoryCache struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	entries map[string]entry
}

// NewMemoryCache returns a process-local cache. Expired entries are dropped on read.
func NewMemoryCache(clock clockwork.Clock) service.Cache {
	return &memoryCache{clock: clock, entries: make(map[string]entry)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !c.clock.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}

	return append([]byte(nil), e.value...), true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = c.clock.Now().Add(ttl)
	}
	c.entries[key] = e

	return nil
}
