package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 15 * time.Minute

// Memory is an in-process cache backend.
type Memory struct {
	inner *gocache.Cache
}

// NewMemory creates an in-process cache with the given default TTL.
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{
		inner: gocache.New(defaultTTL, memoryCleanupInterval),
	}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := m.inner.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.inner.Set(key, value, ttl)
}

func (m *Memory) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		m.inner.Delete(key)
	}
}
