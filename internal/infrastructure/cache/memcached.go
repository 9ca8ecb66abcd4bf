package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// Memcached is a cache backend for deployments that already run
// memcached.
type Memcached struct {
	client *memcache.Client
}

// NewMemcached creates a memcached-backed cache.
func NewMemcached(server string) *Memcached {
	return &Memcached{client: memcache.New(server)}
}

func (m *Memcached) Get(ctx context.Context, key string) ([]byte, bool) {
	item, err := m.client.Get(key)
	if err != nil {
		if err != memcache.ErrCacheMiss {
			slog.DebugContext(ctx, "memcached get failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
				slog.String("module", "cache"),
			)
		}
		return nil, false
	}
	return item.Value, true
}

func (m *Memcached) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	err := m.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl / time.Second),
	})
	if err != nil {
		slog.DebugContext(ctx, "memcached set failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
			slog.String("module", "cache"),
		)
	}
}

func (m *Memcached) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := m.client.Delete(key); err != nil && err != memcache.ErrCacheMiss {
			slog.DebugContext(ctx, "memcached delete failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
				slog.String("module", "cache"),
			)
		}
	}
}
