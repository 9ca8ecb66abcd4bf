package cache

import (
	"context"
	"time"
)

// Cache is the injectable read cache for entity documents. Values are
// opaque bytes (JSON-encoded documents) so in-process and networked
// backends share one contract. Every write path of the owning usecase
// invalidates through Delete; a miss is never an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// Noop disables caching: every Get is a miss.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {}

func (Noop) Delete(ctx context.Context, keys ...string) {}
