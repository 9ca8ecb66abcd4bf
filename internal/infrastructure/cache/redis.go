package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a cache backend shared across instances.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a redis-backed cache.
func NewRedis(addr string, password string, db int) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.DebugContext(ctx, "redis get failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
			slog.String("module", "cache"),
		)
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.DebugContext(ctx, "redis set failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
			slog.String("module", "cache"),
		)
	}
}

func (r *Redis) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		slog.DebugContext(ctx, "redis delete failed",
			slog.String("error", err.Error()),
			slog.String("module", "cache"),
		)
	}
}
