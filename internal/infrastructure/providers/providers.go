package providers

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/gitjits/geodata/internal/config"
	"github.com/gitjits/geodata/internal/infrastructure/cache"
	"github.com/gitjits/geodata/internal/infrastructure/datastore"
)

const cacheDefaultTTL = 10 * time.Minute

// NewDatastore creates the document store gateway. The connection is
// established lazily on first use.
func NewDatastore(conf config.Server) *datastore.Store {
	return datastore.New(conf.MongoURI, conf.MongoDatabase)
}

// NewCache selects the entity cache backend from config.
func NewCache(conf config.Server) (cache.Cache, error) {
	switch conf.CacheBackend {
	case "none":
		return cache.Noop{}, nil
	case "memory":
		return cache.NewMemory(cacheDefaultTTL), nil
	case "redis":
		return cache.NewRedis(conf.RedisAddr, conf.RedisPassword, conf.RedisDB), nil
	case "memcached":
		return cache.NewMemcached(conf.MemcachedAddr), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", conf.CacheBackend)
	}
}

// SetupTracer installs an OTLP trace provider when tracing is enabled.
// The returned shutdown function flushes pending spans.
func SetupTracer(ctx context.Context, conf config.Server) (func(context.Context) error, error) {
	if !conf.EnableTrace {
		return func(context.Context) error { return nil }, nil
	}
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(conf.TraceEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
