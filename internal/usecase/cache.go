package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/cache"
)

const cacheTTL = 10 * time.Minute

func docKey(collection, key string) string {
	return collection + ":" + key
}

func listKey(collection string) string {
	return collection + ":all"
}

func cachedDoc(ctx context.Context, c cache.Cache, key string) (domain.Document, bool) {
	b, ok := c.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var doc domain.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		c.Delete(ctx, key)
		return nil, false
	}
	return doc, true
}

func storeDoc(ctx context.Context, c cache.Cache, key string, doc domain.Document) {
	b, err := json.Marshal(doc)
	if err != nil {
		return
	}
	c.Set(ctx, key, b, cacheTTL)
}

func cachedList(ctx context.Context, c cache.Cache, key string) ([]domain.Document, bool) {
	b, ok := c.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var docs []domain.Document
	if err := json.Unmarshal(b, &docs); err != nil {
		c.Delete(ctx, key)
		return nil, false
	}
	return docs, true
}

func storeList(ctx context.Context, c cache.Cache, key string, docs []domain.Document) {
	b, err := json.Marshal(docs)
	if err != nil {
		return
	}
	c.Set(ctx, key, b, cacheTTL)
}
