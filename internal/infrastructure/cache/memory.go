package cache

import (
	"context"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	basecache "github.com/riskibarqy/match-tracker/internal/platform/cache"
)

// MemoryResultCache keeps orchestrated results in the process-local LRU.
type MemoryResultCache struct {
	store *basecache.Store
}

func NewMemoryResultCache(store *basecache.Store) *MemoryResultCache {
	return &MemoryResultCache{store: store}
}

func (c *MemoryResultCache) Get(ctx context.Context, key string) (feed.Result, bool) {
	v, ok := c.store.Get(ctx, key)
	if !ok {
		return feed.Result{}, false
	}
	result, ok := v.(feed.Result)
	return result, ok
}

func (c *MemoryResultCache) Set(ctx context.Context, key string, result feed.Result) {
	c.store.Set(ctx, key, result)
}

func (c *MemoryResultCache) Clear(ctx context.Context) error {
	c.store.Clear(ctx)
	return nil
}

func (c *MemoryResultCache) Len() int {
	return c.store.Len()
}
