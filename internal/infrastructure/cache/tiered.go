package cache

import (
	"context"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
)

// TieredResultCache reads the local tier first, then the shared one. A
// shared hit is not copied into the local tier, which would restart its TTL.
type TieredResultCache struct {
	local  feed.ResultCache
	shared feed.ResultCache
}

func NewTieredResultCache(local, shared feed.ResultCache) *TieredResultCache {
	return &TieredResultCache{local: local, shared: shared}
}

func (c *TieredResultCache) Get(ctx context.Context, key string) (feed.Result, bool) {
	if result, ok := c.local.Get(ctx, key); ok {
		return result, true
	}
	return c.shared.Get(ctx, key)
}

func (c *TieredResultCache) Set(ctx context.Context, key string, result feed.Result) {
	c.local.Set(ctx, key, result)
	c.shared.Set(ctx, key, result)
}

func (c *TieredResultCache) Clear(ctx context.Context) error {
	if err := c.local.Clear(ctx); err != nil {
		return err
	}
	return c.shared.Clear(ctx)
}
