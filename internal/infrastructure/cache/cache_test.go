package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	basecache "github.com/riskibarqy/match-tracker/internal/platform/cache"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisResultCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisResultCache(client, ttl, nil), mr
}

func sampleResult() feed.Result {
	return feed.Result{
		Payload:    feed.NewPayload(feed.ShapeFootball, []byte(`{"matches":[]}`)),
		Provenance: feed.ProvenanceLive,
	}
}

func TestMemoryResultCache_RoundTrip(t *testing.T) {
	c := NewMemoryResultCache(basecache.NewStore(time.Minute, 8))
	ctx := context.Background()

	if _, ok := c.Get(ctx, "football:upcoming"); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Set(ctx, "football:upcoming", sampleResult())

	got, ok := c.Get(ctx, "football:upcoming")
	if !ok || got.Provenance != feed.ProvenanceLive || string(got.Payload.Body) != `{"matches":[]}` {
		t.Fatalf("unexpected cached result: %+v ok=%v", got, ok)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after clear")
	}
}

func TestRedisResultCache_RoundTripAndExpiry(t *testing.T) {
	c, mr := newRedisCache(t, 5*time.Minute)
	ctx := context.Background()

	c.Set(ctx, "basketball:standings:12:2023-2024", sampleResult())
	got, ok := c.Get(ctx, "basketball:standings:12:2023-2024")
	if !ok {
		t.Fatalf("expected redis hit")
	}
	if got.Payload.Shape != feed.ShapeFootball || string(got.Payload.Body) != `{"matches":[]}` {
		t.Fatalf("unexpected decoded result: %+v", got)
	}

	mr.FastForward(5 * time.Minute)
	if _, ok := c.Get(ctx, "basketball:standings:12:2023-2024"); ok {
		t.Fatalf("expected entry to expire after ttl")
	}
}

func TestRedisResultCache_ClearKeepsForeignKeys(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "cricket:news", sampleResult())
	c.Set(ctx, "cricket:series", sampleResult())
	if err := mr.Set("other-service:key", "v"); err != nil {
		t.Fatalf("seed foreign key: %v", err)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := c.Get(ctx, "cricket:news"); ok {
		t.Fatalf("expected cricket:news to be cleared")
	}
	if !mr.Exists("other-service:key") {
		t.Fatalf("expected foreign key to survive clear")
	}
}

func TestRedisResultCache_UnavailableIsMiss(t *testing.T) {
	c, mr := newRedisCache(t, time.Minute)
	mr.Close()

	c.Set(context.Background(), "k", sampleResult())
	if _, ok := c.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss when redis is down")
	}
}

func TestTieredResultCache_FallsThroughToShared(t *testing.T) {
	ctx := context.Background()
	local := NewMemoryResultCache(basecache.NewStore(time.Minute, 8))
	shared, _ := newRedisCache(t, time.Minute)

	shared.Set(ctx, "football:today", sampleResult())
	tiered := NewTieredResultCache(local, shared)

	if _, ok := tiered.Get(ctx, "football:today"); !ok {
		t.Fatalf("expected shared tier hit")
	}
	if local.Len() != 0 {
		t.Fatalf("expected shared hit not to be copied locally")
	}

	tiered.Set(ctx, "football:previous", sampleResult())
	if _, ok := local.Get(ctx, "football:previous"); !ok {
		t.Fatalf("expected write-through to local tier")
	}

	if err := tiered.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := tiered.Get(ctx, "football:today"); ok {
		t.Fatalf("expected both tiers to be cleared")
	}
}
