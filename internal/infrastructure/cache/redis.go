package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
)

const (
	defaultKeyPrefix = "matchtracker:"
	clearScanCount   = 200
)

// RedisResultCache shares results between replicas. Expiry is delegated to
// Redis so an entry disappears exactly one TTL after it was written.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *logging.Logger
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration, logger *logging.Logger) *RedisResultCache {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisResultCache{
		client: client,
		ttl:    ttl,
		prefix: defaultKeyPrefix,
		logger: logger,
	}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (feed.Result, bool) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "redis cache get failed", "key", key, "error", err)
		}
		return feed.Result{}, false
	}

	var result feed.Result
	if err := sonic.Unmarshal(raw, &result); err != nil {
		c.logger.WarnContext(ctx, "redis cache entry is corrupt", "key", key, "error", err)
		return feed.Result{}, false
	}
	return result, true
}

func (c *RedisResultCache) Set(ctx context.Context, key string, result feed.Result) {
	raw, err := sonic.Marshal(result)
	if err != nil {
		c.logger.WarnContext(ctx, "encode cache entry failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis cache set failed", "key", key, "error", err)
	}
}

// Clear removes this service's keys only; the database may be shared.
func (c *RedisResultCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", clearScanCount).Iterator()
	batch := make([]string, 0, clearScanCount)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearScanCount {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("delete cache keys: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("delete cache keys: %w", err)
		}
	}
	return nil
}
