package pages

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"incubator/internal/incubator/metrics"
	"incubator/internal/prefix"
)

const (
	redisKeyPrefix  = "incubator:page:"
	DefaultRedisTTL = 5 * time.Minute
)

// RedisCache shares page existence answers between instances. Redis errors
// never fail a lookup: the cache is bypassed and the backend answers.
type RedisCache struct {
	client  *redis.Client
	next    Index
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

func WithRedisLogger(logger *slog.Logger) RedisCacheOption {
	return func(c *RedisCache) {
		c.logger = logger
	}
}

func WithRedisMetrics(m *metrics.Metrics) RedisCacheOption {
	return func(c *RedisCache) {
		c.metrics = m
	}
}

func WithRedisTTL(ttl time.Duration) RedisCacheOption {
	return func(c *RedisCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// NewRedisCache constructs a Redis-backed cache in front of next.
func NewRedisCache(client *redis.Client, next Index, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		client: client,
		next:   next,
		ttl:    DefaultRedisTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *RedisCache) Exists(ctx context.Context, p prefix.Title) (bool, error) {
	key := redisKeyPrefix + cacheKey(p)
	val, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		c.metrics.IncrementCacheHit("redis")
		return val == "1", nil
	case errors.Is(err, redis.Nil):
		c.metrics.IncrementCacheMiss("redis")
	default:
		c.logger.WarnContext(ctx, "redis page cache read failed", "key", key, "error", err)
	}

	exists, err := c.next.Exists(ctx, p)
	if err != nil {
		return false, err
	}
	marker := "0"
	if exists {
		marker = "1"
	}
	if err := c.client.Set(ctx, key, marker, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis page cache write failed", "key", key, "error", err)
	}
	return exists, nil
}

func (c *RedisCache) ExistingAmong(ctx context.Context, namespace int, titles []string) (map[string]bool, error) {
	if len(titles) == 0 {
		return map[string]bool{}, nil
	}
	keys := make([]string, len(titles))
	for i, t := range titles {
		keys[i] = redisKeyPrefix + cacheKey(prefix.Title{Namespace: namespace, Text: t})
	}

	found := make(map[string]bool, len(titles))
	misses := titles
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.WarnContext(ctx, "redis page cache read failed", "keys", len(keys), "error", err)
	} else {
		misses = nil
		for i, v := range vals {
			marker, ok := v.(string)
			if !ok {
				c.metrics.IncrementCacheMiss("redis")
				misses = append(misses, titles[i])
				continue
			}
			c.metrics.IncrementCacheHit("redis")
			if marker == "1" {
				found[DBKey(titles[i])] = true
			}
		}
	}
	if len(misses) == 0 {
		return found, nil
	}

	fetched, err := ExistingAmong(ctx, c.next, namespace, misses)
	if err != nil {
		return nil, err
	}
	pipe := c.client.Pipeline()
	for _, t := range misses {
		marker := "0"
		if fetched[DBKey(t)] {
			marker = "1"
			found[DBKey(t)] = true
		}
		pipe.Set(ctx, redisKeyPrefix+cacheKey(prefix.Title{Namespace: namespace, Text: t}), marker, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.WarnContext(ctx, "redis page cache write failed", "keys", len(misses), "error", err)
	}
	return found, nil
}

// Invalidate removes the cached answers for pages.
func (c *RedisCache) Invalidate(ctx context.Context, pages ...prefix.Title) error {
	if len(pages) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for _, p := range pages {
		pipe.Del(ctx, redisKeyPrefix+cacheKey(p))
	}
	_, err := pipe.Exec(ctx)
	return err
}
