package pages

import (
	"context"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"incubator/internal/incubator/metrics"
	"incubator/internal/prefix"
)

const (
	DefaultLRUSize = 4096
	DefaultLRUTTL  = 30 * time.Second
	// DefaultLookupTimeout bounds a shared backend lookup, which outlives
	// the caller that started it.
	DefaultLookupTimeout = 10 * time.Second
)

// LRUCache is an in-process existence cache in front of another index.
// Concurrent misses for the same page share one backend lookup. The shared
// lookup is detached from its callers; each caller stops waiting when its own
// context ends.
type LRUCache struct {
	next          Index
	cache         *expirable.LRU[string, bool]
	group         singleflight.Group
	metrics       *metrics.Metrics
	lookupTimeout time.Duration
}

// NewLRUCache caches up to size answers of next for ttl.
func NewLRUCache(next Index, size int, ttl time.Duration, m *metrics.Metrics) *LRUCache {
	if size <= 0 {
		size = DefaultLRUSize
	}
	if ttl <= 0 {
		ttl = DefaultLRUTTL
	}
	return &LRUCache{
		next:          next,
		cache:         expirable.NewLRU[string, bool](size, nil, ttl),
		metrics:       m,
		lookupTimeout: DefaultLookupTimeout,
	}
}

func cacheKey(p prefix.Title) string {
	return strconv.Itoa(p.Namespace) + ":" + DBKey(p.Text)
}

func (c *LRUCache) Exists(ctx context.Context, p prefix.Title) (bool, error) {
	key := cacheKey(p)
	if exists, ok := c.cache.Get(key); ok {
		c.metrics.IncrementCacheHit("lru")
		return exists, nil
	}
	c.metrics.IncrementCacheMiss("lru")

	ch := c.group.DoChan(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.lookupTimeout)
		defer cancel()
		exists, err := c.next.Exists(lookupCtx, p)
		if err != nil {
			return false, err
		}
		c.cache.Add(key, exists)
		return exists, nil
	})
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return false, res.Err
		}
		return res.Val.(bool), nil
	}
}

func (c *LRUCache) ExistingAmong(ctx context.Context, namespace int, titles []string) (map[string]bool, error) {
	found := make(map[string]bool, len(titles))
	var misses []string
	for _, t := range titles {
		key := cacheKey(prefix.Title{Namespace: namespace, Text: t})
		if exists, ok := c.cache.Get(key); ok {
			c.metrics.IncrementCacheHit("lru")
			if exists {
				found[DBKey(t)] = true
			}
			continue
		}
		c.metrics.IncrementCacheMiss("lru")
		misses = append(misses, t)
	}
	if len(misses) == 0 {
		return found, nil
	}

	fetched, err := ExistingAmong(ctx, c.next, namespace, misses)
	if err != nil {
		return nil, err
	}
	for _, t := range misses {
		exists := fetched[DBKey(t)]
		c.cache.Add(cacheKey(prefix.Title{Namespace: namespace, Text: t}), exists)
		if exists {
			found[DBKey(t)] = true
		}
	}
	return found, nil
}

// Invalidate drops the cached answer for a page.
func (c *LRUCache) Invalidate(p prefix.Title) {
	c.cache.Remove(cacheKey(p))
}

// Purge drops every cached answer.
func (c *LRUCache) Purge() {
	c.cache.Purge()
}

// Len is the number of cached answers.
func (c *LRUCache) Len() int {
	return c.cache.Len()
}
