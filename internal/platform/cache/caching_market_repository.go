// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"xrp_alert_backend/internal/feature/price/usecase"
)

// DefaultPriceTTL bounds how stale a cached quote may be. The upstream charts
// endpoint aggregates per minute, so anything shorter just burns requests.
const DefaultPriceTTL = 30 * time.Second

// cachedQuote is the Redis value format for a cached price.
type cachedQuote struct {
	Price float64 `json:"price"`
}

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. With a nil Redis client every call
// passes straight through.
type CachingMarketRepository struct {
	inner usecase.MarketRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to DefaultPriceTTL. If namespace is empty, it uses
// "price". The pair becomes part of the cache key.
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace, pair string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = DefaultPriceTTL
	}
	if namespace == "" {
		namespace = "price"
	}
	return &CachingMarketRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   fmt.Sprintf("%s:latest:%s", namespace, safe(pair)),
	}
}

// LatestPrice retrieves the price, checking cache first then falling back to
// the market source.
func (c *CachingMarketRepository) LatestPrice(ctx context.Context) (float64, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.LatestPrice(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var q cachedQuote
		if err := json.Unmarshal(b, &q); err == nil {
			return q.Price, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to the market source
	price, err := c.inner.LatestPrice(ctx)
	if err != nil {
		return 0, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(cachedQuote{Price: price}); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return price, nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
