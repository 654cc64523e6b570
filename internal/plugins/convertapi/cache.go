package convertapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores marshaled conversion responses in Redis. Conversions are pure
// functions of (date, type, locale), so entries never go stale; the TTL only
// bounds memory usage.
//
// The cache is strictly best effort: every Redis failure is logged and the
// request proceeds as if there were no cache.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache creates a response cache backed by the given client. A nil client
// yields a disabled cache whose Get always misses.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// conversionKey builds the cache key for a conversion request.
func conversionKey(date, typ, locale string) string {
	return fmt.Sprintf("convert:v1:%s:%s:%s", date, typ, locale)
}

// Get returns the cached response body for the key, or ok=false on a miss,
// a disabled cache, or any Redis error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.rdb == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("conversion cache read failed", slog.Any("error", err))
		}
		return nil, false
	}
	return body, true
}

// Set marshals the payload and stores it under the key. Failures are logged
// and swallowed; the caller has already computed the response.
func (c *Cache) Set(ctx context.Context, key string, payload any) {
	if c.rdb == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("conversion cache marshal failed", slog.Any("error", err))
		return
	}
	if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
		slog.Warn("conversion cache write failed", slog.Any("error", err))
	}
}
