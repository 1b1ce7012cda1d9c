package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storetrack/storetrack/pkg/logger"
)

const keyPrefix = "reports:sales:"

// DefaultTTL bounds report staleness between invalidations.
const DefaultTTL = 5 * time.Minute

// ReportCache caches rendered sales-report responses in Redis. A nil client
// disables caching; every method degrades to a no-op.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Key derives the cache key for one report request from its query string.
func Key(rawQuery string) string {
	hash := sha256.Sum256([]byte(rawQuery))
	return keyPrefix + hex.EncodeToString(hash[:])
}

// Get returns the cached response body for key, if present.
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	body, err := c.client.Get(ctx, key).Bytes()
	if err != nil || len(body) == 0 {
		return nil, false
	}
	logger.Debug(ctx).Str("cache_key", key).Msg("Report cache hit")
	return body, true
}

// Set stores a rendered response body under key for the configured TTL.
func (c *ReportCache) Set(ctx context.Context, key string, body []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache report")
	}
}

// InvalidateSalesReports drops every cached sales report. Called after any
// order status change that affects revenue.
func (c *ReportCache) InvalidateSalesReports(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan report cache keys: %w", err)
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		logger.Info(ctx).Int("count", len(keys)).Msg("Report cache invalidated")
	}
	return nil
}
