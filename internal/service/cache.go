package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dom/nba-hub/internal/metrics"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// QueryCache is a TTL response cache over redis. A nil *QueryCache (or one
// built without an address) disables caching entirely; callers never check.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewQueryCache connects to redis and verifies the connection. addr == ""
// returns a disabled cache.
func NewQueryCache(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *zap.Logger) (*QueryCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	logger.Info("query cache enabled",
		zap.String("addr", addr),
		zap.Duration("ttl", ttl))

	return &QueryCache{client: client, ttl: ttl, logger: logger}, nil
}

// Get unmarshals the cached value into dest, reporting whether it was found.
// Cache errors count as misses; the store is still the source of truth.
func (c *QueryCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		metrics.CacheMissesTotal.Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		metrics.CacheMissesTotal.Inc()
		c.logger.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		return false
	}
	metrics.CacheHitsTotal.Inc()
	return true
}

// Set stores the value under the cache TTL. Failures are logged, not
// surfaced: caching is best-effort.
func (c *QueryCache) Set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to store cache entry", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the redis connection.
func (c *QueryCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
