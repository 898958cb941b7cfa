package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/katalon/insights/internal/domain/analytics"
	"github.com/katalon/insights/internal/shared/biztime"
	"github.com/katalon/insights/internal/shared/logger"
)

const statsKeyPrefix = "insights:stats:"

// StatsKey identifies one dashboard computation. The rolling ranges depend
// on the current day, so the day is part of the key.
// Format: insights:stats:{today}:{range}:{start}:{end}:{period}
func StatsKey(f analytics.Filter, now time.Time) string {
	return statsKeyPrefix + strings.Join([]string{
		biztime.DateKey(now),
		string(f.TimeRange),
		f.StartDate,
		f.EndDate,
		string(f.Period),
	}, ":")
}

// RedisStatsCache keeps computed dashboard stats in Redis for a short TTL.
// Redis failures are logged and reported as misses; the caller recomputes.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration, log logger.Interface) *RedisStatsCache {
	return &RedisStatsCache{
		client: client,
		ttl:    ttl,
		logger: log.With("component", "cache.stats"),
	}
}

func (c *RedisStatsCache) Get(ctx context.Context, key string) (*analytics.Stats, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warnw("failed to read stats cache", "key", key, "error", err)
		return nil, false
	}

	var stats analytics.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		c.logger.Warnw("dropping malformed stats cache entry", "key", key, "error", err)
		c.client.Del(ctx, key)
		return nil, false
	}
	return &stats, true
}

func (c *RedisStatsCache) Set(ctx context.Context, key string, stats *analytics.Stats) {
	if err := c.set(ctx, key, stats); err != nil {
		c.logger.Warnw("failed to write stats cache", "key", key, "error", err)
	}
}

func (c *RedisStatsCache) set(ctx context.Context, key string, stats *analytics.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// NopStatsCache never stores anything. It is used when Redis is disabled.
type NopStatsCache struct{}

func (NopStatsCache) Get(context.Context, string) (*analytics.Stats, bool) { return nil, false }
func (NopStatsCache) Set(context.Context, string, *analytics.Stats)        {}
