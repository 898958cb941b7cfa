// Package bootstrap loads the process-wide configuration and the shared
// infrastructure clients used by the insights commands.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	analyticsUsecases "github.com/katalon/insights/internal/application/analytics/usecases"
	"github.com/katalon/insights/internal/infrastructure/cache"
	"github.com/katalon/insights/internal/infrastructure/config"
	"github.com/katalon/insights/internal/infrastructure/dynamo"
	"github.com/katalon/insights/internal/shared/biztime"
	"github.com/katalon/insights/internal/shared/logger"
)

type Runtime struct {
	Config *config.Config
	Log    logger.Interface
	Source *dynamo.Source
	// Redis is nil unless redis.enabled is set.
	Redis *redis.Client
}

// Load reads configuration, initializes logging and the business timezone,
// and connects to DynamoDB and, when enabled, Redis.
func Load(ctx context.Context, env, configPath string) (*Runtime, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	client, err := dynamo.NewClient(ctx, &cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dynamodb client: %w", err)
	}

	rt := &Runtime{
		Config: cfg,
		Log:    log,
		Source: dynamo.NewSource(client, cfg.DynamoDB, log.Named("dynamo")),
	}

	if cfg.Redis.Enabled {
		rt.Redis, err = cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	}

	return rt, nil
}

// StatsCache returns the Redis stats cache, or a no-op cache when Redis is
// disabled or the TTL is zero.
func (rt *Runtime) StatsCache() analyticsUsecases.StatsCache {
	ttl := time.Duration(rt.Config.Dashboard.StatsCacheTTL) * time.Second
	if rt.Redis == nil || ttl <= 0 {
		return cache.NopStatsCache{}
	}
	return cache.NewRedisStatsCache(rt.Redis, ttl, rt.Log)
}

func (rt *Runtime) Close() {
	if rt.Redis != nil {
		if err := rt.Redis.Close(); err != nil {
			rt.Log.Warnw("failed to close redis client", "error", err)
		}
	}
}
