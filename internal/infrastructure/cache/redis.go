package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devpulse-team/devpulse/pkg/config"
)

// Redis backs the response cache with a Redis instance so cached completions
// survive process restarts. Lookups are best effort: a backend failure is
// logged and treated as a miss.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis creates a Redis-backed cache from config
func NewRedis(cfg *config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{client: client, logger: logger}
}

// Ping verifies connectivity at startup
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get returns the cached value when present
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("⚠️ Cache lookup failed", zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// Set stores a value with the given TTL
func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		if r.logger != nil {
			r.logger.Warn("⚠️ Cache write failed", zap.Error(err))
		}
	}
}

// Close releases the underlying connection pool
func (r *Redis) Close() error {
	return r.client.Close()
}
