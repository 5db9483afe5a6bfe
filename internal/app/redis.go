package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"assetpulse/config"
)

// InitRedis initializes a Redis client for the snapshot cache and pings it
// to validate connectivity.
//
// The cache is read-only from this service's perspective; no pool tuning
// beyond the client defaults is applied, and per-call latency is bounded by
// the client's own timeouts rather than application logic.
func InitRedis(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// redisOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var redisOpener = InitRedis
