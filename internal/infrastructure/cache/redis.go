// Package cache connects to the shared redis instance.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"campus/internal/shared/config"
	"campus/internal/shared/logger"
)

// NewRedisClient connects and pings redis. It returns nil without error
// when redis is disabled.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log logger.Interface) (*redis.Client, error) {
	if !cfg.Enabled {
		log.Infow("redis disabled, using in-process fallbacks")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}

	log.Infow("Redis connection established successfully", "addr", cfg.GetAddr())
	return client, nil
}
