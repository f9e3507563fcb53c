package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window counter shared by every instance: one
// key per client and window bucket, expiring with the window.
type RedisRateLimiter struct {
	client *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, config RateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config.normalized(),
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := l.bucketKey(key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.config.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return incr.Val() <= int64(l.config.Requests), nil
}

func (l *RedisRateLimiter) bucketKey(key string) string {
	bucket := l.now().Unix() / int64(l.config.Window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", key, bucket)
}
