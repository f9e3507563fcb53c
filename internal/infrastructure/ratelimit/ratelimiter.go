// Package ratelimit throttles login attempts and public submissions per
// client key.
package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func (c RateLimitConfig) normalized() RateLimitConfig {
	if c.Requests <= 0 {
		c.Requests = 60
	}
	if c.Window <= 0 {
		c.Window = time.Minute
	}
	return c
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it is within
	// the limit.
	Allow(ctx context.Context, key string) (bool, error)
}
