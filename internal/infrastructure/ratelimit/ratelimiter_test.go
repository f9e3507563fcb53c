package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter(t *testing.T) {
	now := time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)
	l := NewMemoryRateLimiter(RateLimitConfig{Requests: 3, Window: time.Minute})
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed, "4th request should be denied")

	allowed, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed, "other clients have their own bucket")

	// one token refills every 20s
	now = now.Add(21 * time.Second)
	allowed, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = l.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed)
}

func TestMemoryRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)
	l := NewMemoryRateLimiter(RateLimitConfig{Requests: 1, Window: time.Hour})
	l.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = l.Allow(ctx, "a")
	now = now.Add(idleEviction + time.Second)
	_, _ = l.Allow(ctx, "b")
	assert.Len(t, l.visitors, 1)
}

func TestMemoryRateLimiter_SweepsOncePerInterval(t *testing.T) {
	start := time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)
	now := start
	l := NewMemoryRateLimiter(RateLimitConfig{Requests: 1, Window: time.Hour})
	l.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = l.Allow(ctx, "a")
	assert.Equal(t, start.Add(sweepInterval), l.nextSweep)

	// "a" goes idle, but "b" arrives before the first sweep is due
	now = start.Add(30 * time.Second)
	_, _ = l.Allow(ctx, "b")
	assert.Len(t, l.visitors, 2)

	// the next sweep runs once "a" has been idle long enough
	now = start.Add(idleEviction + 10*time.Second)
	_, _ = l.Allow(ctx, "c")
	assert.Len(t, l.visitors, 2)
	assert.NotContains(t, l.visitors, "a")
	assert.Equal(t, now.Add(sweepInterval), l.nextSweep)

	// within the interval nothing is swept even when keys are idle
	now = now.Add(idleEviction)
	l.nextSweep = now.Add(time.Second)
	_, _ = l.Allow(ctx, "d")
	assert.Len(t, l.visitors, 3)
}

func TestRateLimitConfig_Defaults(t *testing.T) {
	c := RateLimitConfig{}.normalized()
	assert.Equal(t, 60, c.Requests)
	assert.Equal(t, time.Minute, c.Window)
}

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})
	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	l := NewRedisRateLimiter(client, RateLimitConfig{Requests: 5, Window: time.Minute})
	fixed := time.Date(2026, 1, 14, 9, 0, 30, 0, time.UTC)
	l.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := l.Allow(ctx, "login:10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
	allowed, err := l.Allow(ctx, "login:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	// next window starts a fresh counter
	fixed = fixed.Add(time.Minute)
	allowed, err = l.Allow(ctx, "login:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}
