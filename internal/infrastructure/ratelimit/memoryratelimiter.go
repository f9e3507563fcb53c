package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	idleEviction  = 10 * time.Minute
	sweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryRateLimiter is the single-instance fallback used when redis is
// disabled. Each key gets a token bucket refilled at Requests per Window
// with a burst of Requests.
type MemoryRateLimiter struct {
	config    RateLimitConfig
	mu        sync.Mutex
	visitors  map[string]*visitor
	nextSweep time.Time
	now       func() time.Time
}

func NewMemoryRateLimiter(config RateLimitConfig) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		config:   config.normalized(),
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	v, ok := l.visitors[key]
	if !ok {
		every := rate.Every(l.config.Window / time.Duration(l.config.Requests))
		v = &visitor{limiter: rate.NewLimiter(every, l.config.Requests)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

// evict drops idle keys at most once per sweepInterval.
func (l *MemoryRateLimiter) evict(now time.Time) {
	if now.Before(l.nextSweep) {
		return
	}
	l.nextSweep = now.Add(sweepInterval)
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleEviction {
			delete(l.visitors, key)
		}
	}
}
