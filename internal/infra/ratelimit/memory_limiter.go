package ratelimit

import (
	"context"
	"time"

	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type memoryLimiter struct {
	store  middleware.RateLimiterStore
	max    int
	window time.Duration
}

// NewMemoryLimiter keeps a token bucket per key that refills limit tokens per window.
func NewMemoryLimiter(limit int, window time.Duration) Limiter {
	return &memoryLimiter{
		store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(limit) / window.Seconds()),
			Burst:     limit,
			ExpiresIn: window,
		}),
		max:    limit,
		window: window,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	allowed, err := l.store.Allow(key)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Allowed:    allowed,
		Limit:      l.max,
		Remaining:  -1,
		ResetAfter: l.window,
	}, nil
}
