// Package ratelimit counts requests per client in fixed windows.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"natours/config"

	"github.com/redis/go-redis/v9"
)

// Result reports the outcome of one counted request. Remaining is -1 when unknown.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// Limiter counts one request against key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// NewLimiter prefers the shared Redis counter and falls back to process memory.
// A nil client selects the memory limiter.
func NewLimiter(cfg *config.Config, client *redis.Client, logger *slog.Logger) Limiter {
	rl := cfg.RateLimit
	if client != nil {
		logger.Info("Rate limiter uses redis", slog.Int("max", rl.Max), slog.Duration("window", rl.Window))

		return NewRedisLimiter(client, rl.Prefix, rl.Max, rl.Window)
	}

	logger.Info("Rate limiter uses process memory", slog.Int("max", rl.Max), slog.Duration("window", rl.Window))

	return NewMemoryLimiter(rl.Max, rl.Window)
}
