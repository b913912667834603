package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"natours/config"
	"natours/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedisClient connects to Redis when an address is configured. Without one it returns nil.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to connect to redis at %s", cfg.Redis.Addr)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing redis client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
