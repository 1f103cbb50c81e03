// Package redis constructs the shared Redis client.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"pantry_backend/internal/platform/config"
)

// NewRedisClient connects to Redis using the given configuration and
// verifies the connection with a ping.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr(), "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr())
	return rdb, nil
}
