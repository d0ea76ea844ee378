package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/yash5749/ONI-LIBRARY/internal/platform/config"
)

// NewRedisClient connects to Redis using the configured address. Callers
// treat a nil client as "run without Redis"; sessions then fall back to
// MySQL and the author cache is bypassed.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisAddr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
