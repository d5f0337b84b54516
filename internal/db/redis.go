package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/openpitch/field-booking/internal/config"
)

// NewRedis connects to redis for the rate limiter. Returns nil when no
// address is configured or the server is unreachable; the limiter then
// runs in pass-through mode.
func NewRedis(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		_ = rdb.Close()
		return nil
	}

	return rdb
}
