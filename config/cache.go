package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache is the Redis client used for caching public business pages.
// Nil when Redis is unreachable; callers must treat caching as optional.
var Cache *redis.Client

func InitCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     AppConfig.RedisAddr,
		Password: AppConfig.RedisPassword,
		DB:       AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		zap.L().Warn("Redis unavailable, caching disabled", zap.Error(err))
		return
	}

	Cache = client
}
