package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sharedConfig "centro/internal/shared/config"
)

// NewRedisClient connects and pings once so a bad address fails at startup
// instead of on the first cached request.
func NewRedisClient(cfg *sharedConfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}

	return client, nil
}
