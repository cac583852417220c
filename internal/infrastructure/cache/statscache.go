package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"centro/internal/domain/billing"
	"centro/internal/shared/logger"
)

const (
	statsKey       = "billing:dashboard:stats"
	statsTTLJitter = 30 * time.Second // anti-stampede
)

// RedisStatsCache stores the computed dashboard counters as a JSON blob with
// a short TTL so the dashboard never hammers the subscriptions table.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisStatsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisStatsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetStats returns (nil, nil) on a cache miss.
func (c *RedisStatsCache) GetStats(ctx context.Context) (*billing.Stats, error) {
	payload, err := c.client.Get(ctx, statsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	var stats billing.Stats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes and
		// overwrites it.
		c.logger.Warnw("discarding corrupt stats cache entry", "error", err)
		return nil, nil
	}

	return &stats, nil
}

func (c *RedisStatsCache) SetStats(ctx context.Context, stats *billing.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	ttl := c.ttl + rand.N(statsTTLJitter)
	if err := c.client.Set(ctx, statsKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}

	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}
