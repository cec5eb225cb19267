package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRatingCache holds per-restaurant rating averages with a TTL.
type RedisRatingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRatingCache(client *redis.Client, ttl time.Duration) *RedisRatingCache {
	return &RedisRatingCache{Client: client, TTL: ttl}
}

func (c *RedisRatingCache) AverageKey(restaurantID string) string {
	return "rating:avg:" + restaurantID
}

func (c *RedisRatingCache) GetAverage(ctx context.Context, key string) (float64, bool, error) {
	average, err := c.Client.Get(ctx, key).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return average, true, nil
}

func (c *RedisRatingCache) SetAverage(ctx context.Context, key string, average float64) error {
	return c.Client.Set(ctx, key, average, c.TTL).Err()
}

func (c *RedisRatingCache) Invalidate(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
