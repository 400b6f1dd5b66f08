package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "landing:page:"

// PageCache keeps rendered page responses in redis, one key per
// business unit and locale.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

func pageKey(key string) string {
	return keyPrefix + key
}

func businessUnitPattern(businessUnitID string) string {
	return keyPrefix + businessUnitID + ":*"
}

func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, pageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *PageCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, pageKey(key), value, c.ttl).Err()
}

// Invalidate deletes every cached locale of a business unit. SCAN is used
// instead of KEYS so a large keyspace does not block the server.
func (c *PageCache) Invalidate(ctx context.Context, businessUnitID string) error {
	iter := c.client.Scan(ctx, 0, businessUnitPattern(businessUnitID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
