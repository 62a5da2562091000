package cache

import (
	"context"
	"time"

	"tidewise/internal/domain/service"
	"tidewise/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *goredis.Client
	prefix string
}

// NewRedisCache returns a cache storing every key under prefix.
func NewRedisCache(client *goredis.Client, prefix string) service.Cache {
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis GET")
	}

	return value, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrap(c.client.Set(ctx, c.prefix+key, value, ttl).Err(), "redis SET")
}
