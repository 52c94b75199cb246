package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache — кеш на внешнем Redis, для развёртываний с несколькими
// экземплярами сервиса. Ошибки Redis трактуются как промах: кеш
// вспомогательный, падать из-за него нельзя.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache подключается по DSN вида redis://host:port/db
// и проверяет соединение.
func NewRedisCache(ctx context.Context, dsn string) (*RedisCache, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
