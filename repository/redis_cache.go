package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs CacheRepository with a Redis instance. Entries carry a TTL
// so an idle deployment does not accumulate one key per parameter combination
// forever.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, r.ttl).Err()
}

// Ping verifies connectivity, used at startup to fail fast on a bad address.
func (r *RedisCache) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
