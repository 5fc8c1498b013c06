package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// URLCacheRepositoryRedis memoizes signed URLs. Entries expire on their own;
// nothing here is authoritative, a cold cache only costs a re-sign.
type URLCacheRepositoryRedis struct {
	Client *redis.Client
}

func NewURLCacheRepositoryRedis(client *redis.Client) *URLCacheRepositoryRedis {
	return &URLCacheRepositoryRedis{
		Client: client,
	}
}

// Get returns "" on a cache miss.
func (r *URLCacheRepositoryRedis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *URLCacheRepositoryRedis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}
