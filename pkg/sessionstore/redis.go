package sessionstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of go-redis, for deployments where the
// client process is ephemeral but sessions should survive it (shared shells,
// kiosk hosts). Zero TTL keeps values until an explicit Delete.
type RedisStore struct {
	db  redis.UniversalClient
	ttl time.Duration
}

// NewRedisStore creates a redis-backed store. ttl applies to every Set;
// zero means no expiration.
func NewRedisStore(db redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{db: db, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.db.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	return r.db.Set(ctx, key, value, r.ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.db.Del(ctx, key).Err()
}
