package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Thecodingpm/calories-counterr/internal/config"
)

// RedisStore keeps each collection as one JSON value under its key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	result := r.client.Get(ctx, key)
	if result.Err() == redis.Nil {
		return nil, false, nil
	}
	if result.Err() != nil {
		return nil, false, result.Err()
	}
	raw, err := result.Bytes()
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	// No TTL: collections live until overwritten or deleted.
	return r.client.Set(ctx, key, data, 0).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
