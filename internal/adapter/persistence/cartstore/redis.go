package cartstore

import (
	"context"
	"errors"
	"time"

	"alu_portal/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps cart slots in Redis so several portal nodes share them.
// A zero ttl keeps carts forever.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ICartStorage = (*RedisStorage)(nil)

func NewRedisStorage(addr string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *RedisStorage) Close() error { return s.client.Close() }

func (s *RedisStorage) Read(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStorage) Write(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}
