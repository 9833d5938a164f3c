package redis

import (
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository is the small key/value surface the service needs from Redis.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	err := r.client.Set(ctx, key, value, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSetData(err)
	}
	return nil
}

func (r *redisRepository) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, exceptions.ErrRedisGetData(err)
	}
	return count > 0, nil
}
