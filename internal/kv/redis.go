package kv

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v9"
)

type redisBackend struct {
	client *redis.Client
}

// NewRedis builds backend on top of redis, values never expire
func NewRedis(client *redis.Client) Backend {
	return &redisBackend{client: client}
}

func (r *redisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *redisBackend) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.client.Set(ctx, key, value, 0).Result(); err != nil {
		return err
	}
	return nil
}
