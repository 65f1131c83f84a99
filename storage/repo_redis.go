package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRepo is a Redis-backed Repo. All keys are namespaced with prefix.
type RedisRepo struct {
	client *redis.Client
	prefix string
	owned  bool
}

var _ Repo = (*RedisRepo)(nil)

// NewRedisRepo wraps an existing client. The client lifecycle stays with the caller.
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	return &RedisRepo{client: client, prefix: prefix}
}

// NewRedisRepoFromURL dials the URL and pings it before returning.
func NewRedisRepoFromURL(ctx context.Context, url, prefix string) (*RedisRepo, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisRepo{client: client, prefix: prefix, owned: true}, nil
}

func (r *RedisRepo) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("[RedisRepo] get %s: %w", key, err)
	}
	return v, nil
}

func (r *RedisRepo) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("[RedisRepo] set %s: %w", key, err)
	}
	return nil
}

func (r *RedisRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("[RedisRepo] delete %s: %w", key, err)
	}
	return nil
}

// Close closes the client only when the repo dialled it.
func (r *RedisRepo) Close() error {
	if !r.owned {
		return nil
	}
	return r.client.Close()
}
