package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shalabia/storefront/config"
)

const redisKeyPrefix = "shalabia:store:"

// RedisDriver persists store values in Redis, namespaced under
// "shalabia:store:". Values have no TTL: the store is durable state, not a
// cache.
type RedisDriver struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisDriver dials Redis using the configured address and verifies the
// connection with a ping.
func NewRedisDriver() (*RedisDriver, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("kv/redis: ping: %w", err)
	}

	return &RedisDriver{rdb: rdb, ctx: ctx}, nil
}

// Client exposes the underlying connection so other subsystems (the queue's
// Redis driver) can share it.
func (d *RedisDriver) Client() *redis.Client { return d.rdb }

func (d *RedisDriver) Get(key string) (string, bool, error) {
	val, err := d.rdb.Get(d.ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv/redis: get %s: %w", key, err)
	}
	return val, true, nil
}

func (d *RedisDriver) Set(key, value string) error {
	if err := d.rdb.Set(d.ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("kv/redis: set %s: %w", key, err)
	}
	return nil
}

func (d *RedisDriver) Remove(key string) error {
	if err := d.rdb.Del(d.ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("kv/redis: del %s: %w", key, err)
	}
	return nil
}
