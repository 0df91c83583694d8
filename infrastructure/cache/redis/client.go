// ABOUTME: Redis cache implementation using go-redis with ReJSON support
// ABOUTME: Stores JSON payloads as native JSON documents and raw bytes as strings

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"github.com/danooki/2509-PlaceTimelineBackEnd/pkg/config"
)

// ErrCacheMiss is returned when a key is not found in Redis.
var ErrCacheMiss = errors.New("cache: key not found")

// RedisCache implements the Cache interface using Redis.
// JSON values are stored through the ReJSON module so they can be
// inspected and queried server-side; everything else uses plain SET.
type RedisCache struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache instance and verifies connectivity.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(ctx, client)

	return &RedisCache{
		client:  client,
		handler: handler,
	}, nil
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if val, err := c.handler.JSONGet(key, "."); err == nil {
		if data, ok := val.([]byte); ok {
			return data, nil
		}
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL.
// A zero TTL stores the value without expiration.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if json.Valid(value) {
		if _, err := c.handler.JSONSet(key, ".", json.RawMessage(value)); err != nil {
			return err
		}
		if ttl > 0 {
			return c.client.Expire(ctx, key, ttl).Err()
		}
		return nil
	}

	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
