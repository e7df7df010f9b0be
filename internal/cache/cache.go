// FilePath: internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/guitarkeep/hub/internal/config"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Observer is notified about cache lookups
type Observer interface {
	CacheHit()
	CacheMiss()
	CacheError()
}

// Cache stores JSON-encoded query responses
type Cache interface {
	// Get decodes the entry under key into dest. The boolean is false on a miss.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Close() error
}

// Noop never stores anything; every lookup is a miss.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Close() error                                   { return nil }

// RedisCache keeps responses in redis with a fixed TTL
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	obs    Observer
}

// NewRedisCache connects to redis and verifies the connection
func NewRedisCache(ctx context.Context, rc config.RedisConfig, cc config.CacheConfig, obs Observer) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr(),
		Password: rc.Password,
		DB:       rc.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", rc.Addr(), err)
	}

	nuts.L.Infof("[Cache] Connected to redis at %s (ttl %s)", rc.Addr(), cc.TTL)
	return NewRedisCacheFromClient(client, cc.Prefix, cc.TTL, obs), nil
}

// NewRedisCacheFromClient wraps an existing client
func NewRedisCacheFromClient(client *redis.Client, prefix string, ttl time.Duration, obs Observer) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl, obs: obs}
}

func (c *RedisCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		c.miss()
		return false, nil
	}
	if err != nil {
		c.failed()
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.failed()
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	c.hit()
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s for cache: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		c.failed()
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) hit() {
	if c.obs != nil {
		c.obs.CacheHit()
	}
}

func (c *RedisCache) miss() {
	if c.obs != nil {
		c.obs.CacheMiss()
	}
}

func (c *RedisCache) failed() {
	if c.obs != nil {
		c.obs.CacheError()
	}
}
