// Package rediscache provides a namespaced Redis cache client.
package rediscache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	_defaultConnAttempts = 5
	_defaultConnTimeout  = time.Second
)

type Cache struct {
	connAttempts int
	connTimeout  time.Duration

	namespace string
	client    redis.UniversalClient
}

func New(ctx context.Context, addr, password, namespace string, opts ...Option) (*Cache, error) {
	c := &Cache{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		namespace:    namespace,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	var err error
	for c.connAttempts > 0 {
		pingCtx, cancel := context.WithTimeout(ctx, c.connTimeout)
		err = c.client.Ping(pingCtx).Err()
		cancel()

		if err == nil {
			break
		}

		time.Sleep(c.connTimeout)
		c.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("rediscache - New - c.client.Ping: %w", err)
	}

	return c, nil
}

// Get returns the cached value and true, or "" and false on a miss.
// Transport errors surface as misses so callers fall through to the
// source of truth.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, c.namespace+":"+key).Result()
	if err != nil {
		return "", false
	}

	return val, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.namespace+":"+key, value, ttl).Err()
}

func (c *Cache) Remove(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.namespace+":"+key).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
