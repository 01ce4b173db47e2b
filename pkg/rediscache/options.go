package rediscache

import "time"

type Option func(*Cache)

func ConnAttempts(attempts int) Option {
	return func(c *Cache) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *Cache) {
		c.connTimeout = timeout
	}
}
