// Package cache wraps a bounded LRU with per-cache TTL. It is injected into
// services that memoize reads; there is no package-level instance.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Cache struct {
	lru *expirable.LRU[string, any]
}

// New builds a cache holding at most size entries, each evicted after ttl.
func New(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (c *Cache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *Cache) Set(key string, value any) {
	c.lru.Add(key, value)
}

func (c *Cache) Delete(key string) {
	c.lru.Remove(key)
}

func (c *Cache) Purge() {
	c.lru.Purge()
}

func (c *Cache) Len() int {
	return c.lru.Len()
}
