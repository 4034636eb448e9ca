package inmemory

import (
	"sync"
	"time"
)

// TTLCache is a process-local map whose entries expire after the ttl given
// to Set. Expired entries are dropped lazily on read or by Purge.
type TTLCache[V any] struct {
	mu    sync.RWMutex
	items map[string]ttlItem[V]
	now   func() time.Time
}

type ttlItem[V any] struct {
	value     V
	expiresAt time.Time
}

func NewTTLCache[V any]() *TTLCache[V] {
	return &TTLCache[V]{
		items: make(map[string]ttlItem[V]),
		now:   time.Now,
	}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	now := c.now()

	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		var zero V
		return zero, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[key]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		var zero V
		return zero, false
	}

	return item.value, true
}

func (c *TTLCache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(key)
		return
	}

	c.mu.Lock()
	c.items[key] = ttlItem[V]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Purge removes every expired entry and returns how many were dropped.
func (c *TTLCache[V]) Purge() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, item := range c.items {
		if !item.expiresAt.After(now) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]ttlItem[V])
	c.mu.Unlock()
}
