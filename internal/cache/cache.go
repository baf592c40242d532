// Package cache provides a small time-bounded lookup cache shared by the
// external weather and routing clients. It is injected explicitly rather
// than held as ambient state so the planner stays trivially testable.
package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

// Cache is a concurrency-safe TTL cache. Expired entries are evicted lazily
// on access and opportunistically on writes.
type Cache[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[uint64]entry[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// New creates a cache whose entries live for ttl.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uint64]entry[V]),
	}
}

// NewWithClock is New with an injectable clock for tests.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Cache[V] {
	c := New[V](ttl)
	c.now = now
	return c
}

// Get returns the cached value for key if present and unexpired.
func (c *Cache[V]) Get(key uint64) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key and sweeps any expired entries.
func (c *Cache[V]) Put(key uint64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry[V]{value: value, expiresAt: now.Add(c.ttl)}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Key folds the given parts into a stable FNV-1a hash, the canonical cache
// key for query parameters.
func Key(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
