// Package memo provides an identity-keyed cache, generalized from the
// teacher's presence.go string-intern pool (internString/_internPool): the
// same "read-mostly map guarded by RWMutex, double-checked on write" shape,
// but keyed by pointer identity instead of string equality so callers can
// memoize a pure function of a *typeguard.TypeNode without importing the
// root package (avoiding an import cycle) and without mutating the node
// itself.
package memo

import "sync"

// Cache memoizes V for a set of pointer-identity keys K.
type Cache[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// NewCache returns an empty Cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{m: make(map[K]V)}
}

// Get returns the cached value and true if key is present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	v, ok := c.m[key]
	c.mu.RUnlock()
	return v, ok
}

// GetOrCompute returns the cached value for key, computing and storing it via
// compute if absent. compute may run more than once under concurrent misses;
// only one result is kept.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.mu.Lock()
	if existing, ok := c.m[key]; ok {
		c.mu.Unlock()
		return existing, nil
	}
	c.m[key] = v
	c.mu.Unlock()
	return v, nil
}
