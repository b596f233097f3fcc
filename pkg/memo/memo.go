// Package memo is a per-key TTL memoization cache with single-flight computation.
//
// For each key at most one computation runs per TTL window; every caller in the
// window observes the same value. Failed computations are never stored.
package memo

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is a memoized value. Entries are never mutated after they are stored.
type Entry[V any] struct {
	Key        string
	Value      V
	ComputedAt time.Time
	// Hit reports whether the value was served from the cache rather than computed for this call.
	Hit bool
}

// ComputeFunc produces the value for a key.
type ComputeFunc[V any] func(ctx context.Context) (V, error)

// Option configures a Cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

type item[V any] struct {
	value      V
	computedAt time.Time
	expiresAt  time.Time
}

// Cache is safe for concurrent use. The zero value is not usable; call New.
type Cache[V any] struct {
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]item[V]
}

// New creates an empty cache.
func New[V any](opts ...Option) *Cache[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[V]{
		now:   o.now,
		items: make(map[string]item[V]),
	}
}

// GetOrCompute returns the live entry for key, or runs compute once for all
// concurrent callers and stores the result for ttl.
//
// If ctx is done before the value is ready the caller gets ctx.Err(); the
// computation itself continues on a context detached from cancellation and its
// result is still stored.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFunc[V]) (Entry[V], error) {
	if e, ok := c.lookup(key); ok {
		return e, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		// Another flight may have stored the key between lookup and DoChan.
		if e, ok := c.lookup(key); ok {
			return e, nil
		}

		v, err := compute(detached)
		if err != nil {
			return nil, err
		}

		now := c.now()
		c.store(key, item[V]{value: v, computedAt: now, expiresAt: now.Add(ttl)})
		return Entry[V]{Key: key, Value: v, ComputedAt: now}, nil
	})

	select {
	case <-ctx.Done():
		return Entry[V]{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Entry[V]{}, res.Err
		}
		return res.Val.(Entry[V]), nil
	}
}

// Len returns the number of stored entries, expired ones included until swept.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache[V]) lookup(key string) (Entry[V], bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(it.expiresAt) {
		return Entry[V]{}, false
	}
	return Entry[V]{Key: key, Value: it.value, ComputedAt: it.computedAt, Hit: true}, true
}

func (c *Cache[V]) store(key string, it item[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, old := range c.items {
		if !now.Before(old.expiresAt) {
			delete(c.items, k)
		}
	}
	c.items[key] = it
}
