package functional

import (
	"context"
	"time"
)

// MemoizeOptions configures a two-tier (L1 in-process / L2 external)
// memoization cache.
type MemoizeOptions[K comparable, V any] struct {
	// MaxSize bounds the L1 tier; 0 means unbounded.
	MaxSize int
	// Expiration is the L1 (and, when set, L2) TTL; 0 means entries never
	// expire.
	Expiration time.Duration
	// Provider is the optional L2 tier consulted after an L1 miss. Nil
	// means L1-only.
	Provider Provider[K, V]
	Clock    Clock
	Hooks    *Hooks
}

// Cache is a two-tier memoization cache built from [MemoizeOptions].
type Cache[K comparable, V any] struct {
	opts MemoizeOptions[K, V]
	l1   *l1Cache[K, V]
}

// NewCache builds a [Cache] from opts.
func NewCache[K comparable, V any](opts MemoizeOptions[K, V]) *Cache[K, V] {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	return &Cache[K, V]{
		opts: opts,
		l1:   newL1Cache[K, V](opts.MaxSize, opts.Expiration, opts.Clock),
	}
}

// GetOrAdd returns the cached value for key, checking L1 then the L2
// Provider (if any) then invoking factory on a full miss. factory runs with
// no lock held; concurrent misses on the same key may both invoke it, and
// the entry written last wins — the sync get_or_add path makes no
// herd-suppression promise.
func (c *Cache[K, V]) GetOrAdd(key K, factory func(K) V) V {
	if v, ok := c.l1.get(key); ok {
		c.opts.Hooks.emitCacheHit(key)
		return v
	}

	if c.opts.Provider != nil {
		if opt, err := c.opts.Provider.Get(key); err == nil {
			if v, found := optionValue(opt); found {
				c.opts.Hooks.emitCacheHit(key)
				c.l1.set(key, v)
				return v
			}
		}
	}

	c.opts.Hooks.emitCacheMiss(key)
	v := factory(key)
	c.l1.set(key, v)
	if c.opts.Provider != nil {
		_ = c.opts.Provider.Set(key, v, c.opts.Expiration)
	}
	return v
}

// GetOrAddAsync is the async counterpart of GetOrAdd. L2 I/O and the
// factory call happen with no L1 lock held; only the final L1 write
// reacquires it, matching the read path's "release lock for async I/O, then
// reacquire for the L1 write" discipline. When a Provider is configured,
// this relies on L1/L2 to short-circuit repeated callers after the first
// completes — concurrent misses on the same key may still race and both
// invoke factory.
func (c *Cache[K, V]) GetOrAddAsync(ctx context.Context, key K, factory func(context.Context, K) (V, error)) (V, error) {
	if v, ok := c.l1.get(key); ok {
		c.opts.Hooks.emitCacheHit(key)
		return v, nil
	}

	if c.opts.Provider != nil {
		if opt, err := c.opts.Provider.GetAsync(ctx, key); err == nil {
			if v, found := optionValue(opt); found {
				c.opts.Hooks.emitCacheHit(key)
				c.l1.set(key, v)
				return v, nil
			}
		}
	}

	c.opts.Hooks.emitCacheMiss(key)
	v, err := factory(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.l1.set(key, v)
	if c.opts.Provider != nil {
		_ = c.opts.Provider.SetAsync(ctx, key, v, c.opts.Expiration)
	}
	return v, nil
}

// Remove evicts key from both L1 and, if configured, L2.
func (c *Cache[K, V]) Remove(key K) {
	c.l1.remove(key)
	if c.opts.Provider != nil {
		_ = c.opts.Provider.Remove(key)
	}
}

func optionValue[V any](o Option[V]) (V, bool) {
	return Match(o, func(v V) (V, bool) { return v, true }, func() (V, bool) {
		var zero V
		return zero, false
	})
}
