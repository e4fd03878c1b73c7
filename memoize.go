package functional

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memoize wraps a single-argument function with an unbounded synchronous
// cache keyed by its argument. Two callers racing on the same key's first
// call may both invoke fn — the entry written last wins, matching the
// options-driven sync path's documented race; unbounded mode gives no
// herd-suppression guarantee. Use [MemoizeAsync] when that matters.
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	var mu sync.Mutex
	cache := make(map[K]V)

	return func(k K) V {
		mu.Lock()
		if v, ok := cache[k]; ok {
			mu.Unlock()
			return v
		}
		mu.Unlock()

		v := fn(k)

		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}

// Memoize2 wraps a two-argument function with an unbounded synchronous
// cache keyed by the (K1, K2) pair.
func Memoize2[K1, K2 comparable, V any](fn func(K1, K2) V) func(K1, K2) V {
	type pairKey struct {
		a K1
		b K2
	}
	var mu sync.Mutex
	cache := make(map[pairKey]V)

	return func(a K1, b K2) V {
		pk := pairKey{a, b}

		mu.Lock()
		if v, ok := cache[pk]; ok {
			mu.Unlock()
			return v
		}
		mu.Unlock()

		v := fn(a, b)

		mu.Lock()
		cache[pk] = v
		mu.Unlock()
		return v
	}
}

// MemoizeAsync wraps a single-argument function with an unbounded cache and
// thundering-herd suppression: concurrent callers for the same key share
// one in-flight computation. Grounded on golang.org/x/sync/singleflight,
// the same primitive used to deduplicate concurrent JWKS key refreshes
// elsewhere in the pack.
func MemoizeAsync[K comparable, V any](fn func(K) (V, error), hooks *Hooks) func(K) (V, error) {
	var group singleflight.Group
	var mu sync.Mutex
	cache := make(map[K]V)

	return func(k K) (V, error) {
		mu.Lock()
		if v, ok := cache[k]; ok {
			mu.Unlock()
			hooks.emitCacheHit(k)
			return v, nil
		}
		mu.Unlock()
		hooks.emitCacheMiss(k)

		sfKey := fmt.Sprintf("%v", k)

		// group.Do runs the function, in this goroutine, only for the caller
		// that starts the computation; every other caller joins it.
		started := false
		v, err, _ := group.Do(sfKey, func() (any, error) {
			started = true
			val, err := fn(k)
			if err != nil {
				return nil, err
			}
			mu.Lock()
			cache[k] = val
			mu.Unlock()
			return val, nil
		})
		if !started {
			hooks.emitHerdJoin(k)
		}
		if err != nil {
			var zero V
			return zero, err
		}
		return v.(V), nil
	}
}
