package functional

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// MemoizeResult wraps a function returning Result[V, E] with an unbounded
// cache that stores only Success outcomes. A Failure is returned to the
// caller but never cached, so a later call for the same key re-executes fn.
// Concurrent callers for the same key share a single in-flight computation
// via golang.org/x/sync/singleflight; the in-flight slot is cleared the
// instant that computation completes, so a Failure gets a genuinely fresh
// attempt next time rather than replaying a stale one.
func MemoizeResult[K comparable, V any, E error](fn func(context.Context, K) Result[V, E], hooks *Hooks) func(context.Context, K) Result[V, E] {
	var group singleflight.Group
	var mu sync.Mutex
	cache := make(map[K]V)

	return func(ctx context.Context, k K) Result[V, E] {
		mu.Lock()
		if v, ok := cache[k]; ok {
			mu.Unlock()
			hooks.emitCacheHit(k)
			return Success[V, E](v)
		}
		mu.Unlock()
		hooks.emitCacheMiss(k)

		sfKey := fmt.Sprintf("%v", k)

		started := false
		out, _, _ := group.Do(sfKey, func() (any, error) {
			started = true
			return fn(ctx, k), nil
		})
		if !started {
			hooks.emitHerdJoin(k)
		}

		r := out.(Result[V, E])
		if r.IsSuccess() {
			mu.Lock()
			cache[k] = r.value
			mu.Unlock()
		}
		return r
	}
}
