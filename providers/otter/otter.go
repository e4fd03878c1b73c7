// Package otter adapts the Otter cache library to the functional.Provider
// L2 contract.
package otter

import (
	"context"
	"time"

	"github.com/maypok86/otter"

	"github.com/darkpeak/functional"
)

// adapter wraps an otter.CacheWithVariableTTL to implement
// functional.Provider.
type adapter[K comparable, V any] struct {
	cache otter.CacheWithVariableTTL[K, V]
}

// MustNew builds a functional.Provider backed by an Otter cache with
// per-entry TTL support, sized for maxSize entries. Panics if the
// underlying cache cannot be built.
func MustNew[K comparable, V any](maxSize int) functional.Provider[K, V] {
	cache, err := otter.MustBuilder[K, V](maxSize).
		WithVariableTTL().
		Build()
	if err != nil {
		panic("functional/providers/otter: failed to build cache: " + err.Error())
	}

	return &adapter[K, V]{cache: cache}
}

func (a *adapter[K, V]) Get(key K) (functional.Option[V], error) {
	v, ok := a.cache.Get(key)
	if !ok {
		return functional.None[V](), nil
	}
	return functional.Some(v), nil
}

func (a *adapter[K, V]) Set(key K, value V, expiration time.Duration) error {
	a.cache.Set(key, value, expiration)
	return nil
}

func (a *adapter[K, V]) Remove(key K) error {
	a.cache.Delete(key)
	return nil
}

func (a *adapter[K, V]) GetAsync(_ context.Context, key K) (functional.Option[V], error) {
	return a.Get(key)
}

func (a *adapter[K, V]) SetAsync(_ context.Context, key K, value V, expiration time.Duration) error {
	return a.Set(key, value, expiration)
}

func (a *adapter[K, V]) RemoveAsync(_ context.Context, key K) error {
	return a.Remove(key)
}
