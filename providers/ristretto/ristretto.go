// Package ristretto adapts the Ristretto cache library to the
// functional.Provider[K, V] L2 contract.
package ristretto

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/darkpeak/functional"
)

// Key is the subset of ristretto.Key types that are also comparable,
// required by functional.Provider.
type Key interface {
	uint64 | string | byte | int | int32 | uint32 | int64
}

// adapter wraps a ristretto.Cache to implement functional.Provider.
type adapter[K Key, V any] struct {
	cache *ristretto.Cache[K, V]
}

// MustNew builds a functional.Provider backed by a Ristretto cache sized
// for maxSize entries. Ristretto recommends NumCounters = 10 * MaxSize for
// good admission-policy accuracy. Panics if the underlying cache cannot be
// built.
func MustNew[K Key, V any](maxSize int) functional.Provider[K, V] {
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: int64(maxSize) * 10,
		MaxCost:     int64(maxSize),
		BufferItems: 64,
	})
	if err != nil {
		panic("functional/providers/ristretto: failed to build cache: " + err.Error())
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
	a.cache.SetWithTTL(key, value, 1, expiration)
	return nil
}

func (a *adapter[K, V]) Remove(key K) error {
	a.cache.Del(key)
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
