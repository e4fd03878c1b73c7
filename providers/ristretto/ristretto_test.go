package ristretto

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitForAdmission gives ristretto time to process buffered writes.
func waitForAdmission() {
	time.Sleep(10 * time.Millisecond)
}

func TestMustNewDoesNotPanic(t *testing.T) {
	cache := MustNew[string, string](1000)
	require.NotNil(t, cache)
}

func TestSetGetStringKey(t *testing.T) {
	cache := MustNew[string, string](1000)

	require.NoError(t, cache.Set("hello", "world", time.Minute))
	waitForAdmission()

	got, err := cache.Get("hello")
	require.NoError(t, err)
	require.True(t, got.IsSome())
	require.Equal(t, "world", got.GetOrDefault(""))
}

func TestGetMissReturnsNone(t *testing.T) {
	cache := MustNew[string, string](1000)

	got, err := cache.Get("missing")
	require.NoError(t, err)
	require.True(t, got.IsNone())
}

func TestRemoveDeletesEntry(t *testing.T) {
	cache := MustNew[string, int](1000)

	require.NoError(t, cache.Set("k", 1, time.Minute))
	waitForAdmission()

	require.NoError(t, cache.Remove("k"))
	waitForAdmission()

	got, err := cache.Get("k")
	require.NoError(t, err)
	require.True(t, got.IsNone())
}

func TestAsyncMethodsDelegateToSync(t *testing.T) {
	cache := MustNew[string, int](1000)
	ctx := context.Background()

	require.NoError(t, cache.SetAsync(ctx, "k", 42, time.Minute))
	waitForAdmission()

	got, err := cache.GetAsync(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, 42, got.GetOrDefault(-1))

	require.NoError(t, cache.RemoveAsync(ctx, "k"))
}
