package functional

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMemoizeCachesResult(t *testing.T) {
	var calls int32
	f := Memoize(func(k int) int {
		atomic.AddInt32(&calls, 1)
		return k * 2
	})

	if got := f(3); got != 6 {
		t.Fatalf("f(3) = %d, want 6", got)
	}
	if got := f(3); got != 6 {
		t.Fatalf("f(3) second call = %d, want 6", got)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestMemoizeDistinctKeys(t *testing.T) {
	var calls int32
	f := Memoize(func(k int) int {
		atomic.AddInt32(&calls, 1)
		return k
	})

	f(1)
	f(2)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestMemoize2CachesByPair(t *testing.T) {
	var calls int32
	f := Memoize2(func(a, b int) int {
		atomic.AddInt32(&calls, 1)
		return a + b
	})

	f(1, 2)
	f(1, 2)
	f(2, 1)

	if calls != 2 {
		t.Fatalf("calls = %d, want 2 (two distinct pairs)", calls)
	}
}

func TestMemoizeAsyncCachesResult(t *testing.T) {
	var calls int32
	f := MemoizeAsync(func(k int) (int, error) {
		atomic.AddInt32(&calls, 1)
		return k * 2, nil
	}, nil)

	v, err := f(5)
	if err != nil || v != 10 {
		t.Fatalf("f(5) = (%v, %v), want (10, nil)", v, err)
	}
	v, err = f(5)
	if err != nil || v != 10 || calls != 1 {
		t.Fatalf("second call calls=%d v=%v err=%v", calls, v, err)
	}
}

func TestMemoizeAsyncSuppressesThunderingHerd(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	f := MemoizeAsync(func(k int) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return k, nil
	}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(1)
		}()
	}

	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("calls = %d, want exactly 1 (herd suppressed)", calls)
	}
}

func TestMemoizeAsyncEmitsHooks(t *testing.T) {
	var hits, misses int32
	hooks := &Hooks{
		OnCacheHit:  func(any) { atomic.AddInt32(&hits, 1) },
		OnCacheMiss: func(any) { atomic.AddInt32(&misses, 1) },
	}
	f := MemoizeAsync(func(k int) (int, error) { return k, nil }, hooks)

	f(1)
	f(1)

	if misses != 1 || hits != 1 {
		t.Fatalf("misses=%d hits=%d, want 1 and 1", misses, hits)
	}
}
