package functional

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	policy := &RetryPolicy[error]{MaxAttempts: 3, Backoff: NoBackoff(), Clock: &instantClock{}}

	got := DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		calls++
		return Success[int, error](1)
	})

	if !got.IsSuccess() || calls != 1 {
		t.Fatalf("got=%+v calls=%d, want success on first call", got, calls)
	}
}

func TestDoRetryRetriesUntilSuccess(t *testing.T) {
	calls := 0
	policy := &RetryPolicy[error]{MaxAttempts: 3, Backoff: NoBackoff(), Clock: &instantClock{}}

	got := DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		calls++
		if calls < 3 {
			return Failure[int](Transient(errBoom))
		}
		return Success[int, error](calls)
	})

	if !got.IsSuccess() || got.GetOrDefault(-1) != 3 || calls != 3 {
		t.Fatalf("got=%+v calls=%d", got, calls)
	}
}

func TestDoRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	policy := &RetryPolicy[error]{MaxAttempts: 3, Backoff: NoBackoff(), Clock: &instantClock{}}

	got := DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		calls++
		return Failure[int](Transient(errBoom))
	})

	if got.IsSuccess() || calls != 3 {
		t.Fatalf("got=%+v calls=%d, want 3 failed attempts", got, calls)
	}
}

func TestDoRetryStopsOnPermanent(t *testing.T) {
	calls := 0
	policy := &RetryPolicy[error]{MaxAttempts: 5, Backoff: NoBackoff(), Clock: &instantClock{}}

	got := DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		calls++
		return Failure[int](Permanent(errBoom))
	})

	if got.IsSuccess() || calls != 1 {
		t.Fatalf("calls=%d, want exactly 1 (Permanent stops retry)", calls)
	}
}

func TestDoRetryRetryPredicateStopsEarly(t *testing.T) {
	calls := 0
	errNotFound := errors.New("not found")
	policy := &RetryPolicy[error]{
		MaxAttempts: 5,
		Backoff:     NoBackoff(),
		Clock:       &instantClock{},
		RetryPredicate: func(err error) bool {
			return !errors.Is(err, errNotFound)
		},
	}

	got := DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		calls++
		return Failure[int](errNotFound)
	})

	if got.IsSuccess() || calls != 1 {
		t.Fatalf("calls=%d, want exactly 1 (RetryPredicate stops retry)", calls)
	}
}

func TestDoRetryLastAttemptSkipsRetryPredicate(t *testing.T) {
	calls := 0
	predicateCalls := 0
	policy := &RetryPolicy[error]{
		MaxAttempts: 2,
		Backoff:     NoBackoff(),
		Clock:       &instantClock{},
		RetryPredicate: func(err error) bool {
			predicateCalls++
			return true
		},
	}

	got := DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		calls++
		return Failure[int](errBoom)
	})

	if got.IsSuccess() || calls != 2 {
		t.Fatalf("calls=%d, want exactly 2 (MaxAttempts exhausted)", calls)
	}
	if predicateCalls != 1 {
		t.Fatalf("predicateCalls=%d, want 1 (not consulted on the last attempt)", predicateCalls)
	}
}

func TestDoRetryMaxAttemptsBelowOneTreatedAsOne(t *testing.T) {
	calls := 0
	policy := &RetryPolicy[error]{MaxAttempts: 0, Backoff: NoBackoff(), Clock: &instantClock{}}

	DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		calls++
		return Failure[int](Transient(errBoom))
	})

	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
}

func TestDoRetryPropagatesCancellationDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	policy := &RetryPolicy[error]{
		MaxAttempts: 3,
		Backoff:     ConstantBackoff(time.Hour),
		Clock:       RealClock{},
	}

	got := DoRetry(ctx, policy, func(context.Context) Result[int, error] {
		return Failure[int](Transient(errBoom))
	})

	if got.IsSuccess() || !errors.Is(got.Error(), context.Canceled) {
		t.Fatalf("got=%+v, want Failure(context.Canceled)", got)
	}
}

func TestDoRetryEmitsOnRetryHook(t *testing.T) {
	var attempts []int
	policy := &RetryPolicy[error]{
		MaxAttempts: 3,
		Backoff:     NoBackoff(),
		Clock:       &instantClock{},
		Hooks: &Hooks{
			OnRetry: func(attempt int, err error) { attempts = append(attempts, attempt) },
		},
	}

	DoRetry(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](Transient(errBoom))
	})

	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Fatalf("attempts=%v, want [1 2]", attempts)
	}
}
