package functional

import (
	"context"
	"errors"
	"testing"
	"time"
)

func identityCoerceT(err error) error { return err }

func TestDoTimeoutSucceedsWithinBudget(t *testing.T) {
	policy := NewTimeoutPolicy(time.Second, identityCoerceT)

	got := DoTimeout(context.Background(), policy, func(context.Context) Result[int, error] {
		return Success[int, error](42)
	})

	if !got.IsSuccess() || got.GetOrDefault(-1) != 42 {
		t.Fatalf("got=%+v", got)
	}
}

func TestDoTimeoutExceedsBudget(t *testing.T) {
	policy := NewTimeoutPolicy(10*time.Millisecond, identityCoerceT)

	got := DoTimeout(context.Background(), policy, func(ctx context.Context) Result[int, error] {
		select {
		case <-time.After(time.Second):
			return Success[int, error](1)
		case <-ctx.Done():
			return Failure[int](ctx.Err())
		}
	})

	if got.IsSuccess() {
		t.Fatal("expected Failure on timeout")
	}

	var te *TimeoutError
	if !errors.As(got.Error(), &te) {
		t.Fatalf("Error() = %v, want *TimeoutError", got.Error())
	}
	if te.TimeoutConfigured != 10*time.Millisecond {
		t.Fatalf("TimeoutConfigured = %v", te.TimeoutConfigured)
	}
}

func TestDoTimeoutPropagatesExternalCancellationRaw(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	policy := NewTimeoutPolicy(time.Second, identityCoerceT)

	got := DoTimeout(ctx, policy, func(context.Context) Result[int, error] {
		return Success[int, error](1)
	})

	if got.IsSuccess() || !errors.Is(got.Error(), context.Canceled) {
		t.Fatalf("got=%+v, want Failure(context.Canceled) not TimeoutError", got)
	}

	var te *TimeoutError
	if errors.As(got.Error(), &te) {
		t.Fatal("external cancellation must not be converted to TimeoutError")
	}
}

func TestDoTimeoutEmitsOnTimeoutHook(t *testing.T) {
	fired := false
	policy := NewTimeoutPolicy(5*time.Millisecond, identityCoerceT)
	policy.Hooks = &Hooks{OnTimeout: func() { fired = true }}

	DoTimeout(context.Background(), policy, func(ctx context.Context) Result[int, error] {
		<-ctx.Done()
		return Failure[int](ctx.Err())
	})

	if !fired {
		t.Fatal("OnTimeout hook did not fire")
	}
}
