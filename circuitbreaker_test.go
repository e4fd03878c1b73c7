package functional

import (
	"context"
	"testing"
	"time"
)

func TestCircuitBreakerStaysClosedBelowThreshold(t *testing.T) {
	policy := NewCircuitBreakerPolicy(3, time.Minute, identityCoerceT)

	for i := 0; i < 2; i++ {
		got := DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
			return Failure[int](errBoom)
		})
		if got.IsSuccess() {
			t.Fatal("expected Failure")
		}
	}

	if policy.Tracker.State() != Closed {
		t.Fatalf("state = %v, want Closed", policy.Tracker.State())
	}
}

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	policy := NewCircuitBreakerPolicy(2, time.Minute, identityCoerceT)

	for i := 0; i < 2; i++ {
		DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
			return Failure[int](errBoom)
		})
	}

	if policy.Tracker.State() != Open {
		t.Fatalf("state = %v, want Open", policy.Tracker.State())
	}

	got := DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		t.Fatal("op should not be invoked while open")
		return Success[int, error](1)
	})
	if got.IsSuccess() {
		t.Fatal("expected short-circuit Failure while open")
	}
}

func TestCircuitBreakerHalfOpenAfterResetTimeout(t *testing.T) {
	clock := &instantClock{now: time.Unix(0, 0)}
	policy := NewCircuitBreakerPolicy(1, time.Minute, identityCoerceT)
	policy.Clock = clock

	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})
	if policy.Tracker.State() != Open {
		t.Fatalf("state = %v, want Open", policy.Tracker.State())
	}

	clock.now = clock.now.Add(2 * time.Minute)

	got := DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Success[int, error](1)
	})
	if !got.IsSuccess() {
		t.Fatal("expected probe to execute once reset timeout elapsed")
	}
	if policy.Tracker.State() != Closed {
		t.Fatalf("state = %v, want Closed after successful probe", policy.Tracker.State())
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	clock := &instantClock{now: time.Unix(0, 0)}
	policy := NewCircuitBreakerPolicy(1, time.Minute, identityCoerceT)
	policy.Clock = clock

	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})

	clock.now = clock.now.Add(2 * time.Minute)

	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})

	if policy.Tracker.State() != Open {
		t.Fatalf("state = %v, want Open after failed probe", policy.Tracker.State())
	}
}

func TestCircuitBreakerSuccessResetsConsecutiveFailures(t *testing.T) {
	policy := NewCircuitBreakerPolicy(2, time.Minute, identityCoerceT)

	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})
	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Success[int, error](1)
	})
	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})

	if policy.Tracker.State() != Closed {
		t.Fatalf("state = %v, want Closed (success reset the streak)", policy.Tracker.State())
	}
}

func TestCircuitBreakerBreakPredicateSkipsCounting(t *testing.T) {
	policy := NewCircuitBreakerPolicy(1, time.Minute, identityCoerceT)
	policy.BreakPredicate = func(err error) bool { return false }

	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})

	if policy.Tracker.State() != Closed {
		t.Fatalf("state = %v, want Closed (BreakPredicate excluded the failure)", policy.Tracker.State())
	}
}

func TestCircuitBreakerSnapshotReportsStateAndFailures(t *testing.T) {
	policy := NewCircuitBreakerPolicy(3, time.Minute, identityCoerceT)

	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})
	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})

	snap := policy.Snapshot()
	if snap.State != Closed || snap.ConsecutiveFails != 2 {
		t.Fatalf("Snapshot() = %+v, want {State:Closed ConsecutiveFails:2}", snap)
	}
}

func TestCircuitBreakerStateString(t *testing.T) {
	cases := map[CircuitBreakerState]string{
		Closed:   "closed",
		Open:     "open",
		HalfOpen: "half_open",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestCircuitBreakerEmitsOnStateChange(t *testing.T) {
	var transitions [][2]CircuitBreakerState
	policy := NewCircuitBreakerPolicy(1, time.Minute, identityCoerceT)
	policy.Hooks = &Hooks{
		OnStateChange: func(from, to CircuitBreakerState) {
			transitions = append(transitions, [2]CircuitBreakerState{from, to})
		},
	}

	DoCircuitBreaker(context.Background(), policy, func(context.Context) Result[int, error] {
		return Failure[int](errBoom)
	})

	if len(transitions) != 1 || transitions[0] != [2]CircuitBreakerState{Closed, Open} {
		t.Fatalf("transitions = %v, want [[Closed Open]]", transitions)
	}
}
