package functional

import (
	"context"
	"sync"
	"time"
)

// Pattern: Circuit Breaker — fails fast against an unhealthy dependency and
// auto-recovers via a half-open probe after a timeout.
//
// Unlike the lock-free atomic-CAS circuit breaker this package's ancestor
// used, CircuitBreakerStateTracker here is a single mutex guarding every
// field. The effective-state computation (should this call be allowed?) and
// the post-call state update are both read against and written to the same
// tracker under that one mutex, so the two can never observe inconsistent
// state relative to one another.

// CircuitBreakerState is one of the three states a circuit breaker tracker
// can be in.
type CircuitBreakerState int

const (
	Closed CircuitBreakerState = iota
	Open
	HalfOpen
)

func (s CircuitBreakerState) String() string {
	switch s {
	case Open:
		return "open"
	case HalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// CircuitBreakerStateTracker is the mutable state shared by every call
// guarded by the same [CircuitBreakerPolicy]. Reads and writes of every
// field happen only under mu.
type CircuitBreakerStateTracker struct {
	mu                sync.Mutex
	state             CircuitBreakerState
	consecutiveFails  int
	lastFailureTime   time.Time
	hasLastFailure    bool
}

// NewCircuitBreakerStateTracker returns a tracker starting in the Closed
// state, ready to be shared across every invocation of one
// [CircuitBreakerPolicy].
func NewCircuitBreakerStateTracker() *CircuitBreakerStateTracker {
	return &CircuitBreakerStateTracker{}
}

// State reports the tracker's current state, without applying the
// Open-to-HalfOpen recovery-timeout transition (DoCircuitBreaker applies it).
func (t *CircuitBreakerStateTracker) State() CircuitBreakerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// CircuitBreakerSnapshot is a point-in-time read of a breaker's tracked
// state, for introspection outside the call path.
type CircuitBreakerSnapshot struct {
	State            CircuitBreakerState
	ConsecutiveFails int
}

// Snapshot reports the tracker's current state and consecutive-failure
// count without applying the Open-to-HalfOpen recovery transition.
func (t *CircuitBreakerStateTracker) Snapshot() CircuitBreakerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return CircuitBreakerSnapshot{State: t.state, ConsecutiveFails: t.consecutiveFails}
}

// Snapshot reports the current state and consecutive-failure count of p's
// tracker.
func (p *CircuitBreakerPolicy[E]) Snapshot() CircuitBreakerSnapshot {
	return p.Tracker.Snapshot()
}

// CircuitBreakerPolicy is an immutable record pairing configuration with a
// shared [CircuitBreakerStateTracker].
type CircuitBreakerPolicy[E error] struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	// BreakPredicate, if set, is consulted on every failure; returning false
	// means the failure does not count toward the threshold at all.
	BreakPredicate func(E) bool
	Coerce         func(error) E
	Hooks          *Hooks
	Clock          Clock
	Tracker        *CircuitBreakerStateTracker
}

// NewCircuitBreakerPolicy builds a [CircuitBreakerPolicy] with a fresh
// tracker.
func NewCircuitBreakerPolicy[E error](failureThreshold int, resetTimeout time.Duration, coerce func(error) E) *CircuitBreakerPolicy[E] {
	return &CircuitBreakerPolicy[E]{
		FailureThreshold: failureThreshold,
		ResetTimeout:     resetTimeout,
		Coerce:           coerce,
		Tracker:          NewCircuitBreakerStateTracker(),
	}
}

// DoCircuitBreaker executes op, short-circuiting with a
// *CircuitBreakerOpenError when the breaker is open and the reset timeout
// has not yet elapsed.
func DoCircuitBreaker[T any, E error](ctx context.Context, p *CircuitBreakerPolicy[E], op func(context.Context) Result[T, E]) Result[T, E] {
	if err := p.allow(); err != nil {
		return Failure[T](p.coerce(err))
	}

	r := op(ctx)
	if r.IsSuccess() {
		p.recordSuccess()
	} else {
		p.recordFailure(r.Error())
	}
	return r
}

func (p *CircuitBreakerPolicy[E]) clock() Clock {
	if p.Clock != nil {
		return p.Clock
	}
	return RealClock{}
}

// allow evaluates the effective state under the tracker mutex, applying the
// Open -> HalfOpen recovery transition when the reset timeout has elapsed.
func (p *CircuitBreakerPolicy[E]) allow() error {
	t := p.Tracker
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Open {
		return nil
	}

	now := p.clock().Now()
	elapsed := now.Sub(t.lastFailureTime)
	if t.hasLastFailure && elapsed >= p.ResetTimeout {
		p.transitionLocked(HalfOpen)
		return nil
	}

	retryAfter := p.ResetTimeout - elapsed
	if !t.hasLastFailure || retryAfter <= 0 {
		return &CircuitBreakerOpenError{}
	}
	return &CircuitBreakerOpenError{RetryAfter: &retryAfter}
}

func (p *CircuitBreakerPolicy[E]) recordSuccess() {
	t := p.Tracker
	t.mu.Lock()
	defer t.mu.Unlock()

	t.consecutiveFails = 0
	if t.state != Closed {
		p.transitionLocked(Closed)
	}
}

func (p *CircuitBreakerPolicy[E]) recordFailure(err E) {
	if p.BreakPredicate != nil && !p.BreakPredicate(err) {
		return
	}

	t := p.Tracker
	t.mu.Lock()
	defer t.mu.Unlock()

	t.consecutiveFails++
	t.lastFailureTime = p.clock().Now()
	t.hasLastFailure = true

	switch t.state {
	case HalfOpen:
		p.transitionLocked(Open)
	case Closed:
		if t.consecutiveFails >= p.FailureThreshold {
			p.transitionLocked(Open)
		}
	}
}

// transitionLocked must be called with t.mu held. It updates the state and
// invokes the on-state-change hook.
func (p *CircuitBreakerPolicy[E]) transitionLocked(to CircuitBreakerState) {
	from := p.Tracker.state
	p.Tracker.state = to
	p.Hooks.emitStateChange(from, to)
}

func (p *CircuitBreakerPolicy[E]) coerce(err error) E {
	if p.Coerce != nil {
		return p.Coerce(err)
	}
	e, _ := any(err).(E)
	return e
}
