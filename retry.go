package functional

import (
	"context"
)

// Pattern: Retry with Backoff — masks transient failures with a
// configurable backoff strategy; stops immediately on a [Permanent] error
// or when a caller-supplied predicate rejects further attempts.

// RetryPolicy is an immutable record describing a retry loop.
type RetryPolicy[E error] struct {
	// MaxAttempts is the maximum number of times op is invoked, including
	// the first attempt. Values below 1 are treated as 1.
	MaxAttempts int
	// Backoff computes the delay before each retry. It is called with the
	// 0-based retry index: 0 after the first failed attempt, 1 after the
	// second, and so on.
	Backoff BackoffStrategy
	// RetryPredicate, if set, is consulted after every failed attempt except
	// the last one and except a failure marked [Permanent] (which stops
	// retrying on its own); returning false stops retrying immediately.
	RetryPredicate func(E) bool
	// Coerce converts a context cancellation error observed during a
	// backoff sleep into E. Required whenever E is not itself `error`.
	Coerce func(error) E
	Hooks  *Hooks
	Clock  Clock
}

// DoRetry executes op, retrying up to policy.MaxAttempts times using the
// configured [BackoffStrategy]. It honors [Permanent]/[Transient]
// classification and, if set, RetryPredicate.
func DoRetry[T any, E error](ctx context.Context, policy *RetryPolicy[E], op func(context.Context) Result[T, E]) Result[T, E] {
	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	clock := policy.Clock
	if clock == nil {
		clock = RealClock{}
	}

	var last Result[T, E]

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		last = op(ctx)
		if last.IsSuccess() {
			return last
		}

		err := last.Error()

		if IsPermanent(err) {
			return last
		}

		if attempt == maxAttempts {
			break
		}

		if policy.RetryPredicate != nil && !policy.RetryPredicate(err) {
			return last
		}

		policy.Hooks.emitRetry(attempt, err)

		delay := policy.Backoff.Delay(attempt - 1)
		if delay <= 0 {
			continue
		}

		timer := clock.NewTimer(delay)
		select {
		case <-timer.C():
		case <-ctx.Done():
			timer.Stop()
			return Failure[T](policy.coerce(ctx.Err()))
		}
	}

	return last
}

// coerce converts a plain error into E via the policy's Coerce function. If
// Coerce is unset, it falls back to the identity conversion, which only
// type-checks when callers instantiate RetryPolicy with E = error.
func (p *RetryPolicy[E]) coerce(err error) E {
	if p.Coerce != nil {
		return p.Coerce(err)
	}
	e, _ := any(err).(E)
	return e
}
