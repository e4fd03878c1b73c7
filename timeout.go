package functional

import (
	"context"
	"time"
)

// Pattern: Timeout — wraps a call with a context deadline, returning a
// *TimeoutError (coerced into the operation's own error type E) if the
// operation does not complete in time. Distinguishes timeout-caused
// cancellation from parent context cancellation: an external cancellation
// is never mistaken for a timeout.

// TimeoutPolicy is an immutable record describing a time budget for a
// single operation invocation. Coerce converts the library-emitted
// *TimeoutError into the caller's error type E — see the composite policy's
// handling of error variance.
type TimeoutPolicy[E error] struct {
	Duration time.Duration
	Coerce   func(error) E
	Hooks    *Hooks
}

// NewTimeoutPolicy builds a [TimeoutPolicy] with the given budget and error
// coercion function.
func NewTimeoutPolicy[E error](d time.Duration, coerce func(error) E) *TimeoutPolicy[E] {
	return &TimeoutPolicy[E]{Duration: d, Coerce: coerce}
}

// DoTimeout executes fn under the policy's timeout budget.
//
// If the parent context is already cancelled, that cancellation is returned
// immediately without attempting fn. If fn exceeds the budget, a
// *TimeoutError carrying the configured duration and elapsed time is
// coerced into E and returned. If the parent context is cancelled while fn
// is running, the caller's own cancellation error propagates unchanged.
func DoTimeout[T any, E error](
	ctx context.Context,
	p *TimeoutPolicy[E],
	fn func(context.Context) Result[T, E],
) Result[T, E] {
	if err := ctx.Err(); err != nil {
		return Failure[T](p.coerceExternal(err))
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, p.Duration)
	defer cancel()

	start := time.Now()
	ch := make(chan Result[T, E], 1)

	go func() {
		ch <- fn(timeoutCtx)
	}()

	select {
	case r := <-ch:
		return r
	case <-timeoutCtx.Done():
		if err := ctx.Err(); err != nil {
			return Failure[T](p.coerceExternal(err))
		}
		p.Hooks.emitTimeout()
		return Failure[T](p.Coerce(&TimeoutError{TimeoutConfigured: p.Duration, Elapsed: time.Since(start)}))
	}
}

// coerceExternal converts a plain context cancellation error into E. It
// calls Coerce directly, so a nil Coerce panics; when E is itself `error`,
// callers supply the identity function.
func (p *TimeoutPolicy[E]) coerceExternal(err error) E {
	return p.Coerce(err)
}
