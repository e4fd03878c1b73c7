package functional

import "context"

// Pattern: Composite / Decorator, built as a functional-options chain over
// this package's typed Do* functions.
//
// CompositeResiliencePolicy wraps an operation innermost to outermost:
// bulkhead -> circuit breaker -> per-attempt timeout -> retry -> overall
// timeout. Per-attempt timeout lives strictly inside the retry loop so each
// attempt gets its own deadline; the overall timeout covers every attempt
// plus backoff sleeps.
//
// Error variance: every layer's operation type is Result[T, E] for one
// fixed E chosen by the caller. Library-emitted failures (*TimeoutError,
// *CircuitBreakerOpenError, *BulkheadRejectedError) are plain `error`
// values that each layer coerces into E via that layer's Coerce function —
// supplied once, up front, to [NewCompositeResiliencePolicyBuilder]. The
// common choice is E = error with the identity coercion; callers with a
// domain-specific E supply a function that wraps the library failure in
// their own error type (e.g. as one discriminable case of a sum type).
type CompositeResiliencePolicy[T any, E error] struct {
	bulkhead          *BulkheadPolicy[E]
	circuitBreaker    *CircuitBreakerPolicy[E]
	perAttemptTimeout *TimeoutPolicy[E]
	retry             *RetryPolicy[E]
	overallTimeout    *TimeoutPolicy[E]
}

// CompositeResiliencePolicyBuilder builds a [CompositeResiliencePolicy] via
// fluent configuration in any order.
type CompositeResiliencePolicyBuilder[T any, E error] struct {
	coerce func(error) E
	policy CompositeResiliencePolicy[T, E]
}

// NewCompositeResiliencePolicyBuilder starts an empty builder. coerce
// converts the library's own `error`-typed failures into E; pass the
// identity function `func(err error) error { return err }` when E is
// `error`.
func NewCompositeResiliencePolicyBuilder[T any, E error](coerce func(error) E) *CompositeResiliencePolicyBuilder[T, E] {
	return &CompositeResiliencePolicyBuilder[T, E]{coerce: coerce}
}

// WithTimeout sets the composite's overall timeout, covering every retry
// attempt plus backoff sleeps.
func (b *CompositeResiliencePolicyBuilder[T, E]) WithTimeout(p *TimeoutPolicy[E]) *CompositeResiliencePolicyBuilder[T, E] {
	p.Coerce = b.coerce
	b.policy.overallTimeout = p
	return b
}

// WithPerAttemptTimeout sets a timeout applied inside the retry loop, around
// every individual attempt.
func (b *CompositeResiliencePolicyBuilder[T, E]) WithPerAttemptTimeout(p *TimeoutPolicy[E]) *CompositeResiliencePolicyBuilder[T, E] {
	p.Coerce = b.coerce
	b.policy.perAttemptTimeout = p
	return b
}

// WithRetry sets the composite's retry policy.
func (b *CompositeResiliencePolicyBuilder[T, E]) WithRetry(p *RetryPolicy[E]) *CompositeResiliencePolicyBuilder[T, E] {
	p.Coerce = b.coerce
	b.policy.retry = p
	return b
}

// WithCircuitBreaker sets the composite's circuit breaker.
func (b *CompositeResiliencePolicyBuilder[T, E]) WithCircuitBreaker(p *CircuitBreakerPolicy[E]) *CompositeResiliencePolicyBuilder[T, E] {
	p.Coerce = b.coerce
	b.policy.circuitBreaker = p
	return b
}

// WithBulkhead sets the composite's bulkhead.
func (b *CompositeResiliencePolicyBuilder[T, E]) WithBulkhead(p *BulkheadPolicy[E]) *CompositeResiliencePolicyBuilder[T, E] {
	p.Coerce = b.coerce
	b.policy.bulkhead = p
	return b
}

// Build finalizes the composite policy.
func (b *CompositeResiliencePolicyBuilder[T, E]) Build() *CompositeResiliencePolicy[T, E] {
	p := b.policy
	return &p
}

// Execute runs op through every configured layer, innermost to outermost:
// bulkhead, circuit breaker, per-attempt timeout, retry, overall timeout.
// Layers that were never configured are skipped entirely.
func (p *CompositeResiliencePolicy[T, E]) Execute(ctx context.Context, op func(context.Context) Result[T, E]) Result[T, E] {
	attempt := op

	if p.bulkhead != nil {
		inner := attempt
		attempt = func(ctx context.Context) Result[T, E] {
			return DoBulkhead(ctx, p.bulkhead, inner)
		}
	}

	if p.circuitBreaker != nil {
		inner := attempt
		attempt = func(ctx context.Context) Result[T, E] {
			return DoCircuitBreaker(ctx, p.circuitBreaker, inner)
		}
	}

	if p.perAttemptTimeout != nil {
		inner := attempt
		attempt = func(ctx context.Context) Result[T, E] {
			return DoTimeout(ctx, p.perAttemptTimeout, inner)
		}
	}

	whole := attempt
	if p.retry != nil {
		inner := attempt
		whole = func(ctx context.Context) Result[T, E] {
			return DoRetry(ctx, p.retry, inner)
		}
	}

	if p.overallTimeout != nil {
		inner := whole
		whole = func(ctx context.Context) Result[T, E] {
			return DoTimeout(ctx, p.overallTimeout, inner)
		}
	}

	return whole(ctx)
}
