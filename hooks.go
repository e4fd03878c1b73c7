package functional

// Hooks holds optional callback functions for resilience and memoization
// lifecycle events. All fields are nil by default; callers set only the
// hooks they care about. Once constructed, a Hooks value must not be
// mutated — emit methods read the function fields without synchronization,
// which is safe as long as the struct is read-only after initialization.
// Hooks must be non-blocking and side-effect-safe; long work inside a hook
// is a programmer error.
//
// Pattern: Observer — decouples resilience/memoization event emission from
// consumers (logging, metrics, alerting) without the patterns knowing about
// those consumers.
type Hooks struct {
	// OnRetry fires before sleeping for a backoff, with the 1-based attempt
	// number that just failed and the error it failed with.
	OnRetry func(attempt int, err error)
	// OnStateChange fires on every circuit breaker state transition.
	OnStateChange func(from, to CircuitBreakerState)
	// OnBulkheadRejected fires when a call is rejected because the bulkhead's
	// concurrency and wait queue are both full.
	OnBulkheadRejected func()
	// OnTimeout fires when an operation is cancelled by its own configured
	// timeout, as opposed to external context cancellation.
	OnTimeout func()
	// OnCacheHit fires when get_or_add finds a live L1 or L2 entry.
	OnCacheHit func(key any)
	// OnCacheMiss fires when get_or_add must invoke the factory.
	OnCacheMiss func(key any)
	// OnHerdJoin fires for a caller that joined an in-flight computation for
	// a key instead of starting a new one, once that computation's result is
	// available.
	OnHerdJoin func(key any)
}

func (h *Hooks) emitRetry(attempt int, err error) {
	if h != nil && h.OnRetry != nil {
		h.OnRetry(attempt, err)
	}
}

func (h *Hooks) emitStateChange(from, to CircuitBreakerState) {
	if h != nil && h.OnStateChange != nil {
		h.OnStateChange(from, to)
	}
}

func (h *Hooks) emitBulkheadRejected() {
	if h != nil && h.OnBulkheadRejected != nil {
		h.OnBulkheadRejected()
	}
}

func (h *Hooks) emitTimeout() {
	if h != nil && h.OnTimeout != nil {
		h.OnTimeout()
	}
}

func (h *Hooks) emitCacheHit(key any) {
	if h != nil && h.OnCacheHit != nil {
		h.OnCacheHit(key)
	}
}

func (h *Hooks) emitCacheMiss(key any) {
	if h != nil && h.OnCacheMiss != nil {
		h.OnCacheMiss(key)
	}
}

func (h *Hooks) emitHerdJoin(key any) {
	if h != nil && h.OnHerdJoin != nil {
		h.OnHerdJoin(key)
	}
}
