package functional

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Pattern: Bulkhead — bounds in-flight concurrency and adds a bounded FIFO
// wait queue in front of it, so that callers past both the concurrency
// limit and the queue limit fail fast instead of blocking forever.
//
// golang.org/x/sync/semaphore.Weighted already gives a context-cancellable,
// FIFO-fair blocking Acquire — exactly the waiter_queue the admission
// protocol describes — but it has no notion of a bounded queue size. This
// policy layers a mutex-guarded waiter counter in front of the semaphore to
// enforce max_queue_size, rejecting immediately once both the concurrency
// slots and the queue are full.
type BulkheadStateTracker struct {
	mu       sync.Mutex
	waiting  int
	inFlight atomic.Int64
}

// NewBulkheadStateTracker returns a tracker with zero waiters.
func NewBulkheadStateTracker() *BulkheadStateTracker {
	return &BulkheadStateTracker{}
}

// BulkheadPolicy is an immutable record pairing configuration with a shared
// semaphore and [BulkheadStateTracker].
type BulkheadPolicy[E error] struct {
	MaxConcurrency int
	MaxQueueSize   int
	Coerce         func(error) E
	Hooks          *Hooks

	sem     *semaphore.Weighted
	tracker *BulkheadStateTracker
}

// NewBulkheadPolicy builds a [BulkheadPolicy] admitting at most
// maxConcurrency concurrent calls with up to maxQueueSize callers waiting.
func NewBulkheadPolicy[E error](maxConcurrency, maxQueueSize int, coerce func(error) E) *BulkheadPolicy[E] {
	return &BulkheadPolicy[E]{
		MaxConcurrency: maxConcurrency,
		MaxQueueSize:   maxQueueSize,
		Coerce:         coerce,
		sem:            semaphore.NewWeighted(int64(maxConcurrency)),
		tracker:        NewBulkheadStateTracker(),
	}
}

// DoBulkhead executes op once a concurrency slot is available, queueing the
// caller (bounded by MaxQueueSize) if every slot is currently in use.
// Callers past both bounds fail immediately with a *BulkheadRejectedError.
func DoBulkhead[T any, E error](ctx context.Context, p *BulkheadPolicy[E], op func(context.Context) Result[T, E]) Result[T, E] {
	if p.sem.TryAcquire(1) {
		p.tracker.inFlight.Add(1)
		defer func() { p.tracker.inFlight.Add(-1); p.sem.Release(1) }()
		return op(ctx)
	}

	if !p.enterQueue() {
		p.Hooks.emitBulkheadRejected()
		return Failure[T](p.coerce(&BulkheadRejectedError{MaxConcurrency: p.MaxConcurrency, MaxQueueSize: p.MaxQueueSize}))
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.leaveQueue()
		return Failure[T](p.coerce(ctx.Err()))
	}
	// The waiter is no longer queued the instant the slot is acquired — it
	// now holds a slot, not a place in line — so leaveQueue runs here rather
	// than as a defer tied to DoBulkhead's own return.
	p.leaveQueue()

	p.tracker.inFlight.Add(1)
	defer func() { p.tracker.inFlight.Add(-1); p.sem.Release(1) }()

	return op(ctx)
}

func (p *BulkheadPolicy[E]) enterQueue() bool {
	t := p.tracker
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.waiting >= p.MaxQueueSize {
		return false
	}
	t.waiting++
	return true
}

func (p *BulkheadPolicy[E]) leaveQueue() {
	t := p.tracker
	t.mu.Lock()
	t.waiting--
	t.mu.Unlock()
}

// BulkheadSnapshot is a point-in-time read of a bulkhead's admission state,
// for introspection outside the call path.
type BulkheadSnapshot struct {
	CurrentConcurrency int
	Waiting            int
}

// Snapshot reports the bulkhead's current in-flight and queued-waiter
// counts.
func (p *BulkheadPolicy[E]) Snapshot() BulkheadSnapshot {
	p.tracker.mu.Lock()
	waiting := p.tracker.waiting
	p.tracker.mu.Unlock()
	return BulkheadSnapshot{
		CurrentConcurrency: int(p.tracker.inFlight.Load()),
		Waiting:            waiting,
	}
}

func (p *BulkheadPolicy[E]) coerce(err error) E {
	if p.Coerce != nil {
		return p.Coerce(err)
	}
	e, _ := any(err).(E)
	return e
}
