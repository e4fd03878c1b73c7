package functional

import (
	"errors"
	"fmt"
	"time"
)

// Error is the abstract contract that all failures flowing through Result,
// Validation and the resilience engine must satisfy: a human message, an
// optional machine-readable code, and optional structured metadata.
//
// Any type satisfying Error can be carried as a Result's failure or a
// Validation error.
type Error interface {
	error
	// ErrMessage returns the human-readable message.
	ErrMessage() string
	// ErrCode returns the machine-readable code, or "" if unset.
	ErrCode() string
	// ErrMetadata returns the structured metadata map, or nil if unset.
	ErrMetadata() map[string]any
}

// BaseError is a minimal, ready-to-use [Error] implementation for
// application code that does not want to define its own error type. It is
// deliberately not the type of the distinguished library-emitted failures
// (see [TimeoutError], [CircuitBreakerOpenError], [BulkheadRejectedError],
// [InternalError]) so that callers can distinguish "the library rejected my
// call" from "my own domain returned a BaseError" via a type switch or
// errors.As.
type BaseError struct {
	Message  string
	Code     string
	Metadata map[string]any
}

// NewError builds a [BaseError] with just a message.
func NewError(message string) *BaseError {
	return &BaseError{Message: message}
}

// WithCode returns a copy of e with Code set.
func (e *BaseError) WithCode(code string) *BaseError {
	c := *e
	c.Code = code
	return &c
}

// WithMetadata returns a copy of e with Metadata set.
func (e *BaseError) WithMetadata(md map[string]any) *BaseError {
	c := *e
	c.Metadata = md
	return &c
}

func (e *BaseError) Error() string            { return e.Message }
func (e *BaseError) ErrMessage() string       { return e.Message }
func (e *BaseError) ErrCode() string          { return e.Code }
func (e *BaseError) ErrMetadata() map[string]any { return e.Metadata }

// LibraryError is implemented by every distinguished library error kind
// ([TimeoutError], [CircuitBreakerOpenError], [BulkheadRejectedError],
// [InternalError]). It lets callers distinguish infrastructure failures from
// application errors via errors.As-style type assertions.
type LibraryError interface {
	Error
	IsLibraryError() bool
}

// ---------------------------------------------------------------------------
// TimeoutError
// ---------------------------------------------------------------------------

// TimeoutError is returned when an operation did not complete within its
// configured budget.
type TimeoutError struct {
	TimeoutConfigured time.Duration
	Elapsed           time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %s (configured %s)", e.Elapsed, e.TimeoutConfigured)
}
func (e *TimeoutError) ErrMessage() string          { return e.Error() }
func (e *TimeoutError) ErrCode() string             { return "timeout" }
func (e *TimeoutError) ErrMetadata() map[string]any {
	return map[string]any{"timeout_configured": e.TimeoutConfigured, "elapsed": e.Elapsed}
}
func (e *TimeoutError) IsLibraryError() bool { return true }

// ---------------------------------------------------------------------------
// CircuitBreakerOpenError
// ---------------------------------------------------------------------------

// CircuitBreakerOpenError is returned when a call is short-circuited by an
// open circuit breaker. RetryAfter is the estimated remaining time until the
// breaker transitions to half-open, or nil if it could not be computed.
type CircuitBreakerOpenError struct {
	RetryAfter *time.Duration
}

func (e *CircuitBreakerOpenError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("circuit breaker is open, retry after %s", *e.RetryAfter)
	}
	return "circuit breaker is open"
}
func (e *CircuitBreakerOpenError) ErrMessage() string { return e.Error() }
func (e *CircuitBreakerOpenError) ErrCode() string    { return "circuit_breaker_open" }
func (e *CircuitBreakerOpenError) ErrMetadata() map[string]any {
	if e.RetryAfter == nil {
		return nil
	}
	return map[string]any{"retry_after": *e.RetryAfter}
}
func (e *CircuitBreakerOpenError) IsLibraryError() bool { return true }

// ---------------------------------------------------------------------------
// BulkheadRejectedError
// ---------------------------------------------------------------------------

// BulkheadRejectedError is returned when a call is rejected because the
// bulkhead's concurrency slots and wait queue are both full.
type BulkheadRejectedError struct {
	MaxConcurrency int
	MaxQueueSize   int
}

func (e *BulkheadRejectedError) Error() string {
	return fmt.Sprintf("bulkhead rejected: max_concurrency=%d max_queue_size=%d", e.MaxConcurrency, e.MaxQueueSize)
}
func (e *BulkheadRejectedError) ErrMessage() string { return e.Error() }
func (e *BulkheadRejectedError) ErrCode() string    { return "bulkhead_rejected" }
func (e *BulkheadRejectedError) ErrMetadata() map[string]any {
	return map[string]any{"max_concurrency": e.MaxConcurrency, "max_queue_size": e.MaxQueueSize}
}
func (e *BulkheadRejectedError) IsLibraryError() bool { return true }

// ---------------------------------------------------------------------------
// InternalError
// ---------------------------------------------------------------------------

// InternalError is the error shape for a Go panic recovered at the outcome
// boundary: the panic message, the panic value's type name and a captured
// stack. No function in this package recovers panics or constructs an
// InternalError itself.
type InternalError struct {
	Message       string
	ExceptionType string
	StackCapture  string
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }
func (e *InternalError) ErrMessage() string { return e.Message }
func (e *InternalError) ErrCode() string    { return "internal_error" }
func (e *InternalError) ErrMetadata() map[string]any {
	return map[string]any{"exception_type": e.ExceptionType, "stack_capture": e.StackCapture}
}
func (e *InternalError) IsLibraryError() bool { return true }

// ---------------------------------------------------------------------------
// Unwrap failures
// ---------------------------------------------------------------------------

// UnwrapError is the panic value used by get_or_throw-style extractors
// applied to an absent Option or a Failure Result.
// Application code that calls GetOrThrow is expected to let it propagate or
// recover it explicitly; it is never produced by any other combinator.
type UnwrapError struct {
	Message string
}

func (e *UnwrapError) Error() string { return e.Message }

func newUnwrapError(msg string) *UnwrapError { return &UnwrapError{Message: msg} }

// ---------------------------------------------------------------------------
// Transient / Permanent retry classification
// ---------------------------------------------------------------------------

// transientError marks a wrapped error as transient (retriable).
type transientError struct{ err error }

func (e *transientError) Error() string { return "transient: " + e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// permanentError marks a wrapped error as permanent (non-retriable).
type permanentError struct{ err error }

func (e *permanentError) Error() string { return "permanent: " + e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Transient wraps err to mark it as a transient (retriable) error. [DoRetry]
// retries every failure not marked [Permanent], so the mark does not by
// itself change retry behaviour. Returns nil if err is nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// Permanent wraps err to mark it as a permanent (non-retriable) error.
// [RetryPolicy] stops retrying immediately on a Permanent error regardless
// of attempts remaining. Returns nil if err is nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was explicitly marked as [Permanent].
// Library-emitted failures (TimeoutError, CircuitBreakerOpenError,
// BulkheadRejectedError) are never implicitly permanent — only an explicit
// Permanent wrap, or a RetryPredicate returning false, stops retry early on
// them.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	var pe *permanentError
	return errors.As(err, &pe)
}
