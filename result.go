package functional

// Result represents the outcome of a fallible computation: Success(value) or
// Failure(err). The zero value is a Failure with a nil error, which is never
// produced by this package's own constructors — always use [Success] or
// [Failure].
type Result[T any, E error] struct {
	value   T
	err     E
	success bool
}

// Success builds a successful Result.
func Success[T any, E error](value T) Result[T, E] {
	return Result[T, E]{value: value, success: true}
}

// Failure builds a failed Result.
func Failure[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsSuccess reports whether the Result succeeded.
func (r Result[T, E]) IsSuccess() bool { return r.success }

// IsFailure reports whether the Result failed.
func (r Result[T, E]) IsFailure() bool { return !r.success }

// Error returns the failure error; the zero value of E if the Result
// succeeded.
func (r Result[T, E]) Error() E { return r.err }

// MapResult applies f to the success value, leaving a Failure untouched.
func MapResult[T, U any, E error](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.success {
		return Failure[U](r.err)
	}
	return Success[U, E](f(r.value))
}

// MapResultError applies f to the failure error, leaving a Success
// untouched.
func MapResultError[T any, E, F error](r Result[T, E], f func(E) F) Result[T, F] {
	if r.success {
		return Success[T, F](r.value)
	}
	return Failure[T](f(r.err))
}

// BindResult applies f, which itself returns a Result, short-circuiting on
// the first Failure (fail-fast).
func BindResult[T, U any, E error](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.success {
		return Failure[U](r.err)
	}
	return f(r.value)
}

// MatchResult invokes onSuccess or onFailure depending on the variant.
func MatchResult[T any, E error, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if r.success {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Tap invokes fn with the success value for its side effect, and returns r
// unchanged.
func (r Result[T, E]) Tap(fn func(T)) Result[T, E] {
	if r.success {
		fn(r.value)
	}
	return r
}

// TapError invokes fn with the failure error for its side effect, and
// returns r unchanged.
func (r Result[T, E]) TapError(fn func(E)) Result[T, E] {
	if !r.success {
		fn(r.err)
	}
	return r
}

// GetOrDefault returns the success value, or def on failure.
func (r Result[T, E]) GetOrDefault(def T) T {
	if r.success {
		return r.value
	}
	return def
}

// GetOrDefaultWith returns the success value, or factory(err) on failure.
func (r Result[T, E]) GetOrDefaultWith(factory func(E) T) T {
	if r.success {
		return r.value
	}
	return factory(r.err)
}

// GetOrThrow returns the success value, panicking with an [UnwrapError]
// whose message includes the failure error's text if the Result failed.
func (r Result[T, E]) GetOrThrow() T {
	if !r.success {
		panic(newUnwrapError("unwrap on failure result: " + errString(r.err)))
	}
	return r.value
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

// OrElse returns r if it succeeded, otherwise alt.
func (r Result[T, E]) OrElse(alt Result[T, E]) Result[T, E] {
	if r.success {
		return r
	}
	return alt
}

// OrElseWith returns r if it succeeded, otherwise the Result produced by
// factory applied to the failure error.
func (r Result[T, E]) OrElseWith(factory func(E) Result[T, E]) Result[T, E] {
	if r.success {
		return r
	}
	return factory(r.err)
}

// ToOption discards the error, converting a Success into Some and a Failure
// into None.
func ToOption[T any, E error](r Result[T, E]) Option[T] {
	if !r.success {
		return None[T]()
	}
	return Some(r.value)
}

// ToEitherResult converts a Result into an Either, Success to Right and
// Failure to Left.
func ToEitherResult[T any, E error](r Result[T, E]) Either[E, T] {
	if r.success {
		return Right[E, T](r.value)
	}
	return Left[E, T](r.err)
}
