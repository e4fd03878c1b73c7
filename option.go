package functional

// Option represents an optional value: either Some(value) or None. The zero
// value of Option[T] is None, so a nil-initialized Option is always safe to
// use.
//
// Pattern: sum type via tagged struct — matches on the has flag once per
// combinator rather than forcing virtual dispatch through an interface
// hierarchy.
type Option[T any] struct {
	value T
	has   bool
}

// Some wraps value in a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, has: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.has }

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool { return !o.has }

// Map applies f to the contained value if present, leaving None untouched.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.has {
		return None[U]()
	}
	return Some(f(o.value))
}

// Bind applies f, which itself returns an Option, short-circuiting on None.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.has {
		return None[U]()
	}
	return f(o.value)
}

// Filter keeps the Some value only if p holds for it.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if !o.has || !p(o.value) {
		return None[T]()
	}
	return o
}

// Match invokes onSome or onNone depending on the variant and returns the
// resulting value.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.has {
		return onSome(o.value)
	}
	return onNone()
}

// OrElse returns o if present, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.has {
		return o
	}
	return alt
}

// OrElseWith returns o if present, otherwise the Option produced by factory.
func (o Option[T]) OrElseWith(factory func() Option[T]) Option[T] {
	if o.has {
		return o
	}
	return factory()
}

// GetOrDefault returns the contained value, or def if absent.
func (o Option[T]) GetOrDefault(def T) T {
	if o.has {
		return o.value
	}
	return def
}

// GetOrDefaultWith returns the contained value, or factory() if absent.
func (o Option[T]) GetOrDefaultWith(factory func() T) T {
	if o.has {
		return o.value
	}
	return factory()
}

// GetOrThrow returns the contained value, panicking with an [UnwrapError] if
// absent. Intended for call sites that have already established the value
// must be present; the panic is expected to surface as a programmer error,
// not be silently swallowed.
func (o Option[T]) GetOrThrow() T {
	if !o.has {
		panic(newUnwrapError("unwrap on absent value"))
	}
	return o.value
}

// Tap invokes fn with the contained value for its side effect, iff present,
// and returns o unchanged.
func (o Option[T]) Tap(fn func(T)) Option[T] {
	if o.has {
		fn(o.value)
	}
	return o
}

// TapNone invokes fn for its side effect iff the option is absent, and
// returns o unchanged.
func (o Option[T]) TapNone(fn func()) Option[T] {
	if !o.has {
		fn()
	}
	return o
}

// ToResult converts o to a Result, using err as the failure when absent.
func ToResult[T any, E error](o Option[T], err E) Result[T, E] {
	if o.has {
		return Success[T, E](o.value)
	}
	return Failure[T](err)
}

// ToResultWith converts o to a Result, calling factory to build the failure
// when absent.
func ToResultWith[T any, E error](o Option[T], factory func() E) Result[T, E] {
	if o.has {
		return Success[T, E](o.value)
	}
	return Failure[T](factory())
}

// Either is a minimal left/right sum used only as a conversion target (the
// algebra's other combinators operate on Option/Result/Validation; Either
// exists solely for ToEither, ToEitherWith and ToEitherResult).
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds an Either holding a left value.
func Left[L, R any](v L) Either[L, R] { return Either[L, R]{left: v} }

// Right builds an Either holding a right value.
func Right[L, R any](v R) Either[L, R] { return Either[L, R]{right: v, isRight: true} }

// IsRight reports whether the Either holds a right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// LeftValue returns the left value and whether it is populated.
func (e Either[L, R]) LeftValue() (L, bool) { return e.left, !e.isRight }

// RightValue returns the right value and whether it is populated.
func (e Either[L, R]) RightValue() (R, bool) { return e.right, e.isRight }

// ToEither converts o to an Either, using left as the Left value when
// absent.
func ToEither[L, R any](o Option[R], left L) Either[L, R] {
	if o.has {
		return Right[L, R](o.value)
	}
	return Left[L, R](left)
}

// ToEitherWith converts o to an Either, calling factory to build the Left
// value when absent.
func ToEitherWith[L, R any](o Option[R], factory func() L) Either[L, R] {
	if o.has {
		return Right[L, R](o.value)
	}
	return Left[L, R](factory())
}
