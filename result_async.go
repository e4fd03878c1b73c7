package functional

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SequenceResultAsync awaits each task in items one at a time, in
// declaration order, short-circuiting as soon as one returns a Failure
// without starting the remaining tasks. Use this when tasks share a
// rate-limited resource or must observe each other's side effects in order.
func SequenceResultAsync[T any, E error](ctx context.Context, items []func(context.Context) Result[T, E]) Result[[]T, E] {
	out := make([]T, 0, len(items))
	for _, task := range items {
		r := task(ctx)
		if !r.success {
			return Failure[[]T](r.err)
		}
		out = append(out, r.value)
	}
	return Success[[]T, E](out)
}

// TraverseResultAsync maps f over items sequentially and awaits each Result
// before starting the next, short-circuiting on the first Failure.
func TraverseResultAsync[T, U any, E error](ctx context.Context, items []T, f func(context.Context, T) Result[U, E]) Result[[]U, E] {
	out := make([]U, 0, len(items))
	for _, item := range items {
		r := f(ctx, item)
		if !r.success {
			return Failure[[]U](r.err)
		}
		out = append(out, r.value)
	}
	return Success[[]U, E](out)
}

// SequenceResultParallel starts every task in items concurrently, awaits all
// of them, then sequences the results in declaration order (not completion
// order). If the context is cancelled, any task that has not yet completed
// observes the cancellation through ctx.
func SequenceResultParallel[T any, E error](ctx context.Context, items []func(context.Context) Result[T, E]) Result[[]T, E] {
	results := make([]Result[T, E], len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, task := range items {
		i, task := i, task
		g.Go(func() error {
			results[i] = task(gctx)
			return nil
		})
	}
	_ = g.Wait() // tasks never return an error to the group; failures live in results

	return SequenceResult(results)
}

// TraverseResultParallel maps f over items concurrently, awaits all of them,
// then sequences the results in declaration order.
func TraverseResultParallel[T, U any, E error](ctx context.Context, items []T, f func(context.Context, T) Result[U, E]) Result[[]U, E] {
	tasks := make([]func(context.Context) Result[U, E], len(items))
	for i, item := range items {
		item := item
		tasks[i] = func(ctx context.Context) Result[U, E] { return f(ctx, item) }
	}
	return SequenceResultParallel(ctx, tasks)
}
