package functional

import "context"

// ResultPipeline is a reusable function from TIn to a Result[TOut, E],
// built up by chaining [BindStep], [MapStep] and [BindStepAsync]. Each call
// returns a new pipeline value over a (possibly) different output type — Go
// methods cannot introduce new type parameters, so the fluent chain is
// expressed as a sequence of free functions instead, mirroring how this
// package's other combinators (MapResult, BindResult, …) are free functions
// rather than methods.
//
// The built pipeline is pure with respect to construction: it may be
// invoked repeatedly. Steps run sequentially and fail-fast.
type ResultPipeline[TIn, TOut any, E error] func(context.Context, TIn) Result[TOut, E]

// NewResultPipeline starts an identity pipeline over TIn.
func NewResultPipeline[TIn any, E error]() ResultPipeline[TIn, TIn, E] {
	return func(_ context.Context, v TIn) Result[TIn, E] { return Success[TIn, E](v) }
}

// BindStep appends a Result-returning step applied by bind to the previous
// step's success value.
func BindStep[TIn, TMid, TOut any, E error](p ResultPipeline[TIn, TMid, E], step func(TMid) Result[TOut, E]) ResultPipeline[TIn, TOut, E] {
	return func(ctx context.Context, v TIn) Result[TOut, E] {
		r := p(ctx, v)
		if !r.success {
			return Failure[TOut](r.err)
		}
		return step(r.value)
	}
}

// MapStep appends a plain mapping step applied by map to the previous
// step's success value.
func MapStep[TIn, TMid, TOut any, E error](p ResultPipeline[TIn, TMid, E], step func(TMid) TOut) ResultPipeline[TIn, TOut, E] {
	return BindStep(p, func(v TMid) Result[TOut, E] { return Success[TOut, E](step(v)) })
}

// BindStepAsync appends an async Result-returning step. Once any async step
// has been added, the pipeline naturally carries a context.Context through
// every subsequent step — synchronous steps added afterward via MapStep or
// BindStep are automatically lifted since ResultPipeline already threads
// ctx.
func BindStepAsync[TIn, TMid, TOut any, E error](p ResultPipeline[TIn, TMid, E], step func(context.Context, TMid) Result[TOut, E]) ResultPipeline[TIn, TOut, E] {
	return func(ctx context.Context, v TIn) Result[TOut, E] {
		r := p(ctx, v)
		if !r.success {
			return Failure[TOut](r.err)
		}
		return step(ctx, r.value)
	}
}

// Run invokes the pipeline. It exists only for readability at call sites
// that don't want to call p(ctx, v) directly.
func (p ResultPipeline[TIn, TOut, E]) Run(ctx context.Context, v TIn) Result[TOut, E] {
	return p(ctx, v)
}
