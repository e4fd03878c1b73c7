package functional

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BuildValidationPipelineAsync1..8 build a fan-out function TInput -> async
// Validation[R, E] whose steps all execute CONCURRENTLY — grounded on
// golang.org/x/sync/errgroup, the same concurrent-fan-out primitive used by
// [SequenceResultParallel]. The join point awaits every step before
// deciding; error concatenation order is the declaration order of the
// steps, never completion order, matching the synchronous pipeline's
// contract.

// BuildValidationPipelineAsync1 builds a single-step async pipeline.
func BuildValidationPipelineAsync1[TInput, A any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
) func(context.Context, TInput) Validation[A, E] {
	return func(ctx context.Context, in TInput) Validation[A, E] {
		return step1(ctx, in)
	}
}

// BuildValidationPipelineAsync2 builds a two-step concurrent fan-out
// pipeline joined by combiner.
func BuildValidationPipelineAsync2[TInput, A, B, R any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
	step2 func(context.Context, TInput) Validation[B, E],
	combiner func(A, B) R,
) func(context.Context, TInput) Validation[R, E] {
	return func(ctx context.Context, in TInput) Validation[R, E] {
		var a Validation[A, E]
		var b Validation[B, E]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { a = step1(gctx, in); return nil })
		g.Go(func() error { b = step2(gctx, in); return nil })
		_ = g.Wait()
		return ZipValidation2(a, b, combiner)
	}
}

// BuildValidationPipelineAsync3 builds a three-step concurrent fan-out
// pipeline joined by combiner.
func BuildValidationPipelineAsync3[TInput, A, B, C, R any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
	step2 func(context.Context, TInput) Validation[B, E],
	step3 func(context.Context, TInput) Validation[C, E],
	combiner func(A, B, C) R,
) func(context.Context, TInput) Validation[R, E] {
	return func(ctx context.Context, in TInput) Validation[R, E] {
		var a Validation[A, E]
		var b Validation[B, E]
		var c Validation[C, E]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { a = step1(gctx, in); return nil })
		g.Go(func() error { b = step2(gctx, in); return nil })
		g.Go(func() error { c = step3(gctx, in); return nil })
		_ = g.Wait()
		return ZipValidation3(a, b, c, combiner)
	}
}

// BuildValidationPipelineAsync4 builds a four-step concurrent fan-out
// pipeline joined by combiner.
func BuildValidationPipelineAsync4[TInput, A, B, C, D, R any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
	step2 func(context.Context, TInput) Validation[B, E],
	step3 func(context.Context, TInput) Validation[C, E],
	step4 func(context.Context, TInput) Validation[D, E],
	combiner func(A, B, C, D) R,
) func(context.Context, TInput) Validation[R, E] {
	return func(ctx context.Context, in TInput) Validation[R, E] {
		var a Validation[A, E]
		var b Validation[B, E]
		var c Validation[C, E]
		var d Validation[D, E]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { a = step1(gctx, in); return nil })
		g.Go(func() error { b = step2(gctx, in); return nil })
		g.Go(func() error { c = step3(gctx, in); return nil })
		g.Go(func() error { d = step4(gctx, in); return nil })
		_ = g.Wait()
		return ZipValidation4(a, b, c, d, combiner)
	}
}

// BuildValidationPipelineAsync5 builds a five-step concurrent fan-out
// pipeline joined by combiner.
func BuildValidationPipelineAsync5[TInput, A, B, C, D, F, R any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
	step2 func(context.Context, TInput) Validation[B, E],
	step3 func(context.Context, TInput) Validation[C, E],
	step4 func(context.Context, TInput) Validation[D, E],
	step5 func(context.Context, TInput) Validation[F, E],
	combiner func(A, B, C, D, F) R,
) func(context.Context, TInput) Validation[R, E] {
	return func(ctx context.Context, in TInput) Validation[R, E] {
		var a Validation[A, E]
		var b Validation[B, E]
		var c Validation[C, E]
		var d Validation[D, E]
		var f Validation[F, E]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { a = step1(gctx, in); return nil })
		g.Go(func() error { b = step2(gctx, in); return nil })
		g.Go(func() error { c = step3(gctx, in); return nil })
		g.Go(func() error { d = step4(gctx, in); return nil })
		g.Go(func() error { f = step5(gctx, in); return nil })
		_ = g.Wait()
		return ZipValidation5(a, b, c, d, f, combiner)
	}
}

// BuildValidationPipelineAsync6 builds a six-step concurrent fan-out
// pipeline joined by combiner.
func BuildValidationPipelineAsync6[TInput, A, B, C, D, F, G, R any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
	step2 func(context.Context, TInput) Validation[B, E],
	step3 func(context.Context, TInput) Validation[C, E],
	step4 func(context.Context, TInput) Validation[D, E],
	step5 func(context.Context, TInput) Validation[F, E],
	step6 func(context.Context, TInput) Validation[G, E],
	combiner func(A, B, C, D, F, G) R,
) func(context.Context, TInput) Validation[R, E] {
	return func(ctx context.Context, in TInput) Validation[R, E] {
		var a Validation[A, E]
		var b Validation[B, E]
		var c Validation[C, E]
		var d Validation[D, E]
		var f Validation[F, E]
		var g2 Validation[G, E]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { a = step1(gctx, in); return nil })
		g.Go(func() error { b = step2(gctx, in); return nil })
		g.Go(func() error { c = step3(gctx, in); return nil })
		g.Go(func() error { d = step4(gctx, in); return nil })
		g.Go(func() error { f = step5(gctx, in); return nil })
		g.Go(func() error { g2 = step6(gctx, in); return nil })
		_ = g.Wait()
		return ZipValidation6(a, b, c, d, f, g2, combiner)
	}
}

// BuildValidationPipelineAsync7 builds a seven-step concurrent fan-out
// pipeline joined by combiner.
func BuildValidationPipelineAsync7[TInput, A, B, C, D, F, G, H, R any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
	step2 func(context.Context, TInput) Validation[B, E],
	step3 func(context.Context, TInput) Validation[C, E],
	step4 func(context.Context, TInput) Validation[D, E],
	step5 func(context.Context, TInput) Validation[F, E],
	step6 func(context.Context, TInput) Validation[G, E],
	step7 func(context.Context, TInput) Validation[H, E],
	combiner func(A, B, C, D, F, G, H) R,
) func(context.Context, TInput) Validation[R, E] {
	return func(ctx context.Context, in TInput) Validation[R, E] {
		var a Validation[A, E]
		var b Validation[B, E]
		var c Validation[C, E]
		var d Validation[D, E]
		var f Validation[F, E]
		var g2 Validation[G, E]
		var h Validation[H, E]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { a = step1(gctx, in); return nil })
		g.Go(func() error { b = step2(gctx, in); return nil })
		g.Go(func() error { c = step3(gctx, in); return nil })
		g.Go(func() error { d = step4(gctx, in); return nil })
		g.Go(func() error { f = step5(gctx, in); return nil })
		g.Go(func() error { g2 = step6(gctx, in); return nil })
		g.Go(func() error { h = step7(gctx, in); return nil })
		_ = g.Wait()
		return ZipValidation7(a, b, c, d, f, g2, h, combiner)
	}
}

// BuildValidationPipelineAsync8 builds an eight-step concurrent fan-out
// pipeline joined by combiner.
func BuildValidationPipelineAsync8[TInput, A, B, C, D, F, G, H, I, R any, E error](
	step1 func(context.Context, TInput) Validation[A, E],
	step2 func(context.Context, TInput) Validation[B, E],
	step3 func(context.Context, TInput) Validation[C, E],
	step4 func(context.Context, TInput) Validation[D, E],
	step5 func(context.Context, TInput) Validation[F, E],
	step6 func(context.Context, TInput) Validation[G, E],
	step7 func(context.Context, TInput) Validation[H, E],
	step8 func(context.Context, TInput) Validation[I, E],
	combiner func(A, B, C, D, F, G, H, I) R,
) func(context.Context, TInput) Validation[R, E] {
	return func(ctx context.Context, in TInput) Validation[R, E] {
		var a Validation[A, E]
		var b Validation[B, E]
		var c Validation[C, E]
		var d Validation[D, E]
		var f Validation[F, E]
		var g2 Validation[G, E]
		var h Validation[H, E]
		var i Validation[I, E]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { a = step1(gctx, in); return nil })
		g.Go(func() error { b = step2(gctx, in); return nil })
		g.Go(func() error { c = step3(gctx, in); return nil })
		g.Go(func() error { d = step4(gctx, in); return nil })
		g.Go(func() error { f = step5(gctx, in); return nil })
		g.Go(func() error { g2 = step6(gctx, in); return nil })
		g.Go(func() error { h = step7(gctx, in); return nil })
		g.Go(func() error { i = step8(gctx, in); return nil })
		_ = g.Wait()
		return ZipValidation8(a, b, c, d, f, g2, h, i, combiner)
	}
}
