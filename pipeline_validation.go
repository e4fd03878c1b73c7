package functional

// BuildValidationPipeline1..8 build a reusable fan-out function TInput ->
// Validation[R, E]. Every step receives the SAME original input; every step
// always runs; errors from every Invalid step are concatenated in
// declaration order; the combiner runs iff every step produced Valid.
//
// The arity-1 form has no projection — it returns the step's own Validation
// unchanged, since there is nothing to combine.

// BuildValidationPipeline1 builds a pipeline with a single fan-out step.
func BuildValidationPipeline1[TInput, A any, E error](step1 func(TInput) Validation[A, E]) func(TInput) Validation[A, E] {
	return func(in TInput) Validation[A, E] { return step1(in) }
}

// BuildValidationPipeline2 builds a pipeline with two fan-out steps joined
// by combiner.
func BuildValidationPipeline2[TInput, A, B, R any, E error](
	step1 func(TInput) Validation[A, E],
	step2 func(TInput) Validation[B, E],
	combiner func(A, B) R,
) func(TInput) Validation[R, E] {
	return func(in TInput) Validation[R, E] {
		return ZipValidation2(step1(in), step2(in), combiner)
	}
}

// BuildValidationPipeline3 builds a pipeline with three fan-out steps joined
// by combiner.
func BuildValidationPipeline3[TInput, A, B, C, R any, E error](
	step1 func(TInput) Validation[A, E],
	step2 func(TInput) Validation[B, E],
	step3 func(TInput) Validation[C, E],
	combiner func(A, B, C) R,
) func(TInput) Validation[R, E] {
	return func(in TInput) Validation[R, E] {
		return ZipValidation3(step1(in), step2(in), step3(in), combiner)
	}
}

// BuildValidationPipeline4 builds a pipeline with four fan-out steps joined
// by combiner.
func BuildValidationPipeline4[TInput, A, B, C, D, R any, E error](
	step1 func(TInput) Validation[A, E],
	step2 func(TInput) Validation[B, E],
	step3 func(TInput) Validation[C, E],
	step4 func(TInput) Validation[D, E],
	combiner func(A, B, C, D) R,
) func(TInput) Validation[R, E] {
	return func(in TInput) Validation[R, E] {
		return ZipValidation4(step1(in), step2(in), step3(in), step4(in), combiner)
	}
}

// BuildValidationPipeline5 builds a pipeline with five fan-out steps joined
// by combiner.
func BuildValidationPipeline5[TInput, A, B, C, D, F, R any, E error](
	step1 func(TInput) Validation[A, E],
	step2 func(TInput) Validation[B, E],
	step3 func(TInput) Validation[C, E],
	step4 func(TInput) Validation[D, E],
	step5 func(TInput) Validation[F, E],
	combiner func(A, B, C, D, F) R,
) func(TInput) Validation[R, E] {
	return func(in TInput) Validation[R, E] {
		return ZipValidation5(step1(in), step2(in), step3(in), step4(in), step5(in), combiner)
	}
}

// BuildValidationPipeline6 builds a pipeline with six fan-out steps joined
// by combiner.
func BuildValidationPipeline6[TInput, A, B, C, D, F, G, R any, E error](
	step1 func(TInput) Validation[A, E],
	step2 func(TInput) Validation[B, E],
	step3 func(TInput) Validation[C, E],
	step4 func(TInput) Validation[D, E],
	step5 func(TInput) Validation[F, E],
	step6 func(TInput) Validation[G, E],
	combiner func(A, B, C, D, F, G) R,
) func(TInput) Validation[R, E] {
	return func(in TInput) Validation[R, E] {
		return ZipValidation6(step1(in), step2(in), step3(in), step4(in), step5(in), step6(in), combiner)
	}
}

// BuildValidationPipeline7 builds a pipeline with seven fan-out steps joined
// by combiner.
func BuildValidationPipeline7[TInput, A, B, C, D, F, G, H, R any, E error](
	step1 func(TInput) Validation[A, E],
	step2 func(TInput) Validation[B, E],
	step3 func(TInput) Validation[C, E],
	step4 func(TInput) Validation[D, E],
	step5 func(TInput) Validation[F, E],
	step6 func(TInput) Validation[G, E],
	step7 func(TInput) Validation[H, E],
	combiner func(A, B, C, D, F, G, H) R,
) func(TInput) Validation[R, E] {
	return func(in TInput) Validation[R, E] {
		return ZipValidation7(step1(in), step2(in), step3(in), step4(in), step5(in), step6(in), step7(in), combiner)
	}
}

// BuildValidationPipeline8 builds a pipeline with eight fan-out steps joined
// by combiner.
func BuildValidationPipeline8[TInput, A, B, C, D, F, G, H, I, R any, E error](
	step1 func(TInput) Validation[A, E],
	step2 func(TInput) Validation[B, E],
	step3 func(TInput) Validation[C, E],
	step4 func(TInput) Validation[D, E],
	step5 func(TInput) Validation[F, E],
	step6 func(TInput) Validation[G, E],
	step7 func(TInput) Validation[H, E],
	step8 func(TInput) Validation[I, E],
	combiner func(A, B, C, D, F, G, H, I) R,
) func(TInput) Validation[R, E] {
	return func(in TInput) Validation[R, E] {
		return ZipValidation8(step1(in), step2(in), step3(in), step4(in), step5(in), step6(in), step7(in), step8(in), combiner)
	}
}
