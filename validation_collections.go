package functional

// SequenceValidation turns a slice of Validations into a Validation of a
// slice: Valid of every value iff every element is Valid, otherwise Invalid
// with every input's errors concatenated in input order.
func SequenceValidation[T any, E error](items []Validation[T, E]) Validation[[]T, E] {
	var errs []E
	out := make([]T, 0, len(items))
	for _, v := range items {
		if v.valid {
			out = append(out, v.value)
		} else {
			errs = append(errs, v.errs...)
		}
	}
	if errs != nil {
		return invalidFrom[[]T](errs)
	}
	return Valid[[]T, E](out)
}

// TraverseValidation maps f over items and sequences the results, running
// every step and concatenating errors from every Invalid step in
// declaration order.
func TraverseValidation[T, U any, E error](items []T, f func(T) Validation[U, E]) Validation[[]U, E] {
	var errs []E
	out := make([]U, 0, len(items))
	for _, item := range items {
		v := f(item)
		if v.valid {
			out = append(out, v.value)
		} else {
			errs = append(errs, v.errs...)
		}
	}
	if errs != nil {
		return invalidFrom[[]U](errs)
	}
	return Valid[[]U, E](out)
}

// ZipValidation2 combines two Validations with proj. Every input runs;
// errors from every Invalid input are concatenated in argument order;
// proj runs iff every input is Valid.
func ZipValidation2[A, B, R any, E error](a Validation[A, E], b Validation[B, E], proj func(A, B) R) Validation[R, E] {
	errs := collectInvalid2(a, b)
	if errs != nil {
		return invalidFrom[R](errs)
	}
	return Valid[R, E](proj(a.value, b.value))
}

func collectInvalid2[A, B any, E error](a Validation[A, E], b Validation[B, E]) []E {
	var errs []E
	if !a.valid {
		errs = append(errs, a.errs...)
	}
	if !b.valid {
		errs = append(errs, b.errs...)
	}
	return errs
}

// ZipValidation3 combines three Validations with proj, accumulating errors
// from every Invalid input in argument order.
func ZipValidation3[A, B, C, R any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], proj func(A, B, C) R) Validation[R, E] {
	var errs []E
	if !a.valid {
		errs = append(errs, a.errs...)
	}
	if !b.valid {
		errs = append(errs, b.errs...)
	}
	if !c.valid {
		errs = append(errs, c.errs...)
	}
	if errs != nil {
		return invalidFrom[R](errs)
	}
	return Valid[R, E](proj(a.value, b.value, c.value))
}

// ZipValidation4 combines four Validations with proj, accumulating errors
// from every Invalid input in argument order.
func ZipValidation4[A, B, C, D, R any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], proj func(A, B, C, D) R) Validation[R, E] {
	var errs []E
	if !a.valid {
		errs = append(errs, a.errs...)
	}
	if !b.valid {
		errs = append(errs, b.errs...)
	}
	if !c.valid {
		errs = append(errs, c.errs...)
	}
	if !d.valid {
		errs = append(errs, d.errs...)
	}
	if errs != nil {
		return invalidFrom[R](errs)
	}
	return Valid[R, E](proj(a.value, b.value, c.value, d.value))
}

// ZipValidation5 combines five Validations with proj, accumulating errors
// from every Invalid input in argument order.
func ZipValidation5[A, B, C, D, F, R any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E], proj func(A, B, C, D, F) R) Validation[R, E] {
	var errs []E
	if !a.valid {
		errs = append(errs, a.errs...)
	}
	if !b.valid {
		errs = append(errs, b.errs...)
	}
	if !c.valid {
		errs = append(errs, c.errs...)
	}
	if !d.valid {
		errs = append(errs, d.errs...)
	}
	if !f.valid {
		errs = append(errs, f.errs...)
	}
	if errs != nil {
		return invalidFrom[R](errs)
	}
	return Valid[R, E](proj(a.value, b.value, c.value, d.value, f.value))
}

// ZipValidation6 combines six Validations with proj, accumulating errors
// from every Invalid input in argument order.
func ZipValidation6[A, B, C, D, F, G, R any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E], g Validation[G, E], proj func(A, B, C, D, F, G) R) Validation[R, E] {
	var errs []E
	if !a.valid {
		errs = append(errs, a.errs...)
	}
	if !b.valid {
		errs = append(errs, b.errs...)
	}
	if !c.valid {
		errs = append(errs, c.errs...)
	}
	if !d.valid {
		errs = append(errs, d.errs...)
	}
	if !f.valid {
		errs = append(errs, f.errs...)
	}
	if !g.valid {
		errs = append(errs, g.errs...)
	}
	if errs != nil {
		return invalidFrom[R](errs)
	}
	return Valid[R, E](proj(a.value, b.value, c.value, d.value, f.value, g.value))
}

// ZipValidation7 combines seven Validations with proj, accumulating errors
// from every Invalid input in argument order.
func ZipValidation7[A, B, C, D, F, G, H, R any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E], g Validation[G, E], h Validation[H, E], proj func(A, B, C, D, F, G, H) R) Validation[R, E] {
	var errs []E
	if !a.valid {
		errs = append(errs, a.errs...)
	}
	if !b.valid {
		errs = append(errs, b.errs...)
	}
	if !c.valid {
		errs = append(errs, c.errs...)
	}
	if !d.valid {
		errs = append(errs, d.errs...)
	}
	if !f.valid {
		errs = append(errs, f.errs...)
	}
	if !g.valid {
		errs = append(errs, g.errs...)
	}
	if !h.valid {
		errs = append(errs, h.errs...)
	}
	if errs != nil {
		return invalidFrom[R](errs)
	}
	return Valid[R, E](proj(a.value, b.value, c.value, d.value, f.value, g.value, h.value))
}

// ZipValidation8 combines eight Validations with proj, accumulating errors
// from every Invalid input in argument order.
func ZipValidation8[A, B, C, D, F, G, H, I, R any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E], g Validation[G, E], h Validation[H, E], i Validation[I, E], proj func(A, B, C, D, F, G, H, I) R) Validation[R, E] {
	var errs []E
	if !a.valid {
		errs = append(errs, a.errs...)
	}
	if !b.valid {
		errs = append(errs, b.errs...)
	}
	if !c.valid {
		errs = append(errs, c.errs...)
	}
	if !d.valid {
		errs = append(errs, d.errs...)
	}
	if !f.valid {
		errs = append(errs, f.errs...)
	}
	if !g.valid {
		errs = append(errs, g.errs...)
	}
	if !h.valid {
		errs = append(errs, h.errs...)
	}
	if !i.valid {
		errs = append(errs, i.errs...)
	}
	if errs != nil {
		return invalidFrom[R](errs)
	}
	return Valid[R, E](proj(a.value, b.value, c.value, d.value, f.value, g.value, h.value, i.value))
}

// JoinValidation2 zips two Validations into a tuple.
func JoinValidation2[A, B any, E error](a Validation[A, E], b Validation[B, E]) Validation[Tuple2[A, B], E] {
	return ZipValidation2(a, b, func(a A, b B) Tuple2[A, B] { return Tuple2[A, B]{a, b} })
}

// JoinValidation3 zips three Validations into a tuple.
func JoinValidation3[A, B, C any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E]) Validation[Tuple3[A, B, C], E] {
	return ZipValidation3(a, b, c, func(a A, b B, c C) Tuple3[A, B, C] { return Tuple3[A, B, C]{a, b, c} })
}

// JoinValidation4 zips four Validations into a tuple.
func JoinValidation4[A, B, C, D any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E]) Validation[Tuple4[A, B, C, D], E] {
	return ZipValidation4(a, b, c, d, func(a A, b B, c C, d D) Tuple4[A, B, C, D] { return Tuple4[A, B, C, D]{a, b, c, d} })
}

// JoinValidation5 zips five Validations into a tuple.
func JoinValidation5[A, B, C, D, F any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E]) Validation[Tuple5[A, B, C, D, F], E] {
	return ZipValidation5(a, b, c, d, f, func(a A, b B, c C, d D, f F) Tuple5[A, B, C, D, F] {
		return Tuple5[A, B, C, D, F]{a, b, c, d, f}
	})
}

// JoinValidation6 zips six Validations into a tuple.
func JoinValidation6[A, B, C, D, F, G any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E], g Validation[G, E]) Validation[Tuple6[A, B, C, D, F, G], E] {
	return ZipValidation6(a, b, c, d, f, g, func(a A, b B, c C, d D, f F, g G) Tuple6[A, B, C, D, F, G] {
		return Tuple6[A, B, C, D, F, G]{a, b, c, d, f, g}
	})
}

// JoinValidation7 zips seven Validations into a tuple.
func JoinValidation7[A, B, C, D, F, G, H any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E], g Validation[G, E], h Validation[H, E]) Validation[Tuple7[A, B, C, D, F, G, H], E] {
	return ZipValidation7(a, b, c, d, f, g, h, func(a A, b B, c C, d D, f F, g G, h H) Tuple7[A, B, C, D, F, G, H] {
		return Tuple7[A, B, C, D, F, G, H]{a, b, c, d, f, g, h}
	})
}

// JoinValidation8 zips eight Validations into a tuple.
func JoinValidation8[A, B, C, D, F, G, H, I any, E error](a Validation[A, E], b Validation[B, E], c Validation[C, E], d Validation[D, E], f Validation[F, E], g Validation[G, E], h Validation[H, E], i Validation[I, E]) Validation[Tuple8[A, B, C, D, F, G, H, I], E] {
	return ZipValidation8(a, b, c, d, f, g, h, i, func(a A, b B, c C, d D, f F, g G, h H, i I) Tuple8[A, B, C, D, F, G, H, I] {
		return Tuple8[A, B, C, D, F, G, H, I]{a, b, c, d, f, g, h, i}
	})
}
