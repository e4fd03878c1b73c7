package functional

// Tuple2..Tuple8 are plain product types used as the output of the join
// family of combinators on Option, Result and Validation. They carry no
// behavior of their own — callers destructure the fields directly.
type (
	Tuple2[A, B any] struct {
		F1 A
		F2 B
	}
	Tuple3[A, B, C any] struct {
		F1 A
		F2 B
		F3 C
	}
	Tuple4[A, B, C, D any] struct {
		F1 A
		F2 B
		F3 C
		F4 D
	}
	Tuple5[A, B, C, D, E any] struct {
		F1 A
		F2 B
		F3 C
		F4 D
		F5 E
	}
	Tuple6[A, B, C, D, E, F any] struct {
		F1 A
		F2 B
		F3 C
		F4 D
		F5 E
		F6 F
	}
	Tuple7[A, B, C, D, E, F, G any] struct {
		F1 A
		F2 B
		F3 C
		F4 D
		F5 E
		F6 F
		F7 G
	}
	Tuple8[A, B, C, D, E, F, G, H any] struct {
		F1 A
		F2 B
		F3 C
		F4 D
		F5 E
		F6 F
		F7 G
		F8 H
	}
)
