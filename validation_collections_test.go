package functional

import (
	"reflect"
	"testing"
)

func TestSequenceValidationAccumulatesAllErrors(t *testing.T) {
	got := SequenceValidation([]Validation[int, error]{
		Valid[int, error](1),
		Invalid[int](errBoom),
		Invalid[int](errBoom2),
	})

	if !got.IsInvalid() {
		t.Fatal("SequenceValidation with invalid entries should be Invalid")
	}
	if !reflect.DeepEqual(got.Errors(), []error{errBoom, errBoom2}) {
		t.Fatalf("Errors() = %v, want [errBoom errBoom2] in order", got.Errors())
	}
}

func TestSequenceValidationAllValid(t *testing.T) {
	got := SequenceValidation([]Validation[int, error]{Valid[int, error](1), Valid[int, error](2)})
	if !got.IsValid() || !reflect.DeepEqual(got.value, []int{1, 2}) {
		t.Fatalf("SequenceValidation(all Valid) = %+v", got)
	}
}

func TestZipValidation2AccumulatesInArgumentOrder(t *testing.T) {
	got := ZipValidation2(Invalid[int](errBoom), Invalid[string](errBoom2), func(a int, b string) int { return a })
	if !reflect.DeepEqual(got.Errors(), []error{errBoom, errBoom2}) {
		t.Fatalf("Errors() = %v, want [errBoom errBoom2]", got.Errors())
	}
}

func TestZipValidation2BothValid(t *testing.T) {
	got := ZipValidation2(Valid[int, error](2), Valid[int, error](3), func(a, b int) int { return a + b })
	if !got.IsValid() || got.value != 5 {
		t.Fatalf("ZipValidation2(Valid, Valid) = %+v", got)
	}
}

func TestJoinValidation3(t *testing.T) {
	got := JoinValidation3[int, string, bool, error](Valid[int, error](1), Valid[string, error]("a"), Valid[bool, error](true))
	if !got.IsValid() {
		t.Fatal("JoinValidation3(all Valid) should be Valid")
	}
	tup := got.value
	if tup.F1 != 1 || tup.F2 != "a" || !tup.F3 {
		t.Fatalf("tuple = %+v", tup)
	}
}

func TestTraverseValidationAccumulates(t *testing.T) {
	mustPositive := func(v int) Validation[int, error] {
		if v < 0 {
			return Invalid[int](errBoom)
		}
		return Valid[int, error](v)
	}

	got := TraverseValidation([]int{1, -1, 2, -2}, mustPositive)
	if !got.IsInvalid() || len(got.Errors()) != 2 {
		t.Fatalf("TraverseValidation = %+v, want 2 accumulated errors", got)
	}
}
