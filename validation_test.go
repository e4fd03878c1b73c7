package functional

import (
	"errors"
	"reflect"
	"testing"
)

var errBoom2 = errors.New("boom2")

func TestValidAndInvalid(t *testing.T) {
	v := Valid[int, error](1)
	inv := Invalid[int](errBoom)

	if !v.IsValid() || v.IsInvalid() {
		t.Fatal("Valid: IsValid/IsInvalid wrong")
	}
	if inv.IsValid() || !inv.IsInvalid() {
		t.Fatal("Invalid: IsValid/IsInvalid wrong")
	}
	if !reflect.DeepEqual(inv.Errors(), []error{errBoom}) {
		t.Fatalf("Errors() = %v", inv.Errors())
	}
}

func TestInvalidWithNoErrorsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Invalid() with no errors did not panic")
		}
	}()
	Invalid[int, error]()
}

func TestValidErrorsIsNil(t *testing.T) {
	if errs := Valid[int, error](1).Errors(); errs != nil {
		t.Fatalf("Valid.Errors() = %v, want nil", errs)
	}
}

func TestMapValidation(t *testing.T) {
	got := MapValidation(Valid[int, error](2), func(v int) int { return v * 10 })
	if got.value != 20 || !got.valid {
		t.Fatalf("MapValidation(Valid) = %+v", got)
	}

	got = MapValidation(Invalid[int](errBoom), func(v int) int { return v * 10 })
	if got.IsValid() {
		t.Fatal("MapValidation(Invalid) should stay Invalid")
	}
}

func TestBindValidationShortCircuits(t *testing.T) {
	called := false
	f := func(v int) Validation[int, error] {
		called = true
		return Valid[int, error](v + 1)
	}

	got := BindValidation(Invalid[int](errBoom), f)
	if got.IsValid() || called {
		t.Fatalf("BindValidation(Invalid) called=%v, got=%+v", called, got)
	}
}

func TestApplyValidationAccumulatesBothInvalid(t *testing.T) {
	errA := errBoom
	errB := errBoom2

	vf := Invalid[func(int) int](errA)
	vx := Invalid[int](errB)

	got := ApplyValidation[int, int](vf, vx)
	if !got.IsInvalid() {
		t.Fatal("ApplyValidation(Invalid, Invalid) should be Invalid")
	}
	if !reflect.DeepEqual(got.Errors(), []error{errA, errB}) {
		t.Fatalf("Errors() = %v, want [errA, errB] in order", got.Errors())
	}
}

func TestApplyValidationBothValid(t *testing.T) {
	vf := Valid[func(int) int, error](func(v int) int { return v * 2 })
	vx := Valid[int, error](21)

	got := ApplyValidation(vf, vx)
	if !got.IsValid() || got.value != 42 {
		t.Fatalf("ApplyValidation(Valid, Valid) = %+v", got)
	}
}

func TestValidationToResult(t *testing.T) {
	if r := Valid[int, error](1).ToResult(); r.GetOrDefault(-1) != 1 {
		t.Fatalf("Valid.ToResult() = %v, want 1", r)
	}

	r := Invalid[int](errBoom, errBoom2).ToResult()
	if r.IsSuccess() || r.Error() != errBoom {
		t.Fatalf("Invalid.ToResult() = %+v, want Failure(errBoom) (first error only)", r)
	}
}
