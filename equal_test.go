package rayops

import (
	"math"
	"testing"
)

func TestTolerantAcceptsRoundingError(t *testing.T) {
	s := float32(math.Sqrt(2))
	v1 := Vector3{1.0, 1.5, 2.0}
	v2 := v1.Scale(s)
	v2, err := v2.Div(s)
	if err != nil {
		t.Fatal(err)
	}
	if !EqualityTolerant.Vector3s(v1, v2) {
		t.Errorf("scale/unscale by √2: %v and %v compare unequal", v1, v2)
	}
}

func TestTolerantRejectsDifferentMagnitudes(t *testing.T) {
	pairs := []struct {
		a, b Vector3
	}{
		{Vector3{1, 1.5, 2}, Vector3{1, 1.5, 2.1}},
		{Vector3{1, 1.5, 2}, Vector3{-1, 1.5, 2}},
		{Vector3{0, 0, 0}, Vector3{0, 0, 1e-20}},
	}
	for _, pair := range pairs {
		if EqualityTolerant.Vector3s(pair.a, pair.b) {
			t.Errorf("%v and %v compare equal", pair.a, pair.b)
		}
	}
}

func TestTolerantAllComponentsMustMatch(t *testing.T) {
	a := Vector4{1, 2, 3, 4}
	b := Vector4{1, 2, 3, 5}
	if EqualityTolerant.Vector4s(a, b) {
		t.Errorf("%v and %v compare equal", a, b)
	}
	if !EqualityTolerant.Vector4s(a, a) {
		t.Errorf("%v does not compare equal to itself", a)
	}
}

func TestExact(t *testing.T) {
	a := Vector2{1.5, -2.25}
	if !EqualityExact.Vector2s(a, a) {
		t.Errorf("%v != %v under exact equality", a, a)
	}
	b := Vector2{1.5, -2.25000025}
	if EqualityExact.Vector2s(a, b) {
		t.Errorf("%v == %v under exact equality", a, b)
	}
}

func TestOptionsSelectEquality(t *testing.T) {
	opts := Options{Equality: EqualityExact}
	a := Vector2{1.5, 2}
	if !opts.Equality.Vector2s(a, a) {
		t.Error("exact equality rejected identical vectors")
	}
	if opts.Equality.Vector2s(a, Vector2{1.5, 2.5}) {
		t.Error("exact equality accepted different vectors")
	}
}

func TestDisabledPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("comparison with EqualityDisabled did not panic")
		}
	}()
	EqualityDisabled.Vector2s(Vector2{}, Vector2{})
}
