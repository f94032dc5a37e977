package rayops

import "honnef.co/go/rayops/rmath"

// Equality selects how vector comparison treats floating-point
// rounding error.
type Equality int

const (
	// EqualityTolerant treats two components as equal when their
	// difference is within machine epsilon, scaled by the smaller of
	// their magnitudes (Knuth's "essentially equal"). A vector scaled
	// by √2 and divided by √2 again compares equal to the original,
	// which native == would reject.
	EqualityTolerant Equality = iota
	// EqualityExact compares components with native floating-point ==.
	EqualityExact
	// EqualityDisabled makes any comparison panic. Use it to flush out
	// code paths that compare vectors in an application that has ruled
	// float comparison out entirely.
	EqualityDisabled
)

func (e Equality) scalars(a, b float32) bool {
	switch e {
	case EqualityTolerant:
		return rmath.Abs32(a-b) <= rmath.Min32(rmath.Abs32(a), rmath.Abs32(b))*rmath.Epsilon
	case EqualityExact:
		return a == b
	case EqualityDisabled:
		panic("rayops: vector equality comparison is disabled")
	default:
		panic("rayops: invalid equality mode")
	}
}

// Vector2s reports whether a and b compare equal under mode e. All
// components must match.
func (e Equality) Vector2s(a, b Vector2) bool {
	return e.scalars(a.X, b.X) && e.scalars(a.Y, b.Y)
}

func (e Equality) Vector3s(a, b Vector3) bool {
	return e.scalars(a.X, b.X) && e.scalars(a.Y, b.Y) && e.scalars(a.Z, b.Z)
}

func (e Equality) Vector4s(a, b Vector4) bool {
	return e.scalars(a.X, b.X) && e.scalars(a.Y, b.Y) && e.scalars(a.Z, b.Z) && e.scalars(a.W, b.W)
}
