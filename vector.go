package rayops

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
)

// ErrDivideByZero reports division of a vector by a zero scalar.
var ErrDivideByZero = errors.New("division by zero")

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{a.X + b.X, a.Y + b.Y}
}

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vector4) Add(b Vector4) Vector4 {
	return Vector4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{a.X - b.X, a.Y - b.Y}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vector4) Sub(b Vector4) Vector4 {
	return Vector4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns the componentwise negation of a. Unlike the C++
// unary minus this was ported from, it does not modify its operand.
func (a Vector2) Negate() Vector2 {
	return Vector2{-a.X, -a.Y}
}

// Negate returns the componentwise negation of a. Vector4 has no
// negation; for quaternions it would be too easy to confuse with
// inversion.
func (a Vector3) Negate() Vector3 {
	return Vector3{-a.X, -a.Y, -a.Z}
}

// Scale returns a scaled componentwise by s. There is no
// vector-by-vector multiplication: whether that should mean a dot or
// a cross product is left to the caller to spell out.
func (a Vector2) Scale(s float32) Vector2 {
	return Vector2{a.X * s, a.Y * s}
}

func (a Vector3) Scale(s float32) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

// Div scales a by the reciprocal of s. A zero s is a domain error; Div
// reports it instead of handing back infinities.
func (a Vector2) Div(s float32) (Vector2, error) {
	if s == 0 {
		return Vector2{}, fmt.Errorf("dividing Vector2 by zero scalar: %w", ErrDivideByZero)
	}
	return a.Scale(1 / s), nil
}

func (a Vector3) Div(s float32) (Vector3, error) {
	if s == 0 {
		return Vector3{}, fmt.Errorf("dividing Vector3 by zero scalar: %w", ErrDivideByZero)
	}
	return a.Scale(1 / s), nil
}

func (a Vector2) Vec2() f32.Vec2 {
	return f32.Vec2{a.X, a.Y}
}

func (a Vector3) Vec3() f32.Vec3 {
	return f32.Vec3{a.X, a.Y, a.Z}
}

func (a Vector4) Vec4() f32.Vec4 {
	return f32.Vec4{a.X, a.Y, a.Z, a.W}
}

func Vector2FromVec2(v f32.Vec2) Vector2 {
	return Vector2{v[0], v[1]}
}

func Vector3FromVec3(v f32.Vec3) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func Vector4FromVec4(v f32.Vec4) Vector4 {
	return Vector4{v[0], v[1], v[2], v[3]}
}
