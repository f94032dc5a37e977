package rayops

import (
	"golang.org/x/image/math/f32"
	"honnef.co/go/curve"
	"honnef.co/go/rayops/rmath"
	"honnef.co/go/safeish"
)

func MatrixIdentity() Matrix {
	return Matrix{
		M0:  1,
		M5:  1,
		M10: 1,
		M15: 1,
	}
}

func MatrixTranslate(x, y, z float32) Matrix {
	m := MatrixIdentity()
	m.M12 = x
	m.M13 = y
	m.M14 = z
	return m
}

func MatrixScale(x, y, z float32) Matrix {
	return Matrix{
		M0:  x,
		M5:  y,
		M10: z,
		M15: 1,
	}
}

// MatrixRotateZ returns a counterclockwise rotation around the Z axis
// by rad radians.
func MatrixRotateZ(rad float32) Matrix {
	sin, cos := rmath.Sincos32(rad)
	m := MatrixIdentity()
	m.M0 = cos
	m.M1 = sin
	m.M4 = -sin
	m.M5 = cos
	return m
}

// MatrixLookAt returns the right-handed view matrix for a camera at
// eye looking at target.
func MatrixLookAt(eye, target, up Vector3) Matrix {
	z := normalize3(eye.Sub(target))
	x := normalize3(cross3(up, z))
	y := cross3(z, x)
	return Matrix{
		M0: x.X, M1: y.X, M2: z.X,
		M4: x.Y, M5: y.Y, M6: z.Y,
		M8: x.Z, M9: y.Z, M10: z.Z,
		M12: -dot3(x, eye),
		M13: -dot3(y, eye),
		M14: -dot3(z, eye),
		M15: 1,
	}
}

// MatrixFromAffine embeds a 2D affine transform into the XY plane of a
// 4x4 transform.
func MatrixFromAffine(a curve.Affine) Matrix {
	c := a.Coefficients()
	m := MatrixIdentity()
	m.M0 = float32(c[0])
	m.M1 = float32(c[1])
	m.M4 = float32(c[2])
	m.M5 = float32(c[3])
	m.M12 = float32(c[4])
	m.M13 = float32(c[5])
	return m
}

// Add returns the elementwise sum of m and other.
func (m Matrix) Add(other Matrix) Matrix {
	a, b := m.Array(), other.Array()
	var out Matrix
	o := out.Array()
	for i := range o {
		o[i] = a[i] + b[i]
	}
	return out
}

// Sub returns the elementwise difference of m and other.
func (m Matrix) Sub(other Matrix) Matrix {
	a, b := m.Array(), other.Array()
	var out Matrix
	o := out.Array()
	for i := range o {
		o[i] = a[i] - b[i]
	}
	return out
}

// Mul returns the matrix product m×other under the column-vector
// convention, so m.Mul(other) applies other first. Note the asymmetry
// with Add and Sub: multiplication is the full product, not
// elementwise.
func (m Matrix) Mul(other Matrix) Matrix {
	a, b := m.Array(), other.Array()
	var out Matrix
	o := out.Array()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[4*k+r] * b[4*c+k]
			}
			o[4*c+r] = sum
		}
	}
	return out
}

// Array returns the matrix storage as a column-major array, aliasing m.
func (m *Matrix) Array() *[16]float32 {
	return safeish.Cast[*[16]float32](m)
}

// Mat4 returns a row-major copy of m, transposing out of the
// column-major storage.
func (m Matrix) Mat4() f32.Mat4 {
	a := m.Array()
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = a[4*c+r]
		}
	}
	return out
}

func dot3(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross3(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func normalize3(a Vector3) Vector3 {
	n := rmath.Sqrt32(dot3(a, a))
	if n == 0 {
		return a
	}
	return a.Scale(1 / n)
}
