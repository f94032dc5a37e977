package rmath

import "math"

// Epsilon is the machine epsilon for float32, the difference between 1
// and the next representable value.
const Epsilon = 0x1p-23

const Deg2Rad = math.Pi / 180

func Abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

func Min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

func Sincos32(f float32) (sin, cos float32) {
	s, c := math.Sincos(float64(f))
	return float32(s), float32(c)
}
