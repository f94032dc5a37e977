package rayops

import (
	"golang.org/x/exp/constraints"
	"honnef.co/go/color"
)

// Channel arithmetic widens to int or float32 before combining, then
// saturates back into [0, 255]. Results never wrap.
//
// The C++ original had a copy-paste bug here: in addition and
// subtraction it stored alpha's clamped value into the red slot and
// left alpha itself unwritten. That is corrected in this port.

func (a Color) Add(b Color) Color {
	return Color{
		R: uint8(clamp(int(a.R)+int(b.R), 0, 255)),
		G: uint8(clamp(int(a.G)+int(b.G), 0, 255)),
		B: uint8(clamp(int(a.B)+int(b.B), 0, 255)),
		A: uint8(clamp(int(a.A)+int(b.A), 0, 255)),
	}
}

func (a Color) Sub(b Color) Color {
	return Color{
		R: uint8(clamp(int(a.R)-int(b.R), 0, 255)),
		G: uint8(clamp(int(a.G)-int(b.G), 0, 255)),
		B: uint8(clamp(int(a.B)-int(b.B), 0, 255)),
		A: uint8(clamp(int(a.A)-int(b.A), 0, 255)),
	}
}

// Mul multiplies channels pairwise. The products saturate, so this is
// mostly useful with colors acting as masks.
func (a Color) Mul(b Color) Color {
	return Color{
		R: uint8(clamp(int(a.R)*int(b.R), 0, 255)),
		G: uint8(clamp(int(a.G)*int(b.G), 0, 255)),
		B: uint8(clamp(int(a.B)*int(b.B), 0, 255)),
		A: uint8(clamp(int(a.A)*int(b.A), 0, 255)),
	}
}

// Scale multiplies every channel by s, saturating. Negative s clamps
// all channels to zero.
func (a Color) Scale(s float32) Color {
	return Color{
		R: uint8(clamp(float32(a.R)*s, 0, 255)),
		G: uint8(clamp(float32(a.G)*s, 0, 255)),
		B: uint8(clamp(float32(a.B)*s, 0, 255)),
		A: uint8(clamp(float32(a.A)*s, 0, 255)),
	}
}

// ColorFromLinear converts a color managed by honnef.co/go/color to
// 8-bit linear RGBA, saturating channels that fall outside [0, 1].
// Alpha is the fourth channel value.
func ColorFromLinear(c *color.Color) Color {
	cc := c.Convert(color.LinearSRGB)
	return Color{
		R: uint8(clamp(float32(cc.Values[0])*255, 0, 255)),
		G: uint8(clamp(float32(cc.Values[1])*255, 0, 255)),
		B: uint8(clamp(float32(cc.Values[2])*255, 0, 255)),
		A: uint8(clamp(float32(cc.Values[3])*255, 0, 255)),
	}
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
