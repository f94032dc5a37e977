package rayops

import "structs"

type Vector2 struct {
	X float32
	Y float32
}

type Vector3 struct {
	X float32
	Y float32
	Z float32
}

type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Quaternion shares Vector4's representation. Addition and subtraction
// behave the same for both readings; negation, scaling, and division
// are deliberately not defined on Vector4 because they mean something
// else for quaternions (inversion is a distinct operation, not
// provided here).
type Quaternion = Vector4

// Color is an 8-bit-per-channel RGBA color. All arithmetic on it
// saturates each channel into [0, 255].
type Color struct {
	_ structs.HostLayout

	R uint8
	G uint8
	B uint8
	A uint8
}

// Matrix is an OpenGL-style right-handed 4x4 transform in column-major
// order: M0..M3 is the first column, M4..M7 the second, and so on.
type Matrix struct {
	_ structs.HostLayout

	M0, M1, M2, M3     float32
	M4, M5, M6, M7     float32
	M8, M9, M10, M11   float32
	M12, M13, M14, M15 float32
}

type Rectangle struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Image describes CPU-side image metadata. The library never owns or
// touches pixel data.
type Image struct {
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

// Texture describes a GPU texture by handle and metadata.
type Texture struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

type Camera2D struct {
	Offset   Vector2
	Target   Vector2
	Rotation float32 // degrees
	Zoom     float32
}

type CameraProjection int32

const (
	CameraPerspective CameraProjection = iota
	CameraOrthographic
)

// Camera3D is a 3D camera. Fovy is the field-of-view aperture in
// degrees under perspective projection and the near plane width under
// orthographic projection.
type Camera3D struct {
	Position   Vector3
	Target     Vector3
	Up         Vector3
	Fovy       float32
	Projection CameraProjection
}

type Ray struct {
	Position  Vector3
	Direction Vector3
}

type RayHitInfo struct {
	Hit      bool
	Distance float32
	Position Vector3
	Normal   Vector3
}

type BoundingBox struct {
	Min Vector3
	Max Vector3
}

type NPatchInfo struct {
	Source Rectangle
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
	Layout int32
}

type CharInfo struct {
	Value    rune
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
}

type Font struct {
	BaseSize    int32
	CharCount   int32
	CharPadding int32
	Texture     Texture
	Chars       []CharInfo
}
