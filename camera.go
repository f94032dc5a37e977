package rayops

import "honnef.co/go/rayops/rmath"

// Matrix returns the world-to-screen transform for the camera:
// translate the target to the origin, apply zoom and rotation, then
// translate by the screen-space offset.
func (c Camera2D) Matrix() Matrix {
	origin := MatrixTranslate(-c.Target.X, -c.Target.Y, 0)
	rotation := MatrixRotateZ(c.Rotation * rmath.Deg2Rad)
	scale := MatrixScale(c.Zoom, c.Zoom, 1)
	translation := MatrixTranslate(c.Offset.X, c.Offset.Y, 0)
	return translation.Mul(rotation).Mul(scale).Mul(origin)
}

// Matrix returns the camera's view matrix, looking from Position
// towards Target with the given up vector.
func (c Camera3D) Matrix() Matrix {
	return MatrixLookAt(c.Position, c.Target, c.Up)
}
