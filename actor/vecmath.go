package actor

import "github.com/go-gl/mathgl/mgl64"

// AxisAngle is a spin: a rotation axis and a signed angular speed.
// The axis is not required to be normalized.
type AxisAngle struct {
	Axis  mgl64.Vec3
	Angle float64 // degrees per second
}

// AtRest reports whether the spin is fully stopped
func (a AxisAngle) AtRest() bool {
	return a.Angle == 0
}

// Cross computes the cross product of 2 vectors, following the right-hand rule
func Cross(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Cross(b)
}

// Magnitude returns the euclidean norm of a
func Magnitude(a mgl64.Vec3) float64 {
	return a.Len()
}
