package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Orientation represents an accumulated rotation in 3D space.
// Values are immutable, Rotate returns the composed orientation.
type Orientation interface {
	// Rotate composes a rotation of degrees around axis on the right of the current orientation.
	// The axis does not need to be normalized.
	Rotate(axis mgl64.Vec3, degrees float64) Orientation
	// Mat4 returns the homogeneous rotation matrix, column-major
	Mat4() mgl64.Mat4
	// String returns the CSS transform form, matrix3d(m0, ..., m15)
	String() string
}

// NewOrientation creates an identity orientation backed by a quaternion
func NewOrientation() Orientation {
	return QuatOrientation{Rotation: mgl64.QuatIdent()}
}

// QuatOrientation stores the rotation as a unit quaternion
type QuatOrientation struct {
	Rotation mgl64.Quat
}

func (o QuatOrientation) rotation() mgl64.Quat {
	if o.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}

	return o.Rotation
}

func (o QuatOrientation) Rotate(axis mgl64.Vec3, degrees float64) Orientation {
	unit, ok := unitAxis(axis, degrees)
	if !ok {
		return o
	}

	r := mgl64.QuatRotate(mgl64.DegToRad(degrees), unit)
	// renormalize to keep drift from accumulating over many ticks
	return QuatOrientation{Rotation: o.rotation().Mul(r).Normalize()}
}

func (o QuatOrientation) Mat4() mgl64.Mat4 {
	return o.rotation().Mat4()
}

func (o QuatOrientation) String() string {
	return FormatTransform(o.Mat4())
}

// MatrixOrientation stores the rotation as a homogeneous 4x4 matrix, the way CSS matrices do
type MatrixOrientation struct {
	Matrix mgl64.Mat4
}

// NewMatrixOrientation creates an identity orientation backed by a 4x4 matrix
func NewMatrixOrientation() MatrixOrientation {
	return MatrixOrientation{Matrix: mgl64.Ident4()}
}

func (o MatrixOrientation) matrix() mgl64.Mat4 {
	if o.Matrix == (mgl64.Mat4{}) {
		return mgl64.Ident4()
	}

	return o.Matrix
}

func (o MatrixOrientation) Rotate(axis mgl64.Vec3, degrees float64) Orientation {
	unit, ok := unitAxis(axis, degrees)
	if !ok {
		return o
	}

	r := mgl64.HomogRotate3D(mgl64.DegToRad(degrees), unit)
	return MatrixOrientation{Matrix: o.matrix().Mul4(r)}
}

func (o MatrixOrientation) Mat4() mgl64.Mat4 {
	return o.matrix()
}

func (o MatrixOrientation) String() string {
	return FormatTransform(o.matrix())
}

// unitAxis normalizes the axis. It reports false when the rotation would be a no-op
// or is undefined (zero or non-finite axis, zero or non-finite angle).
func unitAxis(axis mgl64.Vec3, degrees float64) (mgl64.Vec3, bool) {
	if degrees == 0 || math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return mgl64.Vec3{}, false
	}

	length := Magnitude(axis)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return mgl64.Vec3{}, false
	}

	return axis.Mul(1.0 / length), true
}
