package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// NewOrientation Tests
// =============================================================================

func TestNewOrientation_Identity(t *testing.T) {
	tests := []struct {
		name        string
		orientation Orientation
	}{
		{"quaternion", NewOrientation()},
		{"matrix", NewMatrixOrientation()},
		{"zero value quaternion", QuatOrientation{}},
		{"zero value matrix", MatrixOrientation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !mat4AlmostEqual(tt.orientation.Mat4(), mgl64.Ident4(), 1e-12) {
				t.Errorf("Mat4() = %v, want identity", tt.orientation.Mat4())
			}
		})
	}
}

// =============================================================================
// Rotate Tests
// =============================================================================

func TestRotate_QuarterTurn(t *testing.T) {
	for _, o := range []Orientation{NewOrientation(), NewMatrixOrientation()} {
		rotated := o.Rotate(mgl64.Vec3{0, 0, 1}, 90)
		got := rotated.Mat4().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()

		if !vec3AlmostEqual(got, mgl64.Vec3{0, 1, 0}, 1e-12) {
			t.Errorf("%T: rotating x by 90° about z = %v, want {0 1 0}", o, got)
		}
	}
}

func TestRotate_AxisIsNormalized(t *testing.T) {
	unit := NewOrientation().Rotate(mgl64.Vec3{0, 1, 0}, 30)
	scaled := NewOrientation().Rotate(mgl64.Vec3{0, 100, 0}, 30)

	if !mat4AlmostEqual(unit.Mat4(), scaled.Mat4(), 1e-12) {
		t.Errorf("axis length changed the rotation: %v vs %v", unit.Mat4(), scaled.Mat4())
	}
}

func TestRotate_ComposesOnTheRight(t *testing.T) {
	x := mgl64.Vec3{1, 0, 0}
	y := mgl64.Vec3{0, 1, 0}

	got := NewOrientation().Rotate(x, 40).Rotate(y, 25).Mat4()
	want := mgl64.HomogRotate3D(mgl64.DegToRad(40), x).Mul4(mgl64.HomogRotate3D(mgl64.DegToRad(25), y))

	if !mat4AlmostEqual(got, want, 1e-12) {
		t.Errorf("Rotate = %v, want current * R = %v", got, want)
	}
}

func TestRotate_ImplementationsAgree(t *testing.T) {
	steps := []struct {
		axis    mgl64.Vec3
		degrees float64
	}{
		{mgl64.Vec3{0.5, 1, 0}, 45},
		{mgl64.Vec3{0, 100, 0}, 468.75 * 0.016},
		{mgl64.Vec3{-3, 0, 1}, -12},
		{mgl64.Vec3{1, 1, 1}, 270},
	}

	var q Orientation = NewOrientation()
	var m Orientation = NewMatrixOrientation()
	for _, step := range steps {
		q = q.Rotate(step.axis, step.degrees)
		m = m.Rotate(step.axis, step.degrees)
	}

	if !mat4AlmostEqual(q.Mat4(), m.Mat4(), 1e-9) {
		t.Errorf("quaternion %v and matrix %v diverged", q.Mat4(), m.Mat4())
	}
}

func TestRotate_SequentialIntervalsMatchSingleInterval(t *testing.T) {
	axis := mgl64.Vec3{0.5, 1, 0}
	speed := 468.75 // deg/s
	dt1, dt2 := 0.016, 0.023

	for _, o := range []Orientation{NewOrientation(), NewMatrixOrientation()} {
		split := o.Rotate(axis, speed*dt1).Rotate(axis, speed*dt2)
		once := o.Rotate(axis, speed*(dt1+dt2))

		if !mat4AlmostEqual(split.Mat4(), once.Mat4(), 1e-9) {
			t.Errorf("%T: two intervals %v != one interval %v", o, split.Mat4(), once.Mat4())
		}
	}
}

func TestRotate_StaysOrthonormal(t *testing.T) {
	var o Orientation = NewOrientation()
	for range 10000 {
		o = o.Rotate(mgl64.Vec3{0.5, 1, 0}, 0.045)
	}

	m := o.Mat4().Mat3()
	if !mat3AlmostIdentity(m.Mul3(m.Transpose()), 1e-9) {
		t.Errorf("R * R^T = %v, want identity", m.Mul3(m.Transpose()))
	}
}

func mat3AlmostIdentity(m mgl64.Mat3, epsilon float64) bool {
	ident := mgl64.Ident3()
	for i := range m {
		if !almostEqual(m[i], ident[i], epsilon) {
			return false
		}
	}
	return true
}

func TestRotate_Degenerate(t *testing.T) {
	base := NewOrientation().Rotate(mgl64.Vec3{1, 0, 0}, 30)

	tests := []struct {
		name    string
		axis    mgl64.Vec3
		degrees float64
	}{
		{"zero axis", mgl64.Vec3{0, 0, 0}, 45},
		{"zero angle", mgl64.Vec3{0, 1, 0}, 0},
		{"NaN axis", mgl64.Vec3{math.NaN(), 1, 0}, 45},
		{"infinite axis", mgl64.Vec3{math.Inf(1), 0, 0}, 45},
		{"NaN angle", mgl64.Vec3{0, 1, 0}, math.NaN()},
		{"infinite angle", mgl64.Vec3{0, 1, 0}, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Rotate(tt.axis, tt.degrees)
			if got.Mat4() != base.Mat4() {
				t.Errorf("degenerate rotation changed the orientation: %v -> %v", base.Mat4(), got.Mat4())
			}
		})
	}
}

func TestRotate_DoesNotMutateReceiver(t *testing.T) {
	o := NewMatrixOrientation()
	_ = o.Rotate(mgl64.Vec3{0, 1, 0}, 90)

	if o.Mat4() != mgl64.Ident4() {
		t.Errorf("receiver was mutated: %v", o.Mat4())
	}
}
