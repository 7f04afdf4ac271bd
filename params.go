package flywheel

import (
	"github.com/akmonengine/flywheel/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DEFAULT_REFERENCE_SIZE is the on-screen extent of the object in pixels.
	// Dragging across it in one second gives roughly a half turn per second.
	DEFAULT_REFERENCE_SIZE = 384.0
	// DEFAULT_PRESS_FRICTION is the deceleration set on press (deg/s²)
	DEFAULT_PRESS_FRICTION = 45.0
	// DEFAULT_REST_EPSILON is the angular speed under which the object stops (deg/s)
	DEFAULT_REST_EPSILON = 0.01
	// DEFAULT_IDLE_SPEED is the spin the object starts with (deg/s)
	DEFAULT_IDLE_SPEED = 45.0
)

// DEFAULT_IDLE_AXIS is the axis of the spin the object starts with
var DEFAULT_IDLE_AXIS = mgl64.Vec3{0.5, 1, 0}

// Params holds the calibration constants of an engine
type Params struct {
	ReferenceSize float64
	PressFriction float64
	RestEpsilon   float64
	IdleMomentum  actor.AxisAngle
}

// DefaultParams returns the tuned defaults: a slow idle spin that never stops until dragged
func DefaultParams() Params {
	return Params{
		ReferenceSize: DEFAULT_REFERENCE_SIZE,
		PressFriction: DEFAULT_PRESS_FRICTION,
		RestEpsilon:   DEFAULT_REST_EPSILON,
		IdleMomentum: actor.AxisAngle{
			Axis:  DEFAULT_IDLE_AXIS,
			Angle: DEFAULT_IDLE_SPEED,
		},
	}
}
