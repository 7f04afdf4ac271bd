package flywheel

import (
	"time"

	"github.com/akmonengine/flywheel/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ButtonMask follows the pointer-event buttons bitfield
type ButtonMask uint8

const (
	ButtonPrimary ButtonMask = 1 << iota
	ButtonSecondary
	ButtonAuxiliary
)

// screenForward points away from the viewer. Crossing a drag with it spins the object
// toward the viewer about the axis perpendicular to the drag.
var screenForward = mgl64.Vec3{0, 0, -1}

// Move samples a pointer movement of (dx, dy) pixels, using the engine clock
func (e *Engine) Move(dx, dy float64, buttons ButtonMask) {
	e.MoveAt(dx, dy, buttons, e.clock())
}

// MoveAt samples a pointer movement of (dx, dy) pixels at now.
// The sample overwrites the momentum with the drag velocity and holds the object.
// The first sample of a drag only seeds the cursor; samples with no elapsed time or no
// movement are discarded.
func (e *Engine) MoveAt(dx, dy float64, buttons ButtonMask, now time.Time) {
	if buttons&ButtonPrimary == 0 {
		return
	}

	if !e.hasLastMove {
		e.lastMove = now
		e.hasLastMove = true
		return
	}
	elapsed := now.Sub(e.lastMove)
	e.lastMove = now

	if elapsed <= 0 || (dx == 0 && dy == 0) {
		return
	}

	momentum := DragMomentum(mgl64.Vec3{dx, dy, 0}, elapsed, e.Params.ReferenceSize)

	if !e.held {
		e.Events.emit(GrabEvent{Momentum: momentum})
	}
	if e.momentum.AtRest() && !momentum.AtRest() {
		e.Events.emit(SpinEvent{Momentum: momentum})
	}

	e.momentum = momentum
	e.held = true
	e.Events.flush()
}

// DragMomentum converts a planar displacement over elapsed into a spin.
// The speed is calibrated so that crossing referenceSize pixels in one second
// gives 180 deg/s.
func DragMomentum(displacement mgl64.Vec3, elapsed time.Duration, referenceSize float64) actor.AxisAngle {
	ms := float64(elapsed) / float64(time.Millisecond)
	velocity := 1000 * actor.Magnitude(displacement) / ms // px/s

	return actor.AxisAngle{
		Axis:  actor.Cross(displacement, screenForward),
		Angle: 180 * velocity / referenceSize,
	}
}

// Release ends a drag, on pointer up or when the pointer leaves the region.
// The momentum is kept, so the object is thrown with the last sampled spin.
func (e *Engine) Release() {
	e.lastMove = time.Time{}
	e.hasLastMove = false

	if e.held {
		e.held = false
		e.Events.emit(ReleaseEvent{Momentum: e.momentum})
	}
	e.Events.flush()
}
