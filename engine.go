package flywheel

import (
	"math"
	"time"

	"github.com/akmonengine/flywheel/actor"
)

// Clock returns the current wall-clock time
type Clock func() time.Time

// State is a read-only snapshot of an engine, for renderers
type State struct {
	Orientation actor.Orientation
	Momentum    actor.AxisAngle
	Friction    float64 // deg/s²
	Held        bool
}

// Engine owns the orientation and spin of one interactive object.
// It is not safe for concurrent use: ticks and pointer events must be serialized by the caller,
// see Run.
type Engine struct {
	Params Params
	Events Events

	orientation actor.Orientation
	momentum    actor.AxisAngle
	friction    float64
	held        bool

	clock    Clock
	lastTick time.Time
	// drag sampler cursor, independent of lastTick
	lastMove    time.Time
	hasLastMove bool
}

// NewEngine creates an engine at the default pose, spinning with the idle momentum.
// A nil clock defaults to time.Now.
func NewEngine(params Params, clock Clock) *Engine {
	if clock == nil {
		clock = time.Now
	}

	e := &Engine{
		Params: params,
		Events: NewEvents(),
		clock:  clock,
	}
	e.reset()
	e.lastTick = clock()

	return e
}

func (e *Engine) reset() {
	e.orientation = actor.NewOrientation()
	e.momentum = e.Params.IdleMomentum
	e.friction = 0
	e.held = false
	e.lastMove = time.Time{}
	e.hasLastMove = false
}

// Reset restores the default pose and the idle momentum, with no friction
func (e *Engine) Reset() {
	wasResting := e.momentum.AtRest()
	e.reset()
	if wasResting && !e.momentum.AtRest() {
		e.Events.emit(SpinEvent{Momentum: e.momentum})
	}
	e.Events.flush()
}

func (e *Engine) Orientation() actor.Orientation {
	return e.orientation
}

func (e *Engine) Momentum() actor.AxisAngle {
	return e.momentum
}

func (e *Engine) Friction() float64 {
	return e.friction
}

func (e *Engine) Held() bool {
	return e.held
}

func (e *Engine) Snapshot() State {
	return State{
		Orientation: e.orientation,
		Momentum:    e.momentum,
		Friction:    e.friction,
		Held:        e.held,
	}
}

// Tick advances the engine by the time elapsed since the previous tick
func (e *Engine) Tick() {
	e.TickAt(e.clock())
}

// TickAt advances the engine up to now. A clock going backwards counts as no elapsed time.
func (e *Engine) TickAt(now time.Time) {
	dt := now.Sub(e.lastTick)
	e.lastTick = now
	e.Step(max(dt, 0))
}

// Step integrates the current spin over dt, then decays the angular speed.
// A held object stops after one step, until the next drag sample sets a new speed.
func (e *Engine) Step(dt time.Duration) {
	if e.momentum.AtRest() {
		return
	}

	seconds := dt.Seconds()
	e.orientation = e.orientation.Rotate(e.momentum.Axis, e.momentum.Angle*seconds)

	if e.held {
		e.momentum.Angle = 0
	} else {
		e.momentum.Angle = Decay(e.momentum.Angle, e.friction, seconds, e.Params.RestEpsilon)
	}
	if e.momentum.AtRest() {
		e.Events.emit(RestEvent{Orientation: e.orientation})
	}

	e.Events.flush()
}

// Decay moves angle toward zero at friction deg/s² over seconds, without overshooting.
// Speeds under epsilon snap to exactly zero.
func Decay(angle, friction, seconds, epsilon float64) float64 {
	if math.Abs(angle) < epsilon {
		return 0
	}

	return angle - math.Copysign(math.Min(friction*seconds, math.Abs(angle)), angle)
}
