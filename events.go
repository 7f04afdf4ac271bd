package flywheel

import "github.com/akmonengine/flywheel/actor"

const (
	PRESS EventType = iota
	GRAB
	RELEASE
	SPIN
	REST
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case PRESS:
		return "press"
	case GRAB:
		return "grab"
	case RELEASE:
		return "release"
	case SPIN:
		return "spin"
	case REST:
		return "rest"
	default:
		return "unknown"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// PressEvent is emitted when the friction trigger fires
type PressEvent struct {
	Friction float64
}

func (e PressEvent) Type() EventType { return PRESS }

// GrabEvent is emitted on the first qualifying drag sample of a hold
type GrabEvent struct {
	Momentum actor.AxisAngle
}

func (e GrabEvent) Type() EventType { return GRAB }

// ReleaseEvent is emitted when a hold ends, carrying the momentum the object is thrown with
type ReleaseEvent struct {
	Momentum actor.AxisAngle
}

func (e ReleaseEvent) Type() EventType { return RELEASE }

// SpinEvent is emitted when the object leaves rest
type SpinEvent struct {
	Momentum actor.AxisAngle
}

func (e SpinEvent) Type() EventType { return SPIN }

// RestEvent is emitted when the angular speed reaches exactly zero
type RestEvent struct {
	Orientation actor.Orientation
}

func (e RestEvent) Type() EventType { return REST }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 8),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer.
// A listener may call back into the engine, the events it causes are sent before the ones still pending.
func (e *Events) flush() {
	pending := e.buffer
	e.buffer = nil

	for _, event := range pending {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}

	if len(e.buffer) == 0 {
		e.buffer = pending[:0]
	}
}
