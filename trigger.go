package flywheel

// Press fires the friction trigger on a primary button press.
// Friction stays set across releases, so a thrown object decelerates until it rests.
func (e *Engine) Press(buttons ButtonMask) {
	if buttons&ButtonPrimary == 0 {
		return
	}

	e.friction = e.Params.PressFriction
	e.Events.emit(PressEvent{Friction: e.friction})
	e.Events.flush()
}
