// Package input translates terminal pointer events into engine drag input.
package input

import (
	"time"

	"github.com/akmonengine/flywheel"
	"github.com/gdamore/tcell/v2"
)

// Sink receives pointer input, *flywheel.Engine implements it
type Sink interface {
	Press(buttons flywheel.ButtonMask)
	MoveAt(dx, dy float64, buttons flywheel.ButtonMask, now time.Time)
	Release()
}

// Pointer tracks the terminal pointer. Terminals report absolute cell positions,
// Pointer turns them into pixel movement deltas and button transitions.
type Pointer struct {
	CellWidth  float64
	CellHeight float64
	// Region returns the interactive area in cells, anchored at 0,0
	Region func() (width, height int)

	x, y    int
	hasLast bool
	buttons flywheel.ButtonMask
	// set when the pointer left the region, a button held on the way back in is not a press
	outside bool
}

// NewPointer creates a pointer with the given cell size in pixels
func NewPointer(cellWidth, cellHeight float64, region func() (int, int)) *Pointer {
	return &Pointer{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Region:     region,
	}
}

// Buttons maps tcell buttons onto the pointer-event bitfield
func Buttons(mask tcell.ButtonMask) flywheel.ButtonMask {
	var buttons flywheel.ButtonMask
	if mask&tcell.Button1 != 0 {
		buttons |= flywheel.ButtonPrimary
	}
	if mask&tcell.Button2 != 0 {
		buttons |= flywheel.ButtonSecondary
	}
	if mask&tcell.Button3 != 0 {
		buttons |= flywheel.ButtonAuxiliary
	}
	return buttons
}

// Handle routes ev to sink. It reports whether ev was a pointer event.
func (p *Pointer) Handle(ev tcell.Event, sink Sink) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		p.handleMouse(x, y, Buttons(ev.Buttons()), ev.When(), sink)
		return true
	case *tcell.EventFocus:
		if !ev.Focused {
			p.leave(sink)
		}
		return true
	}

	return false
}

func (p *Pointer) handleMouse(x, y int, buttons flywheel.ButtonMask, when time.Time, sink Sink) {
	if !p.inside(x, y) {
		p.leave(sink)
		p.outside = true
		return
	}

	entering := p.outside
	p.outside = false
	previous := p.buttons
	p.buttons = buttons

	pressed := buttons&flywheel.ButtonPrimary != 0
	wasPressed := previous&flywheel.ButtonPrimary != 0

	switch {
	case pressed && !wasPressed:
		if !entering {
			sink.Press(buttons)
		}
	case pressed:
		if p.hasLast {
			dx := float64(x-p.x) * p.CellWidth
			dy := float64(y-p.y) * p.CellHeight
			sink.MoveAt(dx, dy, buttons, when)
		}
	case wasPressed:
		sink.Release()
	}

	p.x, p.y = x, y
	p.hasLast = true
}

// leave ends any drag in progress, as when the pointer leaves the region
func (p *Pointer) leave(sink Sink) {
	p.hasLast = false
	if p.buttons&flywheel.ButtonPrimary != 0 {
		sink.Release()
	}
	p.buttons = 0
}

func (p *Pointer) inside(x, y int) bool {
	if p.Region == nil {
		return true
	}

	w, h := p.Region()
	return x >= 0 && y >= 0 && x < w && y < h
}
