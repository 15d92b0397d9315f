package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Phase is the stage of a pointer interaction.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

// String returns a human-readable name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer position correlated by pointer identity.
type PointerEvent struct {
	ID int
	X  float64
	Y  float64
}

// PointerTracker turns terminal mouse messages into pointer events.
//
// Terminals do not report a pointer identity, so the pressed button is used.
// Some terminals report releases and drags without a button; the tracker
// fills in the button that was pressed.
type PointerTracker struct {
	pressed tea.MouseButton
	active  bool
}

// Active reports whether a button is currently held.
func (t *PointerTracker) Active() bool {
	return t.active
}

// FromMouse converts msg. ok is false for wheel events and for motion while
// no button is held.
func (t *PointerTracker) FromMouse(msg tea.MouseMsg) (phase Phase, ev PointerEvent, ok bool) {
	if tea.MouseEvent(msg).IsWheel() {
		return 0, PointerEvent{}, false
	}

	ev = PointerEvent{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		t.pressed = msg.Button
		t.active = true
		ev.ID = int(msg.Button)
		return PhaseDown, ev, true

	case tea.MouseActionMotion:
		if !t.active {
			return 0, PointerEvent{}, false
		}
		ev.ID = int(t.pressed)
		return PhaseMove, ev, true

	case tea.MouseActionRelease:
		if !t.active {
			return 0, PointerEvent{}, false
		}
		ev.ID = int(t.pressed)
		if msg.Button != tea.MouseButtonNone {
			ev.ID = int(msg.Button)
		}
		t.active = false
		return PhaseUp, ev, true
	}

	return 0, PointerEvent{}, false
}
