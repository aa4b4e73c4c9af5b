package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump, and start a run when not running
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Press is a single timestamped action delivered by the host input layer.
type Press struct {
	Action Action
	At     time.Time
}

// InputFrame collects the presses delivered between two host ticks.
// Presses keep arrival order; repeated presses are all kept because every
// distinct tap matters (double jump).
type InputFrame struct {
	Presses []Press
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push records an action pressed at the given time.
func (f *InputFrame) Push(a Action, at time.Time) {
	f.Presses = append(f.Presses, Press{Action: a, At: at})
}

// Count returns how many times the action was pressed during this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, p := range f.Presses {
		if p.Action == a {
			n++
		}
	}
	return n
}

// Clear resets the frame for the next tick, keeping the allocation.
func (f *InputFrame) Clear() {
	f.Presses = f.Presses[:0]
}
