package core

// Action represents a semantic game action, abstracted from physical key presses
// and on-screen button clicks.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, pad up
	ActionDown           // S, Down arrow, pad down
	ActionLeft           // A, Left arrow, pad left
	ActionRight          // D, Right arrow, pad right
	ActionStop           // Space, X, pad stop
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action steers the snake.
func (a Action) IsMove() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionStop:
		return true
	}
	return false
}
