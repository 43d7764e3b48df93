package core

// Action represents a semantic game action, abstracted from physical
// key presses. The platform maps keys (or SSH session input) to actions
// so the game never sees raw key events.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move the ship up one step
	ActionDown           // S, Down arrow - move the ship down one step
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit session
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
