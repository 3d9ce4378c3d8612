package core

// Action represents a semantic player intent, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Move the column cursor left
	ActionRight          // Move the column cursor right
	ActionDrop           // Drop a disc (at Intent.Column, or the cursor if -1)
	ActionRestart        // Rematch after the game ended
	ActionBack           // Back to the setup screen
	ActionResults        // Open the results table
	ActionQuit           // Exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionResults:
		return "Results"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is one player input event. Column is only meaningful for
// ActionDrop; -1 means "wherever the cursor is".
type Intent struct {
	Action Action
	Column int
}

// NoIntent is returned for input that maps to nothing.
var NoIntent = Intent{Action: ActionNone, Column: -1}

// DropAt returns an intent to drop a disc in the given column.
func DropAt(column int) Intent {
	return Intent{Action: ActionDrop, Column: column}
}

// Do returns a column-less intent for the given action.
func Do(a Action) Intent {
	return Intent{Action: a, Column: -1}
}
