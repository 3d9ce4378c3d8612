package connect4

// Event is an input to Reduce.
type Event interface {
	event()
}

// MoveEvent asks the current player to drop a disc in Column.
type MoveEvent struct {
	Column int
}

func (MoveEvent) event() {}

// ResetEvent starts a new game with Starter to move.
type ResetEvent struct {
	Starter Player
}

func (ResetEvent) event() {}

// Reduce applies one event to s and returns the resulting state.
// Unknown events leave the state unchanged.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case MoveEvent:
		return s.Move(ev.Column)
	case ResetEvent:
		return s.Reset(ev.Starter)
	default:
		return s
	}
}
