package connect4

// Status is the phase of a game.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Outcome is the result of a game: none yet, a win by Winner, or a draw.
// Winner is NoPlayer unless Status is StatusWon.
type Outcome struct {
	Status Status
	Winner Player
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o.Status != StatusInProgress
}

// State is one snapshot of a game. It is a value: transitions return a new
// State and leave the receiver untouched, and two States compare equal with ==
// when every field matches.
type State struct {
	board    Board
	current  Player
	outcome  Outcome
	starter  Player
	moves    int
	lastMove Cell
	hasLast  bool
}

// NewState returns an empty board with starter to move.
// Panics if starter is not PlayerA or PlayerB.
func NewState(starter Player) State {
	if !starter.Valid() {
		panic("connect4: starting player must be PlayerA or PlayerB")
	}
	return State{
		current: starter,
		starter: starter,
	}
}

// Board returns the current board.
func (s State) Board() Board { return s.board }

// CurrentPlayer returns the player to move. After the game ends it is the
// player who made the final move.
func (s State) CurrentPlayer() Player { return s.current }

// Outcome returns the game's outcome so far.
func (s State) Outcome() Outcome { return s.outcome }

// Starter returns the player who opened this game.
func (s State) Starter() Player { return s.starter }

// Moves returns how many discs have been dropped.
func (s State) Moves() int { return s.moves }

// LastMove returns the cell filled by the most recent move.
func (s State) LastMove() (Cell, bool) { return s.lastMove, s.hasLast }

// IsTerminal reports whether no further moves are accepted.
func (s State) IsTerminal() bool { return s.outcome.Terminal() }

// CanMove reports whether Move(col) would change the state.
func (s State) CanMove(col int) bool {
	return !s.IsTerminal() && IsColumnPlayable(s.board, col)
}

// Move drops a disc for the current player in col.
//
// A move into a full column, or any move once the game has ended, returns
// the state unchanged. An out-of-range column panics.
func (s State) Move(col int) State {
	mustColumn(col)
	if s.IsTerminal() || !IsColumnPlayable(s.board, col) {
		return s
	}

	board, row := DropAt(s.board, col, s.current)
	next := s
	next.board = board
	next.moves++
	next.lastMove = Cell{Col: col, Row: row}
	next.hasLast = true

	switch {
	case WinAt(board, next.lastMove, s.current):
		next.outcome = Outcome{Status: StatusWon, Winner: s.current}
	case IsBoardFull(board):
		next.outcome = Outcome{Status: StatusDrawn}
	default:
		next.current = s.current.Other()
	}
	return next
}

// Reset discards the game and starts a fresh one with starter to move.
// Choosing who starts (e.g. alternating between games) is up to the caller.
func (s State) Reset(starter Player) State {
	return NewState(starter)
}
