// Package connect4 implements the rules of the vertical four-in-a-row game:
// the board model, win/draw detection and the turn state machine.
//
// Everything here is pure. Boards and states are plain values; every
// operation returns a new value and never mutates its input.
package connect4

import "fmt"

// Board dimensions.
const (
	Columns = 7
	Rows    = 6
	ToWin   = 4
)

// Player is one of the two sides. The zero value NoPlayer is not a player;
// it only appears as the winner of an outcome nobody has won.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerA
	PlayerB
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

// Slot returns the slot value owned by p.
func (p Player) Slot() Slot {
	switch p {
	case PlayerA:
		return SlotA
	case PlayerB:
		return SlotB
	default:
		return SlotEmpty
	}
}

// Valid reports whether p is PlayerA or PlayerB.
func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "none"
	}
}

// Slot is the content of one board position.
type Slot uint8

const (
	SlotEmpty Slot = iota
	SlotA
	SlotB
)

// Owner returns the player holding the slot, or NoPlayer when empty.
func (s Slot) Owner() Player {
	switch s {
	case SlotA:
		return PlayerA
	case SlotB:
		return PlayerB
	default:
		return NoPlayer
	}
}

// Cell addresses one slot. Row 0 is the bottom of the board.
type Cell struct {
	Col int
	Row int
}

// Board is the grid of slots, indexed [column][row] with row 0 at the bottom.
// Being an array, a Board is copied on assignment and comparable with ==.
type Board [Columns][Rows]Slot

// At returns the slot at (col, row). Out-of-range coordinates read as empty.
func (b Board) At(col, row int) Slot {
	if col < 0 || col >= Columns || row < 0 || row >= Rows {
		return SlotEmpty
	}
	return b[col][row]
}

// ValidColumn reports whether col is a column index on the board.
func ValidColumn(col int) bool {
	return col >= 0 && col < Columns
}

// mustColumn panics on an out-of-range column. Columns come from a bounded
// cursor or a 1-7 key, so a bad index is a caller bug.
func mustColumn(col int) {
	if !ValidColumn(col) {
		panic(fmt.Sprintf("connect4: column %d out of range [0,%d)", col, Columns))
	}
}

// IsColumnPlayable reports whether the top slot of col is empty.
func IsColumnPlayable(b Board, col int) bool {
	mustColumn(col)
	return b[col][Rows-1] == SlotEmpty
}

// Height returns how many discs col holds.
func Height(b Board, col int) int {
	mustColumn(col)
	for row := range Rows {
		if b[col][row] == SlotEmpty {
			return row
		}
	}
	return Rows
}

// DropAt fills the lowest empty slot of col for p and returns the new board
// together with the row that was filled. A full column yields the board
// unchanged and row -1.
func DropAt(b Board, col int, p Player) (Board, int) {
	mustColumn(col)
	row := Height(b, col)
	if row == Rows {
		return b, -1
	}
	b[col][row] = p.Slot()
	return b, row
}

// Drop fills the lowest empty slot of col for p. A full column is a no-op;
// check IsColumnPlayable first to tell the two apart.
func Drop(b Board, col int, p Player) Board {
	nb, _ := DropAt(b, col, p)
	return nb
}

// IsBoardFull reports whether no column can take another disc.
func IsBoardFull(b Board) bool {
	for col := range Columns {
		if b[col][Rows-1] == SlotEmpty {
			return false
		}
	}
	return true
}

// PlayableColumns returns the columns that still accept a disc, in order.
func PlayableColumns(b Board) []int {
	cols := make([]int, 0, Columns)
	for col := range Columns {
		if b[col][Rows-1] == SlotEmpty {
			cols = append(cols, col)
		}
	}
	return cols
}

// CountSlots returns how many slots p owns.
func CountSlots(b Board, p Player) int {
	want := p.Slot()
	n := 0
	for col := range Columns {
		for row := range Rows {
			if b[col][row] == want {
				n++
			}
		}
	}
	return n
}
