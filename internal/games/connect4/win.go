package connect4

// directions are the four line orientations: vertical, horizontal and the
// two diagonals. Their opposites are covered by scanning every start cell.
var directions = [4]Cell{
	{Col: 0, Row: 1},
	{Col: 1, Row: 0},
	{Col: 1, Row: 1},
	{Col: 1, Row: -1},
}

// lineFrom reports whether ToWin cells starting at start and stepping by dir
// all lie on the board and belong to p.
func lineFrom(b Board, start, dir Cell, p Player) bool {
	want := p.Slot()
	for k := range ToWin {
		col := start.Col + dir.Col*k
		row := start.Row + dir.Row*k
		if col < 0 || col >= Columns || row < 0 || row >= Rows {
			return false
		}
		if b[col][row] != want {
			return false
		}
	}
	return true
}

// DetectWin reports whether p owns four consecutive slots in any direction.
// It scans the whole board.
func DetectWin(b Board, p Player) bool {
	_, ok := WinningLine(b, p)
	return ok
}

// WinningLine returns the first four-in-a-row owned by p, scanning columns
// left to right and rows bottom to top.
func WinningLine(b Board, p Player) ([]Cell, bool) {
	if !p.Valid() {
		return nil, false
	}
	for col := range Columns {
		for row := range Rows {
			start := Cell{Col: col, Row: row}
			for _, dir := range directions {
				if lineFrom(b, start, dir, p) {
					line := make([]Cell, ToWin)
					for k := range ToWin {
						line[k] = Cell{Col: col + dir.Col*k, Row: row + dir.Row*k}
					}
					return line, true
				}
			}
		}
	}
	return nil, false
}

// WinAt reports whether p has four in a row on a line through at. After a
// move only lines through the new disc can have changed, so this gives the
// same answer as DetectWin for the player who just moved.
func WinAt(b Board, at Cell, p Player) bool {
	if !p.Valid() || b.At(at.Col, at.Row) != p.Slot() {
		return false
	}
	for _, dir := range directions {
		count := 1 + run(b, at, dir, p) + run(b, at, Cell{Col: -dir.Col, Row: -dir.Row}, p)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// run counts consecutive slots owned by p walking from at (exclusive) by dir.
func run(b Board, at, dir Cell, p Player) int {
	want := p.Slot()
	n := 0
	col, row := at.Col+dir.Col, at.Row+dir.Row
	for col >= 0 && col < Columns && row >= 0 && row < Rows && b[col][row] == want {
		n++
		col += dir.Col
		row += dir.Row
	}
	return n
}
