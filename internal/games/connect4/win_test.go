package connect4

import "testing"

// boardOf builds a board by dropping discs column by column.
func boardOf(drops map[Player][]int) Board {
	var b Board
	for p, cols := range drops {
		for _, col := range cols {
			b = Drop(b, col, p)
		}
	}
	return b
}

func TestDetectWinDirections(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
	}{
		{"vertical", []Cell{{2, 1}, {2, 2}, {2, 3}, {2, 4}}},
		{"horizontal", []Cell{{3, 0}, {4, 0}, {5, 0}, {6, 0}}},
		{"diagonal up", []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"diagonal down", []Cell{{3, 5}, {4, 4}, {5, 3}, {6, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			for _, c := range tt.cells {
				b[c.Col][c.Row] = SlotB
			}
			if !DetectWin(b, PlayerB) {
				t.Fatal("DetectWin missed the line")
			}
			if DetectWin(b, PlayerA) {
				t.Fatal("DetectWin credited the wrong player")
			}
			for _, c := range tt.cells {
				if !WinAt(b, c, PlayerB) {
					t.Errorf("WinAt(%v) missed the line", c)
				}
			}

			line, ok := WinningLine(b, PlayerB)
			if !ok || len(line) != ToWin {
				t.Fatalf("WinningLine = %v, %v", line, ok)
			}
			want := map[Cell]bool{}
			for _, c := range tt.cells {
				want[c] = true
			}
			for _, c := range line {
				if !want[c] {
					t.Errorf("WinningLine contains %v, not part of the line", c)
				}
			}

			// Breaking any cell of the line removes the win.
			b[tt.cells[1].Col][tt.cells[1].Row] = SlotA
			if DetectWin(b, PlayerB) {
				t.Error("DetectWin still true after breaking the line")
			}
		})
	}
}

func TestThreeIsNotAWin(t *testing.T) {
	b := boardOf(map[Player][]int{
		PlayerA: {0, 1, 2},
		PlayerB: {6, 6, 6},
	})
	if DetectWin(b, PlayerA) || DetectWin(b, PlayerB) {
		t.Fatal("three in a row reported as a win")
	}
}

func TestWinAtIgnoresForeignCell(t *testing.T) {
	var b Board
	for row := range ToWin {
		b[0][row] = SlotA
	}
	if WinAt(b, Cell{Col: 0, Row: 0}, PlayerB) {
		t.Error("WinAt credited a player who does not own the cell")
	}
	if WinAt(b, Cell{Col: 1, Row: 0}, PlayerA) {
		t.Error("WinAt on an empty cell")
	}
	if DetectWin(b, NoPlayer) {
		t.Error("DetectWin for NoPlayer")
	}
}
