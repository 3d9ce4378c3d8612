package connect4

import "testing"

func TestDropGravity(t *testing.T) {
	var b Board
	b = Drop(b, 3, PlayerA)
	b = Drop(b, 3, PlayerB)
	b = Drop(b, 3, PlayerA)

	want := []Slot{SlotA, SlotB, SlotA, SlotEmpty, SlotEmpty, SlotEmpty}
	for row, slot := range want {
		if b[3][row] != slot {
			t.Errorf("row %d: got %v, want %v", row, b[3][row], slot)
		}
	}
	if got := Height(b, 3); got != 3 {
		t.Errorf("Height = %d, want 3", got)
	}
	if got := Height(b, 0); got != 0 {
		t.Errorf("Height of empty column = %d, want 0", got)
	}
}

func TestDropDoesNotMutateInput(t *testing.T) {
	var b Board
	before := b
	after := Drop(b, 0, PlayerA)
	if b != before {
		t.Fatal("Drop mutated its input")
	}
	if after == b {
		t.Fatal("Drop returned an unchanged board for an empty column")
	}
}

func TestDropAtReportsRow(t *testing.T) {
	var b Board
	for want := range Rows {
		var row int
		b, row = DropAt(b, 5, PlayerB)
		if row != want {
			t.Fatalf("drop %d: row = %d, want %d", want, row, want)
		}
	}
	full := b
	b, row := DropAt(b, 5, PlayerA)
	if row != -1 {
		t.Errorf("full column row = %d, want -1", row)
	}
	if b != full {
		t.Error("drop into a full column changed the board")
	}
}

func TestIsColumnPlayable(t *testing.T) {
	var b Board
	for i := range Rows {
		if !IsColumnPlayable(b, 2) {
			t.Fatalf("column should be playable after %d discs", i)
		}
		b = Drop(b, 2, PlayerA)
	}
	if IsColumnPlayable(b, 2) {
		t.Error("full column reported playable")
	}
	if got := PlayableColumns(b); len(got) != Columns-1 {
		t.Errorf("PlayableColumns = %v, want %d columns", got, Columns-1)
	}
}

func TestIsBoardFull(t *testing.T) {
	var b Board
	if IsBoardFull(b) {
		t.Fatal("empty board reported full")
	}
	for col := range Columns {
		for row := range Rows {
			p := PlayerA
			if (col+row)%2 == 1 {
				p = PlayerB
			}
			b = Drop(b, col, p)
		}
	}
	if !IsBoardFull(b) {
		t.Fatal("filled board not reported full")
	}
	if got := PlayableColumns(b); len(got) != 0 {
		t.Errorf("PlayableColumns on full board = %v", got)
	}
	if a, bb := CountSlots(b, PlayerA), CountSlots(b, PlayerB); a+bb != Columns*Rows {
		t.Errorf("CountSlots A=%d B=%d, want total %d", a, bb, Columns*Rows)
	}
}

func TestOutOfRangeColumnPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"playable negative", func() { IsColumnPlayable(Board{}, -1) }},
		{"playable past end", func() { IsColumnPlayable(Board{}, Columns) }},
		{"drop past end", func() { Drop(Board{}, Columns, PlayerA) }},
		{"height negative", func() { Height(Board{}, -1) }},
		{"move past end", func() { NewState(PlayerA).Move(Columns) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestPlayerHelpers(t *testing.T) {
	if PlayerA.Other() != PlayerB || PlayerB.Other() != PlayerA {
		t.Error("Other does not swap players")
	}
	if NoPlayer.Other() != NoPlayer {
		t.Error("NoPlayer.Other should be NoPlayer")
	}
	if PlayerA.Slot().Owner() != PlayerA || PlayerB.Slot().Owner() != PlayerB {
		t.Error("Slot/Owner round trip failed")
	}
	if SlotEmpty.Owner() != NoPlayer {
		t.Error("empty slot has an owner")
	}
	if NoPlayer.Valid() {
		t.Error("NoPlayer reported valid")
	}
}
