package connect4

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

func playCols(s State, cols ...int) State {
	for _, col := range cols {
		s = s.Move(col)
	}
	return s
}

func TestRenderEmptyBoard(t *testing.T) {
	scr := core.NewScreen(80, 24)
	v := View{Names: [2]string{"Alice", "Bob"}, Cursor: 2, ShowCursor: true}
	Render(scr, NewState(PlayerA), v)

	out := scr.String()
	for _, want := range []string{"C O N N E C T   4", "Player turn: ● Alice", "1   2   3   4   5   6   7"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	l := NewLayout(80, 24)
	for col := range Columns {
		for row := range Rows {
			x, y := l.SlotPos(col, row)
			if got := scr.Get(x, y); got != EmptySlot {
				t.Fatalf("slot (%d,%d) = %q, want empty", col, row, got)
			}
		}
	}

	x, _ := l.SlotPos(2, 0)
	if cell := scr.GetCell(x, l.CursorY); cell.Rune != CursorMark || cell.Color != core.ColorPlayerA {
		t.Errorf("cursor cell = %+v", cell)
	}
}

func TestRenderDiscsBottomUp(t *testing.T) {
	scr := core.NewScreen(80, 24)
	s := playCols(NewState(PlayerA), 4, 4)
	Render(scr, s, View{})

	l := NewLayout(80, 24)
	x, y := l.SlotPos(4, 0)
	if cell := scr.GetCell(x, y); cell.Rune != DefaultDisc || cell.Color != core.ColorPlayerA {
		t.Errorf("bottom disc = %+v", cell)
	}
	x, y = l.SlotPos(4, 1)
	if cell := scr.GetCell(x, y); cell.Rune != DefaultDisc || cell.Color != core.ColorPlayerB {
		t.Errorf("second disc = %+v", cell)
	}
	if !strings.Contains(scr.String(), "Player 1") {
		t.Error("default name not used")
	}
}

func TestRenderWinOverlay(t *testing.T) {
	scr := core.NewScreen(80, 24)
	s := playCols(NewState(PlayerA), 3, 0, 3, 0, 3, 0, 3)
	Render(scr, s, View{Names: [2]string{"Alice", "Bob"}, Disc: 'o'})

	out := scr.String()
	if !strings.Contains(out, "o Alice wins!") {
		t.Errorf("missing win overlay:\n%s", out)
	}
	if !strings.Contains(out, "Enter: rematch") {
		t.Error("missing rematch hint")
	}

	// The bottom disc sits below the overlay box and shows the win glyph.
	l := NewLayout(80, 24)
	x, y := l.SlotPos(3, 0)
	if got := scr.Get(x, y); got != WinDisc {
		t.Errorf("winning disc = %q, want %q", got, WinDisc)
	}
}

func TestRenderDrawOverlay(t *testing.T) {
	scr := core.NewScreen(80, 24)
	s := NewState(PlayerA)
	for _, col := range []int{
		5, 3, 2, 3, 1, 5, 3, 1, 0, 1, 4, 1, 2, 5, 0, 5, 6, 6, 2, 0, 6,
		0, 4, 2, 3, 0, 3, 4, 2, 3, 2, 6, 1, 1, 5, 4, 6, 6, 0, 4, 4, 5,
	} {
		s = s.Move(col)
	}
	Render(scr, s, View{})

	out := scr.String()
	if !strings.Contains(out, "Nobody wins!") {
		t.Errorf("missing draw overlay:\n%s", out)
	}
	if !strings.Contains(out, "Game over after 42 moves") {
		t.Error("missing game over status")
	}
}

func TestRenderTooSmall(t *testing.T) {
	scr := core.NewScreen(20, 8)
	Render(scr, NewState(PlayerA), View{})
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestColumnAt(t *testing.T) {
	l := NewLayout(80, 24)

	for col := range Columns {
		for row := range Rows {
			x, y := l.SlotPos(col, row)
			got, ok := l.ColumnAt(x, y)
			if !ok || got != col {
				t.Fatalf("ColumnAt(slot %d,%d) = %d, %v", col, row, got, ok)
			}
		}
		x, _ := l.SlotPos(col, 0)
		if got, ok := l.ColumnAt(x, l.CursorY); !ok || got != col {
			t.Errorf("click on cursor row for column %d = %d, %v", col, got, ok)
		}
	}

	outside := []struct{ x, y int }{
		{l.Board.X, l.Board.Y + 1},
		{l.Board.Right() - 1, l.Board.Y + 1},
		{l.Board.X + 2, l.TitleY},
		{l.Board.X + 2, l.NumbersY + 1},
		{0, 0},
	}
	for _, p := range outside {
		if col, ok := l.ColumnAt(p.x, p.y); ok {
			t.Errorf("ColumnAt(%d,%d) = %d, want miss", p.x, p.y, col)
		}
	}

	small := NewLayout(10, 5)
	if _, ok := small.ColumnAt(1, 1); ok {
		t.Error("ColumnAt on a too-small layout should miss")
	}
}
