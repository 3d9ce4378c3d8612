package connect4

import (
	"fmt"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

const (
	cellWidth = 4 // "│ ● " per column
	boardW    = Columns*cellWidth + 1
	boardH    = Rows + 2 // slot rows plus top and bottom border

	// title, status, tally, gap, cursor, board, column numbers
	contentH = 5 + boardH + 1

	// MinWidth and MinHeight are the smallest screen the board fits on.
	MinWidth  = boardW + 2
	MinHeight = contentH
)

// Default glyphs.
const (
	DefaultDisc = '●'
	EmptySlot   = '·'
	WinDisc     = '◆'
	CursorMark  = '▼'
)

// View carries the presentation-only inputs of Render: names, cursor and
// glyph choice. None of it affects the rules.
type View struct {
	Names      [2]string // Display names for PlayerA and PlayerB
	Cursor     int       // Column the cursor is over
	ShowCursor bool
	Disc       rune   // Disc glyph; DefaultDisc when zero
	Tally      string // Optional line under the status, e.g. session score
}

// Name returns the display name of p, falling back to "Player 1"/"Player 2".
func (v View) Name(p Player) string {
	idx := 0
	if p == PlayerB {
		idx = 1
	}
	if v.Names[idx] != "" {
		return v.Names[idx]
	}
	return fmt.Sprintf("Player %d", idx+1)
}

func (v View) disc() rune {
	if v.Disc == 0 {
		return DefaultDisc
	}
	return v.Disc
}

// Layout places the board on a screen of a given size.
type Layout struct {
	Board    core.Rect // Outer frame of the board
	TitleY   int
	StatusY  int
	TallyY   int
	CursorY  int
	NumbersY int
	TooSmall bool
}

// NewLayout centers the board on a w x h screen.
func NewLayout(w, h int) Layout {
	top := core.Max((h-contentH)/2, 0)
	x := core.Max((w-boardW)/2, 0)
	boardY := top + 5
	return Layout{
		Board:    core.NewRect(x, boardY, boardW, boardH),
		TitleY:   top,
		StatusY:  top + 1,
		TallyY:   top + 2,
		CursorY:  top + 4,
		NumbersY: boardY + boardH,
		TooSmall: w < MinWidth || h < MinHeight,
	}
}

// SlotPos returns the screen position of the disc at (col, row).
func (l Layout) SlotPos(col, row int) (x, y int) {
	return l.Board.X + col*cellWidth + 2, l.Board.Y + Rows - row
}

// ColumnAt maps a screen position to the column under it. Anything from the
// cursor row down to the column numbers counts, so clicks above the board
// work too.
func (l Layout) ColumnAt(x, y int) (int, bool) {
	if l.TooSmall || y < l.CursorY || y > l.NumbersY {
		return -1, false
	}
	if x <= l.Board.X || x >= l.Board.Right()-1 {
		return -1, false
	}
	col := (x - l.Board.X - 1) / cellWidth
	if !ValidColumn(col) {
		return -1, false
	}
	return col, true
}

// Render draws s into dst.
func Render(dst *core.Screen, s State, v View) {
	dst.Clear()

	l := NewLayout(dst.Width(), dst.Height())
	if l.TooSmall {
		renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(l.TitleY, "C O N N E C T   4", core.ColorTitle)
	renderStatus(dst, l, s, v)
	if v.Tally != "" {
		dst.DrawTextCentered(l.TallyY, v.Tally, core.ColorDim)
	}
	if v.ShowCursor && !s.IsTerminal() && ValidColumn(v.Cursor) {
		x, _ := l.SlotPos(v.Cursor, 0)
		color := playerColor(s.CurrentPlayer())
		if !IsColumnPlayable(s.board, v.Cursor) {
			color = core.ColorDim
		}
		dst.SetColored(x, l.CursorY, CursorMark, color)
	}
	renderBoard(dst, l, s, v)

	if s.IsTerminal() {
		renderOutcome(dst, l, s, v)
	}
}

func playerColor(p Player) core.Color {
	if p == PlayerB {
		return core.ColorPlayerB
	}
	return core.ColorPlayerA
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDim)
}

// renderStatus draws the turn indicator: "Player turn: ● <name>".
func renderStatus(dst *core.Screen, l Layout, s State, v View) {
	var label string
	switch s.Outcome().Status {
	case StatusInProgress:
		label = "Player turn: "
	default:
		label = fmt.Sprintf("Game over after %d moves", s.Moves())
		dst.DrawTextCentered(l.StatusY, label, core.ColorDim)
		return
	}

	name := v.Name(s.CurrentPlayer())
	width := core.TextWidth(label) + 2 + core.TextWidth(name)
	x := (dst.Width() - width) / 2
	dst.DrawText(x, l.StatusY, label)
	x += core.TextWidth(label)
	dst.SetColored(x, l.StatusY, v.disc(), playerColor(s.CurrentPlayer()))
	dst.DrawText(x+2, l.StatusY, name)
}

// renderBoard draws the frame, the slots and the column numbers.
func renderBoard(dst *core.Screen, l Layout, s State, v View) {
	bx, by := l.Board.X, l.Board.Y
	bottom := l.Board.Bottom() - 1

	for col := 0; col <= Columns; col++ {
		x := bx + col*cellWidth
		top, bot := '┬', '┴'
		switch col {
		case 0:
			top, bot = '┌', '└'
		case Columns:
			top, bot = '┐', '┘'
		}
		dst.SetColored(x, by, top, core.ColorFrame)
		dst.SetColored(x, bottom, bot, core.ColorFrame)
		if col < Columns {
			for i := 1; i < cellWidth; i++ {
				dst.SetColored(x+i, by, '─', core.ColorFrame)
				dst.SetColored(x+i, bottom, '─', core.ColorFrame)
			}
		}
		for y := by + 1; y < bottom; y++ {
			dst.SetColored(x, y, '│', core.ColorFrame)
		}
	}

	winning := map[Cell]bool{}
	if o := s.Outcome(); o.Status == StatusWon {
		if line, ok := WinningLine(s.board, o.Winner); ok {
			for _, c := range line {
				winning[c] = true
			}
		}
	}

	for col := range Columns {
		for row := range Rows {
			x, y := l.SlotPos(col, row)
			switch slot := s.board[col][row]; slot {
			case SlotEmpty:
				dst.SetColored(x, y, EmptySlot, core.ColorEmpty)
			default:
				glyph := v.disc()
				if winning[Cell{Col: col, Row: row}] {
					glyph = WinDisc
				}
				dst.SetColored(x, y, glyph, playerColor(slot.Owner()))
			}
		}
		x, _ := l.SlotPos(col, 0)
		dst.DrawTextColored(x, l.NumbersY, fmt.Sprintf("%d", col+1), core.ColorDim)
	}
}

// renderOutcome draws the win/draw overlay over the middle of the board.
func renderOutcome(dst *core.Screen, l Layout, s State, v View) {
	o := s.Outcome()
	headline := "Nobody wins!"
	color := core.ColorHighlight
	if o.Status == StatusWon {
		headline = fmt.Sprintf("%c %s wins!", v.disc(), v.Name(o.Winner))
		color = playerColor(o.Winner)
	}

	cx, cy := l.Board.Center()
	drawOverlay(dst, cx, cy,
		overlayLine{headline, color},
		overlayLine{"Enter: rematch  Esc: setup", core.ColorDim},
	)
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay draws a boxed, centered block of text.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...overlayLine) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, core.TextWidth(line.text))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorHighlight)

	for i, line := range lines {
		x := centerX - core.TextWidth(line.text)/2
		dst.DrawTextColored(x, box.Y+1+i, line.text, line.color)
	}
}
