package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Theme maps core.Color roles to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// NewTheme builds the styles for a renderer, taking the disc colors from the
// player preferences. Each SSH session passes its own renderer so colors
// match the client's terminal rather than the server's.
func NewTheme(r *lipgloss.Renderer, players config.PlayersConfig) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		core.ColorDefault:   r.NewStyle(),
		core.ColorFrame:     r.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorPlayerA:   r.NewStyle().Foreground(lipgloss.Color(players.A.Color)).Bold(true),
		core.ColorPlayerB:   r.NewStyle().Foreground(lipgloss.Color(players.B.Color)).Bold(true),
		core.ColorEmpty:     r.NewStyle().Foreground(lipgloss.Color("240")),
		core.ColorHighlight: r.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		core.ColorDim:       r.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorTitle:     r.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	}
}

// Style returns the style for a role, falling back to the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t[c]; ok {
		return style
	}
	return t[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
