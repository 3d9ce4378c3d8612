package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// Setup rows, top to bottom.
const (
	rowStarter = iota
	rowColorA
	rowColorB
	rowStart
	setupRows
)

// Setup is what the setup screen hands to the game.
type Setup struct {
	Starter connect4.Player
	Players config.PlayersConfig
}

// SetupModel is the Bubble Tea model for the match setup modal: who starts,
// each player's color, and a start button.
type SetupModel struct {
	setup    Setup
	disc     rune
	cursor   int
	width    int
	height   int
	renderer *lipgloss.Renderer
	keys     *KeyMapper

	started     bool
	quitting    bool
	wantResults bool
}

// NewSetupModel creates a setup screen initialized from the preferences.
func NewSetupModel(prefs config.Preferences, r *lipgloss.Renderer, cfg core.RuntimeConfig) SetupModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return SetupModel{
		setup: Setup{
			Starter: prefs.Game.StarterPlayer(),
			Players: prefs.Players,
		},
		disc:     prefs.Game.DiscRune(),
		cursor:   rowStart,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		renderer: r,
		keys:     NewKeyMapper(),
	}
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) SetupModel {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionResults:
		m.wantResults = true

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, setupRows-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, setupRows-1)

	case MenuActionLeft:
		m.change(-1)

	case MenuActionRight:
		m.change(1)

	case MenuActionSelect:
		if m.cursor == rowStart {
			m.started = true
		} else {
			m.cursor++
		}
	}
	return m
}

// change moves the value on the current row by delta.
func (m *SetupModel) change(delta int) {
	switch m.cursor {
	case rowStarter:
		m.setup.Starter = m.setup.Starter.Other()
	case rowColorA:
		m.setup.Players.A.Color = cycleColor(m.setup.Players.A.Color, m.setup.Players.B.Color, delta)
	case rowColorB:
		m.setup.Players.B.Color = cycleColor(m.setup.Players.B.Color, m.setup.Players.A.Color, delta)
	}
}

// cycleColor steps through the palette, skipping the opponent's color.
// A custom color not in the palette steps onto the first or last swatch.
func cycleColor(current, opponent string, delta int) string {
	n := len(config.Palette)
	idx := config.PaletteIndex(current)
	if idx < 0 {
		idx = -1
		if delta < 0 {
			idx = n
		}
	}
	for range n {
		idx = core.Wrap(idx+delta, n)
		if !strings.EqualFold(config.Palette[idx].Hex, opponent) {
			return config.Palette[idx].Hex
		}
	}
	return current
}

// playerName returns the display name of p, with the board's fallback for
// unnamed players.
func playerName(players config.PlayersConfig, p connect4.Player) string {
	return connect4.View{Names: [2]string{players.A.Name, players.B.Name}}.Name(p)
}

// colorLabel names a color for display.
func colorLabel(color string) string {
	if idx := config.PaletteIndex(color); idx >= 0 {
		return config.Palette[idx].Name
	}
	return color
}

// View renders the setup modal.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	r := m.renderer
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := r.NewStyle().Foreground(lipgloss.Color("245"))
	active := r.NewStyle().Bold(true)

	line := func(row int, label, value string) string {
		cursor := "  "
		style := r.NewStyle()
		if row == m.cursor {
			cursor = "> "
			style = active
		}
		return style.Render(fmt.Sprintf("%s%-14s", cursor, label)) + value
	}

	disc := func(color string) string {
		return r.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(string(m.disc))
	}

	radio := func(p connect4.Player) string {
		mark := "( )"
		if m.setup.Starter == p {
			mark = "(•)"
		}
		return fmt.Sprintf("%s %s", mark, playerName(m.setup.Players, p))
	}

	picker := func(pc config.PlayerConfig) string {
		return fmt.Sprintf("◀ %s %-8s ▶", disc(pc.Color), colorLabel(pc.Color))
	}

	start := "[ Start ]"
	if m.cursor == rowStart {
		start = active.Reverse(true).Render(start)
	}

	var b strings.Builder
	b.WriteString(title.Render("C O N N E C T   4"))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("Select terms"))
	b.WriteString("\n\n")
	b.WriteString(line(rowStarter, "First move", radio(connect4.PlayerA)+"  "+radio(connect4.PlayerB)))
	b.WriteString("\n")
	b.WriteString(line(rowColorA, playerName(m.setup.Players, connect4.PlayerA), picker(m.setup.Players.A)))
	b.WriteString("\n")
	b.WriteString(line(rowColorB, playerName(m.setup.Players, connect4.PlayerB), picker(m.setup.Players.B)))
	b.WriteString("\n\n")
	b.WriteString(start)
	b.WriteString("\n\n")
	b.WriteString(dim.Render("↑/↓: Navigate  ←/→: Change  Enter: Start  Tab: Results  Q: Quit"))

	modal := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(b.String())

	if m.width <= 0 || m.height <= 0 {
		return modal
	}
	return r.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// Setup returns the current selections.
func (m SetupModel) Setup() Setup {
	return m.setup
}

// Started returns true once the user pressed Start.
func (m SetupModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user requested the results table.
func (m SetupModel) WantsResults() bool {
	return m.wantResults
}
