package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

const maxResults = 100 // Max results to load

// ResultsKeyMap defines the key bindings for the results table.
type ResultsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Scope key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Scope, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Scope},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Scope: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "session/all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results table.
type ResultsModel struct {
	store     *storage.Store
	sessionID string
	all       bool // Show every session instead of this one
	results   []storage.Result
	tally     storage.Tally
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ResultsKeyMap
	renderer  *lipgloss.Renderer
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewResultsModel creates a results table for one session.
func NewResultsModel(store *storage.Store, sessionID string, r *lipgloss.Renderer, width, height int) ResultsModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ResultsModel{
		store:     store,
		sessionID: sessionID,
		keys:      DefaultResultsKeyMap(),
		help:      h,
		renderer:  r,
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 22},
		{Title: "Moves", Width: 6},
		{Title: "First", Width: 10},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads results for the current scope.
func (m *ResultsModel) load() {
	m.results, m.tally, m.loadErr = nil, storage.Tally{}, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	session := m.sessionID
	if m.all {
		session = ""
	}

	var err error
	if m.all {
		m.results, err = m.store.RecentResults(maxResults)
	} else {
		m.results, err = m.store.SessionResults(session, maxResults)
	}
	if err == nil {
		m.tally, err = m.store.Tally(session)
	}
	m.loadErr = err
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(m.results)-i),
			describeResult(r),
			fmt.Sprintf("%d", r.Moves),
			starterName(r),
			formatDuration(r.Duration),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

func describeResult(r storage.Result) string {
	if r.Outcome == storage.OutcomeDrawn {
		return "Draw"
	}
	return r.WinnerName() + " won"
}

func starterName(r storage.Result) string {
	if r.Starter == "b" {
		return r.PlayerB
	}
	return r.PlayerA
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results table.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Scope):
			m.all = !m.all
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results table.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	r := m.renderer
	var b strings.Builder

	// Title
	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	scope := "THIS SESSION"
	if m.all {
		scope = "ALL SESSIONS"
	}
	b.WriteString(centerText(titleStyle.Render("RESULTS - "+scope), m.width))
	b.WriteString("\n")

	summary := fmt.Sprintf("%d games   A %d : %d B   draws %d", m.tally.Games, m.tally.WinsA, m.tally.WinsB, m.tally.Draws)
	b.WriteString(centerText(r.NewStyle().Foreground(lipgloss.Color("245")).Render(summary), m.width))
	b.WriteString("\n\n")

	tableStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	// Help bar
	b.WriteString("\n")
	helpStyle := r.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Results log unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No games finished yet.\nConnect four to get on the board!")
	}

	return m.table.View()
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	w := lipgloss.Width(block)
	if w >= width {
		return block
	}
	pad := strings.Repeat(" ", (width-w)/2)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// Results returns the rows currently shown.
func (m ResultsModel) Results() []storage.Result {
	return m.results
}

// Tally returns the score for the current scope.
func (m ResultsModel) Tally() storage.Tally {
	return m.tally
}

// IsGoingBack returns true if user wants to go back.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
