package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

type screenID int

const (
	screenSetup screenID = iota
	screenGame
	screenResults
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Prefs     config.Preferences
	Store     *storage.Store // nil runs without a results log
	SessionID string         // Generated when empty
	Logger    *log.Logger
	Renderer  *lipgloss.Renderer
	Config    core.RuntimeConfig

	// SkipSetup starts straight into a game with the preferences as chosen.
	SkipSetup bool
}

// NewSessionID returns a session id unique to this process.
func NewSessionID(owner string) string {
	return fmt.Sprintf("%s-%d", owner, time.Now().UnixNano())
}

// SessionModel manages the full session flow: setup -> game -> results.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts    SessionOptions
	config  core.RuntimeConfig
	screen  screenID
	setup   SetupModel
	game    *GameModel
	results ResultsModel
	// Screen to return to from the results table.
	resultsFrom screenID
	quitting    bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.SessionID == "" {
		opts.SessionID = NewSessionID("local")
	}
	if opts.Config.ScreenW == 0 && opts.Config.ScreenH == 0 {
		opts.Config = core.DefaultConfig()
	}

	m := SessionModel{
		opts:   opts,
		config: opts.Config,
		setup:  NewSetupModel(opts.Prefs, opts.Renderer, opts.Config),
	}
	if opts.SkipSetup {
		m = m.startGame(m.setup.Setup())
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		m = m.updateGame(msg)
	case screenResults:
		m = m.updateResults(msg)
	default:
		m = m.updateSetup(msg)
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m SessionModel) updateSetup(msg tea.Msg) SessionModel {
	next, _ := m.setup.Update(msg)
	if setup, ok := next.(SetupModel); ok {
		m.setup = setup
	}

	switch {
	case m.setup.IsQuitting():
		m.quitting = true
	case m.setup.WantsResults():
		m.setup.wantResults = false
		m = m.openResults(screenSetup)
	case m.setup.Started():
		m.setup.started = false
		m = m.startGame(m.setup.Setup())
	}
	return m
}

func (m SessionModel) startGame(setup Setup) SessionModel {
	game := NewGameModel(GameOptions{
		Prefs:     m.opts.Prefs,
		Setup:     setup,
		Store:     m.opts.Store,
		SessionID: m.opts.SessionID,
		Logger:    m.opts.Logger,
		Renderer:  m.opts.Renderer,
		Config:    m.config,
	})
	m.game = &game
	m.screen = screenGame
	return m
}

func (m SessionModel) updateGame(msg tea.Msg) SessionModel {
	next, _ := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = &game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
	case m.game.BackToSetup():
		// The unfinished game is abandoned; setup keeps the last choices.
		m.game = nil
		m.setup.width, m.setup.height = m.config.ScreenW, m.config.ScreenH
		m.screen = screenSetup
	case m.game.WantsResults():
		m = m.openResults(screenGame)
	}
	return m
}

func (m SessionModel) openResults(from screenID) SessionModel {
	m.results = NewResultsModel(m.opts.Store, m.opts.SessionID, m.opts.Renderer, m.config.ScreenW, m.config.ScreenH)
	m.resultsFrom = from
	m.screen = screenResults
	return m
}

func (m SessionModel) updateResults(msg tea.Msg) SessionModel {
	next, _ := m.results.Update(msg)
	if results, ok := next.(ResultsModel); ok {
		m.results = results
	}

	switch {
	case m.results.IsQuitting():
		m.quitting = true
	case m.results.IsGoingBack():
		m.screen = m.resultsFrom
		if m.screen == screenGame && m.game != nil {
			game := m.game.resume(m.config)
			m.game = &game
		} else {
			m.setup.width, m.setup.height = m.config.ScreenW, m.config.ScreenH
		}
	}
	return m
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenResults:
		return m.results.View()
	default:
		return m.setup.View()
	}
}

// SessionID returns the id results are recorded under.
func (m SessionModel) SessionID() string {
	return m.opts.SessionID
}

// Run starts a local session on the controlling terminal.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click a column to drop
	)

	_, err := p.Run()
	return err
}
