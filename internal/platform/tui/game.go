package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Prefs     config.Preferences
	Setup     Setup
	Store     *storage.Store // nil runs without a results log
	SessionID string
	Logger    *log.Logger
	Renderer  *lipgloss.Renderer
	Config    core.RuntimeConfig
	Now       func() time.Time
}

// GameModel runs hot-seat matches: it owns the engine state, turns input into
// events and records each finished game once.
type GameModel struct {
	state  connect4.State
	cursor int
	view   connect4.View
	setup  Setup

	screen *core.Screen
	layout connect4.Layout
	theme  Theme
	keys   *KeyMapper
	help   help.Model

	alternate bool
	store     *storage.Store
	sessionID string
	logger    *log.Logger
	now       func() time.Time
	started   time.Time
	recorded  bool
	tally     storage.Tally

	quitting    bool
	backToSetup bool
	wantResults bool
}

// NewGameModel starts the first game of a match.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !opts.Setup.Starter.Valid() {
		opts.Setup.Starter = connect4.PlayerA
	}

	// Reserve the bottom line for the help bar.
	h := core.Max(opts.Config.ScreenH-1, 0)

	m := GameModel{
		state:  connect4.NewState(opts.Setup.Starter),
		cursor: connect4.Columns / 2,
		view: connect4.View{
			Names:      [2]string{opts.Setup.Players.A.Name, opts.Setup.Players.B.Name},
			ShowCursor: true,
			Disc:       opts.Prefs.Game.DiscRune(),
		},
		setup:     opts.Setup,
		screen:    core.NewScreen(opts.Config.ScreenW, h),
		layout:    connect4.NewLayout(opts.Config.ScreenW, h),
		theme:     NewTheme(opts.Renderer, opts.Setup.Players),
		keys:      NewKeyMapper(),
		help:      help.New(),
		alternate: opts.Prefs.Game.AlternateStarter,
		store:     opts.Store,
		sessionID: opts.SessionID,
		logger:    opts.Logger,
		now:       opts.Now,
	}
	m.help.Width = opts.Config.ScreenW
	m.started = m.now()
	m.refreshTally()
	m.logger.Debug("game started", "starter", m.state.Starter())
	return m
}

// Init initializes the game model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.MapKey(msg)), nil

	case tea.MouseMsg:
		return m.apply(m.keys.MapMouse(msg, m.layout)), nil

	case tea.WindowSizeMsg:
		h := core.Max(msg.Height-1, 0)
		m.screen.Resize(msg.Width, h)
		m.layout = connect4.NewLayout(msg.Width, h)
		m.help.Width = msg.Width
	}
	return m, nil
}

// apply performs one intent.
func (m GameModel) apply(in core.Intent) GameModel {
	switch in.Action {
	case core.ActionQuit:
		m.quitting = true

	case core.ActionBack:
		m.backToSetup = true

	case core.ActionResults:
		m.wantResults = true

	case core.ActionLeft:
		m.cursor = core.Wrap(m.cursor-1, connect4.Columns)

	case core.ActionRight:
		m.cursor = core.Wrap(m.cursor+1, connect4.Columns)

	case core.ActionRestart:
		if m.state.IsTerminal() {
			m = m.rematch()
		}

	case core.ActionDrop:
		switch {
		case m.state.IsTerminal() && in.Column < 0:
			// Enter on the win/draw overlay.
			m = m.rematch()
		case in.Column >= 0:
			m.cursor = in.Column
			m = m.dispatch(connect4.MoveEvent{Column: in.Column})
		default:
			m = m.dispatch(connect4.MoveEvent{Column: m.cursor})
		}
	}
	return m
}

// dispatch feeds an event to the engine and records the game if it ended.
func (m GameModel) dispatch(ev connect4.Event) GameModel {
	prev := m.state
	m.state = connect4.Reduce(m.state, ev)

	if mv, ok := ev.(connect4.MoveEvent); ok {
		if m.state == prev {
			m.logger.Debug("move ignored", "column", mv.Column+1, "outcome", prev.Outcome().Status)
		} else {
			m.logger.Debug("move", "player", prev.CurrentPlayer(), "column", mv.Column+1, "moves", m.state.Moves())
		}
	}

	if !prev.IsTerminal() && m.state.IsTerminal() {
		m = m.record()
	}
	return m
}

// rematch starts the next game, handing the first move to the other player
// when alternation is on.
func (m GameModel) rematch() GameModel {
	starter := m.state.Starter()
	if m.alternate {
		starter = starter.Other()
	}
	m = m.dispatch(connect4.ResetEvent{Starter: starter})
	m.recorded = false
	m.started = m.now()
	m.cursor = connect4.Columns / 2
	m.logger.Debug("rematch", "starter", starter)
	return m
}

// record saves the finished game to the results log, once per game.
func (m GameModel) record() GameModel {
	if m.recorded {
		return m
	}
	m.recorded = true

	o := m.state.Outcome()
	m.logger.Info("game over", "outcome", o.Status, "winner", o.Winner, "moves", m.state.Moves())

	if m.store == nil {
		m.tally = bumpTally(m.tally, o)
		return m
	}

	r := resultFor(m.state, m.setup.Players, m.sessionID, m.now().Sub(m.started))
	if _, err := m.store.SaveResult(r); err != nil {
		m.logger.Warn("could not save result", "error", err)
		m.tally = bumpTally(m.tally, o)
		return m
	}
	m.refreshTally()
	return m
}

func (m *GameModel) refreshTally() {
	if m.store == nil {
		return
	}
	t, err := m.store.Tally(m.sessionID)
	if err != nil {
		m.logger.Warn("could not read tally", "error", err)
		return
	}
	m.tally = t
}

func bumpTally(t storage.Tally, o connect4.Outcome) storage.Tally {
	t.Games++
	switch {
	case o.Status == connect4.StatusDrawn:
		t.Draws++
	case o.Winner == connect4.PlayerA:
		t.WinsA++
	case o.Winner == connect4.PlayerB:
		t.WinsB++
	}
	return t
}

// resultFor converts a finished state into a results row.
func resultFor(s connect4.State, players config.PlayersConfig, sessionID string, d time.Duration) storage.Result {
	o := s.Outcome()
	r := storage.Result{
		SessionID: sessionID,
		Outcome:   storage.OutcomeDrawn,
		Starter:   config.StarterName(s.Starter()),
		Moves:     s.Moves(),
		PlayerA:   players.A.Name,
		PlayerB:   players.B.Name,
		Duration:  int(d.Seconds()),
	}
	if o.Status == connect4.StatusWon {
		r.Outcome = storage.OutcomeWon
		r.Winner = config.StarterName(o.Winner)
	}
	return r
}

// tallyLine formats the session score shown under the status line.
func (m GameModel) tallyLine() string {
	if m.tally.Games == 0 {
		return ""
	}
	return fmt.Sprintf("%s %d : %d %s   draws %d",
		m.view.Name(connect4.PlayerA), m.tally.WinsA,
		m.tally.WinsB, m.view.Name(connect4.PlayerB),
		m.tally.Draws)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	v := m.view
	v.Cursor = m.cursor
	v.Tally = m.tallyLine()
	connect4.Render(m.screen, m.state, v)

	helpView := m.help.View(gameHelp{keys: m.keys.Keys(), over: m.state.IsTerminal()})
	return m.theme.RenderScreen(m.screen) + "\n" + centerText(helpView, m.screen.Width())
}

// State returns the current engine state.
func (m GameModel) State() connect4.State {
	return m.state
}

// Cursor returns the column under the cursor.
func (m GameModel) Cursor() int {
	return m.cursor
}

// Tally returns the session score.
func (m GameModel) Tally() storage.Tally {
	return m.tally
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToSetup returns true if user requested the setup screen.
func (m GameModel) BackToSetup() bool {
	return m.backToSetup
}

// WantsResults returns true if user requested the results table.
func (m GameModel) WantsResults() bool {
	return m.wantResults
}

// resume clears one-shot navigation flags when the session returns to the game.
func (m GameModel) resume(cfg core.RuntimeConfig) GameModel {
	m.wantResults = false
	m.refreshTally()
	h := core.Max(cfg.ScreenH-1, 0)
	m.screen.Resize(cfg.ScreenW, h)
	m.layout = connect4.NewLayout(cfg.ScreenW, h)
	m.help.Width = cfg.ScreenW
	return m
}
