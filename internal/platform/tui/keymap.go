package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Column  key.Binding
	Rematch key.Binding
	Results key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "drop"),
		),
		Column: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "drop in column"),
		),
		Rematch: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("enter/r", "rematch"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "setup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// gameHelp switches the help bar between playing and game-over bindings.
type gameHelp struct {
	keys KeyMap
	over bool
}

// ShortHelp returns key bindings for the short help view.
func (h gameHelp) ShortHelp() []key.Binding {
	if h.over {
		return []key.Binding{h.keys.Rematch, h.keys.Results, h.keys.Back, h.keys.Quit}
	}
	return []key.Binding{h.keys.Left, h.keys.Right, h.keys.Drop, h.keys.Column, h.keys.Results, h.keys.Quit}
}

// FullHelp returns key bindings for the full help view.
func (h gameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.Left, h.keys.Right, h.keys.Drop, h.keys.Column},
		{h.keys.Rematch, h.keys.Results, h.keys.Back, h.keys.Quit},
	}
}

// KeyMapper translates Bubble Tea input messages to player intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an intent.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Do(core.ActionQuit)
	case key.Matches(msg, km.keys.Left):
		return core.Do(core.ActionLeft)
	case key.Matches(msg, km.keys.Right):
		return core.Do(core.ActionRight)
	case key.Matches(msg, km.keys.Column):
		return core.DropAt(int(msg.String()[0] - '1'))
	case key.Matches(msg, km.keys.Drop):
		return core.Do(core.ActionDrop)
	case key.Matches(msg, km.keys.Rematch):
		return core.Do(core.ActionRestart)
	case key.Matches(msg, km.keys.Results):
		return core.Do(core.ActionResults)
	case key.Matches(msg, km.keys.Back):
		return core.Do(core.ActionBack)
	}
	return core.NoIntent
}

// MapMouse translates a left click on the board into a drop in the column
// under the pointer.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, l connect4.Layout) core.Intent {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.NoIntent
	}
	col, ok := l.ColumnAt(msg.X, msg.Y)
	if !ok {
		return core.NoIntent
	}
	return core.DropAt(col)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionResults
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionResults
	}

	return MenuActionNone
}
