// Package config provides YAML-based preferences for the connect4 game:
// player names and colors, who starts, and the disc glyph.
//
// Preferences are cosmetic. Nothing here changes the rules.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// MaxNameLength caps player names so the status line fits the board width.
const MaxNameLength = 16

// Preferences contains everything a player can configure.
type Preferences struct {
	Players PlayersConfig `yaml:"players"`
	Game    GameConfig    `yaml:"game"`

	// Source is the file the preferences were read from, or "embedded".
	Source string `yaml:"-"`
}

// PlayersConfig holds per-player settings.
type PlayersConfig struct {
	A PlayerConfig `yaml:"a"`
	B PlayerConfig `yaml:"b"`
}

// PlayerConfig defines how one player is shown.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // Palette name, #rgb / #rrggbb, or ANSI 0-255
}

// GameConfig defines match settings.
type GameConfig struct {
	Starter          string `yaml:"starter"` // "a" or "b"
	AlternateStarter bool   `yaml:"alternate_starter"`
	Disc             string `yaml:"disc"`
}

// Player returns the settings for p.
func (c PlayersConfig) Player(p connect4.Player) PlayerConfig {
	if p == connect4.PlayerB {
		return c.B
	}
	return c.A
}

// StarterPlayer returns the configured starting player.
// Validate guarantees the value parses.
func (g GameConfig) StarterPlayer() connect4.Player {
	p, err := ParseStarter(g.Starter)
	if err != nil {
		return connect4.PlayerA
	}
	return p
}

// DiscRune returns the disc glyph, or connect4.DefaultDisc when unset.
func (g GameConfig) DiscRune() rune {
	r, size := utf8.DecodeRuneInString(g.Disc)
	if size == 0 || r == utf8.RuneError {
		return connect4.DefaultDisc
	}
	return r
}

// ParseStarter parses "a"/"b" (also "1"/"2") into a player.
func ParseStarter(s string) (connect4.Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "1":
		return connect4.PlayerA, nil
	case "b", "2":
		return connect4.PlayerB, nil
	default:
		return connect4.NoPlayer, fmt.Errorf("invalid starter %q: want a or b", s)
	}
}

// StarterName is the inverse of ParseStarter.
func StarterName(p connect4.Player) string {
	if p == connect4.PlayerB {
		return "b"
	}
	return "a"
}

// Validate checks the preferences and normalizes colors to hex or ANSI form.
func (p *Preferences) Validate() error {
	for _, pc := range []*PlayerConfig{&p.Players.A, &p.Players.B} {
		pc.Name = strings.TrimSpace(pc.Name)
		if utf8.RuneCountInString(pc.Name) > MaxNameLength {
			return fmt.Errorf("config: player name %q longer than %d characters", pc.Name, MaxNameLength)
		}
		color, err := ResolveColor(pc.Color)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		pc.Color = color
	}

	if _, err := ParseStarter(p.Game.Starter); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if p.Game.Disc != "" && utf8.RuneCountInString(p.Game.Disc) != 1 {
		return fmt.Errorf("config: disc %q must be a single character", p.Game.Disc)
	}
	return nil
}
