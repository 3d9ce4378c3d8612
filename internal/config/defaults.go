package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultYAML []byte

// Default returns the built-in preferences, matching defaults/connect4.yaml.
func Default() Preferences {
	return Preferences{
		Players: PlayersConfig{
			A: PlayerConfig{Name: "Player 1", Color: "#ff0000"},
			B: PlayerConfig{Name: "Player 2", Color: "#ffff00"},
		},
		Game: GameConfig{
			Starter:          "a",
			AlternateStarter: true,
			Disc:             "●",
		},
		Source: "default",
	}
}

// DefaultYAML returns the embedded default preferences file.
func DefaultYAML() []byte {
	return defaultYAML
}
