package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. Empty fields are unset and
// leave flags and files alone.
type Env struct {
	DB           string `env:"CONNECT4_DB"`
	Config       string `env:"CONNECT4_CONFIG"`
	SSHAddr      string `env:"CONNECT4_SSH_ADDR"`
	LogLevel     string `env:"CONNECT4_LOG_LEVEL"`
	PlayerAColor string `env:"CONNECT4_PLAYER_A_COLOR"`
	PlayerBColor string `env:"CONNECT4_PLAYER_B_COLOR"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// Apply overrides the player colors of p with any set in the environment,
// then re-validates.
func (e Env) Apply(p *Preferences) error {
	if e.PlayerAColor != "" {
		p.Players.A.Color = e.PlayerAColor
	}
	if e.PlayerBColor != "" {
		p.Players.B.Color = e.PlayerBColor
	}
	return p.Validate()
}
