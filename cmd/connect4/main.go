// connect4 is a two-player vertical four-in-a-row game for the terminal.
//
// Usage:
//
//	connect4 play            - Play a hot-seat match in this terminal
//	connect4 serve           - Start SSH server; every session is its own match
//	connect4 results         - Show finished matches from a results database
//	connect4 config          - Print the effective preferences
//
// Global flags:
//
//	--db <path>         - Results database (default: in memory, gone on exit)
//	--config <path>     - Preferences file
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string

	// Settings read from CONNECT4_* variables.
	envCfg config.Env
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - drop discs, connect four, in your terminal",
	Long: `Connect Four is a two-player game played at one keyboard.
Players take turns dropping discs into a 7x6 grid; the first to line up
four in a row, column or diagonal wins.

Available commands:
  play     - Play a match in this terminal
  serve    - Start SSH server so others can play remotely
  results  - Show recorded results
  config   - Print the effective preferences

Examples:
  connect4 play
  connect4 play --starter b
  connect4 serve --ssh :2222
  connect4 results --db ~/.connect4/results.db`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryPath, "Path to results database (:memory: keeps nothing after exit)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to preferences YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags the user did not set from CONNECT4_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	envCfg = e

	flags := cmd.Flags()
	if e.DB != "" && !flags.Changed("db") {
		flagDBPath = e.DB
	}
	if e.Config != "" && !flags.Changed("config") {
		flagConfig = e.Config
	}
	if e.LogLevel != "" && !flags.Changed("log-level") {
		flagLogLevel = e.LogLevel
	}
	if e.SSHAddr != "" && flags.Lookup("ssh") != nil && !flags.Changed("ssh") {
		flagSSHAddr = e.SSHAddr
	}
	return nil
}

// loadPrefs loads the preferences file and applies environment overrides.
func loadPrefs() (config.Preferences, error) {
	prefs, err := config.Load(flagConfig)
	if err != nil {
		return prefs, err
	}
	if err := envCfg.Apply(&prefs); err != nil {
		return prefs, fmt.Errorf("environment: %w", err)
	}
	return prefs, nil
}

// newLogger returns the logger for the local game. The TUI owns the terminal,
// so logs only go to --log-file; without one they are discarded.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
		Level:           level,
	})
	return logger, f, nil
}
