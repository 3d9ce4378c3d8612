package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	flagStarter string
	flagQuick   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a hot-seat match in this terminal.

Controls:
  Left/Right, H/L  - Move the column cursor
  1-7              - Drop a disc straight into a column
  Enter/Space      - Drop at the cursor
  Mouse click      - Drop into the clicked column
  Enter/R          - Rematch (after a win or draw)
  Tab              - Results table
  Esc              - Back to setup
  Q/Ctrl+C         - Quit

Examples:
  connect4 play
  connect4 play --starter b
  connect4 play --quick
  connect4 play --config ./my-prefs.yaml
  connect4 play --db ~/.connect4/results.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStarter, "starter", "", "Who moves first: a or b (default from preferences)")
	playCmd.Flags().BoolVar(&flagQuick, "quick", false, "Skip the setup screen")
}

func runPlay(cmd *cobra.Command, args []string) {
	prefs, err := loadPrefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagStarter != "" {
		starter, err := config.ParseStarter(flagStarter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		prefs.Game.Starter = config.StarterName(starter)
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Get terminal size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open results log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.SessionOptions{
		Prefs:     prefs,
		Store:     store,
		SessionID: tui.NewSessionID("local"),
		Logger:    logger,
		Config:    cfg,
		SkipSetup: flagQuick,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
