package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective preferences",
	Long: `Print the preferences a game would start with, after the search order
and CONNECT4_* environment overrides are applied.

Search order: --config, ~/.connect4/config.yaml, ./configs/connect4.yaml,
then the built-in defaults.

Examples:
  connect4 config
  connect4 config > ~/.connect4/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	prefs, err := loadPrefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(prefs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", prefs.Source)
	os.Stdout.Write(data)
}
