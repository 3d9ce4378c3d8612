package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	flagLimit   int
	flagSession string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded results",
	Long: `Display the most recent finished matches from a results database.

Results only outlive the process that played them when it was given a file
database with --db, so point this command at the same file.

Examples:
  connect4 results --db ~/.connect4/results.db
  connect4 results --db ./results.db --limit 50
  connect4 results --db ./results.db --session alice-1718000000000000000`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of results to show")
	resultsCmd.Flags().StringVar(&flagSession, "session", "", "Only show one session")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if store.InMemory() {
		fmt.Println("No results database given; results are kept in memory while a game runs.")
		fmt.Println()
		fmt.Println("Play with 'connect4 play --db <file>' and pass the same --db here.")
		return
	}

	var results []storage.Result
	if flagSession != "" {
		results, err = store.SessionResults(flagSession, flagLimit)
	} else {
		results, err = store.RecentResults(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	tally, err := store.Tally(flagSession)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving tally: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(resultsTable(results))
	fmt.Println()
	fmt.Printf("%d games: A won %d, B won %d, %d drawn\n", tally.Games, tally.WinsA, tally.WinsB, tally.Draws)
}

// resultsTable renders results as a bordered table.
func resultsTable(results []storage.Result) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, len(results))
	for i, r := range results {
		outcome := "Draw"
		if r.Outcome == storage.OutcomeWon {
			outcome = r.WinnerName() + " won"
		}
		rows[i] = []string{
			strconv.FormatInt(r.ID, 10),
			r.SessionID,
			r.PlayerA + " vs " + r.PlayerB,
			outcome,
			strconv.Itoa(r.Moves),
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Session", "Players", "Result", "Moves", "Time", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.String()
}
