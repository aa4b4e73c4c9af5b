package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/games/ballrun"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagBest  bool
	flagStats bool
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Show recorded runs. By default an interactive browser opens; use
--plain for a printed table.

Examples:
  runner runs
  runner runs --plain --limit 5
  runner runs --plain --best
  runner runs --stats
  runner runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of the interactive browser")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagBest, "best", false, "Order by score instead of recency with --plain")
	runsCmd.Flags().BoolVar(&flagStats, "stats", false, "Print aggregated journal statistics")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run and its events")
	runsCmd.MarkFlagsMutuallyExclusive("stats", "clear")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(ballrun.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Run journal cleared.")
		return
	case flagStats:
		stats, err := store.GetGameStats(ballrun.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println(statsTable(stats))
		return
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunJournal(store, ballrun.GameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running journal: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunRecord
	if flagBest {
		runs, err = store.TopRuns(ballrun.GameID, flagLimit)
	} else {
		runs, err = store.RecentRuns(ballrun.GameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to record the first run!")
		return
	}

	fmt.Println(runsTable(runs))

	if best, err := store.HighScore(ballrun.GameID); err == nil {
		fmt.Printf("\nBest: %d\n", best)
	}
}

// runsTable formats runs as a bordered table.
func runsTable(runs []storage.RunRecord) string {
	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.0f", r.Distance),
			fmt.Sprintf("%d", r.Collected),
			fmt.Sprintf("%d+%d", r.Jumps, r.DoubleJumps),
			fmt.Sprintf("%d", r.EventCount),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Run", "Seed", "Score", "Distance", "Gems", "Jumps", "Events", "Date").
		Rows(rows...).
		String()
}

// statsTable formats aggregated journal statistics as a two-column table.
func statsTable(stats *storage.GameStats) string {
	last := "never"
	if !stats.LastPlayed.IsZero() {
		last = stats.LastPlayed.Format("2006-01-02 15:04")
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Rows(
			[]string{"Runs", fmt.Sprintf("%d", stats.RunsCount)},
			[]string{"Best", fmt.Sprintf("%d", stats.HighScore)},
			[]string{"Average", fmt.Sprintf("%.1f", stats.AvgScore)},
			[]string{"Distance", fmt.Sprintf("%.0f", stats.TotalDistance)},
			[]string{"Gems", fmt.Sprintf("%d", stats.TotalCollect)},
			[]string{"Last played", last},
		).
		String()
}
