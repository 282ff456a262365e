package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vlegaspi/heartchase/internal/platform/tui"
	"github.com/vlegaspi/heartchase/internal/storage"
)

var flagPlain bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs and stats",
	Long: `Display recent Heart Chase runs with their outcome, level reached,
hearts collected and duration.

Opens an interactive table by default; --plain prints the last 10 runs
to stdout instead.

Examples:
  heartchase history
  heartchase history --plain
  heartchase history --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs to stdout instead of the interactive view")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printHistory(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store) {
	runs, err := store.RecentRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Heart Chase - Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'heartchase play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-9s  %-6s  %-7s  %-8s  %s\n", "#", "Outcome", "Level", "Hearts", "Time", "Date")
	fmt.Printf("  %-4s  %-9s  %-6s  %-7s  %-8s  %s\n", "----", "-------", "-----", "------", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		secs := entry.DurationMs / 1000
		fmt.Printf("  %-4d  %-9s  %-6d  %-7d  %d:%02d      %s\n",
			i+1, entry.Outcome, entry.LevelReached, entry.HeartsCollected,
			secs/60, secs%60, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Victories: %d  Defeats: %d\n", stats.Total, stats.Victories, stats.Defeats)
	if stats.BestTimeMs > 0 {
		best := stats.BestTimeMs / 1000
		fmt.Printf("Best victory: %d:%02d\n", best/60, best%60)
	}
}
