package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-bomber/internal/platform/tui"
	"github.com/vovakirdan/maze-bomber/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryLimit int
	flagHistoryMaze  string
	flagHistoryClear bool
	flagHistoryID    int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded detonations",
	Long: `Show the most recent detonations recorded in the history database.
In a terminal the runs are shown in an interactive table; use --plain
to print them instead.

Examples:
  bomber history
  bomber history --plain --limit 10
  bomber history --maze maze.txt
  bomber history --maze maze.txt --clear
  bomber history --id 12`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print runs instead of opening the browser")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Number of runs to show (default from config)")
	historyCmd.Flags().StringVar(&flagHistoryMaze, "maze", "", "Only show runs of this maze")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete recorded runs (of --maze, or all)")
	historyCmd.Flags().Int64Var(&flagHistoryID, "id", 0, "Show the details of one run")
}

func runHistory(cmd *cobra.Command, args []string) {
	a := newApp()

	store, err := a.historyStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryID > 0 {
		run, err := store.RunByID(flagHistoryID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
			return
		}
		if run == nil {
			fmt.Printf("No run with ID %d.\n", flagHistoryID)
			return
		}
		fmt.Print(tui.FormatRun(*run))
		return
	}

	if flagHistoryClear {
		if err := store.ClearRuns(flagHistoryMaze); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			return
		}
		fmt.Println("History cleared.")
		return
	}

	limit := a.cfg.History.Limit
	if flagHistoryLimit > 0 {
		limit = flagHistoryLimit
	}

	var runs []storage.Run
	if flagHistoryMaze != "" {
		runs, err = store.RunsForMaze(flagHistoryMaze, limit)
	} else {
		runs, err = store.RecentRuns(limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		return
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if flagHistoryPlain || !isTTY {
		printHistory(store, runs)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(runs, a.theme(isTTY), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
		return
	}
}

func printHistory(store *storage.Store, runs []storage.Run) {
	fmt.Println("Detonation history")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bomber <input> <output> <x> <y>' to record the first one.")
		return
	}

	fmt.Print(tui.FormatRuns(runs))

	// Show maze statistics when filtering by maze
	if flagHistoryMaze == "" {
		return
	}
	stats, err := store.GetMazeStats(flagHistoryMaze)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Failures: %d  Longest chain: %d  Enemies destroyed: %d\n",
		stats.Runs, stats.Failures, stats.MaxChain, stats.TotalDestroyed)
}
