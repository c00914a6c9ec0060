package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagHistoryLimit int
	flagRecent       bool
	flagHistorySeed  string
	flagInteractive  bool
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display recorded simulation runs, longest first.

Examples:
  life history
  life history --recent --limit 20
  life history --seed 42
  life history --interactive
  life history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the longest")
	historyCmd.Flags().StringVar(&flagHistorySeed, "seed", "", "Show only runs generated from this seed")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a table view")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history view: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "Longest runs"
	var runs []storage.Run
	switch {
	case flagHistorySeed != "":
		seed, perr := strconv.ParseInt(flagHistorySeed, 10, 64)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid seed %q\n", flagHistorySeed)
			os.Exit(1)
		}
		title = fmt.Sprintf("Runs for seed %d", seed)
		runs, err = store.RunsForSeed(seed)
	case flagRecent:
		title = "Recent runs"
		runs, err = store.RecentRuns(flagHistoryLimit)
	default:
		runs, err = store.TopRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life run' or 'life simulate' to record one.")
		return
	}

	header := []string{"Rank", "Steps", "Seed", "Size", "P", "Rule", "Alive", "Date"}
	widths := []int{5, 8, 12, 9, 5, 10, 7, 12}
	printRow(header, widths)
	dashes := make([]string, len(header))
	for i, h := range header {
		dashes[i] = strings.Repeat("-", len(h))
	}
	printRow(dashes, widths)
	for _, row := range tui.HistoryRows(runs) {
		printRow(row, widths)
	}

	fmt.Println()
	if sum, err := store.Summary(); err == nil && sum.Runs > 0 {
		fmt.Printf("Runs: %d  Average: %.1f steps\n", sum.Runs, sum.AvgSteps)
	}
	if best, err := store.LongestRun(); err == nil && best != nil {
		fmt.Println(describeBest(*best))
	}
}

// describeBest formats the longest recorded run.
func describeBest(r storage.Run) string {
	return fmt.Sprintf("Best: %d steps (seed %s, %dx%d, p %.2f, %s)",
		r.Steps, r.Seed, r.Width, r.Height, r.Probability, r.Rule)
}

func printRow(cells []string, widths []int) {
	var sb strings.Builder
	sb.WriteString(" ")
	for i, c := range cells {
		fmt.Fprintf(&sb, " %-*s", widths[i], c)
	}
	fmt.Println(strings.TrimRight(sb.String(), " "))
}
