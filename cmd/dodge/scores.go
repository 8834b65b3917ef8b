package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/endless-dodge/internal/platform/tui"
	"github.com/vovakirdan/endless-dodge/internal/storage"
)

var (
	flagTop         int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top recorded runs with survival time and dodge counts.

Examples:
  dodge scores
  dodge scores --top 25
  dodge scores -i          # interactive, scrollable view
  dodge scores --clear     # wipe the run history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "How many runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the entire run history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Endless Dodge - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "Rank", "Score", "Survived", "Dodged", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "----", "-----", "--------", "------", "----")

	for i, entry := range runs {
		fmt.Printf("  %-4d  %-10d  %-9.1fs  %-8d  %s\n",
			i+1, entry.Score, entry.Duration, entry.Dodged,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.Stats(); statsErr == nil && stats.RunCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.0f\n", stats.RunCount, stats.BestScore, stats.AvgScore)
	}
}
