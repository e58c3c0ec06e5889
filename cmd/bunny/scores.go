package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bunny-catch/internal/games/catch"
	"github.com/vovakirdan/bunny-catch/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top scores for a level, or for every level when none is given.

Examples:
  bunny scores
  bunny scores hard
  bunny scores easy --limit 20
  bunny scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show per level")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored scores of the given level")
}

func runScores(_ *cobra.Command, args []string) {
	levels := catch.Levels()
	if len(args) == 1 {
		level, err := catch.ParseLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levels = []catch.Level{level}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a level")
			os.Exit(1)
		}
		if err := store.ClearScores(levels[0].String()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %s scores.\n", levels[0])
		return
	}

	for i, level := range levels {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, level); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}

	if len(levels) > 1 {
		if best, err := store.BestOverall(); err == nil && best > 0 {
			fmt.Println()
			fmt.Printf("Best overall: %d\n", best)
		}
	}
}

func printScores(store *storage.Store, level catch.Level) error {
	scores, err := store.TopScores(level.String(), flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", level)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'bunny play --level %s' to set the first high score!\n", level)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-14s  %s\n", "Rank", "Score", "Time", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-14s  %s\n", "----", "-----", "----", "--------", "----")

	for i, entry := range scores {
		secs := int(entry.Duration.Seconds())
		fmt.Printf("  %-4d  %-6d  %-6s  %-14s  %s\n",
			i+1,
			entry.Score,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			entry.Reason,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(level.String())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	return nil
}
