package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ohflip/internal/games/ohflip"
	"github.com/vovakirdan/ohflip/internal/platform/tui"
	"github.com/vovakirdan/ohflip/internal/storage"
)

const gameID = "ohflip"

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and records",
	Long: `Display the best runs, the stored records and run statistics.

Examples:
  ohflip scores
  ohflip scores --limit 25
  ohflip scores --tui
  ohflip scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs and records")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("All runs and records cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Best Runs - Oh, Flip")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ohflip play' to set the first record!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-8s  %-8s  %s\n", "Rank", "Flips", "Height", "Perfect", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "------", "-------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-8s  %-8d  %-8s  %s\n",
			i+1,
			r.Flips,
			fmt.Sprintf("%d ft", r.MaxHeightFt),
			r.Perfects,
			fmt.Sprintf("%ds", r.DurationSecs),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println()

	records := []struct {
		label, key, unit string
	}{
		{"Best height", ohflip.KeyMaxHeightFt, " ft"},
		{"Most flips", ohflip.KeyMaxTotalFlips, ""},
	}
	for _, rec := range records {
		v, ok, err := store.Best(rec.key)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("%s: %d%s\n", rec.label, v, rec.unit)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Runs: %d, total flips: %d, average: %.1f\n", stats.RunsCount, stats.TotalFlips, stats.AvgFlips)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
