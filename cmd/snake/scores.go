package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best recorded runs and the stored high score.

Examples:
  snake scores
  snake scores snake_freeze --limit 20
  snake scores --backend redis
  snake scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	gameID := a.cfg.DefaultMode()
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q; run 'snake list' to see available modes", gameID)
	}

	if a.history == nil {
		if flagScoresClear {
			return fmt.Errorf("the %s backend keeps no run history to clear", a.cfg.Storage.Backend)
		}
		fmt.Printf("Highscore: %d\n\n", a.bestScore())
		fmt.Printf("The %s backend keeps no run history.\n", a.cfg.Storage.Backend)
		return nil
	}

	if flagScoresClear {
		c, ok := a.history.(storage.Clearer)
		if !ok {
			return fmt.Errorf("the %s backend cannot clear run history", a.cfg.Storage.Backend)
		}
		if err := c.ClearScores(gameID); err != nil {
			return err
		}
		a.logger.Info("run history cleared", "mode", gameID)
		fmt.Printf("Cleared the run history of %s. The high score is kept.\n", gameID)
		return nil
	}

	fmt.Printf("Highscore: %d\n\n", a.bestScore())

	scores, err := a.history.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("Best runs - %s\n", gameID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
