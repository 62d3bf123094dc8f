package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long: `Shows a list of all registered game modes. With a backend that keeps
run history, each mode also shows its run count and best run.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	stats := modeStats()

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	if stats == nil {
		fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
		fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
		for _, g := range games {
			fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Description)
		}
	} else {
		fmt.Printf("  %-*s  %5s  %5s  %s\n", maxIDLen, "ID", "Runs", "Best", "Description")
		fmt.Printf("  %-*s  %5s  %5s  %s\n", maxIDLen, "--", "----", "----", "-----------")
		for _, g := range games {
			var runs, best int
			if s, ok := stats[g.ID]; ok {
				runs, best = s.GamesCount, s.HighScore
			}
			fmt.Printf("  %-*s  %5d  %5d  %s\n", maxIDLen, g.ID, runs, best, g.Description)
		}
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a mode.")
}

// modeStats returns per-mode run stats, or nil when the backend does not
// aggregate runs or cannot be opened.
func modeStats() map[string]*storage.GameStats {
	a, err := newApp(true)
	if err != nil {
		return nil
	}
	defer a.Close()

	src, ok := a.history.(storage.StatsSource)
	if !ok {
		return nil
	}
	stats, err := src.GetAllGamesStats()
	if err != nil {
		a.logger.Warn("could not read mode stats", "error", err)
		return nil
	}
	return stats
}
