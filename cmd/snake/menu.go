package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty,
Enter to play. Leaving a game (Esc while paused) returns to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  snake menu
  snake menu --backend file
  snake menu --db ./snake.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	width, height := terminalSize()

	for {
		menuResult, err := tui.RunMenu(width, height, a.preset, a.bestScore())
		if err != nil {
			return err
		}
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(a.history, width, height)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		a.preset = menuResult.Preset
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		a.logger.Info("game started", "game", menuResult.GameID, "difficulty", a.preset)
		result, err := tui.Run(game, a.history, a.runtimeConfig(width, height))
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !result.BackToMenu {
			return nil
		}
		width, height = result.Config.ScreenW, result.Config.ScreenH
	}
}
