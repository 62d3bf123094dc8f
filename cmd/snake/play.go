package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode, the config's on_collision setting picks
snake (reset immediately) or snake_freeze (wait for R).

Controls:
  Arrows/h j k l  - Steer (turns queue up, reversing is ignored)
  S/Space         - Stop in place
  P               - Pause
  R               - Restart (snake_freeze, after game over)
  Esc/B           - Leave (while paused or after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  fixed  - Constant speed (default, one step every 80ms)
  easy   - Start at base speed, speeds up with score
  normal - Start at 30% difficulty, speeds up with score
  hard   - Start at 70% difficulty, speeds up with score

Examples:
  snake play
  snake play snake_freeze
  snake play --difficulty hard
  snake play --seed 42 --no-save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := newApp(false)
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

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	a.logger.Info("game started", "game", gameID, "difficulty", a.preset, "seed", flagSeed)

	if _, err := tui.Run(game, a.history, a.runtimeConfig(width, height)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
