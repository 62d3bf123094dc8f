// snake is a terminal snake game with a persisted high score.
//
// Usage:
//
//	snake play [mode]    - Play a mode directly (default from config)
//	snake menu           - Pick mode and difficulty interactively
//	snake scores [mode]  - Show the best runs for a mode
//	snake list           - List available modes
//	snake config         - Print the effective configuration
//	snake serve          - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>       - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--difficulty <name>   - easy, normal, hard or fixed
//	--backend <name>      - sqlite, file, redis or memory
//	--db <path>           - sqlite database or JSON file path
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDifficulty string
	flagBackend    string
	flagDBPath     string
	flagLogLevel   string
	flagNoSave     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game on a wrapping board",
	Long: `Snake runs on a 10x20 board whose edges wrap around. Eat food to grow,
avoid your own tail, and beat the stored high score.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  scores   - View the best runs
  list     - Show all modes
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play snake_freeze --difficulty hard
  snake menu --backend file --db ./scores.json
  snake serve --ssh :2222 --backend redis`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagBackend, "backend", "", "Score storage: sqlite, file, redis, memory")
	pf.StringVar(&flagDBPath, "db", "", "Path to the sqlite database or JSON score file")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagNoSave, "no-save", false, "Keep scores in memory only")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
