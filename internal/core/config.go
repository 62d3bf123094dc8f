package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay

	// Scores persists the best score across runs. Nil disables persistence.
	Scores ScoreStore
	// Logger receives diagnostics. Nil discards them.
	Logger Logger
	// Pacer adjusts the tick interval as the score grows. Nil keeps it fixed.
	Pacer Pacer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 80 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the game
	GameOver  bool // Whether the game waits for an explicit restart
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RunEnded is set on the tick a run finished; FinalScore holds its score.
	RunEnded   bool
	FinalScore int

	// NextTick is the delay the platform should wait before the next Step.
	// Zero means keep the configured interval.
	NextTick time.Duration
}

// ScoreStore persists a single best score.
// Load returns 0 and a nil error when nothing has been stored yet.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Pacer decides the tick interval for the current score.
type Pacer interface {
	TickInterval(base time.Duration, score int) time.Duration
}

// Logger is the structured logging surface games depend on.
// *github.com/charmbracelet/log.Logger satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}
