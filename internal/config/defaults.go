package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Rows: 10,
			Cols: 20,
		},
		Snake: SnakePlayer{
			InitialLength: 4,
			TickInterval:  80 * time.Millisecond,
			OnCollision:   CollisionReset,
			MaxQueue:      0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				MinInterval:     40 * time.Millisecond,
			},
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    "~/.snake/snake.db",
			Key:     "snake_highscore",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
