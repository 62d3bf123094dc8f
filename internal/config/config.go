// Package config provides YAML-based configuration loading and
// difficulty management for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for the game and its surroundings.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board"`
	Snake      SnakePlayer      `yaml:"snake"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SnakeBoard defines the size of the torus grid.
type SnakeBoard struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SnakePlayer defines snake and timing parameters.
type SnakePlayer struct {
	InitialLength int           `yaml:"initial_length"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	OnCollision   string        `yaml:"on_collision"` // "reset" or "freeze"
	MaxQueue      int           `yaml:"max_queue"`    // 0 = unbounded
}

// Collision behaviors.
const (
	CollisionReset  = "reset"
	CollisionFreeze = "freeze"
)

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64       `yaml:"speed_multiplier"` // Added to speed at max difficulty
	MinInterval     time.Duration `yaml:"min_interval"`     // Fastest allowed tick
}

// StorageConfig selects where the high score and run history live.
type StorageConfig struct {
	Backend string      `yaml:"backend"` // sqlite, file, redis or memory
	Path    string      `yaml:"path"`    // sqlite database or JSON file
	Key     string      `yaml:"key"`
	Redis   RedisConfig `yaml:"redis"`
}

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty logs to stderr
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyFixed, DifficultyEasy, DifficultyNormal, DifficultyHard}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
