package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Load resolves the full configuration: the YAML file, then variables from
// a .env file in the working directory, then SNAKE_* environment overrides.
// The result is validated.
func Load(customPath string) (SnakeConfig, error) {
	cfg, err := LoadSnake(customPath)
	if err != nil {
		return cfg, err
	}
	if err := LoadEnvFile(".env"); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSnake loads the YAML configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultSnakeConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		candidate := DefaultSnakeConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables that are already set win. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with SNAKE_* variables found through lookup.
func ApplyEnv(cfg *SnakeConfig, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", key, err)
		}
		*dst = n
		return nil
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s must be a duration: %w", key, err)
		}
		*dst = d
		return nil
	}

	if err := num("SNAKE_BOARD_ROWS", &cfg.Board.Rows); err != nil {
		return err
	}
	if err := num("SNAKE_BOARD_COLS", &cfg.Board.Cols); err != nil {
		return err
	}
	if err := num("SNAKE_INITIAL_LENGTH", &cfg.Snake.InitialLength); err != nil {
		return err
	}
	if err := dur("SNAKE_TICK_INTERVAL", &cfg.Snake.TickInterval); err != nil {
		return err
	}
	str("SNAKE_ON_COLLISION", &cfg.Snake.OnCollision)
	if err := num("SNAKE_MAX_QUEUE", &cfg.Snake.MaxQueue); err != nil {
		return err
	}

	if v, ok := lookup("SNAKE_DIFFICULTY"); ok {
		preset, valid := ParsePreset(v)
		if !valid {
			return fmt.Errorf("config: SNAKE_DIFFICULTY: unknown preset %q", v)
		}
		ApplySnakePreset(cfg, preset)
	}

	str("SNAKE_STORAGE_BACKEND", &cfg.Storage.Backend)
	str("SNAKE_STORAGE_PATH", &cfg.Storage.Path)
	str("SNAKE_STORAGE_KEY", &cfg.Storage.Key)
	str("SNAKE_REDIS_ADDR", &cfg.Storage.Redis.Addr)
	str("SNAKE_REDIS_PASSWORD", &cfg.Storage.Redis.Password)
	if err := num("SNAKE_REDIS_DB", &cfg.Storage.Redis.DB); err != nil {
		return err
	}

	str("SNAKE_LOG_LEVEL", &cfg.Logging.Level)
	str("SNAKE_LOG_FILE", &cfg.Logging.File)
	return nil
}

// Validate rejects configurations the game cannot run with.
func (c SnakeConfig) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Snake.TickInterval <= 0 {
		return fmt.Errorf("config: tick_interval must be positive, got %s", c.Snake.TickInterval)
	}
	switch c.Snake.OnCollision {
	case CollisionReset, CollisionFreeze:
	default:
		return fmt.Errorf("config: on_collision must be %q or %q, got %q", CollisionReset, CollisionFreeze, c.Snake.OnCollision)
	}
	switch c.Difficulty.Progression.Type {
	case "score", "none":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile:
		if c.Storage.Path == "" {
			return fmt.Errorf("config: storage backend %s needs a path", c.Storage.Backend)
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return errors.New("config: storage backend redis needs redis.addr")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		return errors.New("config: storage key must not be empty")
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: logging level: %w", err)
	}
	return nil
}

// Rules converts the board and snake sections into engine rules.
func (c SnakeConfig) Rules() snake.Rules {
	return snake.Rules{
		Grid:              core.NewGrid(c.Board.Rows, c.Board.Cols),
		InitialLength:     c.Snake.InitialLength,
		FreezeOnCollision: c.Snake.OnCollision == CollisionFreeze,
		MaxQueue:          c.Snake.MaxQueue,
	}
}

// DefaultMode returns the game mode id matching on_collision.
func (c SnakeConfig) DefaultMode() string {
	if c.Snake.OnCollision == CollisionFreeze {
		return string(snake.ModeFreeze)
	}
	return string(snake.ModeClassic)
}

// YAML renders the configuration as a YAML document.
func (c SnakeConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
