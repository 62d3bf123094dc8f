package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// app holds everything a command needs after flags and config are resolved.
type app struct {
	cfg     config.SnakeConfig
	preset  config.DifficultyPreset
	logger  *log.Logger
	scores  core.ScoreStore
	history storage.History
	closers []io.Closer
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (config.SnakeConfig, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	if flagNoSave {
		cfg.Storage.Backend = config.BackendMemory
	} else if flagBackend != "" {
		cfg.Storage.Backend = flagBackend
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	preset := cfg.Preset()
	if flagDifficulty != "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
		config.ApplySnakePreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}

// newApp resolves configuration, opens the log and the score stores.
// The TUI owns the terminal, so interactive commands log to the configured
// file; serve logs to stderr.
func newApp(logToStderr bool) (*app, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, preset: preset}
	a.logger = a.openLogger(logToStderr)

	if err := a.openStores(); err != nil {
		if !logToStderr {
			fmt.Fprintf(os.Stderr, "Warning: %v; scores will not be saved\n", err)
		}
		a.logger.Warn("falling back to in-memory scores", "backend", cfg.Storage.Backend, "error", err)
		mem := storage.NewMemory()
		a.scores = mem.HighScores(cfg.Storage.Key)
		a.history = mem
	}

	snake.SetRules(cfg.Rules())
	return a, nil
}

func (a *app) openLogger(toStderr bool) *log.Logger {
	var w io.Writer = os.Stderr
	if !toStderr {
		w = io.Discard
		if a.cfg.Logging.File != "" {
			path := config.ExpandHome(a.cfg.Logging.File)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
					a.closers = append(a.closers, f)
					w = f
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if level, err := log.ParseLevel(a.cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openStores opens the configured backend.
func (a *app) openStores() error {
	st := a.cfg.Storage
	switch st.Backend {
	case config.BackendSQLite:
		store, err := storage.Open(st.Path)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, store)
		a.scores = store.HighScores(st.Key)
		a.history = store

	case config.BackendFile:
		path := st.Path
		if filepath.Ext(path) == ".db" {
			path = filepath.Join(filepath.Dir(path), "scores.json")
		}
		fs, err := storage.OpenFile(path)
		if err != nil {
			return err
		}
		a.scores = fs.HighScores(st.Key)

	case config.BackendRedis:
		store, err := storage.OpenRedis(storage.RedisOptions{
			Addr:     st.Redis.Addr,
			Password: st.Redis.Password,
			DB:       st.Redis.DB,
		})
		if err != nil {
			return err
		}
		a.closers = append(a.closers, store)
		a.scores = store.HighScores(st.Key)
		a.history = store

	case config.BackendMemory:
		mem := storage.NewMemory()
		a.scores = mem.HighScores(st.Key)
		a.history = mem

	default:
		return fmt.Errorf("unknown storage backend %q", st.Backend)
	}

	a.logger.Debug("score storage ready", "backend", st.Backend, "key", st.Key)
	return nil
}

// runtimeConfig builds the per-game config for a terminal of the given size.
func (a *app) runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: a.cfg.Snake.TickInterval,
		Seed:         flagSeed,
		Scores:       a.scores,
		Logger:       a.logger,
		Pacer:        a.cfg.Pacer(a.preset),
	}
}

// bestScore returns the stored high score, or 0 when it cannot be read.
func (a *app) bestScore() int {
	best, err := a.scores.Load()
	if err != nil {
		a.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	return errors.Join(errs...)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
