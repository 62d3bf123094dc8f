package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// resizer is implemented by games that can follow the terminal size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model that drives one game.
// It schedules ticks, feeds the collected key presses to Step, and records
// finished runs in the score history.
type GameModel struct {
	loopID     uint64
	game       registry.Game
	screen     *core.Screen
	history    storage.History
	config     core.RuntimeConfig
	logger     core.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	interval   time.Duration
	keyMapper  *KeyMapper
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel resets game with cfg and wraps it in a model.
// A zero Seed is replaced with the current time; history may be nil.
func NewGameModel(game registry.Game, history storage.History, cfg core.RuntimeConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, fmt.Errorf("cannot start %s: %w", game.ID(), err)
	}

	return GameModel{
		loopID:     nextLoopID(),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    history,
		config:     cfg,
		logger:     cfg.Logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		interval:   cfg.TickInterval,
		keyMapper:  NewKeyMapper(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.loopID, m.interval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if r, ok := m.game.(resizer); ok {
			r.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case TickMsg:
		if msg.ID != m.loopID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the game one step and schedules the next tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// The buffer is reused for the next frame; the game gets its own copy.
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.RunEnded {
		m.recordRun(result.FinalScore)
	}
	if result.NextTick > 0 {
		m.interval = result.NextTick
	}

	return m, tickCmd(m.loopID, m.interval)
}

// recordRun appends a finished run to the history. Failures are logged
// and the game continues.
func (m GameModel) recordRun(score int) {
	if m.history == nil || score <= 0 {
		return
	}
	if err := m.history.RecordRun(m.game.ID(), score); err != nil && m.logger != nil {
		m.logger.Warn("could not record run", "game", m.game.ID(), "score", score, "error", err)
	}
}

// saveScreenshot saves the current screen to ~/.snake/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.logger != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state observed on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Config returns the runtime config, including size changes.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a standalone game ended.
type RunResult struct {
	Config     core.RuntimeConfig
	BackToMenu bool
}

// Run plays game in its own Bubble Tea program until the player quits or
// asks for the menu.
func Run(game registry.Game, history storage.History, cfg core.RuntimeConfig) (RunResult, error) {
	model, err := NewGameModel(game, history, cfg)
	if err != nil {
		return RunResult{Config: cfg}, err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return RunResult{Config: cfg}, nil
	}
	return RunResult{Config: m.Config(), BackToMenu: m.BackToMenu()}, nil
}
