package snake

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode selects what happens when a run ends.
type Mode string

const (
	// ModeClassic resets the board on the tick the snake collides.
	ModeClassic Mode = "snake"
	// ModeFreeze shows the final board until the player restarts.
	ModeFreeze Mode = "snake_freeze"
)

// Package-level settings applied to every game created afterwards.
var (
	settingsMu sync.RWMutex
	rules      = DefaultRules()
	pacer      core.Pacer
)

// SetRules sets the board and snake parameters for new games.
func SetRules(r Rules) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	rules = r
}

// SetPacer sets the default speed progression for new games.
// A Pacer in the RuntimeConfig passed to Reset takes precedence.
func SetPacer(p core.Pacer) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	pacer = p
}

func currentSettings() (Rules, core.Pacer) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return rules, pacer
}

// Game adapts the Engine to the platform's registry.Game interface.
type Game struct {
	mode     Mode
	engine   *Engine
	pacer    core.Pacer
	interval time.Duration
	paused   bool
	screenW  int
	screenH  int
}

// New creates a classic auto-reset game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewFreeze creates a game that stops on collision until restarted.
func NewFreeze() *Game {
	return &Game{mode: ModeFreeze}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeFreeze), func() registry.Game {
		return NewFreeze()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFreeze {
		return "Snake (Game Over screen)"
	}
	return "Snake"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeFreeze {
		return "stops on collision until you press R"
	}
	return "starts over immediately on collision"
}

// Reset builds a fresh engine from the current settings.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	r, p := currentSettings()
	if cfg.Pacer != nil {
		p = cfg.Pacer
	}
	r.FreezeOnCollision = g.mode == ModeFreeze

	engine, err := NewEngine(EngineConfig{
		Rules:  r,
		Seed:   cfg.Seed,
		Store:  cfg.Scores,
		Logger: cfg.Logger,
	})
	if err != nil {
		return err
	}

	g.engine = engine
	g.pacer = p
	g.interval = cfg.TickInterval
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	return nil
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step applies the frame's actions in order, then advances one tick.
// The engine is read once, after the tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}

	for _, a := range input.Actions {
		switch a {
		case core.ActionPause:
			g.paused = !g.paused
		case core.ActionRestart:
			if g.engine.GameOver() {
				g.engine.Restart()
				g.paused = false
			}
		default:
			if d, ok := DirectionFor(a); ok && !g.paused {
				g.engine.Enqueue(d)
			}
		}
	}

	if g.paused {
		return core.StepResult{State: g.stateOf(g.engine.Snapshot())}
	}

	res := g.engine.Tick()
	snap := g.engine.Snapshot()
	out := core.StepResult{
		State:    g.stateOf(snap),
		RunEnded: res.RunEnded(),
		NextTick: g.nextTick(snap.Score),
	}
	if out.RunEnded {
		out.FinalScore = res.FinalScore
	}
	return out
}

func (g *Game) nextTick(score int) time.Duration {
	if g.pacer == nil || g.interval <= 0 {
		return g.interval
	}
	return g.pacer.TickInterval(g.interval, score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return g.stateOf(g.engine.Snapshot())
}

func (g *Game) stateOf(snap Snapshot) core.GameState {
	return core.GameState{
		Score:     snap.Score,
		HighScore: snap.HighScore,
		GameOver:  snap.State == StateGameOver,
		Paused:    g.paused,
	}
}
