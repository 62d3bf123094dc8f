package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// EngineConfig configures an Engine.
type EngineConfig struct {
	Rules  Rules
	Seed   int64
	Store  core.ScoreStore // optional
	Logger core.Logger     // optional
}

// Engine owns a game state and advances it one tick at a time.
//
// Tick and Enqueue may be called from different goroutines; all state is
// guarded by one mutex. The best score is loaded from the store once and
// written back whenever a run ends above it.
type Engine struct {
	mu        sync.Mutex
	rules     Rules
	state     State
	rng       *rand.Rand
	store     core.ScoreStore
	logger    core.Logger
	highScore int
	ticks     uint64
	runs      int
}

// NewEngine validates the rules, loads the high score and creates the
// initial state.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		rules:  cfg.Rules,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		store:  cfg.Store,
		logger: logger,
	}
	e.highScore = e.loadHighScore()
	e.state = NewState(e.rules, e.rng)
	return e, nil
}

func (e *Engine) loadHighScore() int {
	if e.store == nil {
		return 0
	}
	score, err := e.store.Load()
	if err != nil {
		e.logger.Warn("could not load high score, starting from 0", "error", err)
		return 0
	}
	if score < 0 {
		e.logger.Warn("ignoring negative stored high score", "score", score)
		return 0
	}
	return score
}

// Tick advances the game by one step.
func (e *Engine) Tick() Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ticks++
	next, res := Step(e.rules, e.state, e.rng)
	e.state = next

	if res.RunEnded() {
		e.runs++
		e.logger.Debug("run ended", "event", res.Event, "score", res.FinalScore, "tick", e.ticks)
		e.recordScore(res.FinalScore)
	}
	return res
}

// recordScore persists score when it beats the best known score.
// Store failures are logged; the in-memory best still advances.
func (e *Engine) recordScore(score int) {
	if score <= e.highScore {
		return
	}
	e.highScore = score
	if e.store == nil {
		return
	}
	if err := e.store.Save(score); err != nil {
		e.logger.Warn("could not save high score", "score", score, "error", err)
		return
	}
	e.logger.Info("new high score", "score", score)
}

// Enqueue queues a direction command and reports whether it was accepted.
// Commands are ignored while a frozen game waits for Restart.
func (e *Engine) Enqueue(d Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Lost {
		return false
	}
	return e.state.Queue.Enqueue(d, e.state.Heading)
}

// Restart starts a new run from the initial snake with a stopped queue.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = resetState(e.rules, e.rng)
}

// GameOver reports whether a frozen run is waiting for Restart.
func (e *Engine) GameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Lost
}

// HighScore returns the best score seen by this engine.
func (e *Engine) HighScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highScore
}

// Rules returns the rules the engine was created with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// SetState replaces the current state. The snake must not be empty.
func (e *Engine) SetState(st State) error {
	if len(st.Snake) == 0 {
		return errors.New("snake: state has an empty snake")
	}
	for _, p := range st.Snake {
		if !e.rules.Grid.Contains(p) {
			return fmt.Errorf("snake: segment %v is off the %dx%d board", p, e.rules.Grid.Rows, e.rules.Grid.Cols)
		}
	}
	if !e.rules.Grid.Contains(st.Food) {
		return fmt.Errorf("snake: food %v is off the %dx%d board", st.Food, e.rules.Grid.Rows, e.rules.Grid.Cols)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	st = st.clone()
	st.baseLen = e.rules.InitialLength
	if st.Queue.limit == 0 {
		st.Queue.limit = e.rules.MaxQueue
	}
	e.state = st
	return nil
}
