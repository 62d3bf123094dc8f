package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateStopped  GameStateType = "stopped"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of the engine state for renderers,
// determinism tests and replays.
type Snapshot struct {
	Tick      uint64
	Runs      int
	Rows      int
	Cols      int
	Snake     []core.Point // tail first, head last
	Food      core.Point
	Heading   Direction
	Queue     []Direction
	Score     int
	HighScore int
	State     GameStateType

	occupied map[core.Point]bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	state := StatePlaying
	switch {
	case st.Lost:
		state = StateGameOver
	case st.Queue.Current() == DirStop:
		state = StateStopped
	}

	snake := append([]core.Point(nil), st.Snake...)
	return Snapshot{
		Tick:      e.ticks,
		Runs:      e.runs,
		Rows:      e.rules.Grid.Rows,
		Cols:      e.rules.Grid.Cols,
		Snake:     snake,
		Food:      st.Food,
		Heading:   st.Heading,
		Queue:     st.Queue.Items(),
		Score:     st.Score(),
		HighScore: e.highScore,
		State:     state,
		occupied:  occupancy(snake),
	}
}

// Head returns the newest segment.
func (s Snapshot) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{Row: -1, Col: -1}
	}
	return s.Snake[len(s.Snake)-1]
}

// Active reports whether the snake covers cell (row, col).
func (s Snapshot) Active(row, col int) bool {
	p := core.Point{Row: row, Col: col}
	if s.occupied != nil {
		return s.occupied[p]
	}
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// HasFood reports whether the food sits on cell (row, col).
func (s Snapshot) HasFood(row, col int) bool {
	return s.Food == core.Point{Row: row, Col: col}
}
