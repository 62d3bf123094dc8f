package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Default board and snake parameters.
const (
	DefaultRows          = 10
	DefaultCols          = 20
	DefaultInitialLength = 4
)

// Rules are the fixed parameters of a game.
type Rules struct {
	Grid          core.Grid
	InitialLength int
	// FreezeOnCollision keeps the collided board on screen until Restart
	// instead of resetting on the same tick.
	FreezeOnCollision bool
	// MaxQueue caps pending direction commands. Zero means unbounded.
	MaxQueue int
}

// DefaultRules returns the classic 10x20 board with a 4-segment snake.
func DefaultRules() Rules {
	return Rules{
		Grid:          core.NewGrid(DefaultRows, DefaultCols),
		InitialLength: DefaultInitialLength,
	}
}

// Validate checks that the initial snake fits the board and leaves room for food.
func (r Rules) Validate() error {
	if r.Grid.Rows < 1 || r.Grid.Cols < 1 {
		return fmt.Errorf("snake: board %dx%d must have at least one row and column", r.Grid.Rows, r.Grid.Cols)
	}
	if r.InitialLength < 1 {
		return errors.New("snake: initial length must be positive")
	}
	if r.InitialLength >= r.Grid.Cols {
		return fmt.Errorf("snake: initial length %d does not fit %d columns with room to move", r.InitialLength, r.Grid.Cols)
	}
	if r.MaxQueue < 0 {
		return errors.New("snake: max queue must not be negative")
	}
	return nil
}

// InitialSnake returns the starting body along row 0, tail at column 0.
func (r Rules) InitialSnake() []core.Point {
	body := make([]core.Point, r.InitialLength)
	for i := range body {
		body[i] = core.Point{Row: 0, Col: i}
	}
	return body
}

// State is the authoritative game state advanced by Step.
// The head is the last element of Snake and the tail the first.
type State struct {
	Snake   []core.Point
	Queue   Queue
	Food    core.Point
	Lost    bool
	Heading Direction // direction of the last actual move

	baseLen int
}

// NewState creates the state a game starts with: the initial snake heading
// right and food at the center of the board.
func NewState(r Rules, rng *rand.Rand) State {
	s := State{
		Snake:   r.InitialSnake(),
		Queue:   NewQueue(DirRight, r.MaxQueue),
		Heading: DirRight,
		baseLen: r.InitialLength,
	}
	s.Food = r.Grid.Center()
	if occupancy(s.Snake)[s.Food] {
		s.Food, _ = SpawnFood(r.Grid, s.Snake, rng)
	}
	return s
}

// resetState returns the state after a finished run: the initial snake,
// a stopped queue and freshly spawned food.
func resetState(r Rules, rng *rand.Rand) State {
	s := State{
		Snake:   r.InitialSnake(),
		Queue:   NewQueue(DirStop, r.MaxQueue),
		Heading: DirRight,
		baseLen: r.InitialLength,
	}
	s.Food, _ = SpawnFood(r.Grid, s.Snake, rng)
	return s
}

// Head returns the newest segment.
func (s State) Head() core.Point {
	return s.Snake[len(s.Snake)-1]
}

// Score is the number of segments grown beyond the initial length.
func (s State) Score() int {
	return len(s.Snake) - s.baseLen
}

func (s State) clone() State {
	out := s
	out.Snake = append([]core.Point(nil), s.Snake...)
	out.Queue = s.Queue.clone()
	return out
}

// occupancy returns the set of cells covered by body.
func occupancy(body []core.Point) map[core.Point]bool {
	set := make(map[core.Point]bool, len(body))
	for _, p := range body {
		set[p] = true
	}
	return set
}
