package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction is a command in the direction queue.
// DirStop holds the snake in place for one tick.
type Direction int

const (
	DirStop Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// IsMove reports whether d moves the snake.
func (d Direction) IsMove() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the row and column offsets of one step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirStop has no reverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirStop
	}
}

func (d Direction) String() string {
	switch d {
	case DirStop:
		return "stop"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a platform action to a direction command.
// The second result is false for actions that do not steer.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionStop:
		return DirStop, true
	default:
		return DirStop, false
	}
}

// move returns the cell one step from p in direction d on grid g.
func move(g core.Grid, p core.Point, d Direction) core.Point {
	dRow, dCol := d.Delta()
	return g.Step(p, dRow, dCol)
}
