package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SpawnFood picks a uniformly random cell not covered by body.
// It returns false when the snake covers the whole board.
func SpawnFood(g core.Grid, body []core.Point, rng *rand.Rand) (core.Point, bool) {
	occupied := occupancy(body)

	vacant := make([]core.Point, 0, max(g.Size()-len(occupied), 0))
	for _, cell := range g.Cells() {
		if !occupied[cell] {
			vacant = append(vacant, cell)
		}
	}

	if len(vacant) == 0 {
		return core.Point{Row: -1, Col: -1}, false
	}
	return vacant[rng.Intn(len(vacant))], true
}
