package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// stateWith builds a state on rules r with the given body (tail first),
// a single queued direction and food placement.
func stateWith(r Rules, body []core.Point, dir Direction, food core.Point) State {
	st := NewState(r, rand.New(rand.NewSource(1)))
	st.Snake = append([]core.Point(nil), body...)
	st.Queue = NewQueue(dir, r.MaxQueue)
	st.Heading = DirRight
	if dir.IsMove() {
		st.Heading = dir
	}
	st.Food = food
	return st
}

func pts(coords ...int) []core.Point {
	out := make([]core.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, core.Point{Row: coords[i], Col: coords[i+1]})
	}
	return out
}

func equalPoints(a, b []core.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStepExampleScenario(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(7))
	st := NewState(r, rng)

	if st.Food != (core.Point{Row: 5, Col: 10}) {
		t.Fatalf("initial food = %v, expected (5,10)", st.Food)
	}

	next, res := Step(r, st, rng)

	if res.Event != EventMoved {
		t.Errorf("event = %v, expected moved", res.Event)
	}
	want := pts(0, 1, 0, 2, 0, 3, 0, 4)
	if !equalPoints(next.Snake, want) {
		t.Errorf("snake = %v, expected %v", next.Snake, want)
	}
	if next.Food != st.Food {
		t.Errorf("food moved from %v to %v", st.Food, next.Food)
	}
	if next.Score() != 0 {
		t.Errorf("score = %d, expected 0", next.Score())
	}
	if !equalPoints(st.Snake, pts(0, 0, 0, 1, 0, 2, 0, 3)) {
		t.Errorf("Step modified its input state: %v", st.Snake)
	}
}

func TestStepWraparound(t *testing.T) {
	r := DefaultRules()
	food := core.Point{Row: 7, Col: 10}

	tests := []struct {
		name     string
		body     []core.Point
		dir      Direction
		wantHead core.Point
	}{
		{"right edge", pts(2, 16, 2, 17, 2, 18, 2, 19), DirRight, core.Point{Row: 2, Col: 0}},
		{"left edge", pts(2, 3, 2, 2, 2, 1, 2, 0), DirLeft, core.Point{Row: 2, Col: 19}},
		{"top edge", pts(3, 5, 2, 5, 1, 5, 0, 5), DirUp, core.Point{Row: 9, Col: 5}},
		{"bottom edge", pts(6, 5, 7, 5, 8, 5, 9, 5), DirDown, core.Point{Row: 0, Col: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := stateWith(r, tc.body, tc.dir, food)
			next, res := Step(r, st, rand.New(rand.NewSource(1)))

			if res.Event != EventMoved {
				t.Fatalf("event = %v, expected moved", res.Event)
			}
			if next.Head() != tc.wantHead {
				t.Errorf("head = %v, expected %v", next.Head(), tc.wantHead)
			}
			if len(next.Snake) != len(tc.body) {
				t.Errorf("length changed from %d to %d", len(tc.body), len(next.Snake))
			}
		})
	}
}

func TestStepGrowth(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(3))
	st := stateWith(r, r.InitialSnake(), DirRight, core.Point{Row: 0, Col: 4})

	next, res := Step(r, st, rng)

	if res.Event != EventAte {
		t.Fatalf("event = %v, expected ate", res.Event)
	}
	want := pts(0, 1, 0, 2, 0, 3, 0, 4, 0, 5)
	if !equalPoints(next.Snake, want) {
		t.Errorf("snake = %v, expected %v", next.Snake, want)
	}
	if next.Score() != 1 {
		t.Errorf("score = %d, expected 1", next.Score())
	}
	if occupancy(next.Snake)[next.Food] {
		t.Errorf("new food %v spawned on the snake", next.Food)
	}
}

func TestStepGrowthIntoBodyCollides(t *testing.T) {
	r := DefaultRules()
	// Head (1,0) moves right onto food (1,1); the extra cell (1,2) is body.
	body := pts(2, 3, 2, 2, 1, 2, 0, 2, 0, 1, 0, 0, 1, 0)
	st := stateWith(r, body, DirRight, core.Point{Row: 1, Col: 1})

	next, res := Step(r, st, rand.New(rand.NewSource(1)))

	if res.Event != EventCollided {
		t.Fatalf("event = %v, expected collided", res.Event)
	}
	if res.FinalScore != 4 {
		t.Errorf("final score = %d, expected 4", res.FinalScore)
	}
	if !equalPoints(next.Snake, r.InitialSnake()) {
		t.Errorf("snake not reset: %v", next.Snake)
	}
}

func TestStepSelfCollisionResets(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(11))
	// Head (1,1) turns up into (0,1), which is still body after the tail leaves.
	body := pts(0, 0, 0, 1, 0, 2, 1, 2, 1, 1)
	st := stateWith(r, body, DirUp, core.Point{Row: 8, Col: 8})

	next, res := Step(r, st, rng)

	if res.Event != EventCollided {
		t.Fatalf("event = %v, expected collided", res.Event)
	}
	if res.FinalScore != 1 {
		t.Errorf("final score = %d, expected 1", res.FinalScore)
	}
	if !equalPoints(next.Snake, r.InitialSnake()) {
		t.Errorf("snake = %v, expected initial snake", next.Snake)
	}
	if items := next.Queue.Items(); len(items) != 1 || items[0] != DirStop {
		t.Errorf("queue = %v, expected [stop]", items)
	}
	if next.Lost {
		t.Error("auto-reset mode should not leave the state lost")
	}
	if occupancy(next.Snake)[next.Food] {
		t.Errorf("food %v spawned on the reset snake", next.Food)
	}
	if next.Score() != 0 {
		t.Errorf("score after reset = %d, expected 0", next.Score())
	}
}

func TestStepChasingTailIsNotCollision(t *testing.T) {
	r := DefaultRules()
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	body := pts(0, 0, 0, 1, 1, 1, 1, 0)
	st := stateWith(r, body, DirUp, core.Point{Row: 8, Col: 8})

	next, res := Step(r, st, rand.New(rand.NewSource(1)))

	if res.Event != EventMoved {
		t.Fatalf("event = %v, expected moved", res.Event)
	}
	if next.Head() != (core.Point{Row: 0, Col: 0}) {
		t.Errorf("head = %v, expected (0,0)", next.Head())
	}
}

func TestStepStopStalls(t *testing.T) {
	r := DefaultRules()
	st := stateWith(r, r.InitialSnake(), DirStop, core.Point{Row: 5, Col: 5})

	next, res := Step(r, st, rand.New(rand.NewSource(1)))
	if res.Event != EventStalled {
		t.Fatalf("event = %v, expected stalled", res.Event)
	}
	if !equalPoints(next.Snake, st.Snake) {
		t.Errorf("snake moved while stopped: %v", next.Snake)
	}
	if next.Queue.Current() != DirStop || next.Queue.Len() != 1 {
		t.Errorf("sole stop entry should persist, queue = %v", next.Queue.Items())
	}

	next.Queue.Enqueue(DirDown, next.Heading)
	after, res := Step(r, next, rand.New(rand.NewSource(1)))
	if res.Event != EventStalled {
		t.Errorf("stop at the front should still stall, got %v", res.Event)
	}
	if items := after.Queue.Items(); len(items) != 1 || items[0] != DirDown {
		t.Errorf("queue = %v, expected [down]", items)
	}
}

func TestStepConsumesQueueInOrder(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(1))
	st := stateWith(r, r.InitialSnake(), DirRight, core.Point{Row: 9, Col: 19})
	st.Queue.Enqueue(DirDown, st.Heading)
	st.Queue.Enqueue(DirLeft, st.Heading)

	heads := []core.Point{}
	for range 4 {
		st, _ = Step(r, st, rng)
		heads = append(heads, st.Head())
	}

	want := pts(0, 4, 1, 4, 1, 3, 1, 2)
	if !equalPoints(heads, want) {
		t.Errorf("heads = %v, expected %v", heads, want)
	}
	if st.Heading != DirLeft {
		t.Errorf("heading = %v, expected left", st.Heading)
	}
}

func TestStepFreezeOnCollision(t *testing.T) {
	r := DefaultRules()
	r.FreezeOnCollision = true
	body := pts(0, 0, 0, 1, 0, 2, 1, 2, 1, 1)
	st := stateWith(r, body, DirUp, core.Point{Row: 8, Col: 8})

	lost, res := Step(r, st, rand.New(rand.NewSource(1)))
	if res.Event != EventCollided || !lost.Lost {
		t.Fatalf("expected a lost state after collision, got event %v lost=%v", res.Event, lost.Lost)
	}

	again, res := Step(r, lost, rand.New(rand.NewSource(1)))
	if res.Event != EventFrozen {
		t.Errorf("event = %v, expected frozen", res.Event)
	}
	if !equalPoints(again.Snake, lost.Snake) {
		t.Error("frozen state must not change")
	}
}

func TestStepClearedBoardEndsRun(t *testing.T) {
	r := Rules{Grid: core.NewGrid(1, 5), InitialLength: 4}
	st := stateWith(r, r.InitialSnake(), DirRight, core.Point{Row: 0, Col: 4})

	next, res := Step(r, st, rand.New(rand.NewSource(1)))

	if res.Event != EventCleared {
		t.Fatalf("event = %v, expected cleared", res.Event)
	}
	if res.FinalScore != 1 {
		t.Errorf("final score = %d, expected 1", res.FinalScore)
	}
	if !equalPoints(next.Snake, r.InitialSnake()) {
		t.Errorf("board not reset after clearing: %v", next.Snake)
	}
}

// TestStepInvariants plays random games and checks the length,
// distinctness and food invariants on every tick.
func TestStepInvariants(t *testing.T) {
	r := DefaultRules()
	moves := []Direction{DirUp, DirDown, DirLeft, DirRight, DirStop}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		input := rand.New(rand.NewSource(seed * 31))
		st := NewState(r, rng)

		for tick := 0; tick < 500; tick++ {
			if input.Intn(3) == 0 {
				st.Queue.Enqueue(moves[input.Intn(len(moves))], st.Heading)
			}

			before := len(st.Snake)
			next, res := Step(r, st, rng)

			switch res.Event {
			case EventMoved, EventStalled:
				if len(next.Snake) != before {
					t.Fatalf("seed %d tick %d: length %d -> %d on %v", seed, tick, before, len(next.Snake), res.Event)
				}
			case EventAte:
				if len(next.Snake) != before+1 {
					t.Fatalf("seed %d tick %d: length %d -> %d after eating", seed, tick, before, len(next.Snake))
				}
			case EventCollided, EventCleared:
				if !equalPoints(next.Snake, r.InitialSnake()) {
					t.Fatalf("seed %d tick %d: run ended without reset", seed, tick)
				}
			}

			if set := occupancy(next.Snake); len(set) != len(next.Snake) {
				t.Fatalf("seed %d tick %d: snake intersects itself: %v", seed, tick, next.Snake)
			}
			if occupancy(next.Snake)[next.Food] {
				t.Fatalf("seed %d tick %d: food %v on snake", seed, tick, next.Food)
			}
			if len(next.Snake) < r.InitialLength {
				t.Fatalf("seed %d tick %d: snake shorter than initial length", seed, tick)
			}
			st = next
		}
	}
}
