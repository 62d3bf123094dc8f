package snake

import "math/rand"

// Event classifies what a single tick did.
type Event int

const (
	EventFrozen   Event = iota // lost and waiting for Restart; nothing changed
	EventStalled               // current command was stop; the snake did not move
	EventMoved                 // ordinary move
	EventAte                   // head reached the food and the snake grew
	EventCollided              // head ran into the body; the run ended
	EventCleared               // no vacant cell left for food; the run ended
)

func (e Event) String() string {
	switch e {
	case EventFrozen:
		return "frozen"
	case EventStalled:
		return "stalled"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Result describes the outcome of one tick.
type Result struct {
	Event Event
	// FinalScore is the score of the run that ended on this tick.
	FinalScore int
}

// RunEnded reports whether the tick finished a run.
func (r Result) RunEnded() bool {
	return r.Event == EventCollided || r.Event == EventCleared
}

// Step advances st by one tick and returns the new state.
// st is not modified. rng is only used to place food.
func Step(r Rules, st State, rng *rand.Rand) (State, Result) {
	if st.Lost {
		return st, Result{Event: EventFrozen}
	}

	next := st.clone()
	dir := next.Queue.Current()
	if !dir.IsMove() {
		next.Queue.Advance()
		return next, Result{Event: EventStalled}
	}

	head := next.Head()
	body := next.Snake[1:] // the tail leaves first
	newHead := move(r.Grid, head, dir)
	occupied := occupancy(body)

	next.Snake = append(body, newHead)
	if occupied[newHead] {
		return endRun(r, next, rng, Result{Event: EventCollided, FinalScore: next.Score()})
	}

	event := EventMoved
	if newHead == next.Food {
		// Growth extends one more cell in the direction of travel.
		extra := move(r.Grid, newHead, dir)
		occupied[newHead] = true
		next.Snake = append(next.Snake, extra)
		if occupied[extra] {
			return endRun(r, next, rng, Result{Event: EventCollided, FinalScore: next.Score()})
		}

		food, ok := SpawnFood(r.Grid, next.Snake, rng)
		if !ok {
			return endRun(r, next, rng, Result{Event: EventCleared, FinalScore: next.Score()})
		}
		next.Food = food
		event = EventAte
	}

	next.Heading = dir
	next.Queue.Advance()
	return next, Result{Event: event}
}

// endRun finishes a run. In freeze mode the final board stays visible and
// the state is marked lost; otherwise the game starts over immediately.
func endRun(r Rules, st State, rng *rand.Rand, res Result) (State, Result) {
	if r.FreezeOnCollision {
		st.Lost = true
		return st, res
	}
	return resetState(r, rng), res
}
