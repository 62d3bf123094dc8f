package snake

// Queue is the FIFO buffer of pending direction commands.
//
// The front entry is the current direction. Advancing drops the front only
// when something is queued behind it, so the last remaining entry persists
// and the snake keeps going that way.
type Queue struct {
	items []Direction
	limit int
}

// NewQueue creates a queue holding a single direction.
// limit caps the number of entries; zero means unbounded.
func NewQueue(initial Direction, limit int) Queue {
	return Queue{items: []Direction{initial}, limit: limit}
}

// Current returns the direction consumed by the next tick.
func (q Queue) Current() Direction {
	if len(q.items) == 0 {
		return DirStop
	}
	return q.items[0]
}

// Last returns the most recently queued entry.
func (q Queue) Last() Direction {
	if len(q.items) == 0 {
		return DirStop
	}
	return q.items[len(q.items)-1]
}

// Len returns the number of queued entries.
func (q Queue) Len() int {
	return len(q.items)
}

// Items returns a copy of the queued entries, front first.
func (q Queue) Items() []Direction {
	out := make([]Direction, len(q.items))
	copy(out, q.items)
	return out
}

// Advance drops the consumed front entry unless it is the only one left.
func (q *Queue) Advance() {
	if len(q.items) > 1 {
		q.items = q.items[1:]
	}
}

// Enqueue appends d and reports whether it was accepted.
//
// A movement direction is rejected when it reverses the most recently queued
// movement (or heading, when only stops are queued). Repeats are kept, so
// every key press costs one tick. DirStop skips the check. Nothing is
// accepted past the limit.
func (q *Queue) Enqueue(d Direction, heading Direction) bool {
	if q.limit > 0 && len(q.items) >= q.limit {
		return false
	}
	if d == DirStop {
		q.items = append(q.items, d)
		return true
	}
	if !d.IsMove() {
		return false
	}
	if d == q.lastMove(heading).Opposite() {
		return false
	}
	q.items = append(q.items, d)
	return true
}

// lastMove returns the newest movement entry, falling back to heading.
func (q Queue) lastMove(heading Direction) Direction {
	for i := len(q.items) - 1; i >= 0; i-- {
		if q.items[i].IsMove() {
			return q.items[i]
		}
	}
	return heading
}

func (q Queue) clone() Queue {
	return Queue{items: q.Items(), limit: q.limit}
}
