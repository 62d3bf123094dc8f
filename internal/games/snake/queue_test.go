package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestQueueRejectsReversal(t *testing.T) {
	tests := []struct {
		dir  Direction
		want bool
	}{
		{DirLeft, false},
		{DirUp, true},
		{DirDown, true},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			q := NewQueue(DirRight, 0)
			if got := q.Enqueue(tc.dir, DirRight); got != tc.want {
				t.Errorf("Enqueue(%v) after right = %v, expected %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestQueueChecksAgainstLastQueued(t *testing.T) {
	q := NewQueue(DirRight, 0)

	if !q.Enqueue(DirUp, DirRight) {
		t.Fatal("up after right should be accepted")
	}
	if q.Enqueue(DirDown, DirRight) {
		t.Error("down directly after a queued up should be rejected")
	}
	if !q.Enqueue(DirLeft, DirRight) {
		t.Error("left after a queued up should be accepted")
	}

	want := []Direction{DirRight, DirUp, DirLeft}
	got := q.Items()
	if len(got) != len(want) {
		t.Fatalf("items = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestQueueStopAlwaysAccepted(t *testing.T) {
	q := NewQueue(DirRight, 0)

	if !q.Enqueue(DirStop, DirRight) || !q.Enqueue(DirStop, DirRight) {
		t.Fatal("stop should always be appended")
	}
	if q.Len() != 3 {
		t.Errorf("len = %d, expected 3", q.Len())
	}

	// The reversal check looks through stops to the last movement.
	if q.Enqueue(DirLeft, DirRight) {
		t.Error("left should be rejected while right is the last queued move")
	}
}

func TestQueueFallsBackToHeading(t *testing.T) {
	q := NewQueue(DirStop, 0)

	if q.Enqueue(DirDown, DirUp) {
		t.Error("down should be rejected while heading up")
	}
	if !q.Enqueue(DirLeft, DirUp) {
		t.Error("left should be accepted while heading up")
	}
}

func TestQueueKeepsRepeatedDirection(t *testing.T) {
	q := NewQueue(DirRight, 0)

	if !q.Enqueue(DirRight, DirRight) {
		t.Fatal("a repeated direction should be appended")
	}
	got := q.Items()
	if len(got) != 2 || got[0] != DirRight || got[1] != DirRight {
		t.Errorf("items = %v, expected [right right]", got)
	}
}

func TestQueueUnboundedByDefault(t *testing.T) {
	st := NewState(DefaultRules(), nil)
	turns := []Direction{DirUp, DirRight, DirDown, DirRight}

	for i := 0; i < 40; i++ {
		d := turns[i%len(turns)]
		if !st.Queue.Enqueue(d, st.Heading) {
			t.Fatalf("turn %d (%v) was dropped, queue %v", i, d, st.Queue.Items())
		}
	}
	if st.Queue.Len() != 41 {
		t.Errorf("len = %d, expected 41", st.Queue.Len())
	}
}

// A configured max_queue still caps the buffer.
func TestQueueLimit(t *testing.T) {
	q := NewQueue(DirRight, 3)

	q.Enqueue(DirUp, DirRight)
	q.Enqueue(DirLeft, DirRight)

	if q.Enqueue(DirDown, DirRight) {
		t.Error("enqueue past the limit should fail")
	}
	if q.Enqueue(DirStop, DirRight) {
		t.Error("stop past the limit should fail too")
	}
	if q.Len() != 3 {
		t.Errorf("len = %d, expected 3", q.Len())
	}
}

func TestQueueAdvanceKeepsLastEntry(t *testing.T) {
	q := NewQueue(DirRight, 0)
	q.Enqueue(DirDown, DirRight)

	q.Advance()
	if q.Current() != DirDown {
		t.Errorf("current = %v, expected down", q.Current())
	}

	q.Advance()
	q.Advance()
	if q.Current() != DirDown || q.Len() != 1 {
		t.Errorf("sole entry should persist, got %v", q.Items())
	}
}

func TestQueueItemsIsCopy(t *testing.T) {
	q := NewQueue(DirRight, 0)
	items := q.Items()
	items[0] = DirLeft

	if q.Current() != DirRight {
		t.Error("modifying Items() result changed the queue")
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionStop, DirStop, true},
		{core.ActionPause, DirStop, false},
		{core.ActionQuit, DirStop, false},
	}

	for _, tc := range tests {
		got, ok := DirectionFor(tc.action)
		if got != tc.want || ok != tc.ok {
			t.Errorf("DirectionFor(%v) = (%v, %v), expected (%v, %v)", tc.action, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite of opposite = %v", d, d.Opposite().Opposite())
		}
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr+or != 0 || dc+oc != 0 {
			t.Errorf("%v: deltas do not cancel", d)
		}
	}
	if DirStop.Opposite() != DirStop {
		t.Error("stop should have no opposite")
	}
}
