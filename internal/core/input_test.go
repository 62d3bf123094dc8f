package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	want := []Action{ActionUp, ActionLeft, ActionUp}
	if f.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", f.Len(), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionStop)

	clone := f.Clone()
	f.Clear()
	f.Set(ActionPause)

	if clone.Len() != 1 || clone.Actions[0] != ActionStop {
		t.Errorf("clone was modified: %v", clone.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionStop.String() != "Stop" {
		t.Errorf("ActionStop.String() = %q", ActionStop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
