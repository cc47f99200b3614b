package lexstate

import "testing"

func TestPushPopSwitch(t *testing.T) {
	s := New("top")
	if s.Top() != "top" || s.Depth() != 1 {
		t.Fatalf("unexpected initial state: %s depth=%d", s.Top(), s.Depth())
	}

	s.Push("string")
	if s.Top() != "string" || s.Depth() != 2 {
		t.Fatalf("push failed: %s depth=%d", s.Top(), s.Depth())
	}

	s.SwitchTo("interp")
	if s.Top() != "interp" || s.Depth() != 2 {
		t.Fatalf("switchTo changed depth: %s depth=%d", s.Top(), s.Depth())
	}

	s.Pop()
	if s.Top() != "top" || s.Depth() != 1 {
		t.Fatalf("pop failed: %s depth=%d", s.Top(), s.Depth())
	}
}

func TestPopOnSingleEntryIsNoOp(t *testing.T) {
	s := New("top")
	s.Pop()
	if s.Top() != "top" || s.Depth() != 1 {
		t.Fatalf("pop on single-entry stack must be a no-op, got %s depth=%d", s.Top(), s.Depth())
	}
}

func TestApplyTransitionPriority(t *testing.T) {
	s := New("top")
	s.Apply(Transition{Push: "a", Pop: true, SwitchTo: "b"})
	if s.Top() != "a" || s.Depth() != 2 {
		t.Fatalf("Apply should prefer Push first, got %s depth=%d", s.Top(), s.Depth())
	}
}
