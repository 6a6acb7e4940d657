package behaviour

import (
	"testing"
	"time"
)

func TestStartRunsOnceBeforeUpdate(t *testing.T) {
	m := NewBehaviourManager()
	b := &MockBehaviour{}
	m.Add(b)

	m.UpdateAll(Frame{Index: 1})
	m.UpdateAll(Frame{Index: 2})

	if b.starts != 1 {
		t.Errorf("Start should run once, ran %d times", b.starts)
	}
	if b.updates != 2 || b.last.Index != 2 {
		t.Errorf("Expected 2 updates ending on frame 2, got %d/%d", b.updates, b.last.Index)
	}
}

func TestRemoveAndClear(t *testing.T) {
	m := NewBehaviourManager()
	a, b := &MockBehaviour{}, &MockBehaviour{}
	m.Add(a)
	m.Add(b)
	m.Add(nil)

	m.Remove(a)
	if m.Len() != 1 {
		t.Fatalf("Expected 1 behaviour after Remove, got %d", m.Len())
	}
	m.UpdateAll(Frame{})
	if a.updates != 0 || b.updates != 1 {
		t.Error("Removed behaviour should not update")
	}

	m.Clear()
	if m.Len() != 0 {
		t.Error("Clear should remove everything")
	}
}

func TestFrameSeconds(t *testing.T) {
	f := Frame{Elapsed: 1500 * time.Millisecond}
	if f.Seconds() != 1.5 {
		t.Errorf("Expected 1.5s, got %f", f.Seconds())
	}
}
