package renderer

import (
	"testing"
)

func TestUnwindRunsInReverse(t *testing.T) {
	var order []int
	var u Unwind
	u.Add(func() { order = append(order, 1) })
	u.Add(func() { order = append(order, 2) })

	u.Unwind()

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("Expected cleanups in reverse order [2 1], got %v", order)
	}
}

func TestUnwindDiscard(t *testing.T) {
	called := false
	var u Unwind
	u.Add(func() { called = true })

	u.Discard()
	u.Unwind()

	if called {
		t.Error("Discarded cleanups should not run")
	}
}
