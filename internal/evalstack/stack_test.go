package evalstack

import "testing"

func TestPushPopIsLIFO(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	if id, ok := s.Pop(); !ok || id != 3 {
		t.Fatalf("Pop() = %d, %v; want 3, true", id, ok)
	}
	if id, ok := s.Pop(); !ok || id != 2 {
		t.Fatalf("Pop() = %d, %v; want 2, true", id, ok)
	}
	if s.IsEmpty() {
		t.Fatalf("expected one entry remaining, IsEmpty() = true")
	}
	if id, ok := s.Pop(); !ok || id != 1 {
		t.Fatalf("Pop() = %d, %v; want 1, true", id, ok)
	}
	if !s.IsEmpty() {
		t.Fatalf("expected stack empty after draining all pushes")
	}
}

func TestPopOnEmptyReturnsFalse(t *testing.T) {
	s := New()
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop() on empty stack returned ok=true")
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	s := New()
	s.Push(42)
	if id, ok := s.Peek(); !ok || id != 42 {
		t.Fatalf("Peek() = %d, %v; want 42, true", id, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("Peek() removed the entry; Len() = %d", s.Len())
	}
}

func TestPopNReturnsOldestFirst(t *testing.T) {
	s := New()
	s.Push(10)
	s.Push(20)
	s.Push(30)

	got := s.PopN(3)
	want := []int64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PopN(3) = %v; want %v", got, want)
		}
	}
	if !s.IsEmpty() {
		t.Fatalf("PopN(3) should have drained the stack")
	}
}

func TestPopNUnderflowPadsWithMinusOne(t *testing.T) {
	s := New()
	s.Push(7)

	got := s.PopN(3)
	want := []int64{-1, -1, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PopN(3) on a 1-entry stack = %v; want %v", got, want)
		}
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Reset()
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("Reset() left Len() = %d", s.Len())
	}
}
