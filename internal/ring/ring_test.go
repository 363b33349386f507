package ring

import "testing"

func TestFIFOOrder(t *testing.T) {
	q := New[int]()
	q.Reserve(4)
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	for i := 0; i < 10; i++ {
		if q.Empty() {
			t.Fatalf("queue emptied early at i=%d", i)
		}
		if got := q.Pop(); got != i {
			t.Fatalf("Pop() = %d, want %d", got, i)
		}
	}
	if !q.Empty() {
		t.Fatalf("queue should be empty after draining all pushes")
	}
}

func TestReserveClearsState(t *testing.T) {
	q := New[int]()
	q.Reserve(2)
	q.Push(1)
	q.Push(2)
	q.Reserve(4)
	if !q.Empty() || q.Len() != 0 {
		t.Fatalf("Reserve must clear logical state")
	}
}

func TestGrowPreservesOrderAcrossWrap(t *testing.T) {
	q := New[int]()
	q.Reserve(2)
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Push(3)
	q.Push(4) // forces growth while head is mid-buffer
	want := []int{2, 3, 4}
	for _, w := range want {
		if got := q.Pop(); got != w {
			t.Fatalf("Pop() = %d, want %d", got, w)
		}
	}
}

func TestFrontDoesNotRemove(t *testing.T) {
	q := New[int]()
	q.Reserve(4)
	q.Push(42)
	if q.Front() != 42 {
		t.Fatalf("Front() = %d, want 42", q.Front())
	}
	if q.Len() != 1 {
		t.Fatalf("Front must not remove the element")
	}
}
