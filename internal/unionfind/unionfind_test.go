package unionfind

import "testing"

func TestUnionMergesDistinctSets(t *testing.T) {
	s := New(10)
	if s.Connected(3, 7) {
		t.Fatalf("fresh set must start fully disjoint")
	}
	if !s.Union(3, 7) {
		t.Fatalf("first union of distinct elements must succeed")
	}
	if !s.Connected(3, 7) {
		t.Fatalf("3 and 7 should be connected after union")
	}
}

func TestUnionOfAlreadyConnectedReturnsFalse(t *testing.T) {
	s := New(5)
	s.Union(0, 1)
	s.Union(1, 2)
	if s.Union(0, 2) {
		t.Fatalf("union of already-connected elements must return false")
	}
}

func TestFindCompressesPath(t *testing.T) {
	s := New(6)
	s.Union(0, 1)
	s.Union(1, 2)
	s.Union(2, 3)
	root := s.Find(3)
	for i := 0; i <= 3; i++ {
		if s.parent[i] != root && s.Find(i) != root {
			t.Fatalf("element %d not connected to root %d", i, root)
		}
	}
	if s.parent[3] != root {
		t.Fatalf("expected Find(3) to compress parent[3] directly to root")
	}
}

func TestAllElementsEventuallyOneSet(t *testing.T) {
	const n = 50
	s := New(n)
	for i := 1; i < n; i++ {
		s.Union(i-1, i)
	}
	root := s.Find(0)
	for i := 1; i < n; i++ {
		if s.Find(i) != root {
			t.Fatalf("element %d not merged into single component", i)
		}
	}
}
