package metric

import "testing"

func TestObserveOp(t *testing.T) {
	m := New()

	m.ObserveOp("set")
	m.ObserveOp("set")
	m.ObserveOp("get")

	counts, err := m.OpCounts()
	if err != nil {
		t.Fatalf("OpCounts() error: %v", err)
	}

	want := map[string]uint64{"get": 1, "set": 2}
	if len(counts) != len(want) {
		t.Fatalf("OpCounts() returned %d entries, want %d", len(counts), len(want))
	}
	for _, c := range counts {
		if want[c.Op] != c.Count {
			t.Errorf("op %s count = %d, want %d", c.Op, c.Count, want[c.Op])
		}
	}

	// Sorted by operation name.
	if counts[0].Op != "get" || counts[1].Op != "set" {
		t.Errorf("OpCounts() not sorted: %v", counts)
	}
}

func TestOpCountsEmpty(t *testing.T) {
	m := New()

	counts, err := m.OpCounts()
	if err != nil {
		t.Fatalf("OpCounts() error: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("OpCounts() on fresh registry = %v, want empty", counts)
	}
}

func TestSetOccupancy(t *testing.T) {
	m := New()

	// Gauges are write-only from the shell's perspective; just ensure the
	// calls register cleanly.
	m.SetOccupancy(3, 4)
	m.SetOccupancy(0, 1)

	if _, err := m.registry.Gather(); err != nil {
		t.Fatalf("Gather() after SetOccupancy: %v", err)
	}
}
