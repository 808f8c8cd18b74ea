package paths

import "testing"

func allowAll(Point) bool { return true }

func TestNeighborFinderNeighbors(t *testing.T) {
	var nf NeighborFinder
	ns := nf.Neighbors(Point{1, 1}, allowAll)
	if len(ns) != 8 {
		t.Fatalf("Neighbors: got %d positions, want 8", len(ns))
	}
	for _, p := range ns {
		if p == (Point{1, 1}) {
			t.Error("Neighbors should not include the origin")
		}
	}
}

func TestNeighborFinderCardinalNeighbors(t *testing.T) {
	var nf NeighborFinder
	ns := nf.CardinalNeighbors(Point{1, 1}, allowAll)
	want := map[Point]bool{
		{0, 1}: true, {2, 1}: true, {1, 0}: true, {1, 2}: true,
	}
	if len(ns) != len(want) {
		t.Fatalf("CardinalNeighbors: got %d positions, want %d", len(ns), len(want))
	}
	for _, p := range ns {
		if !want[p] {
			t.Errorf("CardinalNeighbors: unexpected position %+v", p)
		}
	}
}

func TestNeighborFinderDiagonalNeighbors(t *testing.T) {
	var nf NeighborFinder
	ns := nf.DiagonalNeighbors(Point{1, 1}, allowAll)
	want := map[Point]bool{
		{0, 0}: true, {2, 0}: true, {0, 2}: true, {2, 2}: true,
	}
	if len(ns) != len(want) {
		t.Fatalf("DiagonalNeighbors: got %d positions, want %d", len(ns), len(want))
	}
	for _, p := range ns {
		if !want[p] {
			t.Errorf("DiagonalNeighbors: unexpected position %+v", p)
		}
	}
}

func TestNeighborFinderKeepFilters(t *testing.T) {
	var nf NeighborFinder
	rg := NewRange(0, 0, 2, 2)
	ns := nf.Neighbors(Point{0, 0}, rg.In)
	want := map[Point]bool{{1, 0}: true, {0, 1}: true, {1, 1}: true}
	if len(ns) != len(want) {
		t.Fatalf("Neighbors with bounds filter: got %d, want %d", len(ns), len(want))
	}
	for _, p := range ns {
		if !want[p] {
			t.Errorf("unexpected position %+v outside range kept", p)
		}
	}
}
