package fov

import "testing"

func TestPermissiveRejectsOutOfRangeP(t *testing.T) {
	// computePermissive is only reachable through ComputeFOV, which already
	// clamps p to [0, 8] via the Permissive0..Permissive8 constant range, so
	// this exercises the defensive check directly.
	m, _ := NewMap(3, 3)
	if err := computePermissive(m, 1, 1, 0, true, 9); err == nil {
		t.Error("computePermissive(p=9): expected error")
	}
	if err := computePermissive(m, 1, 1, 0, true, -1); err == nil {
		t.Error("computePermissive(p=-1): expected error")
	}
}

// TestPermissiveBlocksBehindWall covers the case no aperture can bypass: a
// wall exactly collinear with the POV and the target on the POV's own
// row. Widening the view's shallow/steep
// corners never opens a path through an obstacle that sits squarely on the
// line itself, at any permissiveness level.
func TestPermissiveBlocksBehindWall(t *testing.T) {
	for p := 0; p <= 8; p++ {
		m := newScenarioMap(t, 5, 5, [][2]int{{3, 2}})
		if err := m.ComputeFOV(2, 2, 0, true, Permissive(p)); err != nil {
			t.Fatalf("PERMISSIVE_%d: ComputeFOV: %v", p, err)
		}
		if m.IsInFOV(4, 2) {
			t.Errorf("PERMISSIVE_%d: cell directly behind the wall should stay unlit", p)
		}
		if !m.IsInFOV(0, 4) {
			t.Errorf("PERMISSIVE_%d: far corner unaffected by the wall should be lit", p)
		}
	}
}

// TestPermissiveCornerPeek pins the case that actually distinguishes
// precise-permissive from a fixed half-cell raycast: a single wall at (1, 0)
// relative to the POV puts cell (2, 1) exactly on the origin view's shallow
// boundary line after the wall bumps it inward. At Permissive(0) that
// boundary runs through (8, 8)-(16, 16) in the algorithm's 16ths-of-a-tile
// scale, and (2, 1) sits exactly on it (relative slope 0), which the
// above-or-colinear check treats as shadowed. At Permissive(8) the same bump
// instead narrows the boundary to (0, 16)-(16, 16), leaving (2, 1) strictly
// inside the view (relative slope 256, not colinear), so it is lit.
func TestPermissiveCornerPeek(t *testing.T) {
	low := newScenarioMap(t, 4, 4, [][2]int{{1, 0}})
	if err := low.ComputeFOV(0, 0, 0, true, Permissive(0)); err != nil {
		t.Fatalf("Permissive(0): ComputeFOV: %v", err)
	}
	if low.IsInFOV(2, 1) {
		t.Error("Permissive(0): (2, 1) lies exactly on the shallow boundary and should stay unlit")
	}

	high := newScenarioMap(t, 4, 4, [][2]int{{1, 0}})
	if err := high.ComputeFOV(0, 0, 0, true, Permissive(8)); err != nil {
		t.Fatalf("Permissive(8): ComputeFOV: %v", err)
	}
	if !high.IsInFOV(2, 1) {
		t.Error("Permissive(8): (2, 1) should be visible once the wider aperture clears the boundary")
	}
}

// TestPermissiveHigherPNeverHidesLowerPCells covers the aperture-widening
// property that actually distinguishes PERMISSIVE(p) from a fixed
// half-cell raycast: raising p only widens every quadrant's origin view
// (offset shrinks toward 0, limit grows toward 16), so every view reachable
// at a lower p is still reachable, possibly joined by others, at a higher
// one. This is asserted as a set-containment property across a map with
// several obstacles, rather than pinned to one hand-picked cell, since
// which specific cell first benefits from extra permissiveness depends on
// the exact corner geometry of the surrounding walls.
func TestPermissiveHigherPNeverHidesLowerPCells(t *testing.T) {
	obstacles := [][2]int{{5, 4}, {6, 5}, {4, 6}, {7, 3}}
	low := newScenarioMap(t, 11, 11, obstacles)
	if err := low.ComputeFOV(3, 3, 0, true, Permissive(0)); err != nil {
		t.Fatalf("Permissive(0): ComputeFOV: %v", err)
	}
	high := newScenarioMap(t, 11, 11, obstacles)
	if err := high.ComputeFOV(3, 3, 0, true, Permissive(8)); err != nil {
		t.Fatalf("Permissive(8): ComputeFOV: %v", err)
	}
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			if low.IsInFOV(x, y) && !high.IsInFOV(x, y) {
				t.Errorf("cell (%d, %d) lit at p=0 but unlit at p=8", x, y)
			}
		}
	}
}

func TestPermissiveLightWallsFalseHidesWall(t *testing.T) {
	m := newScenarioMap(t, 5, 5, [][2]int{{3, 2}})
	if err := m.ComputeFOV(2, 2, 0, false, Permissive(4)); err != nil {
		t.Fatalf("ComputeFOV: %v", err)
	}
	if m.IsInFOV(3, 2) {
		t.Error("PERMISSIVE: wall must be unlit when light_walls is false")
	}
}
