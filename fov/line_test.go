package fov

import "testing"

func TestWalkScenarioF(t *testing.T) {
	var got [][2]int
	ok := Walk(0, 0, 3, 1, func(x, y int) bool {
		got = append(got, [2]int{x, y})
		return true
	})
	if !ok {
		t.Fatal("Walk: expected true when callback never aborts")
	}
	want := [][2]int{{0, 0}, {1, 0}, {2, 1}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("Walk: got %v points, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk: point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWalkEndpointsAndCount(t *testing.T) {
	cases := [][4]int{
		{0, 0, 5, 2},
		{5, 2, 0, 0},
		{-3, 4, 2, -1},
		{0, 0, 0, 7},
		{0, 0, 7, 0},
	}
	for _, c := range cases {
		x0, y0, x1, y1 := c[0], c[1], c[2], c[3]
		var pts [][2]int
		Walk(x0, y0, x1, y1, func(x, y int) bool {
			pts = append(pts, [2]int{x, y})
			return true
		})
		if pts[0] != [2]int{x0, y0} {
			t.Errorf("walk(%v): first point %v, want (%d, %d)", c, pts[0], x0, y0)
		}
		if last := pts[len(pts)-1]; last != [2]int{x1, y1} {
			t.Errorf("walk(%v): last point %v, want (%d, %d)", c, last, x1, y1)
		}
		dx, dy := absInt(x1-x0), absInt(y1-y0)
		want := dx
		if dy > want {
			want = dy
		}
		want++
		if len(pts) != want {
			t.Errorf("walk(%v): visited %d points, want %d", c, len(pts), want)
		}
	}
}

func TestWalkAbortsOnFalse(t *testing.T) {
	count := 0
	ok := Walk(0, 0, 10, 0, func(x, y int) bool {
		count++
		return count < 3
	})
	if ok {
		t.Error("Walk: expected false when callback aborts early")
	}
	if count != 3 {
		t.Errorf("Walk: callback invoked %d times, want 3", count)
	}
}

func TestLineIterReentrancy(t *testing.T) {
	// Two independent walks, interleaved by hand, must produce exactly the
	// same sequences as running each one to completion on its own.
	a := NewLine(0, 0, 4, 2)
	b := NewLine(10, 10, 6, 13)

	var seqA, seqB [][2]int
	for {
		x, y, done := a.Step()
		if done {
			break
		}
		seqA = append(seqA, [2]int{x, y})
		x, y, done = b.Step()
		if !done {
			seqB = append(seqB, [2]int{x, y})
		}
	}
	for {
		x, y, done := b.Step()
		if done {
			break
		}
		seqB = append(seqB, [2]int{x, y})
	}

	var wantA, wantB [][2]int
	ita := NewLine(0, 0, 4, 2)
	for {
		x, y, done := ita.Step()
		if done {
			break
		}
		wantA = append(wantA, [2]int{x, y})
	}
	itb := NewLine(10, 10, 6, 13)
	for {
		x, y, done := itb.Step()
		if done {
			break
		}
		wantB = append(wantB, [2]int{x, y})
	}

	if len(seqA) != len(wantA) {
		t.Fatalf("interleaved walk A: got %v, want %v", seqA, wantA)
	}
	for i := range wantA {
		if seqA[i] != wantA[i] {
			t.Fatalf("interleaved walk A point %d: got %v, want %v", i, seqA[i], wantA[i])
		}
	}
	if len(seqB) != len(wantB) {
		t.Fatalf("interleaved walk B: got %v, want %v", seqB, wantB)
	}
	for i := range wantB {
		if seqB[i] != wantB[i] {
			t.Fatalf("interleaved walk B point %d: got %v, want %v", i, seqB[i], wantB[i])
		}
	}
}
