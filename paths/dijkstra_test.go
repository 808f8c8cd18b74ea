package paths

import "testing"

// openDijkstra treats every cell in the range as passable, using 4-way
// movement, so costs grow with Manhattan distance from the sources.
type openDijkstra struct {
	nf NeighborFinder
	rg Range
}

func (g *openDijkstra) Neighbors(p Point) []Point {
	return g.nf.CardinalNeighbors(p, func(q Point) bool {
		return g.rg.In(q)
	})
}

func (g *openDijkstra) Cost(p, q Point) int {
	return 1
}

func TestDijkstraMapCosts(t *testing.T) {
	rg := NewRange(0, 0, 10, 5)
	pr := NewPathRange(rg)
	dij := &openDijkstra{rg: rg}
	poscosts := []struct {
		p    Point
		cost int
	}{
		{Point{0, 0}, 2},
		{Point{1, 0}, 1},
		{Point{2, 0}, 0},
		{Point{3, 0}, 1},
		{Point{4, 0}, 2},
		{Point{5, 0}, 3},
		{Point{6, 0}, 4},
		{Point{0, 2}, 2},
		{Point{2, 2}, 0},
		{Point{6, 2}, 4},
	}
	for i := 0; i < 2; i++ {
		pr.DijkstraMap(dij, []Point{{2, 0}, {2, 2}}, 9)
		seen := map[Point]int{}
		pr.MapIter(func(n Node) {
			seen[n.P] = n.Cost
		})
		for _, pc := range poscosts {
			cost, ok := seen[pc.p]
			if !ok {
				t.Errorf("run %d: %+v missing from dijkstra map", i, pc.p)
				continue
			}
			if cost != pc.cost {
				t.Errorf("run %d: bad cost %d for %+v, want %d", i, cost, pc.p, pc.cost)
			}
		}
	}
}

func TestDijkstraMapRespectsMaxCost(t *testing.T) {
	rg := NewRange(0, 0, 10, 10)
	pr := NewPathRange(rg)
	dij := &openDijkstra{rg: rg}
	pr.DijkstraMap(dij, []Point{{0, 0}}, 3)
	pr.MapIter(func(n Node) {
		if n.Cost > 3 {
			t.Errorf("node %+v has cost %d exceeding maxCost", n.P, n.Cost)
		}
	})
	var far bool
	pr.MapIter(func(n Node) {
		if n.P == (Point{9, 9}) {
			far = true
		}
	})
	if far {
		t.Error("cell far outside maxCost should not appear in the map")
	}
}

func TestDijkstraMapIgnoresOutOfRangeSources(t *testing.T) {
	rg := NewRange(0, 0, 5, 5)
	pr := NewPathRange(rg)
	dij := &openDijkstra{rg: rg}
	pr.DijkstraMap(dij, []Point{{-1, -1}, {2, 2}}, 5)
	var found bool
	pr.MapIter(func(n Node) {
		if n.P == (Point{2, 2}) && n.Cost == 0 {
			found = true
		}
	})
	if !found {
		t.Error("in-range source should still seed the map when another source is out of range")
	}
}
