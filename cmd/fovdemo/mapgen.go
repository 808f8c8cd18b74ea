package main

import (
	"math/rand"

	"github.com/anaseto/fov/fov"
	"github.com/anaseto/fov/paths"
)

// digCave carves a cave into m using a drunkard's walk, the same
// technique as a random-walk cave digger: start from random points and walk
// randomly, digging as it goes, until a target fraction of the map is open
// floor. Cells start fully walled (opaque, not walkable); dug cells become
// transparent and walkable. Each walk starts at a fresh random point, so the
// dug areas need not be connected; keepMainComponent removes the rest.
func digCave(rng *rand.Rand, m *fov.Map, fillp float64) {
	if fillp > 0.9 {
		fillp = 0.9
	}
	if fillp < 0.01 {
		fillp = 0.01
	}
	w, h := m.Width(), m.Height()
	m.Clear(false, false)
	maxdigs := int(float64(w*h) * fillp)
	digs := 0
	for digs <= maxdigs {
		x, y := rng.Intn(w), rng.Intn(h)
		if m.IsWalkable(x, y) {
			continue
		}
		m.SetProperties(x, y, true, true)
		digs++
		wlkmax := maxdigs - digs + 1
		lastX, lastY := x, y
		outDigs := 0
		for i := 0; i < wlkmax && digs <= maxdigs; i++ {
			nx, ny := x+rng.Intn(3)-1, y+rng.Intn(3)-1
			if !m.InBounds(nx, ny) {
				outDigs++
				if outDigs > 150 {
					outDigs = 0
					x, y = lastX, lastY
				}
				continue
			}
			x, y = nx, ny
			if !m.IsWalkable(x, y) {
				m.SetProperties(x, y, true, true)
				digs++
			}
			lastX, lastY = x, y
		}
	}
}

// caveNeighbors implements paths.Dijkstra over a cave's walkable cells, for
// use by keepMainComponent to flood-fill from a chosen start.
type caveNeighbors struct {
	m  *fov.Map
	nf paths.NeighborFinder
}

func (cn *caveNeighbors) Neighbors(p paths.Point) []paths.Point {
	return cn.nf.CardinalNeighbors(p, func(q paths.Point) bool {
		return cn.m.InBounds(q.X, q.Y) && cn.m.IsWalkable(q.X, q.Y)
	})
}

func (cn *caveNeighbors) Cost(p, q paths.Point) int {
	return 1
}

// keepMainComponent walls off every walkable cell not reachable from start,
// using a dijkstra map as a flood fill.
func keepMainComponent(m *fov.Map, pr *paths.PathRange, start paths.Point) {
	cn := &caveNeighbors{m: m}
	pr.DijkstraMap(cn, []paths.Point{start}, m.CellCount())
	reachable := make(map[paths.Point]bool)
	pr.MapIter(func(n paths.Node) {
		reachable[n.P] = true
	})
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.IsWalkable(x, y) && !reachable[paths.Point{X: x, Y: y}] {
				m.SetProperties(x, y, false, false)
			}
		}
	}
}

// findFloor returns a random walkable cell, used to place the player after
// digging the cave.
func findFloor(rng *rand.Rand, m *fov.Map) paths.Point {
	w, h := m.Width(), m.Height()
	for {
		x, y := rng.Intn(w), rng.Intn(h)
		if m.IsWalkable(x, y) {
			return paths.Point{X: x, Y: y}
		}
	}
}
