package paths

// Dijkstra is the interface that allows to build a dijkstra map using the
// DijkstraMap function.
type Dijkstra interface {
	// Neighbors returns the available neighbor positions of a given
	// position. Implementations may use a cache to avoid allocations.
	Neighbors(Point) []Point

	// Cost represents the cost from one position to an adjacent one. It
	// should not produce paths with negative costs.
	Cost(Point, Point) int
}

// DijkstraMap computes a dijkstra map given a list of source positions and a
// maximal cost from those sources. The resulting map can then be iterated
// with MapIter.
func (pr *PathRange) DijkstraMap(dij Dijkstra, sources []Point, maxCost int) {
	if pr.dijkstraNodes == nil {
		pr.dijkstraNodes = &nodeMap{}
		max := pr.rg.Size()
		pr.dijkstraNodes.Nodes = make([]node, max.X*max.Y)
		pr.dijkstraQueue = make(priorityQueue, 0, max.X*max.Y)
	}
	pr.dijkstraIterNodes = pr.dijkstraIterNodes[:0]
	nm := pr.dijkstraNodes
	nm.Idx++
	nqs := pr.dijkstraQueue[:0]
	nq := &nqs
	pqInit(nq)
	for _, f := range sources {
		if !pr.rg.In(f) {
			continue
		}
		n := nm.get(pr, f)
		n.Open = true
		pqPush(nq, n)
	}
	for {
		if nq.Len() == 0 {
			return
		}
		n := pqPop(nq)
		n.Open = false
		n.Closed = true
		pr.dijkstraIterNodes = append(pr.dijkstraIterNodes, Node{P: n.P, Cost: n.Cost})

		for _, nb := range dij.Neighbors(n.P) {
			if !pr.rg.In(nb) {
				continue
			}
			cost := n.Cost + dij.Cost(n.P, nb)
			nbNode := nm.get(pr, nb)
			if cost < nbNode.Cost {
				if nbNode.Open {
					pqRemove(nq, nbNode.Idx)
				}
				nbNode.Open = false
				nbNode.Closed = false
			}
			if !nbNode.Open && !nbNode.Closed {
				nbNode.Cost = cost
				if cost <= maxCost {
					nbNode.Open = true
					nbNode.Rank = cost
					pqPush(nq, nbNode)
				}
			}
		}
	}
}

// Node represents a position in a dijkstra map with a related distance cost
// relative to the closest source.
type Node struct {
	P    Point
	Cost int
}

// MapIter iterates a function on the nodes of the last computed dijkstra
// map, in cost increasing order. The iteration function should not call
// DijkstraMap or MapIter on the same PathRange, as that could invalidate the
// iteration state.
func (pr *PathRange) MapIter(f func(Node)) {
	for _, n := range pr.dijkstraIterNodes {
		f(n)
	}
}
