// Package paths provides utilities for efficient pathfinding in rectangular
// maps, on top of the walkability queries exposed by the fov package.
package paths

import (
	"bytes"
	"encoding/gob"
)

// PathRange allows for efficient path finding within a range. It caches
// structures, so that they can be reused across calls without further memory
// allocations.
//
// It implements gob.GobEncoder and gob.GobDecoder for easy serialization.
type PathRange struct {
	pathRange
}

type pathRange struct {
	astarNodes        *nodeMap
	dijkstraNodes     *nodeMap
	dijkstraIterNodes []Node
	astarQueue        priorityQueue
	dijkstraQueue     priorityQueue
	rg                Range
	w                 int // path range width
}

// GobDecode implements gob.GobDecoder.
func (pr *PathRange) GobDecode(bs []byte) error {
	r := bytes.NewReader(bs)
	gd := gob.NewDecoder(r)
	ipr := &pathRange{}
	err := gd.Decode(ipr)
	if err != nil {
		return err
	}
	pr.pathRange = *ipr
	return nil
}

// GobEncode implements gob.GobEncoder.
func (pr *PathRange) GobEncode() ([]byte, error) {
	buf := bytes.Buffer{}
	ge := gob.NewEncoder(&buf)
	err := ge.Encode(&pr.pathRange)
	return buf.Bytes(), err
}

// NewPathRange returns a new PathRange for positions in a given range, such
// as the range occupied by the whole map, or a part of it.
func NewPathRange(rg Range) *PathRange {
	pr := &PathRange{}
	pr.rg = rg
	pr.w = pr.rg.Max.X - pr.rg.Min.X
	return pr
}

// SetRange updates the range used by the PathRange. If the size is the
// same, cached structures will be preserved, otherwise they will be
// reinitialized.
func (pr *PathRange) SetRange(rg Range) {
	org := pr.rg
	pr.rg = rg
	max := rg.Size()
	omax := org.Size()
	if max == omax {
		return
	}
	*pr = PathRange{}
	pr.rg = rg
	pr.w = pr.rg.Max.X - pr.rg.Min.X
}

// Range returns the current PathRange's range of positions.
func (pr *PathRange) Range() Range {
	return pr.rg
}

func (pr *PathRange) idx(p Point) int {
	p = p.Sub(pr.rg.Min)
	return p.Y*pr.w + p.X
}

func (nm nodeMap) get(pr *PathRange, p Point) *node {
	idx := pr.idx(p)
	n := &nm.Nodes[idx]
	if n.CacheIndex != nm.Idx {
		nm.Nodes[idx] = node{P: p, CacheIndex: nm.Idx}
	}
	return n
}

func (nm nodeMap) at(pr *PathRange, p Point) *node {
	n := &nm.Nodes[pr.idx(p)]
	if n.CacheIndex != nm.Idx {
		return nil
	}
	return n
}

type node struct {
	Open       bool
	Closed     bool
	Parent     Point
	P          Point
	Cost       int
	Rank       int
	Idx        int
	Estimation int
	CacheIndex int
}

type nodeMap struct {
	Nodes []node
	Idx   int
}

// priorityQueue implements a custom heap-like interface with node elements.
type priorityQueue []*node

func (pq priorityQueue) Len() int {
	return len(pq)
}

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].Rank < pq[j].Rank || pq[i].Rank == pq[j].Rank && pq[i].Estimation < pq[j].Estimation
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Idx = i
	pq[j].Idx = j
}

func (pq *priorityQueue) Push(n *node) {
	i := len(*pq)
	n.Idx = i
	*pq = append(*pq, n)
}

func (pq *priorityQueue) Pop() *node {
	old := *pq
	i := len(old)
	n := old[i-1]
	n.Idx = -1
	*pq = old[0 : i-1]
	return n
}
