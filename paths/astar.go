// code of this file is a strongly modified version of code from
// github.com/beefsack/go-astar, which has the following license:
//
// Copyright (c) 2014 Michael Charles Alexander
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package paths

// Astar is the interface that allows to use the A* algorithm used by the
// AstarPath function. It is meant to be implemented on top of a walkability
// query such as the one exposed by an fov.Map, with Neighbors restricted to
// walkable cells.
type Astar interface {
	// Neighbors returns the available neighbor positions of a given
	// position. Implementations may use a cache to avoid allocations.
	Neighbors(Point) []Point

	// Cost represents the cost from one position to an adjacent one. It
	// should not produce paths with negative costs.
	Cost(Point, Point) int

	// Estimation offers an estimation cost for a path from a position to
	// another one. The estimation should always give a value lower or
	// equal to the cost of the best possible path.
	Estimation(Point, Point) int
}

// AstarPath returns a path from a position to another, including those
// positions. It returns nil if no path was found.
func (pr *PathRange) AstarPath(ast Astar, from, to Point) []Point {
	if !pr.rg.In(from) || !pr.rg.In(to) {
		return nil
	}
	if pr.astarNodes == nil {
		pr.astarNodes = &nodeMap{}
		max := pr.rg.Size()
		pr.astarNodes.Nodes = make([]node, max.X*max.Y)
		pr.astarQueue = make(priorityQueue, 0, max.X*max.Y)
	}
	nm := pr.astarNodes
	nm.Idx++
	nqs := pr.astarQueue[:0]
	nq := &nqs
	pqInit(nq)
	fromNode := nm.get(pr, from)
	fromNode.Open = true
	pqPush(nq, fromNode)
	for {
		if nq.Len() == 0 {
			return nil
		}
		current := pqPop(nq)
		current.Open = false
		current.Closed = true

		if current.P == to {
			path := []Point{}
			curr := current
			for {
				path = append(path, curr.P)
				if curr.P == from {
					break
				}
				curr = nm.at(pr, curr.Parent)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, neighbor := range ast.Neighbors(current.P) {
			if !pr.rg.In(neighbor) {
				continue
			}
			cost := current.Cost + ast.Cost(current.P, neighbor)
			neighborNode := nm.get(pr, neighbor)
			if cost < neighborNode.Cost {
				if neighborNode.Open {
					pqRemove(nq, neighborNode.Idx)
				}
				neighborNode.Open = false
				neighborNode.Closed = false
			}
			if !neighborNode.Open && !neighborNode.Closed {
				neighborNode.Cost = cost
				neighborNode.Open = true
				neighborNode.Rank = cost + ast.Estimation(neighbor, to)
				neighborNode.Parent = current.P
				pqPush(nq, neighborNode)
			}
		}
	}
}
