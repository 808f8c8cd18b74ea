package fov

// ComputeFOV clears every cell's Fov flag and then marks visible, from
// (povX, povY), every cell reachable under algo within maxRadius (a
// squared-distance bound; <= 0 means unlimited). lightWalls controls
// whether opaque cells bordering lit floor are themselves marked visible.
//
// It fails with ErrInvalidArgument if m is nil, if (povX, povY) is out of
// bounds, or if algo is not one of the values in this package. It never
// returns ErrOutOfMemory: the scratch memory of Diamond, the Permissive
// variants and Restrictive is allocated with make, which panics rather than
// returning an error when memory runs out.
func (m *Map) ComputeFOV(povX, povY, maxRadius int, lightWalls bool, algo Algorithm) error {
	if m == nil {
		return newError(ErrInvalidArgument, "fov: ComputeFOV: map must not be nil")
	}
	if !m.InBounds(povX, povY) {
		return newError(ErrInvalidArgument, "fov: ComputeFOV: point of view (%d, %d) is out of bounds", povX, povY)
	}
	m.clearFov()

	switch {
	case algo == Basic:
		computeBasic(m, povX, povY, maxRadius, lightWalls)
	case algo == Diamond:
		computeDiamond(m, povX, povY, maxRadius, lightWalls)
	case algo == Shadow:
		computeShadow(m, povX, povY, maxRadius, lightWalls)
	case algo >= Permissive0 && algo <= Permissive8:
		p := int(algo - Permissive0)
		if err := computePermissive(m, povX, povY, maxRadius, lightWalls, p); err != nil {
			return err
		}
	case algo == Restrictive:
		computeRestrictive(m, povX, povY, maxRadius, lightWalls)
	case algo == SymmetricShadowcast:
		computeSymmetricShadowcast(m, povX, povY, maxRadius, lightWalls)
	default:
		return newError(ErrInvalidArgument, "fov: ComputeFOV: unknown algorithm %v", algo)
	}
	return nil
}

// postprocessWalls spreads visibility from each lit transparent cell to its
// three outward neighbors within the quadrant (cx+dx, cy),
// (cx, cy+dy), (cx+dx, cy+dy), when those neighbors are opaque. Running it
// twice in a row marks no further cells, since it only ever promotes an
// opaque neighbor of an already-lit floor cell.
func postprocessWalls(m *Map, povX, povY, maxRadius int) {
	xMin, yMin := 0, 0
	xMax, yMax := m.innerMap.Width, m.innerMap.Height
	if maxRadius > 0 {
		xMin = max(xMin, povX-maxRadius)
		yMin = max(yMin, povY-maxRadius)
		xMax = min(xMax, povX+maxRadius+1)
		yMax = min(yMax, povY+maxRadius+1)
	}
	postprocessQuadrant(m, xMin, yMin, povX, povY, -1, -1)
	postprocessQuadrant(m, povX, yMin, xMax-1, povY, 1, -1)
	postprocessQuadrant(m, xMin, povY, povX, yMax-1, -1, 1)
	postprocessQuadrant(m, povX, povY, xMax-1, yMax-1, 1, 1)
}

func postprocessQuadrant(m *Map, x0, y0, x1, y1, dx, dy int) {
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			if !m.InBounds(cx, cy) {
				continue
			}
			c := m.innerMap.Cells[m.index(cx, cy)]
			if !c.Fov || !c.Transparent {
				continue
			}
			x2, y2 := cx+dx, cy+dy
			if x2 >= x0 && x2 <= x1 {
				lightIfOpaque(m, x2, cy)
			}
			if y2 >= y0 && y2 <= y1 {
				lightIfOpaque(m, cx, y2)
			}
			if x2 >= x0 && x2 <= x1 && y2 >= y0 && y2 <= y1 {
				lightIfOpaque(m, x2, y2)
			}
		}
	}
}

func lightIfOpaque(m *Map, x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	i := m.index(x, y)
	if !m.innerMap.Cells[i].Transparent {
		m.innerMap.Cells[i].Fov = true
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
