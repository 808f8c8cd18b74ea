package fov

// computeBasic implements the BASIC algorithm: a Bresenham ray is cast from
// the POV to every cell on the perimeter of the scan rectangle (the
// intersection of the map and [pov +/- maxRadius]).
func computeBasic(m *Map, povX, povY, maxRadius int, lightWalls bool) {
	xMin, yMin := 0, 0
	xMax, yMax := m.innerMap.Width, m.innerMap.Height
	if maxRadius > 0 {
		xMin = max(xMin, povX-maxRadius)
		yMin = max(yMin, povY-maxRadius)
		xMax = min(xMax, povX+maxRadius+1)
		yMax = min(yMax, povY+maxRadius+1)
	}
	m.SetInFOV(povX, povY, true)

	radiusSquared := maxRadius * maxRadius
	for x := xMin; x < xMax; x++ {
		castRayBasic(m, povX, povY, x, yMin, radiusSquared, lightWalls)
	}
	for y := yMin + 1; y < yMax; y++ {
		castRayBasic(m, povX, povY, xMax-1, y, radiusSquared, lightWalls)
	}
	for x := xMax - 2; x >= xMin; x-- {
		castRayBasic(m, povX, povY, x, yMax-1, radiusSquared, lightWalls)
	}
	for y := yMax - 2; y > yMin; y-- {
		castRayBasic(m, povX, povY, xMin, y, radiusSquared, lightWalls)
	}
	if lightWalls {
		postprocessWalls(m, povX, povY, maxRadius)
	}
}

// castRayBasic walks from the POV to (xDest, yDest), stopping a step short
// if it leaves the map, if radiusSquared > 0 and the step's squared
// Euclidean distance from the POV exceeds it, or once it reaches an opaque
// cell.
func castRayBasic(m *Map, xOrigin, yOrigin, xDest, yDest, radiusSquared int, lightWalls bool) {
	it := NewLine(xOrigin, yOrigin, xDest, yDest)
	for {
		x, y, done := it.Step()
		if done {
			return
		}
		if !m.InBounds(x, y) {
			return
		}
		if radiusSquared > 0 {
			ddx, ddy := x-xOrigin, y-yOrigin
			if ddx*ddx+ddy*ddy > radiusSquared {
				return
			}
		}
		i := m.index(x, y)
		if !m.innerMap.Cells[i].Transparent {
			if lightWalls {
				m.innerMap.Cells[i].Fov = true
			}
			return
		}
		m.innerMap.Cells[i].Fov = true
	}
}
