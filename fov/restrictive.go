package fov

// restrictiveObstacle is one recorded angular obstacle: a slope interval
// that is known to be blocked from the POV. Its ends are cell center slopes
// plus or minus half a cell, so they can fall outside [0, 1] by up to 0.5.
type restrictiveObstacle struct {
	start, end float64
}

// computeRestrictive implements the RESTRICTIVE algorithm (Mingos'
// Restrictive Precise Angle Shadowcasting): four quadrants, each split into
// a vertical-edge octant and a horizontal-edge octant, each tracking a
// growing list of blocked slope intervals line by line.
func computeRestrictive(m *Map, povX, povY, maxRadius int, lightWalls bool) {
	m.SetInFOV(povX, povY, true)
	limit := m.innerMap.Width + m.innerMap.Height
	for _, dx := range [2]int{-1, 1} {
		for _, dy := range [2]int{-1, 1} {
			restrictiveOctant(m, povX, povY, maxRadius, lightWalls, dx, dy, limit, true)
			restrictiveOctant(m, povX, povY, maxRadius, lightWalls, dx, dy, limit, false)
		}
	}
}

// restrictiveOctant scans one octant of one quadrant. verticalEdge selects
// whether the primary scan axis is x (true) or y (false); dx, dy give the
// quadrant's sign.
func restrictiveOctant(m *Map, povX, povY, maxRadius int, lightWalls bool, dx, dy, limit int, verticalEdge bool) {
	radiusSquared := maxRadius * maxRadius
	var obstacles []restrictiveObstacle
	obstaclesInLastLine := 0
	minAngle := 0.0

	for iteration := 1; iteration <= limit; iteration++ {
		slopePerCell := 1.0 / float64(iteration)
		halfSlope := slopePerCell / 2
		done := false

		for k := 0; k <= iteration; k++ {
			centerSlope := float64(k) * slopePerCell
			if centerSlope < minAngle {
				continue
			}
			startSlope := centerSlope - halfSlope
			endSlope := centerSlope + halfSlope

			var x, y int
			if verticalEdge {
				x, y = povX+dx*iteration, povY+dy*k
			} else {
				x, y = povX+dx*k, povY+dy*iteration
			}
			if !m.InBounds(x, y) {
				continue
			}
			if maxRadius > 0 {
				ddx, ddy := x-povX, y-povY
				if ddx*ddx+ddy*ddy > radiusSquared {
					continue
				}
			}

			visible := true
			extended := false
			transparent := m.IsTransparent(x, y)

			if obstaclesInLastLine > 0 {
				// The previous line's inner neighbor(s) must already be lit
				// and transparent, or this cell is hidden behind them
				// regardless of what the obstacle list says.
				var prevX1, prevY1, prevX2, prevY2 int
				if verticalEdge {
					prevX1, prevY1 = x-dx, y
					prevX2, prevY2 = x-dx, y-dy
				} else {
					prevX1, prevY1 = x, y-dy
					prevX2, prevY2 = x-dx, y-dy
				}
				neighbor1 := m.InBounds(prevX1, prevY1) && m.IsInFOV(prevX1, prevY1) && m.IsTransparent(prevX1, prevY1)
				neighbor2 := m.InBounds(prevX2, prevY2) && m.IsInFOV(prevX2, prevY2) && m.IsTransparent(prevX2, prevY2)
				if !neighbor1 && !neighbor2 {
					visible = false
				} else {
					for idx := 0; idx < obstaclesInLastLine && visible; idx++ {
						obs := &obstacles[idx]
						if startSlope > obs.end || endSlope < obs.start {
							continue
						}
						if transparent {
							if centerSlope > obs.start && centerSlope < obs.end {
								visible = false
							}
						} else {
							if obs.start <= startSlope && obs.end >= endSlope {
								visible = false
							} else {
								if startSlope < obs.start {
									obs.start = startSlope
								}
								if endSlope > obs.end {
									obs.end = endSlope
								}
								extended = true
							}
							if !verticalEdge {
								// Preserves an extra skip observed only in
								// the horizontal-edge octant of the original
								// implementation: the next obstacle in the
								// list is not checked against this cell once
								// a match is found here.
								idx++
							}
						}
					}
				}
			}

			i := m.index(x, y)
			if visible {
				m.innerMap.Cells[i].Fov = true
			}
			if !transparent {
				if startSlope <= minAngle {
					minAngle = endSlope
				} else if !extended {
					obstacles = append(obstacles, restrictiveObstacle{startSlope, endSlope})
				}
				if minAngle >= 1.0 {
					done = true
				}
				if !lightWalls {
					m.innerMap.Cells[i].Fov = false
				}
			}
		}
		obstaclesInLastLine = len(obstacles)
		if done {
			return
		}
	}
}
