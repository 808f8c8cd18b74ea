package fov

import "math"

// octantMultipliers maps octant index 0..7 to the (xx, xy, yx, yy)
// coefficients that rotate cast_light's local (col, row) coordinates into
// absolute map coordinates around the POV.
var octantMultipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// computeShadow implements the SHADOW algorithm: recursive shadowcasting
// over the eight octants around the POV, narrowing a start/end slope
// window as walls are discovered and recursing into the gaps they leave.
func computeShadow(m *Map, povX, povY, maxRadius int, lightWalls bool) {
	if maxRadius <= 0 {
		maxRadiusX := max(m.innerMap.Width-povX, povX)
		maxRadiusY := max(m.innerMap.Height-povY, povY)
		maxRadius = int(math.Sqrt(float64(maxRadiusX*maxRadiusX+maxRadiusY*maxRadiusY))) + 1
	}
	m.SetInFOV(povX, povY, true)
	for oct := 0; oct < 8; oct++ {
		castLightShadow(m, povX, povY, 1, 1.0, 0.0, maxRadius, lightWalls,
			octantMultipliers[0][oct], octantMultipliers[1][oct],
			octantMultipliers[2][oct], octantMultipliers[3][oct])
	}
}

func castLightShadow(m *Map, cx, cy, row int, start, end float64, radius int, lightWalls bool, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	blocked := false
	var newStart float64
	for distance := row; distance <= radius && !blocked; distance++ {
		deltaY := -distance
		for deltaX := -distance; deltaX <= 0; deltaX++ {
			currentX := cx + deltaX*xx + deltaY*xy
			currentY := cy + deltaX*yx + deltaY*yy
			leftSlope := (float64(deltaX) - 0.5) / (float64(deltaY) + 0.5)
			rightSlope := (float64(deltaX) + 0.5) / (float64(deltaY) - 0.5)

			if !m.InBounds(currentX, currentY) || start < rightSlope {
				continue
			} else if end > leftSlope {
				break
			}

			dx2, dy2 := deltaX*deltaX, deltaY*deltaY
			transparent := m.innerMap.Cells[m.index(currentX, currentY)].Transparent
			if (radius == 0 || dx2+dy2 < radius*radius) && (lightWalls || transparent) {
				m.innerMap.Cells[m.index(currentX, currentY)].Fov = true
			}

			if blocked {
				if !transparent {
					newStart = rightSlope
					continue
				}
				blocked = false
				start = newStart
			} else {
				if !transparent && distance < radius {
					blocked = true
					castLightShadow(m, cx, cy, distance+1, start, leftSlope, radius, lightWalls, xx, xy, yx, yy)
					newStart = rightSlope
				}
			}
		}
	}
}
