package fov

// diamondTile is one scratch record of the diamond raycast, addressed by
// map index. The source's raw-pointer scratch grid and singly-linked
// perimeter queue become a dense index-addressed array plus a slice-backed
// FIFO of indices: the grid owns every record, the queue only borrows
// indices into it.
type diamondTile struct {
	xRel, yRel     int
	xObscurity     int
	yObscurity     int
	xError, yError int
	xInput, yInput int // index into the scratch grid, or -1
	touched        bool
	ignore         bool
}

// diamondFOV holds the scratch state for one DIAMOND computation.
type diamondFOV struct {
	m          *Map
	povX, povY int
	grid       []diamondTile
	queue      []int
}

// getRay returns the scratch index for the tile at the given position
// relative to the POV, or -1 if that position is out of bounds.
func (fv *diamondFOV) getRay(relX, relY int) int {
	x, y := fv.povX+relX, fv.povY+relY
	if !fv.m.InBounds(x, y) {
		return -1
	}
	idx := fv.m.index(x, y)
	fv.grid[idx].xRel = relX
	fv.grid[idx].yRel = relY
	return idx
}

// processRay configures newIdx's relationship to inputIdx and enqueues
// newIdx the first time it is touched.
func (fv *diamondFOV) processRay(newIdx, inputIdx int) {
	if newIdx < 0 {
		return
	}
	newTile := &fv.grid[newIdx]
	inputTile := &fv.grid[inputIdx]
	if newTile.yRel == inputTile.yRel {
		newTile.xInput = inputIdx
	} else {
		newTile.yInput = inputIdx
	}
	if !newTile.touched {
		fv.queue = append(fv.queue, newIdx)
		newTile.touched = true
	}
}

func diamondIsObscured(t *diamondTile) bool {
	return (t.xError > 0 && t.xError <= t.xObscurity) || (t.yError > 0 && t.yError <= t.yObscurity)
}

func (fv *diamondFOV) processXInput(newIdx, xInputIdx int) {
	newTile := &fv.grid[newIdx]
	in := &fv.grid[xInputIdx]
	if in.xObscurity == 0 && in.yObscurity == 0 {
		return
	}
	if in.xError > 0 && newTile.xObscurity == 0 {
		newTile.xError = in.xError - in.yObscurity
		newTile.yError = in.yError + in.yObscurity
		newTile.xObscurity = in.xObscurity
		newTile.yObscurity = in.yObscurity
	}
	if in.yError <= 0 && in.yObscurity > 0 && in.xError > 0 {
		newTile.yError = in.yError + in.yObscurity
		newTile.xError = in.xError - in.yObscurity
		newTile.xObscurity = in.xObscurity
		newTile.yObscurity = in.yObscurity
	}
}

func (fv *diamondFOV) processYInput(newIdx, yInputIdx int) {
	newTile := &fv.grid[newIdx]
	in := &fv.grid[yInputIdx]
	if in.xObscurity == 0 && in.yObscurity == 0 {
		return
	}
	if in.yError > 0 && newTile.yObscurity == 0 {
		newTile.yError = in.yError - in.xObscurity
		newTile.xError = in.xError + in.xObscurity
		newTile.xObscurity = in.xObscurity
		newTile.yObscurity = in.yObscurity
	}
	if in.xError <= 0 && in.xObscurity > 0 && in.yError > 0 {
		newTile.yError = in.yError - in.xObscurity
		newTile.xError = in.xError + in.xObscurity
		newTile.xObscurity = in.xObscurity
		newTile.yObscurity = in.yObscurity
	}
}

// mergeInput combines idx's two neighbor sources to tell how obscured it is,
// and starts a new shadow if idx's underlying cell turns out to be opaque.
func (fv *diamondFOV) mergeInput(idx int) {
	t := &fv.grid[idx]
	x, y := fv.povX+t.xRel, fv.povY+t.yRel

	if t.xInput >= 0 {
		fv.processXInput(idx, t.xInput)
	}
	if t.yInput >= 0 {
		fv.processYInput(idx, t.yInput)
	}
	switch {
	case t.xInput < 0:
		if diamondIsObscured(&fv.grid[t.yInput]) {
			t.ignore = true
		}
	case t.yInput < 0:
		if diamondIsObscured(&fv.grid[t.xInput]) {
			t.ignore = true
		}
	default:
		if diamondIsObscured(&fv.grid[t.xInput]) && diamondIsObscured(&fv.grid[t.yInput]) {
			t.ignore = true
		}
	}
	if !t.ignore && !fv.m.IsTransparent(x, y) {
		t.xError, t.xObscurity = absInt(t.xRel), absInt(t.xRel)
		t.yError, t.yObscurity = absInt(t.yRel), absInt(t.yRel)
	}
}

// expandFrom enqueues the (up to) four axis-adjacent outward neighbors of
// idx, away from the POV along each axis the tile already lies on.
func (fv *diamondFOV) expandFrom(idx int) {
	t := fv.grid[idx]
	if t.ignore {
		return
	}
	if t.xRel >= 0 {
		fv.processRay(fv.getRay(t.xRel+1, t.yRel), idx)
	}
	if t.xRel <= 0 {
		fv.processRay(fv.getRay(t.xRel-1, t.yRel), idx)
	}
	if t.yRel >= 0 {
		fv.processRay(fv.getRay(t.xRel, t.yRel+1), idx)
	}
	if t.yRel <= 0 {
		fv.processRay(fv.getRay(t.xRel, t.yRel-1), idx)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// computeDiamond implements the DIAMOND algorithm: a diamond-shaped
// raycast walk outward from the POV, tracking a per-tile obscurity vector
// that lets later tiles detect they fall inside an earlier wall's shadow
// cone.
func computeDiamond(m *Map, povX, povY, maxRadius int, lightWalls bool) {
	radiusSquared := maxRadius * maxRadius
	m.SetInFOV(povX, povY, true)

	fv := &diamondFOV{
		m:     m,
		povX:  povX,
		povY:  povY,
		grid:  make([]diamondTile, m.CellCount()),
		queue: make([]int, 0, m.CellCount()),
	}
	for i := range fv.grid {
		fv.grid[i].xInput = -1
		fv.grid[i].yInput = -1
	}

	origin := fv.getRay(0, 0)
	fv.grid[origin].touched = true
	fv.expandFrom(origin)

	for head := 0; head < len(fv.queue); head++ {
		idx := fv.queue[head]
		t := &fv.grid[idx]
		if radiusSquared <= 0 || t.xRel*t.xRel+t.yRel*t.yRel <= radiusSquared {
			fv.mergeInput(idx)
		} else {
			t.ignore = true
		}
		fv.expandFrom(idx)

		if t.ignore {
			continue
		}
		if t.xError > 0 && t.xError <= t.xObscurity {
			continue
		}
		if t.yError > 0 && t.yError <= t.yObscurity {
			continue
		}
		mx, my := povX+t.xRel, povY+t.yRel
		m.innerMap.Cells[m.index(mx, my)].Fov = true
	}

	if lightWalls {
		postprocessWalls(m, povX, povY, maxRadius)
	}
}
