package fov

// permissiveStepSize is the fixed-point scale factor Duerig's algorithm
// uses so that half-integer view bounds (the offset/limit aperture) can be
// represented with plain ints.
const permissiveStepSize = 16

// permissiveLine is a view boundary: the line through (xi, yi) and (xf, yf)
// used to classify a point as above, below, or collinear with it.
type permissiveLine struct {
	xi, yi, xf, yf int
}

func permissiveRelativeSlope(l permissiveLine, x, y int) int {
	return (l.yf-l.yi)*(l.xf-x) - (l.xf-l.xi)*(l.yf-y)
}
func permissiveBelow(l permissiveLine, x, y int) bool           { return permissiveRelativeSlope(l, x, y) > 0 }
func permissiveBelowOrColinear(l permissiveLine, x, y int) bool { return permissiveRelativeSlope(l, x, y) >= 0 }
func permissiveAbove(l permissiveLine, x, y int) bool           { return permissiveRelativeSlope(l, x, y) < 0 }
func permissiveAboveOrColinear(l permissiveLine, x, y int) bool { return permissiveRelativeSlope(l, x, y) <= 0 }
func permissiveColinear(l permissiveLine, x, y int) bool        { return permissiveRelativeSlope(l, x, y) == 0 }

func permissiveLineColinear(l1, l2 permissiveLine) bool {
	return permissiveColinear(l1, l2.xi, l2.yi) && permissiveColinear(l1, l2.xf, l2.yf)
}

// permissiveBump is one corner that has narrowed a view's shallow or steep
// edge, linked back to the bump that narrowed it before, or -1 at the root.
type permissiveBump struct {
	x, y   int
	parent int
}

// permissiveView is a wedge of visibility bounded by a shallow and a steep
// line, each carrying its own bump history.
type permissiveView struct {
	shallowLine, steepLine permissiveLine
	shallowBump, steepBump int
}

// permissiveFOV holds the scratch state for one PERMISSIVE(p) quadrant
// scan: a dense, map-cell-indexed pool of views (at most one per cell ever
// originates a view), a preallocated bump pool, and the ordered list of
// currently active views, addressed by index rather than pointer so the
// scratch arrays never need to grow mid-scan.
type permissiveFOV struct {
	m             *Map
	povX, povY    int
	lightWalls    bool
	offset, limit int
	radiusSquared int

	views []permissiveView

	bumps     []permissiveBump
	bumpCount int

	activeViews []int
	activeCount int
}

func (fv *permissiveFOV) pushBump(x, y, parent int) int {
	idx := fv.bumpCount
	fv.bumps[idx] = permissiveBump{x: x, y: y, parent: parent}
	fv.bumpCount++
	return idx
}

func (fv *permissiveFOV) addShallowBump(x, y int, view *permissiveView) {
	view.shallowLine.xf = x
	view.shallowLine.yf = y
	bumpIdx := fv.pushBump(x, y, view.shallowBump)
	view.shallowBump = bumpIdx
	for cur := view.steepBump; cur >= 0; cur = fv.bumps[cur].parent {
		b := fv.bumps[cur]
		if permissiveAbove(view.shallowLine, b.x, b.y) {
			view.shallowLine.xi = b.x
			view.shallowLine.yi = b.y
		}
	}
}

func (fv *permissiveFOV) addSteepBump(x, y int, view *permissiveView) {
	view.steepLine.xf = x
	view.steepLine.yf = y
	bumpIdx := fv.pushBump(x, y, view.steepBump)
	view.steepBump = bumpIdx
	for cur := view.shallowBump; cur >= 0; cur = fv.bumps[cur].parent {
		b := fv.bumps[cur]
		if permissiveBelow(view.steepLine, b.x, b.y) {
			view.steepLine.xi = b.x
			view.steepLine.yi = b.y
		}
	}
}

func (fv *permissiveFOV) pushActiveView(viewIdx int) {
	fv.activeViews[fv.activeCount] = viewIdx
	fv.activeCount++
}

func (fv *permissiveFOV) removeActiveView(index int) {
	for i := index; i < fv.activeCount-1; i++ {
		fv.activeViews[i] = fv.activeViews[i+1]
	}
	fv.activeCount--
}

func (fv *permissiveFOV) insertActiveView(index, viewIdx int) {
	fv.activeCount++
	for i := fv.activeCount - 1; i > index; i-- {
		fv.activeViews[i] = fv.activeViews[i-1]
	}
	fv.activeViews[index] = viewIdx
}

// checkView discards the view at active-list position it if its two edges
// have collapsed onto one line through both quadrant corners, meaning the
// wedge it covers has zero width left. It reports whether the view survived.
func (fv *permissiveFOV) checkView(it int) bool {
	view := &fv.views[fv.activeViews[it]]
	if permissiveLineColinear(view.shallowLine, view.steepLine) &&
		(permissiveColinear(view.shallowLine, fv.offset, fv.limit) || permissiveColinear(view.shallowLine, fv.limit, fv.offset)) {
		fv.removeActiveView(it)
		return false
	}
	return true
}

// isBlocked lights the cell at the scaled coordinates (x, y) of quadrant
// (dx, dy) unless it falls outside the configured radius, and reports
// whether it is opaque.
func (fv *permissiveFOV) isBlocked(x, y, dx, dy int) bool {
	posX := x*dx/permissiveStepSize + fv.povX
	posY := y*dy/permissiveStepSize + fv.povY
	if fv.radiusSquared > 0 {
		ddx, ddy := posX-fv.povX, posY-fv.povY
		if ddx*ddx+ddy*ddy > fv.radiusSquared {
			return false
		}
	}
	i := fv.m.index(posX, posY)
	blocked := !fv.m.innerMap.Cells[i].Transparent
	if !blocked || fv.lightWalls {
		fv.m.innerMap.Cells[i].Fov = true
	}
	return blocked
}

// visitCoords processes one scaled grid square of the quadrant scan,
// advancing currentView past any views the square's far corner has already
// cleared, then narrowing, splitting, or discarding the view it lands in.
func (fv *permissiveFOV) visitCoords(x, y, dx, dy int, currentView *int) {
	tlx, tly := x, y+permissiveStepSize
	brx, bry := x+permissiveStepSize, y

	for *currentView != fv.activeCount {
		view := &fv.views[fv.activeViews[*currentView]]
		if !permissiveBelowOrColinear(view.steepLine, brx, bry) {
			break
		}
		*currentView++
	}
	if *currentView == fv.activeCount {
		return
	}
	view := &fv.views[fv.activeViews[*currentView]]
	if permissiveAboveOrColinear(view.shallowLine, tlx, tly) {
		return
	}
	if !fv.isBlocked(x, y, dx, dy) {
		return
	}
	switch {
	case permissiveAbove(view.shallowLine, brx, bry) && permissiveBelow(view.steepLine, tlx, tly):
		fv.removeActiveView(*currentView)
	case permissiveAbove(view.shallowLine, brx, bry):
		fv.addShallowBump(tlx, tly, view)
		fv.checkView(*currentView)
	case permissiveBelow(view.steepLine, tlx, tly):
		fv.addSteepBump(brx, bry, view)
		fv.checkView(*currentView)
	default:
		viewsOffset := fv.povX + x*dx/permissiveStepSize + (fv.povY+y*dy/permissiveStepSize)*fv.m.innerMap.Width
		shallower := &fv.views[viewsOffset]
		viewIndex := *currentView
		*shallower = *view
		fv.insertActiveView(viewIndex, viewsOffset)
		shallowerIt := viewIndex
		steeperIt := shallowerIt + 1
		*currentView = shallowerIt

		fv.addSteepBump(brx, bry, shallower)
		if !fv.checkView(shallowerIt) {
			steeperIt--
		}
		steeper := &fv.views[fv.activeViews[steeperIt]]
		fv.addShallowBump(tlx, tly, steeper)
		fv.checkView(steeperIt)

		if viewIndex > fv.activeCount {
			*currentView = fv.activeCount
		}
	}
}

// checkQuadrant scans one of the four quadrants around the POV, sweeping
// diagonals of increasing Manhattan distance outward and narrowing the set
// of active views as walls bump their edges.
func (fv *permissiveFOV) checkQuadrant(dx, dy, extentX, extentY int) {
	fv.bumpCount = 0
	fv.activeCount = 0

	origin := &fv.views[fv.povX+fv.povY*fv.m.innerMap.Width]
	origin.shallowLine = permissiveLine{fv.offset, fv.limit, extentX * permissiveStepSize, 0}
	origin.steepLine = permissiveLine{fv.limit, fv.offset, 0, extentY * permissiveStepSize}
	origin.shallowBump = -1
	origin.steepBump = -1
	fv.pushActiveView(fv.povX + fv.povY*fv.m.innerMap.Width)

	maxI := extentX + extentY
	for i := 1; i <= maxI; i++ {
		if fv.activeCount == 0 {
			break
		}
		currentView := 0
		startJ := max(i-extentX, 0)
		maxJ := min(i, extentY)
		for j := startJ; j <= maxJ; j++ {
			if fv.activeCount == 0 || currentView == fv.activeCount {
				break
			}
			x := (i - j) * permissiveStepSize
			y := j * permissiveStepSize
			fv.visitCoords(x, y, dx, dy, &currentView)
		}
	}
}

// computePermissive implements PERMISSIVE(p): Duerig's precise permissive
// field of view, sweeping each quadrant as a set of active views whose
// shallow and steep edges get bumped inward by the corners of discovered
// walls, splitting a view in two whenever a wall crosses it without
// blocking it entirely. p widens or narrows the aperture used to seed each
// quadrant's initial view window.
func computePermissive(m *Map, povX, povY, maxRadius int, lightWalls bool, p int) error {
	if p < 0 || p > 8 {
		return newError(ErrInvalidArgument, "fov: ComputeFOV: permissiveness %d out of range [0, 8]", p)
	}
	offset := 8 - p
	limit := 8 + p

	m.SetInFOV(povX, povY, true)

	minX, maxX := povX, m.innerMap.Width-povX-1
	minY, maxY := povY, m.innerMap.Height-povY-1
	if maxRadius > 0 {
		minX = min(minX, maxRadius)
		maxX = min(maxX, maxRadius)
		minY = min(minY, maxRadius)
		maxY = min(maxY, maxRadius)
	}

	cellCount := m.CellCount()
	fv := &permissiveFOV{
		m:             m,
		povX:          povX,
		povY:          povY,
		lightWalls:    lightWalls,
		offset:        offset,
		limit:         limit,
		radiusSquared: maxRadius * maxRadius,
		views:         make([]permissiveView, cellCount),
		bumps:         make([]permissiveBump, cellCount),
		activeViews:   make([]int, cellCount),
	}

	fv.checkQuadrant(1, 1, maxX, maxY)
	fv.checkQuadrant(1, -1, maxX, minY)
	fv.checkQuadrant(-1, -1, minX, minY)
	fv.checkQuadrant(-1, 1, minX, maxY)
	return nil
}
