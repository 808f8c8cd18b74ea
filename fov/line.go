package fov

// LineIter walks the integer grid points of a Bresenham line, excluding the
// starting point. It is a plain value: independent LineIter values may be
// stepped in any interleaving without interference, satisfying the
// reentrancy contract that the walker must support.
type LineIter struct {
	origX, origY   int
	destX, destY   int
	deltaX, deltaY int
	stepX, stepY   int
	e              int
}

// NewLine initializes a line walk from (x0, y0) to (x1, y1). Call Step
// repeatedly to retrieve the points of the line; the starting point is not
// returned by Step.
func NewLine(x0, y0, x1, y1 int) LineIter {
	it := LineIter{origX: x0, origY: y0, destX: x1, destY: y1}
	it.deltaX = x1 - x0
	it.deltaY = y1 - y0
	switch {
	case it.deltaX > 0:
		it.stepX = 1
	case it.deltaX < 0:
		it.stepX = -1
	}
	switch {
	case it.deltaY > 0:
		it.stepY = 1
	case it.deltaY < 0:
		it.stepY = -1
	}
	if it.stepX*it.deltaX >= it.stepY*it.deltaY {
		it.e = it.stepX * it.deltaX
	} else {
		it.e = it.stepY * it.deltaY
	}
	it.deltaX *= 2
	it.deltaY *= 2
	return it
}

// Step advances the walk by one point and returns it. done is true once the
// destination has already been returned by a previous call; in that case
// (x, y) is meaningless.
func (it *LineIter) Step() (x, y int, done bool) {
	if it.stepX*it.deltaX >= it.stepY*it.deltaY {
		if it.origX == it.destX {
			return 0, 0, true
		}
		it.origX += it.stepX
		it.e -= it.stepY * it.deltaY
		if it.e < 0 {
			it.origY += it.stepY
			it.e += it.stepX * it.deltaX
		}
	} else {
		if it.origY == it.destY {
			return 0, 0, true
		}
		it.origY += it.stepY
		it.e -= it.stepX * it.deltaX
		if it.e < 0 {
			it.origX += it.stepX
			it.e += it.stepY * it.deltaY
		}
	}
	return it.origX, it.origY, false
}

// Walk invokes callback(x, y) for every point on the line from (x0, y0) to
// (x1, y1), inclusive of both endpoints, in order. It stops early if
// callback returns false and reports that interruption by returning false;
// it returns true only if the whole line was walked.
func Walk(x0, y0, x1, y1 int, callback func(x, y int) bool) bool {
	it := NewLine(x0, y0, x1, y1)
	x, y := x0, y0
	for {
		if !callback(x, y) {
			return false
		}
		var done bool
		x, y, done = it.Step()
		if done {
			return true
		}
	}
}
