package paths

// Point is an integer grid coordinate pair. fov.Map addresses cells by
// plain (x, y) ints; Point pairs them so the pathfinders stay independent
// of any one map representation.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Shift returns p shifted by (x, y).
func (p Point) Shift(x, y int) Point {
	return Point{p.X + x, p.Y + y}
}

// Range is a half-open rectangle of points, [Min, Max).
type Range struct {
	Min, Max Point
}

// NewRange returns the Range with the given corners, normalized so that Min
// is the top-left corner and Max the bottom-right one.
func NewRange(x0, y0, x1, y1 int) Range {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Range{Point{x0, y0}, Point{x1, y1}}
}

// Size returns the range's (width, height) as a Point.
func (r Range) Size() Point {
	return Point{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y}
}

// In reports whether p lies within the range.
func (r Range) In(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}
