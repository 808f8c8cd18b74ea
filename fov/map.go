// Package fov computes, for a grid-based 2D map of transparent/opaque
// cells and a chosen point-of-view cell, which cells are visible from
// that point of view under a chosen visibility algorithm.
package fov

import (
	"bytes"
	"encoding/gob"
)

// Cell holds the three independent booleans tracked per map position. The
// zero value has all three false.
type Cell struct {
	Transparent bool // light and rays may pass through this cell
	Walkable    bool // usable by pathfinding collaborators; untouched by FOV
	Fov         bool // set by ComputeFOV and SetInFOV, cleared by Clear
}

// Map is a rectangular grid of Cells, owned exclusively by its caller.
// Map implements gob.GobDecoder and gob.GobEncoder for easy serialization.
type Map struct {
	innerMap
}

type innerMap struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewMap allocates a width x height grid with every cell false. It reports
// an error if width or height is not strictly positive.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, newError(ErrInvalidArgument, "fov: NewMap(%d, %d): dimensions must be positive", width, height)
	}
	return &Map{innerMap{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}}, nil
}

// GobDecode implements gob.GobDecoder.
func (m *Map) GobDecode(bs []byte) error {
	r := bytes.NewReader(bs)
	gd := gob.NewDecoder(r)
	im := &innerMap{}
	if err := gd.Decode(im); err != nil {
		return err
	}
	m.innerMap = *im
	return nil
}

// GobEncode implements gob.GobEncoder.
func (m *Map) GobEncode() ([]byte, error) {
	buf := bytes.Buffer{}
	ge := gob.NewEncoder(&buf)
	err := ge.Encode(&m.innerMap)
	return buf.Bytes(), err
}

// Width returns the map's width in cells. It returns 0 for a nil Map.
func (m *Map) Width() int {
	if m == nil {
		return 0
	}
	return m.innerMap.Width
}

// Height returns the map's height in cells. It returns 0 for a nil Map.
func (m *Map) Height() int {
	if m == nil {
		return 0
	}
	return m.innerMap.Height
}

// CellCount returns width * height. It returns 0 for a nil Map.
func (m *Map) CellCount() int {
	if m == nil {
		return 0
	}
	return len(m.innerMap.Cells)
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (m *Map) InBounds(x, y int) bool {
	if m == nil {
		return false
	}
	return 0 <= x && x < m.innerMap.Width && 0 <= y && y < m.innerMap.Height
}

func (m *Map) index(x, y int) int {
	return x + y*m.innerMap.Width
}

// Clear sets every cell to the given transparent/walkable properties and
// zeroes every cell's Fov flag.
func (m *Map) Clear(transparent, walkable bool) {
	if m == nil {
		return
	}
	for i := range m.innerMap.Cells {
		m.innerMap.Cells[i] = Cell{Transparent: transparent, Walkable: walkable}
	}
}

// clearFov zeroes every cell's Fov flag, leaving Transparent/Walkable alone.
func (m *Map) clearFov() {
	for i := range m.innerMap.Cells {
		m.innerMap.Cells[i].Fov = false
	}
}

// Copy clones source's dimensions and cell data into m, reallocating m's
// backing storage only if the cell counts differ. It fails with
// ErrInvalidArgument if either map is nil.
func (m *Map) Copy(source *Map) error {
	if m == nil || source == nil {
		return newError(ErrInvalidArgument, "fov: Copy: source and dest must be non-nil")
	}
	if len(m.innerMap.Cells) != len(source.innerMap.Cells) {
		m.innerMap.Cells = make([]Cell, len(source.innerMap.Cells))
	}
	m.innerMap.Width = source.innerMap.Width
	m.innerMap.Height = source.innerMap.Height
	copy(m.innerMap.Cells, source.innerMap.Cells)
	return nil
}

// SetProperties updates the transparent/walkable flags of cell (x, y). It is
// a no-op if (x, y) is out of bounds.
func (m *Map) SetProperties(x, y int, transparent, walkable bool) {
	if !m.InBounds(x, y) {
		return
	}
	i := m.index(x, y)
	m.innerMap.Cells[i].Transparent = transparent
	m.innerMap.Cells[i].Walkable = walkable
}

// SetInFOV sets the Fov flag of cell (x, y) directly. It is a no-op if
// (x, y) is out of bounds.
func (m *Map) SetInFOV(x, y int, inFov bool) {
	if !m.InBounds(x, y) {
		return
	}
	m.innerMap.Cells[m.index(x, y)].Fov = inFov
}

// IsInFOV reports whether cell (x, y) was marked visible by the last
// ComputeFOV call (or by SetInFOV since). Out-of-bounds returns false.
func (m *Map) IsInFOV(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.innerMap.Cells[m.index(x, y)].Fov
}

// IsTransparent reports whether light may pass through cell (x, y).
// Out-of-bounds returns false.
func (m *Map) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.innerMap.Cells[m.index(x, y)].Transparent
}

// IsWalkable reports whether cell (x, y) is usable by pathfinding
// collaborators. Out-of-bounds returns false.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.innerMap.Cells[m.index(x, y)].Walkable
}
