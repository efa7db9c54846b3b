package mask

import "github.com/katalvlaran/fieldwire/geom"

// gridMask lives in integer grid coordinates and is only meaningful once
// translated into a Box mask against a Grid layer; direct Inside()/
// BoundingBox() calls are a hard error.
type gridMask struct {
	shape  []int
	anchor []int
}

func (*gridMask) isMask() {}

// NewGrid constructs a Grid mask: shape is the (row, column[, layer]) extent
// in grid cells, anchor is the grid-index offset applied before conversion
// to a Box mask. Every shape component must be > 0.
func NewGrid(shape, anchor []int) (Mask, error) {
	for _, s := range shape {
		if s <= 0 {
			return nil, ErrInvalidShape
		}
	}
	shapeCopy := append([]int(nil), shape...)
	anchorCopy := append([]int(nil), anchor...)
	return &gridMask{shape: shapeCopy, anchor: anchorCopy}, nil
}

// GridShape returns the grid mask's shape (read-only use by maskedlayer.CheckMask).
func GridShape(m Mask) ([]int, bool) {
	g, ok := m.(*gridMask)
	if !ok {
		return nil, false
	}
	return g.shape, true
}

// GridAnchor returns the grid mask's anchor (read-only use by maskedlayer.CheckMask).
func GridAnchor(m Mask) ([]int, bool) {
	g, ok := m.(*gridMask)
	if !ok {
		return nil, false
	}
	return g.anchor, true
}

func (m *gridMask) Dim() int { return len(m.shape) }

func (m *gridMask) Inside(p geom.Position) (bool, error) {
	return false, ErrGridRealCoordinates
}

func (m *gridMask) InsideBox(b geom.Box) (bool, error) {
	return false, ErrGridRealCoordinates
}

func (m *gridMask) OutsideBox(b geom.Box) (bool, error) {
	return false, ErrGridRealCoordinates
}

func (m *gridMask) BoundingBox() (geom.Box, error) {
	return geom.Box{}, ErrGridRealCoordinates
}
