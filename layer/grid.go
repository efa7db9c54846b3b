package layer

import (
	"github.com/katalvlaran/fieldwire/geom"
)

// NewGridLayer builds a Grid layer: shape gives the (row, column[, layer])
// cell counts and depth the number of nodes stacked at each cell; gids must
// be ordered so that for every cell, its depth consecutive gids occupy that
// cell in turn (cell order: axis 0 fastest, axis 1 next, axis 2 slowest).
// Positions are computed once at construction following the "matrix
// convention": axis 1 (rows) is inverted when mapping cell index to
// position, i.e. cell (i,0) sits at the layer's visual top, not its
// lower-left.
func NewGridLayer(lowerLeft, extent geom.Position, periodic []bool, shape []int, depth uint32, gids []NodeID, opts ...Option) (*Layer, error) {
	if err := validateCommon(lowerLeft, extent, periodic); err != nil {
		return nil, err
	}
	dim := lowerLeft.Dim()
	if len(shape) != dim {
		return nil, ErrDimensionMismatch
	}
	for _, s := range shape {
		if s <= 0 {
			return nil, ErrShapeMismatch
		}
	}
	if depth == 0 {
		return nil, ErrShapeMismatch
	}
	cellCount := 1
	for _, s := range shape {
		cellCount *= s
	}
	if cellCount*int(depth) != len(gids) {
		return nil, ErrShapeMismatch
	}

	cfg := newConfig(opts)
	if cfg.leafCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	positions := make([]geom.Position, len(gids))
	idx := 0
	for cell := 0; cell < cellCount; cell++ {
		p := gridCellPosition(lowerLeft, extent, shape, cell)
		for d := uint32(0); d < depth; d++ {
			positions[idx] = p
			idx++
		}
	}

	shapeCopy := make([]int, dim)
	copy(shapeCopy, shape)
	gidsCopy := make([]NodeID, len(gids))
	copy(gidsCopy, gids)

	return &Layer{
		LowerLeft:    lowerLeft.Clone(),
		Extent:       extent.Clone(),
		Periodic:     append([]bool(nil), periodic...),
		Depth:        depth,
		GIDs:         gidsCopy,
		kind:         Grid,
		shape:        shapeCopy,
		positions:    positions,
		leafCapacity: cfg.leafCapacity,
		cache:        &positionCache{},
	}, nil
}

// gridCellPosition decodes cell (a row-major index over shape, axis 0
// fastest) into its grid coordinates and maps them to a real position.
func gridCellPosition(lowerLeft, extent geom.Position, shape []int, cell int) geom.Position {
	dim := len(shape)
	coord := make([]int, dim)
	rem := cell
	for axis := 0; axis < dim; axis++ {
		coord[axis] = rem % shape[axis]
		rem /= shape[axis]
	}

	pos := make(geom.Position, dim)
	for axis := 0; axis < dim; axis++ {
		i := coord[axis]
		if axis == 1 {
			i = shape[axis] - 1 - i
		}
		pos[axis] = lowerLeft[axis] + extent[axis]/float64(shape[axis])*(float64(i)+0.5)
	}
	return pos
}
