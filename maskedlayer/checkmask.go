package maskedlayer

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/mask"
)

// checkMask validates m against l (Grid-mask/Grid-layer pairing, oversize
// guard) and, if m is a Grid mask, translates it into an equivalent Box
// mask expressed in l's real coordinates.
func checkMask(l *layer.Layer, m mask.Mask, periodic []bool, extent geom.Position, allowOversized bool) (mask.Mask, error) {
	if m.Dim() != l.Dim() {
		return nil, ErrDimensionMismatch
	}

	if shape, ok := mask.GridShape(m); ok {
		if l.KindOf() != layer.Grid {
			return nil, ErrGridMaskRequiresGridLayer
		}
		anchor, _ := mask.GridAnchor(m)
		translated, err := gridMaskToBox(l, shape, anchor)
		if err != nil {
			return nil, err
		}
		m = translated
	}

	if allowOversized {
		return m, nil
	}
	bbox, err := m.BoundingBox()
	if err != nil {
		// An unbounded mask (All) has no finite bbox to compare; it can
		// never be "oversized" in a way the layer could reject.
		return m, nil
	}
	side, err := geom.Sub(bbox.UpperRight, bbox.LowerLeft)
	if err != nil {
		return nil, err
	}
	for i, per := range periodic {
		if !per {
			continue
		}
		if side[i] > extent[i] {
			return nil, ErrMaskExceedsLayer
		}
	}
	return m, nil
}

// gridMaskToBox translates a Grid mask (shape, anchor, in grid-cell units)
// into a Box mask in l's real coordinates. Axis 1 is reflected through l's
// grid-index flip (the same "matrix convention" layer.NewGridLayer applies
// when mapping cell indices to positions), so that a Grid mask anchored at
// grid row 0 lands on the same physical row as grid cell (i,0).
func gridMaskToBox(l *layer.Layer, maskShape, anchor []int) (mask.Mask, error) {
	layerShape := l.Shape()
	dim := len(layerShape)
	lower := make(geom.Position, dim)
	upper := make(geom.Position, dim)
	for axis := 0; axis < dim; axis++ {
		cellSize := l.Extent[axis] / float64(layerShape[axis])
		if axis == 1 {
			lowRow := layerShape[axis] - (anchor[axis] + maskShape[axis])
			highRow := layerShape[axis] - anchor[axis]
			lower[axis] = l.LowerLeft[axis] + cellSize*float64(lowRow)
			upper[axis] = l.LowerLeft[axis] + cellSize*float64(highRow)
			continue
		}
		lower[axis] = l.LowerLeft[axis] + cellSize*float64(anchor[axis])
		upper[axis] = l.LowerLeft[axis] + cellSize*float64(anchor[axis]+maskShape[axis])
	}
	return mask.NewBoxMask(lower, upper, 0, 0)
}
