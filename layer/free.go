package layer

import (
	"github.com/katalvlaran/fieldwire/geom"
)

// NewFreeLayer builds a Free layer from explicit per-gid positions. Every
// position must lie within [lowerLeft, lowerLeft+extent]; on a periodic
// axis it additionally must not sit exactly on that axis's boundary.
func NewFreeLayer(lowerLeft, extent geom.Position, periodic []bool, gids []NodeID, positions []geom.Position, opts ...Option) (*Layer, error) {
	if err := validateCommon(lowerLeft, extent, periodic); err != nil {
		return nil, err
	}
	if len(positions) != len(gids) {
		return nil, ErrPositionCount
	}
	upperRight, err := geom.Add(lowerLeft, extent)
	if err != nil {
		return nil, err
	}
	dim := lowerLeft.Dim()
	for _, p := range positions {
		if p.Dim() != dim {
			return nil, ErrDimensionMismatch
		}
		le, err := geom.LE(lowerLeft, p)
		if err != nil {
			return nil, err
		}
		ge, err := geom.LE(p, upperRight)
		if err != nil {
			return nil, err
		}
		if !le || !ge {
			return nil, ErrPositionOutOfBounds
		}
		for axis, per := range periodic {
			if !per {
				continue
			}
			if p[axis] == lowerLeft[axis] || p[axis] == upperRight[axis] {
				return nil, ErrPositionOnPerimeter
			}
		}
	}

	cfg := newConfig(opts)
	if cfg.leafCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	gidsCopy := make([]NodeID, len(gids))
	copy(gidsCopy, gids)
	positionsCopy := make([]geom.Position, len(positions))
	for i, p := range positions {
		positionsCopy[i] = p.Clone()
	}

	return &Layer{
		LowerLeft:    lowerLeft.Clone(),
		Extent:       extent.Clone(),
		Periodic:     append([]bool(nil), periodic...),
		Depth:        1,
		GIDs:         gidsCopy,
		kind:         Free,
		positions:    positionsCopy,
		leafCapacity: cfg.leafCapacity,
		cache:        &positionCache{},
	}, nil
}
