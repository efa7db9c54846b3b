package ntree

import (
	"github.com/katalvlaran/fieldwire/geom"
)

// NewTree builds an empty Tree rooted at box, with periodic marking which
// axes wrap (len(periodic) must equal box's dimension). leafCapacity
// defaults to 100; override with WithLeafCapacity.
func NewTree[V any](box geom.Box, periodic []bool, opts ...Option) (*Tree[V], error) {
	dim := box.LowerLeft.Dim()
	if len(periodic) != dim {
		return nil, ErrDimensionMismatch
	}
	cfg := newConfig(opts)
	if cfg.leafCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	per := make([]bool, dim)
	copy(per, periodic)
	return &Tree[V]{
		root:         &node[V]{box: box},
		dim:          dim,
		periodic:     per,
		leafCapacity: cfg.leafCapacity,
	}, nil
}

// Len returns the number of (position, value) pairs currently stored.
func (t *Tree[V]) Len() int { return t.count }

// Dim returns the tree's dimension.
func (t *Tree[V]) Dim() int { return t.dim }

// Extent returns the root box's per-axis size.
func (t *Tree[V]) Extent() (geom.Position, error) {
	return geom.Sub(t.root.box.UpperRight, t.root.box.LowerLeft)
}
