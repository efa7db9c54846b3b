package ntree

import (
	"errors"

	"github.com/katalvlaran/fieldwire/geom"
)

// Sentinel errors for ntree operations.
var (
	// ErrDimensionMismatch indicates a Position's dimension disagrees with the tree's.
	ErrDimensionMismatch = errors.New("ntree: dimension mismatch")

	// ErrOutOfBounds indicates a Position lies outside the tree's root box on
	// a non-periodic axis.
	ErrOutOfBounds = errors.New("ntree: position out of bounds")

	// ErrInvalidCapacity indicates WithLeafCapacity received a non-positive value.
	ErrInvalidCapacity = errors.New("ntree: leaf capacity must be > 0")
)

// defaultLeafCapacity is the default number of points a leaf holds before
// splitting.
const defaultLeafCapacity = 100

// maxSplitDepth bounds recursive leaf splitting: coincident or
// near-coincident points would otherwise split forever trying to separate
// them into ever-smaller children. Past this depth, a leaf simply grows
// past leafCapacity rather than splitting further.
const maxSplitDepth = 64

type entry[V any] struct {
	pos geom.Position
	val V
}

// node is either a leaf (children == nil) holding entries directly, or a
// branch with exactly 2^D children and no entries of its own.
type node[V any] struct {
	box      geom.Box
	entries  []entry[V]
	children []*node[V]
}

// Tree is an N-dimensional spatial index over Box, generic over the payload
// type V (instantiated by this module as layer.NodeID).
type Tree[V any] struct {
	root         *node[V]
	dim          int
	periodic     []bool
	leafCapacity int
	count        int
}

// Option configures a Tree at construction time.
type Option func(*config)

type config struct {
	leafCapacity int
}

func newConfig(opts []Option) config {
	c := config{leafCapacity: defaultLeafCapacity}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithLeafCapacity overrides the default leaf capacity of 100.
func WithLeafCapacity(n int) Option {
	return func(c *config) { c.leafCapacity = n }
}
