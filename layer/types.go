package layer

import (
	"errors"
	"sync"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/ntree"
)

// Sentinel errors for layer operations.
var (
	ErrDegenerateExtent    = errors.New("layer: extent component must be > 0")
	ErrDimensionMismatch   = errors.New("layer: dimension mismatch")
	ErrShapeMismatch       = errors.New("layer: product(shape)*depth must equal len(gids)")
	ErrPositionCount       = errors.New("layer: len(positions) must equal len(gids)")
	ErrPositionOutOfBounds = errors.New("layer: position lies outside layer extent")
	ErrPositionOnPerimeter = errors.New("layer: position lies on a periodic axis's perimeter")
	ErrInvalidCapacity     = errors.New("layer: leaf capacity must be > 0")
)

// NodeID is an opaque handle supplied by the external node manager. Two
// distinct nodes never share an id.
type NodeID uint64

// Kind distinguishes a Layer's population family.
type Kind int

const (
	// Grid positions are derived from a row/column[/layer] shape.
	Grid Kind = iota
	// Free positions are supplied explicitly per node.
	Free
)

// PositionNode pairs a node id with its position, the element type of a
// Layer's flat vector view.
type PositionNode struct {
	Pos geom.Position
	ID  NodeID
}

type viewKind int

const (
	viewNone viewKind = iota
	viewTree
	viewVector
)

// positionCache memoises one of {Ntree, vector} view of a Layer's
// positions, converting in place when a different view is requested.
type positionCache struct {
	mu     sync.Mutex
	kind   viewKind
	tree   *ntree.Tree[NodeID]
	vector []PositionNode
}

// Layer is an immutable population of nodes sharing an extent and
// periodicity, with a lazily-materialised, cached spatial view.
type Layer struct {
	LowerLeft geom.Position
	Extent    geom.Position
	Periodic  []bool
	Depth     uint32
	GIDs      []NodeID

	kind         Kind
	shape        []int
	positions    []geom.Position
	leafCapacity int
	cache        *positionCache
}

// Option configures a Layer at construction time.
type Option func(*config)

type config struct {
	leafCapacity int
}

func newConfig(opts []Option) config {
	c := config{leafCapacity: 100}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithLeafCapacity overrides the Ntree leaf capacity used when this layer's
// position cache materialises a spatial-index view (default 100).
func WithLeafCapacity(n int) Option {
	return func(c *config) { c.leafCapacity = n }
}

// Dim returns the layer's dimension (2 or 3).
func (l *Layer) Dim() int { return l.LowerLeft.Dim() }

// KindOf reports whether this layer is Grid or Free.
func (l *Layer) KindOf() Kind { return l.kind }

// Shape returns the Grid shape, or nil for a Free layer.
func (l *Layer) Shape() []int { return l.shape }

// UpperRight returns LowerLeft + Extent.
func (l *Layer) UpperRight() (geom.Position, error) {
	return geom.Add(l.LowerLeft, l.Extent)
}

func validateCommon(lowerLeft, extent geom.Position, periodic []bool) error {
	d := lowerLeft.Dim()
	if extent.Dim() != d || len(periodic) != d {
		return ErrDimensionMismatch
	}
	for i := 0; i < d; i++ {
		if extent[i] <= 0 {
			return ErrDegenerateExtent
		}
	}
	return nil
}
