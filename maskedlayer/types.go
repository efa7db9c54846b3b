package maskedlayer

import (
	"errors"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/mask"
	"github.com/katalvlaran/fieldwire/ntree"
)

// Sentinel errors for maskedlayer operations.
var (
	ErrGridMaskRequiresGridLayer = errors.New("maskedlayer: grid mask requires a grid layer")
	ErrMaskExceedsLayer          = errors.New("maskedlayer: mask bounding box exceeds layer extent on a periodic axis")
	ErrDimensionMismatch         = errors.New("maskedlayer: dimension mismatch")
)

// MaskedLayer packages a Layer's position store with a Mask, ready for
// repeated Iterator(anchor) queries. Built once via NewDirect or
// NewConverse; immutable thereafter.
type MaskedLayer struct {
	mask mask.Mask
	tree *ntree.Tree[layer.NodeID]
}

// Iterator returns a range-over-func iterator yielding every (position,
// NodeID) pair of the underlying position store whose position satisfies
// the attached mask at anchor, taking periodic wrap into account.
func (ml *MaskedLayer) Iterator(anchor geom.Position) func(yield func(geom.Position, layer.NodeID) bool) {
	return ml.tree.MaskedIterator(ml.mask, anchor)
}

// Mask returns the mask attached to this MaskedLayer (Converse-wrapped, in
// Converse mode).
func (ml *MaskedLayer) Mask() mask.Mask { return ml.mask }
