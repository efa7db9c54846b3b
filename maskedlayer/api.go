package maskedlayer

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/mask"
	"github.com/katalvlaran/fieldwire/ntree"
)

// NewDirect attaches m to l directly: Iterator queries l's own position
// store with l's own periodicity.
func NewDirect(l *layer.Layer, m mask.Mask, allowOversized bool) (*MaskedLayer, error) {
	checked, err := checkMask(l, m, l.Periodic, l.Extent, allowOversized)
	if err != nil {
		return nil, err
	}
	tree, err := l.Tree()
	if err != nil {
		return nil, err
	}
	return &MaskedLayer{mask: checked, tree: tree}, nil
}

// NewConverse attaches, to source layer src, a mask m defined in target's
// frame: m is wrapped in mask.Converse and src's position store is rebuilt
// with target's periodicity/extent substituted in, for the source-driven
// construction mode.
func NewConverse(src, target *layer.Layer, m mask.Mask, allowOversized bool) (*MaskedLayer, error) {
	checked, err := checkMask(target, m, target.Periodic, target.Extent, allowOversized)
	if err != nil {
		return nil, err
	}
	converse := mask.Converse(checked)

	vec, err := src.Vector()
	if err != nil {
		return nil, err
	}
	upperRight, err := geom.Add(src.LowerLeft, target.Extent)
	if err != nil {
		return nil, err
	}
	tree, err := ntree.NewTree[layer.NodeID](
		geom.Box{LowerLeft: src.LowerLeft, UpperRight: upperRight},
		target.Periodic,
	)
	if err != nil {
		return nil, err
	}
	for _, pn := range vec {
		if err := tree.Insert(pn.Pos, pn.ID); err != nil {
			return nil, err
		}
	}

	return &MaskedLayer{mask: converse, tree: tree}, nil
}
