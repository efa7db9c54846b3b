package connect

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/rng"
)

// runSourceDriven follows the same control flow as target-driven, but the
// mask is mirrored into the source's frame via a Converse MaskedLayer built
// with the target layer's periodicity.
func runSourceDriven(c *Creator, source, target *layer.Layer, nm NodeManager, sink Sink, provider rng.Provider) error {
	targetIdx, err := buildPositionIndex(target)
	if err != nil {
		return err
	}
	for _, g := range nm.LocalNodesOfLayer(target, c.cfg.TargetFilter) {
		tpos := targetIdx[g]
		r := provider.GetRNG(nm.GetThread(g))

		cands, err := gatherCandidates(source, target, c.cfg.Mask, tpos, c.cfg.AllowOversizedMask, true)
		if err != nil {
			return err
		}
		cands = filterByModel(cands, c.cfg.SourceFilter, nm)
		if !c.cfg.AllowAutapses {
			cands = removeAutapse(cands, g)
		}

		for _, cand := range cands {
			d, err := geom.ComputeDisplacement(cand.pos, tpos, target.Extent, target.Periodic)
			if err != nil {
				return err
			}
			if c.cfg.Kernel != nil {
				keep, err := c.cfg.Kernel.Value(d, r)
				if err != nil {
					return err
				}
				if r.Uniform() >= keep {
					continue
				}
			}
			if err := emitEdge(c, sink, cand.id, g, d, r); err != nil {
				return err
			}
		}
	}
	return nil
}
