package connect

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/rng"
)

// runTargetDriven iterates every locally hosted target passing
// TargetFilter, enumerates source candidates (masked or the full vector),
// thins by kernel, and emits accepted edges.
func runTargetDriven(c *Creator, source, target *layer.Layer, nm NodeManager, sink Sink, provider rng.Provider) error {
	targetIdx, err := buildPositionIndex(target)
	if err != nil {
		return err
	}
	for _, g := range nm.LocalNodesOfLayer(target, c.cfg.TargetFilter) {
		tpos := targetIdx[g]
		r := provider.GetRNG(nm.GetThread(g))

		cands, err := gatherCandidates(source, target, c.cfg.Mask, tpos, c.cfg.AllowOversizedMask, false)
		if err != nil {
			return err
		}
		cands = filterByModel(cands, c.cfg.SourceFilter, nm)
		if !c.cfg.AllowAutapses {
			cands = removeAutapse(cands, g)
		}

		for _, cand := range cands {
			d, err := geom.ComputeDisplacement(cand.pos, tpos, source.Extent, source.Periodic)
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

// emitEdge evaluates weight and delay at displacement d using r and hands
// the edge to sink.
func emitEdge(c *Creator, sink Sink, src, tgt layer.NodeID, d geom.Position, r rng.Rng) error {
	w, err := c.weight.Value(d, r)
	if err != nil {
		return err
	}
	dl, err := c.delay.Value(d, r)
	if err != nil {
		return err
	}
	sink.Connect(src, tgt, w, dl, c.model.ID)
	return nil
}
