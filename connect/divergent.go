package connect

import (
	"fmt"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/rng"
)

// runDivergent draws a fixed out-degree per source, iterating every source
// node on every process using the global RNG so that all processes reach
// identical sampling decisions. Edges whose target is non-local are still
// emitted; the sink is responsible for discarding them.
func runDivergent(c *Creator, source, target *layer.Layer, nm NodeManager, sink Sink, provider rng.Provider) error {
	n := int(*c.cfg.NumberOfConnections)
	r := provider.GetGlobalRNG()

	sourceVec, err := source.Vector()
	if err != nil {
		return err
	}
	sourceCands := make([]candidate, len(sourceVec))
	for i, pn := range sourceVec {
		sourceCands[i] = candidate{pos: pn.Pos, id: pn.ID}
	}
	sourceCands = filterByModel(sourceCands, c.cfg.SourceFilter, nm)

	for _, s := range sourceCands {
		cands, err := gatherCandidates(target, target, c.cfg.Mask, s.pos, c.cfg.AllowOversizedMask, false)
		if err != nil {
			return err
		}
		cands = filterByModel(cands, c.cfg.TargetFilter, nm)
		if !c.cfg.AllowAutapses {
			cands = removeAutapse(cands, s.id)
		}

		if err := preflightFixedDegree(len(cands), n, c.cfg.AllowMultapses, "targets"); err != nil {
			return err
		}

		disp := make([]geom.Position, len(cands))
		for i, cand := range cands {
			d, err := geom.ComputeDisplacement(s.pos, cand.pos, target.Extent, target.Periodic)
			if err != nil {
				return err
			}
			disp[i] = d
		}

		table, err := buildSampleTable(c.cfg.Kernel, disp, r)
		if err != nil {
			return err
		}

		selected := make([]bool, len(cands))
		for drawn := 0; drawn < n; drawn++ {
			k, err := drawCandidate(table, len(cands), r)
			if err != nil {
				return err
			}
			if !c.cfg.AllowMultapses {
				attempts := 0
				for selected[k] {
					attempts++
					if attempts > maxRedrawAttempts {
						return fmt.Errorf("%w: could not satisfy multapse policy after %d attempts", ErrInsufficientCandidates, maxRedrawAttempts)
					}
					k, err = drawCandidate(table, len(cands), r)
					if err != nil {
						return err
					}
				}
				selected[k] = true
			}
			if err := emitEdge(c, sink, s.id, cands[k].id, disp[k], r); err != nil {
				return err
			}
		}
	}
	return nil
}
