package connect

import (
	"fmt"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/param"
	"github.com/katalvlaran/fieldwire/rng"
	"github.com/katalvlaran/fieldwire/vosealias"
)

// maxRedrawAttempts bounds the autapse/multapse reject-and-redraw loop. The
// pre-flight check ensures enough distinct candidates exist, not that enough
// of them have a non-zero kernel value; when too few do, the loop reaches
// this bound and reports ErrInsufficientCandidates.
const maxRedrawAttempts = 100000

// runConvergent draws a fixed number of sources per local target, sampled
// via a Vose alias table (kernel-weighted) or a uniform draw.
func runConvergent(c *Creator, source, target *layer.Layer, nm NodeManager, sink Sink, provider rng.Provider) error {
	n := int(*c.cfg.NumberOfConnections)
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

		if err := preflightFixedDegree(len(cands), n, c.cfg.AllowMultapses, "sources"); err != nil {
			return err
		}

		disp := make([]geom.Position, len(cands))
		for i, cand := range cands {
			d, err := geom.ComputeDisplacement(cand.pos, tpos, source.Extent, source.Periodic)
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
			if err := emitEdge(c, sink, cands[k].id, g, disp[k], r); err != nil {
				return err
			}
		}
	}
	return nil
}

// preflightFixedDegree checks a fixed-degree draw is satisfiable before any
// RNG is consumed: at least one candidate must exist, and enough distinct
// candidates must exist when multapses are forbidden.
func preflightFixedDegree(numCandidates, numConnections int, allowMultapses bool, noun string) error {
	if numCandidates == 0 {
		return fmt.Errorf("%w: no eligible %s", ErrInsufficientCandidates, noun)
	}
	if !allowMultapses && numCandidates < numConnections {
		return fmt.Errorf("%w: need %d distinct %s, have %d", ErrInsufficientCandidates, numConnections, noun, numCandidates)
	}
	return nil
}

// buildSampleTable builds a Vose alias table from kernel evaluated at each
// displacement, or returns nil (meaning "draw uniformly") when kernel is
// absent.
func buildSampleTable(kernel param.Parameter, disp []geom.Position, r rng.Rng) (*vosealias.Table, error) {
	if kernel == nil {
		return nil, nil
	}
	probs := make([]float64, len(disp))
	for i, d := range disp {
		p, err := kernel.Value(d, r)
		if err != nil {
			return nil, err
		}
		probs[i] = p
	}
	return vosealias.NewTable(probs)
}

// drawCandidate draws one index from table, or uniformly from [0,n) when
// table is nil.
func drawCandidate(table *vosealias.Table, n int, r rng.Rng) (int, error) {
	if table == nil {
		return int(r.UniformInt(uint64(n))), nil
	}
	return table.Draw(r), nil
}
