package connect

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
)

// positionIndex maps a layer's node ids to their positions, built once per
// ConnectLayers call and reused across every driver node.
type positionIndex map[layer.NodeID]geom.Position

func buildPositionIndex(l *layer.Layer) (positionIndex, error) {
	vec, err := l.Vector()
	if err != nil {
		return nil, err
	}
	idx := make(positionIndex, len(vec))
	for _, pn := range vec {
		idx[pn.ID] = pn.Pos
	}
	return idx, nil
}

// filterByModel keeps only candidates whose model id matches sel.ModelID,
// when set. Depth filtering is not applied here: a candidate's grid-depth
// index is bookkeeping internal to the node manager, not recoverable from a
// bare NodeID by this package.
func filterByModel(cands []candidate, sel Selector, nm NodeManager) []candidate {
	if sel.ModelID == nil {
		return cands
	}
	out := cands[:0:0]
	for _, c := range cands {
		if nm.GetModelID(c.id) == *sel.ModelID {
			out = append(out, c)
		}
	}
	return out
}
