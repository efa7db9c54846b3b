package connect

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
	"github.com/katalvlaran/fieldwire/mask"
	"github.com/katalvlaran/fieldwire/maskedlayer"
)

// candidate is one (position, id) pair eligible to be the non-driving end
// of a connection.
type candidate struct {
	pos geom.Position
	id  layer.NodeID
}

// candidatesUnmasked returns every node of l as a candidate, used when cfg
// carries no Mask.
func candidatesUnmasked(l *layer.Layer) ([]candidate, error) {
	vec, err := l.Vector()
	if err != nil {
		return nil, err
	}
	out := make([]candidate, len(vec))
	for i, pn := range vec {
		out[i] = candidate{pos: pn.Pos, id: pn.ID}
	}
	return out, nil
}

// candidatesDirect returns the nodes of pool (built Direct, against l's own
// metric) whose position satisfies m at anchor.
func candidatesDirect(l *layer.Layer, m mask.Mask, anchor geom.Position, allowOversized bool) ([]candidate, error) {
	ml, err := maskedlayer.NewDirect(l, m, allowOversized)
	if err != nil {
		return nil, err
	}
	return drainIterator(ml, anchor), nil
}

// candidatesConverse returns the nodes of src whose position satisfies m
// (defined in target's frame) at anchor, per maskedlayer.NewConverse.
func candidatesConverse(src, target *layer.Layer, m mask.Mask, anchor geom.Position, allowOversized bool) ([]candidate, error) {
	ml, err := maskedlayer.NewConverse(src, target, m, allowOversized)
	if err != nil {
		return nil, err
	}
	return drainIterator(ml, anchor), nil
}

func drainIterator(ml *maskedlayer.MaskedLayer, anchor geom.Position) []candidate {
	var out []candidate
	for pos, id := range ml.Iterator(anchor) {
		out = append(out, candidate{pos: pos, id: id})
	}
	return out
}

// gatherCandidates builds the candidate pool for a driver anchored at
// anchor: the full source vector when m is nil, a Direct MaskedLayer(source)
// query when converse is false, or a Converse MaskedLayer(source, target)
// query (mask mirrored into target's frame) when converse is true.
func gatherCandidates(source, target *layer.Layer, m mask.Mask, anchor geom.Position, allowOversized, converse bool) ([]candidate, error) {
	if m == nil {
		return candidatesUnmasked(source)
	}
	if converse {
		return candidatesConverse(source, target, m, anchor, allowOversized)
	}
	return candidatesDirect(source, m, anchor, allowOversized)
}

// removeAutapse drops the candidate (if any) whose id equals self, used
// when allowAutapses is false. Order of the remaining candidates is
// preserved.
func removeAutapse(cands []candidate, self layer.NodeID) []candidate {
	out := cands[:0:0]
	for _, c := range cands {
		if c.id == self {
			continue
		}
		out = append(out, c)
	}
	return out
}
