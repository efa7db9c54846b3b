package ntree

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/mask"
)

// All returns a range-over-func iterator over every (position, value) pair
// in the tree, in an order determined by the tree's current shape (not
// guaranteed to match insertion order once a leaf has split).
func (t *Tree[V]) All() func(yield func(geom.Position, V) bool) {
	return func(yield func(geom.Position, V) bool) {
		emitAll(t.root, yield)
	}
}

// MaskedIterator returns a range-over-func iterator yielding exactly the
// pairs whose position satisfies m.Inside(position-anchor) after folding
// through periodic wrap. The iterator is restartable: each range loop
// re-invokes this closure's traversal from the root.
//
// A dimension mismatch between m and the tree (surfaced as an error from a
// mask query) causes that branch of the traversal to be skipped rather than
// aborting the whole iteration; callers that need a hard failure should
// check m.Dim() against t.Dim() before ranging.
func (t *Tree[V]) MaskedIterator(m mask.Mask, anchor geom.Position) func(yield func(geom.Position, V) bool) {
	return func(yield func(geom.Position, V) bool) {
		for _, a := range t.periodicAnchors(anchor) {
			if !walkMasked(t.root, m, a, yield) {
				return
			}
		}
	}
}

func emitAll[V any](n *node[V], yield func(geom.Position, V) bool) bool {
	if n.children == nil {
		for _, e := range n.entries {
			if !yield(e.pos, e.val) {
				return false
			}
		}
		return true
	}
	for _, c := range n.children {
		if !emitAll(c, yield) {
			return false
		}
	}
	return true
}

func walkMasked[V any](n *node[V], m mask.Mask, anchor geom.Position, yield func(geom.Position, V) bool) bool {
	region, err := regionFor(n.box, anchor)
	if err != nil {
		return true
	}
	if outside, err := m.OutsideBox(region); err == nil && outside {
		return true
	}
	if inside, err := m.InsideBox(region); err == nil && inside {
		return emitAll(n, yield)
	}
	if n.children != nil {
		for _, c := range n.children {
			if !walkMasked(c, m, anchor, yield) {
				return false
			}
		}
		return true
	}
	for _, e := range n.entries {
		d, err := geom.Sub(e.pos, anchor)
		if err != nil {
			continue
		}
		ok, err := m.Inside(d)
		if err != nil || !ok {
			continue
		}
		if !yield(e.pos, e.val) {
			return false
		}
	}
	return true
}

func regionFor(box geom.Box, anchor geom.Position) (geom.Box, error) {
	ll, err := geom.Sub(box.LowerLeft, anchor)
	if err != nil {
		return geom.Box{}, err
	}
	ur, err := geom.Sub(box.UpperRight, anchor)
	if err != nil {
		return geom.Box{}, err
	}
	return geom.Box{LowerLeft: ll, UpperRight: ur}, nil
}

// periodicAnchors returns the anchor plus one translated copy per
// combination of {-1,0,1} on each periodic axis: 3^(periodic axis count)
// translated copies in all, so a masked query near a periodic boundary
// also matches points that wrap around to the opposite edge.
func (t *Tree[V]) periodicAnchors(anchor geom.Position) []geom.Position {
	var axes []int
	for i, p := range t.periodic {
		if p {
			axes = append(axes, i)
		}
	}
	if len(axes) == 0 {
		return []geom.Position{anchor}
	}
	extent, _ := t.Extent()
	combos := offsetCombos(len(axes))
	out := make([]geom.Position, 0, len(combos))
	for _, combo := range combos {
		a := anchor.Clone()
		for j, axis := range axes {
			a[axis] += float64(combo[j]) * extent[axis]
		}
		out = append(out, a)
	}
	return out
}

// offsetCombos returns every combination of {-1,0,1}^n.
func offsetCombos(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	rest := offsetCombos(n - 1)
	out := make([][]int, 0, len(rest)*3)
	for _, k := range []int{-1, 0, 1} {
		for _, r := range rest {
			combo := make([]int, 0, len(r)+1)
			combo = append(combo, k)
			combo = append(combo, r...)
			out = append(out, combo)
		}
	}
	return out
}
