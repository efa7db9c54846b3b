package ntree

import (
	"github.com/katalvlaran/fieldwire/geom"
)

// Insert adds (pos, val) to the tree. pos must have the tree's dimension and
// lie within the root box on every non-periodic axis (periodic axes accept
// any real value since they wrap).
//
// Complexity: O(depth) amortised; a leaf split is O(leafCapacity).
func (t *Tree[V]) Insert(pos geom.Position, val V) error {
	if pos.Dim() != t.dim {
		return ErrDimensionMismatch
	}
	for i := 0; i < t.dim; i++ {
		if t.periodic[i] {
			continue
		}
		if pos[i] < t.root.box.LowerLeft[i] || pos[i] > t.root.box.UpperRight[i] {
			return ErrOutOfBounds
		}
	}
	insertInto(t.root, entry[V]{pos: pos.Clone(), val: val}, t.leafCapacity, 0)
	t.count++
	return nil
}

func insertInto[V any](n *node[V], e entry[V], leafCapacity, depth int) {
	if n.children != nil {
		idx := childIndex(e.pos, n.box)
		insertInto(n.children[idx], e, leafCapacity, depth+1)
		return
	}

	n.entries = append(n.entries, e)
	if len(n.entries) <= leafCapacity || depth >= maxSplitDepth {
		return
	}
	split(n, leafCapacity, depth)
}

// split converts a leaf into a branch with 2^D children and redistributes
// its entries.
func split[V any](n *node[V], leafCapacity, depth int) {
	dim := n.box.LowerLeft.Dim()
	children := make([]*node[V], 1<<uint(dim))
	for mask := 0; mask < len(children); mask++ {
		children[mask] = &node[V]{box: childBox(n.box, mask)}
	}
	old := n.entries
	n.entries = nil
	n.children = children
	for _, e := range old {
		idx := childIndex(e.pos, n.box)
		c := n.children[idx]
		c.entries = append(c.entries, e)
	}
	for _, c := range children {
		if len(c.entries) > leafCapacity && depth+1 < maxSplitDepth {
			split(c, leafCapacity, depth+1)
		}
	}
}

// childIndex returns which of box's 2^D children contains p, bit i set iff
// p falls in the upper half of axis i.
func childIndex(p geom.Position, box geom.Box) int {
	idx := 0
	for i := 0; i < box.LowerLeft.Dim(); i++ {
		center := (box.LowerLeft[i] + box.UpperRight[i]) / 2
		if p[i] >= center {
			idx |= 1 << uint(i)
		}
	}
	return idx
}

// childBox returns the sub-box of box corresponding to mask, using the same
// bit convention as childIndex.
func childBox(box geom.Box, mask int) geom.Box {
	dim := box.LowerLeft.Dim()
	ll := make(geom.Position, dim)
	ur := make(geom.Position, dim)
	for i := 0; i < dim; i++ {
		center := (box.LowerLeft[i] + box.UpperRight[i]) / 2
		if mask&(1<<uint(i)) == 0 {
			ll[i], ur[i] = box.LowerLeft[i], center
		} else {
			ll[i], ur[i] = center, box.UpperRight[i]
		}
	}
	return geom.Box{LowerLeft: ll, UpperRight: ur}
}
