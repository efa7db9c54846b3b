package layer

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/ntree"
)

// Tree returns this layer's positions as an Ntree, building or converting
// the cached view as needed. Repeated calls against the same Layer pay the
// layout cost once; the first call after construction or after a Vector
// call rebuilds, subsequent calls in the same view return the cached tree.
func (l *Layer) Tree() (*ntree.Tree[NodeID], error) {
	l.cache.mu.Lock()
	defer l.cache.mu.Unlock()

	switch l.cache.kind {
	case viewTree:
		return l.cache.tree, nil
	case viewVector:
		tree, err := buildTreeFrom(l, l.cache.vector)
		if err != nil {
			return nil, err
		}
		l.cache.tree = tree
		l.cache.vector = nil
		l.cache.kind = viewTree
		return tree, nil
	default:
		tree, err := buildTreeFromPositions(l)
		if err != nil {
			return nil, err
		}
		l.cache.tree = tree
		l.cache.kind = viewTree
		return tree, nil
	}
}

// Vector returns this layer's positions as a flat ordered slice, building
// or converting the cached view as needed.
func (l *Layer) Vector() ([]PositionNode, error) {
	l.cache.mu.Lock()
	defer l.cache.mu.Unlock()

	switch l.cache.kind {
	case viewVector:
		return l.cache.vector, nil
	case viewTree:
		vec := vectorFromTree(l.cache.tree)
		l.cache.vector = vec
		l.cache.tree = nil
		l.cache.kind = viewVector
		return vec, nil
	default:
		vec := buildVectorFromPositions(l)
		l.cache.vector = vec
		l.cache.kind = viewVector
		return vec, nil
	}
}

func rootBox(l *Layer) (geom.Box, error) {
	ur, err := l.UpperRight()
	if err != nil {
		return geom.Box{}, err
	}
	return geom.Box{LowerLeft: l.LowerLeft.Clone(), UpperRight: ur}, nil
}

func buildTreeFromPositions(l *Layer) (*ntree.Tree[NodeID], error) {
	box, err := rootBox(l)
	if err != nil {
		return nil, err
	}
	tree, err := ntree.NewTree[NodeID](box, l.Periodic, ntree.WithLeafCapacity(l.leafCapacity))
	if err != nil {
		return nil, err
	}
	for i, id := range l.GIDs {
		if err := tree.Insert(l.positions[i], id); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func buildTreeFrom(l *Layer, vec []PositionNode) (*ntree.Tree[NodeID], error) {
	box, err := rootBox(l)
	if err != nil {
		return nil, err
	}
	tree, err := ntree.NewTree[NodeID](box, l.Periodic, ntree.WithLeafCapacity(l.leafCapacity))
	if err != nil {
		return nil, err
	}
	for _, pn := range vec {
		if err := tree.Insert(pn.Pos, pn.ID); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func vectorFromTree(tree *ntree.Tree[NodeID]) []PositionNode {
	vec := make([]PositionNode, 0, tree.Len())
	for pos, id := range tree.All() {
		vec = append(vec, PositionNode{Pos: pos, ID: id})
	}
	return vec
}

func buildVectorFromPositions(l *Layer) []PositionNode {
	vec := make([]PositionNode, len(l.GIDs))
	for i, id := range l.GIDs {
		vec[i] = PositionNode{Pos: l.positions[i], ID: id}
	}
	return vec
}
