package layer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
)

func newFreeTestLayer(t *testing.T) *layer.Layer {
	t.Helper()
	l, err := layer.NewFreeLayer(
		geom.Position{0, 0}, geom.Position{10, 10}, []bool{false, false},
		gids(5),
		[]geom.Position{{1, 1}, {2, 2}, {3, 3}, {9, 9}, {5, 5}},
	)
	require.NoError(t, err)
	return l
}

func TestTreeAndVectorAgreeOnMembership(t *testing.T) {
	l := newFreeTestLayer(t)

	vec, err := l.Vector()
	require.NoError(t, err)
	wantIDs := map[layer.NodeID]bool{}
	for _, pn := range vec {
		wantIDs[pn.ID] = true
	}

	tree, err := l.Tree()
	require.NoError(t, err)
	gotIDs := map[layer.NodeID]bool{}
	for _, id := range tree.All() {
		gotIDs[id] = true
	}
	require.Equal(t, wantIDs, gotIDs)
}

func TestCacheConvertsInPlace(t *testing.T) {
	l := newFreeTestLayer(t)

	tree1, err := l.Tree()
	require.NoError(t, err)
	require.Equal(t, 5, tree1.Len())

	vec, err := l.Vector()
	require.NoError(t, err)
	require.Len(t, vec, 5)

	tree2, err := l.Tree()
	require.NoError(t, err)
	require.Equal(t, 5, tree2.Len())
}

func TestCacheRepeatedCallsReturnSameView(t *testing.T) {
	l := newFreeTestLayer(t)

	tree1, err := l.Tree()
	require.NoError(t, err)
	tree2, err := l.Tree()
	require.NoError(t, err)
	require.Same(t, tree1, tree2)
}
