package geom_test

import (
	"testing"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/stretchr/testify/require"
)

func TestNewBoxValidation(t *testing.T) {
	_, err := geom.NewBox(geom.Position{2, 2}, geom.Position{1, 1})
	require.ErrorIs(t, err, geom.ErrDegenerateExtent)

	b, err := geom.NewBox(geom.Position{0, 0}, geom.Position{2, 2})
	require.NoError(t, err)
	require.Equal(t, geom.Position{2, 2}, b.Extent())
}

func TestBoxContainsPoint(t *testing.T) {
	b, err := geom.NewBox(geom.Position{0, 0}, geom.Position{2, 2})
	require.NoError(t, err)

	inside, err := b.ContainsPoint(geom.Position{1, 1})
	require.NoError(t, err)
	require.True(t, inside)

	// Boundary is inside: Box is a closed region.
	onEdge, err := b.ContainsPoint(geom.Position{2, 2})
	require.NoError(t, err)
	require.True(t, onEdge)

	outside, err := b.ContainsPoint(geom.Position{3, 1})
	require.NoError(t, err)
	require.False(t, outside)
}

func TestBoxDisjointAndIntersect(t *testing.T) {
	a, _ := geom.NewBox(geom.Position{0, 0}, geom.Position{2, 2})
	b, _ := geom.NewBox(geom.Position{1, 1}, geom.Position{3, 3})
	c, _ := geom.NewBox(geom.Position{5, 5}, geom.Position{6, 6})

	disjointAB, err := a.Disjoint(b)
	require.NoError(t, err)
	require.False(t, disjointAB)

	disjointAC, err := a.Disjoint(c)
	require.NoError(t, err)
	require.True(t, disjointAC)

	inter, ok, err := geom.Intersect(a, b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, geom.Position{1, 1}, inter.LowerLeft)
	require.Equal(t, geom.Position{2, 2}, inter.UpperRight)

	_, ok, err = geom.Intersect(a, c)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBoxUnionContainsBothOperands(t *testing.T) {
	a, _ := geom.NewBox(geom.Position{0, 0}, geom.Position{1, 1})
	b, _ := geom.NewBox(geom.Position{2, 2}, geom.Position{3, 3})
	u, err := geom.Union(a, b)
	require.NoError(t, err)

	containsA, err := u.ContainsBox(a)
	require.NoError(t, err)
	require.True(t, containsA)

	containsB, err := u.ContainsBox(b)
	require.NoError(t, err)
	require.True(t, containsB)
}
