package mask_test

import (
	"testing"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/mask"
	"github.com/stretchr/testify/require"
)

// TestConverseProperty pins: Converse(m).Inside(p) == m.Inside(-p).
func TestConverseProperty(t *testing.T) {
	m, err := mask.NewBoxMask(geom.Position{0, 0}, geom.Position{2, 2}, 0, 0)
	require.NoError(t, err)
	conv := mask.NewConverse(m)

	for _, p := range []geom.Position{{1, 1}, {-1, -1}, {0.5, 1.5}, {3, 3}} {
		got, err := conv.Inside(p)
		require.NoError(t, err)
		want, err := m.Inside(negatePosition(p))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func negatePosition(p geom.Position) geom.Position {
	out := make(geom.Position, len(p))
	for i, v := range p {
		out[i] = -v
	}
	return out
}

// TestAnchoredProperty pins: Anchored(m,a).Inside(p) == m.Inside(p-a).
func TestAnchoredProperty(t *testing.T) {
	m, err := mask.NewBall(geom.Position{0, 0}, 1)
	require.NoError(t, err)
	offset := geom.Position{5, 5}
	anchored, err := mask.NewAnchored(m, offset)
	require.NoError(t, err)

	for _, p := range []geom.Position{{5, 5}, {6, 5}, {0, 0}} {
		got, err := anchored.Inside(p)
		require.NoError(t, err)
		shifted, err := geom.Sub(p, offset)
		require.NoError(t, err)
		want, err := m.Inside(shifted)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestAllMaskAlwaysInside(t *testing.T) {
	m := mask.NewAll(2)
	ok, err := m.Inside(geom.Position{1e9, -1e9})
	require.NoError(t, err)
	require.True(t, ok)

	_, err = m.BoundingBox()
	require.ErrorIs(t, err, mask.ErrUnboundedMask)
}

func TestGridMaskRealCoordinatesIsError(t *testing.T) {
	g, err := mask.NewGrid([]int{5, 4}, []int{0, 0})
	require.NoError(t, err)
	_, err = g.Inside(geom.Position{1, 1})
	require.ErrorIs(t, err, mask.ErrGridRealCoordinates)
}
