package mask_test

import (
	"testing"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/mask"
	"github.com/stretchr/testify/require"
)

func TestBallInside(t *testing.T) {
	m, err := mask.NewBall(geom.Position{0, 0}, 2)
	require.NoError(t, err)

	ok, err := m.Inside(geom.Position{1, 1})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Inside(geom.Position{2, 0})
	require.NoError(t, err)
	require.True(t, ok) // boundary is inside (closed ball)

	ok, err = m.Inside(geom.Position{3, 0})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBallInvalidRadius(t *testing.T) {
	_, err := mask.NewBall(geom.Position{0, 0}, 0)
	require.ErrorIs(t, err, mask.ErrInvalidRadius)
	_, err = mask.NewBall(geom.Position{0, 0}, -1)
	require.ErrorIs(t, err, mask.ErrInvalidRadius)
}

func TestBallBoundingBox(t *testing.T) {
	m, err := mask.NewBall(geom.Position{1, 2}, 3)
	require.NoError(t, err)
	bbox, err := m.BoundingBox()
	require.NoError(t, err)
	require.Equal(t, geom.Position{-2, -1}, bbox.LowerLeft)
	require.Equal(t, geom.Position{4, 5}, bbox.UpperRight)
}

func TestBallOutsideBoxConservative(t *testing.T) {
	m, err := mask.NewBall(geom.Position{0, 0}, 1)
	require.NoError(t, err)
	far, _ := geom.NewBox(geom.Position{10, 10}, geom.Position{11, 11})
	out, err := m.OutsideBox(far)
	require.NoError(t, err)
	require.True(t, out)
}
