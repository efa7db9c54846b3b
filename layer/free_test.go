package layer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/layer"
)

func TestNewFreeLayerBasic(t *testing.T) {
	l, err := layer.NewFreeLayer(
		geom.Position{0, 0}, geom.Position{10, 10}, []bool{false, false},
		gids(3),
		[]geom.Position{{1, 1}, {5, 5}, {9, 9}},
	)
	require.NoError(t, err)
	vec, err := l.Vector()
	require.NoError(t, err)
	require.Len(t, vec, 3)
}

func TestNewFreeLayerPositionCountMismatch(t *testing.T) {
	_, err := layer.NewFreeLayer(
		geom.Position{0, 0}, geom.Position{10, 10}, []bool{false, false},
		gids(3),
		[]geom.Position{{1, 1}, {5, 5}},
	)
	require.ErrorIs(t, err, layer.ErrPositionCount)
}

func TestNewFreeLayerOutOfBounds(t *testing.T) {
	_, err := layer.NewFreeLayer(
		geom.Position{0, 0}, geom.Position{10, 10}, []bool{false, false},
		gids(1),
		[]geom.Position{{11, 1}},
	)
	require.ErrorIs(t, err, layer.ErrPositionOutOfBounds)
}

func TestNewFreeLayerOnPeriodicPerimeter(t *testing.T) {
	_, err := layer.NewFreeLayer(
		geom.Position{0, 0}, geom.Position{10, 10}, []bool{true, false},
		gids(1),
		[]geom.Position{{0, 5}},
	)
	require.ErrorIs(t, err, layer.ErrPositionOnPerimeter)
}

func TestNewFreeLayerOnNonPeriodicPerimeterAllowed(t *testing.T) {
	_, err := layer.NewFreeLayer(
		geom.Position{0, 0}, geom.Position{10, 10}, []bool{false, false},
		gids(1),
		[]geom.Position{{0, 5}},
	)
	require.NoError(t, err)
}
