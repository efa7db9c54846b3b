package param_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/param"
)

func TestGaussian2DIsotropicMatchesRadial(t *testing.T) {
	p2, err := param.NewGaussian2D(0, 1, 0, 1, 0, 1, 0)
	require.NoError(t, err)
	prad, err := param.NewGaussian(0, 1, 0, 1)
	require.NoError(t, err)

	for _, pos := range []geom.Position{{0, 0}, {1, 0}, {0, 1}, {0.5, 0.5}} {
		v2, err := p2.Value(pos, nil)
		require.NoError(t, err)
		vr, err := prad.Value(pos, nil)
		require.NoError(t, err)
		require.InDelta(t, vr, v2, 1e-9)
	}
}

func TestGaussian2DValidation(t *testing.T) {
	_, err := param.NewGaussian2D(0, 1, 0, 0, 0, 1, 0)
	require.ErrorIs(t, err, param.ErrInvalidParameter)
	_, err = param.NewGaussian2D(0, 1, 0, 1, 0, 1, 1)
	require.ErrorIs(t, err, param.ErrInvalidParameter)
	_, err = param.NewGaussian2D(0, 1, 0, 1, 0, 1, -1)
	require.ErrorIs(t, err, param.ErrInvalidParameter)
}

func TestGaussian2DDimensionMismatch(t *testing.T) {
	p, err := param.NewGaussian2D(0, 1, 0, 1, 0, 1, 0)
	require.NoError(t, err)
	_, err = p.Value(geom.Position{1}, nil)
	require.ErrorIs(t, err, param.ErrDimensionMismatch)
}

func TestGaussian2DAnisotropicPeak(t *testing.T) {
	p, err := param.NewGaussian2D(0, 3, 1, 2, -1, 0.5, 0.2)
	require.NoError(t, err)
	v, err := p.Value(geom.Position{1, -1}, nil)
	require.NoError(t, err)
	require.True(t, math.Abs(v-3) < 1e-9)
}
