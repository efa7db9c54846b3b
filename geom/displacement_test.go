package geom_test

import (
	"testing"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/stretchr/testify/require"
)

func TestComputeDisplacementNonPeriodic(t *testing.T) {
	from := geom.Position{0, 0}
	to := geom.Position{3, 4}
	d, err := geom.ComputeDisplacement(from, to, geom.Position{10, 10}, []bool{false, false})
	require.NoError(t, err)
	require.Equal(t, geom.Position{3, 4}, d)
}

func TestComputeDisplacementPeriodicWrap(t *testing.T) {
	// On a 10-wide torus, the shortest path from 9 to 1 is +2, not +(-8)=-8... wrapped.
	from := geom.Position{9}
	to := geom.Position{1}
	d, err := geom.ComputeDisplacement(from, to, geom.Position{10}, []bool{true})
	require.NoError(t, err)
	require.InDelta(t, 2.0, d[0], 1e-9)
}

func TestComputeDisplacementHalfExtentInvariant(t *testing.T) {
	extent := geom.Position{10, 10}
	periodic := []bool{true, true}
	from := geom.Position{1, 1}
	to := geom.Position{8, 9}

	d, err := geom.ComputeDisplacement(from, to, extent, periodic)
	require.NoError(t, err)
	for i, v := range d {
		require.Truef(t, v > -extent[i]/2 && v <= extent[i]/2, "component %d = %v out of (-extent/2, extent/2]", i, v)
	}
}

func TestComputeDisplacementAntisymmetric(t *testing.T) {
	extent := geom.Position{10, 10}
	periodic := []bool{true, false}
	a := geom.Position{1, 1}
	b := geom.Position{8, 9}

	dAB, err := geom.ComputeDisplacement(a, b, extent, periodic)
	require.NoError(t, err)
	dBA, err := geom.ComputeDisplacement(b, a, extent, periodic)
	require.NoError(t, err)

	for i := range dAB {
		// d(a,b) == -d(b,a), except at the half-extent boundary where the
		// fold is one-sided (+extent/2 never maps to -extent/2).
		sum := dAB[i] + dBA[i]
		require.Truef(t, sum == 0 || (dAB[i] == extent[i]/2 || dBA[i] == extent[i]/2),
			"antisymmetry broke at axis %d: %v vs %v", i, dAB[i], dBA[i])
	}
}

func TestComputeDistance(t *testing.T) {
	dist, err := geom.ComputeDistance(geom.Position{0, 0}, geom.Position{3, 4}, geom.Position{100, 100}, nil)
	require.NoError(t, err)
	require.InDelta(t, 5.0, dist, 1e-9)
}
