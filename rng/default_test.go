package rng_test

import (
	"testing"

	"github.com/katalvlaran/fieldwire/rng"
	"github.com/stretchr/testify/require"
)

func TestDefaultProviderDeterministic(t *testing.T) {
	p1 := rng.NewDefaultProvider(42)
	p2 := rng.NewDefaultProvider(42)

	for i := 0; i < 5; i++ {
		require.Equal(t, p1.GetRNG(3).Uniform(), p2.GetRNG(3).Uniform())
	}
}

func TestDefaultProviderThreadsIndependent(t *testing.T) {
	p := rng.NewDefaultProvider(7)
	a := p.GetRNG(0).Uniform()
	b := p.GetRNG(1).Uniform()
	require.NotEqual(t, a, b)
}

func TestDefaultProviderSameThreadStable(t *testing.T) {
	p := rng.NewDefaultProvider(7)
	r1 := p.GetRNG(2)
	r2 := p.GetRNG(2)
	// Same thread id always returns the same underlying stream object.
	require.Same(t, r1, r2)
}

func TestUniformIntRange(t *testing.T) {
	p := rng.NewDefaultProvider(1)
	r := p.GetGlobalRNG()
	for i := 0; i < 1000; i++ {
		v := r.UniformInt(7)
		require.Less(t, v, uint64(7))
	}
}

func TestBinomialBounds(t *testing.T) {
	p := rng.NewDefaultProvider(1)
	r := p.GetGlobalRNG()
	for i := 0; i < 200; i++ {
		v := r.Binomial(20, 0.3)
		require.LessOrEqual(t, v, uint64(20))
	}
}

func TestNewMathRandRngPanicsOnNil(t *testing.T) {
	require.Panics(t, func() { rng.NewMathRandRng(nil) })
}
