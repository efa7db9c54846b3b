package param_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/param"
)

func TestConstant(t *testing.T) {
	p := param.NewConstant(4.2)
	v, err := p.Value(geom.Position{1, 2}, nil)
	require.NoError(t, err)
	require.Equal(t, 4.2, v)

	v, err = p.Value(geom.Position{0, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, 4.2, v)
}

func TestConstantCutoff(t *testing.T) {
	p := param.NewConstant(4.2, param.WithCutoff(5))
	v, err := p.Value(geom.Position{1, 2}, nil)
	require.NoError(t, err)
	require.Zero(t, v)

	raw, err := p.RawValue(geom.Position{1, 2}, nil)
	require.NoError(t, err)
	require.Equal(t, 4.2, raw)
}
