package param

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/rng"
)

type constantParameter struct {
	cutoffCfg
	v float64
}

func (*constantParameter) isParameter() {}

// NewConstant returns a Parameter that ignores the displacement and always
// evaluates to v.
func NewConstant(v float64, opts ...Option) Parameter {
	return &constantParameter{cutoffCfg: newCutoffCfg(opts), v: v}
}

func (p *constantParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	return p.v, nil
}

func (p *constantParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}
