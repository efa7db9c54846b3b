package param

import (
	"math"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/rng"
)

// maxRejectionAttempts bounds the rejection-sampling loops of Normal and
// Lognormal: after this many draws outside [min,max), the last draw is
// clamped into range rather than looping forever on a pathological
// (min,max) that excludes the bulk of the distribution.
const maxRejectionAttempts = 10000

type uniformParameter struct {
	cutoffCfg
	min, max float64
}

func (*uniformParameter) isParameter() {}

// NewUniform returns a Parameter independent of displacement: min + U*(max-min).
// min must be < max.
func NewUniform(min, max float64, opts ...Option) (Parameter, error) {
	if !(min < max) {
		return nil, ErrInvalidParameter
	}
	return &uniformParameter{cutoffCfg: newCutoffCfg(opts), min: min, max: max}, nil
}

func (p *uniformParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	if r == nil {
		return 0, ErrRNGRequired
	}
	return p.min + r.Uniform()*(p.max-p.min), nil
}

func (p *uniformParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}

type normalParameter struct {
	cutoffCfg
	mu, sigma, min, max float64
}

func (*normalParameter) isParameter() {}

// NewNormal returns a Parameter sampled by rejection from N(mu,sigma) into [min,max).
// sigma must be > 0; min must be < max.
func NewNormal(mu, sigma, min, max float64, opts ...Option) (Parameter, error) {
	if sigma <= 0 || !(min < max) {
		return nil, ErrInvalidParameter
	}
	return &normalParameter{cutoffCfg: newCutoffCfg(opts), mu: mu, sigma: sigma, min: min, max: max}, nil
}

func (p *normalParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	if r == nil {
		return 0, ErrRNGRequired
	}
	var v float64
	for i := 0; i < maxRejectionAttempts; i++ {
		v = p.mu + r.Normal()*p.sigma
		if v >= p.min && v < p.max {
			return v, nil
		}
	}
	return math.Min(math.Max(v, p.min), math.Nextafter(p.max, p.min)), nil
}

func (p *normalParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}

type lognormalParameter struct {
	cutoffCfg
	mu, sigma, min, max float64
}

func (*lognormalParameter) isParameter() {}

// NewLognormal returns a Parameter sampled by rejection from exp(N(mu,sigma))
// into [min,max). sigma must be > 0; min must be < max.
func NewLognormal(mu, sigma, min, max float64, opts ...Option) (Parameter, error) {
	if sigma <= 0 || !(min < max) {
		return nil, ErrInvalidParameter
	}
	return &lognormalParameter{cutoffCfg: newCutoffCfg(opts), mu: mu, sigma: sigma, min: min, max: max}, nil
}

func (p *lognormalParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	if r == nil {
		return 0, ErrRNGRequired
	}
	var v float64
	for i := 0; i < maxRejectionAttempts; i++ {
		v = math.Exp(p.mu + r.Normal()*p.sigma)
		if v >= p.min && v < p.max {
			return v, nil
		}
	}
	return math.Min(math.Max(v, p.min), math.Nextafter(p.max, p.min)), nil
}

func (p *lognormalParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}
