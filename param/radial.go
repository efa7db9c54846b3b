package param

import (
	"math"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/rng"
)

type linearParameter struct {
	cutoffCfg
	a, c float64
}

func (*linearParameter) isParameter() {}

// NewLinear returns a radial Parameter: a*||d|| + c.
func NewLinear(a, c float64, opts ...Option) Parameter {
	return &linearParameter{cutoffCfg: newCutoffCfg(opts), a: a, c: c}
}

func (p *linearParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	return p.a*d.Length() + p.c, nil
}

func (p *linearParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}

type exponentialParameter struct {
	cutoffCfg
	a, c, tau float64
}

func (*exponentialParameter) isParameter() {}

// NewExponential returns a radial Parameter: c + a*exp(-||d||/tau). tau must be > 0.
func NewExponential(a, c, tau float64, opts ...Option) (Parameter, error) {
	if tau <= 0 {
		return nil, ErrInvalidParameter
	}
	return &exponentialParameter{cutoffCfg: newCutoffCfg(opts), a: a, c: c, tau: tau}, nil
}

func (p *exponentialParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	return p.c + p.a*math.Exp(-d.Length()/p.tau), nil
}

func (p *exponentialParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}

type gaussianParameter struct {
	cutoffCfg
	c, p0, mean, sigma float64
}

func (*gaussianParameter) isParameter() {}

// NewGaussian returns a radial Parameter: c + p0*exp(-(||d||-mean)^2/(2*sigma^2)). sigma must be > 0.
func NewGaussian(c, p0, mean, sigma float64, opts ...Option) (Parameter, error) {
	if sigma <= 0 {
		return nil, ErrInvalidParameter
	}
	return &gaussianParameter{cutoffCfg: newCutoffCfg(opts), c: c, p0: p0, mean: mean, sigma: sigma}, nil
}

func (p *gaussianParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	diff := d.Length() - p.mean
	return p.c + p.p0*math.Exp(-(diff*diff)/(2*p.sigma*p.sigma)), nil
}

func (p *gaussianParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}

type gammaParameter struct {
	cutoffCfg
	kappa, theta float64
}

func (*gammaParameter) isParameter() {}

// NewGamma returns a radial Parameter evaluating the Gamma(kappa,theta) pdf
// at ||d||: ||d||^(kappa-1) * exp(-||d||/theta) / (theta^kappa * Gamma(kappa)).
// kappa and theta must be > 0.
func NewGamma(kappa, theta float64, opts ...Option) (Parameter, error) {
	if kappa <= 0 || theta <= 0 {
		return nil, ErrInvalidParameter
	}
	return &gammaParameter{cutoffCfg: newCutoffCfg(opts), kappa: kappa, theta: theta}, nil
}

func (p *gammaParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	x := d.Length()
	if x == 0 {
		if p.kappa < 1 {
			return math.Inf(1), nil
		}
		if p.kappa > 1 {
			return 0, nil
		}
		// kappa == 1: Gamma(1,theta) pdf at 0 is 1/theta.
		return 1 / p.theta, nil
	}
	num := math.Pow(x, p.kappa-1) * math.Exp(-x/p.theta)
	den := math.Pow(p.theta, p.kappa) * math.Gamma(p.kappa)
	return num / den, nil
}

func (p *gammaParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}
