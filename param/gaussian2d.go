package param

import (
	"math"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/rng"
)

type gaussian2DParameter struct {
	cutoffCfg
	c, p0       float64
	muX, sigmaX float64
	muY, sigmaY float64
	rho         float64
}

func (*gaussian2DParameter) isParameter() {}

// NewGaussian2D returns an anisotropic Parameter using the x,y components of
// the displacement:
//
//	Q = (x-muX)^2/sigmaX^2 + (y-muY)^2/sigmaY^2 - 2*rho*(x-muX)*(y-muY)/(sigmaX*sigmaY)
//	raw = c + p0*exp(-Q/(2*(1-rho^2)))
//
// sigmaX, sigmaY must be > 0; rho must satisfy |rho| < 1.
func NewGaussian2D(c, p0, muX, sigmaX, muY, sigmaY, rho float64, opts ...Option) (Parameter, error) {
	if sigmaX <= 0 || sigmaY <= 0 {
		return nil, ErrInvalidParameter
	}
	if rho <= -1 || rho >= 1 {
		return nil, ErrInvalidParameter
	}
	return &gaussian2DParameter{
		cutoffCfg: newCutoffCfg(opts),
		c:         c,
		p0:        p0,
		muX:       muX,
		sigmaX:    sigmaX,
		muY:       muY,
		sigmaY:    sigmaY,
		rho:       rho,
	}, nil
}

func (p *gaussian2DParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	if d.Dim() < 2 {
		return 0, ErrDimensionMismatch
	}
	x, y := d[0], d[1]
	dx, dy := x-p.muX, y-p.muY
	q := (dx*dx)/(p.sigmaX*p.sigmaX) + (dy*dy)/(p.sigmaY*p.sigmaY) -
		2*p.rho*dx*dy/(p.sigmaX*p.sigmaY)
	return p.c + p.p0*math.Exp(-q/(2*(1-p.rho*p.rho))), nil
}

func (p *gaussian2DParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}
