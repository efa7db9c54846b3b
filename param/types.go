package param

import (
	"errors"
	"math"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/rng"
)

// Sentinel errors for param operations.
var (
	// ErrDimensionMismatch indicates Gaussian2D saw a displacement with fewer
	// than two components, or an Anchored offset and a displacement differ in D.
	ErrDimensionMismatch = errors.New("param: dimension mismatch")

	// ErrInvalidParameter indicates a constructor's numeric constraint was violated.
	ErrInvalidParameter = errors.New("param: invalid parameter constraint")

	// ErrRNGRequired indicates a sampling variant was evaluated with a nil Rng.
	ErrRNGRequired = errors.New("param: rng required for this parameter variant")
)

// Parameter is a position-dependent real-valued function used for kernels,
// weights and delays. The set of implementations is closed to this package;
// construct values via the NewXxx functions and compose them via
// Product/Quotient/Sum/Difference/Anchored/Converse.
type Parameter interface {
	// RawValue evaluates the parameter at displacement d, ignoring cutoff.
	// r may be nil for variants that don't sample randomness.
	RawValue(d geom.Position, r rng.Rng) (float64, error)

	// Value returns RawValue(d,r) if it is >= this parameter's cutoff, else 0.
	Value(d geom.Position, r rng.Rng) (float64, error)

	// Cutoff returns the configured cutoff (default -Inf).
	Cutoff() float64

	// isParameter closes the Parameter sum type to this package.
	isParameter()
}

// Option configures a Parameter's cutoff at construction time.
type Option func(*cutoffCfg)

type cutoffCfg struct {
	cutoff float64
}

func newCutoffCfg(opts []Option) cutoffCfg {
	c := cutoffCfg{cutoff: math.Inf(-1)}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithCutoff sets the parameter's cutoff: values of RawValue below cutoff
// are forced to zero by Value.
func WithCutoff(cutoff float64) Option {
	return func(c *cutoffCfg) { c.cutoff = cutoff }
}

func (c cutoffCfg) Cutoff() float64 { return c.cutoff }

func (c cutoffCfg) apply(raw float64) float64 {
	if raw < c.cutoff {
		return 0
	}
	return raw
}
