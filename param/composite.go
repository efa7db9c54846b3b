package param

import (
	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/rng"
)

type anchoredParameter struct {
	cutoffCfg
	p      Parameter
	offset geom.Position
}

func (*anchoredParameter) isParameter() {}

// NewAnchored returns a Parameter that evaluates p at d-offset instead of d.
// offset must have the same dimension as the displacement it is later
// evaluated against; a mismatch surfaces as ErrDimensionMismatch from
// RawValue rather than at construction, since the dimension is not known
// until first use.
func NewAnchored(p Parameter, offset geom.Position, opts ...Option) Parameter {
	return &anchoredParameter{cutoffCfg: newCutoffCfg(opts), p: p, offset: offset.Clone()}
}

func (p *anchoredParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	shifted, err := geom.Sub(d, p.offset)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	return p.p.RawValue(shifted, r)
}

func (p *anchoredParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}

type converseParameter struct {
	cutoffCfg
	p Parameter
}

func (*converseParameter) isParameter() {}

// NewConverse returns a Parameter that evaluates p at the reversed
// displacement -d, for use when a connection rule is stated in the
// source-to-target direction but must be applied post-to-pre or vice versa.
func NewConverse(p Parameter, opts ...Option) Parameter {
	return &converseParameter{cutoffCfg: newCutoffCfg(opts), p: p}
}

func (p *converseParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	return p.p.RawValue(geom.Scale(d, -1), r)
}

func (p *converseParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}

type binaryOp int

const (
	opProduct binaryOp = iota
	opQuotient
	opSum
	opDifference
)

// binaryParameter composes two operands through Value (so each operand's
// own cutoff is honored before combining), then applies its own cutoff to
// the combined result.
type binaryParameter struct {
	cutoffCfg
	a, b Parameter
	op   binaryOp
}

func (*binaryParameter) isParameter() {}

func newBinary(op binaryOp, a, b Parameter, opts ...Option) Parameter {
	return &binaryParameter{cutoffCfg: newCutoffCfg(opts), a: a, b: b, op: op}
}

// NewProduct returns a*b, where a and b are combined via their own Value.
func NewProduct(a, b Parameter, opts ...Option) Parameter {
	return newBinary(opProduct, a, b, opts...)
}

// NewQuotient returns a/b. A zero b yields +/-Inf or NaN following normal
// float64 division semantics; callers wanting a hard cutoff should wrap the
// divisor's own cutoff accordingly.
func NewQuotient(a, b Parameter, opts ...Option) Parameter {
	return newBinary(opQuotient, a, b, opts...)
}

// NewSum returns a+b.
func NewSum(a, b Parameter, opts ...Option) Parameter {
	return newBinary(opSum, a, b, opts...)
}

// NewDifference returns a-b.
func NewDifference(a, b Parameter, opts ...Option) Parameter {
	return newBinary(opDifference, a, b, opts...)
}

func (p *binaryParameter) RawValue(d geom.Position, r rng.Rng) (float64, error) {
	av, err := p.a.Value(d, r)
	if err != nil {
		return 0, err
	}
	bv, err := p.b.Value(d, r)
	if err != nil {
		return 0, err
	}
	switch p.op {
	case opProduct:
		return av * bv, nil
	case opQuotient:
		return av / bv, nil
	case opSum:
		return av + bv, nil
	case opDifference:
		return av - bv, nil
	default:
		return 0, ErrInvalidParameter
	}
}

func (p *binaryParameter) Value(d geom.Position, r rng.Rng) (float64, error) {
	raw, err := p.RawValue(d, r)
	if err != nil {
		return 0, err
	}
	return p.apply(raw), nil
}
