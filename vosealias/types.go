package vosealias

import "errors"

// Sentinel errors for vosealias operations.
var (
	ErrEmptyDistribution   = errors.New("vosealias: probability vector must be non-empty")
	ErrNegativeProbability = errors.New("vosealias: probability vector entries must be non-negative")
)

// Table is a built alias table over a fixed-size discrete distribution,
// ready for repeated O(1) draws.
type Table struct {
	n     int
	prob  []float64
	alias []int
}

// Len returns the number of outcomes the table was built over.
func (t *Table) Len() int { return t.n }
