package vosealias

import "github.com/katalvlaran/fieldwire/rng"

// Draw samples one outcome index in O(1): a uniform draw r in [0,n) splits
// into an integer part k and fractional part v; returns k if v < prob[k],
// else alias[k].
func (t *Table) Draw(r rng.Rng) int {
	x := r.Uniform() * float64(t.n)
	k := int(x)
	if k >= t.n {
		k = t.n - 1
	}
	v := x - float64(k)
	if v < t.prob[k] {
		return k
	}
	return t.alias[k]
}
