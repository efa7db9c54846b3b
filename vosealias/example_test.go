package vosealias_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fieldwire/rng"
	"github.com/katalvlaran/fieldwire/vosealias"
)

// ExampleNewTable builds a table over a skewed distribution and draws one
// sample from a deterministically seeded Rng.
func ExampleNewTable() {
	tab, err := vosealias.NewTable([]float64{0, 0, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r := rng.NewMathRandRng(rand.New(rand.NewSource(1)))
	fmt.Println(tab.Draw(r))
	// Output: 2
}
