package param_test

import (
	"fmt"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/param"
)

// ExampleNewGaussian shows a radial kernel weighted by distance, with a
// cutoff that zeroes contributions below a threshold.
func ExampleNewGaussian() {
	p, err := param.NewGaussian(0, 1, 0, 1, param.WithCutoff(0.1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	near, _ := p.Value(geom.Position{0, 0}, nil)
	far, _ := p.Value(geom.Position{5, 0}, nil)
	fmt.Printf("near=%.4f far=%.4f\n", near, far)
	// Output: near=1.0000 far=0.0000
}

// ExampleNewProduct combines a distance-decaying envelope with a constant
// scale factor.
func ExampleNewProduct() {
	envelope, _ := param.NewExponential(1, 0, 2)
	scale := param.NewConstant(10)
	combined := param.NewProduct(envelope, scale)

	v, _ := combined.Value(geom.Position{0, 0}, nil)
	fmt.Printf("%.1f\n", v)
	// Output: 10.0
}
