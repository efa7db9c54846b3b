package mask_test

import (
	"fmt"

	"github.com/katalvlaran/fieldwire/geom"
	"github.com/katalvlaran/fieldwire/mask"
)

// ExampleNewDifference builds an annulus (ring) mask from two concentric
// Balls and checks membership at three radii.
func ExampleNewDifference() {
	outer, _ := mask.NewBall(geom.Position{0, 0}, 2)
	inner, _ := mask.NewBall(geom.Position{0, 0}, 1)
	annulus, _ := mask.NewDifference(outer, inner)

	for _, r := range []float64{0.5, 1.5, 2.5} {
		ok, _ := annulus.Inside(geom.Position{r, 0})
		fmt.Println(r, ok)
	}
	// Output:
	// 0.5 false
	// 1.5 true
	// 2.5 false
}
