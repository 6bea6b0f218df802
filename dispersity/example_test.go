package dispersity_test

import (
	"fmt"

	"github.com/katalvlaran/lvsas/dispersity"
	"github.com/katalvlaran/lvsas/params"
)

// ExampleAverage averages a kernel over a two-point radius distribution with
// volume weighting V = r³.
func ExampleAverage() {
	radius, _ := params.NewDistribution([]float64{1, 2}, []float64{1, 1})
	kernel := func(r float64) float64 { return r }
	volume := func(r float64) float64 { return r * r * r }

	fmt.Printf("%.4f\n", dispersity.Average(radius, kernel, volume))
	// Output:
	// 1.8889
}

// ExampleMean shows the weighted mean used for effective radii.
func ExampleMean() {
	radius, _ := params.NewDistribution([]float64{10, 20, 30}, []float64{1, 2, 1})
	m, degenerate := dispersity.Mean(radius)
	fmt.Println(m, degenerate)
	// Output:
	// 20 false
}
