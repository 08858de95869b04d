package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/slopepath/grid"
	"github.com/katalvlaran/slopepath/terrain"
)

// ExampleCostGrid builds metric heights from a normalized raster and prints
// the resulting cost multipliers.
//
// Scenario:
//
//   - 1×4 strip with a single bump in the middle.
//   - Heights 0–1 m, 10 cm cells, 30° limit, slope weight 10.
func ExampleCostGrid() {
	hf, _ := grid.FromRows([][]float64{{0, 0, 0.04, 0}})
	m := terrain.ConvertToMeters(hf, 0, 1)
	costs := terrain.CostGrid(m, 0.1, 30, 10)
	for c := 0; c < costs.Cols(); c++ {
		fmt.Printf("%.3f ", costs.At(grid.C(0, c)))
	}
	fmt.Println()

	// Output:
	// 1.000 2.421 1.000 2.421
}
