package astar

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/slopepath/grid"
)

// stepCost is base × multiplier; NaN or negative products become +Inf.
func stepCost(base, mult float64) float64 {
	c := base * mult
	if math.IsNaN(c) || c < 0 {
		return math.Inf(1)
	}
	return c
}

// PathCost sums the step costs along path: each move costs its geometric
// length times the multiplier of the cell it enters. costs may be nil.
// Paths with fewer than two cells cost 0.
func PathCost(path []grid.Cell, costs *grid.Field) float64 {
	if len(path) < 2 {
		return 0
	}
	steps := make([]float64, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		mult := 1.0
		if costs != nil {
			mult = costs.At(path[i])
		}
		steps = append(steps, stepCost(path[i-1].Dist(path[i]), mult))
	}

	return floats.Sum(steps)
}

// cellsOf converts flat indices to cells.
func cellsOf(hf *grid.Field, idx []int) []grid.Cell {
	out := make([]grid.Cell, len(idx))
	for i, v := range idx {
		out[i] = hf.CellAt(v)
	}
	return out
}
