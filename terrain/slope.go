package terrain

import (
	"math"

	"github.com/katalvlaran/slopepath/grid"
)

// SlopeDeg returns the inclination in degrees of the move from one cell to an
// adjacent one: atan2(|Δz|, run) where run is pixelSizeM, or pixelSizeM×√2
// for a diagonal move. Both cells must be in bounds.
func SlopeDeg(hf *grid.Field, from, to grid.Cell, pixelSizeM float64) float64 {
	dz := math.Abs(hf.At(to) - hf.At(from))
	run := pixelSizeM
	if from.Row != to.Row && from.Col != to.Col {
		run *= math.Sqrt2
	}

	return degrees(math.Atan2(dz, run))
}

// Traversable reports whether the edge from → to is within maxSlopeDeg.
// A cell is always traversable to itself. The rule depends on the pair of
// cells, so callers evaluate it per candidate edge rather than per cell.
// Complexity: O(1).
func Traversable(hf *grid.Field, from, to grid.Cell, pixelSizeM, maxSlopeDeg float64) bool {
	if from == to {
		return true
	}

	return SlopeDeg(hf, from, to, pixelSizeM) <= maxSlopeDeg
}
