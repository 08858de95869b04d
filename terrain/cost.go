package terrain

import (
	"math"

	"github.com/katalvlaran/slopepath/config"
	"github.com/katalvlaran/slopepath/grid"
)

// Gradient returns the per-cell height derivatives along columns (dx) and
// rows (dy). Interior cells use central differences; border cells substitute
// their own value for the missing neighbor. Both are divided by 2×pixelSizeM.
// Complexity: O(W×H).
func Gradient(hf *grid.Field, pixelSizeM float64) (dx, dy *grid.Field) {
	rows, cols := hf.Rows(), hf.Cols()
	gx := make([]float64, rows*cols)
	gy := make([]float64, rows*cols)
	denom := 2 * pixelSizeM

	var left, right, up, down float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			here := hf.At(grid.C(r, c))

			left, right = here, here
			if c > 0 {
				left = hf.At(grid.C(r, c-1))
			}
			if c+1 < cols {
				right = hf.At(grid.C(r, c+1))
			}
			up, down = here, here
			if r > 0 {
				up = hf.At(grid.C(r-1, c))
			}
			if r+1 < rows {
				down = hf.At(grid.C(r+1, c))
			}

			gx[r*cols+c] = (right - left) / denom
			gy[r*cols+c] = (down - up) / denom
		}
	}

	dx, _ = grid.NewField(rows, cols, gx)
	dy, _ = grid.NewField(rows, cols, gy)

	return dx, dy
}

// CostGrid derives the per-cell traversal cost multiplier from local slope.
//
//	angle = atan(hypot(dx, dy)) in degrees
//	ratio = clip(angle / maxSlopeDeg, 0, 1)
//	cost  = 1 + slopeCostWeight × ratio²
//
// If maxSlopeDeg <= 0 every cost is exactly 1.
// Complexity: O(W×H).
func CostGrid(hf *grid.Field, pixelSizeM, maxSlopeDeg, slopeCostWeight float64) *grid.Field {
	rows, cols := hf.Rows(), hf.Cols()
	if maxSlopeDeg <= 0 {
		flat, _ := grid.Uniform(rows, cols, 1)
		return flat
	}

	dx, dy := Gradient(hf, pixelSizeM)
	out := make([]float64, rows*cols)
	for i := range out {
		angle := degrees(math.Atan(math.Hypot(dx.AtIndex(i), dy.AtIndex(i))))
		ratio := clipUnit(angle / maxSlopeDeg)
		out[i] = 1 + slopeCostWeight*ratio*ratio
	}
	costs, _ := grid.NewField(rows, cols, out)

	return costs
}

// CostGridFor is CostGrid driven by the field and robot configuration.
func CostGridFor(hf *grid.Field, fc config.FieldConfig, rc config.RobotConfig) *grid.Field {
	return CostGrid(hf, fc.PixelSizeM, rc.MaxSlopeDeg, rc.SlopeCostWeight)
}

func clipUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
