package terrain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slopepath/config"
	"github.com/katalvlaran/slopepath/grid"
	"github.com/katalvlaran/slopepath/terrain"
)

const eps = 1e-9

func mustRows(t *testing.T, rows [][]float64) *grid.Field {
	t.Helper()
	f, err := grid.FromRows(rows)
	require.NoError(t, err)
	return f
}

//----------------------------------------------------------------------------//
// ConvertToMeters
//----------------------------------------------------------------------------//

func TestConvertToMeters(t *testing.T) {
	hf := mustRows(t, [][]float64{{0, 0.5}, {1, 0.25}})
	m := terrain.ConvertToMeters(hf, 1, 5)

	require.InDelta(t, 1.0, m.At(grid.C(0, 0)), eps)
	require.InDelta(t, 3.0, m.At(grid.C(0, 1)), eps)
	require.InDelta(t, 5.0, m.At(grid.C(1, 0)), eps)
	require.InDelta(t, 2.0, m.At(grid.C(1, 1)), eps)
	require.InDelta(t, 0.5, hf.At(grid.C(0, 1)), eps, "input must be left untouched")
}

func TestToMeters_UsesFieldConfig(t *testing.T) {
	hf := mustRows(t, [][]float64{{1}})
	fc := config.DefaultField()
	require.InDelta(t, fc.HeightMaxM, terrain.ToMeters(hf, fc).At(grid.C(0, 0)), eps)
}

//----------------------------------------------------------------------------//
// Gradient and CostGrid
//----------------------------------------------------------------------------//

func TestGradient_CentralAndBorder(t *testing.T) {
	// Heights rise by 1 per column: interior dx = (2)/(2·0.5) = 2,
	// border dx = (1)/(2·0.5) = 1 because the edge reuses its own value.
	hf := mustRows(t, [][]float64{{0, 1, 2}, {0, 1, 2}})
	dx, dy := terrain.Gradient(hf, 0.5)

	require.InDelta(t, 1.0, dx.At(grid.C(0, 0)), eps)
	require.InDelta(t, 2.0, dx.At(grid.C(0, 1)), eps)
	require.InDelta(t, 1.0, dx.At(grid.C(1, 2)), eps)
	for i := 0; i < dy.Len(); i++ {
		require.InDelta(t, 0.0, dy.AtIndex(i), eps)
	}
}

func TestCostGrid_FlatIsBaseline(t *testing.T) {
	hf, err := grid.Uniform(4, 4, 2.5)
	require.NoError(t, err)
	costs := terrain.CostGrid(hf, 0.1, 30, 100)
	for i := 0; i < costs.Len(); i++ {
		require.InDelta(t, 1.0, costs.AtIndex(i), eps)
	}
}

func TestCostGrid_DegenerateSlope(t *testing.T) {
	hf := mustRows(t, [][]float64{{0, 10}, {5, 0}})
	for _, max := range []float64{0, -10} {
		costs := terrain.CostGrid(hf, 0.1, max, 100)
		require.True(t, costs.SameShape(hf))
		for i := 0; i < costs.Len(); i++ {
			require.Equal(t, 1.0, costs.AtIndex(i))
		}
	}
}

func TestCostGrid_QuadraticPenalty(t *testing.T) {
	// A ramp of 1 per column with pixel 0.5 gives an interior gradient of 2,
	// i.e. atan(2) ≈ 63.43°, which clips to ratio 1 for a 30° limit.
	hf := mustRows(t, [][]float64{{0, 1, 2}})
	costs := terrain.CostGrid(hf, 0.5, 30, 10)
	require.InDelta(t, 11.0, costs.At(grid.C(0, 1)), eps)

	// With a generous limit the ratio stays below 1.
	angle := math.Atan(2) * 180 / math.Pi
	costs = terrain.CostGrid(hf, 0.5, 90, 10)
	ratio := angle / 90
	require.InDelta(t, 1+10*ratio*ratio, costs.At(grid.C(0, 1)), eps)

	// Every multiplier is at least the flat baseline.
	for i := 0; i < costs.Len(); i++ {
		require.GreaterOrEqual(t, costs.AtIndex(i), 1.0)
	}
}

func TestCostGridFor_MonotoneInWeight(t *testing.T) {
	hf := mustRows(t, [][]float64{{0, 0.01, 0.03}, {0.02, 0.05, 0.04}})
	fc := config.DefaultField()
	rc := config.DefaultRobot()

	rc.SlopeCostWeight = 1
	low := terrain.CostGridFor(hf, fc, rc)
	rc.SlopeCostWeight = 50
	high := terrain.CostGridFor(hf, fc, rc)
	for i := 0; i < low.Len(); i++ {
		require.GreaterOrEqual(t, high.AtIndex(i), low.AtIndex(i))
	}
}

//----------------------------------------------------------------------------//
// Traversability
//----------------------------------------------------------------------------//

func TestTraversable(t *testing.T) {
	// tan(30°)·0.1 ≈ 0.0577; the diagonal run allows ≈ 0.0816.
	hf := mustRows(t, [][]float64{
		{0, 0.05, 0},
		{0.07, 0, 0},
		{0, 0, 0.09},
	})
	const px, max = 0.1, 30.0

	require.True(t, terrain.Traversable(hf, grid.C(0, 0), grid.C(0, 1), px, max))
	require.False(t, terrain.Traversable(hf, grid.C(0, 0), grid.C(1, 0), px, max), "orthogonal 0.07 exceeds 30°")
	require.True(t, terrain.Traversable(hf, grid.C(1, 1), grid.C(1, 0), px, 40))
	diag := mustRows(t, [][]float64{{0, 0}, {0, 0.07}})
	require.False(t, terrain.Traversable(diag, grid.C(0, 1), grid.C(1, 1), px, max))
	require.True(t, terrain.Traversable(diag, grid.C(0, 0), grid.C(1, 1), px, max), "diagonal run is √2 longer")
	require.False(t, terrain.Traversable(hf, grid.C(1, 1), grid.C(2, 2), px, max))
	require.True(t, terrain.Traversable(hf, grid.C(2, 2), grid.C(2, 2), px, -1), "a cell always reaches itself")

	// Symmetric in direction.
	require.Equal(t,
		terrain.SlopeDeg(hf, grid.C(1, 1), grid.C(2, 2), px),
		terrain.SlopeDeg(hf, grid.C(2, 2), grid.C(1, 1), px))
}

//----------------------------------------------------------------------------//
// Components
//----------------------------------------------------------------------------//

func TestComponents_WallSplitsRegions(t *testing.T) {
	hf := mustRows(t, [][]float64{
		{0, 0, 5, 0},
		{0, 0, 5, 0},
		{0, 0, 5, 0},
	})
	regions := terrain.Components(hf, grid.Conn8, 0.1, 30)

	require.Equal(t, 3, regions.Count(), "left plain, wall, right strip")
	require.Equal(t, 0, regions.Label(grid.C(0, 0)))
	require.Equal(t, 1, regions.Label(grid.C(0, 2)))
	require.Equal(t, 2, regions.Label(grid.C(0, 3)))
	require.Equal(t, 6, regions.Size(0))
	require.Equal(t, 3, regions.Size(1))
	require.Equal(t, 0, regions.Size(7))
	require.True(t, regions.Connected(grid.C(0, 0), grid.C(2, 1)))
	require.False(t, regions.Connected(grid.C(0, 0), grid.C(2, 3)))
	require.False(t, regions.Connected(grid.C(-1, 0), grid.C(-1, 0)))
	require.Equal(t, -1, regions.Label(grid.C(3, 0)))
}
