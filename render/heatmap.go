package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/slopepath/grid"
)

// viridis is the color ramp used by the heatmap visual map.
var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Downsample reduces costs to at most maxCells×maxCells blocks, each holding
// the largest finite value of the cells it covers. It returns the block
// values row-major, the block grid size and the block edge in cells.
// maxCells <= 0 keeps full resolution.
func Downsample(costs *grid.Field, maxCells int) (vals []float64, rows, cols, block int) {
	block = 1
	if maxCells > 0 {
		longest := max(costs.Rows(), costs.Cols())
		block = (longest + maxCells - 1) / maxCells
	}
	rows = (costs.Rows() + block - 1) / block
	cols = (costs.Cols() + block - 1) / block

	vals = make([]float64, rows*cols)
	for i := range vals {
		vals[i] = math.Inf(-1)
	}
	for r := 0; r < costs.Rows(); r++ {
		for c := 0; c < costs.Cols(); c++ {
			v := costs.At(grid.C(r, c))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			i := (r/block)*cols + c/block
			vals[i] = math.Max(vals[i], v)
		}
	}
	return vals, rows, cols, block
}

// CostHeatmap writes an HTML page with a heatmap of the cost grid and the
// path overlaid as a second series at the top of the scale. Large grids are
// reduced with Downsample(costs, maxCells).
func CostHeatmap(w io.Writer, costs *grid.Field, path []grid.Cell, maxCells int) error {
	vals, rows, cols, block := Downsample(costs, maxCells)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsInf(v, -1) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if lo > hi {
		lo, hi = 0, 1
	}

	xs := make([]string, cols)
	for c := range xs {
		xs[c] = strconv.Itoa(c * block)
	}
	ys := make([]string, rows)
	for r := range ys {
		ys[r] = strconv.Itoa(r * block)
	}

	data := make([]opts.HeatMapData, 0, len(vals))
	for i, v := range vals {
		if math.IsInf(v, -1) {
			continue
		}
		data = append(data, opts.HeatMapData{Value: [3]interface{}{i % cols, i / cols, v}})
	}
	trail := make([]opts.HeatMapData, 0, len(path))
	for _, c := range path {
		trail = append(trail, opts.HeatMapData{Value: [3]interface{}{c.Col / block, c.Row / block, hi}})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Slope cost", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Slope cost grid",
			Subtitle: fmt.Sprintf("%dx%d cells, block=%d, path=%d cells", costs.Rows(), costs.Cols(), block, len(path)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xs, Name: "col"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: ys, Name: "row", Inverse: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	hm.SetXAxis(xs).
		AddSeries("cost", data).
		AddSeries("path", trail)

	return hm.Render(w)
}
