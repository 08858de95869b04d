package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/slopepath/grid"
)

// ErrEmptyPath indicates a path with no cells.
var ErrEmptyPath = errors.New("render: path is empty")

// ProfilePoints returns (distance along path in metres, height in metres)
// for every cell of path.
func ProfilePoints(hf *grid.Field, path []grid.Cell, pixelSizeM float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(path))
	dist := 0.0
	for i, c := range path {
		if i > 0 {
			dist += path[i-1].Dist(c) * pixelSizeM
		}
		pts = append(pts, plotter.XY{X: dist, Y: hf.At(c)})
	}
	return pts
}

// ElevationProfile builds a line plot of terrain height along path.
func ElevationProfile(hf *grid.Field, path []grid.Cell, pixelSizeM float64) (*plot.Plot, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Elevation along path (%d cells)", len(path))
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Height (m)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(ProfilePoints(hf, path, pixelSizeM))
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 200, A: 255}
	line.Width = vg.Points(1)
	p.Add(line)

	return p, nil
}

// SaveElevationProfile renders ElevationProfile to file; the extension
// selects the format (png, svg, pdf, ...).
func SaveElevationProfile(file string, hf *grid.Field, path []grid.Cell, pixelSizeM float64) error {
	p, err := ElevationProfile(hf, path, pixelSizeM)
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, file); err != nil {
		return fmt.Errorf("render: save profile %s: %w", file, err)
	}
	return nil
}
