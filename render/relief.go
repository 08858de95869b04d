package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/slopepath/grid"
)

// HeightColor maps t in [0,1] onto a green → yellow → orange → red → dark red
// ramp. Values outside [0,1] are clamped.
func HeightColor(t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	switch {
	case t < 0.25:
		u := t / 0.25
		return color.RGBA{uint8(u * 255), 255, 0, 255}
	case t < 0.5:
		u := (t - 0.25) / 0.25
		return color.RGBA{255, uint8(255 - u*90), 0, 255}
	case t < 0.75:
		u := (t - 0.5) / 0.25
		return color.RGBA{255, uint8(165 - u*165), 0, 255}
	default:
		u := (t - 0.75) / 0.25
		return color.RGBA{255 - uint8(u*116), 0, 0, 255}
	}
}

// Grayscale renders hf as an 8-bit image, mapping [min,max] onto [0,255].
func Grayscale(hf *grid.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, hf.Cols(), hf.Rows()))
	lo, span := hf.Min(), hf.Max()-hf.Min()
	for i, v := range hf.Values() {
		if span > 0 {
			img.Pix[i] = uint8(math.Round(255 * (v - lo) / span))
		}
	}
	return img
}

// Relief renders hf with HeightColor at scale pixels per cell and strokes
// path through the cell centres, marking the start green and the end blue.
func Relief(hf *grid.Field, path []grid.Cell, scale int) image.Image {
	scale = max(scale, 1)
	lo, span := hf.Min(), hf.Max()-hf.Min()

	tile := image.NewRGBA(image.Rect(0, 0, hf.Cols(), hf.Rows()))
	for r := 0; r < hf.Rows(); r++ {
		for c := 0; c < hf.Cols(); c++ {
			t := 0.0
			if span > 0 {
				t = (hf.At(grid.C(r, c)) - lo) / span
			}
			tile.SetRGBA(c, r, HeightColor(t))
		}
	}

	dc := gg.NewContextForRGBA(upscale(tile, scale))
	centre := func(c grid.Cell) (float64, float64) {
		s := float64(scale)
		return float64(c.Col)*s + s/2, float64(c.Row)*s + s/2
	}

	if len(path) > 1 {
		dc.SetColor(color.Black)
		dc.SetLineWidth(math.Max(1, float64(scale)/2))
		dc.SetLineJoinRound()
		dc.MoveTo(centre(path[0]))
		for _, c := range path[1:] {
			dc.LineTo(centre(c))
		}
		dc.Stroke()
	}
	if len(path) > 0 {
		x, y := centre(path[0])
		dc.SetColor(color.RGBA{0, 255, 0, 255})
		dc.DrawCircle(x, y, float64(scale)/2)
		dc.Fill()

		x, y = centre(path[len(path)-1])
		dc.SetColor(color.RGBA{0, 0, 255, 255})
		dc.DrawCircle(x, y, float64(scale)/2)
		dc.Fill()
	}

	return dc.Image()
}
