package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/katalvlaran/slopepath/grid"
)

// Palette colors.
var (
	Blocked = color.RGBA{0, 0, 0, 255}
	Visited = color.RGBA{0, 0, 255, 255}
	Open    = color.RGBA{255, 255, 0, 255}
	Current = color.RGBA{50, 205, 50, 255}
	Path    = color.RGBA{255, 0, 0, 255}
	Start   = color.RGBA{0, 255, 0, 255}
	End     = color.RGBA{128, 0, 128, 255}
)

// toRGBA copies base into a fresh RGBA canvas anchored at (0,0).
func toRGBA(base image.Image) *image.RGBA {
	b := base.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), base, b.Min, draw.Src)
	return canvas
}

func paint(canvas *image.RGBA, cells []grid.Cell, c color.RGBA) {
	b := canvas.Bounds()
	for _, cell := range cells {
		if cell.Row < 0 || cell.Col < 0 || cell.Row >= b.Dy() || cell.Col >= b.Dx() {
			continue
		}
		canvas.SetRGBA(cell.Col, cell.Row, c)
	}
}

// DrawPath returns a copy of base with blocked cells, the path and its
// endpoints painted over it, in that order.
func DrawPath(base image.Image, path, blocked []grid.Cell) *image.RGBA {
	canvas := toRGBA(base)
	paint(canvas, blocked, Blocked)
	paint(canvas, path, Path)
	if len(path) > 0 {
		paint(canvas, path[:1], Start)
		paint(canvas, path[len(path)-1:], End)
	}
	return canvas
}
