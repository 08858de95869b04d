package noise

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"

	"github.com/katalvlaran/slopepath/grid"
)

// ErrBadSize indicates a non-positive image size.
var ErrBadSize = errors.New("noise: image size must be positive")

// Square returns a width×width opaque image of random RGB bytes drawn from a
// generator seeded with seed, blurred with a Gaussian of the given sigma.
// sigma <= 0 skips the blur. The same seed always yields the same image.
func Square(width int, seed int64, sigma float64) (*image.NRGBA, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, width)
	}

	rng := rand.New(rand.NewSource(seed))
	rgb := make([]byte, width*width*3)
	_, _ = rng.Read(rgb)

	img := image.NewNRGBA(image.Rect(0, 0, width, width))
	for i, j := 0, 0; i < len(img.Pix); i, j = i+4, j+3 {
		img.Pix[i+0] = rgb[j+0]
		img.Pix[i+1] = rgb[j+1]
		img.Pix[i+2] = rgb[j+2]
		img.Pix[i+3] = 0xff
	}
	if sigma <= 0 {
		return img, nil
	}

	return imaging.Blur(img, sigma), nil
}

// RedChannel returns a grayscale image holding the red component of img.
func RedChannel(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: c.R})
		}
	}
	return out
}

// Normalize maps gray levels to [0,1] (value/255). Row r of the field is
// pixel row y = r.
func Normalize(img *image.Gray) (*grid.Field, error) {
	b := img.Bounds()
	rows, cols := b.Dy(), b.Dx()
	data := make([]float64, 0, rows*cols)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			data = append(data, float64(img.GrayAt(x, y).Y)/255)
		}
	}
	return grid.NewField(rows, cols, data)
}

// HeightField runs Square, RedChannel and Normalize in sequence and returns
// the normalized field together with both intermediate images.
func HeightField(width int, seed int64, sigma float64) (*grid.Field, *image.NRGBA, *image.Gray, error) {
	base, err := Square(width, seed, sigma)
	if err != nil {
		return nil, nil, nil, err
	}
	red := RedChannel(base)
	hf, err := Normalize(red)
	if err != nil {
		return nil, nil, nil, err
	}
	return hf, base, red, nil
}
