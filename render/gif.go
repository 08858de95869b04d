package render

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/slopepath/astar"
	"github.com/katalvlaran/slopepath/grid"
)

// ErrNoFrames indicates an empty trace.
var ErrNoFrames = errors.New("render: trace has no snapshots")

// GIFOptions controls SearchGIF.
//
// MaxFrames  – upper bound on search frames (the final frame is extra); <= 0 keeps all.
// FrameDelay – display time of each search frame.
// FinalDelay – display time of the closing path frame.
// Scale      – integer upscaling factor; < 1 is treated as 1.
type GIFOptions struct {
	MaxFrames  int
	FrameDelay time.Duration
	FinalDelay time.Duration
	Scale      int
}

// DefaultGIFOptions returns 200 frames of 50 ms and a 700 ms final frame at scale 1.
func DefaultGIFOptions() GIFOptions {
	return GIFOptions{
		MaxFrames:  200,
		FrameDelay: 50 * time.Millisecond,
		FinalDelay: 700 * time.Millisecond,
		Scale:      1,
	}
}

// FrameStride returns the snapshot stride that keeps at most maxFrames of n.
func FrameStride(n, maxFrames int) int {
	if maxFrames <= 0 || n <= maxFrames {
		return 1
	}
	return max(n/maxFrames, 1)
}

// SearchGIF writes an animated GIF replaying steps over base, closing with a
// frame that shows path and every blocked cell seen. Blocked cells accumulate
// across frames, including those of snapshots skipped by the frame stride.
// The animation loops forever.
func SearchGIF(w io.Writer, base image.Image, steps []astar.SearchStep, path []grid.Cell, opts GIFOptions) error {
	if len(steps) == 0 {
		return ErrNoFrames
	}
	scale := max(opts.Scale, 1)
	stride := FrameStride(len(steps), opts.MaxFrames)

	q := newQuantizer()
	anim := &gif.GIF{LoopCount: 0}
	var blocked []grid.Cell

	for i, s := range steps {
		blocked = append(blocked, s.Blocked...)
		if i%stride != 0 {
			continue
		}
		frame := toRGBA(base)
		paint(frame, blocked, Blocked)
		paint(frame, s.Visited, Visited)
		paint(frame, s.Open, Open)
		paint(frame, []grid.Cell{s.Current}, Current)
		anim.Image = append(anim.Image, q.paletted(upscale(frame, scale)))
		anim.Delay = append(anim.Delay, centis(opts.FrameDelay))
	}

	final := DrawPath(base, path, blocked)
	anim.Image = append(anim.Image, q.paletted(upscale(final, scale)))
	anim.Delay = append(anim.Delay, centis(opts.FinalDelay))

	return gif.EncodeAll(w, anim)
}

// centis converts to the 1/100 s units used by GIF delays.
func centis(d time.Duration) int {
	return int(d / (10 * time.Millisecond))
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	if scale == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// quantizer maps RGBA frames onto a fixed palette: the marker colors
// followed by a gray ramp for the terrain backdrop.
type quantizer struct {
	palette color.Palette
	marker  map[color.RGBA]uint8
	grays   int
}

func newQuantizer() *quantizer {
	markers := []color.RGBA{Blocked, Visited, Open, Current, Path, Start, End}
	q := &quantizer{marker: make(map[color.RGBA]uint8, len(markers))}
	for i, c := range markers {
		q.palette = append(q.palette, c)
		q.marker[c] = uint8(i)
	}
	q.grays = 256 - len(markers)
	for i := 0; i < q.grays; i++ {
		v := uint8(i * 255 / (q.grays - 1))
		q.palette = append(q.palette, color.RGBA{v, v, v, 255})
	}
	return q
}

func (q *quantizer) paletted(src *image.RGBA) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(b, q.palette)
	offset := len(q.marker)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			if idx, ok := q.marker[c]; ok {
				dst.SetColorIndex(x, y, idx)
				continue
			}
			lum := color.GrayModel.Convert(c).(color.Gray).Y
			dst.SetColorIndex(x, y, uint8(offset+int(lum)*(q.grays-1)/255))
		}
	}
	return dst
}
