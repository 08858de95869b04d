package terrain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/slopepath/grid"
)

// ErrBadHeightmap indicates a malformed binary height-map.
var ErrBadHeightmap = errors.New("terrain: malformed binary height-map")

// maxBinarySide bounds each dimension of a binary height-map.
const maxBinarySide = 1 << 14

// ReadBinary decodes a raw height-map: little-endian int16 width, int16
// height, then width×height int16 samples in row-major order. The samples are
// returned unscaled.
func ReadBinary(r io.Reader) (*grid.Field, error) {
	var dims [2]int16
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrBadHeightmap, err)
	}
	cols, rows := int(dims[0]), int(dims[1])
	if cols <= 0 || rows <= 0 || cols > maxBinarySide || rows > maxBinarySide {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadHeightmap, cols, rows)
	}

	raw := make([]int16, rows*cols)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("%w: samples: %w", ErrBadHeightmap, err)
	}
	data := make([]float64, len(raw))
	for i, v := range raw {
		data[i] = float64(v)
	}

	return grid.NewField(rows, cols, data)
}

// WriteBinary encodes hf in the ReadBinary layout, rounding and clamping
// each value to the int16 range.
func WriteBinary(w io.Writer, hf *grid.Field) error {
	if hf.Rows() > maxBinarySide || hf.Cols() > maxBinarySide {
		return fmt.Errorf("%w: dimensions %dx%d", ErrBadHeightmap, hf.Cols(), hf.Rows())
	}
	out := make([]int16, 0, 2+hf.Len())
	out = append(out, int16(hf.Cols()), int16(hf.Rows()))
	for _, v := range hf.Values() {
		v = math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(v)))
		out = append(out, int16(v))
	}
	return binary.Write(w, binary.LittleEndian, out)
}

// Normalize rescales hf linearly onto [0,1]. A constant field maps to all zeros.
func Normalize(hf *grid.Field) *grid.Field {
	lo, hi := hf.Min(), hf.Max()
	span := hi - lo

	return hf.Map(func(v float64) float64 {
		if span == 0 {
			return 0
		}
		return (v - lo) / span
	})
}
