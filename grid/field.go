package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Field is an immutable rows×cols raster of float64 values, used both for
// height-fields and for per-cell cost multipliers. The backing store is a
// gonum *mat.Dense in row-major order, so flat index i addresses
// (i / cols, i % cols).
type Field struct {
	rows, cols int
	m          *mat.Dense
}

// NewField constructs a Field from a row-major data slice of length rows*cols.
// The slice is copied. Returns ErrEmptyGrid for non-positive dimensions and
// ErrShape when len(data) != rows*cols.
// Complexity: O(rows×cols).
func NewField(rows, cols int, data []float64) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(data) != rows*cols {
		return nil, ErrShape
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Field{rows: rows, cols: cols, m: mat.NewDense(rows, cols, buf)}, nil
}

// FromRows constructs a Field from a non-empty rectangular 2D slice.
// It deep-copies the input to ensure immutability.
func FromRows(values [][]float64) (*Field, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	data := make([]float64, 0, h*w)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		data = append(data, row...)
	}

	return &Field{rows: h, cols: w, m: mat.NewDense(h, w, data)}, nil
}

// Uniform returns a rows×cols Field with every cell set to v.
func Uniform(rows, cols int, v float64) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}

	return &Field{rows: rows, cols: cols, m: mat.NewDense(rows, cols, data)}, nil
}

// FromDense wraps an existing matrix. The matrix is copied.
func FromDense(m mat.Matrix) (*Field, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyGrid
	}

	return &Field{rows: r, cols: c, m: mat.DenseCopyOf(m)}, nil
}

// Map returns a new Field of the same shape holding fn(v) for every value v
// of f, in row-major order. f is left untouched.
// Complexity: O(rows×cols).
func (f *Field) Map(fn func(v float64) float64) *Field {
	raw := f.m.RawMatrix().Data
	data := make([]float64, len(raw))
	for i, v := range raw {
		data[i] = fn(v)
	}

	return &Field{rows: f.rows, cols: f.cols, m: mat.NewDense(f.rows, f.cols, data)}
}

// Rows returns the number of rows.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Field) Cols() int { return f.cols }

// Len returns rows×cols.
func (f *Field) Len() int { return f.rows * f.cols }

// SameShape reports whether f and o have identical dimensions.
func (f *Field) SameShape(o *Field) bool {
	return f.rows == o.rows && f.cols == o.cols
}

// InBounds reports whether c lies within [0,rows)×[0,cols).
// Complexity: O(1).
func (f *Field) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < f.rows && c.Col >= 0 && c.Col < f.cols
}

// At returns the value stored at c. c must be in bounds.
func (f *Field) At(c Cell) float64 {
	return f.m.At(c.Row, c.Col)
}

// AtIndex returns the value at flat row-major index i.
func (f *Field) AtIndex(i int) float64 {
	return f.m.RawMatrix().Data[i]
}

// Index maps an in-bounds cell to its row-major index: row*cols + col.
// Complexity: O(1).
func (f *Field) Index(c Cell) int {
	return c.Row*f.cols + c.Col
}

// CellAt converts a row-major index back to its cell.
// Complexity: O(1).
func (f *Field) CellAt(i int) Cell {
	return Cell{Row: i / f.cols, Col: i % f.cols}
}

// Min returns the smallest stored value.
func (f *Field) Min() float64 {
	return floats.Min(f.m.RawMatrix().Data)
}

// Max returns the largest stored value.
func (f *Field) Max() float64 {
	return floats.Max(f.m.RawMatrix().Data)
}

// Matrix exposes a read-only view of the backing matrix for gonum interop.
func (f *Field) Matrix() mat.Matrix {
	return f.m
}

// Values returns a copy of the row-major data.
func (f *Field) Values() []float64 {
	raw := f.m.RawMatrix().Data
	out := make([]float64, len(raw))
	copy(out, raw)
	return out
}
