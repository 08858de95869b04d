package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShape indicates a flat data slice whose length is not rows×cols.
	ErrShape = errors.New("grid: data length does not match rows×cols")
)

// Cell is a (Row, Col) position. Off-grid neighbors keep their raw, possibly
// negative, coordinates.
type Cell struct {
	Row, Col int
}

// C is shorthand for Cell{Row: row, Col: col}.
func C(row, col int) Cell { return Cell{Row: row, Col: col} }

// Add returns the cell displaced by o.
func (c Cell) Add(o Offset) Cell {
	return Cell{Row: c.Row + o.DR, Col: c.Col + o.DC}
}

// Less orders cells lexicographically by (Row, Col).
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Compare returns -1, 0 or +1 following Less; usable with slices.SortFunc.
func (c Cell) Compare(o Cell) int {
	switch {
	case c.Less(o):
		return -1
	case o.Less(c):
		return 1
	default:
		return 0
	}
}

// Dist returns the Euclidean distance between c and o in cell units.
func (c Cell) Dist(o Cell) float64 {
	return math.Hypot(float64(c.Row-o.Row), float64(c.Col-o.Col))
}

// Dist2 returns the squared Euclidean distance between c and o.
func (c Cell) Dist2(o Cell) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	return dr*dr + dc*dc
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offset is a (row, col) displacement between neighboring cells.
type Offset struct {
	DR, DC int
}

// Diagonal reports whether the offset moves along both axes.
func (o Offset) Diagonal() bool {
	return o.DR != 0 && o.DC != 0
}

// Length returns the geometric step length in cell units: 1 or √2.
func (o Offset) Length() float64 {
	if o.Diagonal() {
		return math.Sqrt2
	}
	return 1
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including
// diagonals (Conn8). The numeric values match the number of neighbors so a
// config file can simply say 4 or 8.
type Connectivity int

const (
	// Conn4 uses the four cardinal neighbors.
	Conn4 Connectivity = 4
	// Conn8 adds the four diagonal neighbors.
	Conn8 Connectivity = 8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}
