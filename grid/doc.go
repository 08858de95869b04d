// Package grid provides the raster primitives shared by every other slopepath
// package: cell coordinates, neighbor offsets and an immutable dense Field of
// float64 values.
//
// What:
//
//   - Cell addresses a (Row, Col) position. Coordinates are signed, so the same
//     type also describes neighbors that fall outside the raster.
//   - Connectivity selects 4- or 8-neighbor movement; Offsets returns the fixed,
//     ordered neighbor table for each mode.
//   - Field wraps a gonum *mat.Dense with row-major Index/CellAt conversions and
//     bounds checks at the boundary only.
//
// Why:
//
//   - Height-fields and cost grids share one representation, so shape checks
//     are trivial and the search engine can address both by flat index.
//   - The neighbor order is part of the deterministic contract of the search:
//     it decides tie-breaking and the order in which blocked neighbors are found.
//
// Complexity:
//
//   - NewField / FromRows: O(W×H) time and memory (input is copied).
//   - At, Index, CellAt, InBounds: O(1).
//   - Min, Max: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrShape: data length does not equal rows×cols.
package grid
