// Package terrain turns a height-field into the inputs of the planner: metric
// heights, a per-cell slope cost multiplier, the pairwise slope admissibility
// rule and the slope-connected regions of a raster.
//
// What:
//
//   - ConvertToMeters / ToMeters: affine remap of normalized [0,1] heights to
//     [min_m, max_m].
//   - Gradient: central differences normalized by 2×pixel size, one-sided at the
//     borders (the edge cell stands in for its missing neighbor).
//   - CostGrid / CostGridFor: cost = 1 + weight × clip(slope/max_slope, 0, 1)².
//     Near-flat cells stay near 1 while steep-but-admissible cells approach
//     1 + weight. A non-positive max slope yields a uniform 1.0 grid.
//   - SlopeDeg / Traversable: the angle of the move between two adjacent cells
//     (diagonal runs are √2 longer) and whether it is within the limit.
//   - Components: connected regions of cells under the Traversable rule.
//   - ReadBinary / WriteBinary / Normalize: raw int16 height-maps (width,
//     height, then samples, little-endian) and their [0,1] rescale.
//
// Complexity:
//
//   - ConvertToMeters, Gradient, CostGrid: O(W×H) time and memory.
//   - Traversable: O(1); evaluated lazily per edge by the search.
//   - Components: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//
// All functions are pure: inputs are never modified, so a height-field and its
// cost grid can be shared by any number of sequential searches.
package terrain
