// Package render turns search results into artifacts: a PNG with the final
// path, an animated GIF replaying a recorded search, a colored relief map with
// the path stroked over it (gg), an elevation profile along the path
// (gonum/plot) and an interactive cost heatmap (go-echarts).
//
// Colors:
//
//   - blocked cells: black
//   - visited cells: blue
//   - open cells:    yellow
//   - current cell:  lime
//   - path:          red, start green, end purple
//
// Off-grid coordinates are ignored. Cell (row, col) maps to pixel (x=col, y=row).
package render
