package terrain

import "github.com/katalvlaran/slopepath/grid"

// Regions labels every cell of a height-field with the id of its
// slope-connected component.
type Regions struct {
	field  *grid.Field
	labels []int
	sizes  []int
}

// Components finds all regions of cells that are mutually reachable through
// Traversable edges under conn. Labels are assigned in row-major order of each
// region's first cell, starting at 0.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and the BFS queue.
func Components(hf *grid.Field, conn grid.Connectivity, pixelSizeM, maxSlopeDeg float64) *Regions {
	total := hf.Len()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var sizes []int
	offsets := conn.Offsets()
	queue := make([]int, 0, 64)

	for i0 := 0; i0 < total; i0++ {
		if labels[i0] >= 0 {
			continue
		}
		id := len(sizes)
		labels[i0] = id
		queue = append(queue[:0], i0)

		// BFS over admissible edges
		for qi := 0; qi < len(queue); qi++ {
			u := hf.CellAt(queue[qi])
			for _, d := range offsets {
				v := u.Add(d)
				if !hf.InBounds(v) {
					continue
				}
				vi := hf.Index(v)
				if labels[vi] >= 0 || !Traversable(hf, u, v, pixelSizeM, maxSlopeDeg) {
					continue
				}
				labels[vi] = id
				queue = append(queue, vi)
			}
		}
		sizes = append(sizes, len(queue))
	}

	return &Regions{field: hf, labels: labels, sizes: sizes}
}

// Count returns the number of regions.
func (r *Regions) Count() int { return len(r.sizes) }

// Label returns the region id of c, or -1 when c is off-grid.
func (r *Regions) Label(c grid.Cell) int {
	if !r.field.InBounds(c) {
		return -1
	}
	return r.labels[r.field.Index(c)]
}

// Size returns the number of cells in region id.
func (r *Regions) Size(id int) int {
	if id < 0 || id >= len(r.sizes) {
		return 0
	}
	return r.sizes[id]
}

// Connected reports whether a and b are in the same region. Off-grid cells
// are never connected.
func (r *Regions) Connected(a, b grid.Cell) bool {
	la := r.Label(a)
	return la >= 0 && la == r.Label(b)
}
