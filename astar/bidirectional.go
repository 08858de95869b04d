package astar

import (
	"math"
	"slices"

	"github.com/katalvlaran/slopepath/grid"
)

// GoalRegion returns every in-bounds cell whose squared distance to dest is
// at most radius², in row-major order. When nothing qualifies the region is
// {dest}. Only the part of the disc's bounding square that overlaps the grid
// is scanned, so the cost is bounded by the grid size for any radius.
func GoalRegion(hf *grid.Field, dest grid.Cell, radius int) []grid.Cell {
	r := min(radius, maxGoalRadius)
	r2 := int64(r) * int64(r)
	var out []grid.Cell
	for row := max(0, dest.Row-r); row <= min(hf.Rows()-1, dest.Row+r); row++ {
		dr := int64(row - dest.Row)
		for col := max(0, dest.Col-r); col <= min(hf.Cols()-1, dest.Col+r); col++ {
			dc := int64(col - dest.Col)
			if dr*dr+dc*dc <= r2 {
				out = append(out, grid.C(row, col))
			}
		}
	}
	if len(out) == 0 {
		return []grid.Cell{dest}
	}

	return out
}

// maxGoalRadius caps the goal radius so that its square fits in an int64.
// It is far beyond any grid side a Field can hold.
const maxGoalRadius = math.MaxInt32

// Bidirectional finds a route from start to any cell of
// GoalRegion(hf, dest, GoalTolerance) by alternating one forward and one
// backward expansion.
//
// The forward side is seeded at start with heuristic distance to dest. The
// backward side is seeded with g = 0 at every goal cell, heuristic distance
// to start. The search stops at the first of:
//   - forward pops a goal cell,
//   - backward pops start,
//   - either side pops a cell the other side has finalized.
//
// The path joins the forward chain start→meeting with the backward chain
// meeting→goal. The first meeting is not guaranteed to be optimal.
// Observer snapshots are emitted once per half-step, with Visited and Open
// covering both sides.
func Bidirectional(hf *grid.Field, start, dest grid.Cell, opts ...Option) (*Result, error) {
	r, err := newRunner(hf, opts)
	if err != nil {
		return nil, err
	}
	if res, err := r.quick(start, dest); res != nil {
		return res, err
	}

	n := hf.Len()
	startIdx := hf.Index(start)
	goals := make([]bool, n)

	fw := newFrontier(n, dest)
	bw := newFrontier(n, start)
	fw.seed(startIdx, r.heuristic(start, dest))
	for _, c := range GoalRegion(hf, dest, r.opts.GoalTolerance) {
		i := hf.Index(c)
		goals[i] = true
		bw.seed(i, r.heuristic(c, start))
	}

	for {
		// Forward half-step.
		u, ok := fw.pop()
		if !ok {
			return r.fail()
		}
		if res, hit := r.halfStep(fw, bw, u, goals[u] || bw.closed[u], false); hit {
			return res, nil
		}

		// Backward half-step.
		u, ok = bw.pop()
		if !ok {
			return r.fail()
		}
		if res, hit := r.halfStep(bw, fw, u, u == startIdx || fw.closed[u], true); hit {
			return res, nil
		}
	}
}

// halfStep finalizes u on side s. When meet is set it emits the goal
// snapshot and returns the joined path; otherwise it expands u.
// Snapshots always list the forward side first.
func (r *runner) halfStep(s, other *frontier, u int, meet, backward bool) (*Result, bool) {
	cur := r.hf.CellAt(u)
	r.finalize(s, u, cur)

	fw, bw := s, other
	if backward {
		fw, bw = other, s
	}
	if meet {
		r.emit(cur, true, fw, bw)
		return r.success(r.join(fw, bw, u), cur), true
	}

	r.expand(s, u, backward)
	r.emit(cur, false, fw, bw)
	r.step++

	return nil, false
}

// join stitches start→meet from the forward side with meet→goal from the
// backward side. Both sides must have reached meet.
func (r *runner) join(fw, bw *frontier, meet int) []grid.Cell {
	head := fw.chain(meet)
	slices.Reverse(head)
	tail := bw.chain(meet)

	return cellsOf(r.hf, append(head, tail[1:]...))
}
