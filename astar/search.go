package astar

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/slopepath/grid"
	"github.com/katalvlaran/slopepath/terrain"
)

// Search finds a route from start to dest over the height-field hf (metres)
// using weighted A*.
//
// Steps:
//  1. Apply options over DefaultOptions and validate them.
//  2. Reject an off-grid start or destination with ErrOutOfBounds.
//  3. Return [start] at once when start == dest.
//  4. Pop the lowest (f, index) cell, finalize it and relax its neighbors;
//     stop when dest is popped.
//
// On failure the returned *Result is non-nil and carries Blocked.
func Search(hf *grid.Field, start, dest grid.Cell, opts ...Option) (*Result, error) {
	r, err := newRunner(hf, opts)
	if err != nil {
		return nil, err
	}
	if res, err := r.quick(start, dest); res != nil {
		return res, err
	}

	return r.forward(start, dest)
}

// runner holds the mutable state for one search call.
type runner struct {
	hf      *grid.Field
	opts    Options
	offsets []grid.Offset
	blocked *blockedSet
	snap    *snapshotter // nil without an observer
	step    int          // next SearchStep index
	done    int          // finalized cells
}

func newRunner(hf *grid.Field, opts []Option) (*runner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(hf); err != nil {
		return nil, err
	}

	r := &runner{
		hf:      hf,
		opts:    o,
		offsets: o.Connectivity.Offsets(),
		blocked: newBlockedSet(),
	}
	if o.Observer != nil {
		r.snap = &snapshotter{obs: o.Observer, hf: hf}
	}

	return r, nil
}

// quick handles the cases that need no search at all; a nil Result means
// the search has to run.
func (r *runner) quick(start, dest grid.Cell) (*Result, error) {
	if !r.hf.InBounds(start) || !r.hf.InBounds(dest) {
		return &Result{Blocked: []grid.Cell{}, Cost: math.Inf(1)},
			fmt.Errorf("%w: %w: start %v, destination %v, grid %dx%d",
				ErrNoPath, ErrOutOfBounds, start, dest, r.hf.Rows(), r.hf.Cols())
	}
	if start == dest {
		return &Result{Path: []grid.Cell{start}, Blocked: []grid.Cell{}, Meeting: start}, nil
	}
	return nil, nil
}

func (r *runner) forward(start, dest grid.Cell) (*Result, error) {
	fw := newFrontier(r.hf.Len(), dest)
	fw.seed(r.hf.Index(start), r.heuristic(start, dest))
	destIdx := r.hf.Index(dest)

	for {
		u, ok := fw.pop()
		if !ok {
			return r.fail()
		}
		cur := r.hf.CellAt(u)
		r.finalize(fw, u, cur)

		if u == destIdx {
			r.emit(cur, true, fw)
			path := cellsOf(r.hf, fw.chain(u))
			slices.Reverse(path)
			return r.success(path, cur), nil
		}

		r.expand(fw, u, false)
		r.emit(cur, false, fw)
		r.step++
	}
}

// expand relaxes the neighbors of u within side s. With backward set, the
// step cost uses u's multiplier, since the forward move enters u.
func (r *runner) expand(s *frontier, u int, backward bool) {
	cur := r.hf.CellAt(u)
	for _, d := range r.offsets {
		next := cur.Add(d)
		if !r.hf.InBounds(next) {
			r.blocked.add(next)
			continue
		}
		if !terrain.Traversable(r.hf, cur, next, r.opts.PixelSizeM, r.opts.MaxSlopeDeg) {
			r.blocked.add(next)
			continue
		}
		v := r.hf.Index(next)
		if s.closed[v] {
			continue
		}

		entered := v
		if backward {
			entered = u
		}
		tentative := s.g[u] + stepCost(d.Length(), r.multiplier(entered))
		if tentative < s.g[v] {
			s.g[v] = tentative
			s.parent[v] = u
			s.push(v, tentative+r.heuristic(next, s.anchor))
		}
	}
}

func (r *runner) heuristic(from, to grid.Cell) float64 {
	return r.opts.HeuristicWeight * from.Dist(to)
}

func (r *runner) multiplier(idx int) float64 {
	if r.opts.Costs == nil {
		return 1
	}
	return r.opts.Costs.AtIndex(idx)
}

func (r *runner) finalize(s *frontier, u int, cur grid.Cell) {
	s.closed[u] = true
	r.done++
	if r.snap != nil {
		r.snap.finalize(cur)
	}
}

func (r *runner) emit(cur grid.Cell, goal bool, fronts ...*frontier) {
	if r.snap == nil {
		return
	}
	r.snap.emit(r.step, cur, r.blocked, goal, fronts...)
}

func (r *runner) success(path []grid.Cell, meeting grid.Cell) *Result {
	return &Result{
		Path:     path,
		Blocked:  r.blocked.cells(),
		Cost:     PathCost(path, r.opts.Costs),
		Expanded: r.done,
		Meeting:  meeting,
	}
}

func (r *runner) fail() (*Result, error) {
	return &Result{
		Blocked:  r.blocked.cells(),
		Cost:     math.Inf(1),
		Expanded: r.done,
	}, ErrNoPath
}
