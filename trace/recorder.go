package trace

import (
	"slices"

	"github.com/katalvlaran/slopepath/astar"
	"github.com/katalvlaran/slopepath/grid"
)

// Recorder collects sampled snapshots. The zero value is not usable; call NewRecorder.
type Recorder struct {
	stride   int
	steps    []astar.SearchStep
	seen     map[grid.Cell]struct{}
	observed int

	progressEvery int
	progress      func(astar.SearchStep)
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithProgress calls fn for every snapshot whose index is a multiple of every,
// whether or not it is retained. every <= 0 disables the hook.
func WithProgress(every int, fn func(astar.SearchStep)) Option {
	return func(r *Recorder) {
		r.progressEvery = every
		r.progress = fn
	}
}

// NewRecorder returns a Recorder keeping every stride-th snapshot.
// stride < 1 is treated as 1 (keep everything).
func NewRecorder(stride int, opts ...Option) *Recorder {
	if stride < 1 {
		stride = 1
	}
	r := &Recorder{
		stride: stride,
		seen:   make(map[grid.Cell]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnStep implements astar.Observer.
func (r *Recorder) OnStep(step astar.SearchStep) {
	r.observed++
	if r.progress != nil && r.progressEvery > 0 && step.Index%r.progressEvery == 0 {
		r.progress(step)
	}
	if step.Index%r.stride != 0 && !step.Goal {
		return
	}

	fresh := make([]grid.Cell, 0, len(step.Blocked))
	for _, c := range step.Blocked {
		if _, ok := r.seen[c]; ok {
			continue
		}
		r.seen[c] = struct{}{}
		fresh = append(fresh, c)
	}
	step.Blocked = fresh
	r.steps = append(r.steps, step)
}

// Steps returns the retained snapshots in arrival order.
func (r *Recorder) Steps() []astar.SearchStep {
	return r.steps
}

// Len returns the number of retained snapshots.
func (r *Recorder) Len() int { return len(r.steps) }

// Observed returns the number of snapshots offered to the Recorder.
func (r *Recorder) Observed() int { return r.observed }

// Blocked returns every blocked cell reported so far, sorted by (row, col).
func (r *Recorder) Blocked() []grid.Cell {
	out := make([]grid.Cell, 0, len(r.seen))
	for c := range r.seen {
		out = append(out, c)
	}
	slices.SortFunc(out, grid.Cell.Compare)
	return out
}

// Reset drops all recorded state, keeping stride and options.
func (r *Recorder) Reset() {
	r.steps = nil
	r.observed = 0
	clear(r.seen)
}
