package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/slopepath/config"
	"github.com/katalvlaran/slopepath/grid"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNoPath indicates that no admissible route exists.
	ErrNoPath = errors.New("astar: no path")

	// ErrOutOfBounds indicates that start or destination lies outside the grid.
	// Errors carrying it also match ErrNoPath.
	ErrOutOfBounds = errors.New("astar: start or destination out of bounds")

	// ErrNilField indicates a nil height-field.
	ErrNilField = errors.New("astar: height-field is nil")

	// ErrShapeMismatch indicates a cost grid whose dimensions differ from the height-field.
	ErrShapeMismatch = errors.New("astar: cost grid shape differs from height-field")

	// ErrBadConnectivity indicates a movement mode other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("astar: connectivity must be Conn4 or Conn8")

	// ErrBadPixelSize indicates a non-positive cell size.
	ErrBadPixelSize = errors.New("astar: pixel size must be positive")

	// ErrBadHeuristicWeight indicates a negative or NaN heuristic weight.
	ErrBadHeuristicWeight = errors.New("astar: heuristic weight must be non-negative")

	// ErrBadTolerance indicates a negative goal tolerance.
	ErrBadTolerance = errors.New("astar: goal tolerance must be non-negative")
)

// Options configures a search.
//
// Connectivity    – Conn4 or Conn8 neighbor movement.
// Costs           – optional per-cell cost multipliers; nil means 1 everywhere.
// PixelSizeM      – metres per cell edge, used by the slope rule.
// MaxSlopeDeg     – steepest admissible move in degrees.
// HeuristicWeight – w in f = g + w·h. 1 keeps the search optimal.
// GoalTolerance   – goal radius in cells (Bidirectional only).
// Observer        – optional per-expansion sink.
type Options struct {
	Connectivity    grid.Connectivity
	Costs           *grid.Field
	PixelSizeM      float64
	MaxSlopeDeg     float64
	HeuristicWeight float64
	GoalTolerance   int
	Observer        Observer
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Conn8 movement, 10 cm cells, a 30° limit, heuristic
// weight 1, exact goal, no cost grid and no observer.
func DefaultOptions() Options {
	return Options{
		Connectivity:    grid.Conn8,
		PixelSizeM:      0.1,
		MaxSlopeDeg:     30,
		HeuristicWeight: 1,
	}
}

// WithConfig applies the physical and robot settings in one go: pixel size,
// max slope, movement mode, heuristic weight and goal tolerance.
// Values are validated when the search starts.
func WithConfig(fc config.FieldConfig, rc config.RobotConfig) Option {
	return func(o *Options) {
		o.PixelSizeM = fc.PixelSizeM
		o.MaxSlopeDeg = rc.MaxSlopeDeg
		o.Connectivity = rc.Movement
		o.HeuristicWeight = rc.RemainingDistanceWeight
		o.GoalTolerance = rc.EndTolerancePx
	}
}

// WithConnectivity selects 4- or 8-neighbor movement.
// Panics with ErrBadConnectivity for any other value.
func WithConnectivity(c grid.Connectivity) Option {
	if !c.Valid() {
		panic(ErrBadConnectivity.Error())
	}
	return func(o *Options) {
		o.Connectivity = c
	}
}

// WithCostGrid sets the per-cell cost multipliers. nil restores uniform cost.
func WithCostGrid(costs *grid.Field) Option {
	return func(o *Options) {
		o.Costs = costs
	}
}

// WithPixelSize sets the metric size of one cell. Panics if m <= 0.
func WithPixelSize(m float64) Option {
	if !(m > 0) {
		panic(ErrBadPixelSize.Error())
	}
	return func(o *Options) {
		o.PixelSizeM = m
	}
}

// WithMaxSlope sets the steepest admissible move in degrees. Any value is
// accepted; a negative limit only admits a cell's move to itself.
func WithMaxSlope(deg float64) Option {
	return func(o *Options) {
		o.MaxSlopeDeg = deg
	}
}

// WithHeuristicWeight sets w in f = g + w·h. Panics if w < 0 or NaN.
func WithHeuristicWeight(w float64) Option {
	if !(w >= 0) {
		panic(ErrBadHeuristicWeight.Error())
	}
	return func(o *Options) {
		o.HeuristicWeight = w
	}
}

// WithGoalTolerance sets the goal radius in cells. Panics if px < 0.
func WithGoalTolerance(px int) Option {
	if px < 0 {
		panic(ErrBadTolerance.Error())
	}
	return func(o *Options) {
		o.GoalTolerance = px
	}
}

// WithObserver registers obs to receive one SearchStep per expansion.
// A nil observer (including a nil ObserverFunc) disables snapshots.
func WithObserver(obs Observer) Option {
	if f, ok := obs.(ObserverFunc); ok && f == nil {
		obs = nil
	}
	return func(o *Options) {
		o.Observer = obs
	}
}

func (o *Options) validate(hf *grid.Field) error {
	if hf == nil {
		return ErrNilField
	}
	if o.Costs != nil && !o.Costs.SameShape(hf) {
		return ErrShapeMismatch
	}
	if !o.Connectivity.Valid() {
		return ErrBadConnectivity
	}
	if !(o.PixelSizeM > 0) || math.IsInf(o.PixelSizeM, 1) {
		return ErrBadPixelSize
	}
	if !(o.HeuristicWeight >= 0) {
		return ErrBadHeuristicWeight
	}
	if o.GoalTolerance < 0 {
		return ErrBadTolerance
	}

	return nil
}

// Result is the outcome of a search.
//
// Path     – cells from start to the reached goal, inclusive; nil on failure.
// Blocked  – off-grid or slope-rejected neighbors, deduplicated, in discovery order.
// Cost     – PathCost of Path under the search's cost grid.
// Expanded – number of finalized cells (both sides for Bidirectional).
// Meeting  – the cell where the search terminated (destination for Search).
type Result struct {
	Path     []grid.Cell
	Blocked  []grid.Cell
	Cost     float64
	Expanded int
	Meeting  grid.Cell
}

// Found reports whether the result carries a path.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}
