package astar_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/slopepath/astar"
	"github.com/katalvlaran/slopepath/config"
	"github.com/katalvlaran/slopepath/grid"
	"github.com/katalvlaran/slopepath/terrain"
)

const (
	px       = 0.1
	maxSlope = 30.0
	eps      = 1e-9
)

func flat(t testing.TB, rows, cols int) *grid.Field {
	t.Helper()
	f, err := grid.Uniform(rows, cols, 0)
	require.NoError(t, err)
	return f
}

func withPeak(t testing.TB, rows, cols int, peak grid.Cell, h float64) *grid.Field {
	t.Helper()
	data := make([]float64, rows*cols)
	data[peak.Row*cols+peak.Col] = h
	f, err := grid.NewField(rows, cols, data)
	require.NoError(t, err)
	return f
}

// randomField draws heights in [0, 0.08) m so that roughly a third of the
// 10 cm moves exceed 30°.
func randomField(t testing.TB, rng *rand.Rand, rows, cols int) *grid.Field {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64() * 0.08
	}
	f, err := grid.NewField(rows, cols, data)
	require.NoError(t, err)
	return f
}

// requireValidPath checks endpoints, adjacency under conn and the slope rule
// for every step.
func requireValidPath(t testing.TB, hf *grid.Field, path []grid.Cell, start grid.Cell, conn grid.Connectivity) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dr, dc := b.Row-a.Row, b.Col-a.Col
		require.True(t, dr*dr+dc*dc > 0, "repeated cell at %d", i)
		require.LessOrEqual(t, dr*dr, 1)
		require.LessOrEqual(t, dc*dc, 1)
		if conn == grid.Conn4 {
			require.Equal(t, 1, dr*dr+dc*dc, "diagonal step %v→%v under conn4", a, b)
		}
		require.True(t, hf.InBounds(b))
		require.True(t, terrain.Traversable(hf, a, b, px, maxSlope), "steep step %v→%v", a, b)
	}
}

// bruteForce runs Bellman-Ford over every admissible edge and returns the
// cheapest cost from start to each cell.
func bruteForce(hf, costs *grid.Field, start grid.Cell, conn grid.Connectivity) []float64 {
	n := hf.Len()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[hf.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			cu := hf.CellAt(u)
			for _, d := range conn.Offsets() {
				cv := cu.Add(d)
				if !hf.InBounds(cv) || !terrain.Traversable(hf, cu, cv, px, maxSlope) {
					continue
				}
				v := hf.Index(cv)
				if c := dist[u] + d.Length()*costs.AtIndex(v); c < dist[v]-eps {
					dist[v] = c
					changed = true
				}
			}
		}
	}
	return dist
}

//----------------------------------------------------------------------------//
// Search suite
//----------------------------------------------------------------------------//

// SearchSuite exercises the unidirectional A* engine.
type SearchSuite struct {
	suite.Suite
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestFlatDiagonal verifies the straight diagonal across a flat 5×5 field.
func (s *SearchSuite) TestFlatDiagonal() {
	hf := flat(s.T(), 5, 5)
	res, err := astar.Search(hf, grid.C(0, 0), grid.C(4, 4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Cell{
		grid.C(0, 0), grid.C(1, 1), grid.C(2, 2), grid.C(3, 3), grid.C(4, 4),
	}, res.Path)
	require.InDelta(s.T(), 4*math.Sqrt2, res.Cost, eps)
	require.Equal(s.T(), grid.C(4, 4), res.Meeting)
	require.True(s.T(), res.Found())
}

// TestPeakIsAvoided verifies that a 1 m spike in the middle is routed around
// and reported as blocked.
func (s *SearchSuite) TestPeakIsAvoided() {
	hf := withPeak(s.T(), 5, 5, grid.C(2, 2), 1.0)
	res, err := astar.Search(hf, grid.C(0, 0), grid.C(4, 4))
	require.NoError(s.T(), err)
	require.NotContains(s.T(), res.Path, grid.C(2, 2))
	require.Contains(s.T(), res.Blocked, grid.C(2, 2))
	require.Len(s.T(), res.Path, 6)
	require.InDelta(s.T(), 2+3*math.Sqrt2, res.Cost, eps)
	requireValidPath(s.T(), hf, res.Path, grid.C(0, 0), grid.Conn8)
}

// TestTrivial verifies that start == dest yields a one-cell path.
func (s *SearchSuite) TestTrivial() {
	hf := flat(s.T(), 3, 3)
	res, err := astar.Search(hf, grid.C(1, 1), grid.C(1, 1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Cell{grid.C(1, 1)}, res.Path)
	require.Empty(s.T(), res.Blocked)
	require.Zero(s.T(), res.Cost)
}

// TestOutOfBounds verifies the early rejection path: both sentinels match,
// nothing is blocked and the observer stays silent.
func (s *SearchSuite) TestOutOfBounds() {
	hf := flat(s.T(), 3, 3)
	calls := 0
	obs := astar.WithObserver(astar.ObserverFunc(func(astar.SearchStep) { calls++ }))

	for _, tc := range []struct{ start, dest grid.Cell }{
		{grid.C(-1, 0), grid.C(2, 2)},
		{grid.C(0, 0), grid.C(3, 0)},
		{grid.C(0, 5), grid.C(0, 0)},
	} {
		res, err := astar.Search(hf, tc.start, tc.dest, obs)
		require.Error(s.T(), err)
		require.True(s.T(), errors.Is(err, astar.ErrNoPath))
		require.True(s.T(), errors.Is(err, astar.ErrOutOfBounds))
		require.NotNil(s.T(), res)
		require.Empty(s.T(), res.Blocked)
		require.Nil(s.T(), res.Path)
	}
	require.Zero(s.T(), calls)
}

// TestUnreachable verifies ErrNoPath for a destination on a plateau.
func (s *SearchSuite) TestUnreachable() {
	hf := withPeak(s.T(), 3, 3, grid.C(2, 2), 1.0)
	res, err := astar.Search(hf, grid.C(0, 0), grid.C(2, 2))
	require.ErrorIs(s.T(), err, astar.ErrNoPath)
	require.False(s.T(), errors.Is(err, astar.ErrOutOfBounds))
	require.False(s.T(), res.Found())
	require.Contains(s.T(), res.Blocked, grid.C(2, 2))
	require.Equal(s.T(), 8, res.Expanded)
}

// TestChebyshev verifies that flat 8-connected paths have max(|dr|,|dc|)+1
// cells and the octile cost.
func (s *SearchSuite) TestChebyshev() {
	hf := flat(s.T(), 7, 7)
	start := grid.C(3, 3)
	for _, dest := range []grid.Cell{
		grid.C(0, 0), grid.C(0, 6), grid.C(6, 1), grid.C(3, 6), grid.C(5, 0), grid.C(1, 2),
	} {
		res, err := astar.Search(hf, start, dest)
		require.NoError(s.T(), err)
		dr := math.Abs(float64(dest.Row - start.Row))
		dc := math.Abs(float64(dest.Col - start.Col))
		require.Len(s.T(), res.Path, int(math.Max(dr, dc))+1, "dest %v", dest)
		require.InDelta(s.T(), math.Min(dr, dc)*math.Sqrt2+math.Abs(dr-dc), res.Cost, eps)
		require.Equal(s.T(), dest, res.Path[len(res.Path)-1])
	}
}

// TestConn4Manhattan verifies that 4-connected flat paths cost the Manhattan distance.
func (s *SearchSuite) TestConn4Manhattan() {
	hf := flat(s.T(), 6, 6)
	res, err := astar.Search(hf, grid.C(0, 0), grid.C(5, 3), astar.WithConnectivity(grid.Conn4))
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Path, 9)
	require.InDelta(s.T(), 8.0, res.Cost, eps)
	requireValidPath(s.T(), hf, res.Path, grid.C(0, 0), grid.Conn4)
}

// TestWithConfig verifies that robot settings drive movement and slope limit.
func (s *SearchSuite) TestWithConfig() {
	hf := flat(s.T(), 4, 4)
	rc := config.DefaultRobot()
	rc.Movement = grid.Conn4
	rc.RemainingDistanceWeight = 1
	res, err := astar.Search(hf, grid.C(0, 0), grid.C(3, 3), astar.WithConfig(config.DefaultField(), rc))
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 6.0, res.Cost, eps)

	rc.MaxSlopeDeg = -1
	_, err = astar.Search(hf, grid.C(0, 0), grid.C(3, 3), astar.WithConfig(config.DefaultField(), rc))
	require.ErrorIs(s.T(), err, astar.ErrNoPath, "negative limit only admits the self move")
}

// TestDeterministic verifies identical results across repeated runs.
func (s *SearchSuite) TestDeterministic() {
	rng := rand.New(rand.NewSource(7))
	hf := randomField(s.T(), rng, 16, 16)
	costs := terrain.CostGrid(hf, px, maxSlope, 50)
	first, err1 := astar.Search(hf, grid.C(0, 0), grid.C(15, 15), astar.WithCostGrid(costs))
	for i := 0; i < 5; i++ {
		again, err2 := astar.Search(hf, grid.C(0, 0), grid.C(15, 15), astar.WithCostGrid(costs))
		require.Equal(s.T(), err1, err2)
		require.Equal(s.T(), first, again)
	}
}

// TestOptimalAgainstBruteForce compares A* with weight 1 against Bellman-Ford
// on random small fields.
func (s *SearchSuite) TestOptimalAgainstBruteForce() {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		rows, cols := 2+rng.Intn(7), 2+rng.Intn(7)
		hf := randomField(s.T(), rng, rows, cols)
		costs := terrain.CostGrid(hf, px, maxSlope, float64(rng.Intn(20)))
		conn := grid.Conn8
		if trial%3 == 0 {
			conn = grid.Conn4
		}
		start := grid.C(rng.Intn(rows), rng.Intn(cols))
		dest := grid.C(rng.Intn(rows), rng.Intn(cols))

		want := bruteForce(hf, costs, start, conn)[hf.Index(dest)]
		res, err := astar.Search(hf, start, dest, astar.WithCostGrid(costs), astar.WithConnectivity(conn))
		if math.IsInf(want, 1) {
			require.ErrorIs(s.T(), err, astar.ErrNoPath, "trial %d", trial)
			continue
		}
		require.NoError(s.T(), err, "trial %d", trial)
		require.InDelta(s.T(), want, res.Cost, 1e-6, "trial %d", trial)
		requireValidPath(s.T(), hf, res.Path, start, conn)
		require.Equal(s.T(), dest, res.Path[len(res.Path)-1])
	}
}

// TestCostMonotoneInSlopeWeight verifies that a heavier slope penalty never
// yields a cheaper optimal route.
func (s *SearchSuite) TestCostMonotoneInSlopeWeight() {
	rng := rand.New(rand.NewSource(3))
	hf := randomField(s.T(), rng, 12, 12)
	prev := 0.0
	for _, w := range []float64{0, 1, 10, 100, 1000} {
		costs := terrain.CostGrid(hf, px, maxSlope, w)
		res, err := astar.Search(hf, grid.C(0, 0), grid.C(11, 11), astar.WithCostGrid(costs))
		if errors.Is(err, astar.ErrNoPath) {
			s.T().Skip("random field has no route; monotonicity is vacuous")
		}
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), res.Cost, prev-eps, "weight %v", w)
		prev = res.Cost
	}
}

// TestHeuristicWeight verifies that an inflated heuristic still returns a
// valid path, never cheaper than the optimum.
func (s *SearchSuite) TestHeuristicWeight() {
	rng := rand.New(rand.NewSource(11))
	hf := randomField(s.T(), rng, 20, 20)
	costs := terrain.CostGrid(hf, px, maxSlope, 100)
	opt, err := astar.Search(hf, grid.C(0, 0), grid.C(19, 19), astar.WithCostGrid(costs))
	if errors.Is(err, astar.ErrNoPath) {
		s.T().Skip("random field has no route")
	}
	require.NoError(s.T(), err)

	for _, w := range []float64{0, 2, 5} {
		res, err := astar.Search(hf, grid.C(0, 0), grid.C(19, 19),
			astar.WithCostGrid(costs), astar.WithHeuristicWeight(w))
		require.NoError(s.T(), err)
		requireValidPath(s.T(), hf, res.Path, grid.C(0, 0), grid.Conn8)
		if w <= 1 {
			require.InDelta(s.T(), opt.Cost, res.Cost, 1e-6)
		} else {
			require.GreaterOrEqual(s.T(), res.Cost, opt.Cost-1e-6)
		}
	}
}

// TestNonFiniteCosts verifies that NaN and +Inf multipliers make a cell
// unenterable instead of corrupting the queue.
func (s *SearchSuite) TestNonFiniteCosts() {
	hf := flat(s.T(), 5, 5)
	for _, bad := range []float64{math.NaN(), math.Inf(1), -3} {
		data := make([]float64, 25)
		for i := range data {
			data[i] = 1
		}
		data[12] = bad
		costs, err := grid.NewField(5, 5, data)
		require.NoError(s.T(), err)

		res, err := astar.Search(hf, grid.C(0, 0), grid.C(4, 4), astar.WithCostGrid(costs))
		require.NoError(s.T(), err, "multiplier %v", bad)
		require.NotContains(s.T(), res.Path, grid.C(2, 2))
		require.InDelta(s.T(), 2+3*math.Sqrt2, res.Cost, eps)
	}
}

// TestBlockedOrder verifies first-seen order and deduplication of blocked cells.
func (s *SearchSuite) TestBlockedOrder() {
	hf := flat(s.T(), 1, 3)
	res, err := astar.Search(hf, grid.C(0, 0), grid.C(0, 2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Cell{
		grid.C(1, 0), grid.C(-1, 0), grid.C(0, -1), grid.C(1, 1),
		grid.C(1, -1), grid.C(-1, 1), grid.C(-1, -1), grid.C(1, 2), grid.C(-1, 2),
	}, res.Blocked)
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestValidation verifies input errors reported before any search work.
func TestValidation(t *testing.T) {
	hf := flat(t, 3, 3)
	small := flat(t, 2, 2)

	_, err := astar.Search(nil, grid.C(0, 0), grid.C(1, 1))
	require.ErrorIs(t, err, astar.ErrNilField)

	_, err = astar.Search(hf, grid.C(0, 0), grid.C(1, 1), astar.WithCostGrid(small))
	require.ErrorIs(t, err, astar.ErrShapeMismatch)

	rc := config.DefaultRobot()
	rc.Movement = 6
	_, err = astar.Bidirectional(hf, grid.C(0, 0), grid.C(1, 1), astar.WithConfig(config.DefaultField(), rc))
	require.ErrorIs(t, err, astar.ErrBadConnectivity)

	fc := config.DefaultField()
	fc.PixelSizeM = 0
	_, err = astar.Search(hf, grid.C(0, 0), grid.C(1, 1), astar.WithConfig(fc, config.DefaultRobot()))
	require.ErrorIs(t, err, astar.ErrBadPixelSize)
}

// TestOptionPanics verifies that option constructors reject invalid literals.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { astar.WithConnectivity(grid.Connectivity(3)) })
	require.Panics(t, func() { astar.WithPixelSize(0) })
	require.Panics(t, func() { astar.WithPixelSize(math.NaN()) })
	require.Panics(t, func() { astar.WithHeuristicWeight(-0.5) })
	require.Panics(t, func() { astar.WithGoalTolerance(-1) })
	require.NotPanics(t, func() { astar.WithMaxSlope(-10) })
}

// TestPathCost verifies the cost model on a hand-checked path.
func TestPathCost(t *testing.T) {
	costs, err := grid.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	path := []grid.Cell{grid.C(0, 0), grid.C(0, 1), grid.C(1, 0)}
	// 1·2 + √2·3
	require.InDelta(t, 2+3*math.Sqrt2, astar.PathCost(path, costs), eps)
	require.InDelta(t, 1+math.Sqrt2, astar.PathCost(path, nil), eps)
	require.Zero(t, astar.PathCost(path[:1], costs))
}
