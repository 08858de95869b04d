package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/slopepath/grid"
)

// Search outcomes, used as the "outcome" metric label.
const (
	outcomeFound       = "found"
	outcomeNoPath      = "no_path"
	outcomeUnreachable = "unreachable"
	outcomeInvalid     = "invalid"
)

// outcome is filled in as a run progresses. Result stays empty when the run
// fails before the search outcome is known.
type outcome struct {
	ID        string
	Source    string
	Mode      string
	Result    string
	Rows      int
	Cols      int
	Start     grid.Cell
	Dest      grid.Cell
	PathNodes int
	Cost      float64
	Expanded  int
	Blocked   int
	Duration  time.Duration
}

// runMetrics holds the per-run measurements exported with -metrics in the
// node_exporter textfile format.
type runMetrics struct {
	reg      *prometheus.Registry
	info     *prometheus.GaugeVec
	searches *prometheus.CounterVec
	stages   *prometheus.HistogramVec
	expanded prometheus.Gauge
	blocked  prometheus.Gauge
	nodes    prometheus.Gauge
	cost     prometheus.Gauge
}

func newRunMetrics() *runMetrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &runMetrics{
		reg: reg,
		info: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "slopepath_run_info",
			Help: "Constant 1, labelled with the run id, terrain source and grid size",
		}, []string{"run", "source", "grid"}),
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "slopepath_searches_total",
			Help: "Searches run, by mode and outcome",
		}, []string{"mode", "outcome"}),
		stages: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slopepath_stage_duration_seconds",
			Help:    "Wall time of each pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12), // 0.1ms to ~7min
		}, []string{"stage"}),
		expanded: f.NewGauge(prometheus.GaugeOpts{
			Name: "slopepath_expanded_cells",
			Help: "Cells finalized by the last search",
		}),
		blocked: f.NewGauge(prometheus.GaugeOpts{
			Name: "slopepath_blocked_cells",
			Help: "Distinct blocked neighbors reported by the last search",
		}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "slopepath_path_nodes",
			Help: "Cells on the last path; 0 when none was found",
		}),
		cost: f.NewGauge(prometheus.GaugeOpts{
			Name: "slopepath_path_cost",
			Help: "Cost of the last path",
		}),
	}
}

func (m *runMetrics) stage(name string, start time.Time) time.Duration {
	d := time.Since(start)
	m.stages.WithLabelValues(name).Observe(d.Seconds())
	return d
}

func (m *runMetrics) observe(r *outcome) {
	m.info.WithLabelValues(r.ID, r.Source, fmt.Sprintf("%dx%d", r.Rows, r.Cols)).Set(1)
	m.searches.WithLabelValues(r.Mode, r.Result).Inc()
	m.expanded.Set(float64(r.Expanded))
	m.blocked.Set(float64(r.Blocked))
	m.nodes.Set(float64(r.PathNodes))
	if r.Result == outcomeFound {
		m.cost.Set(r.Cost)
	}
}

func (m *runMetrics) write(file string) error {
	return prometheus.WriteToTextfile(file, m.reg)
}
