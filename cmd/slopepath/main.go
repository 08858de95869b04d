// Command slopepath generates a synthetic terrain, plans a slope-constrained
// route across it from the configured start to the far corner, and writes the
// intermediate images and the result into an output directory.
//
// Usage:
//
//	slopepath [-config file.json|file.toml] [-out dir] [-seed n] [-size px] [-heightmap file]
//	          [-trace] [-bidirectional] [-relief] [-profile] [-heatmap]
//	          [-metrics file.prom] [-v]
//
// Outputs (in -out): noisy.png and red.png (generated terrain only), path.png,
// and with -trace search.gif, with -relief relief.png, with -profile
// profile.png, with -heatmap cost.html. -metrics names a file outside -out and
// is written whatever the search outcome.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/slopepath/astar"
	"github.com/katalvlaran/slopepath/config"
	"github.com/katalvlaran/slopepath/grid"
	"github.com/katalvlaran/slopepath/noise"
	"github.com/katalvlaran/slopepath/render"
	"github.com/katalvlaran/slopepath/terrain"
	"github.com/katalvlaran/slopepath/trace"
)

// progressEvery is the snapshot interval between progress log lines.
const progressEvery = 500

type options struct {
	configPath    string
	outDir        string
	seed          int64
	size          int
	trace         bool
	bidirectional bool
	profile       bool
	heatmap       bool
	verbose       bool
	relief        bool
	heightmap     string
	metricsPath   string
	maxFrames     int
	scale         int
	heatmapCells  int
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "slopepath: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("slopepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "JSON or TOML config file (field/robot sections); defaults when empty")
	fs.StringVar(&o.outDir, "out", "output", "Output directory")
	fs.Int64Var(&o.seed, "seed", 0, "Terrain seed; 0 picks one from the clock")
	fs.IntVar(&o.size, "size", 0, "Override field.image_size")
	fs.BoolVar(&o.trace, "trace", false, "Record the search and write search.gif (slower)")
	fs.BoolVar(&o.bidirectional, "bidirectional", false, "Use the bidirectional search with robot.end_tolerance_px")
	fs.BoolVar(&o.profile, "profile", false, "Write the elevation profile along the path to profile.png")
	fs.BoolVar(&o.heatmap, "heatmap", false, "Write the cost grid heatmap to cost.html")
	fs.BoolVar(&o.verbose, "v", false, "Debug logging")
	fs.BoolVar(&o.relief, "relief", false, "Write a colored relief map with the path to relief.png (uses -scale)")
	fs.StringVar(&o.heightmap, "heightmap", "", "Read terrain from a binary int16 height-map instead of generating it")
	fs.StringVar(&o.metricsPath, "metrics", "", "Write run metrics in Prometheus text format to this file")
	fs.IntVar(&o.maxFrames, "max-frames", 200, "Upper bound on search.gif frames")
	fs.IntVar(&o.scale, "scale", 1, "Pixels per cell in search.gif and relief.png")
	fs.IntVar(&o.heatmapCells, "heatmap-cells", 128, "Heatmap resolution per axis")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.size < 0 {
		return o, fmt.Errorf("-size must be non-negative, got %d", o.size)
	}
	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadConfig(o options) (config.FieldConfig, config.RobotConfig, error) {
	fc, rc := config.DefaultField(), config.DefaultRobot()
	if o.configPath != "" {
		var err error
		if fc, rc, err = config.Load(o.configPath); err != nil {
			return fc, rc, err
		}
	}
	if o.size > 0 {
		fc.ImageSize = o.size
		if err := fc.Validate(); err != nil {
			return fc, rc, err
		}
	}
	return fc, rc, nil
}

func run(args []string, stderr io.Writer) (err error) {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	fc, rc, err := loadConfig(o)
	if err != nil {
		return err
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rec := &outcome{ID: uuid.NewString(), Mode: "unidirectional", Source: fmt.Sprintf("noise:%d", o.seed)}
	if o.bidirectional {
		rec.Mode = "bidirectional"
	}
	if o.heightmap != "" {
		rec.Source = o.heightmap
	}
	log := newLogger(stderr, o.verbose).With("run", rec.ID)
	m := newRunMetrics()
	defer func() {
		if ferr := finish(o, m, rec, log); ferr != nil && err == nil {
			err = ferr
		}
	}()

	// 1) Terrain.
	t0 := time.Now()
	norm, backdrop, err := loadTerrain(o, fc, log)
	if err != nil {
		return err
	}
	log.Debug("terrain ready", "rows", norm.Rows(), "cols", norm.Cols(), "elapsed", m.stage("terrain", t0))

	// 2) Cost model.
	t0 = time.Now()
	hf := terrain.ToMeters(norm, fc)
	costs := terrain.CostGridFor(hf, fc, rc)
	log.Info("height map range", "min_m", fmt.Sprintf("%.3f", hf.Min()), "max_m", fmt.Sprintf("%.3f", hf.Max()),
		"max_slope_deg", rc.MaxSlopeDeg)
	log.Debug("cost grid ready", "elapsed", m.stage("cost", t0))

	rec.Rows, rec.Cols = hf.Rows(), hf.Cols()
	rec.Start, rec.Dest = rc.Start, grid.C(hf.Rows()-1, hf.Cols()-1)
	if !o.bidirectional || rc.EndTolerancePx == 0 {
		t0 = time.Now()
		regions := terrain.Components(hf, rc.Movement, fc.PixelSizeM, rc.MaxSlopeDeg)
		log.Debug("slope regions", "count", regions.Count(), "start_region", regions.Size(regions.Label(rec.Start)),
			"elapsed", m.stage("regions", t0))
		if hf.InBounds(rec.Start) && !regions.Connected(rec.Start, rec.Dest) {
			log.Warn("destination lies outside the start's slope region; path not found",
				"start", rec.Start, "dest", rec.Dest)
			rec.Result = outcomeUnreachable
			return nil
		}
	}

	// 3) Search.
	var tr *trace.Recorder
	opts := []astar.Option{astar.WithConfig(fc, rc), astar.WithCostGrid(costs)}
	if o.trace {
		total := hf.Len()
		tr = trace.NewRecorder(rc.TraceSampleStride, trace.WithProgress(progressEvery, func(s astar.SearchStep) {
			log.Info("search progress", "step", s.Index, "cells", total)
		}))
		opts = append(opts, astar.WithObserver(tr))
	}

	search := astar.Search
	if o.bidirectional {
		search = astar.Bidirectional
	}
	t0 = time.Now()
	res, err := search(hf, rec.Start, rec.Dest, opts...)
	rec.Duration = m.stage("search", t0)
	switch {
	case errors.Is(err, astar.ErrOutOfBounds):
		rec.Result = outcomeInvalid
		return err
	case errors.Is(err, astar.ErrNoPath):
		rec.Result = outcomeNoPath
		rec.Expanded, rec.Blocked = res.Expanded, len(res.Blocked)
		log.Warn("path not found", "blocked", len(res.Blocked), "expanded", res.Expanded, "elapsed", rec.Duration)
		return nil
	case err != nil:
		return err
	}
	rec.Result = outcomeFound
	rec.Expanded, rec.Blocked = res.Expanded, len(res.Blocked)
	rec.PathNodes, rec.Cost = len(res.Path), res.Cost
	log.Info("path found",
		"mode", rec.Mode,
		"nodes", len(res.Path),
		"cost", fmt.Sprintf("%.3f", res.Cost),
		"expanded", res.Expanded,
		"blocked", len(res.Blocked),
		"end", res.Path[len(res.Path)-1],
		"elapsed", rec.Duration)
	if !o.trace {
		log.Info("hint: pass -trace to capture full search playback (slower)")
	}

	// 4) Artifacts.
	t0 = time.Now()
	if err := saveImage(filepath.Join(o.outDir, "path.png"), render.DrawPath(backdrop, res.Path, res.Blocked)); err != nil {
		return err
	}
	if tr != nil {
		if err := writeGIF(filepath.Join(o.outDir, "search.gif"), backdrop, tr, res.Path, o); err != nil {
			return err
		}
		log.Info("search animation written", "snapshots", tr.Len(), "observed", tr.Observed())
	}
	if o.relief {
		if err := saveImage(filepath.Join(o.outDir, "relief.png"), render.Relief(hf, res.Path, o.scale)); err != nil {
			return err
		}
	}
	if o.profile {
		if err := render.SaveElevationProfile(filepath.Join(o.outDir, "profile.png"), hf, res.Path, fc.PixelSizeM); err != nil {
			return err
		}
	}
	if o.heatmap {
		if err := writeHeatmap(filepath.Join(o.outDir, "cost.html"), costs, res.Path, o.heatmapCells); err != nil {
			return err
		}
	}
	log.Debug("artifacts written", "dir", o.outDir, "elapsed", m.stage("artifacts", t0))

	return nil
}

// finish exports the run outcome to -metrics. Runs that ended before a
// search outcome was known are not exported.
func finish(o options, m *runMetrics, rec *outcome, log *slog.Logger) error {
	if rec.Result == "" || o.metricsPath == "" {
		return nil
	}
	m.observe(rec)
	if err := m.write(o.metricsPath); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	log.Debug("metrics written", "file", o.metricsPath, "outcome", rec.Result)
	return nil
}

// loadTerrain returns the normalized height-field and the grayscale backdrop
// used by the path and animation images. With -heightmap the field is read
// from disk, otherwise it is generated and noisy.png / red.png are written.
func loadTerrain(o options, fc config.FieldConfig, log *slog.Logger) (*grid.Field, image.Image, error) {
	if o.heightmap != "" {
		f, err := os.Open(o.heightmap)
		if err != nil {
			return nil, nil, fmt.Errorf("open height-map: %w", err)
		}
		defer f.Close()

		raw, err := terrain.ReadBinary(bufio.NewReader(f))
		if err != nil {
			return nil, nil, err
		}
		log.Info("height-map loaded", "file", o.heightmap, "rows", raw.Rows(), "cols", raw.Cols(),
			"min", raw.Min(), "max", raw.Max())
		norm := terrain.Normalize(raw)
		return norm, render.Grayscale(norm), nil
	}

	log.Info("generating terrain", "size", fc.ImageSize, "blur", fc.BlurSize, "seed", o.seed)
	norm, base, red, err := noise.HeightField(fc.ImageSize, o.seed, fc.BlurSize)
	if err != nil {
		return nil, nil, err
	}
	if err := saveImage(filepath.Join(o.outDir, "noisy.png"), base); err != nil {
		return nil, nil, err
	}
	if err := saveImage(filepath.Join(o.outDir, "red.png"), red); err != nil {
		return nil, nil, err
	}
	return norm, red, nil
}
