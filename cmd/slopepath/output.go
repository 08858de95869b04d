package main

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/katalvlaran/slopepath/grid"
	"github.com/katalvlaran/slopepath/render"
	"github.com/katalvlaran/slopepath/trace"
)

func saveImage(file string, img image.Image) error {
	if err := imaging.Save(img, file); err != nil {
		return fmt.Errorf("save %s: %w", file, err)
	}
	return nil
}

func writeGIF(file string, base image.Image, rec *trace.Recorder, path []grid.Cell, o options) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create %s: %w", file, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	gopts := render.DefaultGIFOptions()
	gopts.MaxFrames = o.maxFrames
	gopts.Scale = o.scale
	return render.SearchGIF(f, base, rec.Steps(), path, gopts)
}

func writeHeatmap(file string, costs *grid.Field, path []grid.Cell, cells int) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create %s: %w", file, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.CostHeatmap(f, costs, path, cells)
}
