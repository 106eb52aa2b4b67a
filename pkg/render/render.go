// Package render sweeps a pixel grid over a Viewport and evaluates a fractal at every pixel.
package render

import (
	"github.com/willbeason/fractory/pkg/fractal"
	"github.com/willbeason/fractory/pkg/geometry"
	"image"
	"runtime"
	"sync"
)

type Options struct {
	// Workers is the number of rows rendered concurrently.
	// Zero or less means one per CPU.
	Workers int
}

// PlanePoint returns the plane coordinate sampled by pixel (px, py).
//
// Pixels sample their top-left corner, so (0, 0) is (XMin, YMin) and the far edge
// of the viewport is never reached.
func PlanePoint(v geometry.Viewport, width, height, px, py int) complex128 {
	x := (float64(px)/float64(width))*(v.XMax-v.XMin) + v.XMin
	y := (float64(py)/float64(height))*(v.YMax-v.YMin) + v.YMin
	return complex(x, y)
}

// Render evaluates spec over v at width x height pixels.
func Render(v geometry.Viewport, width, height int, spec fractal.Spec) *image.RGBA {
	return RenderWith(v, width, height, spec, Options{})
}

// RenderWith is Render with explicit Options. The result does not depend on the
// number of workers.
func RenderWith(v geometry.Viewport, width, height int, spec fractal.Spec, opts Options) *image.RGBA {
	width = max(width, 0)
	height = max(height, 0)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return img
	}

	parallel := opts.Workers
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	parallel = min(parallel, height)

	yChannel := make(chan int)

	go func() {
		for y := 0; y < height; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	// Each row is written by exactly one worker, so writes never overlap.
	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			for y := range yChannel {
				for x := 0; x < width; x++ {
					p := PlanePoint(v, width, height, x, y)
					img.SetRGBA(x, y, fractal.Evaluate(spec, p))
				}
			}
			ywg.Done()
		}()
	}

	ywg.Wait()

	return img
}
