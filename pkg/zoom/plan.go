package zoom

import (
	"errors"
	"fmt"
	"github.com/willbeason/fractory/pkg/colormap"
	"github.com/willbeason/fractory/pkg/fractal"
	"github.com/willbeason/fractory/pkg/geometry"
	"math"
)

// DefaultThreshold is the squared escape radius used for zoom frames.
const DefaultThreshold = 4.0

// Config describes a zoom animation into the Mandelbrot set.
type Config struct {
	Centre complex128

	// MaxIterations is both the length of the opening iteration ramp and the
	// iteration budget at zoom 1.
	MaxIterations uint32

	MaxZoom   float64
	MaxFrames uint32

	// Threshold defaults to DefaultThreshold.
	Threshold float64
	ColourMap colormap.Kind
}

// Validate reports configurations Plan cannot satisfy.
func (c Config) Validate() error {
	if c.MaxIterations < 2 && c.MaxFrames == 0 {
		return errors.New("zoom plan has no frames")
	}
	if c.MaxFrames > 0 {
		if !(c.MaxZoom >= 1.0) || math.IsInf(c.MaxZoom, 1) {
			return fmt.Errorf("max zoom %v must be finite and at least 1", c.MaxZoom)
		}
		if float64(c.MaxIterations)+c.MaxZoom > math.MaxUint32 {
			return fmt.Errorf("max zoom %v overflows the iteration budget", c.MaxZoom)
		}
	}
	if !MandelbrotBounds.Contains(c.Centre) {
		return fmt.Errorf("centre %v outside %v", c.Centre, MandelbrotBounds)
	}
	if !(c.Threshold >= 0) {
		return fmt.Errorf("threshold %v is negative", c.Threshold)
	}
	if !c.ColourMap.Valid() {
		return fmt.Errorf("unknown colour map %v", c.ColourMap)
	}
	return nil
}

// A Frame is one image of a zoom animation.
type Frame struct {
	// Index is the frame's position in the output sequence.
	Index uint32
	// Total is the number used when reporting progress.
	Total uint32

	Zoom     float64
	Viewport geometry.Viewport
	Spec     fractal.Mandelbrot
}

// Plan lists the frames of a zoom animation.
//
// The animation first reveals the set at zoom 1 with 1, 2, ... MaxIterations-1
// iterations, then zooms geometrically towards Centre over MaxFrames frames.
// Frame indices continue across both phases, starting at 1.
func Plan(c Config) []Frame {
	threshold := c.threshold()

	total := c.MaxIterations + c.MaxFrames

	frames := make([]Frame, 0, total)

	frame := func(index uint32, zoom float64, iterations uint32) Frame {
		f := NewFrame(c.Centre, zoom, iterations, threshold, c.ColourMap)
		f.Index = index
		f.Total = total
		return f
	}

	for iteration := uint32(1); iteration < c.MaxIterations; iteration++ {
		frames = append(frames, frame(iteration, 1.0, iteration))
	}

	for f := uint32(0); f < c.MaxFrames; f++ {
		zoom := Scale(f, c.MaxFrames, c.MaxZoom)
		frames = append(frames, frame(f+c.MaxIterations, zoom, Iterations(c.MaxIterations, zoom)))
	}

	return frames
}

// Single is the lone frame at zoom, rendered with the iteration budget the
// zoom phase of Plan would give it.
func (c Config) Single(zoom float64) (Frame, error) {
	if !(zoom >= 1.0) || math.IsInf(zoom, 1) {
		return Frame{}, fmt.Errorf("zoom %v must be finite and at least 1", zoom)
	}
	if !MandelbrotBounds.Contains(c.Centre) {
		return Frame{}, fmt.Errorf("centre %v outside %v", c.Centre, MandelbrotBounds)
	}

	return NewFrame(c.Centre, zoom, Iterations(c.MaxIterations, zoom), c.threshold(), c.ColourMap), nil
}

func (c Config) threshold() float64 {
	if c.Threshold == 0 {
		return DefaultThreshold
	}
	return c.Threshold
}

// NewFrame is a single Mandelbrot frame at zoom around centre, with no place
// in a sequence. It panics under the same conditions as Viewport.
func NewFrame(centre complex128, zoom float64, iterations uint32, threshold float64, cm colormap.Kind) Frame {
	return Frame{
		Zoom:     zoom,
		Viewport: Viewport(centre, zoom, MandelbrotBounds),
		Spec: fractal.Mandelbrot{
			MaxIterations:   iterations,
			EscapeThreshold: threshold,
			ColourMap:       cm,
		},
	}
}
