// Package fractal evaluates fractal functions at single points of the plane.
package fractal

import (
	"errors"
	"fmt"
	"github.com/willbeason/fractory/pkg/colormap"
	"github.com/willbeason/fractory/pkg/transforms"
	"image/color"
)

var (
	ErrNoIterations = errors.New("max iterations must be positive")
	ErrThreshold    = errors.New("escape threshold must be positive")
	ErrColourMap    = errors.New("unknown colour map")
)

// A Spec is one of Mandelbrot, BurningShip, Julia or Newton.
// Specs are plain values and safe to share between goroutines.
type Spec interface {
	isSpec()
}

// Mandelbrot iterates z <- z^2 + c from z = 0 with c the plane point.
type Mandelbrot struct {
	MaxIterations uint32
	// EscapeThreshold bounds the squared magnitude of z.
	EscapeThreshold float64
	ColourMap       colormap.Kind
}

// BurningShip is Mandelbrot with z folded into the first quadrant each step.
type BurningShip struct {
	MaxIterations   uint32
	EscapeThreshold float64
	ColourMap       colormap.Kind
}

// Julia iterates z <- z^2 + C starting from the plane point.
type Julia struct {
	MaxIterations   uint32
	EscapeThreshold float64
	C               complex128
	ColourMap       colormap.Kind
}

// Newton colours the basins of attraction of z^3 = 1.
type Newton struct {
	MaxIterations uint32
}

func (Mandelbrot) isSpec()  {}
func (BurningShip) isSpec() {}
func (Julia) isSpec()       {}
func (Newton) isSpec()      {}

// Evaluate returns the colour of point under spec.
func Evaluate(spec Spec, point complex128) color.RGBA {
	switch s := spec.(type) {
	case Mandelbrot:
		n := escapeTime(transforms.Mandelbrot{}, 0, point, s.MaxIterations, s.EscapeThreshold)
		return colormap.Map(s.ColourMap, Normalize(n, s.MaxIterations))
	case BurningShip:
		n := escapeTime(transforms.BurningShip{}, 0, point, s.MaxIterations, s.EscapeThreshold)
		return colormap.Map(s.ColourMap, Normalize(n, s.MaxIterations))
	case Julia:
		n := escapeTime(transforms.Julia2{C: s.C}, point, point, s.MaxIterations, s.EscapeThreshold)
		return colormap.Map(s.ColourMap, Normalize(n, s.MaxIterations))
	case Newton:
		return newton(transforms.NewtonCubic{}, point, s.MaxIterations)
	default:
		panic(fmt.Sprintf("unknown fractal %T", spec))
	}
}

// escapeTime counts the steps taken before |z|^2 reaches threshold, up to maxIterations.
// NaN magnitudes fail the comparison, so pathological orbits stop early rather than loop.
func escapeTime(t transforms.Escape, z, c complex128, maxIterations uint32, threshold float64) uint32 {
	var iteration uint32
	for iteration < maxIterations && real(z)*real(z)+imag(z)*imag(z) < threshold {
		z = t.Next(z, c)
		iteration++
	}
	return iteration
}

// Normalize maps an escape count to [0, 1]. Orbits that used the whole budget
// never escaped and get 1; otherwise the value is (max - iterations) / max.
func Normalize(iterations, maxIterations uint32) float64 {
	if maxIterations == 0 || iterations >= maxIterations {
		return 1.0
	}
	m := float64(maxIterations)
	return (m - float64(iterations)) / m
}

// Validate reports whether spec's parameters can be rendered.
func Validate(spec Spec) error {
	var iterations uint32
	threshold := 1.0
	cm := colormap.Trcm

	switch s := spec.(type) {
	case Mandelbrot:
		iterations, threshold, cm = s.MaxIterations, s.EscapeThreshold, s.ColourMap
	case BurningShip:
		iterations, threshold, cm = s.MaxIterations, s.EscapeThreshold, s.ColourMap
	case Julia:
		iterations, threshold, cm = s.MaxIterations, s.EscapeThreshold, s.ColourMap
	case Newton:
		iterations = s.MaxIterations
	default:
		return fmt.Errorf("unknown fractal %T", spec)
	}

	if iterations == 0 {
		return fmt.Errorf("%T: %w", spec, ErrNoIterations)
	}
	if !(threshold > 0) {
		return fmt.Errorf("%T: %w, got %v", spec, ErrThreshold, threshold)
	}
	if !cm.Valid() {
		return fmt.Errorf("%T: %w", spec, ErrColourMap)
	}
	return nil
}
