package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyViewport is returned when a Viewport has no area.
var ErrEmptyViewport = errors.New("viewport has no area")

// A Viewport is the rectangular region of the plane mapped onto an image.
// Points are complex numbers: real part along X, imaginary part along Y.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// FromBounds builds a Viewport from [x_min, x_max, y_min, y_max].
func FromBounds(b [4]float64) Viewport {
	return Viewport{XMin: b[0], XMax: b[1], YMin: b[2], YMax: b[3]}
}

func (v Viewport) Bounds() [4]float64 {
	return [4]float64{v.XMin, v.XMax, v.YMin, v.YMax}
}

func (v Viewport) Width() float64 {
	return v.XMax - v.XMin
}

func (v Viewport) Height() float64 {
	return v.YMax - v.YMin
}

// Contains reports whether p lies inside v, edges included.
func (v Viewport) Contains(p complex128) bool {
	x, y := real(p), imag(p)
	return x >= v.XMin && x <= v.XMax && y >= v.YMin && y <= v.YMax
}

// Validate checks that every bound is finite and that both axes have positive extent.
func (v Viewport) Validate() error {
	for _, b := range v.Bounds() {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("viewport %v: bound %v is not finite", v.Bounds(), b)
		}
	}

	if !(v.XMin < v.XMax) || !(v.YMin < v.YMax) {
		return fmt.Errorf("viewport %v: %w", v.Bounds(), ErrEmptyViewport)
	}

	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", v.XMin, v.XMax, v.YMin, v.YMax)
}

// ParseBounds builds a Viewport from a flag value of the form x_min,x_max,y_min,y_max.
func ParseBounds(b []float64) (Viewport, error) {
	if len(b) != 4 {
		return Viewport{}, fmt.Errorf("bounds want 4 values x_min,x_max,y_min,y_max, got %d", len(b))
	}

	v := FromBounds([4]float64(b))
	return v, v.Validate()
}
