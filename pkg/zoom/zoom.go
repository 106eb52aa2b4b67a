// Package zoom computes viewports and frame schedules for zoom animations.
package zoom

import (
	"fmt"
	"github.com/willbeason/fractory/pkg/geometry"
	"math"
)

// BaseRadius is the half-width of the viewport at zoom 1.
// It is half the width of MandelbrotBounds, so zoom 1 spans the whole set horizontally.
const BaseRadius = 1.235

// MandelbrotBounds encloses the Mandelbrot set.
var MandelbrotBounds = geometry.Viewport{XMin: -2.0, XMax: 0.47, YMin: -1.12, YMax: 1.12}

// Viewport returns the square window of half-width BaseRadius/zoom around centre,
// translated to stay inside outer.
//
// Each axis is corrected on one side only: first the minimum, otherwise the maximum.
// A window wider than outer therefore still overhangs its far side. The window is
// never rescaled, so width and height always match the requested zoom.
//
// Viewport panics if zoom is below 1 or centre lies outside outer.
func Viewport(centre complex128, zoom float64, outer geometry.Viewport) geometry.Viewport {
	if !(zoom >= 1.0) {
		panic(fmt.Sprintf("zoom %v below 1", zoom))
	}
	if !outer.Contains(centre) {
		panic(fmt.Sprintf("centre %v outside %v", centre, outer))
	}

	radius := BaseRadius * (1.0 / zoom)
	x, y := real(centre), imag(centre)

	v := geometry.Viewport{
		XMin: x - radius,
		XMax: x + radius,
		YMin: y - radius,
		YMax: y + radius,
	}

	v.XMin, v.XMax = shift(v.XMin, v.XMax, outer.XMin, outer.XMax)
	v.YMin, v.YMax = shift(v.YMin, v.YMax, outer.YMin, outer.YMax)

	return v
}

func shift(lo, hi, outerLo, outerHi float64) (float64, float64) {
	if lo < outerLo {
		d := outerLo - lo
		return lo + d, hi + d
	} else if hi > outerHi {
		d := outerHi - hi
		return lo + d, hi + d
	}
	return lo, hi
}

// Scale is the zoom of frame out of maxFrames, growing geometrically from 1
// at frame 0 to maxZoom at frame maxFrames.
func Scale(frame, maxFrames uint32, maxZoom float64) float64 {
	if maxFrames == 0 {
		return 1.0
	}
	return math.Exp(float64(frame) / float64(maxFrames) * math.Log(maxZoom))
}

// Iterations is the iteration budget for a frame at zoom: deeper frames need more.
// The budget saturates at math.MaxUint32.
func Iterations(base uint32, zoom float64) uint32 {
	extra := math.Floor(zoom)
	switch {
	case !(extra > 0):
		return base
	case extra >= float64(math.MaxUint32-base):
		return math.MaxUint32
	default:
		return base + uint32(extra)
	}
}
