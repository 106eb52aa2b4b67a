package zoom

import (
	"github.com/willbeason/fractory/pkg/geometry"
	"math"
	"testing"
)

const epsilon = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestViewport(t *testing.T) {
	tcs := []struct {
		name   string
		centre complex128
		zoom   float64
		want   geometry.Viewport
	}{{
		name:   "misiurewicz point needs no correction",
		centre: complex(-0.77568377, 0.13646737),
		zoom:   1200,
		want: geometry.Viewport{
			XMin: -0.77568377 - BaseRadius/1200, XMax: -0.77568377 + BaseRadius/1200,
			YMin: 0.13646737 - BaseRadius/1200, YMax: 0.13646737 + BaseRadius/1200,
		},
	}, {
		name:   "left edge shifts right",
		centre: complex(-2, 0),
		zoom:   2,
		want:   geometry.Viewport{XMin: -2, XMax: -0.765, YMin: -0.6175, YMax: 0.6175},
	}, {
		name:   "top right corner shifts left and down",
		centre: complex(0.47, 1.12),
		zoom:   4,
		want:   geometry.Viewport{XMin: -0.1475, XMax: 0.47, YMin: 0.5025, YMax: 1.12},
	}, {
		name:   "bottom edge shifts up",
		centre: complex(-1, -1.12),
		zoom:   10,
		want:   geometry.Viewport{XMin: -1.1235, XMax: -0.8765, YMin: -1.12, YMax: -0.873},
	}}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Viewport(tc.centre, tc.zoom, MandelbrotBounds)

			gb, wb := got.Bounds(), tc.want.Bounds()
			for i := range gb {
				if !near(gb[i], wb[i]) {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}

			if !near(got.Width(), 2*BaseRadius/tc.zoom) || !near(got.Height(), 2*BaseRadius/tc.zoom) {
				t.Errorf("window was rescaled: got %v", got)
			}

			if got.XMin < MandelbrotBounds.XMin-epsilon || got.XMax > MandelbrotBounds.XMax+epsilon ||
				got.YMin < MandelbrotBounds.YMin-epsilon || got.YMax > MandelbrotBounds.YMax+epsilon {
				t.Errorf("got %v, exceeds %v", got, MandelbrotBounds)
			}
		})
	}
}

func TestViewport_WiderThanBounds(t *testing.T) {
	// At zoom 1 the window is 2.47 tall but the bounds only 2.24, so after the
	// bottom is corrected the top still overhangs.
	got := Viewport(complex(-2, 0), 1, MandelbrotBounds)

	if !near(got.XMin, -2) || !near(got.XMax, 0.47) {
		t.Errorf("x should exactly fill the bounds, got %v", got)
	}
	if !near(got.YMin, MandelbrotBounds.YMin) {
		t.Errorf("got YMin %v, want %v", got.YMin, MandelbrotBounds.YMin)
	}
	if !near(got.YMax, 1.35) {
		t.Errorf("got YMax %v, want 1.35", got.YMax)
	}
}

func TestViewport_Panics(t *testing.T) {
	tcs := []struct {
		name   string
		centre complex128
		zoom   float64
	}{
		{name: "zoom below one", centre: 0, zoom: 0.5},
		{name: "NaN zoom", centre: 0, zoom: math.NaN()},
		{name: "centre outside", centre: complex(1, 0), zoom: 2},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Viewport(tc.centre, tc.zoom, MandelbrotBounds)
		})
	}
}

func TestScale(t *testing.T) {
	if got := Scale(0, 100, 1e6); got != 1.0 {
		t.Errorf("Scale at frame 0 = %v, want 1", got)
	}
	if got := Scale(100, 100, 1e6); math.Abs(got-1e6) > 1e-6 {
		t.Errorf("Scale at last frame = %v, want 1e6", got)
	}
	if got := Scale(50, 100, 1e6); math.Abs(got-1e3) > 1e-9 {
		t.Errorf("Scale halfway = %v, want 1e3", got)
	}
	if got := Scale(3, 0, 1e6); got != 1.0 {
		t.Errorf("Scale without frames = %v, want 1", got)
	}

	// Zoom grows by a constant factor per frame.
	r1 := Scale(11, 40, 500) / Scale(10, 40, 500)
	r2 := Scale(31, 40, 500) / Scale(30, 40, 500)
	if math.Abs(r1-r2) > 1e-9 {
		t.Errorf("growth factors differ: %v, %v", r1, r2)
	}
}

func TestIterations(t *testing.T) {
	if got := Iterations(100, 1.0); got != 101 {
		t.Errorf("got %d, want 101", got)
	}
	if got := Iterations(100, 7.9); got != 107 {
		t.Errorf("got %d, want 107", got)
	}
	if got := Iterations(50, 1e12); got != math.MaxUint32 {
		t.Errorf("got %d, want saturation at %d", got, uint32(math.MaxUint32))
	}
	if got := Iterations(50, math.Inf(1)); got != math.MaxUint32 {
		t.Errorf("got %d, want saturation at %d", got, uint32(math.MaxUint32))
	}
	if got := Iterations(50, math.NaN()); got != 50 {
		t.Errorf("got %d, want 50", got)
	}
}
