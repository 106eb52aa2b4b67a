package zoom

import (
	"github.com/willbeason/fractory/pkg/colormap"
	"math"
	"testing"
)

var misiurewicz = complex(-0.77568377, 0.13646737)

func TestPlan(t *testing.T) {
	c := Config{
		Centre:        misiurewicz,
		MaxIterations: 5,
		MaxZoom:       1000,
		MaxFrames:     3,
		ColourMap:     colormap.Trcm,
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	frames := Plan(c)
	if len(frames) != 7 {
		t.Fatalf("got %d frames, want 7", len(frames))
	}

	for i, f := range frames {
		if f.Index != uint32(i+1) {
			t.Errorf("frame %d has index %d", i, f.Index)
		}
		if f.Total != 8 {
			t.Errorf("frame %d has total %d, want 8", i, f.Total)
		}
		if f.Spec.EscapeThreshold != DefaultThreshold || f.Spec.ColourMap != colormap.Trcm {
			t.Errorf("frame %d has spec %+v", i, f.Spec)
		}
	}

	// Iteration ramp at zoom 1.
	for i, f := range frames[:4] {
		if f.Zoom != 1.0 {
			t.Errorf("ramp frame %d has zoom %v", i, f.Zoom)
		}
		if f.Spec.MaxIterations != uint32(i+1) {
			t.Errorf("ramp frame %d has %d iterations, want %d", i, f.Spec.MaxIterations, i+1)
		}
		if f.Viewport != frames[0].Viewport {
			t.Errorf("ramp frame %d moved: %v", i, f.Viewport)
		}
	}

	// Zoom phase: 1, 10, 100.
	wantZoom := []float64{1, 10, 100}
	for i, f := range frames[4:] {
		if math.Abs(f.Zoom-wantZoom[i]) > 1e-9 {
			t.Errorf("zoom frame %d has zoom %v, want %v", i, f.Zoom, wantZoom[i])
		}
		if f.Spec.MaxIterations != 5+uint32(f.Zoom) {
			t.Errorf("zoom frame %d has %d iterations, want %d", i, f.Spec.MaxIterations, 5+uint32(f.Zoom))
		}
		if want := Viewport(misiurewicz, f.Zoom, MandelbrotBounds); f.Viewport != want {
			t.Errorf("zoom frame %d has viewport %v, want %v", i, f.Viewport, want)
		}
	}
}

func TestPlan_Threshold(t *testing.T) {
	frames := Plan(Config{Centre: 0, MaxIterations: 2, MaxZoom: 2, MaxFrames: 1, Threshold: 16})
	for _, f := range frames {
		if f.Spec.EscapeThreshold != 16 {
			t.Errorf("got threshold %v, want 16", f.Spec.EscapeThreshold)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tcs := []struct {
		name    string
		c       Config
		wantErr bool
	}{
		{name: "ok", c: Config{Centre: misiurewicz, MaxIterations: 100, MaxZoom: 1e4, MaxFrames: 10}},
		{name: "ramp only", c: Config{Centre: misiurewicz, MaxIterations: 10}},
		{name: "no frames", c: Config{Centre: misiurewicz, MaxIterations: 1}, wantErr: true},
		{name: "zoom out", c: Config{Centre: misiurewicz, MaxIterations: 10, MaxZoom: 0.5, MaxFrames: 10}, wantErr: true},
		{name: "infinite zoom", c: Config{Centre: misiurewicz, MaxIterations: 10, MaxZoom: math.Inf(1), MaxFrames: 2}, wantErr: true},
		{name: "NaN zoom", c: Config{Centre: misiurewicz, MaxIterations: 10, MaxZoom: math.NaN(), MaxFrames: 2}, wantErr: true},
		{name: "zoom past iteration range", c: Config{Centre: misiurewicz, MaxIterations: 50, MaxZoom: 1e12, MaxFrames: 2}, wantErr: true},
		{name: "unknown colour map", c: Config{Centre: misiurewicz, MaxIterations: 10, ColourMap: 9}, wantErr: true},
		{name: "NaN threshold", c: Config{Centre: misiurewicz, MaxIterations: 10, Threshold: math.NaN()}, wantErr: true},
		{name: "centre outside", c: Config{Centre: complex(1, 1), MaxIterations: 10, MaxZoom: 2, MaxFrames: 10}, wantErr: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("got error %v, want error: %t", err, tc.wantErr)
			}
		})
	}
}

func TestNewFrame(t *testing.T) {
	f := NewFrame(misiurewicz, 1200, 500, DefaultThreshold, colormap.Trcm)

	if f.Index != 0 || f.Total != 0 {
		t.Errorf("standalone frame has sequence position %d/%d", f.Index, f.Total)
	}
	if f.Spec.MaxIterations != 500 || f.Zoom != 1200 {
		t.Errorf("got %+v", f)
	}
	if want := Viewport(misiurewicz, 1200, MandelbrotBounds); f.Viewport != want {
		t.Errorf("got viewport %v, want %v", f.Viewport, want)
	}
}

func TestConfig_Single(t *testing.T) {
	c := Config{Centre: misiurewicz, MaxIterations: 50, ColourMap: colormap.GrayScale}

	f, err := c.Single(1000)
	if err != nil {
		t.Fatal(err)
	}
	if f.Spec.MaxIterations != 1050 {
		t.Errorf("got %d iterations, want 1050", f.Spec.MaxIterations)
	}
	if f.Spec.EscapeThreshold != DefaultThreshold || f.Spec.ColourMap != colormap.GrayScale {
		t.Errorf("got %+v", f.Spec)
	}

	// The frame matches the same zoom in a planned sequence.
	planned := Plan(Config{Centre: misiurewicz, MaxIterations: 50, MaxZoom: 1000, MaxFrames: 1, ColourMap: colormap.GrayScale})
	last := planned[len(planned)-1]
	if g, err := c.Single(last.Zoom); err != nil || g.Viewport != last.Viewport || g.Spec != last.Spec {
		t.Errorf("got %+v, %v; want %+v", g, err, last)
	}

	for _, z := range []float64{0.5, math.NaN(), math.Inf(1)} {
		if _, err := c.Single(z); err == nil {
			t.Errorf("zoom %v: want error", z)
		}
	}

	c.Centre = 5
	if _, err := c.Single(2); err == nil {
		t.Error("centre outside bounds: want error")
	}
}
