package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractory/pkg/colormap"
	"github.com/willbeason/fractory/pkg/fractal"
	"github.com/willbeason/fractory/pkg/geometry"
	"github.com/willbeason/fractory/pkg/logging"
	"github.com/willbeason/fractory/pkg/render"
	"github.com/willbeason/fractory/pkg/sink"
	"os"
	"time"
)

const (
	Width  = 2048
	Height = 2048

	MaxIterations = 200
	Threshold     = 4.0
)

var (
	fractalFlag   string
	boundsFlag    []float64
	cFlag         []float64
	colourMapFlag string
	width         int
	height        int
	iterations    uint32
	threshold     float64
	outFlag       string
	workers       int
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render an escape-time fractal",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	flags := cmd.Flags()
	flags.StringVar(&fractalFlag, "fractal", "mandelbrot", "mandelbrot, burning-ship or julia")
	flags.Float64SliceVar(&boundsFlag, "bounds", nil, "plane region as x_min,x_max,y_min,y_max (default depends on --fractal)")
	flags.Float64SliceVar(&cFlag, "c", []float64{-0.8, 0.156}, "julia parameter as re,im")
	flags.StringVar(&colourMapFlag, "colormap", "", "trcm or grayscale (default depends on --fractal)")
	flags.IntVar(&width, "width", Width, "image width in pixels")
	flags.IntVar(&height, "height", Height, "image height in pixels")
	flags.Uint32Var(&iterations, "iterations", MaxIterations, "maximum iterations per point")
	flags.Float64Var(&threshold, "threshold", Threshold, "escape bound on |z|^2")
	flags.StringVar(&outFlag, "out", "", "output image, format by extension (default out-<time>.png)")
	flags.IntVar(&workers, "workers", 0, "rows rendered concurrently (default one per CPU)")

	return cmd
}

// defaultBounds frame the whole of each fractal, or for the burning ship its best-known detail.
var defaultBounds = map[string][]float64{
	"mandelbrot":   {-2.0, 0.47, -1.12, 1.12},
	"burning-ship": {-1.8, -1.7, -0.09, 0.01},
	"julia":        {-1.6, 1.6, -1.6, 1.6},
}

// defaultColourMaps match the reference renders.
var defaultColourMaps = map[string]colormap.Kind{
	"mandelbrot":   colormap.GrayScale,
	"burning-ship": colormap.Trcm,
	"julia":        colormap.Trcm,
}

func parseColourMap() (colormap.Kind, error) {
	if colourMapFlag == "" {
		return defaultColourMaps[fractalFlag], nil
	}
	return colormap.Parse(colourMapFlag)
}

func parseSpec() (fractal.Spec, error) {
	cm, err := parseColourMap()
	if err != nil {
		return nil, err
	}

	var spec fractal.Spec
	switch fractalFlag {
	case "mandelbrot":
		spec = fractal.Mandelbrot{MaxIterations: iterations, EscapeThreshold: threshold, ColourMap: cm}
	case "burning-ship":
		spec = fractal.BurningShip{MaxIterations: iterations, EscapeThreshold: threshold, ColourMap: cm}
	case "julia":
		if len(cFlag) != 2 {
			return nil, fmt.Errorf("--c wants re,im, got %v", cFlag)
		}
		spec = fractal.Julia{
			MaxIterations:   iterations,
			EscapeThreshold: threshold,
			C:               complex(cFlag[0], cFlag[1]),
			ColourMap:       cm,
		}
	default:
		return nil, fmt.Errorf("unknown fractal %q", fractalFlag)
	}

	return spec, fractal.Validate(spec)
}

func runCmd(cmd *cobra.Command, _ []string) error {
	spec, err := parseSpec()
	if err != nil {
		return err
	}

	bounds := boundsFlag
	if len(bounds) == 0 {
		bounds = defaultBounds[fractalFlag]
	}
	viewport, err := geometry.ParseBounds(bounds)
	if err != nil {
		return err
	}

	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size %dx%d has no pixels", width, height)
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := logging.NewLogger("Escape")
	logger.Infof("Rendering %s over %v at %dx%d", fractalFlag, viewport, width, height)

	start := time.Now()
	img := render.RenderWith(viewport, width, height, spec, render.Options{Workers: workers})
	logger.Infof("Rendered in %s", time.Since(start))

	out := outFlag
	if out == "" {
		out = fmt.Sprintf("out-%s.png", time.Now().Format("20060102150405"))
	}

	err = sink.Save(out, img)
	if err != nil {
		return err
	}
	logger.Infof("Saved image to %s", out)

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
