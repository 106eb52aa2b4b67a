package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
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

	MaxIterations = 15
)

var (
	boundsFlag []float64
	width      int
	height     int
	iterations uint32
	outFlag    string
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Render the Newton basins of z^3 = 1",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&boundsFlag, "bounds", []float64{-2.0, 2.0, -2.0, 2.0}, "plane region as x_min,x_max,y_min,y_max")
	flags.IntVar(&width, "width", Width, "image width in pixels")
	flags.IntVar(&height, "height", Height, "image height in pixels")
	flags.Uint32Var(&iterations, "iterations", MaxIterations, "maximum Newton steps per point")
	flags.StringVar(&outFlag, "out", "", "output image, format by extension (default newton-<time>.png)")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	spec := fractal.Newton{MaxIterations: iterations}
	err := fractal.Validate(spec)
	if err != nil {
		return err
	}

	viewport, err := geometry.ParseBounds(boundsFlag)
	if err != nil {
		return err
	}

	if width <= 0 || height <= 0 {
		return fmt.Errorf("image size %dx%d has no pixels", width, height)
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := logging.NewLogger("Newton")
	logger.Infof("Rendering basins over %v at %dx%d", viewport, width, height)

	img := render.Render(viewport, width, height, spec)

	out := outFlag
	if out == "" {
		out = fmt.Sprintf("newton-%s.png", time.Now().Format("20060102150405"))
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
