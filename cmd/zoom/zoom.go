package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractory/pkg/logging"
	"github.com/willbeason/fractory/pkg/render"
	"github.com/willbeason/fractory/pkg/sink"
	"github.com/willbeason/fractory/pkg/zoom"
	"os"
	"path/filepath"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "Render the frames of a zoom into the Mandelbrot set",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	flags := cmd.Flags()
	flags.String("settings", "", "JSON settings file; flags set explicitly take precedence")
	flags.Float64Slice("centre", nil, "zoom target as re,im")
	flags.Uint32("iterations", 0, "length of the opening iteration ramp and base iterations")
	flags.Float64("max-zoom", 0, "zoom of the final frame")
	flags.Uint32("frames", 0, "number of zooming frames")
	flags.Int("width", 0, "frame width in pixels")
	flags.Int("height", 0, "frame height in pixels")
	flags.String("dir", "", "directory frames are written to")
	flags.String("format", "", "frame image format: png, jpeg, bmp or tiff")
	flags.Bool("single", false, "render only the frame at --zoom")
	flags.Float64("zoom", 1, "zoom of the frame rendered with --single")
	flags.String("out", "", "output image for --single (default <dir>/zoom_<zoom>.<format>)")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	file, err := cmd.Flags().GetString("settings")
	if err != nil {
		return err
	}

	s, err := loadSettings(file)
	if err != nil {
		return err
	}

	err = s.applyFlags(cmd.Flags())
	if err != nil {
		return err
	}

	c, err := s.config()
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := logging.NewLogger("Zoom")
	logger.Info(s.String())

	single, err := cmd.Flags().GetBool("single")
	if err != nil {
		return err
	}

	if single {
		z, err := cmd.Flags().GetFloat64("zoom")
		if err != nil {
			return err
		}
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		f, path, err := renderSingle(c, s, z, out)
		if err != nil {
			return err
		}
		logger.Infof("zoom %.3g with %d iterations -> %s", f.Zoom, f.Spec.MaxIterations, path)
		return nil
	}

	return renderFrames(cmd.Context(), c, s, func(f zoom.Frame, path string) {
		logger.Infof("frame %d/%d zoom %.3g -> %s", f.Index, f.Total, f.Zoom, path)
	})
}

// renderSingle renders and saves the frame at zoom z. An empty out is replaced by
// a name in the settings' save directory.
func renderSingle(c zoom.Config, s settings, z float64, out string) (zoom.Frame, string, error) {
	f, err := c.Single(z)
	if err != nil {
		return zoom.Frame{}, "", err
	}

	if out == "" {
		out = filepath.Join(s.SaveDir, fmt.Sprintf("zoom_%g.%s", z, s.Format))
	}

	img := render.Render(f.Viewport, s.Width, s.Height, f.Spec)
	if err := sink.Save(out, img); err != nil {
		return zoom.Frame{}, "", err
	}

	return f, out, nil
}

// renderFrames renders and saves every planned frame, stopping early if ctx is cancelled.
func renderFrames(ctx context.Context, c zoom.Config, s settings, done func(zoom.Frame, string)) error {
	for _, f := range zoom.Plan(c) {
		if err := ctx.Err(); err != nil {
			return err
		}

		img := render.Render(f.Viewport, s.Width, s.Height, f.Spec)

		path := sink.FrameName(s.SaveDir, f.Index, sink.Format(s.Format))
		if err := sink.Save(path, img); err != nil {
			return err
		}
		if done != nil {
			done(f, path)
		}
	}

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
