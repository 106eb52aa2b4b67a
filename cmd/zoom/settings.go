package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/spf13/pflag"
	"github.com/willbeason/fractory/pkg/colormap"
	"github.com/willbeason/fractory/pkg/sink"
	"github.com/willbeason/fractory/pkg/zoom"
	"os"
	"strings"
)

// A Misiurewicz point, which stays detailed at every zoom.
const (
	defaultCentreX = -0.77568377
	defaultCentreY = 0.13646737
)

// settings is the JSON form of a zoom run. Zero values other than the centre are
// replaced by defaults in Verify.
type settings struct {
	CentreX       float64
	CentreY       float64
	MaxIterations uint32
	MaxZoom       float64
	MaxFrames     uint32
	Threshold     float64
	ColourMap     string
	Width         int
	Height        int
	SaveDir       string
	Format        string
}

func loadSettings(file string) (settings, error) {
	s := settings{CentreX: defaultCentreX, CentreY: defaultCentreY}
	if file == "" {
		return s, s.Verify()
	}

	fileBytes, err := os.ReadFile(file)
	if err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return s, fmt.Errorf("parsing settings %s: %w", file, err)
	}

	return s, s.Verify()
}

func (s *settings) String() string {
	output := "Zoom settings"
	output += fmt.Sprintf(" [Centre: %g%+gi]", s.CentreX, s.CentreY)
	output += fmt.Sprintf(" [Iterations: %d]", s.MaxIterations)
	output += fmt.Sprintf(" [Zoom: %g over %d frames]", s.MaxZoom, s.MaxFrames)
	output += fmt.Sprintf(" [Size: %dx%d]", s.Width, s.Height)
	output += fmt.Sprintf(" [Output: %s/*.%s]", s.SaveDir, s.Format)
	return output
}

// Verify fills in defaults and rejects values no run could use.
func (s *settings) Verify() error {
	if s.MaxIterations == 0 {
		s.MaxIterations = 50
	}
	if s.MaxZoom == 0 {
		s.MaxZoom = 1200
	}
	if s.MaxFrames == 0 {
		s.MaxFrames = 300
	}
	if s.Threshold == 0 {
		s.Threshold = zoom.DefaultThreshold
	}
	if s.ColourMap == "" {
		s.ColourMap = colormap.Trcm.String()
	}
	if s.Width <= 0 {
		s.Width = 1024
	}
	if s.Height <= 0 {
		s.Height = 1024
	}
	if s.SaveDir == "" {
		s.SaveDir = "mandelbrot_frames"
	}
	if s.Format == "" {
		s.Format = string(sink.PNG)
	}
	s.Format = strings.ToLower(s.Format)

	if _, err := sink.FormatOf("frame." + s.Format); err != nil {
		return err
	}
	if _, err := colormap.Parse(s.ColourMap); err != nil {
		return err
	}
	if !(s.Threshold > 0) {
		return errors.New("threshold must be positive")
	}

	return nil
}

// applyFlags overrides settings with every flag set explicitly on the command line.
func (s *settings) applyFlags(flags *pflag.FlagSet) error {
	var err error

	if flags.Changed("centre") {
		var centre []float64
		centre, err = flags.GetFloat64Slice("centre")
		if err != nil {
			return err
		}
		if len(centre) != 2 {
			return fmt.Errorf("--centre wants re,im, got %v", centre)
		}
		s.CentreX, s.CentreY = centre[0], centre[1]
	}
	if flags.Changed("iterations") {
		s.MaxIterations, err = flags.GetUint32("iterations")
		if err != nil {
			return err
		}
	}
	if flags.Changed("max-zoom") {
		s.MaxZoom, err = flags.GetFloat64("max-zoom")
		if err != nil {
			return err
		}
	}
	if flags.Changed("frames") {
		s.MaxFrames, err = flags.GetUint32("frames")
		if err != nil {
			return err
		}
	}
	if flags.Changed("width") {
		s.Width, err = flags.GetInt("width")
		if err != nil {
			return err
		}
	}
	if flags.Changed("height") {
		s.Height, err = flags.GetInt("height")
		if err != nil {
			return err
		}
	}
	if flags.Changed("dir") {
		s.SaveDir, err = flags.GetString("dir")
		if err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		s.Format, err = flags.GetString("format")
		if err != nil {
			return err
		}
	}

	return s.Verify()
}

func (s *settings) config() (zoom.Config, error) {
	cm, err := colormap.Parse(s.ColourMap)
	if err != nil {
		return zoom.Config{}, err
	}

	c := zoom.Config{
		Centre:        complex(s.CentreX, s.CentreY),
		MaxIterations: s.MaxIterations,
		MaxZoom:       s.MaxZoom,
		MaxFrames:     s.MaxFrames,
		Threshold:     s.Threshold,
		ColourMap:     cm,
	}

	return c, c.Validate()
}
