// Package sink encodes rendered images and writes them to disk.
package sink

import (
	"errors"
	"fmt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// FormatOf returns the Format implied by path's extension.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, f Format, img image.Image) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// Save encodes img to path, creating missing parent directories.
// The format is chosen by path's extension.
func Save(path string, img image.Image) error {
	f, err := FormatOf(path)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	err = Encode(file, f, img)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

// FrameName is the path of frame index of an animation written to dir.
func FrameName(dir string, index uint32, f Format) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%d.%s", index, f))
}
