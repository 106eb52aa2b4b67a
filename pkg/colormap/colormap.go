// Package colormap turns normalized escape values into colours.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Kind selects a colour map.
type Kind int

const (
	// Trcm is Tom's rainbow colour map: one Gaussian bump per channel.
	// https://tomkwok.com/posts/color-maps/
	Trcm Kind = iota
	GrayScale
)

var names = []string{"trcm", "grayscale"}

// Valid reports whether k names a colour map.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(names)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Parse returns the Kind named s, ignoring case.
func Parse(s string) (Kind, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown colour map %q, want one of %s", s, strings.Join(names, ", "))
}

const (
	// trcmVariance is shared by all three channel bumps.
	trcmVariance = 0.0625

	trcmRed   = 0.75
	trcmGreen = 0.5
	trcmBlue  = 0.2
)

// Map returns the colour for value, which must lie in [0, 1].
//
// Values outside that range mean the caller failed to normalize and Map panics.
func Map(k Kind, value float64) color.RGBA {
	if !(value >= 0.0 && value <= 1.0) {
		panic(fmt.Sprintf("colour map value %v outside [0, 1]", value))
	}

	switch k {
	case Trcm:
		return color.RGBA{
			R: gaussian(value, trcmRed),
			G: gaussian(value, trcmGreen),
			B: gaussian(value, trcmBlue),
			A: 0xff,
		}
	case GrayScale:
		v := toUint8(255.0 * value)
		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	default:
		panic(fmt.Sprintf("unknown colour map %v", k))
	}
}

func gaussian(value, centre float64) uint8 {
	d := value - centre
	return toUint8(255.0 * math.Exp(-0.5*d*d/trcmVariance))
}

// toUint8 truncates f toward zero, saturating at the ends of the byte range.
func toUint8(f float64) uint8 {
	switch {
	case f >= 255.0:
		return 255
	case f > 0.0:
		return uint8(f)
	default:
		return 0
	}
}
