package fractal

import (
	"github.com/willbeason/fractory/pkg/transforms"
	"image/color"
	"math"
	"math/cmplx"
)

// NewtonTolerance is how close an orbit must come to a root to be assigned its basin.
const NewtonTolerance = 0.25

var (
	// NewtonRoots are the cube roots of unity.
	NewtonRoots = [3]complex128{
		complex(1.0, 0.0),
		complex(-0.5, 0.5*math.Sqrt(3.0)),
		complex(-0.5, -0.5*math.Sqrt(3.0)),
	}

	// BasinColours[i] is the colour of points converging to NewtonRoots[i].
	BasinColours = [3]color.RGBA{
		{R: 173, G: 133, B: 186, A: 0xff},
		{R: 116, G: 161, B: 142, A: 0xff},
		{R: 114, G: 76, B: 52, A: 0xff},
	}

	// NonConverged is the colour of points that reach no tested root.
	NonConverged = color.RGBA{R: 10, G: 10, B: 15, A: 0xff}
)

// testedRoots is how many of NewtonRoots are checked each step. The third root is
// never tested, so its basin colour only exists to complete the palette.
const testedRoots = 2

func newton(t transforms.Root, z complex128, maxIterations uint32) color.RGBA {
	if c, ok := basin(z); ok {
		return c
	}

	for i := uint32(0); i < maxIterations; i++ {
		z = t.Next(z)
		if c, ok := basin(z); ok {
			return c
		}
	}

	return NonConverged
}

// basin returns the colour of the first tested root within tolerance of z.
func basin(z complex128) (color.RGBA, bool) {
	for n, root := range NewtonRoots[:testedRoots] {
		if cmplx.Abs(z-root) < NewtonTolerance {
			return BasinColours[n], true
		}
	}
	return color.RGBA{}, false
}
