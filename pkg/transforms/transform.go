package transforms

// An Escape transform advances an escape-time orbit by one step.
// c is the parameter of the orbit; for Mandelbrot-like maps it is the plane point.
type Escape interface {
	Next(z complex128, c complex128) complex128
}

// A Root transform advances a root-finding orbit by one step.
type Root interface {
	Next(z complex128) complex128
}

var (
	_ Escape = Mandelbrot{}
	_ Escape = BurningShip{}
	_ Escape = Julia2{}
	_ Root   = NewtonCubic{}
)
