package transforms

// NewtonCubic is the root-finding step used for the z^3 = 1 basins:
//
//	z <- (z^3 - 1) / (3z^2)
//
// This is not the textbook Newton step z - (z^3-1)/(3z^2); rendered basins
// depend on this exact form.
type NewtonCubic struct{}

func (NewtonCubic) Next(z complex128) complex128 {
	return (z*z*z - 1) / (3 * z * z)
}
