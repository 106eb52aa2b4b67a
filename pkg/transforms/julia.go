package transforms

// Julia2 iterates the quadratic map with a fixed parameter.
// The per-point argument is ignored; the orbit starts at the point instead.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128, _ complex128) complex128 {
	return z*z + j.C
}
