package autodiff

import (
	"github.com/born-ml/pullback/internal/thunk"
	"github.com/born-ml/pullback/internal/vector"
)

// PartialGradient returns the gradient of f at x restricted to the
// parameters in wrt, in ascending order. wrt must have capacity len(x).
func PartialGradient[R Scalar[R]](x vector.Vec, f Function[vector.Vec, R, vector.Vec, R], wrt thunk.IndexSubset) []float64 {
	pb := PullbackAt(x, f)
	full := func(dy R) []float64 {
		g := pb(dy)
		if g == nil {
			g = vector.NewVec(len(x))
		}
		return g
	}
	return thunk.SubsetParameters(full, wrt)(R(1))
}
