// Package differentiable defines the protocol every differentiable value
// satisfies and the aggregate parameter-update convention built on it.
//
// A differentiable type T has a tangent space (forward derivatives) and a
// cotangent space (gradients). Both are vector spaces, and they are mutual
// duals: the tangent of a tangent is the tangent, the cotangent of a tangent
// is the cotangent. For Euclidean types the two spaces coincide with T.
package differentiable

import (
	"github.com/born-ml/pullback/internal/vector"
)

// Differentiable is implemented by a type Self with tangent space Tan and
// cotangent space Cot.
//
// TangentVector must be linear in its argument. For self-dual types
// (Tan == Self and Self is a vector space) Moved(d) must equal Self + d.
type Differentiable[Self, Tan, Cot any] interface {
	// Moved returns the receiver moved along direction. In Riemannian terms
	// this is the exponential map or a retraction.
	Moved(direction Tan) Self

	// TangentVector converts a gradient covector into a tangent vector.
	TangentVector(cotangent Cot) Tan
}

// SelfDual is the constraint for vector spaces that are their own tangent and
// cotangent space.
type SelfDual[V any] interface {
	vector.Vector[V]
	Differentiable[V, V, V]
}

// MoveAlong is the default Moved for a self-dual vector space: x + direction.
func MoveAlong[V vector.Vector[V]](x, direction V) V {
	return x.Add(direction)
}

// IdentityTangent is the default TangentVector when the tangent and cotangent
// spaces coincide.
func IdentityTangent[V any](cotangent V) V {
	return cotangent
}

// RiemannStep performs one step of Riemannian gradient descent:
//
//	x.Moved(lr * (0 - x.TangentVector(gradient)))
func RiemannStep[T Differentiable[T, Tan, Cot], Tan vector.Vector[Tan], Cot any](x T, gradient Cot, lr float64) T {
	var zero Tan
	return x.Moved(zero.Sub(x.TangentVector(gradient)).Scale(lr))
}
