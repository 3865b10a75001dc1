package vector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vec is a dense vector of float64 values.
//
// A nil (or empty) Vec is the additive identity for vectors of every length,
// so gradients that never received a contribution stay nil.
// Operations between two non-empty vectors of different lengths panic.
type Vec []float64

// NewVec returns a zero-filled vector of length n.
func NewVec(n int) Vec {
	return make(Vec, n)
}

// VecOf returns a copy of values as a Vec.
func VecOf(values ...float64) Vec {
	v := make(Vec, len(values))
	copy(v, values)
	return v
}

// Len returns the number of elements.
func (v Vec) Len() int { return len(v) }

// Clone returns a copy of v. The clone of a nil Vec is nil.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	switch {
	case len(v) == 0:
		return w.Clone()
	case len(w) == 0:
		return v.Clone()
	}
	mustMatch("Add", v, w)
	out := make(Vec, len(v))
	floats.AddTo(out, v, w)
	return out
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	switch {
	case len(w) == 0:
		return v.Clone()
	case len(v) == 0:
		return w.Scale(-1)
	}
	mustMatch("Sub", v, w)
	out := make(Vec, len(v))
	floats.SubTo(out, v, w)
	return out
}

// Scale returns s * v.
func (v Vec) Scale(s float64) Vec {
	if len(v) == 0 {
		return nil
	}
	out := make(Vec, len(v))
	floats.ScaleTo(out, s, v)
	return out
}

// Dot returns the inner product of v and w. The zero vector pairs to 0.
func (v Vec) Dot(w Vec) float64 {
	if len(v) == 0 || len(w) == 0 {
		return 0
	}
	mustMatch("Dot", v, w)
	return floats.Dot(v, w)
}

// Norm returns the Euclidean norm of v.
func (v Vec) Norm() float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}

// Moved returns v + d.
func (v Vec) Moved(d Vec) Vec { return v.Add(d) }

// TangentVector returns a copy of c. Vec is self-dual.
func (v Vec) TangentVector(c Vec) Vec { return c.Clone() }

// Equal reports whether v and w have the same elements within tol.
// A nil vector equals a vector of zeros.
func (v Vec) Equal(w Vec, tol float64) bool {
	switch {
	case len(v) == 0:
		return allWithin(w, tol)
	case len(w) == 0:
		return allWithin(v, tol)
	case len(v) != len(w):
		return false
	}
	return floats.EqualApprox(v, w, tol)
}

// UpdateWithGradients applies updater to each element of v paired with the
// matching element of gradients, mutating v in place.
// A nil gradient leaves v untouched.
func (v Vec) UpdateWithGradients(gradients Vec, updater func(param *float64, gradient float64)) {
	if len(gradients) == 0 {
		return
	}
	if len(v) != len(gradients) {
		panic(fmt.Sprintf("vector: UpdateWithGradients: %d parameters, %d gradients", len(v), len(gradients)))
	}
	for i := range v {
		updater(&v[i], gradients[i])
	}
}

func allWithin(v Vec, tol float64) bool {
	for _, x := range v {
		if x > tol || x < -tol {
			return false
		}
	}
	return true
}

func mustMatch(op string, v, w Vec) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("vector: %s: length mismatch %d != %d", op, len(v), len(w)))
	}
}
