// Package vector defines the vector-space abstraction every differentiable value
// and every derivative representation must satisfy.
//
// A vector space V supplies addition, subtraction and scalar multiplication.
// The additive identity is the Go zero value of V: Float64(0), a nil Vec, an
// empty Matrix, or a Pair of zero values. Every implementation must treat its
// zero value as the identity, so generic code can write
//
//	var acc V
//	acc = acc.Add(v)
//
// without knowing the shape of v in advance.
//
// Arithmetic never fails. Values are immutable results: Add, Sub and Scale
// always return fresh storage and never alias their operands.
package vector

// Vector is the constraint satisfied by elements of a real vector space.
//
// (V, Add, zero) forms a commutative group and Scale distributes over Add.
type Vector[V any] interface {
	// Add returns the sum of the receiver and w.
	Add(w V) V
	// Sub returns the receiver minus w.
	Sub(w V) V
	// Scale returns the receiver multiplied by the scalar s.
	Scale(s float64) V
}

// Inner is a vector space with the natural (Euclidean) pairing between the
// space and its dual. Transposition of linear maps is defined against it.
type Inner[V any] interface {
	Vector[V]
	// Dot returns the inner product of the receiver and w.
	Dot(w V) float64
}

// Real is the constraint for scalar results that seed a gradient.
// A Real type is its own derivative space.
type Real interface {
	~float32 | ~float64
}

// Zero returns the additive identity of V.
func Zero[V Vector[V]]() V {
	var z V
	return z
}

// Scaled returns s * v. It is the commuted form of v.Scale(s).
func Scaled[V Vector[V]](s float64, v V) V {
	return v.Scale(s)
}

// Negate returns -v.
func Negate[V Vector[V]](v V) V {
	return v.Scale(-1)
}

// Sum adds all vectors, returning the zero value for an empty list.
func Sum[V Vector[V]](vs ...V) V {
	var acc V
	for i, v := range vs {
		if i == 0 {
			acc = v.Scale(1)
			continue
		}
		acc = acc.Add(v)
	}
	return acc
}
