// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides the vector spaces differentiable values live in.
//
// Every vector type supplies Add, Sub and Scale, and its Go zero value is the
// additive identity: a nil Vec, the zero Matrix, a zero Pair.
//
// Example:
//
//	import "github.com/born-ml/pullback/vector"
//
//	v := vector.VecOf(1, 2, 3)
//	w := v.Add(v).Scale(0.5) // [1 2 3]
//	p := vector.MakePair(vector.Float64(1), v)
package vector

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/pullback/internal/vector"
)

// Vector is the constraint satisfied by vector spaces over the reals.
type Vector[V any] = vector.Vector[V]

// Inner is a Vector with the Euclidean inner product.
type Inner[V any] = vector.Inner[V]

// Real is the constraint for real scalar types.
type Real = vector.Real

// Float64 is float64 as a one-dimensional vector space.
type Float64 = vector.Float64

// Float32 is float32 as a one-dimensional vector space.
type Float32 = vector.Float32

// Vec is a dense float64 vector.
type Vec = vector.Vec

// Matrix is a dense float64 matrix backed by gonum.
type Matrix = vector.Matrix

// Pair is the product space A × B.
type Pair[A vector.Vector[A], B vector.Vector[B]] = vector.Pair[A, B]

// Triple is the product space A × B × C.
type Triple[A vector.Vector[A], B vector.Vector[B], C vector.Vector[C]] = vector.Triple[A, B, C]

// NewVec returns a zero vector of length n.
func NewVec(n int) Vec { return vector.NewVec(n) }

// VecOf returns a vector holding a copy of values.
func VecOf(values ...float64) Vec { return vector.VecOf(values...) }

// NewMatrix returns an r×c matrix from row-major data.
func NewMatrix(r, c int, data []float64) Matrix { return vector.NewMatrix(r, c, data) }

// MatrixOf copies any gonum matrix.
func MatrixOf(m mat.Matrix) Matrix { return vector.MatrixOf(m) }

// Outer returns the outer product a bᵀ.
func Outer(a, b Vec) Matrix { return vector.Outer(a, b) }

// MakePair returns (a, b).
func MakePair[A vector.Vector[A], B vector.Vector[B]](a A, b B) Pair[A, B] {
	return vector.MakePair(a, b)
}

// MakeTriple returns (a, b, c).
func MakeTriple[A vector.Vector[A], B vector.Vector[B], C vector.Vector[C]](a A, b B, c C) Triple[A, B, C] {
	return vector.MakeTriple(a, b, c)
}

// Zero returns the additive identity of V.
func Zero[V vector.Vector[V]]() V { return vector.Zero[V]() }

// Scaled returns s * v, the commuted form of v.Scale(s).
func Scaled[V vector.Vector[V]](s float64, v V) V { return vector.Scaled(s, v) }

// Negate returns -v.
func Negate[V vector.Vector[V]](v V) V { return vector.Negate(v) }

// Sum adds vs; the sum of nothing is zero.
func Sum[V vector.Vector[V]](vs ...V) V { return vector.Sum(vs...) }
