// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package differentiable defines the protocol of differentiable values and
// the convention for updating aggregate parameters with gradients.
//
// Example:
//
//	import "github.com/born-ml/pullback/differentiable"
//
//	type Model struct {
//	    W    vector.Matrix
//	    B    vector.Vec
//	    Name string `ad:"-"`
//	}
//
//	differentiable.UpdateFields(&model, grads, func(p *float64, g float64) {
//	    *p -= lr * g
//	})
package differentiable

import (
	"github.com/born-ml/pullback/internal/differentiable"
	"github.com/born-ml/pullback/internal/vector"
)

// Differentiable is implemented by a type with tangent space Tan and
// cotangent space Cot.
type Differentiable[Self, Tan, Cot any] = differentiable.Differentiable[Self, Tan, Cot]

// SelfDual is the constraint for vector spaces that are their own tangent and
// cotangent space.
type SelfDual[V any] = differentiable.SelfDual[V]

// ParameterGroup is an aggregate of parameters of element type P.
type ParameterGroup[G, P any] = differentiable.ParameterGroup[G, P]

// ErrMismatchedCount reports an update whose operands differ in element count.
var ErrMismatchedCount = differentiable.ErrMismatchedCount

// MoveAlong returns x + direction.
func MoveAlong[V vector.Vector[V]](x, direction V) V { return differentiable.MoveAlong(x, direction) }

// RiemannStep performs one step of Riemannian gradient descent.
func RiemannStep[T Differentiable[T, Tan, Cot], Tan vector.Vector[Tan], Cot any](x T, gradient Cot, lr float64) T {
	return differentiable.RiemannStep[T, Tan, Cot](x, gradient, lr)
}

// UpdateArray updates each parameter group with the matching gradient group.
func UpdateArray[G any, PG interface {
	*G
	ParameterGroup[G, P]
}, P any](params, gradients []G, updater func(param *P, gradient P)) {
	differentiable.UpdateArray[G, PG, P](params, gradients, updater)
}

// UpdateFields applies updater to every float64 reachable from params paired
// with the same position in gradients.
func UpdateFields(params, gradients any, updater func(param *float64, gradient float64)) {
	differentiable.UpdateFields(params, gradients, updater)
}
