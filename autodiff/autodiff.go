// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// user-defined vector spaces.
//
// A Function pairs an ordinary Go function with the rule that records its
// pullback. Functions compose; the operators below evaluate them and return
// values together with gradients.
//
// Example:
//
//	import (
//	    "github.com/born-ml/pullback/autodiff"
//	    "github.com/born-ml/pullback/vector"
//	)
//
//	func main() {
//	    x := autodiff.Identity[vector.Float64]()
//	    f := autodiff.Mul(x, autodiff.Apply("sin", x)) // x·sin(x)
//
//	    y, dy := autodiff.ValueWithGradient(vector.Float64(1), f)
//	    fmt.Println(y, dy)
//	}
package autodiff

import (
	"github.com/born-ml/pullback/internal/autodiff"
	"github.com/born-ml/pullback/internal/autodiff/ops"
	"github.com/born-ml/pullback/internal/thunk"
	"github.com/born-ml/pullback/vector"
)

// Function is a differentiable function from A to R whose derivatives live in
// DA and DR.
type Function[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]] = autodiff.Function[A, R, DA, DR]

// ScalarFunction is a differentiable real function of one real argument.
type ScalarFunction = autodiff.ScalarFunction

// BinaryFunction is a differentiable real function of two real arguments.
type BinaryFunction = autodiff.BinaryFunction

// VecFunction maps vectors to vectors.
type VecFunction = autodiff.VecFunction

// AffineArgs packs the weights, input and bias of Affine.
type AffineArgs = autodiff.AffineArgs

// Pullback maps a result cotangent to an argument cotangent.
type Pullback[DR, DA any] = autodiff.Pullback[DR, DA]

// Differential maps an argument tangent to a result tangent.
type Differential[DA, DR any] = autodiff.Differential[DA, DR]

// VJP returns the value of a function together with its pullback.
type VJP[A, R, DA, DR any] = autodiff.VJP[A, R, DA, DR]

// JVP returns the value of a function together with its differential.
type JVP[A, R, DA, DR any] = autodiff.JVP[A, R, DA, DR]

// Scalar is the constraint for results that can seed a gradient.
type Scalar[R any] = autodiff.Scalar[R]

// Config controls batch evaluation.
type Config = autodiff.Config

// IndexSubset selects the parameters a partial gradient is taken with
// respect to.
type IndexSubset = thunk.IndexSubset

// Errors raised, as panics, by the operators.
var (
	ErrPullbackConsumed = autodiff.ErrPullbackConsumed
	ErrNoDifferential   = autodiff.ErrNoDifferential
	ErrUnknownPrimitive = ops.ErrUnknownPrimitive
)

// DefaultConfig returns the default batch configuration.
func DefaultConfig() Config { return autodiff.DefaultConfig() }

// Primitives lists the registered elementary operations.
func Primitives() []string { return ops.Names() }

// PrimitiveArity reports the number of inputs of the registered primitive
// name, and whether it is registered.
func PrimitiveArity(name string) (int, bool) {
	op, ok := ops.Lookup(name)
	if !ok {
		return 0, false
	}
	return op.Arity(), true
}

// NewIndexSubset returns the subset of {0, ..., capacity-1} holding indices.
func NewIndexSubset(capacity int, indices ...int) IndexSubset {
	return thunk.NewIndexSubset(capacity, indices...)
}

// FullSubset returns {0, ..., capacity-1}.
func FullSubset(capacity int) IndexSubset { return thunk.FullSubset(capacity) }

// DifferentiableFunction builds a Function from a hand-written VJP.
func DifferentiableFunction[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](vjp VJP[A, R, DA, DR]) Function[A, R, DA, DR] {
	return autodiff.DifferentiableFunction(vjp)
}

// WithJVP attaches a forward-mode derivative to f.
func WithJVP[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR], jvp JVP[A, R, DA, DR]) Function[A, R, DA, DR] {
	return autodiff.WithJVP(f, jvp)
}

// Identity returns x ↦ x.
func Identity[V vector.Vector[V]]() Function[V, V, V, V] { return autodiff.Identity[V]() }

// Constant returns x ↦ c.
func Constant[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](c R) Function[A, R, DA, DR] {
	return autodiff.Constant[A, R, DA, DR](c)
}

// Linear builds a linear map from its forward action and its transpose.
func Linear[A vector.Vector[A], B vector.Vector[B]](name string, forward func(A) B, transpose func(B) A) Function[A, B, A, B] {
	return autodiff.Linear(name, forward, transpose)
}

// LinearVec builds a linear map on vectors of length n, deriving the transpose
// from the forward action.
func LinearVec(name string, forward func(vector.Vec) vector.Vec, n int) VecFunction {
	return autodiff.LinearVec(name, forward, n)
}

// Unary returns the registered unary primitive name.
func Unary(name string) ScalarFunction { return autodiff.Unary(name) }

// Binary returns the registered binary primitive name.
func Binary(name string) BinaryFunction { return autodiff.Binary(name) }

// Primitive returns the registered primitive name over a vector of arguments.
func Primitive(name string) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	return autodiff.Primitive(name)
}

// Apply returns the unary primitive name applied after f.
func Apply[A any, DA vector.Vector[DA]](name string, f Function[A, vector.Float64, DA, vector.Float64]) Function[A, vector.Float64, DA, vector.Float64] {
	return autodiff.Apply(name, f)
}

// Compose returns f ∘ g.
func Compose[A, B, C any, DA vector.Vector[DA], DB vector.Vector[DB], DC vector.Vector[DC]](
	f Function[B, C, DB, DC], g Function[A, B, DA, DB],
) Function[A, C, DA, DC] {
	return autodiff.Compose(f, g)
}

// Fanout returns x ↦ (f(x), g(x)).
func Fanout[A any, R1 vector.Vector[R1], R2 vector.Vector[R2], DA vector.Vector[DA], D1 vector.Vector[D1], D2 vector.Vector[D2]](
	f Function[A, R1, DA, D1], g Function[A, R2, DA, D2],
) Function[A, vector.Pair[R1, R2], DA, vector.Pair[D1, D2]] {
	return autodiff.Fanout(f, g)
}

// Zip returns (x1, x2) ↦ (f(x1), g(x2)).
func Zip[A1 vector.Vector[A1], A2 vector.Vector[A2], R1 vector.Vector[R1], R2 vector.Vector[R2], D1 vector.Vector[D1], D2 vector.Vector[D2], E1 vector.Vector[E1], E2 vector.Vector[E2]](
	f Function[A1, R1, D1, E1], g Function[A2, R2, D2, E2],
) Function[vector.Pair[A1, A2], vector.Pair[R1, R2], vector.Pair[D1, D2], vector.Pair[E1, E2]] {
	return autodiff.Zip(f, g)
}

// First projects a pair onto its first component.
func First[A vector.Vector[A], B vector.Vector[B]]() Function[vector.Pair[A, B], A, vector.Pair[A, B], A] {
	return autodiff.First[A, B]()
}

// Second projects a pair onto its second component.
func Second[A vector.Vector[A], B vector.Vector[B]]() Function[vector.Pair[A, B], B, vector.Pair[A, B], B] {
	return autodiff.Second[A, B]()
}

// Add returns x ↦ f(x) + g(x).
func Add[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f, g Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return autodiff.Add(f, g)
}

// Sub returns x ↦ f(x) - g(x).
func Sub[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f, g Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return autodiff.Sub(f, g)
}

// Scale returns x ↦ c·f(x).
func Scale[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR], c float64) Function[A, R, DA, DR] {
	return autodiff.Scale(f, c)
}

// Negate returns x ↦ -f(x).
func Negate[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return autodiff.Negate(f)
}

// Mul returns x ↦ f(x)·g(x) for real-valued f and g.
func Mul[A any, DA vector.Vector[DA], R Scalar[R]](f, g Function[A, R, DA, R]) Function[A, R, DA, R] {
	return autodiff.Mul(f, g)
}

// Div returns x ↦ f(x)/g(x) for real-valued f and g.
func Div[A any, DA vector.Vector[DA], R Scalar[R]](f, g Function[A, R, DA, R]) Function[A, R, DA, R] {
	return autodiff.Div(f, g)
}

// WithRecomputationInPullbacks returns f with checkpointing: the forward pass
// keeps only the argument and the pullback recomputes f's intermediates.
func WithRecomputationInPullbacks[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return autodiff.WithRecomputationInPullbacks(f)
}

// Index returns x ↦ x[i] on vectors of length n.
func Index(i, n int) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	return autodiff.Index(i, n)
}

// Slice returns x ↦ x[lo:hi] on vectors of length n.
func Slice(lo, hi, n int) VecFunction { return autodiff.Slice(lo, hi, n) }

// Permute returns x ↦ (x[perm[0]], x[perm[1]], ...).
func Permute(perm []int) VecFunction { return autodiff.Permute(perm) }

// Sum returns the sum of the elements of a vector of length n.
func Sum(n int) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	return autodiff.Sum(n)
}

// Broadcast returns s ↦ (s, s, ..., s) of length n.
func Broadcast(n int) Function[vector.Float64, vector.Vec, vector.Float64, vector.Vec] {
	return autodiff.Broadcast(n)
}

// Dot returns x ↦ w·x.
func Dot(w vector.Vec) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	return autodiff.Dot(w)
}

// MatVec returns x ↦ m x.
func MatVec(m vector.Matrix) VecFunction { return autodiff.MatVec(m) }

// Affine returns (W, x, b) ↦ W x + b.
func Affine() Function[AffineArgs, vector.Vec, AffineArgs, vector.Vec] { return autodiff.Affine() }

// ValueWithPullback evaluates f at x and returns the value with its one-shot
// pullback.
func ValueWithPullback[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](x A, f Function[A, R, DA, DR]) (R, Pullback[DR, DA]) {
	return autodiff.ValueWithPullback(x, f)
}

// PullbackAt returns only the pullback of f at x.
func PullbackAt[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](x A, f Function[A, R, DA, DR]) Pullback[DR, DA] {
	return autodiff.PullbackAt(x, f)
}

// ValueWithGradient returns f(x) and the gradient of f at x.
func ValueWithGradient[A any, DA vector.Vector[DA], R Scalar[R]](x A, f Function[A, R, DA, R]) (R, DA) {
	return autodiff.ValueWithGradient(x, f)
}

// Gradient returns the gradient of f at x.
func Gradient[A any, DA vector.Vector[DA], R Scalar[R]](x A, f Function[A, R, DA, R]) DA {
	return autodiff.Gradient(x, f)
}

// ValueWithPullback2 is ValueWithPullback for a function of two arguments.
func ValueWithPullback2[A1 vector.Vector[A1], A2 vector.Vector[A2], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], DR vector.Vector[DR]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], DR],
) (R, func(DR) (D1, D2)) {
	return autodiff.ValueWithPullback2(x1, x2, f)
}

// Pullback2 returns only the pullback of a two-argument f.
func Pullback2[A1 vector.Vector[A1], A2 vector.Vector[A2], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], DR vector.Vector[DR]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], DR],
) func(DR) (D1, D2) {
	return autodiff.Pullback2(x1, x2, f)
}

// ValueWithGradient2 returns the value and both partial gradients.
func ValueWithGradient2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) (R, D1, D2) {
	return autodiff.ValueWithGradient2(x1, x2, f)
}

// Gradient2 returns both partial gradients of a two-argument f.
func Gradient2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) (D1, D2) {
	return autodiff.Gradient2(x1, x2, f)
}

// ValueWithPullback3 is ValueWithPullback for a function of three arguments.
func ValueWithPullback3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], DR vector.Vector[DR]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], DR],
) (R, func(DR) (D1, D2, D3)) {
	return autodiff.ValueWithPullback3(x1, x2, x3, f)
}

// Pullback3 returns only the pullback of a three-argument f.
func Pullback3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], DR vector.Vector[DR]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], DR],
) func(DR) (D1, D2, D3) {
	return autodiff.Pullback3(x1, x2, x3, f)
}

// ValueWithGradient3 returns the value and all three partial gradients.
func ValueWithGradient3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) (R, D1, D2, D3) {
	return autodiff.ValueWithGradient3(x1, x2, x3, f)
}

// Gradient3 returns all three partial gradients of a three-argument f.
func Gradient3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) (D1, D2, D3) {
	return autodiff.Gradient3(x1, x2, x3, f)
}

// GradientOf returns the gradient function of f.
func GradientOf[A any, DA vector.Vector[DA], R Scalar[R]](f Function[A, R, DA, R]) func(A) DA {
	return autodiff.GradientOf(f)
}

// ValueWithGradientOf returns a function computing value and gradient of f.
func ValueWithGradientOf[A any, DA vector.Vector[DA], R Scalar[R]](f Function[A, R, DA, R]) func(A) (R, DA) {
	return autodiff.ValueWithGradientOf(f)
}

// GradientOf2 returns the gradient function of a two-argument f.
func GradientOf2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) func(A1, A2) (D1, D2) {
	return autodiff.GradientOf2(f)
}

// ValueWithGradientOf2 is ValueWithGradientOf for a two-argument f.
func ValueWithGradientOf2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) func(A1, A2) (R, D1, D2) {
	return autodiff.ValueWithGradientOf2(f)
}

// GradientOf3 returns the gradient function of a three-argument f.
func GradientOf3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) func(A1, A2, A3) (D1, D2, D3) {
	return autodiff.GradientOf3(f)
}

// ValueWithGradientOf3 is ValueWithGradientOf for a three-argument f.
func ValueWithGradientOf3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) func(A1, A2, A3) (R, D1, D2, D3) {
	return autodiff.ValueWithGradientOf3(f)
}

// ValueWithDifferential evaluates f at x in forward mode.
func ValueWithDifferential[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](x A, f Function[A, R, DA, DR]) (R, Differential[DA, DR]) {
	return autodiff.ValueWithDifferential(x, f)
}

// Derivative returns the derivative of f at a real x.
func Derivative[A Scalar[A], R any, DR vector.Vector[DR]](x A, f Function[A, R, A, DR]) DR {
	return autodiff.Derivative(x, f)
}

// Gradients evaluates the gradient of f at every x, in parallel.
func Gradients[A any, DA vector.Vector[DA], R Scalar[R]](xs []A, f Function[A, R, DA, R], cfg Config) []DA {
	return autodiff.Gradients(xs, f, cfg)
}

// ValuesWithGradients evaluates f and its gradient at every x, in parallel.
func ValuesWithGradients[A any, DA vector.Vector[DA], R Scalar[R]](xs []A, f Function[A, R, DA, R], cfg Config) ([]R, []DA) {
	return autodiff.ValuesWithGradients(xs, f, cfg)
}

// MeanGradient returns the mean of the gradients of f over xs.
func MeanGradient[A any, DA vector.Vector[DA], R Scalar[R]](xs []A, f Function[A, R, DA, R], cfg Config) DA {
	return autodiff.MeanGradient(xs, f, cfg)
}

// PartialGradient returns the gradient of f at x with respect to the
// components in wrt only, in the order of wrt.
func PartialGradient[R Scalar[R]](x vector.Vec, f Function[vector.Vec, R, vector.Vec, R], wrt IndexSubset) []float64 {
	return autodiff.PartialGradient(x, f, wrt)
}
