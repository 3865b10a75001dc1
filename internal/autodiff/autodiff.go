// Package autodiff implements reverse-mode automatic differentiation over
// differentiable function values.
//
// A Function pairs a primal computation with a way to record its pullback.
// Functions compose (Compose, Fanout, Add, Mul, ...), and the operators
// (ValueWithPullback, Gradient, ...) run one recording forward pass followed
// by one reverse pass, whatever the input dimensionality.
//
// Recording uses a tape.Context: each nested call that must remember state for
// its pullback takes one subcontext during the forward pass, and the pullbacks
// retire them in reverse order. Each top-level evaluation owns its context,
// so nested differentiation (differentiating inside a pullback) and parallel
// evaluations never share one.
//
// Example:
//
//	square := autodiff.Mul(autodiff.Identity[vector.Float64](), autodiff.Identity[vector.Float64]())
//	f := autodiff.Compose(autodiff.Unary("sin"), square) // sin(x²)
//	dx := autodiff.Gradient(vector.Float64(3), f)       // 6 cos(9)
package autodiff

import (
	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// Pullback maps a result cotangent to an argument cotangent.
type Pullback[DR, DA any] func(DR) DA

// Differential maps an argument tangent to a result tangent.
type Differential[DA, DR any] func(DA) DR

// VJP returns the value at x together with its pullback.
type VJP[A, R, DA, DR any] func(x A) (R, Pullback[DR, DA])

// JVP returns the value at x together with its differential.
type JVP[A, R, DA, DR any] func(x A) (R, Differential[DA, DR])

// noFrame marks a Function whose recording never claims tape storage.
const noFrame = -1

// Function is a differentiable function from A to R.
//
// DA and DR are the derivative spaces of A and R: pullbacks map DR to DA and
// differentials map DA to DR. For Euclidean types the tangent and cotangent
// spaces coincide, so one space per type serves both modes.
//
// The zero Function is not usable; build one with DifferentiableFunction,
// Linear, Unary, or a combinator.
type Function[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]] struct {
	name     string
	original func(A) R
	jvp      JVP[A, R, DA, DR]
	record   func(ctx *tape.Context, x A) (R, Pullback[DR, DA])
	frame    int // bytes claimed by the first tape frame this function records
}

// ScalarFunction is a differentiable function of one real variable.
type ScalarFunction = Function[vector.Float64, vector.Float64, vector.Float64, vector.Float64]

// DifferentiableFunction wraps a user-supplied VJP. The primal computation
// runs vjp and discards the pullback.
func DifferentiableFunction[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](vjp VJP[A, R, DA, DR]) Function[A, R, DA, DR] {
	return Function[A, R, DA, DR]{
		name: "vjp",
		original: func(x A) R {
			y, _ := vjp(x)
			return y
		},
		record: func(ctx *tape.Context, x A) (R, Pullback[DR, DA]) {
			y, pb := vjp(x)
			sub := ctx.Frame(0)
			sub.SetPayload(pb)
			return y, func(dy DR) DA {
				_, p := ctx.Pop(sub)
				return p.(Pullback[DR, DA])(dy)
			}
		},
		frame: 0,
	}
}

// WithJVP returns f with a forward-mode derivative attached.
func WithJVP[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR], jvp JVP[A, R, DA, DR]) Function[A, R, DA, DR] {
	f.jvp = jvp
	return f
}

// Identity returns the identity function on V.
func Identity[V vector.Vector[V]]() Function[V, V, V, V] {
	return Linear("identity", func(x V) V { return x }, func(d V) V { return d })
}

// Constant returns the function that ignores its argument and yields c.
// Its pullback is zero.
func Constant[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](c R) Function[A, R, DA, DR] {
	return Function[A, R, DA, DR]{
		name:     "constant",
		original: func(A) R { return c },
		jvp: func(A) (R, Differential[DA, DR]) {
			return c, func(DA) DR { return vector.Zero[DR]() }
		},
		record: func(_ *tape.Context, _ A) (R, Pullback[DR, DA]) {
			return c, func(DR) DA { return vector.Zero[DA]() }
		},
		frame: noFrame,
	}
}

// Name returns the function's descriptive name.
func (f Function[A, R, DA, DR]) Name() string { return f.name }

// Named returns a copy of f carrying name.
func (f Function[A, R, DA, DR]) Named(name string) Function[A, R, DA, DR] {
	f.name = name
	return f
}

// Call evaluates the primal computation only.
func (f Function[A, R, DA, DR]) Call(x A) R { return f.original(x) }

// ValueWithPullback is the method form of the package-level function.
func (f Function[A, R, DA, DR]) ValueWithPullback(x A) (R, Pullback[DR, DA]) {
	return ValueWithPullback(x, f)
}

// Pullback returns the pullback of f at x.
func (f Function[A, R, DA, DR]) Pullback(x A) Pullback[DR, DA] {
	return PullbackAt(x, f)
}

// VJP returns f as a VJP whose pullbacks are recorded on fresh contexts.
func (f Function[A, R, DA, DR]) VJP() VJP[A, R, DA, DR] {
	return func(x A) (R, Pullback[DR, DA]) { return ValueWithPullback(x, f) }
}

// JVP returns the forward-mode derivative of f, if one is known.
func (f Function[A, R, DA, DR]) JVP() (JVP[A, R, DA, DR], bool) {
	return f.jvp, f.jvp != nil
}

// firstFrame returns the first frame size that is claimed, or noFrame.
// Combinators list their parts in recording order.
func firstFrame(frames ...int) int {
	for _, f := range frames {
		if f != noFrame {
			return f
		}
	}
	return noFrame
}
