package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// Scalar constrains result types that can seed a gradient: real numbers that
// are their own cotangent space.
type Scalar[R any] interface {
	vector.Real
	vector.Vector[R]
}

// ValueWithPullback evaluates f at x and returns the value with its pullback.
//
// The pullback may be retained and called after ValueWithPullback returns,
// but only once: it drains and releases the context the forward pass recorded
// into, and a second call panics with ErrPullbackConsumed. It must not be
// invoked concurrently.
func ValueWithPullback[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](x A, f Function[A, R, DA, DR]) (R, Pullback[DR, DA]) {
	return valueWithPullback(x, f, tape.DefaultConfig())
}

func valueWithPullback[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](x A, f Function[A, R, DA, DR], cfg tape.Config) (R, Pullback[DR, DA]) {
	ctx := tape.New(max(f.frame, 0), cfg)
	y, pb := f.record(ctx, x)

	consumed := false
	return y, func(dy DR) DA {
		if consumed {
			panic(errors.Wrapf(ErrPullbackConsumed, "autodiff: %s", f.name))
		}
		consumed = true

		dx := pb(dy)
		if top := ctx.TopLevel(); !top.Retired() {
			// Nothing in f claimed the top-level frame.
			ctx.Pop(top)
		}
		ctx.Destroy()
		return dx
	}
}

// PullbackAt returns only the pullback of f at x.
func PullbackAt[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](x A, f Function[A, R, DA, DR]) Pullback[DR, DA] {
	_, pb := ValueWithPullback(x, f)
	return pb
}

// ValueWithGradient evaluates a scalar-valued f at x and returns the value
// with the gradient, the pullback applied to the seed 1.
func ValueWithGradient[A any, DA vector.Vector[DA], R Scalar[R]](x A, f Function[A, R, DA, R]) (R, DA) {
	y, pb := ValueWithPullback(x, f)
	return y, pb(R(1))
}

// Gradient returns the gradient of a scalar-valued f at x.
func Gradient[A any, DA vector.Vector[DA], R Scalar[R]](x A, f Function[A, R, DA, R]) DA {
	_, g := ValueWithGradient(x, f)
	return g
}

// ValueWithPullback2 is ValueWithPullback for a function of two arguments.
// The pullback returns one cotangent per argument in positional order.
func ValueWithPullback2[A1 vector.Vector[A1], A2 vector.Vector[A2], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], DR vector.Vector[DR]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], DR],
) (R, func(DR) (D1, D2)) {
	y, pb := ValueWithPullback(vector.MakePair(x1, x2), f)
	return y, func(dy DR) (D1, D2) {
		d := pb(dy)
		return d.First, d.Second
	}
}

// Pullback2 returns only the pullback of a two-argument f.
func Pullback2[A1 vector.Vector[A1], A2 vector.Vector[A2], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], DR vector.Vector[DR]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], DR],
) func(DR) (D1, D2) {
	_, pb := ValueWithPullback2(x1, x2, f)
	return pb
}

// ValueWithGradient2 returns the value and both partial gradients.
func ValueWithGradient2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) (R, D1, D2) {
	y, pb := ValueWithPullback2(x1, x2, f)
	d1, d2 := pb(R(1))
	return y, d1, d2
}

// Gradient2 returns both partial gradients of a scalar-valued f.
func Gradient2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	x1 A1, x2 A2, f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) (D1, D2) {
	_, d1, d2 := ValueWithGradient2(x1, x2, f)
	return d1, d2
}

// ValueWithPullback3 is ValueWithPullback for a function of three arguments.
func ValueWithPullback3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], DR vector.Vector[DR]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], DR],
) (R, func(DR) (D1, D2, D3)) {
	y, pb := ValueWithPullback(vector.MakeTriple(x1, x2, x3), f)
	return y, func(dy DR) (D1, D2, D3) {
		d := pb(dy)
		return d.First, d.Second, d.Third
	}
}

// Pullback3 returns only the pullback of a three-argument f.
func Pullback3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], R any, D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], DR vector.Vector[DR]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], DR],
) func(DR) (D1, D2, D3) {
	_, pb := ValueWithPullback3(x1, x2, x3, f)
	return pb
}

// ValueWithGradient3 returns the value and all three partial gradients.
func ValueWithGradient3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) (R, D1, D2, D3) {
	y, pb := ValueWithPullback3(x1, x2, x3, f)
	d1, d2, d3 := pb(R(1))
	return y, d1, d2, d3
}

// Gradient3 returns all three partial gradients of a scalar-valued f.
func Gradient3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	x1 A1, x2 A2, x3 A3, f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) (D1, D2, D3) {
	_, d1, d2, d3 := ValueWithGradient3(x1, x2, x3, f)
	return d1, d2, d3
}

// GradientOf returns the gradient function of f.
func GradientOf[A any, DA vector.Vector[DA], R Scalar[R]](f Function[A, R, DA, R]) func(A) DA {
	return func(x A) DA { return Gradient(x, f) }
}

// ValueWithGradientOf returns a function computing value and gradient of f.
func ValueWithGradientOf[A any, DA vector.Vector[DA], R Scalar[R]](f Function[A, R, DA, R]) func(A) (R, DA) {
	return func(x A) (R, DA) { return ValueWithGradient(x, f) }
}

// GradientOf2 returns the gradient function of a two-argument f.
func GradientOf2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) func(A1, A2) (D1, D2) {
	return func(x1 A1, x2 A2) (D1, D2) { return Gradient2(x1, x2, f) }
}

// ValueWithGradientOf2 returns a function computing value and gradients of a
// two-argument f.
func ValueWithGradientOf2[A1 vector.Vector[A1], A2 vector.Vector[A2], D1 vector.Vector[D1], D2 vector.Vector[D2], R Scalar[R]](
	f Function[vector.Pair[A1, A2], R, vector.Pair[D1, D2], R],
) func(A1, A2) (R, D1, D2) {
	return func(x1 A1, x2 A2) (R, D1, D2) { return ValueWithGradient2(x1, x2, f) }
}

// GradientOf3 returns the gradient function of a three-argument f.
func GradientOf3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) func(A1, A2, A3) (D1, D2, D3) {
	return func(x1 A1, x2 A2, x3 A3) (D1, D2, D3) { return Gradient3(x1, x2, x3, f) }
}

// ValueWithGradientOf3 returns a function computing value and gradients of a
// three-argument f.
func ValueWithGradientOf3[A1 vector.Vector[A1], A2 vector.Vector[A2], A3 vector.Vector[A3], D1 vector.Vector[D1], D2 vector.Vector[D2], D3 vector.Vector[D3], R Scalar[R]](
	f Function[vector.Triple[A1, A2, A3], R, vector.Triple[D1, D2, D3], R],
) func(A1, A2, A3) (R, D1, D2, D3) {
	return func(x1 A1, x2 A2, x3 A3) (R, D1, D2, D3) { return ValueWithGradient3(x1, x2, x3, f) }
}

// ValueWithDifferential evaluates f at x in forward mode. It panics with
// ErrNoDifferential if f has no JVP.
func ValueWithDifferential[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](x A, f Function[A, R, DA, DR]) (R, Differential[DA, DR]) {
	if f.jvp == nil {
		panic(errors.Wrapf(ErrNoDifferential, "autodiff: %s", f.name))
	}
	return f.jvp(x)
}

// Derivative returns the derivative of f at a real x: the differential
// applied to the unit tangent.
func Derivative[A Scalar[A], R any, DR vector.Vector[DR]](x A, f Function[A, R, A, DR]) DR {
	_, df := ValueWithDifferential(x, f)
	return df(A(1))
}
