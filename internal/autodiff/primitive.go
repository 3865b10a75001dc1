package autodiff

import (
	"fmt"

	"github.com/born-ml/pullback/internal/autodiff/ops"
	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// BinaryFunction is a differentiable function of two real variables.
type BinaryFunction = Function[vector.Pair[vector.Float64, vector.Float64], vector.Float64,
	vector.Pair[vector.Float64, vector.Float64], vector.Float64]

// Unary returns the registered one-input primitive name as a Function.
// It panics with ops.ErrUnknownPrimitive for an unregistered name.
func Unary(name string) ScalarFunction {
	op := mustArity(name, 1)
	return Function[vector.Float64, vector.Float64, vector.Float64, vector.Float64]{
		name:     name,
		original: func(x vector.Float64) vector.Float64 { return forward1(op, x) },
		jvp: func(x vector.Float64) (vector.Float64, Differential[vector.Float64, vector.Float64]) {
			args := []float64{float64(x)}
			return forward1(op, x), func(dx vector.Float64) vector.Float64 {
				return vector.Float64(op.Differential(args, []float64{float64(dx)}))
			}
		},
		record: func(ctx *tape.Context, x vector.Float64) (vector.Float64, Pullback[vector.Float64, vector.Float64]) {
			sub := ctx.Frame(op.CaptureSize())
			y := op.Forward([]float64{float64(x)}, sub.Bytes())
			return vector.Float64(y), func(dy vector.Float64) vector.Float64 {
				buf, _ := ctx.Pop(sub)
				return vector.Float64(op.Backward(float64(dy), buf)[0])
			}
		},
		frame: op.CaptureSize(),
	}
}

// Binary returns the registered two-input primitive name as a Function of a
// pair.
func Binary(name string) BinaryFunction {
	type pair = vector.Pair[vector.Float64, vector.Float64]

	op := mustArity(name, 2)
	args := func(x pair) []float64 { return []float64{float64(x.First), float64(x.Second)} }
	return Function[pair, vector.Float64, pair, vector.Float64]{
		name: name,
		original: func(x pair) vector.Float64 {
			return vector.Float64(op.Forward(args(x), make([]byte, op.CaptureSize())))
		},
		jvp: func(x pair) (vector.Float64, Differential[pair, vector.Float64]) {
			a := args(x)
			y := op.Forward(a, make([]byte, op.CaptureSize()))
			return vector.Float64(y), func(dx pair) vector.Float64 {
				return vector.Float64(op.Differential(a, args(dx)))
			}
		},
		record: func(ctx *tape.Context, x pair) (vector.Float64, Pullback[vector.Float64, pair]) {
			sub := ctx.Frame(op.CaptureSize())
			y := op.Forward(args(x), sub.Bytes())
			return vector.Float64(y), func(dy vector.Float64) pair {
				buf, _ := ctx.Pop(sub)
				g := op.Backward(float64(dy), buf)
				return vector.MakePair(vector.Float64(g[0]), vector.Float64(g[1]))
			}
		},
		frame: op.CaptureSize(),
	}
}

// Primitive returns any registered primitive as a Function of a Vec holding
// its arguments in order.
func Primitive(name string) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	op := ops.MustLookup(name)
	n := op.Arity()
	check := func(x vector.Vec) {
		if len(x) != n {
			panic(fmt.Sprintf("autodiff: primitive %s takes %d arguments, got %d", name, n, len(x)))
		}
	}
	return Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64]{
		name: name,
		original: func(x vector.Vec) vector.Float64 {
			check(x)
			return vector.Float64(op.Forward(x, make([]byte, op.CaptureSize())))
		},
		jvp: func(x vector.Vec) (vector.Float64, Differential[vector.Vec, vector.Float64]) {
			check(x)
			a := x.Clone()
			y := op.Forward(a, make([]byte, op.CaptureSize()))
			return vector.Float64(y), func(dx vector.Vec) vector.Float64 {
				if dx == nil {
					return 0
				}
				return vector.Float64(op.Differential(a, dx))
			}
		},
		record: func(ctx *tape.Context, x vector.Vec) (vector.Float64, Pullback[vector.Float64, vector.Vec]) {
			check(x)
			sub := ctx.Frame(op.CaptureSize())
			y := op.Forward(x, sub.Bytes())
			return vector.Float64(y), func(dy vector.Float64) vector.Vec {
				buf, _ := ctx.Pop(sub)
				return vector.VecOf(op.Backward(float64(dy), buf)...)
			}
		},
		frame: op.CaptureSize(),
	}
}

// Apply returns name ∘ f for a registered one-input primitive.
func Apply[A any, DA vector.Vector[DA]](name string, f Function[A, vector.Float64, DA, vector.Float64]) Function[A, vector.Float64, DA, vector.Float64] {
	return Compose(Unary(name), f)
}

func forward1(op ops.Operation, x vector.Float64) vector.Float64 {
	return vector.Float64(op.Forward([]float64{float64(x)}, make([]byte, op.CaptureSize())))
}

func mustArity(name string, arity int) ops.Operation {
	op := ops.MustLookup(name)
	if op.Arity() != arity {
		panic(fmt.Sprintf("autodiff: primitive %s has arity %d, want %d", name, op.Arity(), arity))
	}
	return op
}
