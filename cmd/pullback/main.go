// Package main provides the pullback CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/pullback/autodiff"
	"github.com/born-ml/pullback/differentiable"
	"github.com/born-ml/pullback/vector"
)

const version = "v0.0.1-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pullback: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}
	switch args[0] {
	case "version":
		fmt.Fprintf(w, "pullback %s\n", version)
	case "ops":
		for _, name := range autodiff.Primitives() {
			fmt.Fprintln(w, name)
		}
	case "grad":
		return grad(args[1:], w)
	case "demo":
		demo(w)
	case "help", "-h", "--help":
		usage(w)
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "pullback - reverse-mode automatic differentiation for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version           Show version")
	fmt.Fprintln(w, "  ops               List registered primitives")
	fmt.Fprintln(w, "  grad <op> <x...>  Evaluate a primitive and its gradient")
	fmt.Fprintln(w, "  demo              Run worked examples")
}

// grad evaluates a primitive at the given point and prints value and gradient.
func grad(args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("grad: missing primitive name")
	}
	name := args[0]
	n, ok := autodiff.PrimitiveArity(name)
	if !ok {
		return fmt.Errorf("grad: unknown primitive %q", name)
	}

	x := make(vector.Vec, 0, len(args)-1)
	for _, s := range args[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("grad: parse argument: %w", err)
		}
		x = append(x, v)
	}

	if n != len(x) {
		return fmt.Errorf("grad: %s takes %d arguments, got %d", name, n, len(x))
	}

	y, g := autodiff.ValueWithGradient(x, autodiff.Primitive(name))
	fmt.Fprintf(w, "%s(%s) = %g\n", name, join(x), float64(y))
	fmt.Fprintf(w, "gradient = [%s]\n", join(g))
	return nil
}

func join(v vector.Vec) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

type linearModel = vector.Pair[vector.Vec, vector.Float64]

func demo(w io.Writer) {
	fmt.Fprintln(w, "== product rule: f(x) = x·sin(x)")
	x := autodiff.Identity[vector.Float64]()
	f := autodiff.Mul(x, autodiff.Apply("sin", x))
	for _, at := range []vector.Float64{0, 1, 2} {
		y, dy := autodiff.ValueWithGradient(at, f)
		fmt.Fprintf(w, "  x=%g  f=%.6f  f'=%.6f\n", float64(at), float64(y), float64(dy))
	}

	fmt.Fprintln(w, "== checkpointing: exp(sin(x)) recomputed in the pullback")
	h := autodiff.WithRecomputationInPullbacks(autodiff.Apply("exp", autodiff.Unary("sin")))
	y, dy := autodiff.ValueWithGradient(vector.Float64(0.5), h)
	fmt.Fprintf(w, "  %s at 0.5: f=%.6f  f'=%.6f\n", h.Name(), float64(y), float64(dy))

	fmt.Fprintln(w, "== linear regression: y = 2·x₀ - x₁ + 0.5")
	xs := []vector.Vec{vector.VecOf(1, 0), vector.VecOf(0, 1), vector.VecOf(1, 1), vector.VecOf(2, 1)}
	ys := []float64{2.5, -0.5, 1.5, 3.5}
	loss := squaredError(xs, ys)

	model := vector.MakePair(vector.VecOf(0, 0), vector.Float64(0))
	for step := 0; step <= 2000; step++ {
		if step%500 == 0 {
			fmt.Fprintf(w, "  step %4d  loss=%.3e\n", step, float64(loss.Call(model)))
		}
		g := autodiff.Gradient(model, loss)
		model = differentiable.RiemannStep[linearModel, linearModel, linearModel](model, g, 0.02)
	}
	fmt.Fprintf(w, "  w=%.4f  b=%.4f\n", []float64(model.First), float64(model.Second))
}

// squaredError returns Σ (w·xᵢ + b - yᵢ)² as a function of the model.
func squaredError(xs []vector.Vec, ys []float64) autodiff.Function[linearModel, vector.Float64, linearModel, vector.Float64] {
	type F = vector.Float64
	weights := autodiff.First[vector.Vec, F]()
	bias := autodiff.Second[vector.Vec, F]()

	loss := autodiff.Constant[linearModel, F, linearModel, F](0)
	for i, x := range xs {
		pred := autodiff.Add(autodiff.Compose(autodiff.Dot(x), weights), bias)
		r := autodiff.Sub(pred, autodiff.Constant[linearModel, F, linearModel, F](F(ys[i])))
		loss = autodiff.Add(loss, autodiff.Mul(r, r))
	}
	return loss
}
