package autodiff

import (
	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// Add returns x ↦ f(x) + g(x).
func Add[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f, g Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return combine("add", f, g,
		func(a, b R) R { return a.Add(b) },
		func(a, b DR) DR { return a.Add(b) },
		func(dy DR) DR { return dy },
	)
}

// Sub returns x ↦ f(x) - g(x).
func Sub[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f, g Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return combine("sub", f, g,
		func(a, b R) R { return a.Sub(b) },
		func(a, b DR) DR { return a.Sub(b) },
		vector.Negate[DR],
	)
}

// combine joins f and g with a linear operator: op on values, tangent on
// tangents. The cotangent reaching g is second(dy); f receives dy unchanged.
func combine[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](
	name string, f, g Function[A, R, DA, DR],
	op func(R, R) R, tangent func(DR, DR) DR, second func(DR) DR,
) Function[A, R, DA, DR] {
	h := Function[A, R, DA, DR]{
		name:     name + "(" + f.name + ", " + g.name + ")",
		original: func(x A) R { return op(f.original(x), g.original(x)) },
		record: func(ctx *tape.Context, x A) (R, Pullback[DR, DA]) {
			y1, pb1 := f.record(ctx, x)
			y2, pb2 := g.record(ctx, x)
			return op(y1, y2), func(dy DR) DA {
				dx2 := pb2(second(dy))
				return pb1(dy).Add(dx2)
			}
		},
		frame: firstFrame(f.frame, g.frame),
	}
	if f.jvp != nil && g.jvp != nil {
		h.jvp = func(x A) (R, Differential[DA, DR]) {
			y1, df := f.jvp(x)
			y2, dg := g.jvp(x)
			return op(y1, y2), func(dx DA) DR { return tangent(df(dx), dg(dx)) }
		}
	}
	return h
}

// Scale returns x ↦ c·f(x).
func Scale[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR], c float64) Function[A, R, DA, DR] {
	h := Function[A, R, DA, DR]{
		name:     "scale(" + f.name + ")",
		original: func(x A) R { return f.original(x).Scale(c) },
		record: func(ctx *tape.Context, x A) (R, Pullback[DR, DA]) {
			y, pb := f.record(ctx, x)
			return y.Scale(c), func(dy DR) DA { return pb(dy.Scale(c)) }
		},
		frame: f.frame,
	}
	if f.jvp != nil {
		h.jvp = func(x A) (R, Differential[DA, DR]) {
			y, df := f.jvp(x)
			return y.Scale(c), func(dx DA) DR { return df(dx).Scale(c) }
		}
	}
	return h
}

// Negate returns x ↦ -f(x).
func Negate[A any, R vector.Vector[R], DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return Scale(f, -1).Named("negate(" + f.name + ")")
}

// Mul returns the product x ↦ f(x)·g(x) of two real-valued functions.
//
// Both factors and the product are captured in a tape frame:
//   - d(u·v) = v du + u dv
func Mul[A any, DA vector.Vector[DA], R Scalar[R]](f, g Function[A, R, DA, R]) Function[A, R, DA, R] {
	return product("mul", f, g,
		func(u, v float64) float64 { return u * v },
		func(u, v, _ float64) (float64, float64) { return v, u },
	)
}

// Div returns the quotient x ↦ f(x)/g(x) of two real-valued functions.
//   - d(u/v) = du/v - (u/v²) dv
func Div[A any, DA vector.Vector[DA], R Scalar[R]](f, g Function[A, R, DA, R]) Function[A, R, DA, R] {
	return product("div", f, g,
		func(u, v float64) float64 { return u / v },
		func(_, v, y float64) (float64, float64) { return 1 / v, -y / v },
	)
}

// product joins two real-valued functions with a bilinear-style operator op
// whose partial derivatives at (u, v, op(u, v)) are given by partials.
func product[A any, DA vector.Vector[DA], R Scalar[R]](
	name string, f, g Function[A, R, DA, R],
	op func(u, v float64) float64, partials func(u, v, y float64) (float64, float64),
) Function[A, R, DA, R] {
	const captureSize = 3 * tape.Float64Size

	h := Function[A, R, DA, R]{
		name: name + "(" + f.name + ", " + g.name + ")",
		original: func(x A) R {
			return R(op(float64(f.original(x)), float64(g.original(x))))
		},
		record: func(ctx *tape.Context, x A) (R, Pullback[R, DA]) {
			u, pbF := f.record(ctx, x)
			v, pbG := g.record(ctx, x)
			y := op(float64(u), float64(v))

			sub := ctx.Frame(captureSize)
			tape.PutFloat64s(sub.Bytes(), float64(u), float64(v), y)

			return R(y), func(dy R) DA {
				buf, _ := ctx.Pop(sub)
				du, dv := partials(tape.Float64(buf, 0), tape.Float64(buf, 1), tape.Float64(buf, 2))
				dxG := pbG(R(float64(dy) * dv))
				return pbF(R(float64(dy) * du)).Add(dxG)
			}
		},
		frame: firstFrame(f.frame, g.frame, captureSize),
	}
	if f.jvp != nil && g.jvp != nil {
		h.jvp = func(x A) (R, Differential[DA, R]) {
			u, df := f.jvp(x)
			v, dg := g.jvp(x)
			y := op(float64(u), float64(v))
			du, dv := partials(float64(u), float64(v), y)
			return R(y), func(dx DA) R {
				return R(du*float64(df(dx)) + dv*float64(dg(dx)))
			}
		}
	}
	return h
}
