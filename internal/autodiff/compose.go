package autodiff

import (
	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// Compose returns f ∘ g.
//
// The chain rule: the pullback of f ∘ g at x is the pullback of g at x applied
// after the pullback of f at g(x). g is recorded first, so its subcontexts are
// retired last.
func Compose[A, B, C any, DA vector.Vector[DA], DB vector.Vector[DB], DC vector.Vector[DC]](
	f Function[B, C, DB, DC], g Function[A, B, DA, DB],
) Function[A, C, DA, DC] {
	h := Function[A, C, DA, DC]{
		name:     f.name + "∘" + g.name,
		original: func(x A) C { return f.original(g.original(x)) },
		record: func(ctx *tape.Context, x A) (C, Pullback[DC, DA]) {
			y, pbG := g.record(ctx, x)
			z, pbF := f.record(ctx, y)
			return z, func(dz DC) DA { return pbG(pbF(dz)) }
		},
		frame: firstFrame(g.frame, f.frame),
	}
	if f.jvp != nil && g.jvp != nil {
		h.jvp = func(x A) (C, Differential[DA, DC]) {
			y, dg := g.jvp(x)
			z, df := f.jvp(y)
			return z, func(dx DA) DC { return df(dg(dx)) }
		}
	}
	return h
}

// Fanout returns x ↦ (f(x), g(x)). The pullback sums the cotangents each
// branch contributes to x.
func Fanout[A any, R1 vector.Vector[R1], R2 vector.Vector[R2], DA vector.Vector[DA], D1 vector.Vector[D1], D2 vector.Vector[D2]](
	f Function[A, R1, DA, D1], g Function[A, R2, DA, D2],
) Function[A, vector.Pair[R1, R2], DA, vector.Pair[D1, D2]] {
	h := Function[A, vector.Pair[R1, R2], DA, vector.Pair[D1, D2]]{
		name: "fanout(" + f.name + ", " + g.name + ")",
		original: func(x A) vector.Pair[R1, R2] {
			return vector.MakePair(f.original(x), g.original(x))
		},
		record: func(ctx *tape.Context, x A) (vector.Pair[R1, R2], Pullback[vector.Pair[D1, D2], DA]) {
			y1, pb1 := f.record(ctx, x)
			y2, pb2 := g.record(ctx, x)
			return vector.MakePair(y1, y2), func(d vector.Pair[D1, D2]) DA {
				d2 := pb2(d.Second)
				return pb1(d.First).Add(d2)
			}
		},
		frame: firstFrame(f.frame, g.frame),
	}
	if f.jvp != nil && g.jvp != nil {
		h.jvp = func(x A) (vector.Pair[R1, R2], Differential[DA, vector.Pair[D1, D2]]) {
			y1, df := f.jvp(x)
			y2, dg := g.jvp(x)
			return vector.MakePair(y1, y2), func(dx DA) vector.Pair[D1, D2] {
				return vector.MakePair(df(dx), dg(dx))
			}
		}
	}
	return h
}

// First returns the projection (a, b) ↦ a.
func First[A vector.Vector[A], B vector.Vector[B]]() Function[vector.Pair[A, B], A, vector.Pair[A, B], A] {
	return Linear("first",
		func(p vector.Pair[A, B]) A { return p.First },
		func(d A) vector.Pair[A, B] { return vector.MakePair(d, vector.Zero[B]()) },
	)
}

// Second returns the projection (a, b) ↦ b.
func Second[A vector.Vector[A], B vector.Vector[B]]() Function[vector.Pair[A, B], B, vector.Pair[A, B], B] {
	return Linear("second",
		func(p vector.Pair[A, B]) B { return p.Second },
		func(d B) vector.Pair[A, B] { return vector.MakePair(vector.Zero[A](), d) },
	)
}

// Zip returns (x1, x2) ↦ (f(x1), g(x2)), acting on each component separately.
func Zip[A1 vector.Vector[A1], A2 vector.Vector[A2], R1 vector.Vector[R1], R2 vector.Vector[R2], D1 vector.Vector[D1], D2 vector.Vector[D2], E1 vector.Vector[E1], E2 vector.Vector[E2]](
	f Function[A1, R1, D1, E1], g Function[A2, R2, D2, E2],
) Function[vector.Pair[A1, A2], vector.Pair[R1, R2], vector.Pair[D1, D2], vector.Pair[E1, E2]] {
	h := Function[vector.Pair[A1, A2], vector.Pair[R1, R2], vector.Pair[D1, D2], vector.Pair[E1, E2]]{
		name: "zip(" + f.name + ", " + g.name + ")",
		original: func(x vector.Pair[A1, A2]) vector.Pair[R1, R2] {
			return vector.MakePair(f.original(x.First), g.original(x.Second))
		},
		record: func(ctx *tape.Context, x vector.Pair[A1, A2]) (vector.Pair[R1, R2], Pullback[vector.Pair[E1, E2], vector.Pair[D1, D2]]) {
			y1, pb1 := f.record(ctx, x.First)
			y2, pb2 := g.record(ctx, x.Second)
			return vector.MakePair(y1, y2), func(d vector.Pair[E1, E2]) vector.Pair[D1, D2] {
				d2 := pb2(d.Second)
				return vector.MakePair(pb1(d.First), d2)
			}
		},
		frame: firstFrame(f.frame, g.frame),
	}
	if f.jvp != nil && g.jvp != nil {
		h.jvp = func(x vector.Pair[A1, A2]) (vector.Pair[R1, R2], Differential[vector.Pair[D1, D2], vector.Pair[E1, E2]]) {
			y1, df := f.jvp(x.First)
			y2, dg := g.jvp(x.Second)
			return vector.MakePair(y1, y2), func(dx vector.Pair[D1, D2]) vector.Pair[E1, E2] {
				return vector.MakePair(df(dx.First), dg(dx.Second))
			}
		}
	}
	return h
}
