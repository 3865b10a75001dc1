package autodiff

import (
	"fmt"

	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/thunk"
	"github.com/born-ml/pullback/internal/vector"
)

// Linear returns a linear function given its forward map and transpose.
//
// No pullback closure is recorded: the transpose is the pullback at every
// point and the forward map is the differential. transpose must satisfy
// <forward(a), b> == <a, transpose(b)>; thunk.CheckAdjoint verifies this.
func Linear[A vector.Vector[A], B vector.Vector[B]](name string, forward func(A) B, transpose func(B) A) Function[A, B, A, B] {
	return Function[A, B, A, B]{
		name:     name,
		original: forward,
		jvp: func(x A) (B, Differential[A, B]) {
			return forward(x), Differential[A, B](forward)
		},
		record: func(_ *tape.Context, x A) (B, Pullback[B, A]) {
			return forward(x), Pullback[B, A](transpose)
		},
		frame: noFrame,
	}
}

// VecFunction is a differentiable map from Vec to Vec.
type VecFunction = Function[vector.Vec, vector.Vec, vector.Vec, vector.Vec]

// LinearVec returns a linear map on length-n vectors whose transpose is
// derived from its materialized Jacobian. The forward map is probed n times
// at construction.
func LinearVec(name string, forward func(vector.Vec) vector.Vec, n int) VecFunction {
	return Linear[vector.Vec, vector.Vec](name, forward, thunk.TransposeVec(forward, n))
}

// Index selects element i of a length-n vector.
func Index(i, n int) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	checkRange("Index", i, i+1, n)
	return Linear(fmt.Sprintf("index[%d]", i),
		func(v vector.Vec) vector.Float64 {
			checkLen("Index", v, n)
			return vector.Float64(v[i])
		},
		func(d vector.Float64) vector.Vec {
			out := vector.NewVec(n)
			out[i] = float64(d)
			return out
		},
	)
}

// Slice selects elements [lo, hi) of a length-n vector.
func Slice(lo, hi, n int) VecFunction {
	checkRange("Slice", lo, hi, n)
	return Linear(fmt.Sprintf("slice[%d:%d]", lo, hi),
		func(v vector.Vec) vector.Vec {
			checkLen("Slice", v, n)
			return v[lo:hi].Clone()
		},
		func(d vector.Vec) vector.Vec {
			if d == nil {
				return nil
			}
			out := vector.NewVec(n)
			copy(out[lo:hi], d)
			return out
		},
	)
}

// Permute reorders a vector: out[i] = v[perm[i]]. perm must be a permutation
// of 0..len(perm)-1. The transpose applies the inverse permutation.
func Permute(perm []int) VecFunction {
	n := len(perm)
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			panic(fmt.Sprintf("autodiff: Permute: %v is not a permutation", perm))
		}
		seen[p] = true
	}
	perm = append([]int(nil), perm...)

	return Linear("permute",
		func(v vector.Vec) vector.Vec {
			checkLen("Permute", v, n)
			out := vector.NewVec(n)
			for i, p := range perm {
				out[i] = v[p]
			}
			return out
		},
		func(d vector.Vec) vector.Vec {
			if d == nil {
				return nil
			}
			out := vector.NewVec(n)
			for i, p := range perm {
				out[p] = d[i]
			}
			return out
		},
	)
}

// Sum adds the elements of a length-n vector.
func Sum(n int) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	return Linear("sum",
		func(v vector.Vec) vector.Float64 {
			checkLen("Sum", v, n)
			var s float64
			for _, x := range v {
				s += x
			}
			return vector.Float64(s)
		},
		func(d vector.Float64) vector.Vec { return broadcast(float64(d), n) },
	)
}

// Broadcast repeats a scalar n times. Its transpose is Sum.
func Broadcast(n int) Function[vector.Float64, vector.Vec, vector.Float64, vector.Vec] {
	return Linear("broadcast",
		func(x vector.Float64) vector.Vec { return broadcast(float64(x), n) },
		func(d vector.Vec) vector.Float64 {
			var s float64
			for _, x := range d {
				s += x
			}
			return vector.Float64(s)
		},
	)
}

// Dot returns the linear functional x ↦ w·x.
func Dot(w vector.Vec) Function[vector.Vec, vector.Float64, vector.Vec, vector.Float64] {
	w = w.Clone()
	return Linear("dot",
		func(x vector.Vec) vector.Float64 { return vector.Float64(w.Dot(x)) },
		func(d vector.Float64) vector.Vec { return w.Scale(float64(d)) },
	)
}

// MatVec returns x ↦ m x for a fixed matrix m. The transpose is x ↦ mᵀ y.
func MatVec(m vector.Matrix) VecFunction {
	return Linear("matvec", m.MulVec, m.MulVecT)
}

func broadcast(x float64, n int) vector.Vec {
	out := vector.NewVec(n)
	for i := range out {
		out[i] = x
	}
	return out
}

func checkRange(op string, lo, hi, n int) {
	if lo < 0 || hi > n || lo > hi {
		panic(fmt.Sprintf("autodiff: %s: range [%d, %d) out of bounds for length %d", op, lo, hi, n))
	}
}

func checkLen(op string, v vector.Vec, n int) {
	if len(v) != n {
		panic(fmt.Sprintf("autodiff: %s: vector of length %d, want %d", op, len(v), n))
	}
}
