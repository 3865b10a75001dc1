package thunk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/pullback/internal/vector"
)

// LinearMap is a linear function from A to B.
type LinearMap[A, B any] func(A) B

// Transpose returns Lᵀ for a linear map l given an orthonormal basis of A:
//
//	Lᵀ(b) = Σᵢ <L(eᵢ), b> eᵢ
//
// The images L(eᵢ) are computed once, up front.
func Transpose[A vector.Vector[A], B vector.Inner[B]](l LinearMap[A, B], basis []A) LinearMap[B, A] {
	images := make([]B, len(basis))
	for i, e := range basis {
		images[i] = l(e)
	}
	return func(b B) A {
		out := vector.Zero[A]()
		for i, e := range basis {
			out = out.Add(e.Scale(images[i].Dot(b)))
		}
		return out
	}
}

// Jacobian materializes the matrix of a linear map on length-n vectors by
// probing it with the standard basis. Column j is l(eⱼ).
func Jacobian(l LinearMap[vector.Vec, vector.Vec], n int) *mat.Dense {
	var cols []vector.Vec
	m := 0
	for j := 0; j < n; j++ {
		e := vector.NewVec(n)
		e[j] = 1
		col := l(e)
		if j == 0 {
			m = len(col)
		} else if len(col) != m {
			panic(fmt.Sprintf("thunk: Jacobian: column %d has length %d, want %d", j, len(col), m))
		}
		cols = append(cols, col)
	}
	if n == 0 || m == 0 {
		return nil
	}
	jac := mat.NewDense(m, n, nil)
	for j, col := range cols {
		jac.SetCol(j, col)
	}
	return jac
}

// TransposeVec returns Lᵀ for a linear map on length-n vectors by
// materializing its Jacobian J, so that Lᵀ(y) = Jᵀ y.
func TransposeVec(l LinearMap[vector.Vec, vector.Vec], n int) LinearMap[vector.Vec, vector.Vec] {
	jac := Jacobian(l, n)
	if jac == nil {
		return func(vector.Vec) vector.Vec { return vector.NewVec(n) }
	}
	return TransposeMatrix(jac)
}

// TransposeMatrix returns the map y ↦ mᵀ y.
func TransposeMatrix(m mat.Matrix) LinearMap[vector.Vec, vector.Vec] {
	r, c := m.Dims()
	return func(y vector.Vec) vector.Vec {
		if y == nil {
			return nil
		}
		if len(y) != r {
			panic(fmt.Sprintf("thunk: transpose of %d×%d matrix applied to length %d", r, c, len(y)))
		}
		var x mat.VecDense
		x.MulVec(m.T(), mat.NewVecDense(len(y), y))
		return vector.VecOf(x.RawVector().Data...)
	}
}

// CheckAdjoint reports whether <L(a), b> and <a, Lᵀ(b)> agree within tol,
// relative to their magnitude.
func CheckAdjoint[A vector.Inner[A], B vector.Inner[B]](l LinearMap[A, B], lt LinearMap[B, A], a A, b B, tol float64) bool {
	lhs := l(a).Dot(b)
	rhs := a.Dot(lt(b))
	return math.Abs(lhs-rhs) <= tol*max(1, math.Abs(lhs), math.Abs(rhs))
}
