package vector

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense real matrix viewed as a vector space under element-wise
// addition. It wraps a gonum Dense matrix; the zero Matrix (no backing Dense)
// is the additive identity of every shape.
//
// Matrix implements mat.Matrix so it can be passed to gonum routines directly.
type Matrix struct {
	dense *mat.Dense
}

// NewMatrix returns an r×c matrix backed by a copy of data in row-major order.
// A nil data slice yields an r×c matrix of zeros.
func NewMatrix(r, c int, data []float64) Matrix {
	var buf []float64
	if data != nil {
		buf = make([]float64, len(data))
		copy(buf, data)
	}
	return Matrix{dense: mat.NewDense(r, c, buf)}
}

// MatrixOf wraps a copy of any gonum matrix.
func MatrixOf(m mat.Matrix) Matrix {
	if m == nil {
		return Matrix{}
	}
	return Matrix{dense: mat.DenseCopyOf(m)}
}

// Outer returns the outer product a bᵀ.
func Outer(a, b Vec) Matrix {
	if len(a) == 0 || len(b) == 0 {
		return Matrix{}
	}
	var d mat.Dense
	d.Outer(1, mat.NewVecDense(len(a), a), mat.NewVecDense(len(b), b))
	return Matrix{dense: &d}
}

// IsZero reports whether m is the shapeless zero matrix.
func (m Matrix) IsZero() bool { return m.dense == nil }

// Dims returns the number of rows and columns. The zero Matrix is 0×0.
func (m Matrix) Dims() (r, c int) {
	if m.dense == nil {
		return 0, 0
	}
	return m.dense.Dims()
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	if m.dense == nil {
		panic("vector: At on zero Matrix")
	}
	return m.dense.At(i, j)
}

// T returns the transpose of m as a gonum view.
func (m Matrix) T() mat.Matrix {
	if m.dense == nil {
		panic("vector: T on zero Matrix")
	}
	return m.dense.T()
}

// Add returns m + n.
func (m Matrix) Add(n Matrix) Matrix {
	switch {
	case m.dense == nil:
		return n.clone()
	case n.dense == nil:
		return m.clone()
	}
	var d mat.Dense
	d.Add(m.dense, n.dense)
	return Matrix{dense: &d}
}

// Sub returns m - n.
func (m Matrix) Sub(n Matrix) Matrix {
	switch {
	case n.dense == nil:
		return m.clone()
	case m.dense == nil:
		return n.Scale(-1)
	}
	var d mat.Dense
	d.Sub(m.dense, n.dense)
	return Matrix{dense: &d}
}

// Scale returns s * m.
func (m Matrix) Scale(s float64) Matrix {
	if m.dense == nil {
		return Matrix{}
	}
	var d mat.Dense
	d.Scale(s, m.dense)
	return Matrix{dense: &d}
}

// Dot returns the Frobenius inner product Σ m_ij n_ij.
func (m Matrix) Dot(n Matrix) float64 {
	if m.dense == nil || n.dense == nil {
		return 0
	}
	var d mat.Dense
	d.MulElem(m.dense, n.dense)
	return mat.Sum(&d)
}

// MulVec returns the matrix-vector product m x.
func (m Matrix) MulVec(x Vec) Vec {
	if m.dense == nil || len(x) == 0 {
		return nil
	}
	r, c := m.dense.Dims()
	if c != len(x) {
		panic(fmt.Sprintf("vector: MulVec: %d×%d matrix with vector of length %d", r, c, len(x)))
	}
	var y mat.VecDense
	y.MulVec(m.dense, mat.NewVecDense(len(x), x))
	return VecOf(y.RawVector().Data...)
}

// MulVecT returns mᵀ y.
func (m Matrix) MulVecT(y Vec) Vec {
	if m.dense == nil || len(y) == 0 {
		return nil
	}
	var x mat.VecDense
	x.MulVec(m.dense.T(), mat.NewVecDense(len(y), y))
	return VecOf(x.RawVector().Data...)
}

// Moved returns m + d.
func (m Matrix) Moved(d Matrix) Matrix { return m.Add(d) }

// TangentVector returns a copy of c.
func (m Matrix) TangentVector(c Matrix) Matrix { return c.clone() }

// Equal reports whether m and n agree element-wise within tol.
// The zero Matrix equals any all-zero matrix.
func (m Matrix) Equal(n Matrix, tol float64) bool {
	switch {
	case m.dense == nil && n.dense == nil:
		return true
	case m.dense == nil:
		return mat.EqualApprox(n.dense, mat.NewDense(rows(n), cols(n), nil), tol)
	case n.dense == nil:
		return mat.EqualApprox(m.dense, mat.NewDense(rows(m), cols(m), nil), tol)
	}
	return mat.EqualApprox(m.dense, n.dense, tol)
}

// UpdateWithGradients applies updater element-wise, mutating m in place.
func (m Matrix) UpdateWithGradients(gradients Matrix, updater func(param *float64, gradient float64)) {
	if gradients.dense == nil {
		return
	}
	r, c := m.Dims()
	gr, gc := gradients.Dims()
	if r != gr || c != gc {
		panic(fmt.Sprintf("vector: UpdateWithGradients: %d×%d parameters, %d×%d gradients", r, c, gr, gc))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			p := m.dense.At(i, j)
			updater(&p, gradients.dense.At(i, j))
			m.dense.Set(i, j, p)
		}
	}
}

func (m Matrix) clone() Matrix {
	if m.dense == nil {
		return Matrix{}
	}
	return Matrix{dense: mat.DenseCopyOf(m.dense)}
}

func rows(m Matrix) int {
	r, _ := m.Dims()
	return r
}

func cols(m Matrix) int {
	_, c := m.Dims()
	return c
}
