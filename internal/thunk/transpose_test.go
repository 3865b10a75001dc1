package thunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/pullback/internal/thunk"
	"github.com/born-ml/pullback/internal/vector"
)

// rotateAndStretch maps (a, b, c) to (2a - c, b + c).
func rotateAndStretch(v vector.Vec) vector.Vec {
	return vector.VecOf(2*v[0]-v[2], v[1]+v[2])
}

func standardBasis(n int) []vector.Vec {
	basis := make([]vector.Vec, n)
	for i := range basis {
		basis[i] = vector.NewVec(n)
		basis[i][i] = 1
	}
	return basis
}

func TestTranspose_Generic(t *testing.T) {
	lt := thunk.Transpose(thunk.LinearMap[vector.Vec, vector.Vec](rotateAndStretch), standardBasis(3))

	assert.Equal(t, vector.VecOf(2, 1, 0), lt(vector.VecOf(1, 1)))
	assert.Equal(t, vector.VecOf(0, 1, 1), lt(vector.VecOf(0, 1)))
}

func TestTranspose_ScalarSpace(t *testing.T) {
	// L(x) = (5x, -x) from Float64 to Vec.
	l := thunk.LinearMap[vector.Float64, vector.Vec](func(x vector.Float64) vector.Vec {
		return vector.VecOf(5*float64(x), -float64(x))
	})
	lt := thunk.Transpose(l, []vector.Float64{1})

	assert.Equal(t, vector.Float64(3), lt(vector.VecOf(1, 2)))
}

func TestJacobian(t *testing.T) {
	jac := thunk.Jacobian(rotateAndStretch, 3)
	require.NotNil(t, jac)

	want := mat.NewDense(2, 3, []float64{
		2, 0, -1,
		0, 1, 1,
	})
	assert.True(t, mat.Equal(want, jac))
}

func TestTransposeVec(t *testing.T) {
	lt := thunk.TransposeVec(rotateAndStretch, 3)

	assert.Equal(t, vector.VecOf(2, 1, 0), lt(vector.VecOf(1, 1)))
	assert.Nil(t, lt(nil))
	assert.True(t, thunk.CheckAdjoint(rotateAndStretch, lt, vector.VecOf(1, -2, 3), vector.VecOf(0.5, 4), 1e-12))
}

func TestTransposeMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	lt := thunk.TransposeMatrix(m)

	assert.Equal(t, vector.VecOf(4, 6), lt(vector.VecOf(1, 1)))
	assert.Panics(t, func() { lt(vector.VecOf(1)) })
}

func TestCheckAdjoint_DetectsWrongTranspose(t *testing.T) {
	wrong := func(y vector.Vec) vector.Vec { return vector.VecOf(y[0], y[1], 0) }
	assert.False(t, thunk.CheckAdjoint(rotateAndStretch, wrong, vector.VecOf(1, 1, 1), vector.VecOf(1, 1), 1e-9))
}
