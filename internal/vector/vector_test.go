package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pullback/internal/vector"
)

func TestFloat64_GroupLaws(t *testing.T) {
	a, b, c := vector.Float64(1.5), vector.Float64(-2), vector.Float64(4)

	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	assert.Equal(t, a, a.Add(vector.Zero[vector.Float64]()))
	assert.Equal(t, vector.Float64(0), a.Sub(a))
	assert.Equal(t, a.Add(b).Scale(3), a.Scale(3).Add(b.Scale(3)))
	assert.Equal(t, a.Scale(2), vector.Scaled(2, a))
}

func TestFloat32_Scale(t *testing.T) {
	x := vector.Float32(1.5)
	assert.Equal(t, vector.Float32(3), x.Scale(2))
	assert.Equal(t, 2.25, x.Dot(x))
}

func TestVec_Arithmetic(t *testing.T) {
	v := vector.VecOf(1, 2, 3)
	w := vector.VecOf(4, 5, 6)

	assert.Equal(t, vector.VecOf(5, 7, 9), v.Add(w))
	assert.Equal(t, vector.VecOf(-3, -3, -3), v.Sub(w))
	assert.Equal(t, vector.VecOf(2, 4, 6), v.Scale(2))
	assert.InDelta(t, 32.0, v.Dot(w), 1e-12)
	assert.InDelta(t, 5.0, vector.VecOf(3, 4).Norm(), 1e-12)
}

func TestVec_NilIsIdentity(t *testing.T) {
	v := vector.VecOf(1, 2)
	var zero vector.Vec

	assert.Equal(t, v, zero.Add(v))
	assert.Equal(t, v, v.Add(zero))
	assert.Equal(t, vector.VecOf(-1, -2), zero.Sub(v))
	assert.Nil(t, zero.Scale(3))
	assert.Equal(t, 0.0, zero.Dot(v))
	assert.True(t, zero.Equal(vector.VecOf(0, 0), 0))
}

func TestVec_AddDoesNotAlias(t *testing.T) {
	v := vector.VecOf(1, 2)
	var zero vector.Vec
	sum := zero.Add(v)
	sum[0] = 100
	assert.Equal(t, 1.0, v[0])
}

func TestVec_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { vector.VecOf(1, 2).Add(vector.VecOf(1)) })
}

func TestVec_UpdateWithGradients(t *testing.T) {
	params := vector.VecOf(1, 2, 3)
	params.UpdateWithGradients(vector.VecOf(1, 1, 1), func(p *float64, g float64) {
		*p -= 0.5 * g
	})
	assert.Equal(t, vector.VecOf(0.5, 1.5, 2.5), params)

	assert.Panics(t, func() {
		params.UpdateWithGradients(vector.VecOf(1), func(*float64, float64) {})
	})
}

func TestMatrix_Arithmetic(t *testing.T) {
	m := vector.NewMatrix(2, 2, []float64{1, 2, 3, 4})
	n := vector.NewMatrix(2, 2, []float64{1, 1, 1, 1})

	sum := m.Add(n)
	assert.True(t, sum.Equal(vector.NewMatrix(2, 2, []float64{2, 3, 4, 5}), 1e-12))
	assert.True(t, m.Sub(m).Equal(vector.Matrix{}, 1e-12))
	assert.InDelta(t, 10.0, m.Dot(n), 1e-12)
	assert.True(t, m.Scale(2).Equal(vector.NewMatrix(2, 2, []float64{2, 4, 6, 8}), 1e-12))

	var zero vector.Matrix
	assert.True(t, zero.IsZero())
	assert.True(t, zero.Add(m).Equal(m, 0))
}

func TestMatrix_MulVec(t *testing.T) {
	m := vector.NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := vector.VecOf(1, 0, -1)
	y := vector.VecOf(1, 1)

	assert.Equal(t, vector.VecOf(-2, -2), m.MulVec(x))
	assert.Equal(t, vector.VecOf(5, 7, 9), m.MulVecT(y))
	// <Mx, y> == <x, Mᵀy>
	assert.InDelta(t, m.MulVec(x).Dot(y), x.Dot(m.MulVecT(y)), 1e-12)
}

func TestOuter(t *testing.T) {
	o := vector.Outer(vector.VecOf(1, 2), vector.VecOf(3, 4, 5))
	r, c := o.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 10.0, o.At(1, 2))
}

func TestPair_ComponentWise(t *testing.T) {
	p := vector.MakePair(vector.Float64(1), vector.VecOf(1, 2))
	q := vector.MakePair(vector.Float64(2), vector.VecOf(3, 4))

	sum := p.Add(q)
	assert.Equal(t, vector.Float64(3), sum.First)
	assert.Equal(t, vector.VecOf(4, 6), sum.Second)

	var zero vector.Pair[vector.Float64, vector.Vec]
	assert.Equal(t, p.First, zero.Add(p).First)
}

func TestTriple_Scale(t *testing.T) {
	tr := vector.MakeTriple(vector.Float64(1), vector.Float32(2), vector.Float64(3))
	got := tr.Scale(-1)
	assert.Equal(t, vector.MakeTriple(vector.Float64(-1), vector.Float32(-2), vector.Float64(-3)), got)
}

func TestSum(t *testing.T) {
	assert.Equal(t, vector.Float64(0), vector.Sum[vector.Float64]())
	assert.Equal(t, vector.VecOf(3, 3), vector.Sum(vector.VecOf(1, 1), vector.VecOf(2, 2)))
	assert.Equal(t, vector.Float64(-2), vector.Negate(vector.Float64(2)))
}
