package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pullback/internal/autodiff"
	"github.com/born-ml/pullback/internal/thunk"
	"github.com/born-ml/pullback/internal/vector"
)

func TestIndex(t *testing.T) {
	f := autodiff.Index(1, 3)
	x := vector.VecOf(4, 5, 6)

	assert.Equal(t, F(5), f.Call(x))
	assert.Equal(t, vector.VecOf(0, 1, 0), autodiff.Gradient(x, f))
	assert.Panics(t, func() { autodiff.Index(3, 3) })
	assert.Panics(t, func() { f.Call(vector.VecOf(1)) })
}

func TestSlice(t *testing.T) {
	f := autodiff.Slice(1, 3, 4)
	x := vector.VecOf(1, 2, 3, 4)

	y, pb := autodiff.ValueWithPullback(x, f)

	assert.Equal(t, vector.VecOf(2, 3), y)
	assert.Equal(t, vector.VecOf(0, 7, 8, 0), pb(vector.VecOf(7, 8)))
}

func TestPermute(t *testing.T) {
	f := autodiff.Permute([]int{2, 0, 1})
	x := vector.VecOf(10, 20, 30)

	y, pb := autodiff.ValueWithPullback(x, f)

	assert.Equal(t, vector.VecOf(30, 10, 20), y)
	// The pullback applies the inverse permutation.
	assert.Equal(t, vector.VecOf(2, 3, 1), pb(vector.VecOf(1, 2, 3)))
	assert.Panics(t, func() { autodiff.Permute([]int{0, 0}) })
}

func TestSumAndBroadcast(t *testing.T) {
	sum := autodiff.Sum(3)
	assert.Equal(t, F(6), sum.Call(vector.VecOf(1, 2, 3)))
	assert.Equal(t, vector.VecOf(1, 1, 1), autodiff.Gradient(vector.VecOf(1, 2, 3), sum))

	// Sum ∘ Broadcast multiplies by n.
	f := autodiff.Compose(sum, autodiff.Broadcast(3))
	v, g := autodiff.ValueWithGradient(F(2), f)
	assert.Equal(t, F(6), v)
	assert.Equal(t, F(3), g)
}

func TestDot(t *testing.T) {
	w := vector.VecOf(1, -2, 3)
	f := autodiff.Dot(w)
	w[0] = 100 // Dot keeps its own copy.

	x := vector.VecOf(1, 1, 1)
	assert.Equal(t, F(2), f.Call(x))
	assert.Equal(t, vector.VecOf(1, -2, 3), autodiff.Gradient(x, f))
}

func TestMatVec(t *testing.T) {
	m := vector.NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	f := autodiff.Compose(autodiff.Dot(vector.VecOf(1, 1)), autodiff.MatVec(m))

	g := autodiff.Gradient(vector.VecOf(1, 0, -1), f)

	assert.Equal(t, vector.VecOf(5, 7, 9), g)
}

func TestLinear_JVPIsForwardMap(t *testing.T) {
	f := autodiff.Permute([]int{1, 0})
	_, df := autodiff.ValueWithDifferential(vector.VecOf(3, 4), f)
	assert.Equal(t, vector.VecOf(2, 1), df(vector.VecOf(1, 2)))
}

func TestAffine(t *testing.T) {
	w := vector.NewMatrix(2, 2, []float64{
		1, 2,
		3, 4,
	})
	x := vector.VecOf(1, -1)
	b := vector.VecOf(0.5, 0.5)
	f := autodiff.Affine()

	y, pb := autodiff.ValueWithPullback(vector.MakeTriple(w, x, b), f)
	require.Equal(t, vector.VecOf(-0.5, -0.5), y)

	d := pb(vector.VecOf(1, 2))

	assert.True(t, d.First.Equal(vector.NewMatrix(2, 2, []float64{
		1, -1,
		2, -2,
	}), 1e-15))
	assert.Equal(t, vector.VecOf(7, 10), d.Second)
	assert.Equal(t, vector.VecOf(1, 2), d.Third)
}

func TestAffine_LossGradient(t *testing.T) {
	w := vector.NewMatrix(1, 2, []float64{2, -1})
	args := vector.MakeTriple(w, vector.VecOf(3, 4), vector.VecOf(1))

	// L = sum(Wx + b)²
	pred := autodiff.Compose(autodiff.Sum(1), autodiff.Affine())
	loss := autodiff.Mul(pred, pred)

	v, g := autodiff.ValueWithGradient(args, loss)

	assert.Equal(t, F(9), v)
	assert.True(t, g.First.Equal(vector.NewMatrix(1, 2, []float64{18, 24}), 1e-12))
	assert.Equal(t, vector.VecOf(12, -6), g.Second)
	assert.Equal(t, vector.VecOf(6), g.Third)
}

func TestAffine_Differential(t *testing.T) {
	w := vector.NewMatrix(1, 2, []float64{1, 1})
	a := vector.MakeTriple(w, vector.VecOf(2, 3), vector.VecOf(0))
	dw := vector.NewMatrix(1, 2, []float64{1, 0})

	_, df := autodiff.ValueWithDifferential(a, autodiff.Affine())

	// dW x + W dx + db with dx = (0, 1), db = 1
	got := df(vector.MakeTriple(dw, vector.VecOf(0, 1), vector.VecOf(1)))
	assert.Equal(t, vector.VecOf(4), got)
}

func TestLinearVec(t *testing.T) {
	f := autodiff.LinearVec("cumsum", func(v vector.Vec) vector.Vec {
		out := vector.NewVec(len(v))
		var s float64
		for i, x := range v {
			s += x
			out[i] = s
		}
		return out
	}, 3)

	_, pb := autodiff.ValueWithPullback(vector.VecOf(1, 2, 3), f)

	// The transpose of a prefix sum is a suffix sum.
	assert.Equal(t, vector.VecOf(6, 5, 3), pb(vector.VecOf(1, 2, 3)))
}

func TestPartialGradient(t *testing.T) {
	f := autodiff.Primitive("mul")
	wrt := thunk.NewIndexSubset(2, 1)

	assert.Equal(t, []float64{3}, autodiff.PartialGradient(vector.VecOf(3, 4), f, wrt))
	assert.Equal(t, []float64{4, 3}, autodiff.PartialGradient(vector.VecOf(3, 4), f, thunk.FullSubset(2)))
}
