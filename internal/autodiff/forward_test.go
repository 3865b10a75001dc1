package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/pullback/internal/autodiff"
	"github.com/born-ml/pullback/internal/vector"
)

func TestDerivative(t *testing.T) {
	f := autodiff.Compose(autodiff.Unary("sin"), square())
	assert.InDelta(t, 6*math.Cos(9), float64(autodiff.Derivative(F(3), f)), 1e-12)
}

func TestValueWithDifferential_Pair(t *testing.T) {
	f := autodiff.Mul(autodiff.First[F, F](), autodiff.Second[F, F]())

	v, df := autodiff.ValueWithDifferential(vector.MakePair(F(3), F(4)), f)

	assert.Equal(t, F(12), v)
	assert.Equal(t, F(4), df(vector.MakePair(F(1), F(0))))
	assert.Equal(t, F(3), df(vector.MakePair(F(0), F(1))))
}

func TestValueWithDifferential_Fanout(t *testing.T) {
	f := autodiff.Fanout(square(), autodiff.Unary("exp"))

	_, df := autodiff.ValueWithDifferential(F(0), f)

	assert.Equal(t, vector.MakePair(F(0), F(2)), df(2))
}

func TestValueWithDifferential_Missing(t *testing.T) {
	f := autodiff.DifferentiableFunction(func(x F) (F, autodiff.Pullback[F, F]) {
		return x, func(d F) F { return d }
	})
	_, ok := f.JVP()
	assert.False(t, ok)
	requirePanicIs(t, autodiff.ErrNoDifferential, func() { autodiff.ValueWithDifferential(F(1), f) })

	// Composition with a function lacking a JVP has none either.
	_, ok = autodiff.Compose(square(), f).JVP()
	assert.False(t, ok)
}

func TestWithJVP(t *testing.T) {
	f := autodiff.DifferentiableFunction(func(x F) (F, autodiff.Pullback[F, F]) {
		return 3 * x, func(d F) F { return 3 * d }
	})
	f = autodiff.WithJVP(f, func(x F) (F, autodiff.Differential[F, F]) {
		return 3 * x, func(d F) F { return 3 * d }
	})

	assert.Equal(t, F(3), autodiff.Derivative(F(5), f))
	assert.Equal(t, F(3), autodiff.Gradient(F(5), f))
}
