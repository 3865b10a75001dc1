package autodiff_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pullback/internal/autodiff"
	"github.com/born-ml/pullback/internal/vector"
)

type F = vector.Float64

type F2 = vector.Pair[F, F]

func id() autodiff.ScalarFunction { return autodiff.Identity[F]() }

func square() autodiff.ScalarFunction { return autodiff.Mul(id(), id()) }

func requirePanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	f()
}

func TestGradient_Identity(t *testing.T) {
	assert.Equal(t, F(1), autodiff.Gradient(F(7), id()))
}

func TestGradient_ChainRule(t *testing.T) {
	sin := autodiff.Unary("sin")
	f := autodiff.Compose(sin, square()) // sin(x²)

	x := F(3)
	got := autodiff.Gradient(x, f)

	assert.InDelta(t, 6*math.Cos(9), float64(got), 1e-12)

	// The same value as the product of the parts' gradients.
	outer := autodiff.Gradient(square().Call(x), sin)
	inner := autodiff.Gradient(x, square())
	assert.InDelta(t, float64(outer*inner), float64(got), 1e-12)
}

func TestGradient_Linearity(t *testing.T) {
	for _, c := range []float64{-2, 0, 0.5, 3} {
		f := autodiff.Scale(id(), c)
		for _, x := range []F{-1, 0, 4} {
			assert.Equal(t, F(c), autodiff.Gradient(x, f), "c=%v x=%v", c, x)
		}
	}
}

func TestGradient_Fanout(t *testing.T) {
	double := autodiff.Add(id(), id())
	zero := autodiff.Sub(id(), id())

	for _, x := range []F{-3, 0, 2.5} {
		assert.Equal(t, F(2), autodiff.Gradient(x, double))
		assert.Equal(t, F(0), autodiff.Gradient(x, zero))
	}

	// The same sum through an explicit fanout into a binary primitive.
	viaPair := autodiff.Compose(autodiff.Binary("add"), autodiff.Fanout(id(), id()))
	assert.Equal(t, F(2), autodiff.Gradient(F(1), viaPair))
}

func TestGradient2_ProductRule(t *testing.T) {
	f := autodiff.Mul(autodiff.First[F, F](), autodiff.Second[F, F]())

	dx, dy := autodiff.Gradient2(F(3), F(4), f)

	assert.Equal(t, F(4), dx)
	assert.Equal(t, F(3), dy)
}

func TestGradient2_SumAndProduct(t *testing.T) {
	x, y := autodiff.First[F, F](), autodiff.Second[F, F]()
	f := autodiff.Add(autodiff.Add(x, x), autodiff.Mul(x, y)) // x + x + x*y

	v, dx, dy := autodiff.ValueWithGradient2(F(3), F(2), f)

	assert.Equal(t, F(12), v)
	assert.Equal(t, F(4), dx)
	assert.Equal(t, F(3), dy)
}

func TestGradient_FourthPower(t *testing.T) {
	f := autodiff.Mul(square(), square())

	v, g := autodiff.ValueWithGradient(F(3), f)

	assert.Equal(t, F(81), v)
	assert.Equal(t, F(108), g)
}

func TestGradient_Division(t *testing.T) {
	f := autodiff.Div(autodiff.First[F, F](), autodiff.Second[F, F]())

	dx, dy := autodiff.Gradient2(F(3), F(4), f)

	assert.InDelta(t, 0.25, float64(dx), 1e-15)
	assert.InDelta(t, -3.0/16, float64(dy), 1e-15)
}

func TestDifferentiableFunction_Unary(t *testing.T) {
	f := autodiff.DifferentiableFunction(func(x F) (F, autodiff.Pullback[F, F]) {
		return x * x, func(dy F) F { return 2 * x * dy }
	})

	assert.Equal(t, F(100), f.Call(10))
	assert.Equal(t, F(20), autodiff.Gradient(F(10), f))
}

func TestDifferentiableFunction_Binary(t *testing.T) {
	f := autodiff.DifferentiableFunction(func(p F2) (F, autodiff.Pullback[F, F2]) {
		return p.First * p.Second, func(dz F) F2 {
			return vector.MakePair(dz*p.Second, dz*p.First)
		}
	})

	dx, dy := autodiff.Gradient2(F(5), F(10), f)

	assert.Equal(t, F(10), dx)
	assert.Equal(t, F(5), dy)
}

func TestGradient3(t *testing.T) {
	type F3 = vector.Triple[F, F, F]
	f := autodiff.DifferentiableFunction(func(p F3) (F, autodiff.Pullback[F, F3]) {
		return p.First * p.Second * p.Third, func(d F) F3 {
			return vector.MakeTriple(d*p.Second*p.Third, d*p.First*p.Third, d*p.First*p.Second)
		}
	})

	dx, dy, dz := autodiff.Gradient3(F(2), F(3), F(4), f)
	assert.Equal(t, []F{12, 8, 6}, []F{dx, dy, dz})

	v, dx, dy, dz := autodiff.ValueWithGradientOf3(f)(1, 2, 3)
	assert.Equal(t, []F{6, 6, 3, 2}, []F{v, dx, dy, dz})

	dx, dy, dz = autodiff.GradientOf3(f)(1, 1, 1)
	assert.Equal(t, []F{1, 1, 1}, []F{dx, dy, dz})
}

// point is a user-defined vector space used as a structured cotangent.
type point struct{ X, Y float64 }

func (p point) Add(q point) point { return point{p.X + q.X, p.Y + q.Y} }
func (p point) Sub(q point) point { return point{p.X - q.X, p.Y - q.Y} }
func (p point) Scale(s float64) point { return point{s * p.X, s * p.Y} }
func (p point) Moved(d point) point { return p.Add(d) }
func (p point) TangentVector(c point) point { return c }

func TestGradient_StructCotangent(t *testing.T) {
	// f(p) = x² + 3y
	x := autodiff.Linear("x", func(p point) F { return F(p.X) }, func(d F) point { return point{X: float64(d)} })
	y := autodiff.Linear("y", func(p point) F { return F(p.Y) }, func(d F) point { return point{Y: float64(d)} })
	f := autodiff.Add(autodiff.Mul(x, x), autodiff.Scale(y, 3))

	g := autodiff.Gradient(point{X: 2, Y: 5}, f)

	assert.Equal(t, point{X: 4, Y: 3}, g)
}

func TestGradient_ResultSelection(t *testing.T) {
	cube := autodiff.Mul(square(), id())
	both := autodiff.Fanout(square(), cube)

	onlySquare := autodiff.Compose(autodiff.First[F, F](), both)
	onlyCube := autodiff.Compose(autodiff.Second[F, F](), both)

	assert.Equal(t, F(4), autodiff.Gradient(F(2), onlySquare))
	assert.Equal(t, F(12), autodiff.Gradient(F(2), onlyCube))

	_, pb := autodiff.ValueWithPullback(F(2), both)
	assert.Equal(t, F(16), pb(vector.MakePair(F(1), F(1))))
}

func TestGradient_Nested(t *testing.T) {
	// d/dx of the AD gradient of x³, where the pullback itself differentiates.
	cube := autodiff.Mul(square(), id())
	threeXSquared := autodiff.Scale(square(), 3)

	derivative := autodiff.DifferentiableFunction(func(x F) (F, autodiff.Pullback[F, F]) {
		return autodiff.Gradient(x, cube), func(dy F) F {
			return dy * autodiff.Gradient(x, threeXSquared)
		}
	})

	v, g := autodiff.ValueWithGradient(F(2), derivative)

	assert.Equal(t, F(12), v)
	assert.Equal(t, F(12), g)
}

func TestGradient_DeepChainCrossesSlabs(t *testing.T) {
	const depth = 600
	f := id()
	for i := 0; i < depth; i++ {
		f = autodiff.Apply("sin", f)
	}

	x := 0.7
	want := 1.0
	for i := 0; i < depth; i++ {
		want *= math.Cos(x)
		x = math.Sin(x)
	}

	v, g := autodiff.ValueWithGradient(F(0.7), f)

	assert.InDelta(t, x, float64(v), 1e-12)
	assert.InDelta(t, want, float64(g), 1e-12)
}

func TestPullback_OneShot(t *testing.T) {
	_, pb := autodiff.ValueWithPullback(F(3), square())
	assert.Equal(t, F(6), pb(1))

	requirePanicIs(t, autodiff.ErrPullbackConsumed, func() { pb(1) })
}

func TestPullback_LinearInSeed(t *testing.T) {
	f := autodiff.Compose(autodiff.Unary("exp"), square())
	g1 := autodiff.PullbackAt(F(0.5), f)(1)
	g3 := autodiff.PullbackAt(F(0.5), f)(3)

	assert.InDelta(t, 3*float64(g1), float64(g3), 1e-12)
}

func TestPullback_RetainedAfterReturn(t *testing.T) {
	var pbs []autodiff.Pullback[F, F]
	for _, x := range []F{1, 2, 3} {
		pbs = append(pbs, autodiff.PullbackAt(x, square()))
	}
	// Invoke in an order unrelated to creation; each owns its context.
	assert.Equal(t, F(4), pbs[1](1))
	assert.Equal(t, F(6), pbs[2](1))
	assert.Equal(t, F(2), pbs[0](1))
}

func TestFunction_MethodForms(t *testing.T) {
	f := square().Named("square")
	assert.Equal(t, "square", f.Name())
	assert.Equal(t, F(9), f.Call(3))

	v, pb := f.ValueWithPullback(3)
	assert.Equal(t, F(9), v)
	assert.Equal(t, F(6), pb(1))

	assert.Equal(t, F(8), f.Pullback(4)(1))

	v, pb = f.VJP()(5)
	assert.Equal(t, F(25), v)
	assert.Equal(t, F(20), pb(2))

	jvp, ok := f.JVP()
	require.True(t, ok)
	v, df := jvp(5)
	assert.Equal(t, F(25), v)
	assert.Equal(t, F(10), df(1))
}

func TestCurried(t *testing.T) {
	grad := autodiff.GradientOf(square())
	assert.Equal(t, F(-4), grad(-2))

	v, g := autodiff.ValueWithGradientOf(square())(1.5)
	assert.Equal(t, F(2.25), v)
	assert.Equal(t, F(3), g)

	mul := autodiff.Mul(autodiff.First[F, F](), autodiff.Second[F, F]())
	dx, dy := autodiff.GradientOf2(mul)(2, 7)
	assert.Equal(t, []F{7, 2}, []F{dx, dy})

	v, dx, dy = autodiff.ValueWithGradientOf2(mul)(2, 7)
	assert.Equal(t, []F{14, 7, 2}, []F{v, dx, dy})

	pb := autodiff.Pullback2(F(2), F(7), mul)
	dx, dy = pb(10)
	assert.Equal(t, []F{70, 20}, []F{dx, dy})
}

func TestConstant(t *testing.T) {
	f := autodiff.Add(square(), autodiff.Constant[F, F, F, F](10))

	v, g := autodiff.ValueWithGradient(F(3), f)

	assert.Equal(t, F(19), v)
	assert.Equal(t, F(6), g)
}

func TestNegate(t *testing.T) {
	f := autodiff.Negate(square())
	v, g := autodiff.ValueWithGradient(F(3), f)
	assert.Equal(t, F(-9), v)
	assert.Equal(t, F(-6), g)
}

func TestZip(t *testing.T) {
	f := autodiff.Compose(autodiff.Binary("mul"), autodiff.Zip(square(), autodiff.Unary("exp")))

	dx, dy := autodiff.Gradient2(F(2), F(0), f) // x² · exp(y)

	assert.InDelta(t, 4.0, float64(dx), 1e-12)
	assert.InDelta(t, 4.0, float64(dy), 1e-12)
}

func TestFloat32Scalars(t *testing.T) {
	type F32 = vector.Float32
	x := autodiff.Identity[F32]()
	f := autodiff.Mul(x, x)

	v, g := autodiff.ValueWithGradient(F32(1.5), f)

	assert.Equal(t, F32(2.25), v)
	assert.Equal(t, F32(3), g)
}
