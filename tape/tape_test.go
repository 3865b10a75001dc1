package tape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/pullback/tape"
)

func TestFacade_RoundTrip(t *testing.T) {
	ctx := tape.New(2*tape.Float64Size, tape.DefaultConfig())
	top := ctx.Frame(2 * tape.Float64Size)
	tape.PutFloat64s(top.Bytes(), 1.5, -2)

	inner := ctx.Allocate(tape.Float64Size)
	tape.PutFloat64(inner.Bytes(), 0, 7)
	assert.Equal(t, 2, ctx.Live())

	buf, _ := ctx.Pop(inner)
	assert.Equal(t, 7.0, tape.Float64(buf, 0))
	assert.Equal(t, tape.Draining, ctx.State())

	buf, _ = ctx.Pop(top)
	assert.Equal(t, []float64{1.5, -2}, tape.Float64s(buf, 2))
	assert.Equal(t, tape.Closed, ctx.State())

	ctx.Destroy()
	assert.Equal(t, tape.Destroyed, ctx.State())
}

func TestFacade_OutOfOrderPop(t *testing.T) {
	ctx := tape.New(0, tape.DefaultConfig())
	first := ctx.Allocate(8)
	ctx.Allocate(8)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.ErrorIs(t, r.(error), tape.ErrOutOfOrder)
	}()
	ctx.Pop(first)
}
