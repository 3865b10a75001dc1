package autodiff

import (
	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// WithRecomputationInPullbacks returns f checkpointed: the forward pass runs
// only the primal computation and keeps just the argument; the pullback
// re-runs f with recording and pulls back through the fresh recording.
//
// Values and gradients are identical to f's. The primal computation of f runs
// twice per gradient instead of once, and none of f's intermediates are held
// between the passes.
func WithRecomputationInPullbacks[A, R any, DA vector.Vector[DA], DR vector.Vector[DR]](f Function[A, R, DA, DR]) Function[A, R, DA, DR] {
	return Function[A, R, DA, DR]{
		name:     "checkpoint(" + f.name + ")",
		original: f.original,
		jvp:      f.jvp,
		record: func(ctx *tape.Context, x A) (R, Pullback[DR, DA]) {
			sub := ctx.Frame(0)
			sub.SetPayload(x)
			y := f.original(x)
			return y, func(dy DR) DA {
				_, p := ctx.Pop(sub)
				// ctx is draining; the recomputation records into its own context.
				_, pb := valueWithPullback(p.(A), f, ctx.Config())
				return pb(dy)
			}
		},
		frame: 0,
	}
}
