package autodiff

import (
	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// AffineArgs are the arguments of Affine: weights W, input x and bias b.
type AffineArgs = vector.Triple[vector.Matrix, vector.Vec, vector.Vec]

// Affine returns (W, x, b) ↦ W x + b, differentiable in all three arguments.
//
// Backward pass:
//   - grad_W = dy xᵀ
//   - grad_x = Wᵀ dy
//   - grad_b = dy
//
// W and x are kept in the frame payload for the reverse pass.
func Affine() Function[AffineArgs, vector.Vec, AffineArgs, vector.Vec] {
	return Function[AffineArgs, vector.Vec, AffineArgs, vector.Vec]{
		name:     "affine",
		original: affine,
		jvp: func(a AffineArgs) (vector.Vec, Differential[AffineArgs, vector.Vec]) {
			return affine(a), func(d AffineArgs) vector.Vec {
				// d(Wx + b) = dW x + W dx + db
				return d.First.MulVec(a.Second).Add(a.First.MulVec(d.Second)).Add(d.Third)
			}
		},
		record: func(ctx *tape.Context, a AffineArgs) (vector.Vec, Pullback[vector.Vec, AffineArgs]) {
			sub := ctx.Frame(0)
			sub.SetPayload(vector.MakePair(a.First, a.Second))
			return affine(a), func(dy vector.Vec) AffineArgs {
				_, p := ctx.Pop(sub)
				wx := p.(vector.Pair[vector.Matrix, vector.Vec])
				return vector.MakeTriple(vector.Outer(dy, wx.Second), wx.First.MulVecT(dy), dy.Clone())
			}
		},
		frame: 0,
	}
}

func affine(a AffineArgs) vector.Vec {
	return a.First.MulVec(a.Second).Add(a.Third)
}
