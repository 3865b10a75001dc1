package ops

import "math"

// ExpOp represents the exponential: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y, so the output is captured instead of x
type ExpOp struct {
	unary
}

func init() { Register(ExpOp{}) }

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Forward returns exp(x) and captures it.
func (ExpOp) Forward(args []float64, buf []byte) float64 {
	y := math.Exp(args[0])
	capture(buf, y)
	return y
}

// Backward returns outputGrad * y.
func (ExpOp) Backward(outputGrad float64, buf []byte) []float64 {
	return []float64{outputGrad * captured(buf, 0)}
}

// Differential returns exp(x) dx.
func (ExpOp) Differential(args, tangents []float64) float64 {
	return math.Exp(args[0]) * tangents[0]
}
