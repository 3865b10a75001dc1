package ops

import "math"

// SqrtOp represents the square root: y = sqrt(x).
//
// Backward pass:
//   - d(sqrt(x))/dx = 1 / (2 sqrt(x)) = 0.5 / y
type SqrtOp struct {
	unary
}

func init() { Register(SqrtOp{}) }

// Name returns "sqrt".
func (SqrtOp) Name() string { return "sqrt" }

// Forward returns sqrt(x) and captures it.
func (SqrtOp) Forward(args []float64, buf []byte) float64 {
	y := math.Sqrt(args[0])
	capture(buf, y)
	return y
}

// Backward returns 0.5 * outputGrad / y.
func (SqrtOp) Backward(outputGrad float64, buf []byte) []float64 {
	return []float64{0.5 * outputGrad / captured(buf, 0)}
}

// Differential returns dx / (2 sqrt(x)).
func (SqrtOp) Differential(args, tangents []float64) float64 {
	return 0.5 * tangents[0] / math.Sqrt(args[0])
}
