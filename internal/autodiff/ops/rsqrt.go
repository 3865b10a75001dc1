package ops

import "math"

// RsqrtOp represents the reciprocal square root: y = 1 / sqrt(x).
//
// Backward pass:
//   - d(x^(-1/2))/dx = -0.5 x^(-3/2) = -0.5 y³
type RsqrtOp struct {
	unary
}

func init() { Register(RsqrtOp{}) }

// Name returns "rsqrt".
func (RsqrtOp) Name() string { return "rsqrt" }

// Forward returns 1/sqrt(x) and captures it.
func (RsqrtOp) Forward(args []float64, buf []byte) float64 {
	y := 1 / math.Sqrt(args[0])
	capture(buf, y)
	return y
}

// Backward returns -0.5 * outputGrad * y³.
func (RsqrtOp) Backward(outputGrad float64, buf []byte) []float64 {
	y := captured(buf, 0)
	return []float64{-0.5 * outputGrad * y * y * y}
}

// Differential returns -0.5 x^(-3/2) dx.
func (RsqrtOp) Differential(args, tangents []float64) float64 {
	y := 1 / math.Sqrt(args[0])
	return -0.5 * y * y * y * tangents[0]
}
