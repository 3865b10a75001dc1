package ops

import "math"

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x) = 1 - y²
type TanhOp struct {
	unary
}

func init() { Register(TanhOp{}) }

// Name returns "tanh".
func (TanhOp) Name() string { return "tanh" }

// Forward returns tanh(x) and captures it.
func (TanhOp) Forward(args []float64, buf []byte) float64 {
	y := math.Tanh(args[0])
	capture(buf, y)
	return y
}

// Backward returns outputGrad * (1 - y²).
func (TanhOp) Backward(outputGrad float64, buf []byte) []float64 {
	y := captured(buf, 0)
	return []float64{outputGrad * (1 - y*y)}
}

// Differential returns (1 - tanh²(x)) dx.
func (TanhOp) Differential(args, tangents []float64) float64 {
	y := math.Tanh(args[0])
	return (1 - y*y) * tangents[0]
}
