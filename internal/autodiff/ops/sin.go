package ops

import "math"

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = grad_output * cos(input)
type SinOp struct {
	unary
}

func init() { Register(SinOp{}) }

// Name returns "sin".
func (SinOp) Name() string { return "sin" }

// Forward returns sin(x) and captures x.
func (SinOp) Forward(args []float64, buf []byte) float64 {
	capture(buf, args[0])
	return math.Sin(args[0])
}

// Backward computes input gradient for sin.
func (SinOp) Backward(outputGrad float64, buf []byte) []float64 {
	return []float64{outputGrad * math.Cos(captured(buf, 0))}
}

// Differential returns cos(x) dx.
func (SinOp) Differential(args, tangents []float64) float64 {
	return math.Cos(args[0]) * tangents[0]
}
