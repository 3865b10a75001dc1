package ops

import "math"

// SigmoidOp represents the logistic function: y = 1 / (1 + exp(-x)).
//
// Backward pass:
//   - d(sigmoid(x))/dx = y * (1 - y)
type SigmoidOp struct {
	unary
}

func init() { Register(SigmoidOp{}) }

// Name returns "sigmoid".
func (SigmoidOp) Name() string { return "sigmoid" }

// Forward returns sigmoid(x) and captures it.
func (SigmoidOp) Forward(args []float64, buf []byte) float64 {
	y := sigmoid(args[0])
	capture(buf, y)
	return y
}

// Backward returns outputGrad * y * (1 - y).
func (SigmoidOp) Backward(outputGrad float64, buf []byte) []float64 {
	y := captured(buf, 0)
	return []float64{outputGrad * y * (1 - y)}
}

// Differential returns y (1 - y) dx.
func (SigmoidOp) Differential(args, tangents []float64) float64 {
	y := sigmoid(args[0])
	return y * (1 - y) * tangents[0]
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
