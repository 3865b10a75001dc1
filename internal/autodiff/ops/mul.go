package ops

import "github.com/born-ml/pullback/internal/tape"

// MulOp represents multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	binary
}

func init() { Register(MulOp{}) }

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// CaptureSize holds both inputs.
func (MulOp) CaptureSize() int { return tape.Float64Bytes(2) }

// Forward returns a * b and captures [a, b].
func (MulOp) Forward(args []float64, buf []byte) float64 {
	capture(buf, args[0], args[1])
	return args[0] * args[1]
}

// Backward computes input gradients for multiplication.
func (MulOp) Backward(outputGrad float64, buf []byte) []float64 {
	a, b := captured(buf, 0), captured(buf, 1)
	return []float64{outputGrad * b, outputGrad * a}
}

// Differential returns b da + a db.
func (MulOp) Differential(args, tangents []float64) float64 {
	return args[1]*tangents[0] + args[0]*tangents[1]
}
