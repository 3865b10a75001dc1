package ops

import "github.com/born-ml/pullback/internal/tape"

// DivOp represents division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * output / b
//
// Division by zero follows IEEE semantics.
type DivOp struct {
	binary
}

func init() { Register(DivOp{}) }

// Name returns "div".
func (DivOp) Name() string { return "div" }

// CaptureSize holds the divisor and the output.
func (DivOp) CaptureSize() int { return tape.Float64Bytes(2) }

// Forward returns a / b and captures [b, a/b].
func (DivOp) Forward(args []float64, buf []byte) float64 {
	y := args[0] / args[1]
	capture(buf, args[1], y)
	return y
}

// Backward computes input gradients for division.
func (DivOp) Backward(outputGrad float64, buf []byte) []float64 {
	b, y := captured(buf, 0), captured(buf, 1)
	return []float64{outputGrad / b, -outputGrad * y / b}
}

// Differential returns (da - y db) / b.
func (DivOp) Differential(args, tangents []float64) float64 {
	y := args[0] / args[1]
	return (tangents[0] - y*tangents[1]) / args[1]
}
