package ops

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The gradient at exactly zero is taken to be 0.
type ReLUOp struct {
	unary
}

func init() { Register(ReLUOp{}) }

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Forward returns max(0, x) and captures x.
func (ReLUOp) Forward(args []float64, buf []byte) float64 {
	capture(buf, args[0])
	return max(0, args[0])
}

// Backward masks outputGrad by x > 0.
func (ReLUOp) Backward(outputGrad float64, buf []byte) []float64 {
	if captured(buf, 0) > 0 {
		return []float64{outputGrad}
	}
	return []float64{0}
}

// Differential returns dx where x > 0, else 0.
func (ReLUOp) Differential(args, tangents []float64) float64 {
	if args[0] > 0 {
		return tangents[0]
	}
	return 0
}
