package ops

// SiLUOp represents the SiLU (Swish) activation: y = x * sigmoid(x).
//
// Backward pass:
//   - d(SiLU(x))/dx = sigmoid(x) + x * sigmoid(x) * (1 - sigmoid(x))
//     = sigmoid(x) * (1 + x * (1 - sigmoid(x)))
type SiLUOp struct {
	unary
}

func init() { Register(SiLUOp{}) }

// Name returns "silu".
func (SiLUOp) Name() string { return "silu" }

// Forward returns x * sigmoid(x) and captures x.
func (SiLUOp) Forward(args []float64, buf []byte) float64 {
	capture(buf, args[0])
	return args[0] * sigmoid(args[0])
}

// Backward computes input gradient for SiLU.
func (SiLUOp) Backward(outputGrad float64, buf []byte) []float64 {
	return []float64{outputGrad * siluDerivative(captured(buf, 0))}
}

// Differential returns SiLU'(x) dx.
func (SiLUOp) Differential(args, tangents []float64) float64 {
	return siluDerivative(args[0]) * tangents[0]
}

func siluDerivative(x float64) float64 {
	s := sigmoid(x)
	return s * (1 + x*(1-s))
}
