package ops

import "math"

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
type CosOp struct {
	unary
}

func init() { Register(CosOp{}) }

// Name returns "cos".
func (CosOp) Name() string { return "cos" }

// Forward returns cos(x) and captures x.
func (CosOp) Forward(args []float64, buf []byte) float64 {
	capture(buf, args[0])
	return math.Cos(args[0])
}

// Backward computes input gradient for cos.
func (CosOp) Backward(outputGrad float64, buf []byte) []float64 {
	return []float64{-outputGrad * math.Sin(captured(buf, 0))}
}

// Differential returns -sin(x) dx.
func (CosOp) Differential(args, tangents []float64) float64 {
	return -math.Sin(args[0]) * tangents[0]
}
