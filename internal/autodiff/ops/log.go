package ops

import "math"

// LogOp represents the natural logarithm: y = log(x).
//
// Backward pass:
//   - d(log(x))/dx = 1/x
//
// Non-positive inputs follow IEEE semantics (NaN, -Inf).
type LogOp struct {
	unary
}

func init() { Register(LogOp{}) }

// Name returns "log".
func (LogOp) Name() string { return "log" }

// Forward returns log(x) and captures x.
func (LogOp) Forward(args []float64, buf []byte) float64 {
	capture(buf, args[0])
	return math.Log(args[0])
}

// Backward returns outputGrad / x.
func (LogOp) Backward(outputGrad float64, buf []byte) []float64 {
	return []float64{outputGrad / captured(buf, 0)}
}

// Differential returns dx / x.
func (LogOp) Differential(args, tangents []float64) float64 { return tangents[0] / args[0] }
