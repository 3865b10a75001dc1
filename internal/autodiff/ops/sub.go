package ops

// SubOp represents subtraction: output = a - b.
//
// Backward pass:
//   - grad_a = outputGrad
//   - grad_b = -outputGrad
type SubOp struct {
	binary
	linear
}

func init() { Register(SubOp{}) }

// Name returns "sub".
func (SubOp) Name() string { return "sub" }

// Forward returns a - b.
func (SubOp) Forward(args []float64, _ []byte) float64 { return args[0] - args[1] }

// Backward returns [outputGrad, -outputGrad].
func (SubOp) Backward(outputGrad float64, _ []byte) []float64 {
	return []float64{outputGrad, -outputGrad}
}

// Differential returns da - db.
func (SubOp) Differential(_, tangents []float64) float64 { return tangents[0] - tangents[1] }
