package ops

// AddOp represents addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	binary
	linear
}

func init() { Register(AddOp{}) }

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Forward returns a + b.
func (AddOp) Forward(args []float64, _ []byte) float64 { return args[0] + args[1] }

// Backward passes outputGrad to both inputs.
func (AddOp) Backward(outputGrad float64, _ []byte) []float64 {
	return []float64{outputGrad, outputGrad}
}

// Differential returns da + db.
func (AddOp) Differential(_, tangents []float64) float64 { return tangents[0] + tangents[1] }
