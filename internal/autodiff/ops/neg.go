package ops

// NegOp represents negation: output = -x.
type NegOp struct {
	linear
}

func init() { Register(NegOp{}) }

// Name returns "neg".
func (NegOp) Name() string { return "neg" }

// Arity returns 1.
func (NegOp) Arity() int { return 1 }

// Forward returns -x.
func (NegOp) Forward(args []float64, _ []byte) float64 { return -args[0] }

// Backward returns [-outputGrad].
func (NegOp) Backward(outputGrad float64, _ []byte) []float64 { return []float64{-outputGrad} }

// Differential returns -dx.
func (NegOp) Differential(_, tangents []float64) float64 { return -tangents[0] }
