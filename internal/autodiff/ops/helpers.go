package ops

import (
	"github.com/born-ml/pullback/internal/tape"
)

// unary is embedded by single-input primitives capturing one scalar.
type unary struct{}

func (unary) Arity() int       { return 1 }
func (unary) CaptureSize() int { return tape.Float64Bytes(1) }

// binary is embedded by two-input primitives.
type binary struct{}

func (binary) Arity() int { return 2 }

// linear is embedded by primitives whose derivative does not depend on the
// inputs; they capture nothing.
type linear struct{}

func (linear) CaptureSize() int { return 0 }

func capture(buf []byte, vs ...float64) { tape.PutFloat64s(buf, vs...) }

func captured(buf []byte, i int) float64 { return tape.Float64(buf, i) }
