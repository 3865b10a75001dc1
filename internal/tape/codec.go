package tape

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Float64Size is the number of bytes one captured float64 occupies.
const Float64Size = 8

// Float64Bytes returns the buffer size needed to capture n float64 values.
func Float64Bytes(n int) int { return n * Float64Size }

// PutFloat64 stores v in slot i of buf, little-endian.
func PutFloat64(buf []byte, i int, v float64) {
	checkSlot(buf, i, "PutFloat64")
	binary.LittleEndian.PutUint64(buf[i*Float64Size:], math.Float64bits(v))
}

// Float64 loads slot i of buf.
func Float64(buf []byte, i int) float64 {
	checkSlot(buf, i, "Float64")
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[i*Float64Size:]))
}

// PutFloat64s stores vs in consecutive slots starting at 0.
func PutFloat64s(buf []byte, vs ...float64) {
	for i, v := range vs {
		PutFloat64(buf, i, v)
	}
}

// Float64s loads n consecutive slots starting at 0.
func Float64s(buf []byte, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = Float64(buf, i)
	}
	return out
}

func checkSlot(buf []byte, i int, op string) {
	if i < 0 || (i+1)*Float64Size > len(buf) {
		panic(errors.Wrapf(ErrCapacity, "tape: %s: slot %d in %d-byte buffer", op, i, len(buf)))
	}
}
