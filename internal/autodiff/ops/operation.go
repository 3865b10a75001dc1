// Package ops is the registration table of differentiable scalar primitives.
//
// Each primitive implements the Operation interface, which provides:
//   - Forward pass: computes the value and writes the scalars its pullback
//     needs into a capture buffer
//   - Backward pass: reads the capture buffer and returns input gradients
//     given the output gradient
//   - Differential: the forward-mode derivative (JVP) at given inputs
//
// Primitives register themselves in init() and are looked up by name when a
// differentiable function is built from them.
//
// Supported operations:
//   - add, sub, mul, div: d(a*b)/da = b, d(a*b)/db = a, d(a/b)/db = -a/b²
//   - neg: d(-x)/dx = -1
//   - sin, cos, exp, log, sqrt, rsqrt, tanh
//   - sigmoid, relu, silu: activation functions
package ops

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Operation is a differentiable scalar primitive.
type Operation interface {
	// Name is the registry key.
	Name() string

	// Arity is the number of scalar inputs.
	Arity() int

	// CaptureSize is the number of bytes Forward writes into capture.
	CaptureSize() int

	// Forward returns the value at args and stores what Backward needs.
	Forward(args []float64, capture []byte) float64

	// Backward returns one gradient per input given the output gradient and the
	// buffer Forward filled.
	//
	// Example for AddOp:
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(outputGrad float64, capture []byte) []float64

	// Differential returns the directional derivative at args along tangents.
	Differential(args, tangents []float64) float64
}

// ErrUnknownPrimitive is raised by MustLookup for a name with no registration.
var ErrUnknownPrimitive = errors.New("unknown primitive")

var (
	registryMu sync.RWMutex
	registry   = map[string]Operation{}
)

// Register adds op to the table. Registering a name twice panics.
func Register(op Operation) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[op.Name()]; dup {
		panic(errors.Errorf("ops: primitive %q registered twice", op.Name()))
	}
	registry[op.Name()] = op
}

// Lookup returns the primitive registered under name.
func Lookup(name string) (Operation, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	op, ok := registry[name]
	return op, ok
}

// MustLookup is like Lookup but panics with ErrUnknownPrimitive.
func MustLookup(name string) Operation {
	op, ok := Lookup(name)
	if !ok {
		panic(errors.Wrapf(ErrUnknownPrimitive, "ops: %q", name))
	}
	return op
}

// Names returns the registered primitive names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
