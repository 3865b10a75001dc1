package thunk

import (
	"github.com/pkg/errors"

	"github.com/born-ml/pullback/internal/vector"
)

// SubsetParameters narrows a pullback returning one cotangent per parameter
// to one returning only the parameters in s, in ascending order. The others
// are omitted, not zeroed.
func SubsetParameters[DR, D any](pb func(DR) []D, s IndexSubset) func(DR) []D {
	indices := s.Indices()
	return func(dr DR) []D {
		all := pb(dr)
		if len(all) != s.Capacity() {
			panic(errors.Wrapf(ErrIndexSubset, "thunk: pullback returned %d cotangents for subset of capacity %d",
				len(all), s.Capacity()))
		}
		out := make([]D, len(indices))
		for k, i := range indices {
			out[k] = all[i]
		}
		return out
	}
}

// ComponentPullback computes the cotangent of parameter i alone.
type ComponentPullback[DR, D any] func(dr DR, i int) D

// SubsetParametersLazy is SubsetParameters for a pullback that can compute
// each component separately: cotangents outside s are never computed.
func SubsetParametersLazy[DR, D any](pb ComponentPullback[DR, D], s IndexSubset) func(DR) []D {
	indices := s.Indices()
	return func(dr DR) []D {
		out := make([]D, len(indices))
		for k, i := range indices {
			out[k] = pb(dr, i)
		}
		return out
	}
}

// InoutPullback is the pullback of a function with one accumulating (inout)
// parameter. It reads the incoming cotangent from acc, writes the inout
// parameter's cotangent back into acc, and returns the cotangents of the
// remaining parameters in positional order.
type InoutPullback[DI, D any] func(acc *DI) []D

// SubsetParametersInout narrows an InoutPullback to the parameters in s.
// inoutIndex is the position of the accumulating parameter among all
// capacity parameters.
//
// When the inout parameter is selected, the caller's accumulator is passed
// through by reference. Otherwise the pullback accumulates into clone(*acc),
// which is discarded, and the caller's value is left untouched. clone must
// return a deep copy (vector.Vec.Clone for slices); it is never called when
// the inout parameter is selected.
func SubsetParametersInout[DI, D any](pb InoutPullback[DI, D], inoutIndex int, s IndexSubset, clone func(DI) DI) InoutPullback[DI, D] {
	if clone == nil {
		panic(errors.Wrap(ErrIndexSubset, "thunk: SubsetParametersInout: nil clone"))
	}
	if inoutIndex < 0 || inoutIndex >= s.Capacity() {
		panic(errors.Wrapf(ErrIndexSubset, "thunk: inout index %d out of range for capacity %d",
			inoutIndex, s.Capacity()))
	}
	var positions []int // index into pb's result for each selected non-inout parameter
	for _, i := range s.Indices() {
		switch {
		case i < inoutIndex:
			positions = append(positions, i)
		case i > inoutIndex:
			positions = append(positions, i-1)
		}
	}
	selected := s.Contains(inoutIndex)

	return func(acc *DI) []D {
		target := acc
		if !selected {
			tmp := clone(*acc)
			target = &tmp
		}
		rest := pb(target)
		if len(rest) != s.Capacity()-1 {
			panic(errors.Wrapf(ErrIndexSubset, "thunk: inout pullback returned %d cotangents, want %d",
				len(rest), s.Capacity()-1))
		}
		out := make([]D, len(positions))
		for k, p := range positions {
			out[k] = rest[p]
		}
		return out
	}
}

// SubsetResults adapts a pullback over all results of a function to one that
// takes cotangents only for the results in s. Unselected results are seeded
// with zero.
func SubsetResults[DR vector.Vector[DR], DA any](pb func([]DR) DA, s IndexSubset) func([]DR) DA {
	indices := s.Indices()
	return func(selected []DR) DA {
		if len(selected) != len(indices) {
			panic(errors.Wrapf(ErrIndexSubset, "thunk: %d result cotangents for subset %s", len(selected), s))
		}
		all := make([]DR, s.Capacity())
		for i := range all {
			all[i] = vector.Zero[DR]()
		}
		for k, i := range indices {
			all[i] = selected[k]
		}
		return pb(all)
	}
}
