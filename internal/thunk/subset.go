// Package thunk adapts derivative functions to the shape a call site needs.
//
// Subset thunks narrow a pullback to the parameters (or results) actually
// being differentiated. Transposes turn a linear map into its adjoint, so a
// derivative that is itself linear can be pulled back without recording a
// closure.
package thunk

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// ErrIndexSubset is raised for malformed index subsets and for pullbacks
// whose component count does not match the subset's capacity.
var ErrIndexSubset = errors.New("invalid index subset")

// IndexSubset is a set of parameter or result positions drawn from
// 0..Capacity()-1. It is immutable once built; copies share their bits.
type IndexSubset struct {
	capacity int
	bits     *bitset.BitSet
}

// NewIndexSubset returns the subset of 0..capacity-1 holding indices, which
// must be strictly ascending.
func NewIndexSubset(capacity int, indices ...int) IndexSubset {
	if capacity < 0 {
		panic(errors.Wrapf(ErrIndexSubset, "thunk: negative capacity %d", capacity))
	}
	s := IndexSubset{capacity: capacity, bits: bitset.New(uint(capacity))}
	prev := -1
	for _, i := range indices {
		if i <= prev {
			panic(errors.Wrapf(ErrIndexSubset, "thunk: indices %v not strictly ascending", indices))
		}
		if i >= capacity {
			panic(errors.Wrapf(ErrIndexSubset, "thunk: index %d out of range for capacity %d", i, capacity))
		}
		s.bits.Set(uint(i))
		prev = i
	}
	return s
}

// FullSubset returns every index of 0..capacity-1.
func FullSubset(capacity int) IndexSubset {
	indices := make([]int, capacity)
	for i := range indices {
		indices[i] = i
	}
	return NewIndexSubset(capacity, indices...)
}

// Capacity returns the number of positions the subset is drawn from.
func (s IndexSubset) Capacity() int { return s.capacity }

// Contains reports whether i is in the subset.
func (s IndexSubset) Contains(i int) bool {
	if i < 0 || i >= s.capacity {
		return false
	}
	return s.bits.Test(uint(i))
}

// Len returns the number of indices in the subset.
func (s IndexSubset) Len() int { return int(s.set().Count()) }

// Indices returns the members in ascending order.
func (s IndexSubset) Indices() []int {
	b := s.set()
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Equal reports whether s and o hold the same indices. Capacity is ignored.
func (s IndexSubset) Equal(o IndexSubset) bool {
	return s.set().SymmetricDifferenceCardinality(o.set()) == 0
}

// IsSubsetOf reports whether every index of s is in o.
func (s IndexSubset) IsSubsetOf(o IndexSubset) bool {
	return o.set().IsSuperSet(s.set())
}

// String formats the subset as "{0, 2}".
func (s IndexSubset) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, idx := range s.Indices() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteByte('}')
	return b.String()
}

// set returns the member bits; the zero IndexSubset is empty.
func (s IndexSubset) set() *bitset.BitSet {
	if s.bits == nil {
		return bitset.New(0)
	}
	return s.bits
}
