// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tape exposes the linear-map context that holds pullback state
// during a gradient evaluation.
//
// Most users never touch a Context: the autodiff operators create one per
// evaluation. It is exported for derivative authors who record their own
// pullback state.
//
// Example:
//
//	ctx := tape.New(16, tape.DefaultConfig())
//	top := ctx.Frame(16)
//	tape.PutFloat64s(top.Bytes(), x, y)
//	...
//	buf, _ := ctx.Pop(top)
//	ctx.Destroy()
package tape

import "github.com/born-ml/pullback/internal/tape"

// Context is the arena for one top-level gradient evaluation.
type Context = tape.Context

// Subcontext is one LIFO region of a Context.
type Subcontext = tape.Subcontext

// Config controls the arena backing a Context.
type Config = tape.Config

// State is the lifecycle stage of a Context.
type State = tape.State

// Context states.
const (
	Open      = tape.Open
	Draining  = tape.Draining
	Closed    = tape.Closed
	Destroyed = tape.Destroyed
)

// Float64Size is the number of bytes one captured float64 occupies.
const Float64Size = tape.Float64Size

// Errors raised, as panics, on context misuse.
var (
	ErrOutOfOrder      = tape.ErrOutOfOrder
	ErrLiveSubcontexts = tape.ErrLiveSubcontexts
	ErrInvalidState    = tape.ErrInvalidState
	ErrCapacity        = tape.ErrCapacity
	ErrRetired         = tape.ErrRetired
)

// New creates a context whose top-level subcontext reserves topLevelSize bytes.
func New(topLevelSize int, cfg Config) *Context { return tape.New(topLevelSize, cfg) }

// DefaultConfig returns the default arena configuration.
func DefaultConfig() Config { return tape.DefaultConfig() }

// PutFloat64s stores vs in consecutive slots of buf.
func PutFloat64s(buf []byte, vs ...float64) { tape.PutFloat64s(buf, vs...) }

// Float64s loads n consecutive slots of buf.
func Float64s(buf []byte, n int) []float64 { return tape.Float64s(buf, n) }

// PutFloat64 stores v in slot i of buf.
func PutFloat64(buf []byte, i int, v float64) { tape.PutFloat64(buf, i, v) }

// Float64 loads slot i of buf.
func Float64(buf []byte, i int) float64 { return tape.Float64(buf, i) }
