// Package tape implements the linear-map context: a LIFO arena that holds the
// state captured by pullbacks during one top-level gradient evaluation.
//
// A forward pass pushes one subcontext per nested differentiated call that
// needs escaping storage. The reverse pass pops them in exactly the opposite
// order. The arena is a list of slabs with a bump pointer; slabs never move,
// so every buffer handed out keeps a fixed address until the context is
// destroyed. A pop only retires its subcontext: no push can follow a pop, so
// the memory is reclaimed all at once by Destroy.
//
// Basic usage:
//
//	ctx := tape.New(16, tape.DefaultConfig())
//	top := ctx.Frame(16)          // claims the top-level subcontext
//	sub := ctx.Allocate(8)        // nested call
//	...
//	buf, payload := ctx.Pop(sub)  // reverse pass, innermost first
//	buf, payload = ctx.Pop(top)
//	ctx.Destroy()
//
// A Context is owned by one evaluation and is not safe for concurrent use.
// Nested differentiation (differentiating inside a pullback) uses its own
// Context.
package tape

import (
	"fmt"

	"github.com/pkg/errors"
)

// State is the lifecycle stage of a Context.
type State int

const (
	// Open accepts new subcontexts; the forward pass is running.
	Open State = iota
	// Draining is entered on the first pop; subcontexts may only be retired.
	Draining
	// Closed means every subcontext has been retired.
	Closed
	// Destroyed means the arena memory has been released.
	Destroyed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Draining:
		return "draining"
	case Closed:
		return "closed"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Context is the arena for one top-level gradient evaluation.
type Context struct {
	cfg   Config
	slabs []*slab // the last slab receives new buffers

	stack   []*Subcontext
	top     *Subcontext
	claimed bool
	state   State
}

// New creates a context whose top-level subcontext reserves topLevelSize
// bytes. Zero fields of cfg take their defaults, so Config{} behaves like
// DefaultConfig(); an invalid cfg panics.
func New(topLevelSize int, cfg Config) *Context {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		panic(errors.Wrap(err, "tape: New"))
	}
	if topLevelSize < 0 {
		panic(errors.Wrapf(ErrCapacity, "tape: New: negative top-level size %d", topLevelSize))
	}
	c := &Context{cfg: cfg, state: Open}
	c.top = c.push(topLevelSize)
	return c
}

// TopLevel returns the top-level subcontext. Its buffer stays valid until
// Destroy.
func (c *Context) TopLevel() *Subcontext { return c.top }

// Allocate pushes a new subcontext of size bytes and returns it.
// It panics with ErrInvalidState once the reverse pass has begun.
func (c *Context) Allocate(size int) *Subcontext {
	if c.state != Open {
		panic(errors.Wrapf(ErrInvalidState, "tape: Allocate(%d) in state %s", size, c.state))
	}
	if size < 0 {
		panic(errors.Wrapf(ErrCapacity, "tape: Allocate: negative size %d", size))
	}
	return c.push(size)
}

// Frame returns storage for the next differentiated call. The first call
// claims the top-level subcontext, which must have room for size bytes;
// later calls allocate.
func (c *Context) Frame(size int) *Subcontext {
	if c.claimed {
		return c.Allocate(size)
	}
	if c.state != Open {
		panic(errors.Wrapf(ErrInvalidState, "tape: Frame(%d) in state %s", size, c.state))
	}
	if size > c.top.Size() {
		panic(errors.Wrapf(ErrCapacity, "tape: Frame: %d bytes requested, top-level reserves %d",
			size, c.top.Size()))
	}
	c.claimed = true
	c.top.buf = c.top.buf[:size]
	return c.top
}

// Last returns the most recently pushed live subcontext, or nil.
func (c *Context) Last() *Subcontext {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Pop retires s, which must be the most recently pushed live subcontext, and
// returns its buffer and payload. The buffer stays readable until Destroy.
func (c *Context) Pop(s *Subcontext) ([]byte, any) {
	if s == nil || s.ctx != c {
		panic(errors.Wrap(ErrOutOfOrder, "tape: Pop: subcontext belongs to another context"))
	}
	if s.retired {
		panic(errors.Wrap(ErrRetired, "tape: Pop"))
	}
	if last := c.Last(); last != s {
		panic(errors.Wrapf(ErrOutOfOrder, "tape: Pop: %d-byte subcontext is not the last of %d live",
			s.Size(), len(c.stack)))
	}

	c.stack = c.stack[:len(c.stack)-1]
	s.retired = true

	c.state = Draining
	if len(c.stack) == 0 {
		c.state = Closed
	}
	return s.buf, s.payload
}

// Destroy releases the arena. It panics with ErrLiveSubcontexts unless every
// subcontext has been popped.
func (c *Context) Destroy() {
	switch {
	case c.state == Destroyed:
		panic(errors.Wrap(ErrInvalidState, "tape: Destroy called twice"))
	case len(c.stack) > 0:
		panic(errors.Wrapf(ErrLiveSubcontexts, "tape: Destroy: %d live", len(c.stack)))
	}
	for _, s := range c.slabs {
		putSlab(s, !c.cfg.NoPoison)
	}
	c.slabs = nil
	c.state = Destroyed
}

// State returns the lifecycle stage.
func (c *Context) State() State { return c.state }

// Live returns the number of un-retired subcontexts.
func (c *Context) Live() int { return len(c.stack) }

// RefCount returns the number of references keeping the arena alive: one for
// the owner plus one per live subcontext. It is zero after Destroy.
func (c *Context) RefCount() int {
	if c.state == Destroyed {
		return 0
	}
	return 1 + len(c.stack)
}

// Config returns the configuration in effect.
func (c *Context) Config() Config { return c.cfg }

func (c *Context) push(size int) *Subcontext {
	s := &Subcontext{ctx: c, prev: c.Last()}
	if size > 0 {
		s.buf = c.carve(size)
	}
	c.stack = append(c.stack, s)
	return s
}

// carve takes size bytes from the last slab, starting a new slab when it is
// full. Requests larger than SlabSize get a slab of their own.
func (c *Context) carve(size int) []byte {
	align := c.cfg.Alignment
	if n := len(c.slabs); n > 0 && c.slabs[n-1].fits(size, align) {
		return c.slabs[n-1].carve(size, align)
	}
	s := getSlab(max(size, c.cfg.SlabSize))
	c.slabs = append(c.slabs, s)
	return s.carve(size, align)
}
