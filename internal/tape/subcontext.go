package tape

import "github.com/pkg/errors"

// Subcontext is one LIFO region of a Context holding the state captured by a
// single differentiated call.
//
// A Subcontext carries a fixed-address byte buffer for scalar captures and a
// payload slot for values that hold Go pointers (closures, slices), which must
// not be stored as raw bytes.
type Subcontext struct {
	ctx     *Context
	buf     []byte
	payload any
	prev    *Subcontext
	retired bool
}

// Bytes returns the buffer reserved for this subcontext.
func (s *Subcontext) Bytes() []byte {
	s.mustBeLive("Bytes")
	return s.buf
}

// Size returns the number of bytes reserved.
func (s *Subcontext) Size() int { return len(s.buf) }

// SetPayload stores v alongside the buffer. It is returned by Context.Pop.
func (s *Subcontext) SetPayload(v any) {
	s.mustBeLive("SetPayload")
	s.payload = v
}

// Payload returns the value stored by SetPayload.
func (s *Subcontext) Payload() any { return s.payload }

// Previous returns the subcontext pushed immediately before this one, or nil
// for the top-level subcontext.
func (s *Subcontext) Previous() *Subcontext { return s.prev }

// Retired reports whether the subcontext has been popped.
func (s *Subcontext) Retired() bool { return s.retired }

// Context returns the context that owns s.
func (s *Subcontext) Context() *Context { return s.ctx }

func (s *Subcontext) mustBeLive(op string) {
	if s.retired {
		panic(errors.Wrapf(ErrRetired, "tape: %s", op))
	}
}
