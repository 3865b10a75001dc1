package tape

import "github.com/pkg/errors"

// Misuse of a Context indicates a defect in how a derivative graph was
// assembled, never a data-dependent condition. Every sentinel below is raised
// as a panic wrapped with github.com/pkg/errors, so a recovering caller can
// match it with errors.Is.
var (
	// ErrOutOfOrder is raised when a subcontext other than the most recent
	// live one is popped.
	ErrOutOfOrder = errors.New("subcontext popped out of order")

	// ErrLiveSubcontexts is raised when a context is destroyed while
	// subcontexts remain un-retired.
	ErrLiveSubcontexts = errors.New("context destroyed with live subcontexts")

	// ErrInvalidState is raised when an operation is not permitted in the
	// context's current state, such as allocating after the reverse pass began.
	ErrInvalidState = errors.New("invalid context state")

	// ErrCapacity is raised when more bytes are stored into a subcontext than
	// it reserved.
	ErrCapacity = errors.New("subcontext capacity exceeded")

	// ErrRetired is raised when a retired subcontext is used again.
	ErrRetired = errors.New("subcontext already retired")
)
