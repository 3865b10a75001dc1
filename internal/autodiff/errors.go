package autodiff

import "github.com/pkg/errors"

var (
	// ErrPullbackConsumed is raised when a top-level pullback is invoked a
	// second time. Its context was released by the first call.
	ErrPullbackConsumed = errors.New("pullback already invoked")

	// ErrNoDifferential is raised when forward mode is requested for a
	// function that has no JVP.
	ErrNoDifferential = errors.New("function has no differential")
)
