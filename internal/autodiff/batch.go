package autodiff

import (
	"github.com/born-ml/pullback/internal/parallel"
	"github.com/born-ml/pullback/internal/tape"
	"github.com/born-ml/pullback/internal/vector"
)

// Config controls batch evaluation.
type Config struct {
	Context  tape.Config     // Arena settings for each evaluation's context.
	Parallel parallel.Config // Fan-out across workers.
}

// DefaultConfig returns the default arena settings with CPU-count parallelism.
func DefaultConfig() Config {
	return Config{
		Context:  tape.DefaultConfig(),
		Parallel: parallel.DefaultConfig(),
	}
}

// Gradients returns the gradient of f at every point of xs.
//
// Each point is evaluated with its own context, so evaluations may run on
// different goroutines. f, and any state its closures reach, must tolerate
// concurrent calls when cfg.Parallel is enabled.
func Gradients[A any, DA vector.Vector[DA], R Scalar[R]](xs []A, f Function[A, R, DA, R], cfg Config) []DA {
	_, grads := ValuesWithGradients(xs, f, cfg)
	return grads
}

// ValuesWithGradients is Gradients that also returns the values.
func ValuesWithGradients[A any, DA vector.Vector[DA], R Scalar[R]](xs []A, f Function[A, R, DA, R], cfg Config) ([]R, []DA) {
	type result struct {
		value R
		grad  DA
	}
	results := parallel.Map(xs, func(x A) result {
		y, pb := valueWithPullback(x, f, cfg.Context)
		return result{value: y, grad: pb(R(1))}
	}, cfg.Parallel)

	values := make([]R, len(xs))
	grads := make([]DA, len(xs))
	for i, r := range results {
		values[i], grads[i] = r.value, r.grad
	}
	return values, grads
}

// MeanGradient averages the gradients of f over xs, the usual reduction for
// a minibatch loss.
func MeanGradient[A any, DA vector.Vector[DA], R Scalar[R]](xs []A, f Function[A, R, DA, R], cfg Config) DA {
	if len(xs) == 0 {
		return vector.Zero[DA]()
	}
	return vector.Sum(Gradients(xs, f, cfg)...).Scale(1 / float64(len(xs)))
}
