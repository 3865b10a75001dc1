// Package parallel fans independent evaluations out across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4, // A gradient evaluation per item is already coarse.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
//
// A panic in any f(i) is re-raised on the calling goroutine after all
// workers finish, so callers can recover it as if f ran inline.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.NumWorkers
	if workers <= 0 {
		workers = 1
	}
	if !cfg.Enabled || workers == 1 || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var (
		wg        sync.WaitGroup
		panicOnce sync.Once
		recovered any
	)
	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() { recovered = r })
				}
			}()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()

	if recovered != nil {
		panic(recovered)
	}
}

// Map returns f applied to every element of xs, preserving order.
func Map[T, U any](xs []T, f func(T) U, cfg Config) []U {
	out := make([]U, len(xs))
	For(len(xs), func(i int) {
		out[i] = f(xs[i])
	}, cfg)
	return out
}
