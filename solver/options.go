// SPDX-License-Identifier: MIT

package solver

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/tbdiag/matrix"
)

// DefaultMaxIterations bounds the self-consistency loop.
const DefaultMaxIterations = 50

// DefaultParallel keeps block processing on the caller's goroutine.
const DefaultParallel = false

const (
	panicMaxIterationsInvalid = "solver: WithMaxIterations: n must be >= 0"
	panicWorkersInvalid       = "solver: WithWorkers: n must be > 0"
)

// Options configures a BlockDiagonalizer.
type Options struct {
	maxIterations int
	parallel      bool
	workers       int
	callback      SelfConsistencyCallback
	logger        *slog.Logger
	eigen         []matrix.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: 50 iterations, sequential, GOMAXPROCS workers, slog.Default().
func DefaultOptions() Options {
	return Options{
		maxIterations: DefaultMaxIterations,
		parallel:      DefaultParallel,
		workers:       runtime.GOMAXPROCS(0),
	}
}

// WithMaxIterations bounds the self-consistency loop; 0 disables it (one pass,
// the callback is never invoked). Panics on negative n.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithParallel enables concurrent processing of blocks.
func WithParallel(on bool) Option {
	return func(o *Options) { o.parallel = on }
}

// WithWorkers bounds the number of blocks processed at once in parallel mode.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSelfConsistency installs the convergence callback; nil removes it.
func WithSelfConsistency(cb SelfConsistencyCallback) Option {
	return func(o *Options) { o.callback = cb }
}

// WithLogger sets the structured logger; nil selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithEigenOptions forwards numeric policy (method, tolerance, sweeps) to the matrix kernels.
func WithEigenOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.eigen = append(o.eigen, opts...) }
}

// MaxIterations returns the configured iteration bound.
func (o Options) MaxIterations() int { return o.maxIterations }

// Parallel reports whether blocks run concurrently.
func (o Options) Parallel() bool { return o.parallel }

// Workers returns the parallel worker bound.
func (o Options) Workers() int { return o.workers }

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
