// SPDX-License-Identifier: MIT

package matrix

import "math"

// Method selects an eigen kernel.
type Method int

const (
	// MethodAuto uses SymmetricEigen for real input and JacobiHermitian otherwise.
	MethodAuto Method = iota
	// MethodJacobi always uses JacobiHermitian.
	MethodJacobi
	// MethodSymmetric always uses SymmetricEigen (real input only).
	MethodSymmetric
)

// String returns the method name used in configuration files.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodJacobi:
		return "jacobi"
	case MethodSymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// ParseMethod maps a configuration name to a Method.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "", "auto":
		return MethodAuto, true
	case "jacobi":
		return MethodJacobi, true
	case "symmetric":
		return MethodSymmetric, true
	default:
		return MethodAuto, false
	}
}

// Defaults.
const (
	// DefaultTolerance is the relative off-diagonal norm at which Jacobi stops,
	// and the absolute tolerance of the Hermiticity and realness checks.
	DefaultTolerance = 1e-12

	// DefaultMaxSweeps bounds the number of full Jacobi sweeps.
	DefaultMaxSweeps = 100
)

const (
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite and > 0"
	panicMaxSweepsInvalid = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Options holds the numeric policy of the eigen kernels.
type Options struct {
	method    Method
	tolerance float64
	maxSweeps int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MethodAuto with default tolerance and sweep limit.
func DefaultOptions() Options {
	return Options{method: MethodAuto, tolerance: DefaultTolerance, maxSweeps: DefaultMaxSweeps}
}

// WithMethod selects the kernel.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithTolerance sets the convergence/validation tolerance. Panics if tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxSweeps bounds the Jacobi sweeps. Panics if sweeps <= 0.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// Method returns the selected kernel.
func (o Options) Method() Method { return o.method }

// Tolerance returns the numeric tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
