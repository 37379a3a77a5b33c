// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run results used as the "result" label.
const (
	resultSuccess     = "success"
	resultNumerical   = "numerical_failure"
	resultInvalid     = "invalid_hamiltonian"
	resultCallback    = "callback_error"
	resultUninitState = "not_initialized"
)

var (
	// runsTotal counts Run calls by result.
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tbdiag_solver_runs_total",
		Help: "Total Run calls by result",
	}, []string{"result"})

	runIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tbdiag_solver_run_iterations",
		Help:    "Update/solve passes per Run",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})

	blockDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tbdiag_solver_block_duration_seconds",
		Help:    "Assembly plus diagonalization time of one block",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	})

	blockSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tbdiag_solver_block_size",
		Help:    "Block dimensions seen by Init",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
