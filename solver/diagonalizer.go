// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/tbdiag/matrix"
	"golang.org/x/sync/errgroup"
)

// BlockDiagonalizer solves a block-diagonal Hamiltonian by dense
// diagonalization of every block.
type BlockDiagonalizer struct {
	model Model
	opts  Options
	state State

	// Fixed by Init.
	numBlocks          int
	blockSizes         []int // states per block
	blockFirst         []int // first global state (= eigenvalue offset) per block
	eigenVectorOffsets []int // offset into eigenVectors per block
	stateToBlock       []int // global state -> block

	// Arenas owned by the solver, reallocated by Init.
	hamiltonian  []complex128 // Σ size², row-major per block
	eigenValues  []float64    // N
	eigenVectors []complex128 // Σ size², column-major per block

	iterations int
	converged  bool
}

// New returns an uninitialized solver for m.
func New(m Model, opts ...Option) (*BlockDiagonalizer, error) {
	if m == nil {
		return nil, solverErrorf(opNew, ErrNilModel)
	}

	return &BlockDiagonalizer{model: m, opts: gatherOptions(opts...)}, nil
}

// Options returns the solver configuration.
func (bd *BlockDiagonalizer) Options() Options { return bd.opts }

// State returns the lifecycle stage.
func (bd *BlockDiagonalizer) State() State { return bd.state }

// Iterations returns the number of passes performed by the last Run.
func (bd *BlockDiagonalizer) Iterations() int { return bd.iterations }

// Converged reports whether the last Run stopped because the callback reported convergence.
func (bd *BlockDiagonalizer) Converged() bool { return bd.converged }

// BasisSize returns the number of states (0 before Init).
func (bd *BlockDiagonalizer) BasisSize() int { return len(bd.eigenValues) }

// NumBlocks returns the number of blocks (0 before Init).
func (bd *BlockDiagonalizer) NumBlocks() int { return bd.numBlocks }

// Init reads the block structure of the model and (re)allocates the arenas.
// Call it before the first Run and again whenever the model's basis changes.
//
// Errors: ErrModelNotFinalized, ErrNonContiguousBlock, model lookup errors.
// Complexity: O(N) time, O(Σ size²) memory.
func (bd *BlockDiagonalizer) Init() error {
	if !bd.model.Finalized() {
		return solverErrorf(opInit, ErrModelNotFinalized)
	}
	n := bd.model.BasisSize()

	// Stage 1: renumber model blocks by first appearance and check contiguity.
	stateToBlock := make([]int, n)
	var sizes, firsts []int
	seen := make(map[int]int)
	prev := -1
	for pos := 0; pos < n; pos++ {
		mb, err := bd.model.BlockOf(pos)
		if err != nil {
			return solverErrorf(opInit, err)
		}
		if mb != prev {
			if _, dup := seen[mb]; dup {
				return solverErrorf(opInit, fmt.Errorf("block %d resumes at position %d: %w", mb, pos, ErrNonContiguousBlock))
			}
			seen[mb] = len(sizes)
			sizes = append(sizes, 0)
			firsts = append(firsts, pos)
			prev = mb
		}
		b := seen[mb]
		stateToBlock[pos] = b
		sizes[b]++
	}

	// Stage 2: eigenvector offsets and arena sizes. Block b owns
	// eigenValues[blockFirst[b] : blockFirst[b]+size] and
	// eigenVectors[offset : offset+size²], likewise for hamiltonian.
	offsets := make([]int, len(sizes))
	total := 0
	largest := 0
	for b, sz := range sizes {
		offsets[b] = total
		total += sz * sz
		largest = max(largest, sz)
		blockSize.Observe(float64(sz))
	}

	// Stage 3: publish tables, reallocate arenas, reset run state.
	bd.numBlocks = len(sizes)
	bd.blockSizes, bd.blockFirst, bd.eigenVectorOffsets = sizes, firsts, offsets
	bd.stateToBlock = stateToBlock
	bd.hamiltonian = make([]complex128, total)
	bd.eigenValues = make([]float64, n)
	bd.eigenVectors = make([]complex128, total)
	bd.iterations, bd.converged = 0, false
	bd.state = StateInitialized

	bd.opts.logger.Info("block diagonalizer initialized",
		slog.Int("basis_size", n),
		slog.Int("blocks", bd.numBlocks),
		slog.Int("largest_block", largest),
		slog.Int("eigenvector_len", total),
		slog.Bool("parallel", bd.opts.parallel),
	)

	return nil
}

// Run solves the model once, or iterates to self-consistency when a callback
// is installed and MaxIterations > 0. See package doc.
func (bd *BlockDiagonalizer) Run() error {
	if bd.state == StateUninitialized {
		runsTotal.WithLabelValues(resultUninitState).Inc()
		return solverErrorf(opRun, ErrNotInitialized)
	}
	log := bd.opts.logger.With(slog.String("run_id", uuid.NewString()))
	bd.iterations, bd.converged = 0, false

	cb := bd.opts.callback
	if cb == nil || bd.opts.maxIterations == 0 {
		if err := bd.pass(log); err != nil {
			return bd.fail(log, err)
		}
		bd.iterations = 1
		runIterations.Observe(1)
		runsTotal.WithLabelValues(resultSuccess).Inc()

		return nil
	}

	for it := 1; it <= bd.opts.maxIterations; it++ {
		start := time.Now()
		if err := bd.pass(log); err != nil {
			return bd.fail(log, err)
		}
		bd.iterations = it

		ok, err := cb(bd)
		if err != nil {
			log.Error("self-consistency callback aborted", slog.Int("iteration", it), slog.Any("error", err))
			runsTotal.WithLabelValues(resultCallback).Inc()
			return solverErrorf(opRun, fmt.Errorf("iteration %d: %w: %w", it, ErrCallbackAborted, err))
		}
		log.Debug("self-consistency iteration",
			slog.Int("iteration", it),
			slog.Bool("converged", ok),
			slog.Duration("duration", time.Since(start)),
		)
		if ok {
			bd.converged = true
			break
		}
	}
	if !bd.converged {
		log.Warn("self-consistency loop reached max iterations", slog.Int("max_iterations", bd.opts.maxIterations))
	}
	runIterations.Observe(float64(bd.iterations))
	runsTotal.WithLabelValues(resultSuccess).Inc()

	return nil
}

// fail logs and counts a failed pass and wraps the error for the caller.
func (bd *BlockDiagonalizer) fail(log *slog.Logger, err error) error {
	result := resultNumerical
	if errors.Is(err, ErrInvalidHamiltonian) {
		result = resultInvalid
	}
	runsTotal.WithLabelValues(result).Inc()
	log.Error("block diagonalization failed", slog.Int("iteration", bd.iterations+1), slog.Any("error", err))

	return solverErrorf(opRun, err)
}

// pass assembles and diagonalizes every block, in parallel when enabled.
// A failing block leaves its own arena ranges untouched.
func (bd *BlockDiagonalizer) pass(log *slog.Logger) error {
	if bd.opts.parallel && bd.numBlocks > 1 {
		var g errgroup.Group
		g.SetLimit(bd.opts.workers)
		for b := 0; b < bd.numBlocks; b++ {
			g.Go(func() error { return bd.processBlock(log, b) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for b := 0; b < bd.numBlocks; b++ {
			if err := bd.processBlock(log, b); err != nil {
				return err
			}
		}
	}
	bd.state = StateSolved

	return nil
}

// processBlock runs update and solve for block b.
func (bd *BlockDiagonalizer) processBlock(log *slog.Logger, b int) error {
	start := time.Now()
	h, err := bd.update(log, b)
	if err != nil {
		return err
	}
	if err = bd.solve(b, h); err != nil {
		return err
	}
	blockDuration.Observe(time.Since(start).Seconds())

	return nil
}

// update zero-fills block b's Hamiltonian and accumulates every amplitude
// whose origin lies in the block at [to-first, from-first]. Amplitudes that
// leave the block cannot come from a finalized store; they are skipped.
func (bd *BlockDiagonalizer) update(log *slog.Logger, b int) (*matrix.Hermitian, error) {
	var (
		size  = bd.blockSizes[b]         // block dimension
		first = bd.blockFirst[b]         // first global position of the block
		off   = bd.eigenVectorOffsets[b] // start of the block's size² arena range
	)

	// U.1: view the block's arena range as a matrix and clear the previous pass.
	h, err := matrix.NewHermitianView(size, bd.hamiltonian[off:off+size*size])
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", b, err)
	}
	h.Zero()

	// U.2: accumulate H[to-first, from-first] += a. Duplicates add up.
	// Callback amplitudes are evaluated here, once per pass.
	last := first + size - 1
	for pos := first; pos <= last; pos++ {
		for e := range bd.model.EntriesTouching(pos) {
			if e.From != pos {
				continue // counted when its origin is visited
			}
			if e.To < first || e.To > last {
				log.Debug("skipping off-block amplitude",
					slog.Int("block", b),
					slog.Int("to", e.To),
					slog.Int("from", e.From),
				)
				continue
			}
			h.Data()[(e.To-first)*size+(e.From-first)] += e.Amplitude.Value()
		}
	}

	return h, nil
}

// solve diagonalizes h and copies the result into block b's ranges.
func (bd *BlockDiagonalizer) solve(b int, h *matrix.Hermitian) error {
	vals, vecs, err := matrix.EigenHermitian(h, bd.opts.eigen...)
	if err != nil {
		if errors.Is(err, matrix.ErrNotHermitian) || errors.Is(err, matrix.ErrNaNInf) {
			return fmt.Errorf("block %d: %w: %w", b, ErrInvalidHamiltonian, err)
		}
		return fmt.Errorf("block %d: %w: %w", b, ErrNumericalFailure, err)
	}
	// Results land in the arenas only on success, so a failing block keeps
	// the previous pass's spectrum.
	first, off := bd.blockFirst[b], bd.eigenVectorOffsets[b]
	copy(bd.eigenValues[first:first+len(vals)], vals)
	copy(bd.eigenVectors[off:off+len(vecs)], vecs)

	return nil
}
