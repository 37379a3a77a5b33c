// Package solver implements BlockDiagonalizer, an exact solver for
// block-diagonal tight-binding Hamiltonians.
//
// What it does
//
//   - Init reads a finalized model (see Model), builds the per-block size and
//     offset tables and allocates three flat arenas:
//     eigenvalues (N), eigenvectors (Σ size²) and the block Hamiltonians (Σ size²).
//   - Run assembles every block from the model's hopping amplitudes
//     (callbacks are evaluated on each pass), diagonalizes it and stores the
//     ascending eigenvalues and column-major eigenvectors at the block's offsets.
//   - With a SelfConsistencyCallback, Run repeats assemble → diagonalize →
//     callback until the callback reports convergence or MaxIterations passes
//     have run. Running out of iterations is not an error.
//
// State machine:
//
//	Uninitialized --Init--> Initialized --Run--> Solved --Run--> Solved
//
// # Parallelism
//
// WithParallel(true) processes blocks concurrently on an errgroup bounded by
// WithWorkers. Blocks write disjoint arena ranges and the offset tables are
// fixed by Init, so no locking is needed. The callback always runs on the
// caller's goroutine after every block of the pass is done. Run itself is not
// re-entrant.
//
// Queries
//
//	EigenValue(state)                         global state numbering
//	BlockEigenValue(blockKey, state)          state relative to the block
//	Amplitude(state, key)                     ψ_state(key), 0 outside the block
//	BlockAmplitude(blockKey, state, intraKey) key = index.Concat(blockKey, intraKey)
//	FirstStateInBlock(key), LastStateInBlock(key)
//
// Errors:
//
//	ErrNotInitialized    - query or Run before Init.
//	ErrNotSolved         - eigen query before the first successful pass.
//	ErrModelNotFinalized - Init on a model that was not finalized.
//	ErrOutOfBounds       - matched by *BoundsError (index and valid range).
//	ErrInvalidHamiltonian- an assembled block is not Hermitian.
//	ErrNumericalFailure  - the eigen kernel did not converge.
//	ErrCallbackAborted   - the self-consistency callback returned an error.
//	model.ErrNotFound    - a key outside the basis (propagated from the model).
package solver
