// SPDX-License-Identifier: MIT

package solver

import (
	"iter"

	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/model"
)

// Model is the read-only view of a finalized Hamiltonian store consumed by
// the solver. *model.Store implements it.
type Model interface {
	Finalized() bool
	BasisSize() int
	BasisPosition(key index.Index) (int, error)
	BasisIndex(pos int) (index.Index, error)
	BlockOf(pos int) (int, error)
	FirstPositionInBlock(blockKey index.Index) (int, error)
	EntriesTouching(pos int) iter.Seq[model.Entry]
}

var _ Model = (*model.Store)(nil)

// SelfConsistencyCallback is invoked after every pass of a self-consistent
// Run. It returns true once converged. A non-nil error aborts Run.
// The callback may read the solver and mutate external state referenced by
// amplitude callbacks; it must not call Run or Init.
type SelfConsistencyCallback func(bd *BlockDiagonalizer) (converged bool, err error)

// State is the lifecycle stage of a BlockDiagonalizer.
type State int

const (
	// StateUninitialized: New was called, Init was not.
	StateUninitialized State = iota
	// StateInitialized: tables and arenas exist, nothing solved yet.
	StateInitialized
	// StateSolved: at least one pass completed since the last Init.
	StateSolved
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}
