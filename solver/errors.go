// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized reports a call that needs Init first.
	ErrNotInitialized = errors.New("solver: not initialized")

	// ErrNotSolved reports an eigen query before any successful pass.
	ErrNotSolved = errors.New("solver: not solved")

	// ErrModelNotFinalized reports Init on a model whose basis is not fixed yet.
	ErrModelNotFinalized = errors.New("solver: model is not finalized")

	// ErrNilModel reports New(nil).
	ErrNilModel = errors.New("solver: model is nil")

	// ErrNonContiguousBlock reports a model whose blocks do not occupy contiguous positions.
	ErrNonContiguousBlock = errors.New("solver: block positions are not contiguous")

	// ErrOutOfBounds is the sentinel behind every *BoundsError.
	ErrOutOfBounds = errors.New("solver: index out of bounds")

	// ErrInvalidHamiltonian reports an assembled block that is not Hermitian.
	ErrInvalidHamiltonian = errors.New("solver: block Hamiltonian is not Hermitian")

	// ErrNumericalFailure reports an eigen decomposition that failed for a block.
	ErrNumericalFailure = errors.New("solver: numerical failure")

	// ErrCallbackAborted wraps an error returned by the self-consistency callback.
	ErrCallbackAborted = errors.New("solver: self-consistency callback aborted")
)

// BoundsError reports an out-of-range state or block-relative state.
// The valid range is [Lo, Hi).
type BoundsError struct {
	Op    string
	Index int
	Lo    int
	Hi    int
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("solver: %s: index %d out of range [%d,%d)", e.Op, e.Index, e.Lo, e.Hi)
}

// Unwrap makes errors.Is(err, ErrOutOfBounds) true.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// checkBounds returns a *BoundsError when i is outside [lo, hi).
func checkBounds(op string, i, lo, hi int) error {
	if i < lo || i >= hi {
		return &BoundsError{Op: op, Index: i, Lo: lo, Hi: hi}
	}

	return nil
}

// Operation tags.
const (
	opNew          = "New"
	opInit         = "Init"
	opRun          = "Run"
	opEigenValue   = "EigenValue"
	opBlockEigen   = "BlockEigenValue"
	opAmplitude    = "Amplitude"
	opBlockAmp     = "BlockAmplitude"
	opFirstInBlock = "FirstStateInBlock"
	opLastInBlock  = "LastStateInBlock"
	opRecords      = "Records"
)

// solverErrorf wraps err with an operation tag; err must be non-nil.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
