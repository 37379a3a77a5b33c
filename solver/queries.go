// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/tbdiag/index"
)

// requireInit guards table lookups.
func (bd *BlockDiagonalizer) requireInit(op string) error {
	if bd.state == StateUninitialized {
		return solverErrorf(op, ErrNotInitialized)
	}

	return nil
}

// requireSolved guards eigen data lookups.
func (bd *BlockDiagonalizer) requireSolved(op string) error {
	if err := bd.requireInit(op); err != nil {
		return err
	}
	if bd.state != StateSolved {
		return solverErrorf(op, ErrNotSolved)
	}

	return nil
}

// blockOfKey resolves a block key to (block, first state).
func (bd *BlockDiagonalizer) blockOfKey(op string, blockKey index.Index) (int, int, error) {
	first, err := bd.model.FirstPositionInBlock(blockKey)
	if err != nil {
		return 0, 0, solverErrorf(op, err)
	}
	if err = checkBounds(op, first, 0, len(bd.stateToBlock)); err != nil {
		return 0, 0, err
	}
	b := bd.stateToBlock[first]

	return b, bd.blockFirst[b], nil
}

// EigenValue returns the eigenvalue of global state.
// Errors: ErrNotInitialized, ErrNotSolved, *BoundsError.
func (bd *BlockDiagonalizer) EigenValue(state int) (float64, error) {
	if err := bd.requireSolved(opEigenValue); err != nil {
		return 0, err
	}
	if err := checkBounds(opEigenValue, state, 0, len(bd.eigenValues)); err != nil {
		return 0, err
	}

	return bd.eigenValues[state], nil
}

// BlockEigenValue returns the eigenvalue of the state-th state (ascending)
// of the block selected by blockKey.
func (bd *BlockDiagonalizer) BlockEigenValue(blockKey index.Index, state int) (float64, error) {
	if err := bd.requireSolved(opBlockEigen); err != nil {
		return 0, err
	}
	b, first, err := bd.blockOfKey(opBlockEigen, blockKey)
	if err != nil {
		return 0, err
	}
	if err = checkBounds(opBlockEigen, state, 0, bd.blockSizes[b]); err != nil {
		return 0, err
	}

	return bd.eigenValues[first+state], nil
}

// Amplitude returns ψ_state(key). The result is exactly 0 when key lies
// outside the block of state.
// Errors: ErrNotInitialized, ErrNotSolved, *BoundsError, model.ErrNotFound.
func (bd *BlockDiagonalizer) Amplitude(state int, key index.Index) (complex128, error) {
	if err := bd.requireSolved(opAmplitude); err != nil {
		return 0, err
	}
	if err := checkBounds(opAmplitude, state, 0, len(bd.eigenValues)); err != nil {
		return 0, err
	}
	pos, err := bd.model.BasisPosition(key)
	if err != nil {
		return 0, solverErrorf(opAmplitude, err)
	}
	b := bd.stateToBlock[state]
	first := bd.blockFirst[b]

	return bd.amplitudeAt(b, state-first, pos), nil
}

// BlockAmplitude returns ψ(index.Concat(blockKey, intraKey)) for the state-th
// state of the block selected by blockKey. Keys outside the block yield 0.
func (bd *BlockDiagonalizer) BlockAmplitude(blockKey index.Index, state int, intraKey index.Index) (complex128, error) {
	if err := bd.requireSolved(opBlockAmp); err != nil {
		return 0, err
	}
	b, _, err := bd.blockOfKey(opBlockAmp, blockKey)
	if err != nil {
		return 0, err
	}
	if err = checkBounds(opBlockAmp, state, 0, bd.blockSizes[b]); err != nil {
		return 0, err
	}
	pos, err := bd.model.BasisPosition(index.Concat(blockKey, intraKey))
	if err != nil {
		return 0, solverErrorf(opBlockAmp, err)
	}

	return bd.amplitudeAt(b, state, pos), nil
}

// amplitudeAt reads coefficient pos of the rel-th eigenvector of block b,
// returning 0 when pos belongs to another block.
func (bd *BlockDiagonalizer) amplitudeAt(b, rel, pos int) complex128 {
	if bd.stateToBlock[pos] != b {
		return 0
	}
	size, first := bd.blockSizes[b], bd.blockFirst[b]

	return bd.eigenVectors[bd.eigenVectorOffsets[b]+rel*size+(pos-first)]
}

// FirstStateInBlock returns the first global state of the block containing key.
func (bd *BlockDiagonalizer) FirstStateInBlock(key index.Index) (int, error) {
	b, err := bd.blockContaining(opFirstInBlock, key)
	if err != nil {
		return 0, err
	}

	return bd.blockFirst[b], nil
}

// LastStateInBlock returns the last global state (inclusive) of the block containing key.
func (bd *BlockDiagonalizer) LastStateInBlock(key index.Index) (int, error) {
	b, err := bd.blockContaining(opLastInBlock, key)
	if err != nil {
		return 0, err
	}

	return bd.blockFirst[b] + bd.blockSizes[b] - 1, nil
}

func (bd *BlockDiagonalizer) blockContaining(op string, key index.Index) (int, error) {
	if err := bd.requireInit(op); err != nil {
		return 0, err
	}
	pos, err := bd.model.BasisPosition(key)
	if err != nil {
		return 0, solverErrorf(op, err)
	}
	if err = checkBounds(op, pos, 0, len(bd.stateToBlock)); err != nil {
		return 0, err
	}

	return bd.stateToBlock[pos], nil
}

// EigenValues returns a copy of all eigenvalues in global state order
// (ascending inside each block).
func (bd *BlockDiagonalizer) EigenValues() ([]float64, error) {
	if err := bd.requireSolved(opEigenValue); err != nil {
		return nil, err
	}
	out := make([]float64, len(bd.eigenValues))
	copy(out, bd.eigenValues)

	return out, nil
}
