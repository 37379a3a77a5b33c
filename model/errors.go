// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrConstruction reports a malformed coupling declaration.
	ErrConstruction = errors.New("model: malformed hopping amplitude")

	// ErrFinalized reports a mutation attempt on a finalized Store.
	ErrFinalized = errors.New("model: store is finalized")

	// ErrNotFinalized reports a basis lookup before Finalize.
	ErrNotFinalized = errors.New("model: store is not finalized")

	// ErrNotFound reports a key that is not part of the basis.
	ErrNotFound = errors.New("model: index not found")

	// ErrOutOfRange reports a basis position or block number outside the valid range.
	ErrOutOfRange = errors.New("model: position out of range")
)

// Operation tags for error wrapping.
const (
	opAdd        = "Add"
	opFinalize   = "Finalize"
	opBasisPos   = "BasisPosition"
	opBasisIndex = "BasisIndex"
	opBlockOf    = "BlockOf"
	opFirstInBlk = "FirstPositionInBlock"
	opBlockOfKey = "BlockOfKey"
	opBlock      = "Block"
)

// modelErrorf wraps err with an operation tag; err must be non-nil.
func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
