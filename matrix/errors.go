// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with matrixErrorf);
// tests match them with errors.Is. Panics are reserved for invalid options.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive size or a backing slice of the wrong length.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotHermitian signals H[i,j] != conj(H[j,i]) beyond the tolerance.
	ErrNotHermitian = errors.New("matrix: matrix is not Hermitian within tolerance")

	// ErrNotReal signals that a real-only kernel received a complex element.
	ErrNotReal = errors.New("matrix: matrix has complex elements")

	// ErrNaNInf signals a NaN or ±Inf element.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenFailed indicates that an eigen routine did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags for error wrapping.
const (
	opAt        = "At"
	opSet       = "Set"
	opAddAt     = "AddAt"
	opNew       = "NewHermitian"
	opValidate  = "ValidateHermitian"
	opJacobi    = "JacobiHermitian"
	opSymmetric = "SymmetricEigen"
	opEigen     = "EigenHermitian"
)

// matrixErrorf wraps err with an operation tag; err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
