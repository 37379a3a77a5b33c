// Package matrix provides the dense linear algebra used by the block solver:
// a square complex matrix type (Hermitian) stored row-major in a flat slice,
// and eigen-decomposition kernels for Hermitian matrices.
//
// Kernels
//
//   - JacobiHermitian: cyclic complex Jacobi rotations. Pure Go, works for any
//     Hermitian input, O(sweeps · n³).
//   - SymmetricEigen: real symmetric input only; delegates to gonum's
//     mat.EigenSym (LAPACK dsyev port).
//   - EigenHermitian: facade choosing a kernel from Options (MethodAuto picks
//     SymmetricEigen when every element is real, JacobiHermitian otherwise).
//
// Output convention (all kernels):
//
//   - eigenvalues ascending;
//   - eigenvectors column-major: vector k occupies vectors[k*n : (k+1)*n];
//   - each vector has unit norm and its largest component is real positive,
//     so repeated decompositions of the same matrix return the same vectors.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrOutOfRange,
// ErrNotHermitian, ErrNotReal, ErrEigenFailed) wrapped with an operation tag.
package matrix
