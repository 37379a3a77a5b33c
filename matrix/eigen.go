// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// EigenHermitian diagonalizes a Hermitian matrix with the kernel selected by
// opts. It returns ascending eigenvalues and column-major eigenvectors.
//
// The input is validated relative to its norm (see ValidateHermitian) and a
// symmetrized copy (H + Hᴴ)/2 is diagonalized; h itself is not modified.
//
// Errors: ErrNotHermitian / ErrNaNInf (validation), ErrNotReal
// (MethodSymmetric on complex input), ErrEigenFailed (no convergence).
func EigenHermitian(h *Hermitian, opts ...Option) ([]float64, []complex128, error) {
	o := gatherOptions(opts...)

	// E.1: reject non-finite or genuinely non-Hermitian input.
	if err := ValidateHermitian(h, o.tolerance); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// E.2: drop the rounding asymmetry that validation tolerated.
	h = h.Clone()
	h.Symmetrize()

	// E.3: dispatch; Auto prefers the real kernel when it applies.
	switch o.method {
	case MethodJacobi:
		return JacobiHermitian(h, opts...)
	case MethodSymmetric:
		return SymmetricEigen(h, opts...)
	default:
		if h.IsReal(o.tolerance) {
			return SymmetricEigen(h, opts...)
		}
		return JacobiHermitian(h, opts...)
	}
}

// JacobiHermitian runs cyclic complex Jacobi sweeps on a copy of h.
//
// Each rotation for pivot (p,q) first removes the phase of A[p,q] with
// P = diag(1, e^{-iφ}) and then applies the real rotation (c, s) that zeroes
// the now-real off-diagonal pair; J = P·R is accumulated into V.
// Only the upper triangle drives pivot selection; the input is assumed Hermitian.
//
// Stops when ‖offdiag(A)‖_F <= tol · max(1, ‖A‖_F).
// Complexity: O(sweeps · n³), Memory: O(n²).
func JacobiHermitian(h *Hermitian, opts ...Option) ([]float64, []complex128, error) {
	o := gatherOptions(opts...)
	n := h.n

	// J.1: working copy A of h and accumulator V = I.
	a := make([]complex128, n*n)
	copy(a, h.data)
	v := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	// J.2: convergence is measured against the initial norm; rotations
	// preserve ‖A‖_F, so the threshold stays fixed for the whole run.
	scale := math.Max(1, frobenius(a))
	var (
		sweep              int        // completed sweeps
		p, q, i            int        // pivot pair and row/column cursor
		apq                complex128 // current pivot A[p,q]
		mag, app, aqq      float64    // |A[p,q]| and the real diagonal pair
		theta, t, c, s     float64    // real rotation parameters (tan, cos, sin)
		ph                 complex128 // unit phase of A[p,q]
		jpp, jpq, jqp, jqq complex128 // 2x2 block of J = P·R
		x, y               complex128 // scratch for column/row updates
	)
	converged := false

	// J.3: cyclic sweeps over the upper triangle.
	for sweep = 0; sweep <= o.maxSweeps; sweep++ {
		// J.3.1: stop test before each sweep; the extra iteration only tests.
		if offDiagonal(a, n) <= o.tolerance*scale {
			converged = true
			break
		}
		if sweep == o.maxSweeps {
			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				// J.3.2: skip pivots that are already zero.
				apq = a[p*n+q]
				mag = cmplx.Abs(apq)
				if mag == 0 {
					continue
				}
				app, aqq = real(a[p*n+p]), real(a[q*n+q])

				// Real rotation for [[app, mag], [mag, aqq]].
				theta = (aqq - app) / (2 * mag)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// J = P·R with P = diag(1, conj(ph)) on (p,q).
				ph = apq / complex(mag, 0)
				jpp = complex(c, 0)
				jpq = complex(s, 0)
				jqp = complex(-s, 0) * cmplx.Conj(ph)
				jqq = complex(c, 0) * cmplx.Conj(ph)

				// A <- A·J (columns p, q).
				for i = 0; i < n; i++ {
					x, y = a[i*n+p], a[i*n+q]
					a[i*n+p] = x*jpp + y*jqp
					a[i*n+q] = x*jpq + y*jqq
				}
				// A <- Jᴴ·A (rows p, q).
				for i = 0; i < n; i++ {
					x, y = a[p*n+i], a[q*n+i]
					a[p*n+i] = cmplx.Conj(jpp)*x + cmplx.Conj(jqp)*y
					a[q*n+i] = cmplx.Conj(jpq)*x + cmplx.Conj(jqq)*y
				}
				// J.3.3: pin exact zeros and real diagonal against drift.
				a[p*n+q], a[q*n+p] = 0, 0
				a[p*n+p] = complex(real(a[p*n+p]), 0)
				a[q*n+q] = complex(real(a[q*n+q]), 0)

				// V <- V·J.
				for i = 0; i < n; i++ {
					x, y = v[i*n+p], v[i*n+q]
					v[i*n+p] = x*jpp + y*jqp
					v[i*n+q] = x*jpq + y*jqq
				}
			}
		}
	}
	// J.4: out of sweeps.
	if !converged {
		return nil, nil, matrixErrorf(opJacobi, fmt.Errorf("no convergence after %d sweeps: %w", o.maxSweeps, ErrEigenFailed))
	}

	// J.5: eigenvalues are the diagonal of the converged A.
	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = real(a[i*n+i])
	}
	// v is row-major with eigenvectors in columns; hand it over column-major.
	cols := make([]complex128, n*n)
	for i = 0; i < n; i++ {
		for k := 0; k < n; k++ {
			cols[k*n+i] = v[i*n+k]
		}
	}

	return sortEigen(values, cols, n)
}

// SymmetricEigen diagonalizes a real symmetric matrix with gonum's mat.EigenSym.
// Only the upper triangle is read.
func SymmetricEigen(h *Hermitian, opts ...Option) ([]float64, []complex128, error) {
	o := gatherOptions(opts...)

	// S.1: the real kernel only applies when imaginary parts are rounding noise.
	if !h.IsReal(o.tolerance) {
		return nil, nil, matrixErrorf(opSymmetric, ErrNotReal)
	}
	n := h.n
	re := make([]float64, n*n)
	for k, z := range h.data {
		re[k] = real(z)
	}

	// S.2: factorize with vectors.
	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, re), true); !ok {
		return nil, nil, matrixErrorf(opSymmetric, ErrEigenFailed)
	}
	values := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// S.3: gonum stores eigenvectors in columns; copy them out column-major.
	cols := make([]complex128, n*n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			cols[k*n+i] = complex(vecs.At(i, k), 0)
		}
	}

	return sortEigen(values, cols, n)
}

// sortEigen orders eigenpairs by ascending value (stable) and normalizes the
// phase of every vector.
func sortEigen(values []float64, cols []complex128, n int) ([]float64, []complex128, error) {
	perm := make([]int, n)
	for k := range perm {
		perm[k] = k
	}
	sort.SliceStable(perm, func(a, b int) bool { return values[perm[a]] < values[perm[b]] })

	outVals := make([]float64, n)
	outVecs := make([]complex128, n*n)
	for dst, src := range perm {
		outVals[dst] = values[src]
		vec := outVecs[dst*n : (dst+1)*n]
		copy(vec, cols[src*n:(src+1)*n])
		normalizePhase(vec)
	}

	return outVals, outVecs, nil
}

// normalizePhase scales vec to unit norm and rotates it so that its first
// largest-magnitude component is real positive.
func normalizePhase(vec []complex128) {
	norm := cmplxs.Norm(vec, 2)
	if norm == 0 {
		return
	}
	lead, best := 0, 0.0
	for i, z := range vec {
		// Small slack keeps the choice stable between nearly equal magnitudes.
		if m := cmplx.Abs(z); m > best*(1+1e-9) {
			lead, best = i, m
		}
	}
	phase := cmplx.Conj(vec[lead]) / complex(best, 0)
	cmplxs.Scale(phase/complex(norm, 0), vec)
}

// frobenius returns ‖A‖_F.
func frobenius(a []complex128) float64 {
	return cmplxs.Norm(a, 2)
}

// offDiagonal returns the Frobenius norm of the strict off-diagonal part.
func offDiagonal(a []complex128, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				z := a[i*n+j]
				sum += real(z)*real(z) + imag(z)*imag(z)
			}
		}
	}

	return math.Sqrt(sum)
}
