// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Hermitian is an n×n complex matrix stored row-major in a flat slice.
// The type does not enforce Hermiticity on writes; ValidateHermitian checks it
// once the matrix is assembled.
type Hermitian struct {
	n    int
	data []complex128 // len == n*n
}

// NewHermitian allocates a zero n×n matrix.
func NewHermitian(n int) (*Hermitian, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	return &Hermitian{n: n, data: make([]complex128, n*n)}, nil
}

// NewHermitianView wraps data (len n*n, row-major) without copying, so callers
// can carve several matrices out of one arena.
func NewHermitianView(n int, data []complex128) (*Hermitian, error) {
	if n <= 0 || len(data) != n*n {
		return nil, matrixErrorf(opNew, fmt.Errorf("n=%d len=%d: %w", n, len(data), ErrInvalidDimensions))
	}

	return &Hermitian{n: n, data: data}, nil
}

// Size returns n.
func (h *Hermitian) Size() int { return h.n }

// Data exposes the backing slice (row-major).
func (h *Hermitian) Data() []complex128 { return h.data }

func (h *Hermitian) indexOf(tag string, i, j int) (int, error) {
	if i < 0 || i >= h.n || j < 0 || j >= h.n {
		return 0, matrixErrorf(tag, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, h.n, h.n, ErrOutOfRange))
	}

	return i*h.n + j, nil
}

// At returns element (i, j).
func (h *Hermitian) At(i, j int) (complex128, error) {
	k, err := h.indexOf(opAt, i, j)
	if err != nil {
		return 0, err
	}

	return h.data[k], nil
}

// Set assigns element (i, j).
func (h *Hermitian) Set(i, j int, v complex128) error {
	k, err := h.indexOf(opSet, i, j)
	if err != nil {
		return err
	}
	h.data[k] = v

	return nil
}

// AddAt accumulates v into element (i, j).
func (h *Hermitian) AddAt(i, j int, v complex128) error {
	k, err := h.indexOf(opAddAt, i, j)
	if err != nil {
		return err
	}
	h.data[k] += v

	return nil
}

// Zero resets every element to 0.
func (h *Hermitian) Zero() {
	clear(h.data)
}

// Clone returns a deep copy.
func (h *Hermitian) Clone() *Hermitian {
	cp := make([]complex128, len(h.data))
	copy(cp, h.data)

	return &Hermitian{n: h.n, data: cp}
}

// IsReal reports whether every imaginary part is within tol·max(1, ‖H‖_F) of zero.
func (h *Hermitian) IsReal(tol float64) bool {
	limit := tol * math.Max(1, frobenius(h.data))
	for _, v := range h.data {
		if math.Abs(imag(v)) > limit {
			return false
		}
	}

	return true
}

// Symmetrize replaces H by (H + Hᴴ)/2, removing rounding asymmetry between
// the two triangles. The diagonal becomes real.
func (h *Hermitian) Symmetrize() {
	n := h.n
	for i := 0; i < n; i++ {
		h.data[i*n+i] = complex(real(h.data[i*n+i]), 0)
		for j := i + 1; j < n; j++ {
			z := (h.data[i*n+j] + cmplx.Conj(h.data[j*n+i])) / 2
			h.data[i*n+j], h.data[j*n+i] = z, cmplx.Conj(z)
		}
	}
}

// ValidateHermitian checks finiteness and
// |H[i,j] - conj(H[j,i])| <= tol · max(1, ‖H‖_F) for all i <= j
// (the diagonal must be real within the same bound). Scaling by the norm
// keeps the check insensitive to rounding in large-valued matrices.
// Complexity: O(n²).
func ValidateHermitian(h *Hermitian, tol float64) error {
	n := h.n
	// V.1: every element finite; NaN would otherwise slip through the comparison.
	for k, z := range h.data {
		if cmplx.IsNaN(z) || cmplx.IsInf(z) {
			return matrixErrorf(opValidate, fmt.Errorf("(%d,%d): %w", k/n, k%n, ErrNaNInf))
		}
	}

	// V.2: pairwise symmetry relative to the matrix scale.
	limit := tol * math.Max(1, frobenius(h.data))
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a, b := h.data[i*n+j], h.data[j*n+i]
			if cmplx.Abs(a-cmplx.Conj(b)) > limit {
				return matrixErrorf(opValidate, fmt.Errorf("(%d,%d)=%v vs (%d,%d)=%v: %w", i, j, a, j, i, b, ErrNotHermitian))
			}
		}
	}

	return nil
}

// String renders the matrix one row per line.
func (h *Hermitian) String() string {
	var sb strings.Builder
	for i := 0; i < h.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < h.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", h.data[i*h.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
