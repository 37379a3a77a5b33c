// SPDX-License-Identifier: MIT

package property

import "iter"

// EigenValues holds a spectrum in global state order.
type EigenValues struct {
	data []float64
}

// NewEigenValues copies values into a new container.
func NewEigenValues(values []float64) *EigenValues {
	data := make([]float64, len(values))
	copy(data, values)

	return &EigenValues{data: data}
}

// Size returns the number of eigenvalues.
func (e *EigenValues) Size() int { return len(e.data) }

// At returns eigenvalue i; it panics when i is out of range, like a slice.
func (e *EigenValues) At(i int) float64 { return e.data[i] }

// Data returns a copy of the eigenvalues.
func (e *EigenValues) Data() []float64 {
	out := make([]float64, len(e.data))
	copy(out, e.data)

	return out
}

// All yields (state, eigenvalue) pairs in order.
func (e *EigenValues) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range e.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// CountBelow returns how many eigenvalues lie strictly below level.
func (e *EigenValues) CountBelow(level float64) int {
	n := 0
	for _, v := range e.data {
		if v < level {
			n++
		}
	}

	return n
}
