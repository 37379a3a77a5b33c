// SPDX-License-Identifier: MIT

package hopping

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/tbdiag/index"
)

// Callback computes an amplitude on demand from the two endpoints.
// It is invoked on every Value call and must be safe for concurrent use when
// the solver runs blocks in parallel.
type Callback func(to, from index.Index) complex128

// HermitianConjugate is the type of the HC marker.
type HermitianConjugate struct{}

// HC marks "add the Hermitian conjugate too" in a.Plus(HC).
var HC HermitianConjugate

// panicNilCallback is raised by NewCallback on a nil function (programmer error).
const panicNilCallback = "hopping: NewCallback: callback must not be nil"

// Amplitude is an immutable coupling term between two keys.
// Exactly one of {fixed value, callback} is active.
type Amplitude struct {
	value    complex128
	callback Callback
	to       index.Index
	from     index.Index
}

// Pair holds an Amplitude and its Hermitian conjugate.
type Pair struct {
	Amplitude Amplitude
	Conjugate Amplitude
}

// New returns a fixed-value Amplitude for c†_to c_from.
func New(value complex128, to, from index.Index) Amplitude {
	return Amplitude{value: value, to: to, from: from}
}

// NewCallback returns an Amplitude whose value is computed by cb at read time.
// Panics if cb is nil.
func NewCallback(cb Callback, to, from index.Index) Amplitude {
	if cb == nil {
		panic(panicNilCallback)
	}

	return Amplitude{callback: cb, to: to, from: from}
}

// Value returns the amplitude: the callback result when one is set, otherwise
// the stored value.
func (a Amplitude) Value() complex128 {
	if a.callback != nil {
		return a.callback(a.to, a.from)
	}

	return a.value
}

// To returns the destination key.
func (a Amplitude) To() index.Index { return a.to }

// From returns the origin key.
func (a Amplitude) From() index.Index { return a.from }

// IsCallback reports whether the value is computed on demand.
func (a Amplitude) IsCallback() bool { return a.callback != nil }

// HermitianConjugate returns the entry with swapped endpoints and conjugated
// value. For callback entries the returned callback calls the original one
// with swapped arguments and conjugates its result, so that
// a.HermitianConjugate().Value() == conj(a.Value()) at any moment.
func (a Amplitude) HermitianConjugate() Amplitude {
	if a.callback != nil {
		cb := a.callback
		return Amplitude{
			callback: func(to, from index.Index) complex128 { return cmplx.Conj(cb(from, to)) },
			to:       a.from,
			from:     a.to,
		}
	}

	return Amplitude{value: cmplx.Conj(a.value), to: a.from, from: a.to}
}

// Plus returns the entry together with its Hermitian conjugate.
func (a Amplitude) Plus(HermitianConjugate) Pair {
	return Pair{Amplitude: a, Conjugate: a.HermitianConjugate()}
}

// String renders the entry as "(re, im), {to}, {from}". Callbacks are evaluated.
func (a Amplitude) String() string {
	v := a.Value()

	return fmt.Sprintf("(%g, %g), %s, %s", real(v), imag(v), a.to, a.from)
}
