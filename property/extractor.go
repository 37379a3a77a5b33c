// SPDX-License-Identifier: MIT

package property

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/solver"
)

var (
	// ErrNilSpectrum reports NewExtractor(nil).
	ErrNilSpectrum = errors.New("property: spectrum is nil")
)

// Spectrum is the query surface an Extractor reads.
type Spectrum interface {
	BasisSize() int
	EigenValues() ([]float64, error)
	EigenValue(state int) (float64, error)
	Amplitude(state int, key index.Index) (complex128, error)
	BlockEigenValue(blockKey index.Index, state int) (float64, error)
	BlockAmplitude(blockKey index.Index, state int, intraKey index.Index) (complex128, error)
}

var _ Spectrum = (*solver.BlockDiagonalizer)(nil)

// Extractor computes properties from a Spectrum.
type Extractor struct {
	src  Spectrum
	opts Options
}

// NewExtractor wraps s.
func NewExtractor(s Spectrum, opts ...Option) (*Extractor, error) {
	if s == nil {
		return nil, ErrNilSpectrum
	}

	return &Extractor{src: s, opts: gatherOptions(opts...)}, nil
}

// Options returns the extractor configuration.
func (pe *Extractor) Options() Options { return pe.opts }

// EigenValues returns the full spectrum.
func (pe *Extractor) EigenValues() (*EigenValues, error) {
	vals, err := pe.src.EigenValues()
	if err != nil {
		return nil, fmt.Errorf("property: EigenValues: %w", err)
	}

	return &EigenValues{data: vals}, nil
}

// EigenValue returns the eigenvalue of state.
func (pe *Extractor) EigenValue(state int) (float64, error) {
	return pe.src.EigenValue(state)
}

// Amplitude returns ψ_state(key).
func (pe *Extractor) Amplitude(state int, key index.Index) (complex128, error) {
	return pe.src.Amplitude(state, key)
}

// BlockEigenValue returns the state-th eigenvalue of the block selected by blockKey.
func (pe *Extractor) BlockEigenValue(blockKey index.Index, state int) (float64, error) {
	return pe.src.BlockEigenValue(blockKey, state)
}

// BlockAmplitude returns the block-relative amplitude ψ(blockKey ++ intraKey).
func (pe *Extractor) BlockAmplitude(blockKey index.Index, state int, intraKey index.Index) (complex128, error) {
	return pe.src.BlockAmplitude(blockKey, state, intraKey)
}

// ExpectationValue returns ⟨c†_to c_from⟩ = Σ_n f(E_n) conj(ψ_n(to)) ψ_n(from),
// where f is the occupation at fermiLevel.
func (pe *Extractor) ExpectationValue(to, from index.Index, fermiLevel float64) (complex128, error) {
	vals, err := pe.src.EigenValues()
	if err != nil {
		return 0, fmt.Errorf("property: ExpectationValue: %w", err)
	}

	var sum complex128
	for n, e := range vals {
		f := pe.opts.occupation(e, fermiLevel)
		if f == 0 {
			continue
		}
		u, err := pe.src.Amplitude(n, to)
		if err != nil {
			return 0, fmt.Errorf("property: ExpectationValue: %w", err)
		}
		if u == 0 {
			continue
		}
		v, err := pe.src.Amplitude(n, from)
		if err != nil {
			return 0, fmt.Errorf("property: ExpectationValue: %w", err)
		}
		sum += complex(f, 0) * cmplx.Conj(u) * v
	}

	return sum, nil
}

// ParticleCount returns Σ_n f(E_n) at fermiLevel.
func (pe *Extractor) ParticleCount(fermiLevel float64) (float64, error) {
	vals, err := pe.src.EigenValues()
	if err != nil {
		return 0, fmt.Errorf("property: ParticleCount: %w", err)
	}
	total := 0.0
	for _, e := range vals {
		total += pe.opts.occupation(e, fermiLevel)
	}

	return total, nil
}
