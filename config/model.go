// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tbdiag/hopping"
	"github.com/katalvlaran/tbdiag/index"
	"github.com/katalvlaran/tbdiag/model"
)

// Lattice kinds.
const (
	KindChain  = "chain"
	KindSquare = "square"
)

// ModelConfig describes the couplings of a Store.
type ModelConfig struct {
	// KeyLength fixes the key length; 0 accepts any length, or the
	// lattice key length when a lattice is present.
	KeyLength int `yaml:"key_length,omitempty"`

	// Lattice generates a regular lattice. Optional.
	Lattice *LatticeConfig `yaml:"lattice,omitempty"`

	// Hoppings are explicit couplings added after the lattice.
	Hoppings []HoppingConfig `yaml:"hoppings,omitempty"`
}

// HoppingConfig is one coupling "re + i·im from → to".
type HoppingConfig struct {
	To   []int   `yaml:"to,flow"`
	From []int   `yaml:"from,flow"`
	Re   float64 `yaml:"re"`
	Im   float64 `yaml:"im,omitempty"`

	// HC also adds the Hermitian conjugate.
	HC bool `yaml:"hc,omitempty"`
}

// LatticeConfig generates nearest-neighbour hopping on a chain or square
// lattice. Keys are {spin, x} for chains and {spin, x, y} for square
// lattices, so every spin species forms its own block.
type LatticeConfig struct {
	Kind     string  `yaml:"kind"`
	Size     []int   `yaml:"size,flow"`
	Spins    int     `yaml:"spins,omitempty"`
	Hopping  float64 `yaml:"hopping"`
	OnSite   float64 `yaml:"onsite,omitempty"`
	Zeeman   float64 `yaml:"zeeman,omitempty"`
	Periodic bool    `yaml:"periodic,omitempty"`
}

// KeyLength returns the length of generated keys.
func (l *LatticeConfig) KeyLength() int { return 1 + len(l.Size) }

func (l *LatticeConfig) spins() int { return max(1, l.Spins) }

// Validate checks kind, size and finiteness.
func (l *LatticeConfig) Validate() error {
	want := 0
	switch l.Kind {
	case KindChain:
		want = 1
	case KindSquare:
		want = 2
	default:
		return fmt.Errorf("kind %q: %w", l.Kind, ErrInvalidConfig)
	}
	if len(l.Size) != want {
		return fmt.Errorf("%s needs %d sizes, got %d: %w", l.Kind, want, len(l.Size), ErrInvalidConfig)
	}
	for _, n := range l.Size {
		if n <= 0 {
			return fmt.Errorf("size %v must be positive: %w", l.Size, ErrInvalidConfig)
		}
	}
	if l.Spins < 0 {
		return fmt.Errorf("spins %d < 0: %w", l.Spins, ErrInvalidConfig)
	}
	for _, v := range []float64{l.Hopping, l.OnSite, l.Zeeman} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite lattice parameter: %w", ErrInvalidConfig)
		}
	}

	return nil
}

// Validate checks the lattice, every hopping and the key length.
func (m *ModelConfig) Validate() error {
	if m.KeyLength < 0 {
		return fmt.Errorf("key_length %d < 0: %w", m.KeyLength, ErrInvalidConfig)
	}
	if m.Lattice != nil {
		if err := m.Lattice.Validate(); err != nil {
			return fmt.Errorf("lattice: %w", err)
		}
		if m.KeyLength != 0 && m.KeyLength != m.Lattice.KeyLength() {
			return fmt.Errorf("key_length %d conflicts with lattice keys of length %d: %w",
				m.KeyLength, m.Lattice.KeyLength(), ErrInvalidConfig)
		}
	}
	kl := m.keyLength()
	for i, h := range m.Hoppings {
		if len(h.To) == 0 || len(h.From) == 0 {
			return fmt.Errorf("hoppings[%d]: empty index: %w", i, ErrInvalidConfig)
		}
		if kl > 0 && (len(h.To) != kl || len(h.From) != kl) {
			return fmt.Errorf("hoppings[%d]: index length differs from %d: %w", i, kl, ErrInvalidConfig)
		}
		if math.IsNaN(h.Re) || math.IsNaN(h.Im) || math.IsInf(h.Re, 0) || math.IsInf(h.Im, 0) {
			return fmt.Errorf("hoppings[%d]: non-finite value: %w", i, ErrInvalidConfig)
		}
	}
	if m.Lattice == nil && len(m.Hoppings) == 0 {
		return fmt.Errorf("no lattice and no hoppings: %w", ErrInvalidConfig)
	}

	return nil
}

func (m *ModelConfig) keyLength() int {
	if m.KeyLength == 0 && m.Lattice != nil {
		return m.Lattice.KeyLength()
	}

	return m.KeyLength
}

// BuildModel returns a finalized Store holding the lattice and the
// explicit hoppings.
func (m *ModelConfig) BuildModel() (*model.Store, error) {
	s := model.New(model.WithKeyLength(m.keyLength()))
	if m.Lattice != nil {
		if err := m.Lattice.addTo(s); err != nil {
			return nil, err
		}
	}
	for i, h := range m.Hoppings {
		a := hopping.New(complex(h.Re, h.Im), index.New(h.To...), index.New(h.From...))
		var err error
		if h.HC {
			err = s.AddPair(a.Plus(hopping.HC))
		} else {
			err = s.Add(a)
		}
		if err != nil {
			return nil, fmt.Errorf("hoppings[%d]: %w", i, err)
		}
	}
	if err := s.Finalize(); err != nil {
		return nil, err
	}

	return s, nil
}

// addTo adds on-site terms for every site and nearest-neighbour bonds with
// their conjugates. Spin 0 is shifted by +zeeman, spin 1 by -zeeman.
func (l *LatticeConfig) addTo(s *model.Store) error {
	nx, ny := l.Size[0], 1
	if l.Kind == KindSquare {
		ny = l.Size[1]
	}
	key := func(spin, x, y int) index.Index {
		if l.Kind == KindChain {
			return index.New(spin, x)
		}
		return index.New(spin, x, y)
	}
	t := complex(l.Hopping, 0)

	for spin := 0; spin < l.spins(); spin++ {
		onsite := l.OnSite
		switch spin {
		case 0:
			onsite += l.Zeeman
		case 1:
			onsite -= l.Zeeman
		}
		for x := 0; x < nx; x++ {
			for y := 0; y < ny; y++ {
				here := key(spin, x, y)
				if err := s.Add(hopping.New(complex(onsite, 0), here, here)); err != nil {
					return err
				}
				if nb, ok := neighbour(x, nx, l.Periodic); ok {
					if err := s.AddPair(hopping.New(t, key(spin, nb, y), here).Plus(hopping.HC)); err != nil {
						return err
					}
				}
				if nb, ok := neighbour(y, ny, l.Periodic); ok {
					if err := s.AddPair(hopping.New(t, key(spin, x, nb), here).Plus(hopping.HC)); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// neighbour returns the +1 neighbour of c along an axis of length n. The
// wrap-around bond exists only for periodic axes longer than two sites, so a
// bond is never added twice.
func neighbour(c, n int, periodic bool) (int, bool) {
	switch {
	case c+1 < n:
		return c + 1, true
	case periodic && n > 2:
		return 0, true
	default:
		return 0, false
	}
}
