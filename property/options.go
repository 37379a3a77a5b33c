// SPDX-License-Identifier: MIT

package property

import "math"

// DefaultTemperature selects the zero-temperature step occupation.
const DefaultTemperature = 0.0

// Options configures an Extractor.
type Options struct {
	temperature float64 // kT in energy units
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns zero-temperature occupation.
func DefaultOptions() Options {
	return Options{temperature: DefaultTemperature}
}

// WithTemperature sets kT for Fermi-Dirac occupation.
// Panics on negative, NaN or infinite kT.
func WithTemperature(kT float64) Option {
	if kT < 0 || math.IsNaN(kT) || math.IsInf(kT, 0) {
		panic("property: WithTemperature: kT must be finite and >= 0")
	}

	return func(o *Options) { o.temperature = kT }
}

// Temperature returns kT.
func (o Options) Temperature() float64 { return o.temperature }

// occupation returns the fill factor of a state at energy e.
func (o Options) occupation(e, fermiLevel float64) float64 {
	if o.temperature == 0 {
		if e < fermiLevel {
			return 1
		}
		return 0
	}

	return 1 / (math.Exp((e-fermiLevel)/o.temperature) + 1)
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
