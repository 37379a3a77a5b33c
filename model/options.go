// SPDX-License-Identifier: MIT

package model

// DefaultKeyLength disables key-length validation (any length accepted).
const DefaultKeyLength = 0

const panicKeyLengthInvalid = "model: WithKeyLength: length must be >= 0"

// Options configures a Store.
type Options struct {
	// keyLength, when > 0, is the number of sub-indices every endpoint must have.
	keyLength int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Store options.
func DefaultOptions() Options {
	return Options{keyLength: DefaultKeyLength}
}

// WithKeyLength makes Add reject endpoints whose length differs from n
// (fixed lattice dimensionality). n == 0 accepts any length.
// Panics on negative n.
func WithKeyLength(n int) Option {
	if n < 0 {
		panic(panicKeyLengthInvalid)
	}

	return func(o *Options) { o.keyLength = n }
}

// KeyLength reports the configured fixed key length (0 = unchecked).
func (o Options) KeyLength() int { return o.keyLength }

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
