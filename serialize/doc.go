// Package serialize turns coupling lists and solved spectra into flat record
// sequences and encodes them as YAML.
//
// A Record is a sequence of index keys and one complex value:
//
//	([to, from], amplitude)        one coupling of a model
//	([state], energy)              one eigenvalue
//	([state, key], coefficient)    one eigenvector coefficient
//
// Producers (model.Store.Records, solver.BlockDiagonalizer.Records) stay
// format-agnostic; only this package knows about YAML.
package serialize
