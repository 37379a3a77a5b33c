// SPDX-License-Identifier: MIT

// Package property extracts physical quantities from a solved spectrum.
//
// The Extractor only talks to the narrow Spectrum interface, so it works with
// the block solver or any other source of eigenvalues and eigenvectors:
//
//	bd, _ := solver.New(store)
//	_ = bd.Init()
//	_ = bd.Run()
//	pe, _ := property.NewExtractor(bd)
//	ev, _ := pe.EigenValues()
//	n01, _ := pe.ExpectationValue(index.New(0), index.New(1), 0.0)
//
// Occupation follows the zero-temperature step at the Fermi level unless
// WithTemperature selects a Fermi-Dirac distribution.
package property
