// SPDX-License-Identifier: MIT

// Package config loads tbdiag run descriptions from YAML.
//
// A file has three sections:
//
//	log:
//	  level: info       # debug | info | warn | error
//	  format: text      # text | json
//	solver:
//	  max_iterations: 50
//	  parallel: true
//	  workers: 4
//	  method: auto      # auto | jacobi | symmetric
//	  tolerance: 1e-12
//	  max_sweeps: 100
//	model:
//	  key_length: 2
//	  lattice:
//	    kind: chain     # chain | square
//	    size: [8]
//	    spins: 2
//	    hopping: -1
//	    onsite: 0
//	    zeeman: 0.5
//	    periodic: true
//	  hoppings:
//	    - {to: [0, 1], from: [0, 0], re: -0.5, hc: true}
//
// Load applies Default before decoding, so omitted keys keep their defaults,
// then runs Validate. BuildModel, SolverOptions and Logger translate the
// result into library values.
package config
