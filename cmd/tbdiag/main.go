// SPDX-License-Identifier: MIT

// Command tbdiag builds a tight-binding model from a YAML file and
// diagonalizes it block by block.
//
// Usage:
//
//	tbdiag solve  --config model.yaml [--parallel] [--workers N] [--max-iterations N] [--output spectrum.yaml]
//	tbdiag blocks --config model.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
