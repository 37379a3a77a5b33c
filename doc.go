// Package tbdiag builds sparse tight-binding Hamiltonians and diagonalizes
// them block by block.
//
// What is tbdiag?
//
//	A pure-Go toolkit for single-particle lattice models:
//		• index/     – multi-component keys {a, b, …} with lexicographic order
//		• hopping/   – amplitudes a·|to⟩⟨from|, constant or callback-driven
//		• model/     – coupling store; Finalize fixes the basis and discovers
//		               independent blocks with union-find
//		• matrix/    – dense Hermitian matrices, complex Jacobi and gonum eigen kernels
//		• solver/    – BlockDiagonalizer: per-block assembly and diagonalization,
//		               optional parallel pass and self-consistency loop
//		• property/  – eigenvalue container and expectation values
//		• serialize/ – YAML records for couplings and spectra
//		• config/    – YAML run descriptions for the tbdiag command
//
// Quick example:
//
//	s := model.New()
//	_ = s.AddPair(hopping.New(1, index.New(1), index.New(0)).Plus(hopping.HC))
//	_ = s.Finalize()
//
//	bd, _ := solver.New(s)
//	_ = bd.Init()
//	_ = bd.Run()
//	e0, _ := bd.EigenValue(0) // -1
//
// Blocks:
//
//	Two keys belong to the same block when a chain of amplitudes connects
//	them. Blocks never mix, so a Hamiltonian of N states in blocks of size
//	s_b costs Σ s_b³ instead of N³ to diagonalize.
//
//	go get github.com/katalvlaran/tbdiag
package tbdiag
