// Package hopping defines Amplitude, one coupling term of a tight-binding
// Hamiltonian:
//
//	H += a · c†_to c_from
//
// An Amplitude joins a destination and an origin index.Index and carries
// either a fixed complex value or a Callback evaluated every time Value is
// read. Callbacks let a single declaration follow external state (a field, a
// mean-field parameter updated by a self-consistency loop, ...).
//
// # Hermitian conjugates
//
// A Hermitian Hamiltonian needs both (to, from, v) and (from, to, conj(v)).
// Instead of writing both by hand:
//
//	pair := hopping.New(-t, index.New(0), index.New(1)).Plus(hopping.HC)
//	_ = store.AddPair(pair)
//
// HC is a stateless marker; Plus only builds the two entries.
package hopping
