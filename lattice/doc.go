// Package lattice enumerates the state space of a type-state builder.
//
// A builder with G gated fields has 2^G instantiations, one per subset of
// fields already supplied. Each setter moves from a state to the state with
// one more bit, so the space is the Boolean lattice over the gated fields:
// a DAG whose bottom is New() and whose buildable states are those with
// every required bit set.
//
// Key types & functions:
//
//   - Mask:        bit i set ⇔ gated field i has been supplied.
//   - Lattice:     built from a field.Classification by New.
//   - States:      every Mask, ascending.
//   - Transitions: the setters callable from a Mask.
//   - Buildable:   whether Build type-checks on a Mask.
//   - Orderings:   every permutation of the required fields; used to check
//     that completion is independent of setter order.
//
// Complexity:
//
//   - States:     O(2^G)
//   - Orderings:  O(R!·R)
//
// Errors:
//
//	ErrTooManyFields     G exceeds MaxGated.
//	ErrTooManyOrderings  R exceeds MaxOrdered.
//	ErrUnknownField      a field name is not gated in this lattice.
package lattice
