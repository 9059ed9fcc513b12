// SPDX-License-Identifier: MIT
// Package: typestate/state
//
// state.go - marker types and the Bit constraint.
//
// Contract (strict):
//   • Unset and Set are the only types that satisfy Bit.
//   • A marker carries no data; it only exists as a type argument.
//   • A gated position moves from Unset to Set at most once and never back.

package state

// Unset marks a gated field that has not been supplied yet.
type Unset struct{}

// Set marks a gated field that has been supplied exactly once.
type Set struct{}

// Bit is the closed set of markers a builder type parameter may take.
type Bit interface {
	Unset | Set
}

// String implements fmt.Stringer.
func (Unset) String() string { return "Unset" }

// String implements fmt.Stringer.
func (Set) String() string { return "Set" }

// IsSet reports whether the marker B is Set.
// Complexity: O(1), no allocation.
func IsSet[B Bit]() bool {
	var b B
	_, ok := any(b).(Set)

	return ok
}

// Name returns the marker name of B ("Unset" or "Set").
func Name[B Bit]() string {
	if IsSet[B]() {
		return Set{}.String()
	}

	return Unset{}.String()
}
