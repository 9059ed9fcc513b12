// SPDX-License-Identifier: MIT
// Package: typestate/state
//
// slot.go - storage for gated fields.
//
// A Slot[T, Unset] holds the zero T and exposes no reader. Fill is the only
// way to obtain a Slot[T, Set], and Get is the only reader, so a value that
// reaches Get was necessarily produced by exactly one Fill.

package state

// Slot is storage for a single gated field of type T whose fill state is B.
// The zero value is a valid Slot[T, Unset].
type Slot[T any, B Bit] struct {
	v T
}

// IsSet reports the slot's marker at run time.
func (_ Slot[T, B]) IsSet() bool {
	return IsSet[B]()
}

// Fill stores v in an unset slot and returns the set slot.
// Filling a Slot[T, Set] does not type-check.
func Fill[T any](_ Slot[T, Unset], v T) Slot[T, Set] {
	return Slot[T, Set]{v: v}
}

// Get returns the value of a set slot.
// Reading a Slot[T, Unset] does not type-check.
func Get[T any](s Slot[T, Set]) T {
	return s.v
}

// Peek returns the stored value and whether B is Set. It serves code that is
// generic over B, such as completion over an optional field.
func Peek[T any, B Bit](s Slot[T, B]) (T, bool) {
	if !IsSet[B]() {
		var zero T
		return zero, false
	}

	return s.v, true
}

// Maybe converts a slot of either state into an Option.
func Maybe[T any, B Bit](s Slot[T, B]) Option[T] {
	if v, ok := Peek(s); ok {
		return Some(v)
	}

	return None[T]()
}
