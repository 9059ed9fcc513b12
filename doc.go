// Package typestate is a toolkit for compile-time checked object
// construction in Go: builders whose type records which fields have been
// supplied, so that an incomplete or duplicated construction is rejected by
// the type checker instead of being detected at run time.
//
// What is a type-state builder?
//
//	A builder with one phantom type parameter per gated field:
//
//		person.New()                                Builder[Unset, Unset, Unset]
//		person.SetName(b, "John")                   Builder[Set,   Unset, Unset]
//		person.SetAge(b, 42)                        Builder[Set,   Set,   Unset]
//		person.Build(b)                             Person
//
//	SetName only accepts a builder whose first parameter is Unset, and Build
//	only accepts one whose required parameters are Set. Calling SetName twice
//	or Build too early does not compile.
//
// Under the hood, everything is organized under these packages:
//
//	state/       - Unset/Set markers, the Bit constraint, Slot storage, Option
//	field/       - classification of attributes: required, optional, append, flag
//	lattice/     - the 2^G state space of a builder, its transitions and orderings
//	person/      - the hand-written reference builder
//	gen/         - generator for builders of annotated structs
//	builderlint/ - analyzer rejecting zero-valued completed builders
//	cmd/         - typestate-gen and builderlint commands
//	examples/    - runnable person demo and a generated endpoint builder
//
// Guarantees:
//
//   - Required fields: exactly once before Build.
//   - Optional fields: at most once; absent means None / zero value.
//   - Accumulating fields and flags: any number of times, in any state.
//   - Builders are values; keeping an earlier one around is harmless.
//
//	go get github.com/katalvlaran/typestate
package typestate
