// Package state provides the compile-time vocabulary of type-state builders:
// marker types that record whether a gated field has been supplied, storage
// whose readability is proven by such a marker, and a present-or-absent value
// for optional attributes.
//
// What:
//
//   - Unset, Set: zero-size marker types. A builder carries one type
//     parameter per gated field; each is instantiated with Unset until the
//     field's setter runs, and with Set afterwards.
//   - Bit: the closed constraint Unset | Set. No other type satisfies it, so
//     a builder can never be instantiated with a foreign marker.
//   - Slot[T, B]: storage for a gated field. Fill only accepts Slot[T, Unset]
//     and Get only accepts Slot[T, Set], so both "set twice" and "read before
//     set" are type errors rather than run-time conditions.
//   - Option[T]: the finished value of an optional attribute (Some or None).
//
// Why:
//
//   - Generic functions over Slot and Bit let every builder (hand-written or
//     generated by package gen) share the same transition primitives.
//   - Nothing here allocates, locks or fails: all guarantees are static.
//
// Example:
//
//	var s state.Slot[string, state.Unset]
//	filled := state.Fill(s, "John") // Slot[string, state.Set]
//	name := state.Get(filled)       // "John"
//	_ = state.Get(s)                // does not compile
//
// Runtime introspection (IsSet, Slot.IsSet, Peek, Maybe) reads the marker of
// a type argument. It never gates anything; it only lets generic code that is
// polymorphic in a bit (for example Build over an optional field) decide
// between Some and None.
package state
