// Package field classifies the attributes of an entity for a type-state
// builder.
//
// Every attribute falls in exactly one Kind:
//
//   - Required:     must be supplied exactly once before completion.
//   - Optional:     may be supplied at most once; absent means the zero value.
//   - Accumulating: a slice appended to any number of times, in call order.
//   - Flag:         a bool that can only be marked true, any number of times.
//
// Required and Optional attributes are gated: each owns one phantom type
// parameter on the builder (see package state). Accumulating attributes and
// flags never change the builder's type.
//
// Classify validates a field list and returns an immutable Classification.
//
// Errors:
//
//	ErrEmptyName       - a field has no name.
//	ErrDuplicateField  - two fields share a name.
//	ErrUnknownKind     - the kind is not one of the four above.
//	ErrFlagNotBool     - a flag is declared with a type other than bool.
//	ErrNotSlice        - an accumulating field is not a slice type.
//	ErrNoRequired      - no required field, so nothing gates completion.
package field
