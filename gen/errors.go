// SPDX-License-Identifier: MIT
// Package: typestate/gen
//
// errors.go - sentinel errors for the gen package.
//
// Error policy:
//   • Sentinels only; context is attached with %w via genErrorf.
//   • Messages carry "<file>:<line>" of the offending declaration.

package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEntities indicates a source file without //typestate:builder structs.
	ErrNoEntities = errors.New("gen: no annotated entities")

	// ErrNotStruct indicates the directive on a type that is not a struct.
	ErrNotStruct = errors.New("gen: entity is not a struct")

	// ErrGenericEntity indicates an entity with type parameters.
	ErrGenericEntity = errors.New("gen: generic entities are not supported")

	// ErrUntaggedField indicates a field without a classification tag.
	ErrUntaggedField = errors.New("gen: field has no classification tag")

	// ErrUnsupportedField indicates an embedded field. Multi-name fields
	// (A, B T) are accepted and classified per name.
	ErrUnsupportedField = errors.New("gen: unsupported field")

	// ErrNameCollision indicates two fields whose exported forms coincide,
	// such as host and Host, so their generated identifiers would clash.
	ErrNameCollision = errors.New("gen: generated names collide")

	// ErrInvalidTagKey indicates a struct tag key that cannot appear in a tag.
	ErrInvalidTagKey = errors.New("gen: invalid tag key")

	// ErrUnknownEntity indicates a lookup of an entity the file does not declare.
	ErrUnknownEntity = errors.New("gen: unknown entity")
)

// genErrorf wraps err with a position and a formatted message.
func genErrorf(pos, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", pos, fmt.Sprintf(format, args...), err)
}
