// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// errors.go - sentinel errors for the field package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (field name, offending type) is attached with %w wrapping.

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName indicates a field without a name.
	ErrEmptyName = errors.New("field: empty name")

	// ErrDuplicateField indicates two fields declared with the same name.
	ErrDuplicateField = errors.New("field: duplicate field")

	// ErrUnknownKind indicates a kind outside Required..Flag, or an
	// unrecognized kind token in ParseKind.
	ErrUnknownKind = errors.New("field: unknown kind")

	// ErrFlagNotBool indicates a flag whose declared type is not bool.
	ErrFlagNotBool = errors.New("field: flag must be bool")

	// ErrNotSlice indicates an accumulating field whose declared type is not
	// a slice.
	ErrNotSlice = errors.New("field: accumulating field must be a slice")

	// ErrNoRequired indicates a classification without required fields.
	ErrNoRequired = errors.New("field: no required fields")
)

// fieldErrorf prefixes err with the field name: "<name>: <msg>: <err>".
func fieldErrorf(name, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%q: %s: %w", name, fmt.Sprintf(format, args...), err)
}
