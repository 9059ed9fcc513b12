package lattice

import "errors"

var (
	// ErrTooManyFields indicates a classification with more than MaxGated
	// gated fields.
	ErrTooManyFields = errors.New("lattice: too many gated fields")

	// ErrTooManyOrderings indicates more than MaxOrdered required fields
	// passed to Orderings.
	ErrTooManyOrderings = errors.New("lattice: too many required fields to order")

	// ErrUnknownField indicates a name that is not a gated field.
	ErrUnknownField = errors.New("lattice: unknown gated field")
)
