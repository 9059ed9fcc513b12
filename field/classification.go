// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// classification.go - the validated partition of an entity's attributes.
//
// Contract:
//   • Declaration order is preserved in every accessor.
//   • Gated() lists required fields first, then optional ones; this is the
//     canonical order of a builder's type parameters.
//   • Accessors return copies; a Classification never changes after Classify.

package field

import (
	"strings"
)

// Field describes one attribute of an entity.
type Field struct {
	// Name is the Go identifier of the attribute.
	Name string
	// Type is the Go type expression as written in source, e.g. "[]string".
	Type string
	// Kind is the attribute's classification.
	Kind Kind
}

// Elem returns the element type of an accumulating field ("[]string" →
// "string"). For other kinds it returns Type unchanged.
func (f Field) Elem() string {
	if f.Kind != Accumulating {
		return f.Type
	}

	return strings.TrimSpace(strings.TrimPrefix(f.Type, "[]"))
}

// Classification is a validated, ordered set of fields.
type Classification struct {
	fields []Field
}

// Classify validates fields and returns their classification.
// Complexity: O(n) time and space.
func Classify(fields ...Field) (Classification, error) {
	seen := make(map[string]struct{}, len(fields))
	required := 0
	for _, f := range fields {
		if strings.TrimSpace(f.Name) == "" {
			return Classification{}, ErrEmptyName
		}
		if _, dup := seen[f.Name]; dup {
			return Classification{}, fieldErrorf(f.Name, "declared twice", ErrDuplicateField)
		}
		seen[f.Name] = struct{}{}

		switch {
		case !f.Kind.valid():
			return Classification{}, fieldErrorf(f.Name, "kind %d", ErrUnknownKind, uint8(f.Kind))
		case f.Kind == Flag && f.Type != "" && f.Type != "bool":
			return Classification{}, fieldErrorf(f.Name, "type %s", ErrFlagNotBool, f.Type)
		case f.Kind == Accumulating && !strings.HasPrefix(strings.TrimSpace(f.Type), "[]"):
			return Classification{}, fieldErrorf(f.Name, "type %s", ErrNotSlice, f.Type)
		case f.Kind == Required:
			required++
		}
	}
	if required == 0 {
		return Classification{}, ErrNoRequired
	}

	out := make([]Field, len(fields))
	copy(out, fields)

	return Classification{fields: out}, nil
}

// MustClassify is like Classify but panics on error. Intended for package
// level declarations of fixed layouts.
func MustClassify(fields ...Field) Classification {
	c, err := Classify(fields...)
	if err != nil {
		panic(err)
	}

	return c
}

// Len returns the number of fields.
func (c Classification) Len() int { return len(c.fields) }

// Fields returns every field in declaration order.
func (c Classification) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)

	return out
}

// Required returns the required fields in declaration order.
func (c Classification) Required() []Field { return c.filter(Required) }

// Optional returns the optional fields in declaration order.
func (c Classification) Optional() []Field { return c.filter(Optional) }

// Accumulating returns the accumulating fields in declaration order.
func (c Classification) Accumulating() []Field { return c.filter(Accumulating) }

// Flags returns the flag fields in declaration order.
func (c Classification) Flags() []Field { return c.filter(Flag) }

// Gated returns required then optional fields: the canonical order of the
// builder's type parameters.
func (c Classification) Gated() []Field {
	return append(c.filter(Required), c.filter(Optional)...)
}

// Lookup returns the field called name.
func (c Classification) Lookup(name string) (Field, bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

func (c Classification) filter(k Kind) []Field {
	var out []Field
	for _, f := range c.fields {
		if f.Kind == k {
			out = append(out, f)
		}
	}

	return out
}
