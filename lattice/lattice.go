// SPDX-License-Identifier: MIT
// Package: typestate/lattice
//
// lattice.go - Boolean lattice over the gated fields of a classification.
//
// Contract:
//   • Bit i corresponds to field.Classification.Gated()[i].
//   • Transitions only ever add a bit; there is no edge that clears one.
//   • The lattice is immutable after New.

package lattice

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/typestate/field"
)

const (
	// MaxGated bounds the number of gated fields (2^16 states).
	MaxGated = 16
	// MaxOrdered bounds the number of required fields Orderings will
	// permute (8! = 40320 orderings).
	MaxOrdered = 8
)

// Mask is a set of supplied gated fields.
type Mask uint32

// Has reports whether bit i is set.
func (m Mask) Has(i int) bool { return m&(1<<uint(i)) != 0 }

// With returns m with bit i set.
func (m Mask) With(i int) Mask { return m | 1<<uint(i) }

// Count returns the number of set bits.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Transition is one setter call available from a state.
type Transition struct {
	Field string // gated field supplied by the setter
	From  Mask
	To    Mask
}

// Lattice is the state space of one builder.
type Lattice struct {
	gated    []field.Field
	required Mask
	index    map[string]int
}

// New builds the lattice of c.
// Complexity: O(G).
func New(c field.Classification) (*Lattice, error) {
	gated := c.Gated()
	if len(gated) > MaxGated {
		return nil, fmt.Errorf("New: %d gated fields, max %d: %w", len(gated), MaxGated, ErrTooManyFields)
	}

	l := &Lattice{gated: gated, index: make(map[string]int, len(gated))}
	for i, f := range gated {
		l.index[f.Name] = i
		if f.Kind == field.Required {
			l.required = l.required.With(i)
		}
	}

	return l, nil
}

// Width returns the number of gated fields (type parameters).
func (l *Lattice) Width() int { return len(l.gated) }

// Count returns the number of states, 2^Width.
func (l *Lattice) Count() int { return 1 << uint(len(l.gated)) }

// Bottom is the state returned by the builder constructor.
func (l *Lattice) Bottom() Mask { return 0 }

// Top is the state with every gated field supplied.
func (l *Lattice) Top() Mask { return Mask(l.Count() - 1) }

// States returns every state in ascending mask order.
func (l *Lattice) States() []Mask {
	out := make([]Mask, l.Count())
	for i := range out {
		out[i] = Mask(i)
	}

	return out
}

// Buildable reports whether every required bit is set in m.
func (l *Lattice) Buildable(m Mask) bool {
	return m&l.required == l.required
}

// Transitions lists the setters callable from m, in gated order.
func (l *Lattice) Transitions(m Mask) []Transition {
	var out []Transition
	for i, f := range l.gated {
		if m.Has(i) {
			continue
		}
		out = append(out, Transition{Field: f.Name, From: m, To: m.With(i)})
	}

	return out
}

// Apply returns the state reached by supplying the named fields in order from
// the bottom state. It reports ErrUnknownField for a name that is not gated,
// and returns ok=false when a field is supplied twice: that call sequence
// does not type-check.
func (l *Lattice) Apply(names ...string) (m Mask, ok bool, err error) {
	for _, name := range names {
		i, found := l.index[name]
		if !found {
			return 0, false, fmt.Errorf("Apply(%q): %w", name, ErrUnknownField)
		}
		if m.Has(i) {
			return m, false, nil
		}
		m = m.With(i)
	}

	return m, true, nil
}

// Label renders the builder instantiation for m, e.g.
// "Builder[Set, Unset, Unset]".
func (l *Lattice) Label(typeName string, m Mask) string {
	var sb strings.Builder
	sb.WriteString(typeName)
	sb.WriteByte('[')
	for i := range l.gated {
		if i > 0 {
			sb.WriteString(", ")
		}
		if m.Has(i) {
			sb.WriteString("Set")
		} else {
			sb.WriteString("Unset")
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// Fields returns the names of the fields supplied in m, in gated order.
func (l *Lattice) Fields(m Mask) []string {
	var out []string
	for i, f := range l.gated {
		if m.Has(i) {
			out = append(out, f.Name)
		}
	}

	return out
}

// Orderings returns every permutation of the required field names, in
// lexicographic order of their gated indexes.
// Complexity: O(R!·R) time and space.
func (l *Lattice) Orderings() ([][]string, error) {
	var req []string
	for i, f := range l.gated {
		if l.required.Has(i) {
			req = append(req, f.Name)
		}
	}
	if len(req) > MaxOrdered {
		return nil, fmt.Errorf("Orderings: %d required fields, max %d: %w", len(req), MaxOrdered, ErrTooManyOrderings)
	}

	var out [][]string
	used := make([]bool, len(req))
	cur := make([]string, 0, len(req))
	var walk func()
	walk = func() {
		if len(cur) == len(req) {
			out = append(out, append([]string(nil), cur...))
			return
		}
		for i, name := range req {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, name)
			walk()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	walk()

	return out, nil
}
