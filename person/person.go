package person

import (
	"slices"

	"github.com/katalvlaran/typestate/state"
)

// Person is the finished, immutable entity produced by Build.
type Person struct {
	name    string
	age     uint8
	partner state.Option[string]
	friends []string
	dead    bool
}

// Name returns the person's name.
func (p Person) Name() string { return p.name }

// Age returns the person's age.
func (p Person) Age() uint8 { return p.age }

// Partner returns the partner, None when it was never supplied.
func (p Person) Partner() state.Option[string] { return p.partner }

// Friends returns a copy of the friends in the order they were added.
// The result is never nil.
func (p Person) Friends() []string {
	out := make([]string, len(p.friends))
	copy(out, p.friends)

	return out
}

// Dead reports whether the person was marked dead.
func (p Person) Dead() bool { return p.dead }

// Equal reports whether p and o hold the same attributes.
func (p Person) Equal(o Person) bool {
	return p.name == o.name &&
		p.age == o.age &&
		p.partner == o.partner &&
		slices.Equal(p.friends, o.friends) &&
		p.dead == o.dead
}
