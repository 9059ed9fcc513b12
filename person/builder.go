// SPDX-License-Identifier: MIT
// Package: typestate/person
//
// builder.go - the type-state Builder for Person.
//
// Contract (strict):
//   • Type parameters are, in order: Name, Age, Partner.
//   • A gated setter accepts only a builder whose own position is Unset and
//     copies every other position through unchanged.
//   • AddFriend and MarkDead are defined for every instantiation and return
//     the receiver's exact type.
//   • Build accepts only Builder[Set, Set, P].
//   • No operation mutates memory reachable from its input.

package person

import (
	"slices"

	"github.com/katalvlaran/typestate/state"
)

// Builder assembles a Person. N, A and P record whether Name, Age and
// Partner have been supplied.
type Builder[N, A, P state.Bit] struct {
	name    state.Slot[string, N]
	age     state.Slot[uint8, A]
	partner state.Slot[string, P]
	friends []string
	dead    bool
}

// Empty is the type returned by New.
type Empty = Builder[state.Unset, state.Unset, state.Unset]

// New returns a builder with no field supplied.
func New() Empty {
	return Empty{}
}

// SetName supplies the required name.
func SetName[A, P state.Bit](b Builder[state.Unset, A, P], name string) Builder[state.Set, A, P] {
	return Builder[state.Set, A, P]{
		name:    state.Fill(b.name, name),
		age:     b.age,
		partner: b.partner,
		friends: b.friends,
		dead:    b.dead,
	}
}

// SetAge supplies the required age.
func SetAge[N, P state.Bit](b Builder[N, state.Unset, P], age uint8) Builder[N, state.Set, P] {
	return Builder[N, state.Set, P]{
		name:    b.name,
		age:     state.Fill(b.age, age),
		partner: b.partner,
		friends: b.friends,
		dead:    b.dead,
	}
}

// SetPartner supplies the optional partner. It may be called at most once.
func SetPartner[N, A state.Bit](b Builder[N, A, state.Unset], partner string) Builder[N, A, state.Set] {
	return Builder[N, A, state.Set]{
		name:    b.name,
		age:     b.age,
		partner: state.Fill(b.partner, partner),
		friends: b.friends,
		dead:    b.dead,
	}
}

// AddFriend appends one friend. Callable in every state.
func (b Builder[N, A, P]) AddFriend(name string) Builder[N, A, P] {
	// Clip forces a fresh backing array so earlier builder values never
	// observe this append.
	b.friends = append(slices.Clip(b.friends), name)

	return b
}

// MarkDead sets the dead flag. Repeated calls leave it set.
func (b Builder[N, A, P]) MarkDead() Builder[N, A, P] {
	b.dead = true

	return b
}

// Build completes a builder whose name and age are supplied. The partner may
// or may not be.
func Build[P state.Bit](b Builder[state.Set, state.Set, P]) Person {
	return Person{
		name:    state.Get(b.name),
		age:     state.Get(b.age),
		partner: state.Maybe(b.partner),
		friends: slices.Clone(b.friends),
		dead:    b.dead,
	}
}
