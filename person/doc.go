// Package person is the hand-written reference type-state builder.
//
// A Person has two required attributes (Name, Age), one optional attribute
// (Partner), one accumulating attribute (Friends) and one flag (Dead). Its
// Builder carries one phantom type parameter per gated attribute, in that
// canonical order:
//
//	Builder[N, A, P state.Bit]
//
// Operations:
//
//   - New()                     Builder[Unset, Unset, Unset]
//   - SetName(b, name)          N: Unset → Set
//   - SetAge(b, age)            A: Unset → Set
//   - SetPartner(b, partner)    P: Unset → Set
//   - b.AddFriend(name)         any state, type preserved
//   - b.MarkDead()              any state, type preserved, idempotent
//   - Build(b)                  only Builder[Set, Set, P], any P
//
// Go methods cannot narrow the receiver's type arguments, so every
// operation that changes or requires a particular state is a package-level
// generic function. A misuse (SetName twice, Build before SetAge) is a type
// inference failure reported by the compiler.
//
// Builders are values. Every operation returns a fresh Builder and never
// writes through memory reachable from its argument, so a builder kept from
// an earlier step stays exactly as it was. Obtain builders from New only; a
// zero value declared with a completed type bypasses the constructor (see
// package builderlint).
package person
