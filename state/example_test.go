package state_test

import (
	"fmt"

	"github.com/katalvlaran/typestate/state"
)

// ExampleFill shows the one-way transition of a gated slot.
func ExampleFill() {
	var name state.Slot[string, state.Unset]
	set := state.Fill(name, "John")

	fmt.Println(name.IsSet(), set.IsSet(), state.Get(set))

	// Output:
	// false true John
}

// ExampleMaybe shows how completion code reads an optional slot.
func ExampleMaybe() {
	var partner state.Slot[string, state.Unset]
	fmt.Println(state.Maybe(partner))
	fmt.Println(state.Maybe(state.Fill(partner, "Jane")))

	// Output:
	// None
	// Some(Jane)
}
