package main

import "github.com/katalvlaran/typestate/state"

func main() {
	var s state.Slot[string, state.Unset]
	_ = state.Get(s)
}
