package main

import "github.com/katalvlaran/typestate/person"

func main() {
	b := person.SetName(person.New(), "John")
	_ = person.SetName(b, "Johnny")
}
