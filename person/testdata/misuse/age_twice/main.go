package main

import "github.com/katalvlaran/typestate/person"

func main() {
	b := person.SetAge(person.SetName(person.New(), "John"), 42)
	_ = person.SetAge(b.AddFriend("Bob"), 43)
}
