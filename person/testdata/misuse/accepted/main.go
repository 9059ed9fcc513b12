package main

import "github.com/katalvlaran/typestate/person"

func main() {
	b := person.SetName(person.New().AddFriend("Bob"), "John").MarkDead()
	b2 := person.SetPartner(person.SetAge(b, 42), "Jane")
	_ = person.Build(b2)
	_ = person.Build(person.SetAge(person.SetName(person.New(), "John"), 42))
}
