package main

import "github.com/katalvlaran/typestate/person"

func main() {
	b := person.SetPartner(person.SetName(person.New(), "John"), "Jane").MarkDead()
	_ = person.Build(b)
}
