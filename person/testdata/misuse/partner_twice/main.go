package main

import "github.com/katalvlaran/typestate/person"

func main() {
	b := person.SetPartner(person.New(), "Jane")
	_ = person.SetPartner(b, "Joan")
}
