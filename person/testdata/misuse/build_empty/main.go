package main

import "github.com/katalvlaran/typestate/person"

func main() {
	_ = person.Build(person.New())
}
