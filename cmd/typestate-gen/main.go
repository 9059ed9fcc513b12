// Command typestate-gen generates type-state builders for structs annotated
// with //typestate:builder and describes their state lattices.
//
//	typestate-gen generate endpoint.go
//	typestate-gen describe endpoint.go Endpoint
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
