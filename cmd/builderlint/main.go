// Command builderlint reports type-state builders created without their
// constructor. Run it standalone or through go vet -vettool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/katalvlaran/typestate/builderlint"
)

func main() {
	singlechecker.Main(builderlint.Analyzer)
}
