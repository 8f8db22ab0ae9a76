// Command saturday is a toy SAT solver CLI: it reads a DIMACS CNF (or a
// YAML problem document) and either finds a model, enumerates every model,
// or runs one of the package-installation / resource-allocation encoders
// against a YAML problem document.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
