package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/satsolve"
	"github.com/cespare/satsolve/config"
)

// loadCNF reads a *saturday.CNF from path, or from stdin if path is empty.
// A .yaml/.yml extension is parsed as a config.CNFProblemDoc; anything else
// is parsed as DIMACS.
func loadCNF(path string) (*saturday.CNF, error) {
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" {
			doc, err := config.LoadCNFProblemFile(path)
			if err != nil {
				return nil, err
			}
			return saturday.FromInts(doc.Clauses)
		}
	}

	var r = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	problem, err := saturday.ParseDIMACS(r)
	if err != nil {
		return nil, err
	}
	return saturday.FromInts(problem)
}

// pathArg returns args[0] if present, else "" (meaning: read stdin).
func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
