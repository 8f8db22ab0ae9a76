// Package config loads problem documents: YAML descriptions of a
// package-installation or resource-allocation problem, in place of the
// original Python scripts' hardcoded conflicts/dependencies/requirements
// literals. A package or allocation document unmarshals into its own Doc
// struct, whose Problem method converts it to the matching encoder's
// Problem struct.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/cespare/satsolve/encode/allocate"
	"github.com/cespare/satsolve/encode/packages"
)

// CNFProblemDoc is the YAML shape of a raw CNF problem, for callers who'd
// rather write a problem document than a DIMACS file by hand.
type CNFProblemDoc struct {
	Clauses [][]int `yaml:"clauses"`
}

// LoadCNFProblemFile reads a CNFProblemDoc from the file at path.
func LoadCNFProblemFile(path string) (CNFProblemDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return CNFProblemDoc{}, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return CNFProblemDoc{}, err
	}
	var doc CNFProblemDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return CNFProblemDoc{}, err
	}
	return doc, nil
}

// PackageProblemDoc is the YAML shape of a package-installation problem
// document; its fields mirror packages.Problem field for field.
type PackageProblemDoc struct {
	Conflicts []struct {
		A        string `yaml:"a"`
		B        string `yaml:"b"`
		VersionA string `yaml:"version_a,omitempty"`
		VersionB string `yaml:"version_b,omitempty"`
	} `yaml:"conflicts"`
	Dependencies []struct {
		Package   string   `yaml:"package"`
		DependsOn []string `yaml:"depends_on"`
	} `yaml:"dependencies"`
	Requirements [][]string `yaml:"requirements"`
}

// Problem converts the document into a packages.Problem.
func (d PackageProblemDoc) Problem() packages.Problem {
	p := packages.Problem{
		Requirements: d.Requirements,
	}
	for _, c := range d.Conflicts {
		p.Conflicts = append(p.Conflicts, packages.Conflict{
			A: c.A, B: c.B,
			VersionA: c.VersionA, VersionB: c.VersionB,
		})
	}
	for _, dep := range d.Dependencies {
		p.Dependencies = append(p.Dependencies, packages.Dependency{
			Package:   dep.Package,
			DependsOn: dep.DependsOn,
		})
	}
	return p
}

// LoadPackageProblem reads and unmarshals a PackageProblemDoc from r.
func LoadPackageProblem(r io.Reader) (PackageProblemDoc, error) {
	var doc PackageProblemDoc
	b, err := io.ReadAll(r)
	if err != nil {
		return doc, err
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// LoadPackageProblemFile reads a PackageProblemDoc from the file at path.
func LoadPackageProblemFile(path string) (PackageProblemDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return PackageProblemDoc{}, err
	}
	defer f.Close()
	return LoadPackageProblem(f)
}

// AllocationProblemDoc is the YAML shape of a resource-allocation problem
// document; its fields mirror allocate.Problem field for field.
type AllocationProblemDoc struct {
	NumTasks    int     `yaml:"num_tasks"`
	NumMachines int     `yaml:"num_machines"`
	Conflicts   [][]int `yaml:"conflicts"`
}

// Problem converts the document into an allocate.Problem.
func (d AllocationProblemDoc) Problem() allocate.Problem {
	p := allocate.Problem{
		NumTasks:    d.NumTasks,
		NumMachines: d.NumMachines,
	}
	for _, c := range d.Conflicts {
		p.Conflicts = append(p.Conflicts, [2]int{c[0], c[1]})
	}
	return p
}

// LoadAllocationProblem reads and unmarshals an AllocationProblemDoc from r.
func LoadAllocationProblem(r io.Reader) (AllocationProblemDoc, error) {
	var doc AllocationProblemDoc
	b, err := io.ReadAll(r)
	if err != nil {
		return doc, err
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// LoadAllocationProblemFile reads an AllocationProblemDoc from the file at
// path.
func LoadAllocationProblemFile(path string) (AllocationProblemDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return AllocationProblemDoc{}, err
	}
	defer f.Close()
	return LoadAllocationProblem(f)
}
