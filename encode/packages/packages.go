// Package packages encodes the package-installation problem as CNF and
// solves it with saturday: for every conflicting pair, a clause forbidding
// both; for every dependency edge, a clause requiring the dependency
// whenever the dependent is installed; for every requirement group, an
// at-least-one-of clause.
package packages

import (
	"fmt"

	"github.com/blang/semver/v4"

	"github.com/cespare/satsolve"
	"github.com/cespare/satsolve/symtab"
)

// Conflict says package A and package B must not both be installed. Either
// side may optionally carry an exact semantic version; when both sides
// carry one, the encoder only emits the exclusion clause if the two
// versions differ (see versionsConflict).
type Conflict struct {
	A, B     string
	VersionA string // optional: exact semantic version of A, e.g. "1.2.3"
	VersionB string // optional: exact semantic version of B
}

// Dependency says that installing Package requires installing every
// package in DependsOn.
type Dependency struct {
	Package   string
	DependsOn []string
}

// Problem is the input to the package-installation encoder: conflicting
// pairs, dependency edges, and requirement groups (at least one package
// from each group must be installed).
type Problem struct {
	Conflicts    []Conflict
	Dependencies []Dependency
	Requirements [][]string
}

// Encoded is a solved (or attempted) package-installation problem: the CNF
// that was built, the symbol table used to build it, and, if solvable, the
// result.
type Encoded struct {
	CNF    *saturday.CNF
	Table  *symtab.Table
	Result saturday.Result
}

// Solve builds the CNF for p and solves it with unit propagation enabled.
func Solve(p Problem) (*Encoded, error) {
	return SolveWithOptions(p, saturday.Options{UnitProp: true})
}

// SolveWithOptions builds the CNF for p and solves it with opts, letting
// callers (e.g. the CLI's --no-unit-prop / --verbose flags) control unit
// propagation and tracing.
func SolveWithOptions(p Problem, opts saturday.Options) (*Encoded, error) {
	c := saturday.NewCNF()
	table := symtab.New()

	for _, conflict := range p.Conflicts {
		if conflict.VersionA != "" && conflict.VersionB != "" {
			conflicts, err := versionsConflict(conflict.VersionA, conflict.VersionB)
			if err != nil {
				return nil, err
			}
			if !conflicts {
				continue
			}
		}
		varA := table.NumberOf(conflict.A)
		varB := table.NumberOf(conflict.B)
		if err := c.Add([]int{-varA, -varB}); err != nil {
			return nil, err
		}
	}

	for _, dep := range p.Dependencies {
		varPkg := table.NumberOf(dep.Package)
		for _, on := range dep.DependsOn {
			varOn := table.NumberOf(on)
			if err := c.Add([]int{-varPkg, varOn}); err != nil {
				return nil, err
			}
		}
	}

	for _, choice := range p.Requirements {
		clause := make([]int, 0, len(choice))
		for _, pkg := range choice {
			clause = append(clause, table.NumberOf(pkg))
		}
		if err := c.Add(clause); err != nil {
			return nil, err
		}
	}

	res := c.Solve(opts)
	return &Encoded{CNF: c, Table: table, Result: res}, nil
}

// NamedResult converts a solved Encoded's numeric assignment into an
// identifier-keyed one, mirroring packages.py's use of
// Numbering.name_assignment. It panics if Result is UNSAT; check
// Result.Ok first.
func (e *Encoded) NamedResult() map[string]bool {
	if !e.Result.Ok {
		panic("packages: NamedResult called on an UNSAT encoding")
	}
	return e.Table.NameAssignment(e.Result.Assignment)
}

// versionsConflict reports whether two semantic-version strings describe
// versions that would actually collide if installed together. In this
// simplified model, two exact versions "conflict" (in the sense of needing
// the exclusion clause) whenever they are not equal. A conflict declared
// between two concrete package versions only matters when those two
// versions both resolve to something installable and different.
func versionsConflict(a, b string) (bool, error) {
	va, err := semver.Parse(a)
	if err != nil {
		return false, fmt.Errorf("packages: invalid version %q: %w", a, err)
	}
	vb, err := semver.Parse(b)
	if err != nil {
		return false, fmt.Errorf("packages: invalid version %q: %w", b, err)
	}
	return !va.EQ(vb), nil
}
