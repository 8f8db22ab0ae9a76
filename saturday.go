// Package saturday implements a DPLL-style SAT solver: unit propagation
// over a partial assignment with a decision trail, chronological
// backtracking, and model enumeration by blocking-clause refinement.
//
// The package intentionally does not implement conflict-driven clause
// learning, non-chronological backjumping, watched literals, restarts, or
// any preprocessing pass. It favors a search that is traceable end to end
// via a Tracer over one that is competitive.
package saturday

// Solve is the convenience entry point: problem is a DIMACS-style slice of
// clauses (each a slice of nonzero ints), and the return is nil/false on
// UNSAT, or a slice of signed variable indices (positive if true, in
// increasing variable order) on SAT. Only variables the search assigned are
// listed: a variable left unassigned because every clause was already
// satisfied without it is omitted.
//
// Most callers building their own CNF should prefer (*CNF).Solve instead,
// which accepts Options (unit propagation toggle, tracing).
func Solve(problem [][]int) (assignment []int, ok bool) {
	c, err := FromInts(problem)
	if err != nil {
		panic(err)
	}
	res := c.Solve(Options{UnitProp: true})
	if !res.Ok {
		return nil, false
	}
	soln := make([]int, 0, len(res.Assignment))
	for v := 1; v <= c.V(); v++ {
		val, ok := res.Assignment[v]
		if !ok {
			continue
		}
		if val {
			soln = append(soln, v)
		} else {
			soln = append(soln, -v)
		}
	}
	return soln, true
}
