package saturday

// Options controls one solve (or enumerate) call. The zero value disables
// unit propagation and tracing, which is valid but slow; most callers want
// UnitProp: true.
type Options struct {
	// UnitProp enables unit propagation in the clause scanner. The set of
	// solutions an enumeration returns does not depend on this flag, only
	// performance and the trace do.
	UnitProp bool
	// Tracer, if non-nil, observes every trail mutation. Leave nil (or
	// set it to NopTracer) to disable tracing.
	Tracer Tracer
}

// Result is the outcome of a solve: either Ok is false (UNSAT) or Ok is true
// and Assignment holds a satisfying assignment. This is a plain tagged
// struct, not an error. UNSAT is an ordinary result of search, never a
// failure.
type Result struct {
	Ok         bool
	Assignment map[int]bool
}

// solve runs the DPLL loop to a fixpoint: sweep, and react to the verdict by
// deciding or backtracking, until the formula is satisfied or the search
// space is exhausted.
func solve(v int, clauses []Clause, opts Options) Result {
	p := NewValuation(v, opts.Tracer)
	for {
		switch sweep(clauses, p, opts.UnitProp) {
		case ScanSAT:
			return Result{Ok: true, Assignment: p.Assignment()}
		case ScanUpdated:
			// PROPAGATE again.
		case ScanUNSAT:
			if !p.Backtrack() {
				return Result{Ok: false}
			}
		case ScanUnknown:
			if !p.Guess(true) {
				// Defensive: sweep said UNKNOWN but nothing is
				// unassigned. Can't happen given sweep's contract,
				// but fall back to backtracking rather than loop
				// forever.
				if !p.Backtrack() {
					return Result{Ok: false}
				}
			}
		}
	}
}
