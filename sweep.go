package saturday

// sweep walks every clause once with the scanner, and reports one of four
// verdicts:
//
//   - ScanUNSAT, the instant any single clause is falsified.
//   - ScanSAT, if every clause is already satisfied.
//   - ScanUpdated, if no clause is unsatisfied but at least one forced a
//     literal. The caller should sweep again, since a sweep may force
//     literals late in the clause list that only become relevant to earlier
//     clauses on a second pass.
//   - ScanUnknown, if a fixpoint was reached (no clause updated) but not
//     every clause is satisfied. A decision is needed.
//
// Each UPDATED sweep strictly shrinks the unassigned pool, which is finite,
// so repeatedly sweeping to a fixpoint always terminates.
func sweep(clauses []Clause, p *Valuation, unitProp bool) ScanResult {
	anyUnknown := false
	anyUpdated := false
	for _, cl := range clauses {
		switch scanClause(cl, p, unitProp) {
		case ScanUNSAT:
			return ScanUNSAT
		case ScanUpdated:
			anyUpdated = true
		case ScanUnknown:
			anyUnknown = true
		}
	}
	switch {
	case !anyUnknown:
		return ScanSAT
	case anyUpdated:
		return ScanUpdated
	default:
		return ScanUnknown
	}
}
