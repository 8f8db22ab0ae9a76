package saturday

// ScanResult is the verdict the clause scanner returns for a single clause
// against a valuation.
type ScanResult int

const (
	// ScanSAT means the clause already has a true literal.
	ScanSAT ScanResult = iota
	// ScanUNSAT means every literal in the clause is false.
	ScanUNSAT
	// ScanUpdated means the clause was unit and forced its last literal.
	ScanUpdated
	// ScanUnknown means the clause has more than one unassigned literal
	// (or unit propagation is disabled) and nothing could be decided.
	ScanUnknown
)

func (r ScanResult) String() string {
	switch r {
	case ScanSAT:
		return "SAT"
	case ScanUNSAT:
		return "UNSAT"
	case ScanUpdated:
		return "UPDATED"
	case ScanUnknown:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// scanClause evaluates one clause against p. If unitProp is set and the
// clause turns out to be unit, it forces the remaining literal on p as a
// side effect (this is the only place outside Guess/Backtrack that mutates a
// Valuation). Evaluation is left-to-right but a satisfied literal
// short-circuits the scan, so order is never observable in the result.
func scanClause(cl Clause, p *Valuation, unitProp bool) ScanResult {
	var unassigned []Literal
	for _, lit := range cl {
		l := int(lit)
		if p.IsAssigned(l) {
			if p.IsTrue(l) {
				return ScanSAT
			}
			continue
		}
		unassigned = append(unassigned, lit)
	}
	switch {
	case len(unassigned) == 0:
		return ScanUNSAT
	case unitProp && len(unassigned) == 1:
		p.Force(int(unassigned[0]))
		return ScanUpdated
	default:
		return ScanUnknown
	}
}
