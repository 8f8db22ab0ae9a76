package saturday

// CNF is a container that accumulates clauses and tracks the largest
// variable index ever mentioned. It is the only type
// through which the search engine's clauses are normally constructed; the
// engine itself (solve, Enumerate) is happy to take a plain variable count
// and []Clause directly, which is what lets the encoders in encode/packages
// and encode/allocate build a CNF incrementally and then hand it to Solve.
type CNF struct {
	v       int
	clauses []Clause
}

// NewCNF returns an empty CNF problem.
func NewCNF() *CNF {
	return &CNF{}
}

// V returns the largest variable index mentioned by any clause added so far.
func (c *CNF) V() int { return c.v }

// NumClauses returns the number of clauses added so far.
func (c *CNF) NumClauses() int { return len(c.clauses) }

// Clauses returns the clause set as plain int slices, suitable for DIMACS
// printing or for handing to another CNF.
func (c *CNF) Clauses() [][]int {
	out := make([][]int, len(c.clauses))
	for i, cl := range c.clauses {
		out[i] = cl.ints()
	}
	return out
}

// Add appends a clause built from lits, a sequence of nonzero integers. It
// fails with a *Error{Kind: MalformedClause} if lits is empty, or
// *Error{Kind: MalformedLiteral} if lits contains 0. On success it updates V
// to max(V, max|literal|).
func (c *CNF) Add(lits []int) error {
	cl, err := newClause(lits)
	if err != nil {
		return err
	}
	for _, lit := range cl {
		if a := lit.Var(); a > c.v {
			c.v = a
		}
	}
	c.clauses = append(c.clauses, cl)
	return nil
}

// AddFrom copies every clause of other into c, preserving order. It's used
// when one encoder's CNF needs to absorb another's (for example, adding a
// hand-built blocking clause on top of an encoder's output).
func (c *CNF) AddFrom(other *CNF) {
	for _, cl := range other.clauses {
		_ = c.Add(cl.ints())
	}
}

// Evaluate reports whether assignment satisfies every clause: every clause
// must have at least one true literal. An unmentioned variable is treated as
// false.
func (c *CNF) Evaluate(assignment map[int]bool) bool {
	for _, cl := range c.clauses {
		ok := false
		for _, lit := range cl {
			val := assignment[lit.Var()]
			if !lit.Polarity() {
				val = !val
			}
			if val {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Solve delegates to the search driver, returning either UNSAT or a
// satisfying assignment.
func (c *CNF) Solve(opts Options) Result {
	return solve(c.v, c.clauses, opts)
}

// Enumerate delegates to the model enumerator, returning every total
// satisfying assignment.
func (c *CNF) Enumerate(opts Options) []map[int]bool {
	return Enumerate(c.v, c.clauses, opts)
}

// FromInts builds a CNF from a DIMACS-style [][]int problem, the same
// representation ParseDIMACS and Solve use.
func FromInts(problem [][]int) (*CNF, error) {
	c := NewCNF()
	for _, cl := range problem {
		if err := c.Add(cl); err != nil {
			return nil, err
		}
	}
	return c, nil
}
