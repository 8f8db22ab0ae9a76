package saturday

// Literal is a propositional variable together with a polarity, encoded as a
// signed nonzero integer: the magnitude names the variable (1..V), the sign
// its polarity (positive asserted, negative negated). Zero is never a valid
// Literal.
type Literal int

// Var returns the variable a literal refers to, stripping its sign.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Polarity reports whether l asserts its variable (true) or negates it
// (false).
func (l Literal) Polarity() bool { return l > 0 }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return -l }

// Clause is a non-empty, order-preserving disjunction of literals. The core
// never filters duplicates or tautologies out of a clause; an encoder that
// cares about those must do so itself.
type Clause []Literal

func newClause(lits []int) (Clause, error) {
	if len(lits) == 0 {
		return nil, newError(MalformedClause, "clause has no literals")
	}
	cl := make(Clause, len(lits))
	for i, l := range lits {
		if l == 0 {
			return nil, newError(MalformedLiteral, "clause contains literal 0")
		}
		cl[i] = Literal(l)
	}
	return cl, nil
}

func (c Clause) ints() []int {
	out := make([]int, len(c))
	for i, l := range c {
		out[i] = int(l)
	}
	return out
}

func intAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
