package saturday

// Enumerate finds every total assignment over variables 1..v that satisfies
// clauses, by repeatedly solving and adding a blocking clause for each model
// found. It stops at the first UNSAT, which is guaranteed to happen
// eventually since each iteration eliminates at least one model from the
// finite set of 2^v total assignments.
//
// Unmentioned variables (no clause mentions them) are canonicalized to
// false before a model is recorded or blocked, so every returned model and
// every blocking clause covers the full cube of v variables, not just the
// variables a particular run happened to touch.
func Enumerate(v int, clauses []Clause, opts Options) []map[int]bool {
	cur := append([]Clause(nil), clauses...)
	var models []map[int]bool
	for {
		res := solve(v, cur, opts)
		if !res.Ok {
			return models
		}
		model := canonicalize(v, res.Assignment)
		models = append(models, model)
		cur = append(cur, blockingClause(v, model))
	}
}

func canonicalize(v int, a map[int]bool) map[int]bool {
	m := make(map[int]bool, v)
	for i := 1; i <= v; i++ {
		m[i] = a[i] // false for an unmentioned variable, by the zero value
	}
	return m
}

// blockingClause builds ¬m: the disjunction of the negations of model's
// literals, which excludes exactly that model (and no other) from future
// searches.
func blockingClause(v int, model map[int]bool) Clause {
	cl := make(Clause, v)
	for i := 1; i <= v; i++ {
		if model[i] {
			cl[i-1] = Literal(-i)
		} else {
			cl[i-1] = Literal(i)
		}
	}
	return cl
}
