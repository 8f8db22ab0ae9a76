package saturday

import "container/heap"

type trailKind byte

const (
	decisionKind trailKind = iota
	forcedKind
)

type trailEntry struct {
	v    int
	kind trailKind
}

// varHeap is a min-heap of unassigned variable indices, with an index map so
// an arbitrary element (not just the minimum) can be removed in O(log n).
// Ordering by variable index is what makes Valuation.Guess's selection
// policy ("lowest unassigned variable first") deterministic and cheap.
type varHeap struct {
	items []int
	index map[int]int
}

func newVarHeap() *varHeap {
	return &varHeap{index: make(map[int]int)}
}

func (h *varHeap) Len() int { return len(h.items) }

func (h *varHeap) Less(i, j int) bool { return h.items[i] < h.items[j] }

func (h *varHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i]] = i
	h.index[h.items[j]] = j
}

func (h *varHeap) Push(x interface{}) {
	v := x.(int)
	h.index[v] = len(h.items)
	h.items = append(h.items, v)
}

func (h *varHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	delete(h.index, v)
	return v
}

// Valuation is a partial assignment: a mapping from variable to bool, a
// pool of unassigned variables, and an ordered trail of how each
// currently-assigned variable got its value. It is owned
// exclusively by whatever search is using it; nothing outside that search
// should hold a reference to a mid-search Valuation.
type Valuation struct {
	v          int
	assigned   map[int]bool
	unassigned *varHeap
	trail      []trailEntry
	tracer     Tracer
}

// NewValuation creates an empty valuation over variables 1..v. Every
// variable starts unassigned.
func NewValuation(v int, tracer Tracer) *Valuation {
	if tracer == nil {
		tracer = NopTracer
	}
	p := &Valuation{
		v:          v,
		assigned:   make(map[int]bool, v),
		unassigned: newVarHeap(),
		tracer:     tracer,
	}
	for i := 1; i <= v; i++ {
		heap.Push(p.unassigned, i)
	}
	p.tracer.Trace(Event{Kind: EventInit, Trail: p.trailSnapshot()})
	return p
}

func (p *Valuation) trailSnapshot() string {
	return trailString(p.trail, p.assigned)
}

// IsAssigned reports whether lit's variable currently has a binding. It
// never fails.
func (p *Valuation) IsAssigned(lit int) bool {
	_, ok := p.assigned[intAbs(lit)]
	return ok
}

// IsTrue returns whether the valuation makes lit true. It panics with a
// *Error{Kind: Unassigned} if lit's variable has no binding yet. That is a
// programmer error, not a result callers are expected to recover from.
func (p *Valuation) IsTrue(lit int) bool {
	val, ok := p.assigned[intAbs(lit)]
	if !ok {
		panic(newError(Unassigned, "variable %d is not assigned", intAbs(lit)))
	}
	if lit < 0 {
		return !val
	}
	return val
}

// Guess picks the lowest-indexed unassigned variable, binds it to initial,
// and records the binding as a decision. It returns false if every variable
// is already assigned.
func (p *Valuation) Guess(initial bool) bool {
	if p.unassigned.Len() == 0 {
		return false
	}
	v := heap.Pop(p.unassigned).(int)
	p.assigned[v] = initial
	p.trail = append(p.trail, trailEntry{v: v, kind: decisionKind})
	p.tracer.Trace(Event{Kind: EventGuess, Var: v, Trail: p.trailSnapshot()})
	return true
}

// Force binds lit's variable to make lit true, recording it as a forced
// (propagated) trail entry. The variable must currently be unassigned;
// violating that precondition panics with a *Error{Kind:
// ForcePreconditionViolated}, since it means the caller (the clause
// scanner) has a bug.
func (p *Valuation) Force(lit int) {
	v := intAbs(lit)
	i, ok := p.unassigned.index[v]
	if !ok {
		panic(newError(ForcePreconditionViolated, "variable %d is not unassigned", v))
	}
	heap.Remove(p.unassigned, i)
	p.assigned[v] = lit > 0
	p.trail = append(p.trail, trailEntry{v: v, kind: forcedKind})
	p.tracer.Trace(Event{Kind: EventUnitProp, Var: v, Trail: p.trailSnapshot()})
}

// Backtrack pops the trail from the tail, discarding forced entries, until
// it finds a decision. It flips that decision's value, rewrites its kind to
// forced (so the other branch is never retried), and returns true. If the
// trail empties out without a decision to flip, it returns false: the
// search is exhausted.
func (p *Valuation) Backtrack() bool {
	ok := false
	flipped := 0
	for len(p.trail) > 0 {
		e := p.trail[len(p.trail)-1]
		p.trail = p.trail[:len(p.trail)-1]
		if e.kind == forcedKind {
			delete(p.assigned, e.v)
			heap.Push(p.unassigned, e.v)
			continue
		}
		p.assigned[e.v] = !p.assigned[e.v]
		p.trail = append(p.trail, trailEntry{v: e.v, kind: forcedKind})
		flipped = e.v
		ok = true
		break
	}
	p.tracer.Trace(Event{Kind: EventBacktrack, Var: flipped, Trail: p.trailSnapshot()})
	return ok
}

// Assignment returns a snapshot copy of the current bindings, independent of
// further mutation of the valuation.
func (p *Valuation) Assignment() map[int]bool {
	out := make(map[int]bool, len(p.assigned))
	for k, v := range p.assigned {
		out[k] = v
	}
	return out
}

// trailLen, domainSize and unassignedSize report the sizes that the trail
// invariant relates: |T| = |dom(A)| and |dom(A)| + |U| = V.
func (p *Valuation) trailLen() int   { return len(p.trail) }
func (p *Valuation) domainSize() int { return len(p.assigned) }
func (p *Valuation) unassignedSize() int { return p.unassigned.Len() }
