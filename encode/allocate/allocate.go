// Package allocate encodes the resource-allocation problem (assign tasks to
// machines, respecting pairwise conflicts) as CNF and solves or enumerates
// it with saturday: one at-least-one-machine clause per task, and one
// not-both clause per conflicting task pair per machine.
package allocate

import (
	"fmt"

	"github.com/cespare/satsolve"
	"github.com/cespare/satsolve/symtab"
)

// Assignment pairs a task with the machine it's assigned to. It is the user
// data the symbol table stores against each "assign{task}to{machine}"
// identifier, so a solved allocation can be read back directly instead of
// parsing the task and machine numbers back out of the identifier text.
type Assignment struct {
	Task    int
	Machine int
}

// Problem is the input to the resource-allocation encoder: a number of
// tasks, a number of machines, and pairs of tasks that must not share a
// machine.
type Problem struct {
	NumTasks    int
	NumMachines int
	Conflicts   [][2]int
}

// Encoded is a built resource-allocation CNF together with the symbol table
// used to build it.
type Encoded struct {
	CNF   *saturday.CNF
	Table *symtab.Table
}

func identifier(task, machine int) string {
	return fmt.Sprintf("assign%dto%d", task, machine)
}

// Build constructs the CNF for p: one at-least-one-machine clause per task,
// and one not-both clause per conflicting task pair per machine.
func Build(p Problem) (*Encoded, error) {
	c := saturday.NewCNF()
	table := symtab.New()

	varOf := func(task, machine int) int {
		ident := identifier(task, machine)
		v := table.NumberOf(ident)
		table.SetData(ident, Assignment{Task: task, Machine: machine})
		return v
	}

	for task := 0; task < p.NumTasks; task++ {
		clause := make([]int, 0, p.NumMachines)
		for machine := 0; machine < p.NumMachines; machine++ {
			clause = append(clause, varOf(task, machine))
		}
		if err := c.Add(clause); err != nil {
			return nil, err
		}
	}

	for _, conflict := range p.Conflicts {
		t1, t2 := conflict[0], conflict[1]
		for machine := 0; machine < p.NumMachines; machine++ {
			v1 := varOf(t1, machine)
			v2 := varOf(t2, machine)
			if err := c.Add([]int{-v1, -v2}); err != nil {
				return nil, err
			}
		}
	}

	return &Encoded{CNF: c, Table: table}, nil
}

// Solve returns the first valid allocation, or ok=false if none exists.
func (e *Encoded) Solve() (allocation map[int]int, ok bool) {
	return e.SolveWithOptions(saturday.Options{UnitProp: true})
}

// SolveWithOptions is Solve with caller-controlled solver options.
func (e *Encoded) SolveWithOptions(opts saturday.Options) (allocation map[int]int, ok bool) {
	res := e.CNF.Solve(opts)
	if !res.Ok {
		return nil, false
	}
	return e.decode(res.Assignment), true
}

// Enumerate returns every valid allocation, via the model enumerator.
func (e *Encoded) Enumerate() []map[int]int {
	return e.EnumerateWithOptions(saturday.Options{UnitProp: true})
}

// EnumerateWithOptions is Enumerate with caller-controlled solver options.
func (e *Encoded) EnumerateWithOptions(opts saturday.Options) []map[int]int {
	models := e.CNF.Enumerate(opts)
	out := make([]map[int]int, len(models))
	for i, m := range models {
		out[i] = e.decode(m)
	}
	return out
}

// decode turns a numeric variable assignment into task -> machine, using
// the Assignment user data stored per identifier rather than parsing the
// generated identifier text.
func (e *Encoded) decode(assignment map[int]bool) map[int]int {
	out := make(map[int]int)
	for number, value := range assignment {
		if !value {
			continue
		}
		ident, err := e.Table.IdentifierOf(number)
		if err != nil {
			panic(err)
		}
		data, ok := e.Table.Data(ident)
		if !ok {
			panic(fmt.Sprintf("allocate: no Assignment data for identifier %q", ident))
		}
		a := data.(Assignment)
		out[a.Task] = a.Machine
	}
	return out
}
