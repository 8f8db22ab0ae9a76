// Package symtab maps human-readable identifiers to the positive integer
// variable indices the SAT engine expects, and back. A table also carries
// arbitrary per-identifier user data, which is what lets an encoder attach
// structured information (e.g. a (task, machine) pair) to a generated
// identifier instead of recovering it by parsing the identifier's text back
// apart.
package symtab

import "github.com/cespare/satsolve"

// Table stores a bijection between identifiers and the numbers an encoder
// uses as SAT variables, along with optional user data per identifier.
type Table struct {
	nextNumber int
	toNumber   map[string]int
	toIdent    map[int]string
	userData   map[string]interface{}
}

// New returns an empty symbol table. The first identifier registered is
// numbered 1, matching the SAT engine's requirement that variable indices
// start at 1.
func New() *Table {
	return &Table{
		nextNumber: 1,
		toNumber:   make(map[string]int),
		toIdent:    make(map[int]string),
		userData:   make(map[string]interface{}),
	}
}

// NumberOf returns the number assigned to identifier, registering a fresh
// one if this is the first time identifier has been seen.
func (t *Table) NumberOf(identifier string) int {
	if n, ok := t.toNumber[identifier]; ok {
		return n
	}
	n := t.nextNumber
	t.nextNumber++
	t.toNumber[identifier] = n
	t.toIdent[n] = identifier
	return n
}

// IdentifierOf returns the identifier registered for number. It fails with
// a *saturday.Error{Kind: UnknownNumber} if number was never issued by
// NumberOf.
func (t *Table) IdentifierOf(number int) (string, error) {
	ident, ok := t.toIdent[number]
	if !ok {
		return "", saturday.NewError(saturday.UnknownNumber, "no identifier registered for number %d", number)
	}
	return ident, nil
}

// NameAssignment converts a numeric variable assignment (as returned by the
// SAT engine) into an identifier-keyed assignment, using this table's
// bijection. It panics if the assignment mentions a number this table never
// issued. That indicates the caller mixed assignments from different
// encodings, a programmer error.
func (t *Table) NameAssignment(assignment map[int]bool) map[string]bool {
	out := make(map[string]bool, len(assignment))
	for number, value := range assignment {
		ident, err := t.IdentifierOf(number)
		if err != nil {
			panic(err)
		}
		out[ident] = value
	}
	return out
}

// SetData attaches arbitrary user data to an already-registered identifier.
// Encoders use this instead of encoding structured information into the
// identifier's text and parsing it back out later.
func (t *Table) SetData(identifier string, data interface{}) {
	t.userData[identifier] = data
}

// Data returns the user data attached to identifier, if any.
func (t *Table) Data(identifier string) (interface{}, bool) {
	d, ok := t.userData[identifier]
	return d, ok
}

// Len reports how many distinct identifiers have been registered.
func (t *Table) Len() int { return len(t.toNumber) }
