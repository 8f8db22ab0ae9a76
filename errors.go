package saturday

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind identifies which invariant of the search engine's error taxonomy
// was violated. It does not distinguish by Go type, only by tag, so a single
// *Error value can represent any of them.
type ErrorKind int

const (
	// MalformedClause is raised by the CNF builder when a clause has no
	// literals.
	MalformedClause ErrorKind = iota
	// MalformedLiteral is raised by the CNF builder when a clause contains
	// the literal 0.
	MalformedLiteral
	// Unassigned is raised by Valuation.IsTrue on a variable with no
	// binding yet.
	Unassigned
	// ForcePreconditionViolated is raised by Valuation.Force when the
	// variable is already assigned.
	ForcePreconditionViolated
	// UnknownNumber is raised by a symbol table's IdentifierOf on a number
	// it never issued.
	UnknownNumber
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedClause:
		return "malformed clause"
	case MalformedLiteral:
		return "malformed literal"
	case Unassigned:
		return "unassigned"
	case ForcePreconditionViolated:
		return "force precondition violated"
	case UnknownNumber:
		return "unknown number"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error type for the kinds listed under ErrorKind.
// The Kind field is what callers should switch on; the message is for
// humans. Construction always runs through pkg/errors so a stack trace is
// attached at the point of creation, recoverable with fmt.Sprintf("%+v", err).
type Error struct {
	Kind  ErrorKind
	cause error
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, cause: pkgerrors.Errorf(format, args...)}
}

// NewError builds an *Error of the given Kind with a pkg/errors-wrapped
// stack trace attached, for use by packages outside this one (e.g.
// symtab) that need to raise one of this engine's error Kinds.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return newError(kind, format, args...)
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String()
	}
	return e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Format supports "%+v" to print the creation-site stack trace captured by
// pkg/errors, and falls back to the plain message otherwise.
func (e *Error) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Is lets errors.Is(err, &Error{Kind: X}) match any *Error with the same
// Kind, regardless of message or stack trace.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// IsKind reports whether err is (or wraps) a *saturday.Error of the given
// Kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
