// Package errors defines the programmer-error class this analyzer raises
// when an internal helper is handed an AST shape that should be
// unreachable by construction. These are invariant violations, not input
// errors: malformed-but-legal input (mismatched tuple arity, a missing
// annotation) is handled by returning an empty or absent value, never by
// raising one of these.
//
// Location is spelled out as file/line/column rather than depending on
// ast.SourceLocation directly: ast itself raises invariant violations (a
// Stub built around an unsupported declaration shape), so this package
// must not import ast, or the two would form a cycle.
package errors

import "fmt"

// Code identifies a specific invariant violation.
type Code string

const (
	// CodeInvalidStub indicates a Stub wraps a declaration shape other
	// than *Assign, *Class, or *Define.
	CodeInvalidStub Code = "AST002"
)

// Location pinpoints where an invariant violation was raised.
type Location struct {
	File   string
	Line   int
	Column int
}

// AnalysisError is a fatal, non-recoverable invariant violation. It is
// never returned as an ordinary error value from this module's public
// API — see Invariant.
type AnalysisError struct {
	Code     Code
	Message  string
	Location Location
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s (%s:%d:%d)", e.Code, e.Message,
		e.Location.File, e.Location.Line, e.Location.Column)
}

// Invariant panics with an *AnalysisError. Call sites use this for shapes
// that are unreachable by construction (a closed variant's default case,
// an internal precondition a constructor should already guarantee) —
// never for malformed-but-legal input, which this package's callers are
// expected to tolerate by skipping instead.
func Invariant(code Code, loc Location, format string, args ...interface{}) {
	panic(&AnalysisError{Code: code, Message: fmt.Sprintf(format, args...), Location: loc})
}
