package define

import "github.com/starling-lang/starling/internal/analyzer/ast"

// testSetupNames are the additional constructor-like method names
// recognized in test classes, beyond __init__.
var testSetupNames = map[string]bool{
	"setUp":        true,
	"_setup":       true,
	"_async_setup": true,
	"with_context": true,
}

// IsMethod reports whether define is a method: it has an enclosing class
// and its name is a single segment. Invariant 4.
func IsMethod(d *ast.Define) bool {
	if d.Parent == nil {
		return false
	}
	_, ok := d.SimpleName()
	return ok
}

// IsConstructor reports whether define is a constructor: a method named
// __init__, or, when inTest is set, one of the recognized test setup
// method names.
func IsConstructor(d *ast.Define, inTest bool) bool {
	if d.Parent == nil {
		return false
	}
	name, ok := d.SimpleName()
	if !ok {
		return false
	}
	if name == "__init__" {
		return true
	}
	return inTest && testSetupNames[name]
}

// IsToplevel reports whether define is the synthetic module-level define.
func IsToplevel(d *ast.Define) bool {
	name, ok := d.SimpleName()
	return ok && name == ast.ToplevelName
}

// IsAsync reports whether define was declared `async def`.
func IsAsync(d *ast.Define) bool { return d.Async }

// IsUntyped reports whether define carries no return annotation.
func IsUntyped(d *ast.Define) bool { return d.ReturnAnnotation == nil }

// IsGeneratedConstructor reports whether define was synthesized by this
// package rather than produced by the parser.
func IsGeneratedConstructor(d *ast.Define) bool { return d.Generated }

// hasCallMarker reports whether body contains a top-level expression
// statement shaped `<name>(<args>)`.
func hasCallMarker(body []ast.Statement, name string) bool {
	for _, stmt := range body {
		exprStmt, ok := stmt.(*ast.ExpressionStmt)
		if !ok {
			continue
		}
		chain, ok := exprStmt.Expr.AsAccessChain()
		if !ok || len(chain.Segments) != 2 {
			continue
		}
		if chain.Segments[0].IsCall || chain.Segments[0].Identifier != name {
			continue
		}
		if !chain.Segments[1].IsCall {
			continue
		}
		return true
	}
	return false
}

// Dump reports whether define's body contains a top-level
// `pyre_dump(...)` debug marker.
func Dump(d *ast.Define) bool { return hasCallMarker(d.Body, "pyre_dump") }

// DumpCFG reports whether define's body contains a top-level
// `pyre_dump_cfg(...)` debug marker.
func DumpCFG(d *ast.Define) bool { return hasCallMarker(d.Body, "pyre_dump_cfg") }
