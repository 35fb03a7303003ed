package define

import "github.com/starling-lang/starling/internal/analyzer/ast"

// CreateToplevel wraps a module's top-level statements in the synthetic
// $toplevel define (invariant 6).
func CreateToplevel(statements []ast.Statement) *ast.Define {
	loc := ast.SourceLocation{}
	if len(statements) > 0 {
		loc = statements[0].Location()
	}
	return &ast.Define{
		Name:      ast.NewAccessChain(loc, ast.ToplevelName),
		Body:      statements,
		Generated: false,
		Loc:       loc,
	}
}

// CreateGeneratedConstructor synthesizes a default __init__ for a class
// with no explicit constructor: one `self` parameter, a `pass` body, and
// the class's own docstring, since the class had no constructor of its
// own to carry one.
func CreateGeneratedConstructor(class *ast.Class) *ast.Define {
	loc := class.Loc
	parent := class.QualifiedName()
	return &ast.Define{
		Name:       ast.NewAccessChain(loc, "__init__"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}},
		Body:       []ast.Statement{&ast.Pass{Loc: loc}},
		Docstring:  class.Docstring,
		Generated:  true,
		Parent:     &parent,
		Loc:        loc,
	}
}
