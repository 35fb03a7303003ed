package ast

import "github.com/starling-lang/starling/internal/analyzer/errors"

// Statement is the recursive variant every statement shape implements.
// The mutual recursion between statements and the blocks they contain is
// closed here rather than parameterized, per the design notes: Statement
// is not generic over itself.
type Statement interface {
	Node
	isStatement()
}

// Assign represents `target[: annotation] [= value]`. Parent names the
// enclosing class when this is a class-body assignment; nil otherwise.
type Assign struct {
	Target     Expression
	Annotation Expression // nil if absent
	Value      Expression // nil if absent
	Parent     *string
	Loc        SourceLocation
}

func (a *Assign) isStatement()             {}
func (a *Assign) Location() SourceLocation { return a.Loc }

// Assert represents `assert test[, message]`.
type Assert struct {
	Test    Expression
	Message Expression // nil if absent
	Loc     SourceLocation
}

func (a *Assert) isStatement()             {}
func (a *Assert) Location() SourceLocation { return a.Loc }

// Break represents `break`.
type Break struct{ Loc SourceLocation }

func (b *Break) isStatement()             {}
func (b *Break) Location() SourceLocation { return b.Loc }

// Continue represents `continue`.
type Continue struct{ Loc SourceLocation }

func (c *Continue) isStatement()             {}
func (c *Continue) Location() SourceLocation { return c.Loc }

// Pass represents `pass`.
type Pass struct{ Loc SourceLocation }

func (p *Pass) isStatement()             {}
func (p *Pass) Location() SourceLocation { return p.Loc }

// Delete represents `del expr`.
type Delete struct {
	Expr Expression
	Loc  SourceLocation
}

func (d *Delete) isStatement()             {}
func (d *Delete) Location() SourceLocation { return d.Loc }

// ExpressionStmt represents a bare expression used as a statement.
type ExpressionStmt struct {
	Expr Expression
	Loc  SourceLocation
}

func (e *ExpressionStmt) isStatement()             {}
func (e *ExpressionStmt) Location() SourceLocation { return e.Loc }

// Raise represents `raise [expr]`.
type Raise struct {
	Expr Expression // nil if bare `raise`
	Loc  SourceLocation
}

func (r *Raise) isStatement()             {}
func (r *Raise) Location() SourceLocation { return r.Loc }

// Return represents `return [expr]`.
type Return struct {
	Expr Expression // nil if bare `return`
	Loc  SourceLocation
}

func (r *Return) isStatement()             {}
func (r *Return) Location() SourceLocation { return r.Loc }

// Yield represents `yield expr`.
type Yield struct {
	Expr Expression
	Loc  SourceLocation
}

func (y *Yield) isStatement()             {}
func (y *Yield) Location() SourceLocation { return y.Loc }

// YieldFrom represents `yield from expr`.
type YieldFrom struct {
	Expr Expression
	Loc  SourceLocation
}

func (y *YieldFrom) isStatement()             {}
func (y *YieldFrom) Location() SourceLocation { return y.Loc }

// ImportName is one `name [as alias]` clause of an Import statement.
type ImportName struct {
	Name  string
	Alias *string // nil if absent
}

// Import represents `[from From] import n0 [as a0], n1 [as a1], ...`.
type Import struct {
	From    *string // nil for a bare `import x` (as opposed to `from m import x`)
	Imports []ImportName
	Loc     SourceLocation
}

func (i *Import) isStatement()             {}
func (i *Import) Location() SourceLocation { return i.Loc }

// Global represents `global name0, name1, ...`.
type Global struct {
	Names []string
	Loc   SourceLocation
}

func (g *Global) isStatement()             {}
func (g *Global) Location() SourceLocation { return g.Loc }

// Nonlocal represents `nonlocal name0, name1, ...`.
type Nonlocal struct {
	Names []string
	Loc   SourceLocation
}

func (n *Nonlocal) isStatement()             {}
func (n *Nonlocal) Location() SourceLocation { return n.Loc }

// Declaration is implemented by the three statement shapes a Stub may
// wrap: *Assign, *Class, *Define.
type Declaration interface {
	Statement
	isDeclaration()
}

func (a *Assign) isDeclaration() {}
func (c *Class) isDeclaration()  {}
func (d *Define) isDeclaration() {}

// Stub wraps a declaration without an implementation, used to carry
// annotations from a parallel `.pyi`-style side file.
type Stub struct {
	Decl Declaration
	Loc  SourceLocation
}

func (s *Stub) isStatement()             {}
func (s *Stub) Location() SourceLocation { return s.Loc }

// NewStub validates decl is one of the three allowed shapes and wraps it.
// Constructing a Stub around anything else is a programmer error: the
// grammar for stub files only ever produces assignments, classes, and
// defines, so any other shape reaching here means an earlier pass is
// broken, not that the input was malformed.
func NewStub(decl Declaration, loc SourceLocation) *Stub {
	switch decl.(type) {
	case *Assign, *Class, *Define:
		return &Stub{Decl: decl, Loc: loc}
	default:
		errors.Invariant(errors.CodeInvalidStub,
			errors.Location{File: loc.File, Line: loc.StartLine, Column: loc.StartColumn},
			"Stub constructed around unsupported declaration shape %T", decl)
		panic("unreachable")
	}
}
