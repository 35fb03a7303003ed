// Package desugar computes the protocol-call preambles the type checker
// prepends to a compound statement's body before analyzing it: the
// __iter__/__next__ dispatch a for-loop implies, the __enter__ call a
// with-statement implies (its __exit__ call is not synthesized), and the
// exception bindings a try's handlers introduce.
package desugar

import "github.com/starling-lang/starling/internal/analyzer/ast"

func appendCall(chain *ast.AccessChain, name string, args ...*ast.Argument) *ast.AccessChain {
	segments := append(append([]ast.Segment{}, chain.Segments...),
		ast.NewIdentifierSegment(name),
		ast.NewCallSegment(args...),
	)
	return &ast.AccessChain{Segments: segments, Loc: chain.Loc}
}

// ForPreamble implements the For desugaring: target is assigned
// iter.__iter__().__next__(), or iter.__aiter__().__anext__() when the loop
// is async.
func ForPreamble(f *ast.For) []ast.Statement {
	iterMethod, nextMethod := "__iter__", "__next__"
	if f.Async {
		iterMethod, nextMethod = "__aiter__", "__anext__"
	}

	base := ast.LiftToAccessChain(f.Iterator)
	value := appendCall(appendCall(base, iterMethod), nextMethod)

	return []ast.Statement{&ast.Assign{Target: f.Target, Value: value, Loc: f.Loc}}
}

// WithPreamble implements the With desugaring: an item with a target is
// assigned expression.__enter__() (or __aenter__() when async); an item
// without one is emitted as a plain expression statement so the type
// checker still visits it.
func WithPreamble(w *ast.With) []ast.Statement {
	enterMethod := "__enter__"
	if w.Async {
		enterMethod = "__aenter__"
	}

	statements := make([]ast.Statement, 0, len(w.Items))
	for _, item := range w.Items {
		base := ast.LiftToAccessChain(item.Expr)
		call := appendCall(base, enterMethod)
		if item.Target != nil {
			statements = append(statements, &ast.Assign{Target: item.Target, Value: call, Loc: w.Loc})
		} else {
			statements = append(statements, &ast.ExpressionStmt{Expr: item.Expr, Loc: w.Loc})
		}
	}
	return statements
}

// TryPreamble implements the Try desugaring: each handler contributes a
// binding statement exposing the caught exception's declared type to the
// type checker.
//
//   - kind is an access chain and name is present: `name: kind`.
//   - kind is a tuple of types and name is present: `name: typing.Union[...]`.
//   - kind present but name absent: kind emitted as a bare expression
//     statement so it is still type-checked.
//   - neither present: nothing.
func TryPreamble(t *ast.Try) []ast.Statement {
	var statements []ast.Statement
	for _, handler := range t.Handlers {
		switch {
		case handler.Kind == nil:
			continue
		case handler.Name != nil:
			annotation := handler.Kind
			if tuple, ok := handler.Kind.AsTuple(); ok {
				annotation = ast.UnionAnnotation(handler.Loc, tuple.Elements...)
			}
			statements = append(statements, &ast.Assign{
				Target:     ast.NewAccessChain(handler.Loc, *handler.Name),
				Annotation: annotation,
				Loc:        handler.Loc,
			})
		default:
			statements = append(statements, &ast.ExpressionStmt{Expr: handler.Kind, Loc: handler.Loc})
		}
	}
	return statements
}
