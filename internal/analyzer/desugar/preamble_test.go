package desugar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starling-lang/starling/internal/analyzer/ast"
)

var loc = ast.SourceLocation{File: "test.py", StartLine: 1}

func TestForPreamble_SyncAccessChainIterator(t *testing.T) {
	f := &ast.For{
		Target:   ast.NewAccessChain(loc, "x"),
		Iterator: ast.NewAccessChain(loc, "items"),
		Loc:      loc,
	}

	statements := ForPreamble(f)
	require.Len(t, statements, 1)
	assign, ok := statements[0].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "items.__iter__().__next__()", assign.Value.String())
}

func TestForPreamble_AsyncUsesAiterAnext(t *testing.T) {
	f := &ast.For{
		Target:   ast.NewAccessChain(loc, "x"),
		Iterator: ast.NewAccessChain(loc, "items"),
		Async:    true,
		Loc:      loc,
	}

	statements := ForPreamble(f)
	assign := statements[0].(*ast.Assign)
	assert.Equal(t, "items.__aiter__().__anext__()", assign.Value.String())
}

func TestForPreamble_LiftsNonAccessChainIterator(t *testing.T) {
	f := &ast.For{
		Target:   ast.NewAccessChain(loc, "x"),
		Iterator: &ast.IntegerLiteral{Value: 3, Loc: loc},
		Loc:      loc,
	}

	statements := ForPreamble(f)
	assign := statements[0].(*ast.Assign)
	assert.Equal(t, "3.__iter__().__next__()", assign.Value.String())
}

func TestWithPreamble_WithTargetAssignsEnter(t *testing.T) {
	w := &ast.With{
		Items: []ast.WithItem{
			{Expr: ast.NewAccessChain(loc, "lock"), Target: ast.NewAccessChain(loc, "l")},
		},
		Loc: loc,
	}

	statements := WithPreamble(w)
	require.Len(t, statements, 1)
	assign, ok := statements[0].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "lock.__enter__()", assign.Value.String())
}

func TestWithPreamble_WithoutTargetEmitsExpressionStatement(t *testing.T) {
	w := &ast.With{
		Items: []ast.WithItem{{Expr: ast.NewAccessChain(loc, "lock")}},
		Loc:   loc,
	}

	statements := WithPreamble(w)
	require.Len(t, statements, 1)
	_, ok := statements[0].(*ast.ExpressionStmt)
	assert.True(t, ok)
}

func TestWithPreamble_AsyncUsesAenter(t *testing.T) {
	w := &ast.With{
		Items: []ast.WithItem{
			{Expr: ast.NewAccessChain(loc, "conn"), Target: ast.NewAccessChain(loc, "c")},
		},
		Async: true,
		Loc:   loc,
	}

	statements := WithPreamble(w)
	assign := statements[0].(*ast.Assign)
	assert.Equal(t, "conn.__aenter__()", assign.Value.String())
}

func TestTryPreamble_NamedSimpleKind(t *testing.T) {
	name := "e"
	tr := &ast.Try{
		Handlers: []*ast.ExceptHandler{
			{Kind: ast.NewAccessChain(loc, "ValueError"), Name: &name, Loc: loc},
		},
		Loc: loc,
	}

	statements := TryPreamble(tr)
	require.Len(t, statements, 1)
	assign, ok := statements[0].(*ast.Assign)
	require.True(t, ok)
	assert.True(t, assign.Annotation.Equal(ast.NewAccessChain(loc, "ValueError")))
}

func TestTryPreamble_NamedTupleKindUnion(t *testing.T) {
	name := "e"
	tr := &ast.Try{
		Handlers: []*ast.ExceptHandler{
			{
				Kind: &ast.Tuple{Elements: []ast.Expression{
					ast.NewAccessChain(loc, "ValueError"),
					ast.NewAccessChain(loc, "TypeError"),
				}, Loc: loc},
				Name: &name,
				Loc:  loc,
			},
		},
		Loc: loc,
	}

	statements := TryPreamble(tr)
	assign := statements[0].(*ast.Assign)
	assert.Equal(t, "typing.Union[ValueError, TypeError]", assign.Annotation.String())
}

func TestTryPreamble_KindWithoutNameEmitsExpressionStatement(t *testing.T) {
	tr := &ast.Try{
		Handlers: []*ast.ExceptHandler{
			{Kind: ast.NewAccessChain(loc, "ValueError"), Loc: loc},
		},
		Loc: loc,
	}

	statements := TryPreamble(tr)
	require.Len(t, statements, 1)
	_, ok := statements[0].(*ast.ExpressionStmt)
	assert.True(t, ok)
}

func TestTryPreamble_BareExceptEmitsNothing(t *testing.T) {
	tr := &ast.Try{
		Handlers: []*ast.ExceptHandler{{Loc: loc}},
		Loc:      loc,
	}

	assert.Empty(t, TryPreamble(tr))
}
