package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDocstring_FirstStringStatement(t *testing.T) {
	body := []Statement{
		&ExpressionStmt{Expr: &StringLiteral{Value: "does a thing", Loc: loc}, Loc: loc},
		&Pass{Loc: loc},
	}
	doc := ExtractDocstring(body)
	require.NotNil(t, doc)
	assert.Equal(t, "does a thing", *doc)
}

func TestExtractDocstring_NilWhenFirstStatementIsNotAString(t *testing.T) {
	body := []Statement{&Pass{Loc: loc}}
	assert.Nil(t, ExtractDocstring(body))
}

func TestExtractDocstring_NilOnEmptyBody(t *testing.T) {
	assert.Nil(t, ExtractDocstring(nil))
}

func TestExtractDocstring_DedentsTailLines(t *testing.T) {
	body := []Statement{
		&ExpressionStmt{Expr: &StringLiteral{Value: "Summary.\n    Detail one.\n    Detail two.", Loc: loc}, Loc: loc},
	}
	doc := ExtractDocstring(body)
	require.NotNil(t, doc)
	assert.Equal(t, "Summary.\nDetail one.\nDetail two.", *doc)
}
