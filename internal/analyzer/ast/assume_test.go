package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssume_WrapsTestInAssert(t *testing.T) {
	test := NewAccessChain(loc, "isinstance")
	stmt := Assume(test)
	assert.IsType(t, &Assert{}, stmt)
	assert.Same(t, test, stmt.(*Assert).Test)
	assert.Nil(t, stmt.(*Assert).Message)
}

func TestAssume_UsesTestsOwnLocation(t *testing.T) {
	test := NewAccessChain(SourceLocation{File: "a.py", StartLine: 7}, "cond")
	stmt := Assume(test)
	require.Equal(t, test.Location(), stmt.Location())
}
