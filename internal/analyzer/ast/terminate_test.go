package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminates_TrueForTopLevelReturnRaiseContinue(t *testing.T) {
	assert.True(t, Terminates([]Statement{&Return{Loc: loc}}))
	assert.True(t, Terminates([]Statement{&Raise{Loc: loc}}))
	assert.True(t, Terminates([]Statement{&Continue{Loc: loc}}))
}

func TestTerminates_FalseWhenNestedOnly(t *testing.T) {
	body := []Statement{
		&If{Test: NewAccessChain(loc, "cond"), Body: []Statement{&Return{Loc: loc}}, Loc: loc},
	}
	assert.False(t, Terminates(body))
}

func TestTerminates_FalseForPass(t *testing.T) {
	assert.False(t, Terminates([]Statement{&Pass{Loc: loc}}))
}
