package ast

// Assume constructs the Assert flow-sensitive refinement uses to narrow a
// condition, e.g. after an `isinstance` check. The result always carries
// test's own location, since it isn't introducing new source, only making
// an existing condition's implication explicit.
func Assume(test Expression) Statement {
	return &Assert{Test: test, Message: nil, Loc: test.Location()}
}
