package class

import "github.com/starling-lang/starling/internal/analyzer/ast"

// findMatchingAssign returns the stub assignment whose target is
// structurally equal to target's, if any.
func findMatchingAssign(target *ast.Assign, candidates []*ast.Assign) *ast.Assign {
	for _, c := range candidates {
		if c.Target.Equal(target.Target) {
			return c
		}
	}
	return nil
}

// findMatchingDefine returns the stub define sharing target's simple name
// and parameter count, if any.
func findMatchingDefine(target *ast.Define, candidates []*ast.Define) *ast.Define {
	name, ok := target.SimpleName()
	if !ok {
		return nil
	}
	for _, c := range candidates {
		cName, ok := c.SimpleName()
		if ok && cName == name && len(c.Parameters) == len(target.Parameters) {
			return c
		}
	}
	return nil
}

// Update merges stub's annotations into definition: a body Assign whose
// target matches a stub assignment takes that stub's annotation, and a
// body Define matching a stub define by name and parameter count takes
// that stub's parameters and return annotation. Stub declarations with no
// match in definition's body are carried over unchanged. The resulting
// body is the unmatched stub declarations followed by the updated
// definition statements.
func Update(definition, stub *ast.Class) *ast.Class {
	var stubAssigns []*ast.Assign
	var stubDefines []*ast.Define
	for _, stmt := range stub.Body {
		switch decl := unwrapDeclaration(stmt).(type) {
		case *ast.Assign:
			stubAssigns = append(stubAssigns, decl)
		case *ast.Define:
			stubDefines = append(stubDefines, decl)
		}
	}

	matchedAssign := make(map[*ast.Assign]bool)
	matchedDefine := make(map[*ast.Define]bool)

	updated := make([]ast.Statement, 0, len(definition.Body))
	for _, stmt := range definition.Body {
		switch s := stmt.(type) {
		case *ast.Assign:
			if match := findMatchingAssign(s, stubAssigns); match != nil {
				matchedAssign[match] = true
				merged := *s
				merged.Annotation = match.Annotation
				updated = append(updated, &merged)
			} else {
				updated = append(updated, s)
			}
		case *ast.Define:
			if match := findMatchingDefine(s, stubDefines); match != nil {
				matchedDefine[match] = true
				merged := *s
				merged.Parameters = match.Parameters
				merged.ReturnAnnotation = match.ReturnAnnotation
				updated = append(updated, &merged)
			} else {
				updated = append(updated, s)
			}
		default:
			updated = append(updated, stmt)
		}
	}

	var undefined []ast.Statement
	for _, stmt := range stub.Body {
		switch decl := unwrapDeclaration(stmt).(type) {
		case *ast.Assign:
			if !matchedAssign[decl] {
				undefined = append(undefined, stmt)
			}
		case *ast.Define:
			if !matchedDefine[decl] {
				undefined = append(undefined, stmt)
			}
		default:
			undefined = append(undefined, stmt)
		}
	}

	body := make([]ast.Statement, 0, len(undefined)+len(updated))
	body = append(body, undefined...)
	body = append(body, updated...)

	merged := *definition
	merged.Body = body
	return &merged
}
