package define

import "github.com/starling-lang/starling/internal/analyzer/ast"

// flattenControlFlow recursively inlines the bodies of If, For, While,
// Try, and With into a single flat statement list, dropping the control
// construct itself. Exception handler bodies are not inlined: a
// `self.x = ...` assignment guarded behind an `except:` clause is
// conditional in a way the other constructs' bodies aren't, and the
// reference behavior this package matches only expands body/orelse/
// finally.
func flattenControlFlow(body []ast.Statement) []ast.Statement {
	var out []ast.Statement
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *ast.If:
			out = append(out, flattenControlFlow(s.Body)...)
			out = append(out, flattenControlFlow(s.OrElse)...)
		case *ast.For:
			out = append(out, flattenControlFlow(s.Body)...)
			out = append(out, flattenControlFlow(s.OrElse)...)
		case *ast.While:
			out = append(out, flattenControlFlow(s.Body)...)
			out = append(out, flattenControlFlow(s.OrElse)...)
		case *ast.Try:
			out = append(out, flattenControlFlow(s.Body)...)
			out = append(out, flattenControlFlow(s.OrElse)...)
			out = append(out, flattenControlFlow(s.Finally)...)
		case *ast.With:
			out = append(out, flattenControlFlow(s.Body)...)
		default:
			out = append(out, stmt)
		}
	}
	return out
}

// methodsByName indexes the top-level Defines in a class's own body by
// their simple name, for the sibling-method inlining step below.
func methodsByName(class *ast.Class) map[string]*ast.Define {
	methods := make(map[string]*ast.Define)
	for _, stmt := range class.Body {
		if def, ok := stmt.(*ast.Define); ok {
			if name, ok := def.SimpleName(); ok {
				methods[name] = def
			}
		}
	}
	return methods
}

// asSelfCall reports whether expr is exactly `<selfName>.<method>()` and,
// if so, returns the method's simple name.
func asSelfCall(expr ast.Expression, selfName string) (string, bool) {
	chain, ok := expr.AsAccessChain()
	if !ok || len(chain.Segments) != 3 {
		return "", false
	}
	if chain.Segments[0].IsCall || chain.Segments[0].Identifier != selfName {
		return "", false
	}
	if chain.Segments[1].IsCall {
		return "", false
	}
	if !chain.Segments[2].IsCall {
		return "", false
	}
	return chain.Segments[1].Identifier, true
}

// inlineSiblingCalls performs the single-level inlining of the common
// "delegate to self._init_fields()" idiom: a top-level self.m(...) call
// whose target m is a Define in the class's own body is replaced by that
// callee's (control-flow-flattened) body. The spliced-in statements are
// not themselves searched for further sibling calls, so no cycle
// detection is required — the source construct is a single call site per
// visit.
func inlineSiblingCalls(flat []ast.Statement, selfName string, class *ast.Class) []ast.Statement {
	methods := methodsByName(class)
	out := make([]ast.Statement, 0, len(flat))
	for _, stmt := range flat {
		exprStmt, ok := stmt.(*ast.ExpressionStmt)
		if !ok {
			out = append(out, stmt)
			continue
		}
		name, ok := asSelfCall(exprStmt.Expr, selfName)
		if !ok {
			out = append(out, stmt)
			continue
		}
		callee, ok := methods[name]
		if !ok {
			out = append(out, stmt)
			continue
		}
		out = append(out, flattenControlFlow(callee.Body)...)
	}
	return out
}

// selfParameterName returns the constructor's first parameter name, or
// "self" when the constructor has none. Constructors are expected to
// always declare at least a self parameter; a parameterless constructor
// is itself malformed, so this fallback exists only to keep extraction
// total rather than to model a legal case.
func selfParameterName(d *ast.Define) string {
	if len(d.Parameters) == 0 {
		return "self"
	}
	return d.Parameters[0].Name
}

// paramAnnotations builds the auxiliary parameter-name-to-annotation map
// used as the RHS fallback in occurrence collection below.
func paramAnnotations(d *ast.Define) map[string]ast.Expression {
	annotations := make(map[string]ast.Expression)
	for _, p := range d.Parameters {
		if p.Annotation != nil {
			annotations[p.Name] = p.Annotation
		}
	}
	return annotations
}

type occurrence struct {
	target     ast.Expression
	annotation ast.Expression
	loc        ast.SourceLocation
}

// selfFieldTargets returns, for a single assignment target expression,
// the list of (fieldName, targetExpr, valueExpr) triples for every
// component that is a `<selfName>.<field>` access — either the target
// itself, or, for a tuple target, any element that qualifies.
func selfFieldTargets(target, value ast.Expression, selfName string) []struct {
	field  string
	target ast.Expression
	value  ast.Expression
} {
	type entry = struct {
		field  string
		target ast.Expression
		value  ast.Expression
	}

	matchField := func(expr ast.Expression) (string, bool) {
		chain, ok := expr.AsAccessChain()
		if !ok || len(chain.Segments) != 2 {
			return "", false
		}
		if chain.Segments[0].IsCall || chain.Segments[0].Identifier != selfName {
			return "", false
		}
		if chain.Segments[1].IsCall {
			return "", false
		}
		return chain.Segments[1].Identifier, true
	}

	if tuple, ok := target.AsTuple(); ok {
		var values []ast.Expression
		if value != nil {
			if vt, ok := value.AsTuple(); ok && len(vt.Elements) == len(tuple.Elements) {
				values = vt.Elements
			}
		}
		var out []entry
		for i, elem := range tuple.Elements {
			field, ok := matchField(elem)
			if !ok {
				continue
			}
			var v ast.Expression
			if values != nil {
				v = values[i]
			}
			out = append(out, entry{field: field, target: elem, value: v})
		}
		return out
	}

	field, ok := matchField(target)
	if !ok {
		return nil
	}
	return []entry{{field: field, target: target, value: value}}
}

// groupAttribute merges the occurrences collected for a single field name
// into one Attribute, unifying divergent annotations via typing.Union.
func groupAttribute(occurrences []occurrence) *ast.Attribute {
	var distinct []ast.Expression
	for _, o := range occurrences {
		if o.annotation == nil {
			continue
		}
		alreadySeen := false
		for _, d := range distinct {
			if d.Equal(o.annotation) {
				alreadySeen = true
				break
			}
		}
		if !alreadySeen {
			distinct = append(distinct, o.annotation)
		}
	}

	first := occurrences[0]
	var annotation ast.Expression
	switch len(distinct) {
	case 0:
		annotation = nil
	case 1:
		annotation = distinct[0]
	default:
		annotation = ast.UnionAnnotation(first.loc, distinct...)
	}

	return &ast.Attribute{
		Target:     first.target,
		Annotation: annotation,
		Primitive:  true,
		Loc:        first.loc,
	}
}

// ImplicitAttributes walks a constructor's body — expanded per the rules
// above — and returns the instance attributes it installs via
// `self.<field> = ...` assignments. definition is the enclosing class,
// consulted only for the sibling-method inlining step.
func ImplicitAttributes(d *ast.Define, definition *ast.Class) ast.AttributeMap {
	result := make(ast.AttributeMap)

	selfName := selfParameterName(d)
	params := paramAnnotations(d)

	flat := flattenControlFlow(d.Body)
	expanded := inlineSiblingCalls(flat, selfName, definition)

	occurrencesByField := make(map[string][]occurrence)
	var fieldOrder []string

	for _, stmt := range expanded {
		assign, ok := stmt.(*ast.Assign)
		if !ok {
			continue
		}
		targets := selfFieldTargets(assign.Target, assign.Value, selfName)
		singleTarget := len(targets) == 1 && assign.Target.Equal(targets[0].target)
		for _, m := range targets {
			// Tuple-destructured targets never carry a per-element
			// annotation in this grammar; only the whole-assignment
			// annotation (the single-target case) can supply one.
			var annotation ast.Expression
			if singleTarget {
				annotation = assign.Annotation
			}
			if annotation == nil && m.value != nil {
				if rhsChain, ok := m.value.AsAccessChain(); ok {
					if ids := rhsChain.Identifiers(); len(ids) == 1 && len(rhsChain.Segments) == 1 {
						if pa, ok := params[ids[0]]; ok {
							annotation = pa
						}
					}
				}
			}
			if _, seen := occurrencesByField[m.field]; !seen {
				fieldOrder = append(fieldOrder, m.field)
			}
			occurrencesByField[m.field] = append(occurrencesByField[m.field], occurrence{
				target:     m.target,
				annotation: annotation,
				loc:        assign.Loc,
			})
		}
	}

	for _, field := range fieldOrder {
		result[ast.AttributeName(field)] = groupAttribute(occurrencesByField[field])
	}
	return result
}
