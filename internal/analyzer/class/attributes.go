// Package class implements the queries the type checker runs against a
// class as a whole: the merged attribute map, the constructor sublist, and
// the stub-merge that lets a `.pyi`-style declaration file refine a
// definition's annotations.
package class

import (
	"github.com/starling-lang/starling/internal/analyzer/ast"
	"github.com/starling-lang/starling/internal/analyzer/decorators"
	"github.com/starling-lang/starling/internal/analyzer/define"
)

// Constructors returns the sublist of class's own body defines for which
// define.IsConstructor holds.
func Constructors(class *ast.Class, inTest bool) []*ast.Define {
	var out []*ast.Define
	for _, stmt := range class.Body {
		if d, ok := stmt.(*ast.Define); ok && define.IsConstructor(d, inTest) {
			out = append(out, d)
		}
	}
	return out
}

// Attributes produces class's attribute map by merging, in decreasing
// priority (higher wins on key conflict): explicit body assignments,
// implicit attributes inferred from its constructors (only when
// includeGeneratedAttributes is set), property attributes, callable
// attributes, and nested-class attributes. The merge is applied by
// processing layers highest priority first and never letting a
// lower-priority layer overwrite a key an earlier layer already claimed.
func Attributes(class *ast.Class, registry decorators.Registry, inTest, includeGeneratedAttributes bool) ast.AttributeMap {
	implicit := ast.AttributeMap{}
	if includeGeneratedAttributes {
		implicit = implicitAttributes(class, inTest)
	}
	layers := []ast.AttributeMap{
		explicitAttributes(class),
		implicit,
		propertyAttributes(class, registry),
		callableAttributes(class),
		nestedClassAttributes(class),
	}

	result := make(ast.AttributeMap)
	for _, layer := range layers {
		for name, attr := range layer {
			if _, exists := result[name]; !exists {
				result[name] = attr
			}
		}
	}
	return result
}

// unwrapDeclaration returns the declaration a body statement carries,
// looking through a Stub wrapper when present.
func unwrapDeclaration(stmt ast.Statement) ast.Declaration {
	switch s := stmt.(type) {
	case *ast.Stub:
		return s.Decl
	case *ast.Assign:
		return s
	case *ast.Define:
		return s
	case *ast.Class:
		return s
	default:
		return nil
	}
}

// singleAccessName reports whether expr is a bare, single-segment
// identifier access (not a call), returning its name.
func singleAccessName(expr ast.Expression) (string, bool) {
	chain, ok := expr.AsAccessChain()
	if !ok || len(chain.Segments) != 1 || chain.Segments[0].IsCall {
		return "", false
	}
	return chain.Segments[0].Identifier, true
}

// explicitAttributes is layer 1: every class-body Assign (or Stub around
// one) whose target is a single-segment access, including tuple-
// destructuring forms whose elements are themselves single-segment
// accesses.
func explicitAttributes(class *ast.Class) ast.AttributeMap {
	result := make(ast.AttributeMap)
	for _, stmt := range class.Body {
		assign, ok := unwrapDeclaration(stmt).(*ast.Assign)
		if !ok {
			continue
		}

		if name, ok := singleAccessName(assign.Target); ok {
			result[ast.AttributeName(name)] = &ast.Attribute{
				Target:     assign.Target,
				Annotation: assign.Annotation,
				Value:      assign.Value,
				Primitive:  true,
				Loc:        assign.Loc,
			}
			continue
		}

		tuple, ok := assign.Target.AsTuple()
		if !ok {
			continue
		}

		var valueElements []ast.Expression
		valueIsTuple := false
		if assign.Value != nil {
			if vt, ok := assign.Value.AsTuple(); ok {
				valueIsTuple = true
				valueElements = vt.Elements
			}
		}

		if valueIsTuple && len(valueElements) != len(tuple.Elements) {
			// Mismatched arity: skip every element silently.
			continue
		}

		for i, elem := range tuple.Elements {
			name, ok := singleAccessName(elem)
			if !ok {
				continue
			}

			var value ast.Expression
			switch {
			case valueIsTuple:
				value = valueElements[i]
			case assign.Value != nil:
				value = ast.GetItemCall(assign.Loc, assign.Value, i)
			}

			result[ast.AttributeName(name)] = &ast.Attribute{
				Target:    elem,
				Value:     value,
				Primitive: true,
				Loc:       assign.Loc,
			}
		}
	}
	return result
}

// implicitAttributes is layer 2: the union of define.ImplicitAttributes
// over class's own constructors, merged last-write-wins over the
// constructors in body order.
func implicitAttributes(class *ast.Class, inTest bool) ast.AttributeMap {
	result := make(ast.AttributeMap)
	for _, ctor := range Constructors(class, inTest) {
		for name, attr := range define.ImplicitAttributes(ctor, class) {
			result[name] = attr
		}
	}
	return result
}

// propertyAttributes is layer 3: one attribute per property name, merging
// a getter and a `<name>.setter` pair when both exist.
func propertyAttributes(class *ast.Class, registry decorators.Registry) ast.AttributeMap {
	getters := make(map[string]*ast.Attribute)
	setters := make(map[string]*ast.Attribute)
	var order []string
	seen := make(map[string]bool)

	for _, stmt := range class.Body {
		d, ok := unwrapDeclaration(stmt).(*ast.Define)
		if !ok {
			continue
		}
		attr := define.PropertyAttribute(class.Loc, d, registry)
		if attr == nil {
			continue
		}
		name, ok := d.SimpleName()
		if !ok {
			continue
		}
		if attr.Setter {
			setters[name] = attr
		} else {
			getters[name] = attr
		}
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	result := make(ast.AttributeMap)
	for _, name := range order {
		g, hasGetter := getters[name]
		s, hasSetter := setters[name]
		switch {
		case hasGetter && hasSetter:
			result[ast.AttributeName(name)] = &ast.Attribute{
				Target:     g.Target,
				Annotation: g.Annotation,
				Value:      s.Annotation,
				Setter:     true,
				Loc:        g.Loc,
			}
		case hasGetter:
			result[ast.AttributeName(name)] = g
		case hasSetter:
			result[ast.AttributeName(name)] = s
		}
	}
	return result
}

// callableAttributes is layer 4: one attribute per method name, collecting
// every overloaded signature sharing that name with its body cleared.
func callableAttributes(class *ast.Class) ast.AttributeMap {
	byName := make(map[string][]*ast.Define)
	var order []string
	seen := make(map[string]bool)

	for _, stmt := range class.Body {
		d, ok := unwrapDeclaration(stmt).(*ast.Define)
		if !ok {
			continue
		}
		name, ok := d.SimpleName()
		if !ok {
			continue
		}
		cleared := *d
		cleared.Body = nil
		byName[name] = append(byName[name], &cleared)
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	result := make(ast.AttributeMap)
	for _, name := range order {
		defines := byName[name]
		result[ast.AttributeName(name)] = &ast.Attribute{
			Target:  ast.NewAccessChain(defines[0].Loc, name),
			Defines: defines,
			Async:   defines[0].Async,
			Loc:     defines[0].Loc,
		}
	}
	return result
}

// nestedClassAttributes is layer 5: one attribute per nested class,
// annotated typing.ClassVar[typing.Type[<qualified name>]].
func nestedClassAttributes(class *ast.Class) ast.AttributeMap {
	result := make(ast.AttributeMap)
	for _, stmt := range class.Body {
		nested, ok := unwrapDeclaration(stmt).(*ast.Class)
		if !ok {
			continue
		}
		name := nested.LastNameSegment()
		qualified := ast.NewAccessChain(nested.Loc, append(class.Name.Identifiers(), name)...)
		result[ast.AttributeName(name)] = &ast.Attribute{
			Target:     ast.NewAccessChain(nested.Loc, name),
			Annotation: ast.ClassVarTypeAnnotation(nested.Loc, qualified),
			Loc:        nested.Loc,
		}
	}
	return result
}
