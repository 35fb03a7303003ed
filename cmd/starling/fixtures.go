package main

import (
	"fmt"

	"github.com/starling-lang/starling/internal/analyzer/ast"
	"github.com/starling-lang/starling/internal/cli/ui"
)

// fixture bundles a named example class with the flags dump should
// analyze it with, so `starling dump <name>` behaves the same for every
// entry without a switch statement per fixture.
type fixture struct {
	name                       string
	description                string
	class                      *ast.Class
	inTest                     bool
	includeGeneratedAttributes bool
}

var loc = ast.SourceLocation{File: "<fixture>", StartLine: 1}

func id(name string) *ast.AccessChain { return ast.NewAccessChain(loc, name) }

func selfAccess(field string) *ast.AccessChain {
	return ast.NewAccessChain(loc, "self", field)
}

func stringAnnotation() ast.Expression { return id("str") }
func intAnnotation() ast.Expression    { return id("int") }
func boolAnnotation() ast.Expression   { return id("bool") }

// widgetFixture models a plain class whose __init__ assigns instance
// attributes both directly and through a helper method, exercising the
// implicit-attribute inference's sibling-method inlining.
func widgetFixture() *fixture {
	className := "Widget"

	initBody := []ast.Statement{
		&ast.Assign{
			Target: selfAccess("name"),
			Value:  &ast.StringLiteral{Value: "widget", Loc: loc},
			Loc:    loc,
		},
		&ast.ExpressionStmt{
			Expr: &ast.AccessChain{Segments: []ast.Segment{
				ast.NewIdentifierSegment("self"),
				ast.NewIdentifierSegment("_init_fields"),
				ast.NewCallSegment(),
			}, Loc: loc},
			Loc: loc,
		},
	}
	initDefine := &ast.Define{
		Name:       ast.NewAccessChain(loc, "__init__"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}, {Name: "label", Annotation: stringAnnotation(), Loc: loc}},
		Body:       initBody,
		Parent:     &className,
		Loc:        loc,
	}

	initFieldsDefine := &ast.Define{
		Name:       ast.NewAccessChain(loc, "_init_fields"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}},
		Body: []ast.Statement{
			&ast.Assign{
				Target:     selfAccess("count"),
				Annotation: intAnnotation(),
				Value:      &ast.IntegerLiteral{Value: 0, Loc: loc},
				Loc:        loc,
			},
			&ast.Assign{
				Target: selfAccess("active"),
				Value:  &ast.BoolLiteral{Value: true, Loc: loc},
				Loc:    loc,
			},
		},
		Parent: &className,
		Loc:    loc,
	}

	greetDefine := &ast.Define{
		Name:             ast.NewAccessChain(loc, "greet"),
		Parameters:       []*ast.Parameter{{Name: "self", Loc: loc}},
		ReturnAnnotation: stringAnnotation(),
		Body: []ast.Statement{
			&ast.Return{Expr: selfAccess("name"), Loc: loc},
		},
		Parent: &className,
		Loc:    loc,
	}

	class := &ast.Class{
		Name: id(className),
		Body: []ast.Statement{initDefine, initFieldsDefine, greetDefine},
		Loc:  loc,
	}

	return &fixture{
		name:                       "widget",
		description:                "explicit + implicit constructor attributes, one plain method",
		class:                      class,
		includeGeneratedAttributes: true,
	}
}

// accountFixture models a class with an explicit class-body attribute,
// a property getter/setter pair, and a nested class, exercising all but
// the implicit-attribute layer of the merge.
func accountFixture() *fixture {
	className := "Account"

	balanceAssign := &ast.Assign{
		Target:     id("balance"),
		Annotation: intAnnotation(),
		Value:      &ast.IntegerLiteral{Value: 0, Loc: loc},
		Loc:        loc,
	}

	statusGetter := &ast.Define{
		Name:             ast.NewAccessChain(loc, "status"),
		Parameters:       []*ast.Parameter{{Name: "self", Loc: loc}},
		Decorators:       []ast.Expression{id("property")},
		ReturnAnnotation: stringAnnotation(),
		Body:             []ast.Statement{&ast.Return{Expr: &ast.StringLiteral{Value: "open", Loc: loc}, Loc: loc}},
		Parent:           &className,
		Loc:              loc,
	}
	statusSetter := &ast.Define{
		Name:       ast.NewAccessChain(loc, "status"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}, {Name: "value", Annotation: stringAnnotation(), Loc: loc}},
		Decorators: []ast.Expression{ast.NewAccessChain(loc, "status", "setter")},
		Body:       []ast.Statement{&ast.Pass{Loc: loc}},
		Parent:     &className,
		Loc:        loc,
	}

	frozen := &ast.Class{
		Name: id("Frozen"),
		Body: []ast.Statement{
			&ast.Assign{Target: id("reason"), Annotation: stringAnnotation(), Loc: loc},
		},
		Loc: loc,
	}

	class := &ast.Class{
		Name: id(className),
		Body: []ast.Statement{balanceAssign, statusGetter, statusSetter, frozen},
		Loc:  loc,
	}

	return &fixture{
		name:                       "account",
		description:                "explicit attribute, property getter/setter merge, nested class",
		class:                      class,
		includeGeneratedAttributes: false,
	}
}

// fixtures lists every named class `starling dump` can render, in the
// order they should be presented to a user browsing with no argument.
func fixtures() []*fixture {
	return []*fixture{widgetFixture(), accountFixture()}
}

func findFixture(name string) (*fixture, error) {
	all := fixtures()
	names := make([]string, len(all))
	for i, f := range all {
		names[i] = f.name
		if f.name == name {
			return f, nil
		}
	}

	msg := ui.UnknownFixtureError(name, ui.FindSimilar(name, names, nil), true)
	return nil, fmt.Errorf("%s", msg)
}
