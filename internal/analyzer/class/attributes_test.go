package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starling-lang/starling/internal/analyzer/ast"
	"github.com/starling-lang/starling/internal/analyzer/decorators"
)

var loc = ast.SourceLocation{File: "test.py", StartLine: 1}

func accessSelf(name string) ast.Expression {
	return ast.NewAccessChain(loc, "self", name)
}

func TestAttributes_ExplicitAssignmentWins(t *testing.T) {
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{
			&ast.Assign{
				Target:     ast.NewAccessChain(loc, "count"),
				Annotation: ast.NewAccessChain(loc, "int"),
				Loc:        loc,
			},
		},
		Loc: loc,
	}

	attrs := Attributes(class, decorators.DefaultRegistry(), false, true)
	require.Contains(t, attrs, ast.AttributeName("count"))
	assert.True(t, attrs["count"].Primitive)
	assert.True(t, attrs["count"].Annotation.Equal(ast.NewAccessChain(loc, "int")))
}

func TestAttributes_TupleDestructuringParallel(t *testing.T) {
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{
			&ast.Assign{
				Target: &ast.Tuple{Elements: []ast.Expression{
					ast.NewAccessChain(loc, "a"),
					ast.NewAccessChain(loc, "b"),
				}, Loc: loc},
				Value: &ast.Tuple{Elements: []ast.Expression{
					&ast.IntegerLiteral{Value: 1, Loc: loc},
					&ast.IntegerLiteral{Value: 2, Loc: loc},
				}, Loc: loc},
				Loc: loc,
			},
		},
		Loc: loc,
	}

	attrs := Attributes(class, decorators.DefaultRegistry(), false, true)
	require.Contains(t, attrs, ast.AttributeName("a"))
	require.Contains(t, attrs, ast.AttributeName("b"))
	v, ok := attrs["a"].Value.AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestAttributes_TupleDestructuringMismatchedAritySkipped(t *testing.T) {
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{
			&ast.Assign{
				Target: &ast.Tuple{Elements: []ast.Expression{
					ast.NewAccessChain(loc, "a"),
					ast.NewAccessChain(loc, "b"),
				}, Loc: loc},
				Value: &ast.Tuple{Elements: []ast.Expression{
					&ast.IntegerLiteral{Value: 1, Loc: loc},
				}, Loc: loc},
				Loc: loc,
			},
		},
		Loc: loc,
	}

	attrs := Attributes(class, decorators.DefaultRegistry(), false, true)
	assert.NotContains(t, attrs, ast.AttributeName("a"))
	assert.NotContains(t, attrs, ast.AttributeName("b"))
}

func TestAttributes_TupleDestructuringAccessChainRHSSynthesizesGetItem(t *testing.T) {
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{
			&ast.Assign{
				Target: &ast.Tuple{Elements: []ast.Expression{
					ast.NewAccessChain(loc, "a"),
					ast.NewAccessChain(loc, "b"),
				}, Loc: loc},
				Value: ast.NewAccessChain(loc, "pair"),
				Loc:   loc,
			},
		},
		Loc: loc,
	}

	attrs := Attributes(class, decorators.DefaultRegistry(), false, true)
	require.Contains(t, attrs, ast.AttributeName("a"))
	chain, ok := attrs["a"].Value.AsAccessChain()
	require.True(t, ok)
	assert.Equal(t, "pair.__getitem__(0)", chain.String())
}

func TestAttributes_ImplicitAttributesOnlyWhenRequested(t *testing.T) {
	ctor := &ast.Define{
		Name:       ast.NewAccessChain(loc, "__init__"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}, {Name: "name", Annotation: ast.NewAccessChain(loc, "str"), Loc: loc}},
		Body: []ast.Statement{
			&ast.Assign{Target: accessSelf("name"), Value: ast.NewAccessChain(loc, "name"), Loc: loc},
		},
		Parent: strPtr("Widget"),
		Loc:    loc,
	}
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{ctor},
		Loc:  loc,
	}

	without := Attributes(class, decorators.DefaultRegistry(), false, false)
	assert.NotContains(t, without, ast.AttributeName("name"))

	with := Attributes(class, decorators.DefaultRegistry(), false, true)
	require.Contains(t, with, ast.AttributeName("name"))
	assert.True(t, with["name"].Annotation.Equal(ast.NewAccessChain(loc, "str")))

	for name, attr := range without {
		assert.True(t, with[name].Annotation == nil || attr.Annotation.Equal(with[name].Annotation))
	}
}

func TestAttributes_PropertyGetterAndSetterMerge(t *testing.T) {
	getter := &ast.Define{
		Name:             ast.NewAccessChain(loc, "value"),
		Parameters:       []*ast.Parameter{{Name: "self", Loc: loc}},
		Decorators:       []ast.Expression{ast.NewAccessChain(loc, "property")},
		ReturnAnnotation: ast.NewAccessChain(loc, "int"),
		Parent:           strPtr("Widget"),
		Loc:              loc,
	}
	setter := &ast.Define{
		Name: ast.NewAccessChain(loc, "value"),
		Parameters: []*ast.Parameter{
			{Name: "self", Loc: loc},
			{Name: "v", Annotation: ast.NewAccessChain(loc, "int"), Loc: loc},
		},
		Decorators: []ast.Expression{ast.NewAccessChain(loc, "value", "setter")},
		Parent:     strPtr("Widget"),
		Loc:        loc,
	}
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{getter, setter},
		Loc:  loc,
	}

	attrs := Attributes(class, decorators.DefaultRegistry(), false, true)
	require.Contains(t, attrs, ast.AttributeName("value"))
	attr := attrs["value"]
	assert.True(t, attr.Setter)
	assert.True(t, attr.Annotation.Equal(ast.NewAccessChain(loc, "int")))
	assert.True(t, attr.Value.Equal(ast.NewAccessChain(loc, "int")))
}

func TestAttributes_CallableAttributeCollectsOverloads(t *testing.T) {
	first := &ast.Define{
		Name:       ast.NewAccessChain(loc, "run"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}},
		Decorators: []ast.Expression{ast.NewAccessChain(loc, "overload")},
		Body:       []ast.Statement{&ast.Pass{Loc: loc}},
		Parent:     strPtr("Widget"),
		Loc:        loc,
	}
	second := &ast.Define{
		Name:       ast.NewAccessChain(loc, "run"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}, {Name: "n", Loc: loc}},
		Body:       []ast.Statement{&ast.Pass{Loc: loc}},
		Parent:     strPtr("Widget"),
		Loc:        loc,
	}
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{first, second},
		Loc:  loc,
	}

	attrs := Attributes(class, decorators.DefaultRegistry(), false, true)
	require.Contains(t, attrs, ast.AttributeName("run"))
	require.Len(t, attrs["run"].Defines, 2)
	for _, d := range attrs["run"].Defines {
		assert.Nil(t, d.Body)
	}
}

func TestAttributes_NestedClassAttribute(t *testing.T) {
	inner := &ast.Class{Name: ast.NewAccessChain(loc, "Meta"), Loc: loc}
	outer := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{inner},
		Loc:  loc,
	}

	attrs := Attributes(outer, decorators.DefaultRegistry(), false, true)
	require.Contains(t, attrs, ast.AttributeName("Meta"))
	assert.Equal(t, "typing.ClassVar[typing.Type[Widget.Meta]]", attrs["Meta"].Annotation.String())
}

func TestAttributes_ExplicitBeatsEveryOtherLayer(t *testing.T) {
	explicit := &ast.Assign{
		Target:     ast.NewAccessChain(loc, "run"),
		Annotation: ast.NewAccessChain(loc, "int"),
		Loc:        loc,
	}
	method := &ast.Define{
		Name:       ast.NewAccessChain(loc, "run"),
		Parameters: []*ast.Parameter{{Name: "self", Loc: loc}},
		Body:       []ast.Statement{&ast.Pass{Loc: loc}},
		Parent:     strPtr("Widget"),
		Loc:        loc,
	}
	class := &ast.Class{
		Name: ast.NewAccessChain(loc, "Widget"),
		Body: []ast.Statement{explicit, method},
		Loc:  loc,
	}

	attrs := Attributes(class, decorators.DefaultRegistry(), false, true)
	require.Contains(t, attrs, ast.AttributeName("run"))
	assert.True(t, attrs["run"].Primitive)
	assert.Nil(t, attrs["run"].Defines)
}

func TestConstructors_FindsInitAndTestSetupWhenInTest(t *testing.T) {
	init := &ast.Define{Name: ast.NewAccessChain(loc, "__init__"), Parameters: []*ast.Parameter{{Name: "self", Loc: loc}}, Parent: strPtr("Widget"), Loc: loc}
	setUp := &ast.Define{Name: ast.NewAccessChain(loc, "setUp"), Parameters: []*ast.Parameter{{Name: "self", Loc: loc}}, Parent: strPtr("Widget"), Loc: loc}
	class := &ast.Class{Name: ast.NewAccessChain(loc, "Widget"), Body: []ast.Statement{init, setUp}, Loc: loc}

	assert.Len(t, Constructors(class, false), 1)
	assert.Len(t, Constructors(class, true), 2)
}

func strPtr(s string) *string { return &s }
