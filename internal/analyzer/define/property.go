package define

import (
	"github.com/starling-lang/starling/internal/analyzer/ast"
	"github.com/starling-lang/starling/internal/analyzer/decorators"
)

// PropertyAttribute returns the attribute a @property-style decorator
// exposes, or nil if define isn't recognized as a property getter or
// setter. loc is used for the synthesized ClassVar wrapper when the
// property is class-level.
func PropertyAttribute(loc ast.SourceLocation, d *ast.Define, registry decorators.Registry) *ast.Attribute {
	name, ok := d.SimpleName()
	if !ok {
		return nil
	}

	for _, decoratorName := range registry.ClassPropertyDecorators() {
		if HasDecorator(d, decoratorName) {
			return &ast.Attribute{
				Target:     ast.NewAccessChain(d.Loc, name),
				Annotation: ast.ClassVarAnnotation(loc, d.ReturnAnnotation),
				Loc:        d.Loc,
			}
		}
	}

	for _, decoratorName := range registry.InstancePropertyDecorators() {
		if HasDecorator(d, decoratorName) {
			return &ast.Attribute{
				Target:     ast.NewAccessChain(d.Loc, name),
				Annotation: d.ReturnAnnotation,
				Loc:        d.Loc,
			}
		}
	}

	if IsPropertySetter(d) && len(d.Parameters) >= 2 {
		return &ast.Attribute{
			Target:     ast.NewAccessChain(d.Loc, name),
			Annotation: d.Parameters[1].Annotation,
			Setter:     true,
			Loc:        d.Loc,
		}
	}

	return nil
}
