// Package define implements the queries and derivations the type checker
// runs against a single function or method definition: decorator tests,
// role classification, implicit-attribute extraction from constructors,
// and property recognition.
package define

import (
	"strings"

	"github.com/starling-lang/starling/internal/analyzer/ast"
	"github.com/starling-lang/starling/internal/analyzer/decorators"
)

// HasDecorator reports whether some decorator of define is an access
// chain whose leading identifier segments equal the dot-separated
// components of dottedName. A trailing call segment is allowed (a
// decorator applied as `@some.decorator(...)`) but does not itself count
// toward the comparison — segment counts are compared over identifiers
// only, and identifiers must match pairwise.
func HasDecorator(d *ast.Define, dottedName string) bool {
	parts := strings.Split(dottedName, ".")
	for _, decorator := range d.Decorators {
		chain, ok := decorator.AsAccessChain()
		if !ok {
			continue
		}
		ids := chain.Identifiers()
		if len(ids) != len(parts) {
			continue
		}
		match := true
		for i, part := range parts {
			if ids[i] != part {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// IsCoroutine reports whether define is decorated with
// @asyncio.coroutines.coroutine.
func IsCoroutine(d *ast.Define) bool {
	return HasDecorator(d, "asyncio.coroutines.coroutine")
}

// IsAbstractMethod reports whether define is decorated with any of
// @abstractmethod, @abc.abstractmethod, @abstractproperty, or
// @abc.abstractproperty.
func IsAbstractMethod(d *ast.Define) bool {
	for _, name := range []string{"abstractmethod", "abc.abstractmethod", "abstractproperty", "abc.abstractproperty"} {
		if HasDecorator(d, name) {
			return true
		}
	}
	return false
}

// IsOverloadedMethod reports whether define is decorated with @overload
// or @typing.overload.
func IsOverloadedMethod(d *ast.Define) bool {
	return HasDecorator(d, "overload") || HasDecorator(d, "typing.overload")
}

// IsStaticMethod reports whether define is decorated with @staticmethod.
func IsStaticMethod(d *ast.Define) bool {
	return HasDecorator(d, "staticmethod")
}

// IsClassMethod reports whether define is decorated with any of the
// classmethod decorator names registry recognizes.
func IsClassMethod(d *ast.Define, registry decorators.Registry) bool {
	for _, name := range registry.ClassMethodDecorators() {
		if HasDecorator(d, name) {
			return true
		}
	}
	return false
}

// IsPropertySetter reports whether define is decorated with
// `@<define.name>.setter`.
func IsPropertySetter(d *ast.Define) bool {
	name, ok := d.SimpleName()
	if !ok {
		return false
	}
	return HasDecorator(d, name+".setter")
}
