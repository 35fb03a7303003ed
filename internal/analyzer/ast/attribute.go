package ast

// AttributeName is a single-segment access represented as a hashed
// wrapper over the identifier string, per the design notes — a plain
// string-based type is sufficient since Go hashes map keys by value.
type AttributeName string

// Attribute describes one attribute a class exposes, whichever of the
// five sources in class.Attributes contributed it.
type Attribute struct {
	// Target is the access expression the attribute was discovered
	// through (e.g. `self.x`, or the class-body name itself).
	Target Expression
	// Annotation is the attribute's declared or inferred type annotation.
	Annotation Expression // nil if absent
	// Defines accumulates overload signatures when multiple Defines share
	// this attribute's name (callable attributes). Bodies are cleared.
	Defines []*Define
	// Value carries auxiliary payload depending on how the attribute was
	// produced: the assigned value of a class-body assignment (for a
	// tuple-destructuring assignment, the matching right-hand element or a
	// synthesized `__getitem__(i)` call), or, for a property whose getter
	// and setter were merged, the setter's parameter annotation.
	Value Expression // nil if absent
	Async bool
	// Setter is true when this attribute comes from a
	// `<name>.setter`-decorated define, on its own or merged with the
	// property's getter.
	Setter bool
	// Primitive distinguishes attributes arising from a direct assignment
	// from synthesized class/callable attributes.
	Primitive bool
	Loc       SourceLocation
}

// AttributeMap maps a class's attribute names to their descriptions.
type AttributeMap map[AttributeName]*Attribute
