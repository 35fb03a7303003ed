package ast

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Expression is the opaque collaborator the statement model is defined
// against. The parser and type checker own the real expression grammar;
// this package only needs the structural queries the statement subsystem
// consults: is a value an access chain, a tuple, a string literal, or an
// integer literal, plus equality and a stable hash for map keys and
// snapshot tests.
type Expression interface {
	Node

	// Equal reports whether two expressions are structurally identical.
	Equal(other Expression) bool

	// Hash returns a stable digest of the expression's structure, ignoring
	// source location. Equal expressions always hash equal.
	Hash() string

	// String renders the expression in surface syntax, used by the pretty
	// printer and by Hash.
	String() string

	// AsAccessChain reports whether the expression is a dotted
	// identifier/call sequence, returning it when so.
	AsAccessChain() (*AccessChain, bool)

	// AsTuple reports whether the expression is a tuple literal.
	AsTuple() (*Tuple, bool)

	// AsString reports whether the expression is a string literal,
	// returning its value when so.
	AsString() (string, bool)

	// AsInteger reports whether the expression is an integer literal,
	// returning its value when so.
	AsInteger() (int64, bool)
}

func hashOf(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// notAccessChain, notTuple, notString, notInteger are embedded by every
// concrete expression that isn't the corresponding shape, so each shape
// only has to implement the query it actually satisfies.
type notAccessChain struct{}

func (notAccessChain) AsAccessChain() (*AccessChain, bool) { return nil, false }

type notTuple struct{}

func (notTuple) AsTuple() (*Tuple, bool) { return nil, false }

type notString struct{}

func (notString) AsString() (string, bool) { return "", false }

type notInteger struct{}

func (notInteger) AsInteger() (int64, bool) { return 0, false }

// Argument is a positional or keyword argument to a call or a base-class
// list. Name is nil for positional arguments.
type Argument struct {
	Name  *string
	Value Expression
}

func (a *Argument) String() string {
	if a.Name != nil {
		return *a.Name + "=" + a.Value.String()
	}
	return a.Value.String()
}

func (a *Argument) equal(other *Argument) bool {
	if (a.Name == nil) != (other.Name == nil) {
		return false
	}
	if a.Name != nil && *a.Name != *other.Name {
		return false
	}
	return a.Value.Equal(other.Value)
}

// Segment is one element of an AccessChain: a bare identifier, a call
// carrying arguments onto the preceding identifier, or a lifted opaque
// leading expression.
type Segment struct {
	// Identifier is the segment's name when IsCall is false and Expr is nil.
	Identifier string
	// IsCall marks a call segment (e.g. the "()" in "foo.bar()").
	IsCall bool
	// Arguments holds the call's arguments when IsCall is true.
	Arguments []*Argument
	// Expr holds a non-access-chain expression lifted into leading segment
	// position, e.g. desugaring `(a + b).__iter__()` where the iterated
	// expression isn't itself dotted. Only ever the first segment.
	Expr Expression
}

// NewIdentifierSegment builds an identifier segment.
func NewIdentifierSegment(name string) Segment {
	return Segment{Identifier: name}
}

// NewCallSegment builds a call segment with the given arguments.
func NewCallSegment(args ...*Argument) Segment {
	return Segment{IsCall: true, Arguments: args}
}

func (s Segment) String() string {
	if s.IsCall {
		parts := make([]string, len(s.Arguments))
		for i, a := range s.Arguments {
			parts[i] = a.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	if s.Expr != nil {
		return s.Expr.String()
	}
	return s.Identifier
}

func (s Segment) equal(other Segment) bool {
	if s.IsCall != other.IsCall {
		return false
	}
	if s.IsCall {
		if len(s.Arguments) != len(other.Arguments) {
			return false
		}
		for i, a := range s.Arguments {
			if !a.equal(other.Arguments[i]) {
				return false
			}
		}
		return true
	}
	if (s.Expr == nil) != (other.Expr == nil) {
		return false
	}
	if s.Expr != nil {
		return s.Expr.Equal(other.Expr)
	}
	return s.Identifier == other.Identifier
}

// AccessChain is an ordered sequence of dotted identifier and call
// segments representing a qualified name or a call expression, e.g.
// `self.x`, `abc.abstractmethod`, or `pyre_dump()`.
type AccessChain struct {
	notTuple
	notString
	notInteger

	Segments []Segment
	Loc      SourceLocation
}

// LiftToAccessChain returns expr's own access chain when it already is one,
// and otherwise wraps expr as a single lifted leading segment so a further
// dotted call (e.g. `.__iter__()`) can be appended onto it.
func LiftToAccessChain(expr Expression) *AccessChain {
	if chain, ok := expr.AsAccessChain(); ok {
		return chain
	}
	return &AccessChain{Segments: []Segment{{Expr: expr}}, Loc: expr.Location()}
}

// NewAccessChain builds an access chain out of plain identifier names,
// e.g. NewAccessChain(loc, "typing", "Union") for `typing.Union`.
func NewAccessChain(loc SourceLocation, names ...string) *AccessChain {
	segments := make([]Segment, len(names))
	for i, n := range names {
		segments[i] = NewIdentifierSegment(n)
	}
	return &AccessChain{Segments: segments, Loc: loc}
}

func (a *AccessChain) Location() SourceLocation { return a.Loc }

func (a *AccessChain) AsAccessChain() (*AccessChain, bool) { return a, true }

func (a *AccessChain) String() string {
	var b strings.Builder
	for i, seg := range a.Segments {
		if seg.IsCall {
			b.WriteString(seg.String())
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

func (a *AccessChain) Hash() string { return hashOf("access:" + a.String()) }

func (a *AccessChain) Equal(other Expression) bool {
	o, ok := other.AsAccessChain()
	if !ok || len(a.Segments) != len(o.Segments) {
		return false
	}
	for i, seg := range a.Segments {
		if !seg.equal(o.Segments[i]) {
			return false
		}
	}
	return true
}

// Identifiers returns the leading run of plain-identifier segment names,
// e.g. ["self", "x"] for `self.x`, or ["asyncio", "coroutines", "coroutine"]
// for that dotted name. Trailing call segments are not identifiers and stop
// the run only when they are not the final segment.
func (a *AccessChain) Identifiers() []string {
	names := make([]string, 0, len(a.Segments))
	for _, seg := range a.Segments {
		if seg.IsCall {
			break
		}
		names = append(names, seg.Identifier)
	}
	return names
}

// IsDotted reports whether every segment is a plain identifier (no calls).
func (a *AccessChain) IsDotted() bool {
	for _, seg := range a.Segments {
		if seg.IsCall {
			return false
		}
	}
	return true
}

// Tuple is a tuple literal or tuple-destructuring target, e.g. `a, b`.
type Tuple struct {
	notAccessChain
	notString
	notInteger

	Elements []Expression
	Loc      SourceLocation
}

func (t *Tuple) Location() SourceLocation { return t.Loc }

func (t *Tuple) AsTuple() (*Tuple, bool) { return t, true }

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func (t *Tuple) Hash() string { return hashOf("tuple:" + t.String()) }

func (t *Tuple) Equal(other Expression) bool {
	o, ok := other.AsTuple()
	if !ok || len(t.Elements) != len(o.Elements) {
		return false
	}
	for i, e := range t.Elements {
		if !e.Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// StringLiteral is a string literal, e.g. `"hello"`.
type StringLiteral struct {
	notAccessChain
	notTuple
	notInteger

	Value string
	Loc   SourceLocation
}

func (s *StringLiteral) Location() SourceLocation { return s.Loc }

func (s *StringLiteral) AsString() (string, bool) { return s.Value, true }

func (s *StringLiteral) String() string { return strconv.Quote(s.Value) }

func (s *StringLiteral) Hash() string { return hashOf("str:" + s.Value) }

func (s *StringLiteral) Equal(other Expression) bool {
	v, ok := other.AsString()
	return ok && v == s.Value
}

// IntegerLiteral is an integer literal, e.g. `42`.
type IntegerLiteral struct {
	notAccessChain
	notTuple
	notString

	Value int64
	Loc   SourceLocation
}

func (i *IntegerLiteral) Location() SourceLocation { return i.Loc }

func (i *IntegerLiteral) AsInteger() (int64, bool) { return i.Value, true }

func (i *IntegerLiteral) String() string { return strconv.FormatInt(i.Value, 10) }

func (i *IntegerLiteral) Hash() string { return hashOf("int:" + i.String()) }

func (i *IntegerLiteral) Equal(other Expression) bool {
	v, ok := other.AsInteger()
	return ok && v == i.Value
}

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	notAccessChain
	notTuple
	notString
	notInteger

	Value float64
	Loc   SourceLocation
}

func (f *FloatLiteral) Location() SourceLocation { return f.Loc }

func (f *FloatLiteral) String() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

func (f *FloatLiteral) Hash() string { return hashOf("float:" + f.String()) }

func (f *FloatLiteral) Equal(other Expression) bool {
	o, ok := other.(*FloatLiteral)
	return ok && o.Value == f.Value
}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	notAccessChain
	notTuple
	notString
	notInteger

	Value bool
	Loc   SourceLocation
}

func (b *BoolLiteral) Location() SourceLocation { return b.Loc }

func (b *BoolLiteral) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

func (b *BoolLiteral) Hash() string { return hashOf("bool:" + b.String()) }

func (b *BoolLiteral) Equal(other Expression) bool {
	o, ok := other.(*BoolLiteral)
	return ok && o.Value == b.Value
}

// NoneLiteral is the `None` literal.
type NoneLiteral struct {
	notAccessChain
	notTuple
	notString
	notInteger

	Loc SourceLocation
}

func (n *NoneLiteral) Location() SourceLocation { return n.Loc }

func (n *NoneLiteral) String() string { return "None" }

func (n *NoneLiteral) Hash() string { return hashOf("none") }

func (n *NoneLiteral) Equal(other Expression) bool {
	_, ok := other.(*NoneLiteral)
	return ok
}

// Subscript is a generic/index application, e.g. `typing.Union[int, str]`
// or `arr[0]`. It is how this package represents the type-checker's
// synthesized generic annotations (Union, ClassVar, Type) without needing
// a dedicated "generic annotation" node.
type Subscript struct {
	notAccessChain
	notTuple
	notString
	notInteger

	Value Expression
	Index Expression
	Loc   SourceLocation
}

// NewSubscript builds `value[index]`. When there is more than one index
// expression (e.g. `hash<K, V>` or `typing.Union[A, B]`), pass a *Tuple as
// index.
func NewSubscript(loc SourceLocation, value Expression, index Expression) *Subscript {
	return &Subscript{Value: value, Index: index, Loc: loc}
}

func (s *Subscript) Location() SourceLocation { return s.Loc }

func (s *Subscript) String() string {
	return fmt.Sprintf("%s[%s]", s.Value.String(), s.Index.String())
}

func (s *Subscript) Hash() string { return hashOf("subscript:" + s.String()) }

func (s *Subscript) Equal(other Expression) bool {
	o, ok := other.(*Subscript)
	return ok && s.Value.Equal(o.Value) && s.Index.Equal(o.Index)
}

// UnionAnnotation synthesizes `typing.Union[e0, e1, ...]` at loc. A single
// element is returned as-is, without a Union wrapper.
func UnionAnnotation(loc SourceLocation, elements ...Expression) Expression {
	if len(elements) == 1 {
		return elements[0]
	}
	return NewSubscript(loc, NewAccessChain(loc, "typing", "Union"), &Tuple{Elements: elements, Loc: loc})
}

// ClassVarAnnotation synthesizes `typing.ClassVar[inner]` at loc.
func ClassVarAnnotation(loc SourceLocation, inner Expression) Expression {
	return NewSubscript(loc, NewAccessChain(loc, "typing", "ClassVar"), inner)
}

// ClassVarTypeAnnotation synthesizes `typing.ClassVar[typing.Type[dotted]]`
// at loc, used for nested-class attributes.
func ClassVarTypeAnnotation(loc SourceLocation, dotted *AccessChain) Expression {
	typ := NewSubscript(loc, NewAccessChain(loc, "typing", "Type"), dotted)
	return ClassVarAnnotation(loc, typ)
}

// GetItemCall synthesizes `expr.__getitem__(i)` at loc, used by tuple
// destructuring against an access-chain right-hand side.
func GetItemCall(loc SourceLocation, expr Expression, index int) Expression {
	chain, ok := expr.AsAccessChain()
	if !ok {
		return expr
	}
	segments := append(append([]Segment{}, chain.Segments...),
		NewIdentifierSegment("__getitem__"),
		NewCallSegment(&Argument{Value: &IntegerLiteral{Value: int64(index), Loc: loc}}),
	)
	return &AccessChain{Segments: segments, Loc: loc}
}
