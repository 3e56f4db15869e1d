// Package typeexpr is the data model for parsed Java type signatures.
//
// A Type is one of Primitive, *Class, *Parameterized, *Array, *GenericArray
// or *Wildcard. Trees are immutable once built and hold no live runtime
// state beyond the Handle values returned by a Resolver, so they can be
// serialized in one phase and re-resolved in another (see Marshal and
// Unmarshal).
package typeexpr

import "strings"

type Kind int

const (
	KindPrimitive Kind = iota
	KindClass
	KindParameterized
	KindArray
	KindGenericArray
	KindWildcard
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindClass:
		return "class"
	case KindParameterized:
		return "parameterized"
	case KindArray:
		return "array"
	case KindGenericArray:
		return "genericArray"
	case KindWildcard:
		return "wildcard"
	}
	return "unknown"
}

// Type is a node of a type expression tree.
type Type interface {
	Kind() Kind
	// String returns the canonical source form, which parses back to an
	// equal tree.
	String() string
	isType()
}

// Handle is an opaque reference produced by a Resolver. Name returns the
// dotted class name, or the array descriptor name for array handles
// (e.g. "[[I", "[Ljava.lang.String;").
type Handle interface {
	Name() string
}

// Resolver turns a fully-qualified dotted name or an array descriptor name
// into a Handle. Implementations used from several goroutines must be safe
// for concurrent use.
type Resolver interface {
	Resolve(name string) (Handle, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string) (Handle, error)

func (f ResolverFunc) Resolve(name string) (Handle, error) {
	return f(name)
}

// Primitive is a Java primitive type or void.
type Primitive string

const (
	Void    Primitive = "void"
	Boolean Primitive = "boolean"
	Byte    Primitive = "byte"
	Short   Primitive = "short"
	Int     Primitive = "int"
	Long    Primitive = "long"
	Float   Primitive = "float"
	Double  Primitive = "double"
	Char    Primitive = "char"
)

var primitiveDescriptors = map[Primitive]byte{
	Void:    'V',
	Boolean: 'Z',
	Byte:    'B',
	Short:   'S',
	Int:     'I',
	Long:    'J',
	Float:   'F',
	Double:  'D',
	Char:    'C',
}

// ParsePrimitive reports whether name is a primitive keyword or void.
func ParsePrimitive(name string) (Primitive, bool) {
	p := Primitive(name)
	_, ok := primitiveDescriptors[p]
	return p, ok
}

// PrimitiveFromDescriptor maps a JVM base type code ('I', 'Z', ...) back to
// its primitive.
func PrimitiveFromDescriptor(code byte) (Primitive, bool) {
	for p, c := range primitiveDescriptors {
		if c == code {
			return p, true
		}
	}
	return "", false
}

func (p Primitive) Kind() Kind     { return KindPrimitive }
func (p Primitive) String() string { return string(p) }
func (p Primitive) isType()        {}

// Descriptor returns the single-character JVM code for p.
func (p Primitive) Descriptor() byte {
	return primitiveDescriptors[p]
}

// Class is a named, non-generic reference type.
type Class struct {
	Handle Handle
}

func NewClass(h Handle) *Class {
	return &Class{Handle: h}
}

func (c *Class) Kind() Kind     { return KindClass }
func (c *Class) String() string { return c.Handle.Name() }
func (c *Class) isType()        {}

// Name is the fully-qualified dotted name of the class.
func (c *Class) Name() string {
	return c.Handle.Name()
}

// Parameterized is a class applied to one or more type arguments.
type Parameterized struct {
	Raw  *Class
	Args []Type
}

func NewParameterized(raw *Class, args ...Type) *Parameterized {
	return &Parameterized{Raw: raw, Args: args}
}

func (p *Parameterized) Kind() Kind { return KindParameterized }
func (p *Parameterized) isType()    {}

func (p *Parameterized) String() string {
	var sb strings.Builder
	sb.WriteString(p.Raw.String())
	sb.WriteByte('<')
	for i, arg := range p.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

// Array is an array of a primitive or plain class component, represented by
// a single resolved handle for the whole array type.
type Array struct {
	Component  Type
	Dimensions int
	Handle     Handle
}

func NewArray(component Type, dims int, h Handle) *Array {
	return &Array{Component: component, Dimensions: dims, Handle: h}
}

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) isType()    {}

func (a *Array) String() string {
	return a.Component.String() + strings.Repeat("[]", a.Dimensions)
}

// Elem returns the type of one element: the component for a one-dimensional
// array, otherwise an Array with one dimension fewer. The returned array
// has no handle.
func (a *Array) Elem() Type {
	if a.Dimensions <= 1 {
		return a.Component
	}
	return &Array{Component: a.Component, Dimensions: a.Dimensions - 1}
}

// GenericArray is a single array dimension over a generic component.
type GenericArray struct {
	Component Type
}

func NewGenericArray(component Type) *GenericArray {
	return &GenericArray{Component: component}
}

func (g *GenericArray) Kind() Kind     { return KindGenericArray }
func (g *GenericArray) String() string { return g.Component.String() + "[]" }
func (g *GenericArray) isType()        {}

type WildcardBound int

const (
	BoundNone WildcardBound = iota
	BoundExtends
	BoundSuper
)

func (b WildcardBound) String() string {
	switch b {
	case BoundExtends:
		return "extends"
	case BoundSuper:
		return "super"
	}
	return ""
}

// Wildcard is a type argument of the form ?, ? extends T or ? super T.
type Wildcard struct {
	Bound WildcardBound
	Type  Type
}

var unbounded = &Wildcard{}

// Unbounded returns the shared ? wildcard.
func Unbounded() *Wildcard { return unbounded }

func Extends(t Type) *Wildcard { return &Wildcard{Bound: BoundExtends, Type: t} }
func Super(t Type) *Wildcard   { return &Wildcard{Bound: BoundSuper, Type: t} }

func (w *Wildcard) Kind() Kind { return KindWildcard }
func (w *Wildcard) isType()    {}

func (w *Wildcard) String() string {
	if w.Bound == BoundNone || w.Type == nil {
		return "?"
	}
	return "? " + w.Bound.String() + " " + w.Type.String()
}
