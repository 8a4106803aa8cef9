package action

import (
	"reflect"

	"github.com/funvibe/funact/internal/introspect"
	"github.com/funvibe/funact/internal/typesystem"
)

// Descriptor type aliases
type Descriptor = typesystem.Descriptor
type Concrete = typesystem.Concrete
type Union = typesystem.Union
type Shape = typesystem.Shape
type Parameterized = typesystem.Parameterized
type Annotated = typesystem.Annotated
type Func = typesystem.Func
type Bounded = typesystem.Bounded
type Alias = typesystem.Alias
type Signature = introspect.Signature
type DeclaredHandler = introspect.DeclaredHandler

// Wildcard, void and the predeclared shapes.
var (
	Any   = typesystem.Any
	Void  = typesystem.Void
	List  = typesystem.List
	Map   = typesystem.Map
	Tuple = typesystem.Tuple
)

// Of returns the descriptor of the type T.
func Of[T any]() Descriptor {
	return typesystem.Of[T]()
}

// For converts a reflect type into its descriptor.
func For(t reflect.Type) Descriptor {
	return typesystem.FromReflectType(t)
}

// FromValue derives the descriptor of a runtime value.
func FromValue(v any) Descriptor {
	return typesystem.FromValue(v)
}

// OneOf builds a union of the given members.
func OneOf(members ...Descriptor) Union {
	return typesystem.OneOf(members...)
}

// NewShape declares a generic origin for parameterized descriptors.
func NewShape(name string) *Shape {
	return typesystem.NewShape(name)
}

// Generic builds a parameterized descriptor over an origin shape.
func Generic(shape *Shape, args ...Descriptor) Parameterized {
	return typesystem.Generic(shape, args...)
}

// WithMeta attaches opaque metadata to a base descriptor.
func WithMeta(base Descriptor, meta any) Annotated {
	return typesystem.WithMeta(base, meta)
}

// Callable builds a callable signature descriptor.
func Callable(params []Descriptor, result Descriptor) Func {
	return typesystem.Callable(params, result)
}

// CallableAny builds the wildcard callable signature.
func CallableAny(result Descriptor) Func {
	return typesystem.CallableAny(result)
}

// BoundedBy builds a bounded parameter descriptor.
func BoundedBy(bound Descriptor) Bounded {
	return typesystem.BoundedBy(bound)
}

// NewAlias declares a nominal alias over a supertype.
func NewAlias(name string, super reflect.Type) *Alias {
	return typesystem.NewAlias(name, super)
}

// AliasOf declares a nominal alias over the type T.
func AliasOf[T any](name string) *Alias {
	return typesystem.AliasOf[T](name)
}

// Declared wraps fn with an explicit parameter declaration, for descriptors
// reflection cannot derive. A nil entry marks an undeclared parameter.
func Declared(fn any, params ...Descriptor) *DeclaredHandler {
	return introspect.Declared(fn, params...)
}

// Compatible reports whether a candidate descriptor satisfies an expected
// one.
func Compatible(candidate, expected Descriptor) bool {
	return typesystem.Compatible(candidate, expected)
}

// ValueCompatible reports whether a runtime value satisfies an expected
// descriptor.
func ValueCompatible(value any, expected Descriptor) bool {
	return typesystem.ValueCompatible(value, expected)
}

// Name renders a descriptor for diagnostics.
func Name(d Descriptor) string {
	return typesystem.Name(d)
}

// NameList renders descriptors as a comma-joined list.
func NameList(ds []Descriptor) string {
	return typesystem.NameList(ds)
}
