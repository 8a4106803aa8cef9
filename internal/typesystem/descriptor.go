package typesystem

import (
	"fmt"
	"reflect"
	"strings"
)

// Descriptor is the interface for all type descriptors in our system.
// A descriptor is a runtime value describing a type expression; it is built
// once and compared structurally, never mutated.
type Descriptor interface {
	String() string
	Equal(other Descriptor) bool

	sealed()
}

// Concrete represents a single nominal Go type.
type Concrete struct {
	Type reflect.Type
}

func (c Concrete) String() string {
	if c.Type == nil {
		return "<nil>"
	}
	if name := c.Type.Name(); name != "" {
		return name
	}
	return c.Type.String()
}

func (c Concrete) Equal(other Descriptor) bool {
	o, ok := other.(Concrete)
	return ok && c.Type == o.Type
}

func (Concrete) sealed() {}

// Union represents an ordered set of alternatives. A candidate satisfies a
// union when it satisfies at least one member, checked in declaration order.
type Union struct {
	Members []Descriptor
}

// OneOf builds a union of the given members. Order is preserved.
func OneOf(members ...Descriptor) Union {
	return Union{Members: members}
}

func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

func (u Union) Equal(other Descriptor) bool {
	o, ok := other.(Union)
	if !ok || len(u.Members) != len(o.Members) {
		return false
	}
	for i, m := range u.Members {
		if !m.Equal(o.Members[i]) {
			return false
		}
	}
	return true
}

func (Union) sealed() {}

// Shape is the nominal origin of a Parameterized descriptor (the "List" in
// "List<Int>"). Shapes compare by identity: two shapes are the same origin
// only when they are the same *Shape value.
type Shape struct {
	name string
}

// NewShape declares a new generic origin with the given display name.
func NewShape(name string) *Shape {
	return &Shape{name: name}
}

func (s *Shape) Name() string { return s.name }

// Origins produced by the reflect mapping. Unnamed slice and map types
// decompose onto List and Map; Tuple carries the results of a multi-valued
// func.
var (
	List  = NewShape("List")
	Map   = NewShape("Map")
	Tuple = NewShape("Tuple")
)

// Parameterized represents an instantiated generic shape, e.g. List<Int>.
type Parameterized struct {
	Shape *Shape
	Args  []Descriptor
}

// Generic builds a parameterized descriptor over the given origin.
func Generic(shape *Shape, args ...Descriptor) Parameterized {
	return Parameterized{Shape: shape, Args: args}
}

func (p Parameterized) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", p.Shape.Name(), strings.Join(parts, ", "))
}

func (p Parameterized) Equal(other Descriptor) bool {
	o, ok := other.(Parameterized)
	if !ok || p.Shape != o.Shape || len(p.Args) != len(o.Args) {
		return false
	}
	for i, a := range p.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (Parameterized) sealed() {}

// Annotated attaches opaque metadata to a base descriptor. Metadata rides
// along for callers to inspect; compatibility sees only the base.
type Annotated struct {
	Base Descriptor
	Meta any
}

// WithMeta wraps base with metadata.
func WithMeta(base Descriptor, meta any) Annotated {
	return Annotated{Base: base, Meta: meta}
}

func (a Annotated) String() string {
	return fmt.Sprintf("Annotated[%s]", a.Base.String())
}

func (a Annotated) Equal(other Descriptor) bool {
	o, ok := other.(Annotated)
	return ok && a.Base.Equal(o.Base) && reflect.DeepEqual(a.Meta, o.Meta)
}

func (Annotated) sealed() {}

// Func represents a callable signature. AnyParams marks the wildcard
// parameter list: such a signature matches any concrete parameter list, and
// conversely a wildcard expectation accepts any candidate's parameters.
type Func struct {
	Params    []Descriptor
	AnyParams bool
	Result    Descriptor
}

// Callable builds a callable signature with a concrete parameter list.
// A nil result stands for no result and is normalized to Void.
func Callable(params []Descriptor, result Descriptor) Func {
	if result == nil {
		result = Void
	}
	return Func{Params: params, Result: result}
}

// CallableAny builds a callable signature with the wildcard parameter list.
func CallableAny(result Descriptor) Func {
	if result == nil {
		result = Void
	}
	return Func{AnyParams: true, Result: result}
}

func (f Func) String() string {
	var b strings.Builder
	b.WriteString("func(")
	if f.AnyParams {
		b.WriteString("...")
	} else {
		for i, p := range f.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
	}
	b.WriteString(")")
	if f.Result != nil && !f.Result.Equal(Void) {
		b.WriteString(" ")
		b.WriteString(f.Result.String())
	}
	return b.String()
}

func (f Func) Equal(other Descriptor) bool {
	o, ok := other.(Func)
	if !ok || f.AnyParams != o.AnyParams || len(f.Params) != len(o.Params) {
		return false
	}
	for i, p := range f.Params {
		if !p.Equal(o.Params[i]) {
			return false
		}
	}
	if f.Result == nil || o.Result == nil {
		return f.Result == o.Result
	}
	return f.Result.Equal(o.Result)
}

func (Func) sealed() {}

// Bounded represents a constrained type parameter. A candidate satisfies it
// only by matching the bound exactly; no wider subtype relation is applied.
type Bounded struct {
	Bound Descriptor
}

// BoundedBy builds a bounded parameter with the given upper bound.
func BoundedBy(bound Descriptor) Bounded {
	return Bounded{Bound: bound}
}

func (b Bounded) String() string {
	return "~" + b.Bound.String()
}

func (b Bounded) Equal(other Descriptor) bool {
	o, ok := other.(Bounded)
	return ok && b.Bound.Equal(o.Bound)
}

func (Bounded) sealed() {}

// Alias is a distinct nominal type layered over a supertype. Two aliases are
// the same type only when they are the same *Alias value; in particular an
// alias never matches its raw supertype at the descriptor level. Runtime
// values of the supertype do inhabit the alias, see ValueCompatible.
type Alias struct {
	name  string
	super reflect.Type
}

// NewAlias declares a nominal alias over the given supertype.
func NewAlias(name string, super reflect.Type) *Alias {
	return &Alias{name: name, super: super}
}

// AliasOf declares a nominal alias over the type T.
func AliasOf[T any](name string) *Alias {
	return NewAlias(name, reflect.TypeOf((*T)(nil)).Elem())
}

func (a *Alias) Name() string { return a.name }

// Supertype returns the underlying type the alias refines.
func (a *Alias) Supertype() reflect.Type { return a.super }

func (a *Alias) String() string { return a.name }

func (a *Alias) Equal(other Descriptor) bool {
	o, ok := other.(*Alias)
	return ok && a == o
}

func (*Alias) sealed() {}

// anyType is the universal wildcard.
type anyType struct{}

func (anyType) String() string { return "any" }

func (anyType) Equal(other Descriptor) bool {
	_, ok := other.(anyType)
	return ok
}

func (anyType) sealed() {}

// Any matches every candidate when expected. As a candidate it matches only
// an expected Any; the wildcard does not work in reverse.
var Any Descriptor = anyType{}

// void is the runtime stand-in for the absence of a value.
type void struct{}

// Void describes "no value": the result of a handler that returns nothing.
var Void Descriptor = Concrete{Type: reflect.TypeOf(void{})}
