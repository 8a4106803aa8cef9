package typesystem

import "reflect"

var (
	anyInterfaceType = reflect.TypeOf((*any)(nil)).Elem()
	anySliceType     = reflect.TypeOf([]any(nil))
)

// Of returns the descriptor of the type T. Composite forms decompose the
// same way FromReflectType decomposes them, so Of[[]int]() and a reflected
// []int parameter produce equal descriptors.
func Of[T any]() Descriptor {
	return FromReflectType(reflect.TypeOf((*T)(nil)).Elem())
}

// FromReflectType converts a Go type into its descriptor.
//
// The empty interface becomes the wildcard Any. Named types keep their
// nominal identity as Concrete descriptors. Unnamed slices and maps
// decompose into List and Map parameterizations, and unnamed func types
// into callable signatures; everything else stays Concrete.
func FromReflectType(t reflect.Type) Descriptor {
	if t == nil {
		return Void
	}
	if t == anyInterfaceType {
		return Any
	}
	if t.Name() != "" {
		return Concrete{Type: t}
	}
	switch t.Kind() {
	case reflect.Slice:
		return Parameterized{Shape: List, Args: []Descriptor{FromReflectType(t.Elem())}}
	case reflect.Map:
		return Parameterized{Shape: Map, Args: []Descriptor{FromReflectType(t.Key()), FromReflectType(t.Elem())}}
	case reflect.Func:
		return funcDescriptor(t)
	}
	return Concrete{Type: t}
}

// FromValue derives the descriptor of a runtime value. A nil value has no
// runtime type and maps to Void.
func FromValue(v any) Descriptor {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return Void
	}
	return FromReflectType(rt)
}

// ResultOf derives the result descriptor of a func type: Void when it
// returns nothing, the single result's descriptor, or a Tuple
// parameterization over multiple results.
func ResultOf(t reflect.Type) Descriptor {
	switch t.NumOut() {
	case 0:
		return Void
	case 1:
		return FromReflectType(t.Out(0))
	}
	outs := make([]Descriptor, t.NumOut())
	for i := range outs {
		outs[i] = FromReflectType(t.Out(i))
	}
	return Parameterized{Shape: Tuple, Args: outs}
}

func funcDescriptor(t reflect.Type) Descriptor {
	// func(...any) is the wildcard signature.
	if t.IsVariadic() && t.NumIn() == 1 && t.In(0) == anySliceType {
		return Func{AnyParams: true, Result: ResultOf(t)}
	}
	params := make([]Descriptor, t.NumIn())
	for i := range params {
		params[i] = FromReflectType(t.In(i))
	}
	return Func{Params: params, Result: ResultOf(t)}
}
