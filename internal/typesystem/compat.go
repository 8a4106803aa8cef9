package typesystem

import "reflect"

// Compatible reports whether a candidate descriptor satisfies an expected
// descriptor. The relation is directional: the expected side drives the
// recursion and the candidate is checked against it.
//
// Rules, in order:
//   - Any expected accepts everything.
//   - Union expected accepts a candidate matching any member, in order.
//   - Parameterized expected requires the same origin shape and pairwise
//     compatible arguments at every position.
//   - Annotated expected delegates to its base; metadata is ignored.
//   - Func expected requires a Func candidate; parameter lists compare
//     pairwise in the same direction as results (no contravariant flip).
//     A wildcard candidate list accepts the signature outright; a wildcard
//     expected list skips the parameter comparison only.
//   - Bounded expected requires the candidate to equal the bound exactly.
//   - Alias expected requires the identical alias value.
//   - Anything else falls back to structural equality.
func Compatible(candidate, expected Descriptor) bool {
	switch exp := expected.(type) {
	case anyType:
		return true
	case Union:
		for _, m := range exp.Members {
			if Compatible(candidate, m) {
				return true
			}
		}
		return false
	case Parameterized:
		cand, ok := candidate.(Parameterized)
		if !ok || cand.Shape != exp.Shape || len(cand.Args) != len(exp.Args) {
			return false
		}
		for i, a := range exp.Args {
			if !Compatible(cand.Args[i], a) {
				return false
			}
		}
		return true
	case Annotated:
		return Compatible(candidate, exp.Base)
	case Func:
		cand, ok := candidate.(Func)
		if !ok {
			return false
		}
		if cand.AnyParams {
			// A wildcard candidate marks a signature whose parameters could
			// not be introspected; it is accepted as a whole.
			return true
		}
		if !exp.AnyParams {
			if len(cand.Params) != len(exp.Params) {
				return false
			}
			for i, p := range exp.Params {
				if !Compatible(cand.Params[i], p) {
					return false
				}
			}
		}
		return Compatible(cand.Result, exp.Result)
	case Bounded:
		return candidate.Equal(exp.Bound)
	case *Alias:
		cand, ok := candidate.(*Alias)
		return ok && cand == exp
	default:
		return candidate.Equal(expected)
	}
}

// ValueCompatible reports whether a runtime value satisfies an expected
// descriptor. This is the call-boundary counterpart of Compatible: the
// candidate is the value's runtime type, concrete expectations accept any
// assignable value (interface implementors included), and an alias accepts
// values of its supertype. Aliases behave differently at the two boundaries
// on purpose: declared alias types must match by identity, runtime values
// only carry the supertype.
func ValueCompatible(value any, expected Descriptor) bool {
	switch exp := expected.(type) {
	case anyType:
		return true
	case Union:
		for _, m := range exp.Members {
			if ValueCompatible(value, m) {
				return true
			}
		}
		return false
	case Annotated:
		return ValueCompatible(value, exp.Base)
	case *Alias:
		rt := reflect.TypeOf(value)
		return rt != nil && rt.AssignableTo(exp.super)
	case Concrete:
		rt := reflect.TypeOf(value)
		if rt == nil {
			return Nilable(exp.Type)
		}
		return rt.AssignableTo(exp.Type)
	case Parameterized:
		// List and Map are what the reflect mapping derives for Go's nilable
		// container kinds, so nil inhabits them.
		if value == nil {
			return exp.Shape == List || exp.Shape == Map
		}
		return Compatible(FromValue(value), exp)
	case Func:
		if value == nil {
			return true
		}
		return Compatible(FromValue(value), exp)
	default:
		rt := reflect.TypeOf(value)
		if rt == nil {
			return false
		}
		return Compatible(FromReflectType(rt), expected)
	}
}

// Nilable reports whether a nil value can inhabit the given type.
func Nilable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
