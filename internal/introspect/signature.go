package introspect

import (
	"fmt"
	"reflect"

	"github.com/funvibe/funact/internal/typesystem"
)

// NotCallableError reports a connect target that is not invocable.
type NotCallableError struct {
	Value any
}

func (e *NotCallableError) Error() string {
	return fmt.Sprintf("connected handler must be callable, got %T", e.Value)
}

// Signature is the declared calling contract of a handler: ordered parameter
// descriptors, an optional name per parameter for diagnostics, and the result
// descriptor. A nil entry in Params marks a parameter whose type was not
// declared.
type Signature struct {
	Params     []typesystem.Descriptor
	ParamNames []string
	Result     typesystem.Descriptor
	Variadic   bool
}

// ParamName returns the diagnostic name of parameter i.
func (s *Signature) ParamName(i int) string {
	if i < len(s.ParamNames) && s.ParamNames[i] != "" {
		return s.ParamNames[i]
	}
	return fmt.Sprintf("arg%d", i)
}

// Declarer supplies an explicit signature for a handler instead of the one
// reflection would derive. This is the registration path for descriptors
// reflection cannot produce, nominal aliases in particular.
type Declarer interface {
	ActionSignature() *Signature
}

// DeclaredHandler pairs a callable with an explicitly declared signature.
type DeclaredHandler struct {
	fn  any
	sig *Signature
}

// Declared wraps fn with the given parameter descriptors. The result
// descriptor is still derived from fn itself. A nil parameter entry stands
// for a deliberately undeclared type.
func Declared(fn any, params ...typesystem.Descriptor) *DeclaredHandler {
	sig := &Signature{Params: params}
	if v := reflect.ValueOf(fn); v.IsValid() && v.Kind() == reflect.Func {
		sig.Result = typesystem.ResultOf(v.Type())
		sig.Variadic = v.Type().IsVariadic()
	}
	return &DeclaredHandler{fn: fn, sig: sig}
}

// WithNames sets the parameter names reported in diagnostics.
func (h *DeclaredHandler) WithNames(names ...string) *DeclaredHandler {
	h.sig.ParamNames = names
	return h
}

func (h *DeclaredHandler) ActionSignature() *Signature { return h.sig }

// Fn returns the wrapped callable.
func (h *DeclaredHandler) Fn() any { return h.fn }

// Describe extracts the declared signature of a handler. A Declarer handler
// supplies its own; anything else must be a func value and gets a signature
// derived from its reflect type. Go reflection carries no parameter names,
// so derived signatures report positional names.
func Describe(handler any) (*Signature, error) {
	fn := Unwrap(handler)
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, &NotCallableError{Value: handler}
	}
	if d, ok := handler.(Declarer); ok {
		if sig := d.ActionSignature(); sig != nil {
			return sig, nil
		}
	}
	t := v.Type()
	params := make([]typesystem.Descriptor, t.NumIn())
	for i := range params {
		params[i] = typesystem.FromReflectType(t.In(i))
	}
	return &Signature{
		Params:   params,
		Result:   typesystem.ResultOf(t),
		Variadic: t.IsVariadic(),
	}, nil
}
