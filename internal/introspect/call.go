package introspect

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/funvibe/funact/internal/typesystem"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Unwrap returns the callable behind a handler: the wrapped func of a
// declared handler, or the handler itself.
func Unwrap(handler any) any {
	if w, ok := handler.(interface{ Fn() any }); ok {
		return w.Fn()
	}
	return handler
}

// Key returns the comparison identity of a handler, used to find it again on
// disconnect. Func identity follows the code pointer, so two closures built
// from the same literal share a key; removal always takes the first
// occurrence in the registration order.
func Key(handler any) uintptr {
	v := reflect.ValueOf(Unwrap(handler))
	if !v.IsValid() || v.Kind() != reflect.Func {
		return 0
	}
	return v.Pointer()
}

// FuncName reports a diagnostic name for a handler.
func FuncName(handler any) string {
	v := reflect.ValueOf(Unwrap(handler))
	if !v.IsValid() || v.Kind() != reflect.Func {
		return fmt.Sprintf("%T", handler)
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return v.Type().String()
}

// Call invokes a handler with args. It fails when an argument cannot be
// passed to the underlying func as-is, and otherwise surfaces the handler's
// own error when its last result is a non-nil error.
func Call(handler any, args []any) error {
	fn := reflect.ValueOf(Unwrap(handler))
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return &NotCallableError{Value: handler}
	}
	t := fn.Type()
	numIn := t.NumIn()
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			return fmt.Errorf("expected at least %d arguments, got %d", numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return fmt.Errorf("expected %d arguments, got %d", numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var target reflect.Type
		if t.IsVariadic() && i >= numIn-1 {
			target = t.In(numIn - 1).Elem()
		} else {
			target = t.In(i)
		}
		rv := reflect.ValueOf(arg)
		switch {
		case !rv.IsValid():
			// reflect.ValueOf(nil) is invalid; a typed zero stands in.
			if !typesystem.Nilable(target) {
				return fmt.Errorf("argument %d: nil is not assignable to %s", i, target)
			}
			in[i] = reflect.Zero(target)
		case !rv.Type().AssignableTo(target):
			return fmt.Errorf("argument %d: %s is not assignable to %s", i, rv.Type(), target)
		default:
			in[i] = rv
		}
	}

	out := fn.Call(in)
	if n := len(out); n > 0 {
		if last := out[n-1]; last.Type() == errorType && !last.IsNil() {
			return last.Interface().(error)
		}
	}
	return nil
}
