package action

import (
	"fmt"

	"github.com/funvibe/funact/internal/introspect"
)

// NotCallableError reports a connect target that is not invocable. It is
// never downgraded by the enforcement level.
type NotCallableError = introspect.NotCallableError

// MissingTypeError reports a handler parameter with no declared type.
type MissingTypeError struct {
	Param string
}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("parameter %q of action handler has no declared type", e.Param)
}

// ArityError reports a parameter or argument count mismatch. What is
// "handler" for the connect form and "call" for the invoke form.
type ArityError struct {
	What     string
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s argument count mismatch: expected %d, got %d", e.What, e.Expected, e.Actual)
}

// TypeMismatchError reports the first incompatible position found; scanning
// stops there, mismatches after it are not collected. What is "handler" for
// the connect form and "call" for the invoke form.
type TypeMismatchError struct {
	What     string
	Position int
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s argument type mismatch at position %d: expected '%s', got '%s'",
		e.What, e.Position, e.Expected, e.Actual)
}

// NotConnectedError reports a disconnect target that is not connected. Like
// NotCallableError it always surfaces, independent of the enforcement level.
type NotConnectedError struct{}

func (e *NotConnectedError) Error() string {
	return "can't disconnect handler: handler is not connected"
}

// DispatchError reports a handler that failed during invoke, either because
// an argument could not be passed to it or because the handler itself
// returned an error. Dispatch stops at the failing handler; handlers called
// before it stay called.
type DispatchError struct {
	Handler string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch to %s: %v", e.Handler, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }
