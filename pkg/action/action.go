package action

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/funvibe/funact/internal/introspect"
	"github.com/funvibe/funact/internal/typesystem"
)

// Version is the library version.
const Version = "0.8.0"

// Action is an ordered registry of handlers sharing one declared argument
// contract. Connecting validates a handler's declared parameter types
// against the expected descriptors; invoking validates the runtime
// arguments, then calls every handler in registration order with those same
// arguments. Duplicate handlers are allowed and kept in order.
//
// An Action is not safe for concurrent use.
type Action struct {
	expected []typesystem.Descriptor
	policy   Enforcement
	handlers []handlerEntry
	logger   zerolog.Logger
}

type handlerEntry struct {
	handler any
	key     uintptr
	sig     *introspect.Signature
}

// New creates an Action over the given expected argument descriptors with
// the default Fail enforcement.
func New(expected ...Descriptor) *Action {
	return NewWithPolicy(Fail, expected...)
}

// NewWithPolicy creates an Action with an explicit enforcement level.
func NewWithPolicy(policy Enforcement, expected ...Descriptor) *Action {
	return &Action{
		expected: expected,
		policy:   policy,
		logger:   log.Logger,
	}
}

// SetLogger redirects Warn-level diagnostics for this Action. The default
// sink is the global zerolog logger.
func (a *Action) SetLogger(l zerolog.Logger) {
	a.logger = l
}

// Policy returns the enforcement level fixed at construction.
func (a *Action) Policy() Enforcement { return a.policy }

// Arity returns the number of expected argument positions.
func (a *Action) Arity() int { return len(a.expected) }

// Len returns the number of connected handlers.
func (a *Action) Len() int { return len(a.handlers) }

// Connect registers a handler after validating its declared signature. A
// non-callable handler is rejected regardless of the enforcement level.
// Signature findings follow the level: Fail rejects without registering,
// Warn logs and registers, Off registers without checking.
func (a *Action) Connect(handler any) error {
	sig, err := introspect.Describe(handler)
	if err != nil {
		return err
	}
	if err := a.enforce(func() error { return a.checkSignature(sig) }); err != nil {
		return err
	}
	a.handlers = append(a.handlers, handlerEntry{
		handler: handler,
		key:     introspect.Key(handler),
		sig:     sig,
	})
	return nil
}

// Disconnect removes the first connected occurrence of the handler,
// regardless of the enforcement level.
func (a *Action) Disconnect(handler any) error {
	key := introspect.Key(handler)
	for i, h := range a.handlers {
		if h.key == key {
			a.handlers = append(a.handlers[:i], a.handlers[i+1:]...)
			return nil
		}
	}
	return &NotConnectedError{}
}

// Invoke validates args against the expected descriptors per the
// enforcement level, then calls every handler in registration order with
// the original arguments. Under Fail a validation error aborts before any
// handler runs; under Warn it is logged and dispatch proceeds with the
// arguments as given. A failing handler stops the dispatch.
func (a *Action) Invoke(args ...any) error {
	if err := a.enforce(func() error { return a.checkArgs(args) }); err != nil {
		return err
	}
	for _, h := range a.handlers {
		if err := introspect.Call(h.handler, args); err != nil {
			return &DispatchError{Handler: introspect.FuncName(h.handler), Err: err}
		}
	}
	return nil
}

// enforce applies the enforcement level to one validation: Off skips it
// entirely, Warn logs a failure and reports success, Fail returns it.
func (a *Action) enforce(check func() error) error {
	if a.policy == Off {
		return nil
	}
	err := check()
	if err == nil {
		return nil
	}
	if a.policy == Warn {
		a.logger.Warn().Msg(err.Error())
		return nil
	}
	return err
}

func (a *Action) checkSignature(sig *introspect.Signature) error {
	if len(sig.Params) != len(a.expected) {
		return &ArityError{What: "handler", Expected: len(a.expected), Actual: len(sig.Params)}
	}
	for i, p := range sig.Params {
		if p == nil {
			return &MissingTypeError{Param: sig.ParamName(i)}
		}
	}
	for i, p := range sig.Params {
		if !typesystem.Compatible(p, a.expected[i]) {
			return &TypeMismatchError{
				What:     "handler",
				Position: i,
				Expected: typesystem.Name(a.expected[i]),
				Actual:   typesystem.Name(p),
			}
		}
	}
	return nil
}

func (a *Action) checkArgs(args []any) error {
	if len(args) != len(a.expected) {
		return &ArityError{What: "call", Expected: len(a.expected), Actual: len(args)}
	}
	for i, arg := range args {
		if !typesystem.ValueCompatible(arg, a.expected[i]) {
			return &TypeMismatchError{
				What:     "call",
				Position: i,
				Expected: typesystem.Name(a.expected[i]),
				Actual:   typesystem.Name(typesystem.FromValue(arg)),
			}
		}
	}
	return nil
}
