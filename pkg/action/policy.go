package action

import (
	"fmt"
	"strings"
)

// Enforcement selects what happens when a compatibility check fails. The
// level is chosen when an Action is created and fixed for its lifetime.
type Enforcement int

const (
	// Off skips validation entirely; the compatibility engine is never
	// consulted.
	Off Enforcement = iota
	// Warn logs the validation error and proceeds as if the check had
	// passed.
	Warn
	// Fail surfaces the validation error to the caller and aborts the
	// operation with no partial effect.
	Fail
)

// String returns the configuration spelling of the level.
func (e Enforcement) String() string {
	switch e {
	case Off:
		return "NONE"
	case Warn:
		return "WARNING"
	case Fail:
		return "ERROR"
	}
	return fmt.Sprintf("Enforcement(%d)", int(e))
}

// ParseEnforcement reads a configuration spelling, case-insensitively.
// NONE/OFF, WARNING/WARN and ERROR/FAIL are accepted; the empty string
// selects the default Fail level.
func ParseEnforcement(s string) (Enforcement, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF":
		return Off, nil
	case "WARNING", "WARN":
		return Warn, nil
	case "ERROR", "FAIL", "":
		return Fail, nil
	}
	return Fail, fmt.Errorf("unknown enforcement level %q", s)
}
