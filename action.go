package ebrake

import (
	"errors"
	"os"
)

// Action is what happens when the brake trips. The brake invokes exactly
// one action per trigger evaluation, after logging the trigger event.
// Abort-style actions never return; a returning action is treated as a
// reported fatal condition and control continues in the caller.
type Action func()

// ErrTripped is the value carried by the Panic action. Supervisors that
// recover from a tripped brake can identify it with IsTripped.
var ErrTripped = errors.New("failure tolerance exceeded")

// IsTripped reports whether err came from a tripped brake.
func IsTripped(err error) bool {
	return errors.Is(err, ErrTripped)
}

// Exit returns an Action that halts the process immediately with the
// given exit code. No deferred functions run and no further code in the
// process executes.
func Exit(code int) Action {
	return func() {
		os.Exit(code)
	}
}

// Panic returns an Action that panics with ErrTripped, unwinding through
// the normal fatal-error path so an enclosing supervisor may recover.
func Panic() Action {
	return func() {
		panic(ErrTripped)
	}
}

// Nop is an Action that does nothing beyond the logged trigger event.
// Useful for log-only monitoring and in tests.
func Nop() {}
