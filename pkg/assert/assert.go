package assert

import "runtime/debug"

// Assert panics with the current stack when condition is false. It is a no-op
// in builds tagged noassert.
func Assert(condition bool) {
	if Enabled && !condition {
		s := debug.Stack()

		panic("assertion failed:\n" + string(s))
	}
}

// Assertf is like [Assert] but prefixes the panic with msg.
func Assertf(condition bool, msg string) {
	if Enabled && !condition {
		s := debug.Stack()

		panic("assertion failed: " + msg + "\n" + string(s))
	}
}
