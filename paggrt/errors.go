package paggrt

import "fmt"

// UsageError marks an input-validation failure: bad CLI arguments, an
// impossible model parameter. Callers surface it to the user and exit
// with code -1 per spec.md §7 rather than treating it as a crash.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func Usagef(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Assertf panics on an invariant violation (e.g. a query token resolving
// to no preceding link). These are programmer errors, never user-facing,
// so they are fatal rather than returned.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		msg := fmt.Sprintf(format, args...)
		Criticalf("assertion failed: %s", msg)
		panic("pagg: " + msg)
	}
}
