// Package testutils holds this module's own test helpers, trimmed down
// from the teacher's much larger internal/testutils package to the one
// helper this repository's tests actually use.
package testutils

import (
	"runtime/debug"
	"testing"
)

// FatalUnless fails t with formatstring/args, printing a stack trace
// first, unless condition holds. Used throughout starkcurve's tests in
// place of raw t.Fatalf so a failing invariant always comes with a
// stack trace pointing at the caller.
func FatalUnless(t *testing.T, condition bool, formatstring string, args ...any) {
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
