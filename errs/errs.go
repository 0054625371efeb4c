// Package errs collects the sentinel errors raised by the starkcurve
// cryptographic core.
//
// Callers should never compare returned errors for equality; every
// failure of one of the kinds below wraps its sentinel, so use
// errors.Is (or errors.As for *RangeError) to test for a specific
// failure kind. Other failures, such as a string that does not parse
// as hex or decimal or a wrong number of Pedersen inputs, are returned
// as plain errors that wrap none of these sentinels.
package errs

import (
	"errors"
	"fmt"
)

// ErrorPrefix is prepended to every sentinel error message in this package.
const ErrorPrefix = "starkcurve: "

var (
	// ErrMissingHexPrefix is returned when a caller-supplied field-element
	// string is expected to carry a "0x" prefix and does not.
	ErrMissingHexPrefix = errors.New(ErrorPrefix + "hex string is missing required 0x prefix")

	// ErrInvalidRange is returned when a field's value falls outside its
	// declared bit-width or modular range.
	ErrInvalidRange = errors.New(ErrorPrefix + "value outside allowed range")

	// ErrInvalidInput is returned by the Pedersen hash when an input is
	// not an element of [0, p).
	ErrInvalidInput = errors.New(ErrorPrefix + "pedersen input not in [0, p)")

	// ErrPointCollision is returned when the running accumulator and the
	// next addend in the Pedersen hash loop share an x-coordinate. This
	// indicates a corrupted constant-point table, never a caller error.
	ErrPointCollision = errors.New(ErrorPrefix + "constant point table collision during pedersen hash")

	// ErrDigestOutOfRange is returned when a message hasher's output is
	// not strictly below 2**251. This is defensive: it should never
	// trigger for valid inputs and constants.
	ErrDigestOutOfRange = errors.New(ErrorPrefix + "digest out of range [0, 2**251)")

	// ErrSignatureOutOfRange is returned when r, s, or s^-1 mod n fall
	// outside their required bounds during sign or verify.
	ErrSignatureOutOfRange = errors.New(ErrorPrefix + "signature component out of range")

	// ErrInvalidDigestLength is returned when a hex digest's length is not
	// in [0, 62] or exactly 63 at sign/verify time.
	ErrInvalidDigestLength = errors.New(ErrorPrefix + "invalid digest hex length")
)

// RangeError reports the field whose value fell outside its permitted
// range together with the guilty value, wrapping ErrInvalidRange so
// errors.Is(err, ErrInvalidRange) keeps working up the chain.
type RangeError struct {
	Field string
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%sMessage not signable, invalid %s length.", ErrorPrefix, e.Field)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// NewRangeError builds the error returned by every range guard.
func NewRangeError(field string, value fmt.Stringer) error {
	v := ""
	if value != nil {
		v = value.String()
	}
	return &RangeError{Field: field, Value: v}
}
