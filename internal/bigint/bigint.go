// Package bigint provides FieldBigInt, an arbitrary-precision unsigned
// integer wrapper used throughout starkcurve for field- and
// group-order arithmetic.
//
// This mirrors the "forward everything to *big.Int" reference
// representation the teacher corpus itself uses as a differential-testing
// baseline for field elements (see bsFieldElement_BigInt in the
// Bandersnatch fieldElements package): it is not the fastest possible
// representation, but its semantics are easy to audit, which matches
// this module's non-constant-time reference status (the spec explicitly
// permits this; see DESIGN.md).
package bigint

import (
	"fmt"
	"math/big"
)

// FieldBigInt is an arbitrary-precision unsigned integer. The zero value
// is not meaningful; use New, NewFromHex, or NewFromDecimal.
type FieldBigInt struct {
	v *big.Int
}

// New wraps an int64 as a FieldBigInt. n must be non-negative.
func New(n int64) FieldBigInt {
	if n < 0 {
		panic("bigint: New called with negative value")
	}
	return FieldBigInt{v: big.NewInt(n)}
}

// NewFromBigInt wraps a copy of x; later changes to x do not affect the
// returned value.
func NewFromBigInt(x *big.Int) FieldBigInt {
	return FieldBigInt{v: new(big.Int).Set(x)}
}

// NewFromHex parses a 0x- or 0X-prefixed hex string into a FieldBigInt.
// It checks and strips the prefix itself and returns a plain error if
// the prefix is missing or the digits are not valid hex; the error does
// not wrap errs.ErrMissingHexPrefix, since this package has no
// dependency on package errs by design (package starkcurve attaches
// that sentinel at its own call boundary).
func NewFromHex(s string) (FieldBigInt, error) {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return FieldBigInt{}, fmt.Errorf("bigint: hex string %q is missing 0x prefix", s)
	}
	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return FieldBigInt{}, fmt.Errorf("bigint: %q is not valid hex", s)
	}
	return FieldBigInt{v: v}, nil
}

// NewFromDecimal parses a base-10 string (no sign) into a FieldBigInt.
func NewFromDecimal(s string) (FieldBigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return FieldBigInt{}, fmt.Errorf("bigint: %q is not a valid decimal integer", s)
	}
	if v.Sign() < 0 {
		return FieldBigInt{}, fmt.Errorf("bigint: %q is negative", s)
	}
	return FieldBigInt{v: v}, nil
}

// Zero returns the FieldBigInt representing 0.
func Zero() FieldBigInt { return FieldBigInt{v: new(big.Int)} }

// IsZero reports whether x is 0.
func (x FieldBigInt) IsZero() bool { return x.v == nil || x.v.Sign() == 0 }

// Sign returns -1, 0, or +1. FieldBigInt values are never negative in
// normal use, but Sign is exposed for completeness and validation.
func (x FieldBigInt) Sign() int { return x.v.Sign() }

// Cmp returns -1, 0, +1 as x<y, x==y, x>y.
func (x FieldBigInt) Cmp(y FieldBigInt) int { return x.v.Cmp(y.v) }

// Bit returns the value of the i'th bit of x (0 = least significant).
func (x FieldBigInt) Bit(i int) uint { return x.v.Bit(i) }

// BitLen returns the length of the absolute value of x in bits.
func (x FieldBigInt) BitLen() int { return x.v.BitLen() }

// And returns the bitwise AND of x and y.
func (x FieldBigInt) And(y FieldBigInt) FieldBigInt {
	return FieldBigInt{v: new(big.Int).And(x.v, y.v)}
}

// Rsh returns x right-shifted by n bits.
func (x FieldBigInt) Rsh(n uint) FieldBigInt {
	return FieldBigInt{v: new(big.Int).Rsh(x.v, n)}
}

// Lsh returns x left-shifted by n bits.
func (x FieldBigInt) Lsh(n uint) FieldBigInt {
	return FieldBigInt{v: new(big.Int).Lsh(x.v, n)}
}

// Add returns x+y.
func (x FieldBigInt) Add(y FieldBigInt) FieldBigInt {
	return FieldBigInt{v: new(big.Int).Add(x.v, y.v)}
}

// Sub returns x-y. The result may be negative if y>x; callers that
// require a field element should reduce the result modulo the
// appropriate modulus afterwards.
func (x FieldBigInt) Sub(y FieldBigInt) FieldBigInt {
	return FieldBigInt{v: new(big.Int).Sub(x.v, y.v)}
}

// Mul returns x*y.
func (x FieldBigInt) Mul(y FieldBigInt) FieldBigInt {
	return FieldBigInt{v: new(big.Int).Mul(x.v, y.v)}
}

// Mod returns x reduced modulo m, always in [0, m).
func (x FieldBigInt) Mod(m FieldBigInt) FieldBigInt {
	return FieldBigInt{v: new(big.Int).Mod(x.v, m.v)}
}

// ModInverse returns the multiplicative inverse of x modulo m, via the
// extended Euclidean algorithm (math/big's ModInverse). The second
// return value is false if x has no inverse modulo m (i.e. gcd(x,m)!=1).
func (x FieldBigInt) ModInverse(m FieldBigInt) (FieldBigInt, bool) {
	r := new(big.Int).ModInverse(x.v, m.v)
	if r == nil {
		return FieldBigInt{}, false
	}
	return FieldBigInt{v: r}, true
}

// Hex returns the lower-case hexadecimal representation of x, without a
// "0x" prefix and without leading zeros (the empty value 0 is rendered
// as "0").
func (x FieldBigInt) Hex() string {
	return x.v.Text(16)
}

// Decimal returns the base-10 representation of x.
func (x FieldBigInt) Decimal() string {
	return x.v.Text(10)
}

// String implements fmt.Stringer, returning the 0x-prefixed hex form;
// used for error messages so guard failures can report the offending
// value.
func (x FieldBigInt) String() string {
	return "0x" + x.Hex()
}

// BigInt returns a defensive copy of the underlying *big.Int, for
// interop with standard-library crypto APIs (crypto/ecdsa and friends).
func (x FieldBigInt) BigInt() *big.Int {
	return new(big.Int).Set(x.v)
}
