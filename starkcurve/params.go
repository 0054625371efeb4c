// Package starkcurve implements the client-side cryptographic core for
// a layer-2 exchange protocol operating over the Stark curve: a
// Pedersen-style hash built from scalar multiplications, canonical
// packing-and-hashing of limit-order and transfer instructions, and
// ECDSA signing/verification of the resulting digests.
//
// The package is purely functional: it performs no I/O, holds no
// mutable state beyond the once-initialized constant-point table and
// the UseAltPedersen switch, and
// is not a key store (see DESIGN.md for the full non-goal list).
package starkcurve

import (
	"fmt"
	"math/big"

	"starkcrypto/internal/bigint"
)

// This file collects the fixed curve constants, following the layout of
// the teacher's bandersnatch_constants.go: untyped/string constants
// first, *big.Int-typed package vars derived from them second.

const (
	// fieldPrimeHex is p = 2**251 + 17*2**192 + 1, the prime modulus of
	// the Stark curve's field of definition.
	fieldPrimeHex = "0x800000000000011000000000000000000000000000000000000000000000001"

	// orderHex is n, the order of the Stark curve's prime-order subgroup.
	orderHex = "0x0800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f"

	// alpha is the linear coefficient of the short-Weierstrass curve
	// equation y**2 = x**3 + alpha*x + beta (mod p).
	alpha = 1

	// betaHex is the curve's constant term, b, in the equation above.
	betaHex = "0x6f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89"

	// maxEcdsaValHex is 2**251, the strict upper bound on an EcdsaDigest
	// (Pedersen-hash inputs are bounded by p instead).
	maxEcdsaValHex = "0x800000000000000000000000000000000000000000000000000000000000000"
)

var (
	// FieldPrime is p as a *big.Int.
	FieldPrime = mustParseHex(fieldPrimeHex)

	// Order is n as a *big.Int.
	Order = mustParseHex(orderHex)

	// Alpha is the curve's linear coefficient, as a *big.Int.
	Alpha = big.NewInt(alpha)

	// Beta is the curve's constant term, as a *big.Int.
	Beta = mustParseHex(betaHex)

	// MaxEcdsaVal is 2**251, as a *big.Int.
	MaxEcdsaVal = mustParseHex(maxEcdsaValHex)
)

func mustParseHex(s string) *big.Int {
	if len(s) < 2 || s[0:2] != "0x" {
		panic("starkcurve: internal constant is missing 0x prefix: " + s)
	}
	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		panic("starkcurve: internal constant is not valid hex: " + s)
	}
	return v
}

// fieldPrimeFE / orderFE are the bigint.FieldBigInt forms of FieldPrime
// and Order, used internally wherever this package's own FieldBigInt
// arithmetic (rather than raw *big.Int) is more convenient.
var (
	fieldPrimeFE = bigint.NewFromBigInt(FieldPrime)
	orderFE      = bigint.NewFromBigInt(Order)
)

// numConstantPoints is the fixed size of the constant-point table: index
// 0 is the shift point, index 1 is the generator, and indices 2..505 are
// the 2*252 per-bit Pedersen addends (pointsPerInput per input, up to
// maxPedersenInputs inputs).
const (
	pointsPerInput    = 252
	maxPedersenInputs = 2
	numConstantPoints = 2 + maxPedersenInputs*pointsPerInput // 506
)

func fmtPoint(p CurvePoint) string {
	return fmt.Sprintf("(%s, %s)", p.X.Hex(), p.Y.Hex())
}
