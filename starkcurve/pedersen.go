package starkcurve

// This file implements the Stark-variant Pedersen hash: a bit-indexed
// conditional sum of precomputed curve points. Grounded directly on
// other_examples/NethermindEth-juno__pedersen.go's Digest function,
// adapted to this package's CurvePoint/FieldBigInt types and to the
// errs sentinel-error surface instead of a panic.

import (
	"fmt"
	"sync/atomic"

	"starkcrypto/errs"
	"starkcrypto/internal/bigint"
)

// altPedersen gates which of the two, semantically identical, hash-loop
// implementations Pedersen dispatches to. It is only ever set through
// UseAltPedersen; the library itself never inspects the environment
// (see cmd/starkhash, which is the sole reader of
// STARKCURVE_USE_ALT_PEDERSEN). Grounded on the teacher's practice of
// keeping more than one representation of the same computation around
// for differential testing (bsFieldElement_64 vs. bsFieldElement_8),
// except here the two are selectable at runtime rather than by type.
var altPedersen atomic.Bool

// UseAltPedersen selects the alternate Pedersen hash-loop
// implementation (§6, "Environment": "a single flag selects an
// alternative implementation of the Pedersen primitive; semantics MUST
// be identical"). It is safe to call concurrently with Pedersen.
func UseAltPedersen(enable bool) {
	altPedersen.Store(enable)
}

// Pedersen hashes 1 or 2 field elements and returns the x-coordinate of
// the resulting accumulator as a FieldBigInt. Each input must be in
// [0, p); ErrInvalidInput is returned otherwise. A corrupted
// constant-point table (one where the running accumulator's x collides
// with the next addend's x) is reported as ErrPointCollision.
func Pedersen(inputs ...bigint.FieldBigInt) (bigint.FieldBigInt, error) {
	if len(inputs) < 1 || len(inputs) > maxPedersenInputs {
		return bigint.FieldBigInt{}, fmt.Errorf("starkcurve: pedersen accepts 1 or 2 inputs, got %d", len(inputs))
	}
	if err := ensureInitialized(); err != nil {
		return bigint.FieldBigInt{}, err
	}

	for _, x := range inputs {
		if x.Sign() < 0 || x.Cmp(fieldPrimeFE) >= 0 {
			return bigint.FieldBigInt{}, fmt.Errorf("%w: %s", errs.ErrInvalidInput, x.String())
		}
	}

	if altPedersen.Load() {
		return pedersenLoopDescending(inputs)
	}
	return pedersenLoopAscending(inputs)
}

// pedersenLoopAscending is the default hash loop: it walks each input's
// 252 bits from index 0 upward, conditionally adding the matching
// constant point onto a running accumulator seeded with ShiftPoint.
func pedersenLoopAscending(inputs []bigint.FieldBigInt) (bigint.FieldBigInt, error) {
	acc := ShiftPoint
	for i, x := range inputs {
		for j := 0; j < pointsPerInput; j++ {
			if x.Bit(j) == 1 {
				addend := constantPointAt(i, j)
				if acc.SameX(addend) {
					return bigint.FieldBigInt{}, fmt.Errorf("%w: input %d, bit %d", errs.ErrPointCollision, i, j)
				}
				acc = Add(acc, addend)
			}
		}
	}
	return acc.X, nil
}

// pedersenLoopDescending computes the identical sum as
// pedersenLoopAscending, but walks each input's bits from the top index
// downward instead of the bottom. Point addition is commutative and
// associative, so the accumulated result is the same; only the order
// in which a corrupted table would be caught as ErrPointCollision can
// differ.
func pedersenLoopDescending(inputs []bigint.FieldBigInt) (bigint.FieldBigInt, error) {
	acc := ShiftPoint
	for i, x := range inputs {
		for j := pointsPerInput - 1; j >= 0; j-- {
			if x.Bit(j) == 1 {
				addend := constantPointAt(i, j)
				if acc.SameX(addend) {
					return bigint.FieldBigInt{}, fmt.Errorf("%w: input %d, bit %d", errs.ErrPointCollision, i, j)
				}
				acc = Add(acc, addend)
			}
		}
	}
	return acc.X, nil
}

// PedersenHex is the public, hex-in-hex-out form of Pedersen described
// in §6: pedersen(inputs: [hex|int, 1..2]) -> hex. Each input may be a
// 0x-prefixed hex string or a base-10 decimal string.
func PedersenHex(inputs ...string) (string, error) {
	parsed := make([]bigint.FieldBigInt, len(inputs))
	for i, s := range inputs {
		fe, err := parseFieldElementString(s)
		if err != nil {
			return "", err
		}
		parsed[i] = fe
	}
	result, err := Pedersen(parsed...)
	if err != nil {
		return "", err
	}
	return result.Hex(), nil
}

// parseFieldElementString accepts either a 0x-prefixed hex string or a
// plain base-10 decimal string, matching Pedersen's permissive
// low-level parsing convention described in SPEC_FULL.md §6.
func parseFieldElementString(s string) (bigint.FieldBigInt, error) {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		return bigint.NewFromHex(s)
	}
	fe, err := bigint.NewFromDecimal(s)
	if err != nil {
		return bigint.FieldBigInt{}, fmt.Errorf("starkcurve: %q is neither 0x-hex nor decimal: %w", s, err)
	}
	return fe, nil
}
