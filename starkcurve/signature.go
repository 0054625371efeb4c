package starkcurve

// This file implements Signer/Verifier per §4.6/§4.7/§9: ECDSA signing
// and verification of an EcdsaDigest, with the digest-length adjustment
// (fixMsgHashLen) and the post-hoc range checks on r, s, and w = s^-1
// mod n.
//
// Per §1/§9, this package never generates or stores keys and never
// supplies its own randomness: Signer/Verifier are opaque capability
// contracts (one method each) that the caller's key material satisfies,
// in the idiom of ModChain-secp256k1's minimal Sign/ECDH entry points
// that delegate the actual curve math to the library and bind to no
// specific keypair struct.

import (
	"fmt"
	"math/big"

	"starkcrypto/errs"
	"starkcrypto/internal/bigint"
)

// Signer produces an ECDSA signature (r, s) over an already
// length-adjusted digest. Implementations supply their own randomness;
// this package never generates a nonce.
type Signer interface {
	Sign(digest bigint.FieldBigInt) (r, s bigint.FieldBigInt, err error)
}

// Verifier checks an ECDSA signature (r, s) against an already
// length-adjusted digest.
type Verifier interface {
	Verify(digest bigint.FieldBigInt, r, s bigint.FieldBigInt) bool
}

// Signature is the (r, s) pair returned by Sign.
type Signature struct {
	R bigint.FieldBigInt
	S bigint.FieldBigInt
}

// fixMsgHashLen implements §4.6's digest-length fix-up. m is the
// minimal-length (no leading zeros) lower-case hex representation of
// the digest. If len(m) <= 62 it is returned unchanged; if len(m) == 63
// a single trailing '0' is appended (a 4-bit left shift performed at
// the byte-aligned hex level) to cancel the underlying ECDSA library's
// automatic right-shift by 8*byteLen - bitLen(n) = 4 bits when the
// digest already occupies the full 252 bits. Any other length is
// ErrInvalidDigestLength.
func fixMsgHashLen(m string) (string, error) {
	switch {
	case len(m) <= 62:
		return m, nil
	case len(m) == 63:
		return m + "0", nil
	default:
		return "", fmt.Errorf("%w: length %d", errs.ErrInvalidDigestLength, len(m))
	}
}

// parseDigest validates and parses a hex digest (no 0x prefix, matching
// the plain-hex convention every message hasher's output uses) per
// §4.6: must lie in [0, 2**251).
func parseDigest(msgHash string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(msgHash, 16)
	if !ok {
		return nil, fmt.Errorf("starkcurve: %q is not valid hex", msgHash)
	}
	if err := assertEcdsaDigest(v, "msgHash"); err != nil {
		return nil, err
	}
	return v, nil
}

// Sign implements §6's sign(key, msgHash) -> {r, s}. It length-adjusts
// msgHash, delegates signing to signer, computes w = s^-1 mod n, and
// enforces r in [1, 2**251), s in [1, n), w in [1, 2**251) before
// returning.
func Sign(signer Signer, msgHash string) (*Signature, error) {
	digest, err := parseDigest(msgHash)
	if err != nil {
		return nil, err
	}
	adjustedHex, err := fixMsgHashLen(digest.Text(16))
	if err != nil {
		return nil, err
	}
	adjusted, err := bigint.NewFromHex("0x" + adjustedHex)
	if err != nil {
		return nil, err
	}

	r, s, err := signer.Sign(adjusted)
	if err != nil {
		return nil, err
	}
	if err := checkSignatureRange(r, s); err != nil {
		return nil, err
	}
	return &Signature{R: r, S: s}, nil
}

// Verify implements §6's verify(key, msgHash, sig) -> bool. Range
// checks on r, s, w are performed first (as ErrSignatureOutOfRange),
// then the length-adjusted digest and signature are delegated to
// verifier.
func Verify(verifier Verifier, msgHash string, sig *Signature) (bool, error) {
	digest, err := parseDigest(msgHash)
	if err != nil {
		return false, err
	}
	if err := checkSignatureRange(sig.R, sig.S); err != nil {
		return false, err
	}
	adjustedHex, err := fixMsgHashLen(digest.Text(16))
	if err != nil {
		return false, err
	}
	adjusted, err := bigint.NewFromHex("0x" + adjustedHex)
	if err != nil {
		return false, err
	}
	return verifier.Verify(adjusted, sig.R, sig.S), nil
}

// checkSignatureRange enforces r in [1, 2**251), s in [1, n), and
// w = s^-1 mod n in [1, 2**251), returning ErrSignatureOutOfRange
// wrapped with the specific violation otherwise.
func checkSignatureRange(r, s bigint.FieldBigInt) error {
	if err := assertNonzeroEcdsaVal(r.BigInt(), "r"); err != nil {
		return fmt.Errorf("%w: r: %s", errs.ErrSignatureOutOfRange, err)
	}
	if err := assertScalarBelowN(s.BigInt(), "s"); err != nil {
		return fmt.Errorf("%w: s: %s", errs.ErrSignatureOutOfRange, err)
	}
	w, ok := s.ModInverse(orderFE)
	if !ok {
		return fmt.Errorf("%w: s has no inverse mod n", errs.ErrSignatureOutOfRange)
	}
	if err := assertNonzeroEcdsaVal(w.BigInt(), "w"); err != nil {
		return fmt.Errorf("%w: w: %s", errs.ErrSignatureOutOfRange, err)
	}
	return nil
}
