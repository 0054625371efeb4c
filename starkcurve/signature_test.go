package starkcurve

// This file implements a throwaway local ECDSA keypair used only by
// this package's own round-trip tests, never exposed as part of the
// public API (§1 keeps key storage and nonce generation external to
// the core). Grounded on the corpus's own habit of testing signature
// code against a freshly generated local key rather than a mock (see
// ModChain-secp256k1/error_test.go and the Bandersnatch curve point
// test suite, both of which sample fresh values rather than stub out
// the math).

import (
	"crypto/rand"
	"math/big"
	"testing"

	"starkcrypto/internal/bigint"
	"starkcrypto/internal/testutils"
)

// localKey is a minimal textbook ECDSA keypair over the Stark curve,
// used only to exercise Sign/Verify in this package's tests.
type localKey struct {
	d *big.Int // private scalar
	Q CurvePoint
}

func newLocalKey(t *testing.T) *localKey {
	t.Helper()
	d, err := rand.Int(rand.Reader, new(big.Int).Sub(Order, big.NewInt(1)))
	testutils.FatalUnless(t, err == nil, "failed to sample private key: %v", err)
	d.Add(d, big.NewInt(1)) // land in [1, n)
	return &localKey{d: d, Q: ScalarMult(d, Generator)}
}

func (k *localKey) Sign(digest bigint.FieldBigInt) (r, s bigint.FieldBigInt, err error) {
	z := digest.BigInt()
	for {
		nonce, nerr := rand.Int(rand.Reader, new(big.Int).Sub(Order, big.NewInt(1)))
		if nerr != nil {
			return bigint.FieldBigInt{}, bigint.FieldBigInt{}, nerr
		}
		nonce.Add(nonce, big.NewInt(1))

		R := ScalarMult(nonce, Generator)
		rv := new(big.Int).Mod(R.X.BigInt(), Order)
		if rv.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(nonce, Order)
		sv := new(big.Int).Mul(rv, k.d)
		sv.Add(sv, z)
		sv.Mul(sv, kInv)
		sv.Mod(sv, Order)
		if sv.Sign() == 0 {
			continue
		}
		return bigint.NewFromBigInt(rv), bigint.NewFromBigInt(sv), nil
	}
}

func (k *localKey) Verify(digest bigint.FieldBigInt, r, s bigint.FieldBigInt) bool {
	z := digest.BigInt()
	rv := r.BigInt()
	sv := s.BigInt()

	if rv.Sign() <= 0 || rv.Cmp(Order) >= 0 {
		return false
	}
	if sv.Sign() <= 0 || sv.Cmp(Order) >= 0 {
		return false
	}

	w := new(big.Int).ModInverse(sv, Order)
	if w == nil {
		return false
	}
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, Order)
	u2 := new(big.Int).Mul(rv, w)
	u2.Mod(u2, Order)

	if u1.Sign() == 0 || u2.Sign() == 0 {
		return false
	}

	p1 := ScalarMult(u1, Generator)
	p2 := ScalarMult(u2, k.Q)
	sum := Add(p1, p2)

	got := new(big.Int).Mod(sum.X.BigInt(), Order)
	return got.Cmp(rv) == 0
}

func TestSignVerifyRoundTrip(t *testing.T) {
	testutils.FatalUnless(t, ensureInitialized() == nil, "failed to initialize constant points")
	key := newLocalKey(t)

	// Use a digest that is guaranteed to be < 2**251 regardless of the
	// constant-point table in use.
	z := new(big.Int).Sub(MaxEcdsaVal, big.NewInt(12345))
	msgHash := z.Text(16)

	sig, err := Sign(key, msgHash)
	testutils.FatalUnless(t, err == nil, "Sign failed: %v", err)

	ok, err := Verify(key, msgHash, sig)
	testutils.FatalUnless(t, err == nil, "Verify failed: %v", err)
	testutils.FatalUnless(t, ok, "Verify returned false for an honestly generated signature")

	// Flipping the digest must make verification fail.
	flipped := new(big.Int).Xor(z, big.NewInt(1))
	ok2, err := Verify(key, flipped.Text(16), sig)
	testutils.FatalUnless(t, err == nil, "Verify (flipped) failed: %v", err)
	testutils.FatalUnless(t, !ok2, "Verify returned true after flipping a bit of the digest")
}

func TestFixMsgHashLenRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		m    string
	}{
		{"short", "abc"},
		{"62 digits", mustRepeatHexDigit('a', 62)},
		{"63 digits", mustRepeatHexDigit('f', 63)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fixed, err := fixMsgHashLen(c.m)
			testutils.FatalUnless(t, err == nil, "fixMsgHashLen failed: %v", err)
			truncated := truncateToN(fixed, len(c.m))
			testutils.FatalUnless(t, truncated == c.m, "round trip failed: got %q, want %q", truncated, c.m)
		})
	}

	_, err := fixMsgHashLen(mustRepeatHexDigit('a', 64))
	testutils.FatalUnless(t, err != nil, "expected an error for a 64-digit digest")
}

// truncateToN undoes fixMsgHashLen for the purposes of the round-trip
// test: it right-shifts by 4 bits (drops the last hex digit) if and
// only if fixMsgHashLen would have appended one, i.e. if the original
// length was 63.
func truncateToN(fixed string, originalLen int) string {
	if originalLen == 63 {
		return fixed[:len(fixed)-1]
	}
	return fixed
}

func mustRepeatHexDigit(d byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = d
	}
	return string(b)
}
