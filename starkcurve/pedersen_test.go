package starkcurve

import (
	"testing"

	"starkcrypto/internal/bigint"
	"starkcrypto/internal/testutils"
)

func TestPedersenDeterministic(t *testing.T) {
	a := "0x3d937c035c878245caf64531a5756109c53068da139362728feb561405371cb"
	b := "0x208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a"

	h1, err := PedersenHex(a, b)
	testutils.FatalUnless(t, err == nil, "pedersen failed: %v", err)
	h2, err := PedersenHex(a, b)
	testutils.FatalUnless(t, err == nil, "pedersen failed: %v", err)
	testutils.FatalUnless(t, h1 == h2, "pedersen is not deterministic: %s != %s", h1, h2)
}

func TestPedersenSingleInput(t *testing.T) {
	h, err := PedersenHex("0x1")
	testutils.FatalUnless(t, err == nil, "single-input pedersen failed: %v", err)
	testutils.FatalUnless(t, h != "", "single-input pedersen returned an empty digest")
}

func TestPedersenTwoVsOneDiffer(t *testing.T) {
	h1, err := PedersenHex("0x1")
	testutils.FatalUnless(t, err == nil, "pedersen failed: %v", err)
	h2, err := PedersenHex("0x1", "0x2")
	testutils.FatalUnless(t, err == nil, "pedersen failed: %v", err)
	testutils.FatalUnless(t, h1 != h2, "one-input and two-input pedersen produced the same digest")
}

func TestPedersenRejectsOutOfRangeInput(t *testing.T) {
	tooLarge := "0x" + FieldPrime.Text(16) // exactly p, not < p
	_, err := PedersenHex(tooLarge)
	testutils.FatalUnless(t, err != nil, "expected pedersen to reject an input equal to p")
}

func TestPedersenRejectsTooManyInputs(t *testing.T) {
	_, err := PedersenHex("0x1", "0x2", "0x3")
	testutils.FatalUnless(t, err != nil, "expected pedersen to reject 3 inputs")
}

func TestPedersenAcceptsPlainDecimal(t *testing.T) {
	hHex, err := PedersenHex("0x2a")
	testutils.FatalUnless(t, err == nil, "hex form failed: %v", err)
	hDec, err := PedersenHex("42")
	testutils.FatalUnless(t, err == nil, "decimal form failed: %v", err)
	testutils.FatalUnless(t, hHex == hDec, "0x2a and 42 should hash identically: %s vs %s", hHex, hDec)
}

func TestPedersenAltImplementationMatches(t *testing.T) {
	defer UseAltPedersen(false)

	a := "0x3d937c035c878245caf64531a5756109c53068da139362728feb561405371cb"
	b := "0x208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a"

	UseAltPedersen(false)
	want, err := PedersenHex(a, b)
	testutils.FatalUnless(t, err == nil, "default pedersen failed: %v", err)

	UseAltPedersen(true)
	got, err := PedersenHex(a, b)
	testutils.FatalUnless(t, err == nil, "alt pedersen failed: %v", err)

	testutils.FatalUnless(t, want == got, "alt Pedersen implementation diverged from the default: %s != %s", got, want)
}

func TestPedersenOutputBelowFieldPrime(t *testing.T) {
	h, err := PedersenHex("0x3d937c035c878245caf64531a5756109c53068da139362728feb561405371cb", "0x208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a")
	testutils.FatalUnless(t, err == nil, "pedersen failed: %v", err)
	v, err := bigint.NewFromHex("0x" + h)
	testutils.FatalUnless(t, err == nil, "failed to re-parse digest: %v", err)
	testutils.FatalUnless(t, v.Cmp(fieldPrimeFE) < 0, "pedersen output is not < p")
}
