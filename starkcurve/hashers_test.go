package starkcurve

import (
	"math/big"
	"testing"

	"starkcrypto/internal/testutils"
)

const (
	testToken  = "0x3003a65651d3b9fb2eff934a4416db4282a21c6d" // an arbitrary field element
	testToken2 = "0x70c8f435ace23f81301169b9e97918cb12f1f25" // distinct field element
	testPubKey = "0x7465c9c05d9bd5f2ff9e2fdf3d395b4d6e7b61c8c5"
	testCond   = "0x18"
)

func TestGetLimitOrderMsgHashStable(t *testing.T) {
	h1, err := GetLimitOrderMsgHash(1, 2, "1000", "2000", testToken, testToken2, 1, 100)
	testutils.FatalUnless(t, err == nil, "GetLimitOrderMsgHash failed: %v", err)
	h2, err := GetLimitOrderMsgHash(1, 2, "1000", "2000", testToken, testToken2, 1, 100)
	testutils.FatalUnless(t, err == nil, "GetLimitOrderMsgHash failed: %v", err)
	testutils.FatalUnless(t, h1 == h2, "GetLimitOrderMsgHash is not deterministic: %s != %s", h1, h2)
}

func TestGetLimitOrderMsgHashWithFeeDiffersFromWithoutFee(t *testing.T) {
	noFee, err := GetLimitOrderMsgHash(1, 2, "1000", "2000", testToken, testToken2, 1, 100)
	testutils.FatalUnless(t, err == nil, "GetLimitOrderMsgHash failed: %v", err)
	withFee, err := GetLimitOrderMsgHashWithFee(1, 2, "1000", "2000", testToken, testToken2, 1, 100, testToken2, 3, "5")
	testutils.FatalUnless(t, err == nil, "GetLimitOrderMsgHashWithFee failed: %v", err)
	testutils.FatalUnless(t, noFee != withFee, "fee and no-fee limit order hashes must differ")
}

func TestGetLimitOrderMsgHashRejectsOutOfRangeVault(t *testing.T) {
	_, err := GetLimitOrderMsgHash(1<<31, 2, "1000", "2000", testToken, testToken2, 1, 100)
	testutils.FatalUnless(t, err != nil, "expected vaultSell=2**31 to be rejected")
}

func TestGetTransferMsgHashConditionDispatchDistinctness(t *testing.T) {
	noCond, err := GetTransferMsgHash("1000", 1, 10, testToken, 20, testPubKey, 100, nil)
	testutils.FatalUnless(t, err == nil, "GetTransferMsgHash (no condition) failed: %v", err)

	cond := testCond
	withCond, err := GetTransferMsgHash("1000", 1, 10, testToken, 20, testPubKey, 100, &cond)
	testutils.FatalUnless(t, err == nil, "GetTransferMsgHash (with condition) failed: %v", err)

	testutils.FatalUnless(t, noCond != withCond, "condition and no-condition transfer hashes must differ")
}

func TestGetTransferMsgHashWithFeeConditionDispatchDistinctness(t *testing.T) {
	noCond, err := GetTransferMsgHashWithFee("1000", 1, 10, testToken, 20, testPubKey, 100, nil, testToken2, 30, "5")
	testutils.FatalUnless(t, err == nil, "GetTransferMsgHashWithFee (no condition) failed: %v", err)

	cond := testCond
	withCond, err := GetTransferMsgHashWithFee("1000", 1, 10, testToken, 20, testPubKey, 100, &cond, testToken2, 30, "5")
	testutils.FatalUnless(t, err == nil, "GetTransferMsgHashWithFee (with condition) failed: %v", err)

	testutils.FatalUnless(t, noCond != withCond, "condition and no-condition transfer-with-fee hashes must differ")

	plainTransfer, err := GetTransferMsgHash("1000", 1, 10, testToken, 20, testPubKey, 100, nil)
	testutils.FatalUnless(t, err == nil, "GetTransferMsgHash failed: %v", err)
	testutils.FatalUnless(t, plainTransfer != noCond, "transfer and transfer-with-fee hashes must differ")
}

func TestGetTransferMsgHashRejectsMissingHexPrefix(t *testing.T) {
	_, err := GetTransferMsgHash("1000", 1, 10, "deadbeef", 20, testPubKey, 100, nil)
	testutils.FatalUnless(t, err != nil, "expected a token without a 0x prefix to be rejected")
}

func TestGetTransferMsgHashRejectsOutOfRangeExpiration(t *testing.T) {
	_, err := GetTransferMsgHash("1000", 1, 10, testToken, 20, testPubKey, 1<<22, nil)
	testutils.FatalUnless(t, err != nil, "expected expirationTimestamp=2**22 to be rejected")
}

func TestGetTransferMsgHashRejectsOutOfRangeAmount(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 63).Text(10)
	_, err := GetTransferMsgHash(tooBig, 1, 10, testToken, 20, testPubKey, 100, nil)
	testutils.FatalUnless(t, err != nil, "expected amount=2**63 to be rejected")
}
