package starkcurve

// This file implements MessagePacker: bit-width-exact packing of typed
// instruction fields into the big integers hashed by MessageHashers
// (§4.4). Every packed word is built MSB-to-LSB by repeated
// shift-and-add, exactly as §4.4 describes the field order, and is
// returned as a FieldBigInt ready to feed into Pedersen.

import (
	"math/big"

	"starkcrypto/internal/bigint"
)

// field is one (value, bit width) pair packed MSB-first into a word.
type field struct {
	value *big.Int
	bits  uint
}

// packFields lays out fields MSB to LSB, left-shift-and-add.
func packFields(fields ...field) bigint.FieldBigInt {
	acc := new(big.Int)
	for _, f := range fields {
		acc.Lsh(acc, f.bits)
		acc.Add(acc, f.value)
	}
	return bigint.NewFromBigInt(acc)
}

func i64(v int64) *big.Int { return big.NewInt(v) }

// packOrderBase packs the 245-bit Order/Transfer base word:
// instructionType(4) . vault0(31) . vault1(31) . amount0(63) . amount1(63) . nonce(31) . expiration(22).
func packOrderBase(instructionType InstructionType, vault0, vault1, amount0, amount1, nonce, expiration int64) bigint.FieldBigInt {
	return packFields(
		field{i64(int64(instructionType)), 4},
		field{i64(vault0), 31},
		field{i64(vault1), 31},
		field{i64(amount0), 63},
		field{i64(amount1), 63},
		field{i64(nonce), 31},
		field{i64(expiration), 22},
	)
}

// packTransferWithFeeWord1 packs word 1 of the transfer-with-fee
// instruction: senderVaultId(64) . receiverVaultId(64) . feeVaultId(64) . nonce(32).
func packTransferWithFeeWord1(senderVaultID, receiverVaultID, feeVaultID, nonce int64) bigint.FieldBigInt {
	return packFields(
		field{i64(senderVaultID), 64},
		field{i64(receiverVaultID), 64},
		field{i64(feeVaultID), 64},
		field{i64(nonce), 32},
	)
}

// packTransferWithFeeWord2 packs word 2 of the transfer-with-fee
// instruction: instructionType(prefix) . amount(64) . feeLimit(64) . expiration(32) . 0(81).
func packTransferWithFeeWord2(instructionType InstructionType, amount, feeLimit, expiration int64) bigint.FieldBigInt {
	return packFields(
		field{i64(int64(instructionType)), 10},
		field{i64(amount), 64},
		field{i64(feeLimit), 64},
		field{i64(expiration), 32},
		field{big.NewInt(0), 81},
	)
}

// packLimitOrderWithFeeWord1 packs word 1 of the limit-order-with-fee
// instruction: amountSell(64) . amountBuy(64) . feeLimit(64) . nonce(32).
func packLimitOrderWithFeeWord1(amountSell, amountBuy, feeLimit, nonce int64) bigint.FieldBigInt {
	return packFields(
		field{i64(amountSell), 64},
		field{i64(amountBuy), 64},
		field{i64(feeLimit), 64},
		field{i64(nonce), 32},
	)
}

// packLimitOrderWithFeeWord2 packs word 2 of the limit-order-with-fee
// instruction: instructionType . feeVaultId(64) . vaultSell(64) . vaultBuy(64) . expiration(32) . 0(17).
func packLimitOrderWithFeeWord2(instructionType InstructionType, feeVaultID, vaultSell, vaultBuy, expiration int64) bigint.FieldBigInt {
	return packFields(
		field{i64(int64(instructionType)), 10},
		field{i64(feeVaultID), 64},
		field{i64(vaultSell), 64},
		field{i64(vaultBuy), 64},
		field{i64(expiration), 32},
		field{big.NewInt(0), 17},
	)
}
