// Command starkhash is a thin CLI wrapper around the starkcurve
// package: it exposes Pedersen hashing, the message hashers, and
// sign/verify as subcommands, and is the sole place in this module
// that reads the STARKCURVE_USE_ALT_PEDERSEN environment variable.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"starkcrypto/internal/bigint"
	"starkcrypto/starkcurve"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("starkhash: ")

	if os.Getenv("STARKCURVE_USE_ALT_PEDERSEN") != "" {
		starkcurve.UseAltPedersen(true)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "pedersen":
		err = runPedersen(os.Args[2:])
	case "limit-order":
		err = runLimitOrder(os.Args[2:])
	case "transfer":
		err = runTransfer(os.Args[2:])
	case "sign":
		err = runSign(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "starkhash: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: starkhash <subcommand> [flags]

subcommands:
  pedersen    hash 1 or 2 field elements
  limit-order compute a limit-order message hash
  transfer    compute a transfer message hash
  sign        sign a message hash with a given private key
  verify      verify a signature against the public key of a given private key`)
}

func runPedersen(args []string) error {
	fs := flag.NewFlagSet("pedersen", flag.ExitOnError)
	fs.Parse(args)
	inputs := fs.Args()
	if len(inputs) < 1 || len(inputs) > 2 {
		return fmt.Errorf("pedersen: expected 1 or 2 positional inputs, got %d", len(inputs))
	}
	h, err := starkcurve.PedersenHex(inputs...)
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}

func runLimitOrder(args []string) error {
	fs := flag.NewFlagSet("limit-order", flag.ExitOnError)
	vaultSell := fs.Int64("vault-sell", 0, "selling vault id")
	vaultBuy := fs.Int64("vault-buy", 0, "buying vault id")
	amountSell := fs.String("amount-sell", "0", "amount sold, decimal")
	amountBuy := fs.String("amount-buy", "0", "amount bought, decimal")
	tokenSell := fs.String("token-sell", "", "sell token, 0x-hex")
	tokenBuy := fs.String("token-buy", "", "buy token, 0x-hex")
	nonce := fs.Int64("nonce", 0, "instruction nonce")
	expiration := fs.Int64("expiration", 0, "expiration timestamp")
	feeToken := fs.String("fee-token", "", "fee token, 0x-hex (enables the fee variant)")
	feeVaultID := fs.Int64("fee-vault", 0, "fee vault id")
	feeLimit := fs.String("fee-limit", "0", "fee limit, decimal")
	fs.Parse(args)

	if *feeToken != "" {
		h, err := starkcurve.GetLimitOrderMsgHashWithFee(*vaultSell, *vaultBuy, *amountSell, *amountBuy, *tokenSell, *tokenBuy, *nonce, *expiration, *feeToken, *feeVaultID, *feeLimit)
		if err != nil {
			return err
		}
		fmt.Println(h)
		return nil
	}
	h, err := starkcurve.GetLimitOrderMsgHash(*vaultSell, *vaultBuy, *amountSell, *amountBuy, *tokenSell, *tokenBuy, *nonce, *expiration)
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}

func runTransfer(args []string) error {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	amount := fs.String("amount", "0", "amount transferred, decimal")
	nonce := fs.Int64("nonce", 0, "instruction nonce")
	senderVaultID := fs.Int64("sender-vault", 0, "sender vault id")
	token := fs.String("token", "", "token, 0x-hex")
	receiverVaultID := fs.Int64("receiver-vault", 0, "receiver vault id")
	receiverPublicKey := fs.String("receiver-key", "", "receiver public key, 0x-hex")
	expiration := fs.Int64("expiration", 0, "expiration timestamp")
	condition := fs.String("condition", "", "condition, 0x-hex (enables the conditional variant)")
	feeToken := fs.String("fee-token", "", "fee token, 0x-hex (enables the fee variant)")
	feeVaultID := fs.Int64("fee-vault", 0, "fee vault id")
	feeLimit := fs.String("fee-limit", "0", "fee limit, decimal")
	fs.Parse(args)

	var cond *string
	if *condition != "" {
		cond = condition
	}

	if *feeToken != "" {
		h, err := starkcurve.GetTransferMsgHashWithFee(*amount, *nonce, *senderVaultID, *token, *receiverVaultID, *receiverPublicKey, *expiration, cond, *feeToken, *feeVaultID, *feeLimit)
		if err != nil {
			return err
		}
		fmt.Println(h)
		return nil
	}
	h, err := starkcurve.GetTransferMsgHash(*amount, *nonce, *senderVaultID, *token, *receiverVaultID, *receiverPublicKey, *expiration, cond)
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}

// cliKey is a minimal local ECDSA keypair for the sign/verify
// subcommands. It exists only so this CLI has something to
// demonstrate Signer/Verifier with; per §1/§9, key management is
// explicitly outside the starkcurve package itself.
type cliKey struct {
	d *big.Int
	Q starkcurve.CurvePoint
}

func loadCLIKey(hexPrivate string) (*cliKey, error) {
	d, ok := new(big.Int).SetString(hexPrivate, 16)
	if !ok {
		return nil, fmt.Errorf("starkhash: %q is not a valid hex private key", hexPrivate)
	}
	if err := starkcurve.EnsureDefaultConstants(); err != nil {
		return nil, err
	}
	return &cliKey{d: d, Q: starkcurve.ScalarMult(d, starkcurve.Generator)}, nil
}

func (k *cliKey) Sign(digest bigint.FieldBigInt) (r, s bigint.FieldBigInt, err error) {
	z := digest.BigInt()
	nonce, err := rand.Int(rand.Reader, new(big.Int).Sub(starkcurve.Order, big.NewInt(1)))
	if err != nil {
		return bigint.FieldBigInt{}, bigint.FieldBigInt{}, err
	}
	nonce.Add(nonce, big.NewInt(1))
	R := starkcurve.ScalarMult(nonce, starkcurve.Generator)
	rv := new(big.Int).Mod(R.X.BigInt(), starkcurve.Order)
	kInv := new(big.Int).ModInverse(nonce, starkcurve.Order)
	sv := new(big.Int).Mul(rv, k.d)
	sv.Add(sv, z)
	sv.Mul(sv, kInv)
	sv.Mod(sv, starkcurve.Order)
	return bigint.NewFromBigInt(rv), bigint.NewFromBigInt(sv), nil
}

func (k *cliKey) Verify(digest bigint.FieldBigInt, r, s bigint.FieldBigInt) bool {
	z := digest.BigInt()
	rv, sv := r.BigInt(), s.BigInt()
	w := new(big.Int).ModInverse(sv, starkcurve.Order)
	if w == nil {
		return false
	}
	u1 := new(big.Int).Mod(new(big.Int).Mul(z, w), starkcurve.Order)
	u2 := new(big.Int).Mod(new(big.Int).Mul(rv, w), starkcurve.Order)
	sum := starkcurve.Add(starkcurve.ScalarMult(u1, starkcurve.Generator), starkcurve.ScalarMult(u2, k.Q))
	return new(big.Int).Mod(sum.X.BigInt(), starkcurve.Order).Cmp(rv) == 0
}

func runSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	priv := fs.String("private-key", "", "hex private key (no 0x prefix)")
	msgHash := fs.String("msg-hash", "", "hex message digest (no 0x prefix)")
	fs.Parse(args)

	key, err := loadCLIKey(*priv)
	if err != nil {
		return err
	}
	sig, err := starkcurve.Sign(key, *msgHash)
	if err != nil {
		return err
	}
	fmt.Printf("r=%s s=%s\n", sig.R.Hex(), sig.S.Hex())
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	priv := fs.String("private-key", "", "hex private key (no 0x prefix)")
	msgHash := fs.String("msg-hash", "", "hex message digest (no 0x prefix)")
	r := fs.String("r", "", "signature r, hex")
	s := fs.String("s", "", "signature s, hex")
	fs.Parse(args)

	key, err := loadCLIKey(*priv)
	if err != nil {
		return err
	}
	rv, err := bigint.NewFromHex("0x" + *r)
	if err != nil {
		return err
	}
	sv, err := bigint.NewFromHex("0x" + *s)
	if err != nil {
		return err
	}
	ok, err := starkcurve.Verify(key, *msgHash, &starkcurve.Signature{R: rv, S: sv})
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}
