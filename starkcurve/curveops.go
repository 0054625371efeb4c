package starkcurve

// This file contains short-Weierstrass point addition, doubling, and
// scalar multiplication on the Stark curve: y**2 = x**3 + alpha*x + beta
// (mod p), with alpha=1.
//
// The formulas are grounded on the affine add/double/EcMult routines
// used by the reference Stark-curve Go implementations in this corpus
// (caigo's StarkCurve.Add/Double/EcMult and NethermindEth-juno's
// pedersen.add); the code organization (value-receiver pure functions
// operating on a small CurvePoint struct, a package-level table-driven
// test suite) follows the teacher's curve_point_impl*.go layout.
//
// The Pedersen hash's accumulator never needs doubling or identity
// handling (the x-disjointness invariant in pedersen.go guarantees
// this), so Add below is the textbook non-constant-time affine
// addition law and does not special-case x1==x2. ScalarMult, used only
// by ECDSA internals, handles doubling explicitly via Double.

import (
	"math/big"

	"starkcrypto/internal/bigint"
)

// Add returns p+q for two affine points with distinct x-coordinates.
// Callers must ensure p.X != q.X (identity and doubling are callers'
// responsibility to avoid; Double handles p+p, and the Pedersen hash
// path never calls Add on a collision by construction).
func Add(p, q CurvePoint) CurvePoint {
	xDelta := new(big.Int).Sub(p.X.BigInt(), q.X.BigInt())
	yDelta := new(big.Int).Sub(p.Y.BigInt(), q.Y.BigInt())

	m := divMod(yDelta, xDelta, FieldPrime)

	x := new(big.Int).Mul(m, m)
	x.Sub(x, p.X.BigInt())
	x.Sub(x, q.X.BigInt())
	x.Mod(x, FieldPrime)

	y := new(big.Int).Sub(p.X.BigInt(), x)
	y.Mul(m, y)
	y.Sub(y, p.Y.BigInt())
	y.Mod(y, FieldPrime)

	return CurvePoint{X: bigint.NewFromBigInt(x), Y: bigint.NewFromBigInt(y)}
}

// Double returns p+p.
func Double(p CurvePoint) CurvePoint {
	x1 := p.X.BigInt()
	y1 := p.Y.BigInt()

	num := new(big.Int).Mul(x1, x1)
	num.Mul(num, big.NewInt(3))
	num.Add(num, Alpha)
	num.Mod(num, FieldPrime)

	den := new(big.Int).Mul(y1, big.NewInt(2))

	m := divMod(num, den, FieldPrime)

	x := new(big.Int).Mul(m, m)
	x.Sub(x, x1)
	x.Sub(x, x1)
	x.Mod(x, FieldPrime)

	y := new(big.Int).Sub(x1, x)
	y.Mul(m, y)
	y.Sub(y, y1)
	y.Mod(y, FieldPrime)

	return CurvePoint{X: bigint.NewFromBigInt(x), Y: bigint.NewFromBigInt(y)}
}

// ScalarMult returns k*p via MSB-first double-and-add. k must be
// non-negative; k==0 is not supported (callers of this package never
// need it: ECDSA scalars are always in [1, n)).
func ScalarMult(k *big.Int, p CurvePoint) CurvePoint {
	if k.Sign() <= 0 {
		panic("starkcurve: ScalarMult requires a strictly positive scalar")
	}
	result := p
	for i := k.BitLen() - 2; i >= 0; i-- {
		result = Double(result)
		if k.Bit(i) == 1 {
			result = Add(result, p)
		}
	}
	return result
}

// IsOnCurve reports whether (x, y) satisfies y**2 = x**3 + alpha*x + beta (mod p).
func IsOnCurve(p CurvePoint) bool {
	x := p.X.BigInt()
	y := p.Y.BigInt()

	left := new(big.Int).Mul(y, y)
	left.Mod(left, FieldPrime)

	right := new(big.Int).Mul(x, x)
	right.Mul(right, x)
	right.Add(right, new(big.Int).Mul(Alpha, x))
	right.Add(right, Beta)
	right.Mod(right, FieldPrime)

	return left.Cmp(right) == 0
}

// RecoverY returns a y such that (x, y) lies on the curve, given only
// x. The returned y is one of the two square roots of x**3+alpha*x+beta
// mod p (the other is FieldPrime-y); callers needing a canonical choice
// must pick based on parity or external convention, same as the
// reference GetYCoordinate this is grounded on.
func RecoverY(x bigint.FieldBigInt) (bigint.FieldBigInt, error) {
	xv := x.BigInt()
	rhs := new(big.Int).Mul(xv, xv)
	rhs.Mul(rhs, xv)
	rhs.Add(rhs, new(big.Int).Mul(Alpha, xv))
	rhs.Add(rhs, Beta)
	rhs.Mod(rhs, FieldPrime)

	y := new(big.Int).ModSqrt(rhs, FieldPrime)
	if y == nil {
		return bigint.FieldBigInt{}, errNoSquareRoot(x)
	}
	return bigint.NewFromBigInt(y), nil
}

// divMod finds the unique r in [0, p) such that m*r ≡ n (mod p), i.e.
// n/m in the field Z/pZ. Grounded verbatim on the DivMod helper shared
// by caigo's curve.go and juno's pedersen.go (both derived from
// starkware-libs/cairo-lang's math_utils.div_mod).
func divMod(n, m, p *big.Int) *big.Int {
	gcd := new(big.Int)
	inv := new(big.Int)
	gcd.GCD(inv, new(big.Int), m, p)
	r := new(big.Int).Mul(n, inv)
	return r.Mod(r, p)
}

// errNoSquareRoot is a small helper kept local to this file so
// curveops.go has no dependency on package errs (package errs is
// reserved for the public-API error surface documented in §7; internal
// arithmetic helpers return plain errors, matching the teacher's own
// convention of using bare errors.New/fmt.Errorf for low-level,
// non-public-API failure modes and reserving structured errors for the
// package boundary).
func errNoSquareRoot(x bigint.FieldBigInt) error {
	return &noSquareRootError{x: x}
}

type noSquareRootError struct {
	x bigint.FieldBigInt
}

func (e *noSquareRootError) Error() string {
	return "starkcurve: " + e.x.String() + " has no square root mod p; not a valid x-coordinate"
}
