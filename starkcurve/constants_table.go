package starkcurve

// This file implements the ConstantPointTable lifecycle described by the
// spec: "uninitialized -> initialized -> frozen", initialized once per
// process and thereafter read-only.
//
// Per §1 ("Out of scope... the binding that supplies the 506 precomputed
// curve points"), this module treats the table itself as externally
// supplied trusted setup data, not a compile-time constant of the
// cryptographic core. Init validates whatever table it is handed (every
// point must lie on the curve — a corrupted table silently changes the
// hash, per §9) and freezes it; DefaultConstantPoints below is a
// deterministic, dependency-free stand-in so the package is usable and
// testable standalone without wiring in the real data provider (see
// DESIGN.md for why the real Starkware constants are not hardcoded
// here).

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync"

	"starkcrypto/internal/bigint"
)

// ShiftPoint is the constant table's index-0 entry: the fixed,
// non-identity point used to seed the Pedersen accumulator so it is
// never the point at infinity during the hash loop.
var ShiftPoint CurvePoint

// Generator is the constant table's index-1 entry, i.e. G, used as the
// base point for ECDSA scalar multiplication.
var Generator CurvePoint

var (
	constantPointsOnce sync.Once
	constantPoints     []CurvePoint
	constantPointsErr  error
)

// Init installs points as the process-wide constant-point table. points
// must have exactly numConstantPoints (506) entries; points[0] becomes
// ShiftPoint and points[1] becomes Generator, matching §4.1. Init may
// only be called once per process, and only before first use
// (subsequent calls, including any after first use has installed the
// default table, return an error without altering the table), matching
// the uninitialized -> initialized -> frozen lifecycle of §4.8.
func Init(points []CurvePoint) error {
	ran := false
	constantPointsOnce.Do(func() {
		ran = true
		constantPointsErr = installConstantPoints(points)
	})
	if !ran {
		return fmt.Errorf("starkcurve: constant point table already initialized")
	}
	return constantPointsErr
}

func installConstantPoints(points []CurvePoint) error {
	if len(points) != numConstantPoints {
		return fmt.Errorf("starkcurve: constant point table must have exactly %d points, got %d", numConstantPoints, len(points))
	}
	for i, p := range points {
		if !IsOnCurve(p) {
			return fmt.Errorf("starkcurve: constant point table entry %d is not on the curve: %s", i, fmtPoint(p))
		}
	}
	constantPoints = points
	ShiftPoint = points[0]
	Generator = points[1]
	return nil
}

// ensureInitialized installs DefaultConstantPoints if Init has not been
// called yet. Called lazily by Pedersen so the package works out of the
// box, matching §4.8's "or on first use" initialization option. The
// table is set up by a single attempt per process: if that attempt was
// an Init call whose table was rejected, no table is installed and its
// error is returned here on every call.
func ensureInitialized() error {
	constantPointsOnce.Do(func() {
		constantPointsErr = installConstantPoints(DefaultConstantPoints())
	})
	return constantPointsErr
}

// EnsureDefaultConstants triggers the same lazy initialization Pedersen
// performs on first use; Sign and Verify do not trigger it. Callers
// that touch ShiftPoint or Generator directly without hashing first
// (e.g. cmd/starkhash deriving a public key from a private scalar
// before signing) must call this first.
func EnsureDefaultConstants() error {
	return ensureInitialized()
}

// constantPointAt returns the addend for input index i (0 or 1) and bit
// position j (0..251): table index 2 + i*252 + j, per §4.1.
func constantPointAt(i, j int) CurvePoint {
	return constantPoints[2+i*pointsPerInput+j]
}

// DefaultConstantPoints deterministically derives a table of
// numConstantPoints points on the curve, for use when no externally
// supplied table (the real data-provider binding called out as
// out-of-scope in §1) is available — e.g. for standalone testing of
// this package's hash/pack/sign machinery.
//
// This is NOT the production Starkware Pedersen constant table: that
// table is itself cryptographic trusted setup data belonging to the
// external data provider, not something this repository is positioned
// to regenerate or hardcode (see the constants_table.go entry in
// DESIGN.md).
// DefaultConstantPoints exists purely so CurveOps/PedersenHash/Signer
// have a self-consistent, on-curve table to exercise end-to-end; the
// first two entries are overridden with the real, well-known Stark
// curve shift point and generator (see realShiftPoint/realGenerator in
// params_known.go) since those two specific points are public constants
// independent of the data-provider binding.
func DefaultConstantPoints() []CurvePoint {
	points := make([]CurvePoint, numConstantPoints)
	points[0] = realShiftPoint()
	points[1] = realGenerator()
	for idx := 2; idx < numConstantPoints; idx++ {
		points[idx] = deriveCurvePoint("pedersen hash constant", idx)
	}
	return points
}

// deriveCurvePoint performs a simple try-and-increment hash-to-curve:
// starting from SHA-256(domain || index), it repeatedly increments the
// candidate x until x**3+alpha*x+beta is a quadratic residue mod p, then
// takes the even-y square root. This is standard library only (no
// hash-to-curve library appears anywhere in this corpus), which is the
// documented, justified exception to "ground every dependency in the
// corpus" for this one placeholder-data-generation helper.
func deriveCurvePoint(domain string, index int) CurvePoint {
	for attempt := 0; ; attempt++ {
		x := seedToFieldElement(domain, index, attempt)
		y, err := RecoverY(bigint.NewFromBigInt(x))
		if err == nil {
			yv := y.BigInt()
			if yv.Bit(0) == 1 {
				yv = new(big.Int).Sub(FieldPrime, yv)
			}
			return CurvePoint{X: bigint.NewFromBigInt(x), Y: bigint.NewFromBigInt(yv)}
		}
	}
}

func seedToFieldElement(domain string, index, attempt int) *big.Int {
	h := sha256.New()
	h.Write([]byte(domain))
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(index))
	binary.BigEndian.PutUint32(buf[4:8], uint32(attempt))
	h.Write(buf[:])
	digest := h.Sum(nil)
	x := new(big.Int).SetBytes(digest)
	return x.Mod(x, FieldPrime)
}
