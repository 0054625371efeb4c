package starkcurve

import "starkcrypto/internal/bigint"

// CurvePoint is an affine point (x, y) on the Stark curve. The zero
// value is not a valid point; use NewCurvePointFromHex or one of the
// package constants.
//
// Equality for CurvePoint is by coordinates; the Pedersen hash's
// x-disjointness invariant (see Pedersen in pedersen.go) is the only
// place this package compares points by x-coordinate alone.
type CurvePoint struct {
	X bigint.FieldBigInt
	Y bigint.FieldBigInt
}

// NewCurvePointFromHex builds a CurvePoint from two 0x-prefixed hex
// coordinate strings, as the constant-point table is supplied.
func NewCurvePointFromHex(xHex, yHex string) (CurvePoint, error) {
	x, err := bigint.NewFromHex(xHex)
	if err != nil {
		return CurvePoint{}, err
	}
	y, err := bigint.NewFromHex(yHex)
	if err != nil {
		return CurvePoint{}, err
	}
	return CurvePoint{X: x, Y: y}, nil
}

// Equal reports whether p and q are the same affine point.
func (p CurvePoint) Equal(q CurvePoint) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// SameX reports whether p and q share an x-coordinate, without regard
// to y. The Pedersen hash loops use this to detect an x-collision
// between the accumulator and the next addend.
func (p CurvePoint) SameX(q CurvePoint) bool {
	return p.X.Cmp(q.X) == 0
}
