package starkcurve

// realShiftPoint and realGenerator are the two public, well-known
// Stark-curve constants referenced by name in §4.1 (the shift point S
// at table index 0, and the generator G at table index 1). Unlike the
// other 504 constant-table entries, these two coordinate pairs are
// published curve parameters rather than trusted-setup data from an
// external provider, so they are safe to hardcode; they are taken
// directly from the Go reference values carried by
// other_examples/smartcontractkit-caigo__curve.go (its Gx/Gy and
// EcGenX/EcGenY fields after the curve's final, authoritative
// assignment in that file's init()).

func realShiftPoint() CurvePoint {
	p, err := NewCurvePointFromHex(
		"0x49ee3eba8c1600700ee1b87eb599f16716b0b1022947733551fde4050ca6804",
		"0x3ca0cfe4b3bc6ddf346d49d06ea0ed34e621062c0e056c1d0405d266e10268a",
	)
	if err != nil {
		panic("starkcurve: invalid hard-coded shift point: " + err.Error())
	}
	return p
}

func realGenerator() CurvePoint {
	p, err := NewCurvePointFromHex(
		"0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca",
		"0x5668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f",
	)
	if err != nil {
		panic("starkcurve: invalid hard-coded generator point: " + err.Error())
	}
	return p
}
