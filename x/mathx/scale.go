package mathx

// ScaleU8 scales c by (f+1)/256 with 16-bit intermediates.
// f==255 is the identity and f==0 yields 0 for every c.
func ScaleU8(c, f uint8) uint8 {
	return uint8(uint16(c) * (uint16(f) + 1) / 256)
}

// TruncU8 converts a unit-interval value to 0..255 by truncation.
// Out-of-range inputs saturate.
func TruncU8(x float32) uint8 {
	v := x * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RoundU8 converts a unit-interval value to 0..255 by rounding half up.
func RoundU8(x float32) uint8 {
	v := x*255 + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
