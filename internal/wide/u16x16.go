package wide

// U16x16 holds one lowp channel for a group of LowpLanes pixels. Lanes carry
// 8-bit color values; the high byte absorbs channel products until they are
// scaled back with MulDiv255.
type U16x16 [LowpLanes]uint16

// SplatU16 fills every lane of a channel with n.
func SplatU16(n uint16) U16x16 {
	var v U16x16
	for i := range v {
		v[i] = n
	}
	return v
}

// Add sums two channels lane by lane. Callers clamp the result.
func (v U16x16) Add(w U16x16) U16x16 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub subtracts w from v lane by lane.
func (v U16x16) Sub(w U16x16) U16x16 {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// div255 scales a product of two 8-bit values back to 8 bits, rounding.
func div255(x uint32) uint16 {
	return uint16((x + 1 + (x >> 8)) >> 8) // #nosec G115
}

// MulDiv255 multiplies two 8-bit channels, as when scaling color by alpha.
func (v U16x16) MulDiv255(w U16x16) U16x16 {
	for i := range v {
		v[i] = div255(uint32(v[i]) * uint32(w[i]))
	}
	return v
}

// Inv returns 255 - v, the coverage left over by an alpha channel.
func (v U16x16) Inv() U16x16 {
	for i := range v {
		v[i] = 255 - v[i]
	}
	return v
}

// Clamp caps every lane at hi.
func (v U16x16) Clamp(hi uint16) U16x16 {
	for i := range v {
		v[i] = min(v[i], hi)
	}
	return v
}

// ToUnit widens the HighpLanes lanes starting at offset to highp floats in
// [0, 1].
func (v U16x16) ToUnit(offset int) F32x8 {
	var f F32x8
	for i := range f {
		f[i] = float32(v[offset+i]) / 255
	}
	return f
}
