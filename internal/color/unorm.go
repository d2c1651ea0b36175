package color

// ToUnorm clamps v to [0, 1] and scales it to [0, scale] with rounding.
// NaN maps to 0.
func ToUnorm(v float32, scale float32) uint32 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return uint32(scale)
	}
	return uint32(v*scale + 0.5)
}

// ToUnorm8 quantizes a [0, 1] component to a byte.
func ToUnorm8(v float32) uint8 {
	return uint8(ToUnorm(v, 255)) // #nosec G115
}

// ToUnorm16 quantizes a [0, 1] component to 16 bits.
func ToUnorm16(v float32) uint16 {
	return uint16(ToUnorm(v, 65535)) // #nosec G115
}

// FromUnorm8 maps a byte to [0, 1].
func FromUnorm8(b uint8) float32 {
	return float32(b) * (1.0 / 255)
}

// FromUnorm16 maps a 16-bit value to [0, 1].
func FromUnorm16(u uint16) float32 {
	return float32(u) * (1.0 / 65535)
}
