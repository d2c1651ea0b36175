package wide

import "math"

// F32x8 represents 8 float32 lanes for high precision stages.
type F32x8 [HighpLanes]float32

// SplatF32 creates F32x8 with all elements set to n.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// IotaF32 returns start, start+1, ..., start+7.
// seed_shader uses it to place each lane on its pixel center.
func IotaF32(start float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = start + float32(i)
	}
	return result
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
// Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F32x8) Div(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// MulAdd computes v*m + a for each element.
func (v F32x8) MulAdd(m, a F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i]*m[i] + a[i]
	}
	return result
}

// Inv computes 1 - v for each element (inverse alpha).
func (v F32x8) Inv() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = 1 - v[i]
	}
	return result
}

// Clamp01 clamps each element to [0, 1]. NaN lanes become 0.
func (v F32x8) Clamp01() F32x8 {
	var result F32x8
	for i := range v {
		switch x := v[i]; {
		case x > 1:
			result[i] = 1
		case x >= 0:
			result[i] = x
		default:
			result[i] = 0
		}
	}
	return result
}

// Lerp performs linear interpolation: v + (other - v) * t.
func (v F32x8) Lerp(other F32x8, t F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + (other[i]-v[i])*t[i]
	}
	return result
}

// Min performs element-wise minimum.
func (v F32x8) Min(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum.
func (v F32x8) Max(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Bits reinterprets each lane as its IEEE 754 bit pattern.
func (v F32x8) Bits() I32x8 {
	var result I32x8
	for i := range v {
		result[i] = int32(math.Float32bits(v[i])) // #nosec G115
	}
	return result
}

// Select returns v in lanes where mask is set and other elsewhere.
func (v F32x8) Select(mask I32x8, other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		if mask[i] != 0 {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}
