package wide

import (
	"math"
	"math/bits"
)

// I32x8 represents 8 int32 lanes. Slot values holding integers and the
// execution masks use it; a mask lane is either ^0 (on) or 0 (off).
type I32x8 [HighpLanes]int32

// SplatI32 creates I32x8 with all elements set to n.
func SplatI32(n int32) I32x8 {
	var result I32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// LaneMask returns a mask with the first n lanes on.
func LaneMask(n int) I32x8 {
	var result I32x8
	for i := range result {
		if i < n {
			result[i] = ^0
		}
	}
	return result
}

// And performs element-wise bitwise AND.
func (v I32x8) And(other I32x8) I32x8 {
	var result I32x8
	for i := range v {
		result[i] = v[i] & other[i]
	}
	return result
}

// Or performs element-wise bitwise OR.
func (v I32x8) Or(other I32x8) I32x8 {
	var result I32x8
	for i := range v {
		result[i] = v[i] | other[i]
	}
	return result
}

// AndNot computes v &^ other for each element.
func (v I32x8) AndNot(other I32x8) I32x8 {
	var result I32x8
	for i := range v {
		result[i] = v[i] &^ other[i]
	}
	return result
}

// Any reports whether any lane is nonzero.
func (v I32x8) Any() bool {
	for _, x := range v {
		if x != 0 {
			return true
		}
	}
	return false
}

// Count returns the number of nonzero lanes.
func (v I32x8) Count() int {
	var bitsSet uint
	for i, x := range v {
		if x != 0 {
			bitsSet |= 1 << i
		}
	}
	return bits.OnesCount(bitsSet)
}

// Float reinterprets each lane's bits as a float32.
func (v I32x8) Float() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = math.Float32frombits(uint32(v[i])) // #nosec G115
	}
	return result
}
