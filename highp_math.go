package rasterpipe

import (
	"fmt"
	"math"
)

// Slot arithmetic works lane by lane on the raw 32-bit patterns; integer
// families reinterpret the bits rather than converting the value.

func f2i(f float32) int32  { return int32(math.Float32bits(f)) } // #nosec G115
func i2f(i int32) float32  { return math.Float32frombits(uint32(i)) } // #nosec G115
func f2u(f float32) uint32 { return math.Float32bits(f) }
func u2f(u uint32) float32 { return math.Float32frombits(u) }

func boolBits(b bool) float32 {
	if b {
		return i2f(-1)
	}
	return 0
}

type laneFunc1 func(a float32) float32
type laneFunc2 func(a, b float32) float32

func ints1(f func(int32) int32) laneFunc1 {
	return func(a float32) float32 { return i2f(f(f2i(a))) }
}

func ints2(f func(a, b int32) int32) laneFunc2 {
	return func(a, b float32) float32 { return i2f(f(f2i(a), f2i(b))) }
}

func uints2(f func(a, b uint32) uint32) laneFunc2 {
	return func(a, b float32) float32 { return u2f(f(f2u(a), f2u(b))) }
}

func intCmp(f func(a, b int32) bool) laneFunc2 {
	return func(a, b float32) float32 { return boolBits(f(f2i(a), f2i(b))) }
}

func uintCmp(f func(a, b uint32) bool) laneFunc2 {
	return func(a, b float32) float32 { return boolBits(f(f2u(a), f2u(b))) }
}

func floatCmp(f func(a, b float32) bool) laneFunc2 {
	return func(a, b float32) float32 { return boolBits(f(a, b)) }
}

// FloatToInt truncates toward zero. NaN and values outside the int32
// range produce math.MinInt32.
func FloatToInt(f float32) int32 {
	if f != f || f >= 2147483648 || f < -2147483648 {
		return math.MinInt32
	}
	return int32(f)
}

// FloatToUint truncates toward zero, saturating at 0 and math.MaxUint32.
// NaN produces 0.
func FloatToUint(f float32) uint32 {
	if !(f > 0) {
		return 0
	}
	if f >= 4294967296 {
		return math.MaxUint32
	}
	return uint32(f)
}

// unaryFuncs is keyed by the 1-slot member of each unary family.
var unaryFuncs = map[Op]laneFunc1{
	OpBitwiseNotInt:       ints1(func(a int32) int32 { return ^a }),
	OpCastToFloatFromInt:  func(a float32) float32 { return float32(f2i(a)) },
	OpCastToFloatFromUint: func(a float32) float32 { return float32(f2u(a)) },
	OpCastToIntFromFloat:  func(a float32) float32 { return i2f(FloatToInt(a)) },
	OpCastToUintFromFloat: func(a float32) float32 { return u2f(FloatToUint(a)) },
	OpAbsFloat:            func(a float32) float32 { return u2f(f2u(a) &^ (1 << 31)) },
	OpAbsInt: ints1(func(a int32) int32 {
		if a < 0 {
			return -a
		}
		return a
	}),
	OpFloorFloat: func(a float32) float32 { return float32(math.Floor(float64(a))) },
	OpCeilFloat:  func(a float32) float32 { return float32(math.Ceil(float64(a))) },
}

// binaryFuncs is keyed by the N-slot member of each binary family.
var binaryFuncs = map[Op]laneFunc2{
	OpAddNFloats: func(a, b float32) float32 { return a + b },
	OpAddNInts:   ints2(func(a, b int32) int32 { return a + b }),
	OpSubNFloats: func(a, b float32) float32 { return a - b },
	OpSubNInts:   ints2(func(a, b int32) int32 { return a - b }),
	OpMulNFloats: func(a, b float32) float32 { return a * b },
	OpMulNInts:   ints2(func(a, b int32) int32 { return a * b }),
	OpDivNFloats: func(a, b float32) float32 { return a / b },
	OpDivNInts: ints2(func(a, b int32) int32 {
		if b == 0 {
			return -1
		}
		return a / b
	}),
	OpDivNUints: uints2(func(a, b uint32) uint32 {
		if b == 0 {
			return math.MaxUint32
		}
		return a / b
	}),

	OpBitwiseAndNInts: ints2(func(a, b int32) int32 { return a & b }),
	OpBitwiseOrNInts:  ints2(func(a, b int32) int32 { return a | b }),
	OpBitwiseXorNInts: ints2(func(a, b int32) int32 { return a ^ b }),

	OpMinNFloats: func(a, b float32) float32 {
		if a < b {
			return a
		}
		return b
	},
	OpMinNInts:  ints2(func(a, b int32) int32 { return min(a, b) }),
	OpMinNUints: uints2(func(a, b uint32) uint32 { return min(a, b) }),
	OpMaxNFloats: func(a, b float32) float32 {
		if a > b {
			return a
		}
		return b
	},
	OpMaxNInts:  ints2(func(a, b int32) int32 { return max(a, b) }),
	OpMaxNUints: uints2(func(a, b uint32) uint32 { return max(a, b) }),

	OpCmpLTNFloats: floatCmp(func(a, b float32) bool { return a < b }),
	OpCmpLTNInts:   intCmp(func(a, b int32) bool { return a < b }),
	OpCmpLTNUints:  uintCmp(func(a, b uint32) bool { return a < b }),
	OpCmpLENFloats: floatCmp(func(a, b float32) bool { return a <= b }),
	OpCmpLENInts:   intCmp(func(a, b int32) bool { return a <= b }),
	OpCmpLENUints:  uintCmp(func(a, b uint32) bool { return a <= b }),
	OpCmpEQNFloats: floatCmp(func(a, b float32) bool { return a == b }),
	OpCmpEQNInts:   intCmp(func(a, b int32) bool { return a == b }),
	OpCmpNENFloats: floatCmp(func(a, b float32) bool { return a != b }),
	OpCmpNENInts:   intCmp(func(a, b int32) bool { return a != b }),
}

// mix computes from + (to - from) * t.
func mix(from, to, t float32) float32 {
	return from + (to-from)*t
}

func init() {
	for i := range families {
		fam := &families[i]
		switch fam.Arity {
		case 1:
			fn := unaryFuncs[fam.Fixed[0]]
			for n, op := range fam.Fixed {
				highpBinders[op] = bindUnary(n+1, fn)
			}
		case 2:
			fn := binaryFuncs[fam.N]
			for n, op := range fam.Fixed {
				highpBinders[op] = bindBinaryFixed(n+1, fn)
			}
			highpBinders[fam.N] = bindBinaryN(fn)
		case 3:
			for n, op := range fam.Fixed {
				highpBinders[op] = bindTernaryFixed(n + 1)
			}
			highpBinders[fam.N] = bindTernaryN
		}
	}
}

// bindUnary applies fn in place to n slots.
func bindUnary(n int, fn laneFunc1) highpBinder {
	return func(op Op, ctx any) highpStage {
		dst := slotRun(op, contextAs[[]float32](op, ctx), n)
		return func(*highpKernel) int {
			for i, v := range dst {
				dst[i] = fn(v)
			}
			return 1
		}
	}
}

// bindBinaryFixed takes n destination slots followed directly by n source
// slots, the layout of the top of a temporary stack.
func bindBinaryFixed(n int, fn laneFunc2) highpBinder {
	return func(op Op, ctx any) highpStage {
		mem := slotRun(op, contextAs[[]float32](op, ctx), 2*n)
		dst, src := mem[:n*HighpStride], mem[n*HighpStride:]
		return binaryStage(dst, src, fn)
	}
}

func bindBinaryN(fn laneFunc2) highpBinder {
	return func(op Op, ctx any) highpStage {
		c := contextAs[*BinaryOpCtx](op, ctx)
		return binaryStage(slotRun(op, c.Dst, c.Slots), slotRun(op, c.Src, c.Slots), fn)
	}
}

func binaryStage(dst, src []float32, fn laneFunc2) highpStage {
	return func(*highpKernel) int {
		for i := range dst {
			dst[i] = fn(dst[i], src[i])
		}
		return 1
	}
}

func bindTernaryFixed(n int) highpBinder {
	return func(op Op, ctx any) highpStage {
		mem := slotRun(op, contextAs[[]float32](op, ctx), 3*n)
		w := n * HighpStride
		return ternaryStage(mem[:w], mem[w:2*w], mem[2*w:])
	}
}

func bindTernaryN(op Op, ctx any) highpStage {
	c := contextAs[*TernaryOpCtx](op, ctx)
	if c.Slots < 1 {
		panic(fmt.Sprintf("rasterpipe: %v with %d slots", op, c.Slots))
	}
	return ternaryStage(slotRun(op, c.Dst, c.Slots), slotRun(op, c.Src0, c.Slots), slotRun(op, c.Src1, c.Slots))
}

// ternaryStage computes dst = mix(dst, src0, src1).
func ternaryStage(dst, src0, src1 []float32) highpStage {
	return func(*highpKernel) int {
		for i := range dst {
			dst[i] = mix(dst[i], src0[i], src1[i])
		}
		return 1
	}
}
