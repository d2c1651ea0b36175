package rasterpipe

import (
	"fmt"
	"math"

	"github.com/gogpu/rasterpipe/internal/wide"
)

func loadSlot(s []float32) wide.F32x8 {
	return wide.F32x8(s[:HighpStride])
}

func storeSlot(s []float32, v wide.F32x8) {
	copy(s[:HighpStride], v[:])
}

func init() {
	highpBinders[OpImmediateF] = bindImmediate
	highpBinders[OpLoadUnmasked] = func(op Op, ctx any) highpStage {
		slot := slotRun(op, contextAs[[]float32](op, ctx), 1)
		return func(k *highpKernel) int {
			k.R = loadSlot(slot)
			return 1
		}
	}
	highpBinders[OpStoreUnmasked] = func(op Op, ctx any) highpStage {
		slot := slotRun(op, contextAs[[]float32](op, ctx), 1)
		return func(k *highpKernel) int {
			storeSlot(slot, k.R)
			return 1
		}
	}
	highpBinders[OpStoreMasked] = func(op Op, ctx any) highpStage {
		slot := slotRun(op, contextAs[[]float32](op, ctx), 1)
		return func(k *highpKernel) int {
			storeSlot(slot, k.R.Select(k.active, loadSlot(slot)))
			return 1
		}
	}

	for n, op := range [4]Op{OpCopySlotMasked, OpCopy2SlotsMasked, OpCopy3SlotsMasked, OpCopy4SlotsMasked} {
		highpBinders[op] = bindCopySlots(n+1, true)
	}
	for n, op := range [4]Op{OpCopySlotUnmasked, OpCopy2SlotsUnmasked, OpCopy3SlotsUnmasked, OpCopy4SlotsUnmasked} {
		highpBinders[op] = bindCopySlots(n+1, false)
	}
	for n, op := range [4]Op{OpZeroSlotUnmasked, OpZero2SlotsUnmasked, OpZero3SlotsUnmasked, OpZero4SlotsUnmasked} {
		highpBinders[op] = bindZeroSlots(n + 1)
	}
	for n, op := range [4]Op{OpCopyConstant, OpCopy2Constants, OpCopy3Constants, OpCopy4Constants} {
		highpBinders[op] = bindCopyConstants(n + 1)
	}
	for n, op := range [4]Op{OpSwizzle1, OpSwizzle2, OpSwizzle3, OpSwizzle4} {
		highpBinders[op] = bindSlotSwizzle(n + 1)
	}
}

// bindImmediate loads a 32-bit pattern into every lane of r. The same
// stage injects float and integer constants.
func bindImmediate(op Op, ctx any) highpStage {
	v := wide.SplatF32(math.Float32frombits(contextAs[uint32](op, ctx)))
	return func(k *highpKernel) int {
		k.R = v
		return 1
	}
}

func bindCopySlots(n int, masked bool) highpBinder {
	return func(op Op, ctx any) highpStage {
		c := contextAs[*BinaryOpCtx](op, ctx)
		dst, src := slotRun(op, c.Dst, n), slotRun(op, c.Src, n)
		if !masked {
			return func(*highpKernel) int {
				copy(dst, src)
				return 1
			}
		}
		return func(k *highpKernel) int {
			for s := 0; s < n; s++ {
				d := dst[s*HighpStride:]
				storeSlot(d, loadSlot(src[s*HighpStride:]).Select(k.active, loadSlot(d)))
			}
			return 1
		}
	}
}

func bindZeroSlots(n int) highpBinder {
	return func(op Op, ctx any) highpStage {
		dst := slotRun(op, contextAs[[]float32](op, ctx), n)
		return func(*highpKernel) int {
			clear(dst)
			return 1
		}
	}
}

func bindCopyConstants(n int) highpBinder {
	return func(op Op, ctx any) highpStage {
		c := contextAs[*BinaryOpCtx](op, ctx)
		dst := slotRun(op, c.Dst, n)
		if len(c.Src) < n {
			panic(fmt.Sprintf("rasterpipe: %v needs %d constants, got %d", op, n, len(c.Src)))
		}
		src := c.Src[:n]
		return func(*highpKernel) int {
			for s, v := range src {
				storeSlot(dst[s*HighpStride:], wide.SplatF32(v))
			}
			return 1
		}
	}
}

func bindSlotSwizzle(n int) highpBinder {
	return func(op Op, ctx any) highpStage {
		c := contextAs[*SwizzleCtx](op, ctx)
		var used int
		for _, off := range c.Offsets[:n] {
			if off != SwizzleOffsetZero && off != SwizzleOffsetOne {
				used = max(used, int(off)+1)
			}
		}
		slots := slotRun(op, c.Slots, max(used, n))
		offsets := c.Offsets
		return func(*highpKernel) int {
			var tmp [4]wide.F32x8
			for i := 0; i < n; i++ {
				switch off := offsets[i]; off {
				case SwizzleOffsetZero:
				case SwizzleOffsetOne:
					tmp[i] = wide.SplatF32(1)
				default:
					tmp[i] = loadSlot(slots[int(off)*HighpStride:])
				}
			}
			for i := 0; i < n; i++ {
				storeSlot(slots[i*HighpStride:], tmp[i])
			}
			return 1
		}
	}
}
