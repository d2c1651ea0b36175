package rasterpipe

import (
	"github.com/gogpu/rasterpipe/internal/blend"
	"github.com/gogpu/rasterpipe/internal/wide"
)

// Low precision stages keep every channel as an 8-bit value in a 16-bit
// lane. Only color register, blend and 8-bit memory stages exist here;
// slot and mask stages always force the high precision path.

func init() {
	lowpBinders[OpStackRewind] = simpleLowp(func(*lowpKernel) {})
	lowpBinders[OpUniformColor] = bindUniformColorLowp(false)
	lowpBinders[OpUniformColorDst] = bindUniformColorLowp(true)
	lowpBinders[OpBlackColor] = simpleLowp(func(k *lowpKernel) {
		k.SR, k.SG, k.SB, k.SA = wide.U16x16{}, wide.U16x16{}, wide.U16x16{}, wide.SplatU16(255)
	})
	lowpBinders[OpWhiteColor] = simpleLowp(func(k *lowpKernel) {
		v := wide.SplatU16(255)
		k.SR, k.SG, k.SB, k.SA = v, v, v, v
	})
	lowpBinders[OpMoveSrcDst] = simpleLowp(func(k *lowpKernel) { k.MoveSrcToDst() })
	lowpBinders[OpMoveDstSrc] = simpleLowp(func(k *lowpKernel) { k.MoveDstToSrc() })
	lowpBinders[OpSwapSrcDst] = simpleLowp(func(k *lowpKernel) { k.SwapSrcDst() })
	lowpBinders[OpSwapRB] = simpleLowp(func(k *lowpKernel) { k.SR, k.SB = k.SB, k.SR })
	lowpBinders[OpSwizzle] = func(op Op, ctx any) lowpStage {
		idx := colorSwizzle(contextAs[[4]byte](op, ctx))
		return func(k *lowpKernel) int {
			src := [6]wide.U16x16{k.SR, k.SG, k.SB, k.SA, {}, wide.SplatU16(255)}
			k.SR, k.SG, k.SB, k.SA = src[idx[0]], src[idx[1]], src[idx[2]], src[idx[3]]
			return 1
		}
	}
	lowpBinders[OpClamp01] = simpleLowp(func(k *lowpKernel) {
		k.SR, k.SG, k.SB, k.SA = k.SR.Clamp(255), k.SG.Clamp(255), k.SB.Clamp(255), k.SA.Clamp(255)
	})
	lowpBinders[OpPremul] = simpleLowp(func(k *lowpKernel) {
		k.SR, k.SG, k.SB = k.SR.MulDiv255(k.SA), k.SG.MulDiv255(k.SA), k.SB.MulDiv255(k.SA)
	})

	for op, mode := range blendOps {
		fn := blend.GetBatchFunc(mode)
		lowpBinders[op] = simpleLowp(func(k *lowpKernel) { fn(&k.BatchState) })
	}

	lowpBinders[OpLoad8888] = func(op Op, ctx any) lowpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *lowpKernel) int {
			k.LoadSrc(mem.pixelBytes(k.dx, k.dy, k.tail, 4), k.tail)
			return 1
		}
	}
	lowpBinders[OpLoad8888Dst] = func(op Op, ctx any) lowpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *lowpKernel) int {
			k.LoadDst(mem.pixelBytes(k.dx, k.dy, k.tail, 4), k.tail)
			return 1
		}
	}
	lowpBinders[OpStore8888] = func(op Op, ctx any) lowpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *lowpKernel) int {
			k.StoreSrc(mem.pixelBytes(k.dx, k.dy, k.tail, 4), k.tail)
			return 1
		}
	}

	lowpBinders[OpLoadA8] = bindLoadA8Lowp(false)
	lowpBinders[OpLoadA8Dst] = bindLoadA8Lowp(true)
	lowpBinders[OpStoreA8] = func(op Op, ctx any) lowpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *lowpKernel) int {
			px := mem.pixelBytes(k.dx, k.dy, k.tail, 1)
			for i := range px {
				px[i] = uint8(k.SA[i]) // #nosec G115
			}
			return 1
		}
	}
	lowpBinders[OpLoadRG88] = func(op Op, ctx any) lowpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *lowpKernel) int {
			px := mem.pixelBytes(k.dx, k.dy, k.tail, 2)
			k.SR, k.SG, k.SB, k.SA = wide.U16x16{}, wide.U16x16{}, wide.U16x16{}, wide.SplatU16(255)
			for i := 0; i < k.tail; i++ {
				k.SR[i], k.SG[i] = uint16(px[2*i]), uint16(px[2*i+1])
			}
			return 1
		}
	}
	lowpBinders[OpStoreRG88] = func(op Op, ctx any) lowpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *lowpKernel) int {
			px := mem.pixelBytes(k.dx, k.dy, k.tail, 2)
			for i := 0; i < k.tail; i++ {
				px[2*i], px[2*i+1] = uint8(k.SR[i]), uint8(k.SG[i]) // #nosec G115
			}
			return 1
		}
	}
}

func bindUniformColorLowp(dst bool) lowpBinder {
	return func(op Op, ctx any) lowpStage {
		c := contextAs[*UniformColorCtx](op, ctx)
		r, g, b, a := wide.SplatU16(c.RGBA[0]), wide.SplatU16(c.RGBA[1]), wide.SplatU16(c.RGBA[2]), wide.SplatU16(c.RGBA[3])
		if dst {
			return func(k *lowpKernel) int {
				k.DR, k.DG, k.DB, k.DA = r, g, b, a
				return 1
			}
		}
		return func(k *lowpKernel) int {
			k.SR, k.SG, k.SB, k.SA = r, g, b, a
			return 1
		}
	}
}

func bindLoadA8Lowp(dst bool) lowpBinder {
	return func(op Op, ctx any) lowpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *lowpKernel) int {
			var a wide.U16x16
			px := mem.pixelBytes(k.dx, k.dy, k.tail, 1)
			for i, v := range px {
				a[i] = uint16(v)
			}
			if dst {
				k.DR, k.DG, k.DB, k.DA = wide.U16x16{}, wide.U16x16{}, wide.U16x16{}, a
			} else {
				k.SR, k.SG, k.SB, k.SA = wide.U16x16{}, wide.U16x16{}, wide.U16x16{}, a
			}
			return 1
		}
	}
}
