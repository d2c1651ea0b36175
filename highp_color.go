package rasterpipe

import (
	"github.com/gogpu/rasterpipe/internal/blend"
	"github.com/gogpu/rasterpipe/internal/color"
	"github.com/gogpu/rasterpipe/internal/wide"
)

// blendOps maps the blend stages to their modes.
var blendOps = map[Op]blend.Mode{
	OpClear:    blend.ModeClear,
	OpSrcOver:  blend.ModeSourceOver,
	OpDstOver:  blend.ModeDestinationOver,
	OpModulate: blend.ModeModulate,
	OpMultiply: blend.ModeMultiply,
	OpScreen:   blend.ModeScreen,
	OpPlus:     blend.ModePlus,
}

func init() {
	highpBinders[OpSeedShader] = simple(func(k *highpKernel) {
		k.R = wide.IotaF32(float32(k.dx) + 0.5)
		k.G = wide.SplatF32(float32(k.dy) + 0.5)
		k.B = wide.SplatF32(1)
		k.A = wide.F32x8{}
		k.DR, k.DG, k.DB, k.DA = wide.F32x8{}, wide.F32x8{}, wide.F32x8{}, wide.F32x8{}
	})
	highpBinders[OpMatrix2x3] = bindMatrix2x3
	highpBinders[OpUniformColor] = bindUniformColor(false)
	highpBinders[OpUniformColorDst] = bindUniformColor(true)
	highpBinders[OpBlackColor] = simple(func(k *highpKernel) {
		k.R, k.G, k.B, k.A = wide.F32x8{}, wide.F32x8{}, wide.F32x8{}, wide.SplatF32(1)
	})
	highpBinders[OpWhiteColor] = simple(func(k *highpKernel) {
		one := wide.SplatF32(1)
		k.R, k.G, k.B, k.A = one, one, one, one
	})

	highpBinders[OpLoadSrc] = bindRegisterBlock(regR, 4, true)
	highpBinders[OpStoreSrc] = bindRegisterBlock(regR, 4, false)
	highpBinders[OpStoreSrcRG] = bindRegisterBlock(regR, 2, false)
	highpBinders[OpLoadDst] = bindRegisterBlock(regDR, 4, true)
	highpBinders[OpStoreDst] = bindRegisterBlock(regDR, 4, false)

	highpBinders[OpMoveSrcDst] = simple(func(k *highpKernel) { k.MoveSrcToDst() })
	highpBinders[OpMoveDstSrc] = simple(func(k *highpKernel) { k.MoveDstToSrc() })
	highpBinders[OpSwapSrcDst] = simple(func(k *highpKernel) { k.SwapSrcDst() })
	highpBinders[OpSwapRB] = simple(func(k *highpKernel) { k.R, k.B = k.B, k.R })
	highpBinders[OpSwizzle] = bindColorSwizzle

	highpBinders[OpClamp01] = simple(func(k *highpKernel) {
		k.R, k.G, k.B, k.A = k.R.Clamp01(), k.G.Clamp01(), k.B.Clamp01(), k.A.Clamp01()
	})
	highpBinders[OpPremul] = simple(func(k *highpKernel) {
		k.R, k.G, k.B = k.R.Mul(k.A), k.G.Mul(k.A), k.B.Mul(k.A)
	})
	highpBinders[OpUnpremul] = simple(func(k *highpKernel) {
		var scale wide.F32x8
		for i, a := range k.A {
			if a != 0 {
				scale[i] = 1 / a
			}
		}
		k.R, k.G, k.B = k.R.Mul(scale), k.G.Mul(scale), k.B.Mul(scale)
	})
	highpBinders[OpFromSRGB] = simple(func(k *highpKernel) {
		k.R, k.G, k.B = color.FromSRGB(k.R), color.FromSRGB(k.G), color.FromSRGB(k.B)
	})
	highpBinders[OpToSRGB] = simple(func(k *highpKernel) {
		k.R, k.G, k.B = color.ToSRGB(k.R), color.ToSRGB(k.G), color.ToSRGB(k.B)
	})

	for op, mode := range blendOps {
		fn := blend.GetFloatFunc(mode)
		highpBinders[op] = simple(func(k *highpKernel) { fn(&k.FloatState) })
	}
}

func bindMatrix2x3(op Op, ctx any) highpStage {
	m := contextAs[*Matrix2x3Ctx](op, ctx).M
	return func(k *highpKernel) int {
		x, y := k.R, k.G
		for i := range x {
			k.R[i] = m[0]*x[i] + m[1]*y[i] + m[2]
			k.G[i] = m[3]*x[i] + m[4]*y[i] + m[5]
		}
		return 1
	}
}

func bindUniformColor(dst bool) highpBinder {
	return func(op Op, ctx any) highpStage {
		c := contextAs[*UniformColorCtx](op, ctx)
		r, g, b, a := wide.SplatF32(c.R), wide.SplatF32(c.G), wide.SplatF32(c.B), wide.SplatF32(c.A)
		if dst {
			return func(k *highpKernel) int {
				k.DR, k.DG, k.DB, k.DA = r, g, b, a
				return 1
			}
		}
		return func(k *highpKernel) int {
			k.R, k.G, k.B, k.A = r, g, b, a
			return 1
		}
	}
}

// bindRegisterBlock moves the n registers starting at index first to or
// from n consecutive lane vectors of a []float32 context.
func bindRegisterBlock(first, n int, load bool) highpBinder {
	return func(op Op, ctx any) highpStage {
		mem := slotRun(op, contextAs[[]float32](op, ctx), n)
		if load {
			return func(k *highpKernel) int {
				for i := 0; i < n; i++ {
					*k.register(first + i) = loadSlot(mem[i*HighpStride:])
				}
				return 1
			}
		}
		return func(k *highpKernel) int {
			for i := 0; i < n; i++ {
				storeSlot(mem[i*HighpStride:], *k.register(first + i))
			}
			return 1
		}
	}
}

func bindColorSwizzle(op Op, ctx any) highpStage {
	idx := colorSwizzle(contextAs[[4]byte](op, ctx))
	return func(k *highpKernel) int {
		src := [6]wide.F32x8{k.R, k.G, k.B, k.A, {}, wide.SplatF32(1)}
		k.R, k.G, k.B, k.A = src[idx[0]], src[idx[1]], src[idx[2]], src[idx[3]]
		return 1
	}
}
