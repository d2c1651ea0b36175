package rasterpipe

import "github.com/gogpu/rasterpipe/internal/wide"

func init() {
	for op, m := range memoryOps {
		if m.store {
			highpBinders[op] = bindStore(m.format)
		} else {
			highpBinders[op] = bindLoad(m.format, m.dst)
		}
	}
}

// bindLoad fills the first tail lanes from memory; the remaining lanes of
// the four registers are zeroed.
func bindLoad(f *pixelFormat, dst bool) highpBinder {
	return func(op Op, ctx any) highpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *highpKernel) int {
			var r, g, b, a wide.F32x8
			px := mem.pixelBytes(k.dx, k.dy, k.tail, f.bpp)
			for i := 0; i < k.tail; i++ {
				r[i], g[i], b[i], a[i] = f.load(px[i*f.bpp:])
			}
			if dst {
				k.DR, k.DG, k.DB, k.DA = r, g, b, a
			} else {
				k.R, k.G, k.B, k.A = r, g, b, a
			}
			return 1
		}
	}
}

// bindStore writes the source registers of the first tail lanes.
func bindStore(f *pixelFormat) highpBinder {
	return func(op Op, ctx any) highpStage {
		mem := contextAs[*MemoryCtx](op, ctx)
		return func(k *highpKernel) int {
			px := mem.pixelBytes(k.dx, k.dy, k.tail, f.bpp)
			for i := 0; i < k.tail; i++ {
				f.store(px[i*f.bpp:], k.R[i], k.G[i], k.B[i], k.A[i])
			}
			return 1
		}
	}
}
