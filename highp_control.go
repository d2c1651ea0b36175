package rasterpipe

import "github.com/gogpu/rasterpipe/internal/wide"

func init() {
	highpBinders[OpStackRewind] = simple(func(*highpKernel) {})
	highpBinders[OpCallback] = bindCallback
	highpBinders[OpJump] = bindJump
	highpBinders[OpBranchIfAnyActiveLanes] = bindBranch(true)
	highpBinders[OpBranchIfNoActiveLanes] = bindBranch(false)

	highpBinders[OpInitLaneMasks] = simple(func(k *highpKernel) {
		m := wide.LaneMask(k.tail)
		k.cond, k.loop, k.ret = m, m, m
		k.updateActive()
	})

	highpBinders[OpLoadConditionMask] = bindLoadMask(func(k *highpKernel) *wide.I32x8 { return &k.cond })
	highpBinders[OpStoreConditionMask] = bindStoreMask(func(k *highpKernel) *wide.I32x8 { return &k.cond })
	highpBinders[OpLoadLoopMask] = bindLoadMask(func(k *highpKernel) *wide.I32x8 { return &k.loop })
	highpBinders[OpStoreLoopMask] = bindStoreMask(func(k *highpKernel) *wide.I32x8 { return &k.loop })
	highpBinders[OpLoadReturnMask] = bindLoadMask(func(k *highpKernel) *wide.I32x8 { return &k.ret })
	highpBinders[OpStoreReturnMask] = bindStoreMask(func(k *highpKernel) *wide.I32x8 { return &k.ret })

	highpBinders[OpMergeConditionMask] = bindMergeCondition(false)
	highpBinders[OpMergeInvConditionMask] = bindMergeCondition(true)

	highpBinders[OpMaskOffLoopMask] = simple(func(k *highpKernel) {
		k.loop = k.loop.AndNot(k.active)
		k.updateActive()
	})
	highpBinders[OpReenableLoopMask] = bindSlotMask(func(k *highpKernel, m wide.I32x8) {
		k.loop = k.loop.Or(m)
	})
	highpBinders[OpMergeLoopMask] = bindSlotMask(func(k *highpKernel, m wide.I32x8) {
		k.loop = k.loop.And(m)
	})
	highpBinders[OpMaskOffReturnMask] = simple(func(k *highpKernel) {
		k.ret = k.ret.AndNot(k.active)
		k.updateActive()
	})
}

func bindJump(op Op, ctx any) highpStage {
	off := branchOffset(op, ctx)
	return func(*highpKernel) int { return off }
}

func bindBranch(onAny bool) highpBinder {
	return func(op Op, ctx any) highpStage {
		off := branchOffset(op, ctx)
		return func(k *highpKernel) int {
			if k.active.Any() == onAny {
				return off
			}
			return 1
		}
	}
}

func bindCallback(op Op, ctx any) highpStage {
	c := contextAs[*CallbackCtx](op, ctx)
	if c.Fn == nil {
		panic("rasterpipe: callback without function")
	}
	return func(k *highpKernel) int {
		for i := 0; i < HighpStride; i++ {
			c.RGBA[4*i+0] = k.R[i]
			c.RGBA[4*i+1] = k.G[i]
			c.RGBA[4*i+2] = k.B[i]
			c.RGBA[4*i+3] = k.A[i]
		}
		c.Fn(c, k.tail)
		for i := 0; i < HighpStride; i++ {
			k.R[i] = c.RGBA[4*i+0]
			k.G[i] = c.RGBA[4*i+1]
			k.B[i] = c.RGBA[4*i+2]
			k.A[i] = c.RGBA[4*i+3]
		}
		return 1
	}
}

func bindLoadMask(mask func(k *highpKernel) *wide.I32x8) highpBinder {
	return func(op Op, ctx any) highpStage {
		slot := slotRun(op, contextAs[[]float32](op, ctx), 1)
		return func(k *highpKernel) int {
			*mask(k) = loadSlot(slot).Bits()
			k.updateActive()
			return 1
		}
	}
}

func bindStoreMask(mask func(k *highpKernel) *wide.I32x8) highpBinder {
	return func(op Op, ctx any) highpStage {
		slot := slotRun(op, contextAs[[]float32](op, ctx), 1)
		return func(k *highpKernel) int {
			storeSlot(slot, mask(k).Float())
			return 1
		}
	}
}

// bindSlotMask binds a loop mask update that reads a mask from one slot.
func bindSlotMask(update func(k *highpKernel, m wide.I32x8)) highpBinder {
	return func(op Op, ctx any) highpStage {
		slot := slotRun(op, contextAs[[]float32](op, ctx), 1)
		return func(k *highpKernel) int {
			update(k, loadSlot(slot).Bits())
			k.updateActive()
			return 1
		}
	}
}

// bindMergeCondition reads two adjacent slots, the saved condition mask and
// a test result, and sets cond to saved & test (or saved &^ test).
func bindMergeCondition(invert bool) highpBinder {
	return func(op Op, ctx any) highpStage {
		slots := slotRun(op, contextAs[[]float32](op, ctx), 2)
		saved, test := slots[:HighpStride], slots[HighpStride:]
		return func(k *highpKernel) int {
			s, t := loadSlot(saved).Bits(), loadSlot(test).Bits()
			if invert {
				k.cond = s.AndNot(t)
			} else {
				k.cond = s.And(t)
			}
			k.updateActive()
			return 1
		}
	}
}
