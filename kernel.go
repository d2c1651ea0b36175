package rasterpipe

import (
	"sync"

	"github.com/gogpu/rasterpipe/internal/wide"
)

// Lane group widths of the two precisions.
const (
	HighpStride = wide.HighpLanes
	LowpStride  = wide.LowpLanes
)

// highpKernel is the register state of one high precision lane group.
type highpKernel struct {
	wide.FloatState
	cond, loop, ret wide.I32x8
	active          wide.I32x8 // cond & loop & ret

	dx, dy int
	tail   int // lanes in this group that map to pixels
}

func (k *highpKernel) reset(dx, dy, tail int) {
	*k = highpKernel{dx: dx, dy: dy, tail: tail}
}

// updateActive must follow every mask mutation.
func (k *highpKernel) updateActive() {
	k.active = k.cond.And(k.loop).And(k.ret)
}

// Register indices: 0..3 are r, g, b, a and 4..7 are dr, dg, db, da.
const (
	regR  = 0
	regDR = 4
)

// register returns the register with index i.
func (k *highpKernel) register(i int) *wide.F32x8 {
	switch i {
	case 0:
		return &k.R
	case 1:
		return &k.G
	case 2:
		return &k.B
	case 3:
		return &k.A
	case 4:
		return &k.DR
	case 5:
		return &k.DG
	case 6:
		return &k.DB
	default:
		return &k.DA
	}
}

// highpStage runs one stage and returns the offset to the next one.
type highpStage func(k *highpKernel) int

// highpBinder validates a context and returns the bound stage.
type highpBinder func(op Op, ctx any) highpStage

var highpBinders [NumOps]highpBinder

// lowpKernel is the register state of one low precision lane group.
type lowpKernel struct {
	wide.BatchState
	dx, dy int
	tail   int
}

func (k *lowpKernel) reset(dx, dy, tail int) {
	*k = lowpKernel{dx: dx, dy: dy, tail: tail}
}

func (k *lowpKernel) reg(ch int) *wide.U16x16 {
	switch ch {
	case 0:
		return &k.SR
	case 1:
		return &k.SG
	case 2:
		return &k.SB
	default:
		return &k.SA
	}
}

type lowpStage func(k *lowpKernel) int

type lowpBinder func(op Op, ctx any) lowpStage

var lowpBinders [NumOps]lowpBinder

// LowpSupported reports whether op has a low precision implementation.
func (op Op) LowpSupported() bool {
	return op.Valid() && lowpBinders[op] != nil
}

// simple wraps a context-free register operation as a highp binder.
func simple(fn func(k *highpKernel)) highpBinder {
	return func(Op, any) highpStage {
		return func(k *highpKernel) int {
			fn(k)
			return 1
		}
	}
}

func simpleLowp(fn func(k *lowpKernel)) lowpBinder {
	return func(Op, any) lowpStage {
		return func(k *lowpKernel) int {
			fn(k)
			return 1
		}
	}
}

// Kernels escape through the stage closures; pooling them keeps Run free
// of allocations.
var (
	highpKernels = sync.Pool{New: func() any { return new(highpKernel) }}
	lowpKernels  = sync.Pool{New: func() any { return new(lowpKernel) }}
)

func runHighp(fns []highpStage, ops []Op, tracer Tracer, x, y, width, height int) {
	k := highpKernels.Get().(*highpKernel)
	defer highpKernels.Put(k)
	for dy := y; dy < y+height; dy++ {
		for dx := x; dx < x+width; dx += HighpStride {
			k.reset(dx, dy, min(HighpStride, x+width-dx))
			if tracer == nil {
				for i := 0; i < len(fns); {
					i += fns[i](k)
				}
				continue
			}
			for i := 0; i < len(fns); {
				tracer.TraceStage(i, ops[i], k.active.Count())
				i += fns[i](k)
			}
		}
	}
}

func runLowp(fns []lowpStage, ops []Op, tracer Tracer, x, y, width, height int) {
	k := lowpKernels.Get().(*lowpKernel)
	defer lowpKernels.Put(k)
	for dy := y; dy < y+height; dy++ {
		for dx := x; dx < x+width; dx += LowpStride {
			k.reset(dx, dy, min(LowpStride, x+width-dx))
			for i := 0; i < len(fns); {
				if tracer != nil {
					tracer.TraceStage(i, ops[i], k.tail)
				}
				i += fns[i](k)
			}
		}
	}
}
