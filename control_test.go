package rasterpipe

import (
	"math"
	"runtime"
	"testing"
)

// branchProgram stores 1 to out when the branch is taken and 0 otherwise.
func branchProgram(op Op, setup func(p *Pipeline)) []float32 {
	out := make([]float32, HighpStride)
	p := New()
	setup(p)
	p.Append(OpImmediateF, math.Float32bits(1))
	p.Append(op, 2)
	p.Append(OpImmediateF, uint32(0))
	p.Append(OpStoreUnmasked, out)
	p.Run(0, 0, HighpStride, 1)
	return out
}

func TestBranchOnActiveLanes(t *testing.T) {
	for _, mp := range maskPatterns {
		var anyOn bool
		for _, on := range mp.lanes {
			anyOn = anyOn || on
		}
		setup := func(p *Pipeline) { withConditionMask(p, mp.lanes) }

		t.Run(mp.name, func(t *testing.T) {
			if got := branchProgram(OpBranchIfAnyActiveLanes, setup)[0] == 1; got != anyOn {
				t.Errorf("branch_if_any_active_lanes taken = %v, want %v", got, anyOn)
			}
			if got := branchProgram(OpBranchIfNoActiveLanes, setup)[0] == 1; got != !anyOn {
				t.Errorf("branch_if_no_active_lanes taken = %v, want %v", got, !anyOn)
			}
		})
	}
}

func TestBranchUsesAllMasks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Pipeline)
	}{
		{"before init", func(*Pipeline) {}},
		{"loop off", func(p *Pipeline) {
			p.Append(OpInitLaneMasks, nil)
			p.Append(OpLoadLoopMask, maskSlot([HighpStride]bool{}))
		}},
		{"return off", func(p *Pipeline) {
			p.Append(OpInitLaneMasks, nil)
			p.Append(OpLoadReturnMask, maskSlot([HighpStride]bool{}))
		}},
		{"condition and loop disjoint", func(p *Pipeline) {
			withConditionMask(p, [HighpStride]bool{true, false, true, false, true, false, true, false})
			p.Append(OpLoadLoopMask, maskSlot([HighpStride]bool{false, true, false, true, false, true, false, true}))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if branchProgram(OpBranchIfAnyActiveLanes, tt.setup)[0] == 1 {
				t.Error("branch_if_any_active_lanes taken with no active lanes")
			}
			if branchProgram(OpBranchIfNoActiveLanes, tt.setup)[0] != 1 {
				t.Error("branch_if_no_active_lanes not taken with no active lanes")
			}
		})
	}
}

// TestJumpOverStage compares a program that jumps over a stage with the
// same program without that stage.
func TestJumpOverStage(t *testing.T) {
	build := func(withJump bool) []float32 {
		out := make([]float32, HighpStride)
		p := New()
		p.Append(OpImmediateF, math.Float32bits(3))
		if withJump {
			p.Append(OpJump, 2)
			p.Append(OpImmediateF, math.Float32bits(99))
		}
		p.Append(OpStoreUnmasked, out)
		p.Run(0, 0, 4, 1)
		return out
	}

	jumped, plain := build(true), build(false)
	for i := range plain {
		if jumped[i] != plain[i] {
			t.Errorf("lane %d = %v, want %v", i, jumped[i], plain[i])
		}
	}
}

// TestBackwardBranchLoop runs "while x < limit { x++ }" with a per-lane
// limit, using the loop mask to retire finished lanes.
func TestBackwardBranchLoop(t *testing.T) {
	x := make([]float32, HighpStride)
	one := splatSlots(1, func(_, _ int) float32 { return 1 })
	limit := splatSlots(1, func(_, i int) float32 { return float32(i) })
	scratch := make([]float32, 2*HighpStride)
	s0, s1 := scratch[:HighpStride], scratch[HighpStride:]

	p := New()
	p.Append(OpInitLaneMasks, nil)                                  // 0
	p.Append(OpCopySlotUnmasked, &BinaryOpCtx{Dst: s0, Src: x})     // 1
	p.Append(OpCopySlotUnmasked, &BinaryOpCtx{Dst: s1, Src: limit}) // 2
	p.Append(OpCmpLTFloat, scratch)                                 // 3
	p.Append(OpMergeLoopMask, s0)                                   // 4
	p.Append(OpBranchIfNoActiveLanes, 6)                            // 5
	p.Append(OpCopySlotUnmasked, &BinaryOpCtx{Dst: s0, Src: x})     // 6
	p.Append(OpCopySlotUnmasked, &BinaryOpCtx{Dst: s1, Src: one})   // 7
	p.Append(OpAddFloat, scratch)                                   // 8
	p.Append(OpCopySlotMasked, &BinaryOpCtx{Dst: x, Src: s0})       // 9
	p.Append(OpJump, -9)                                            // 10
	p.Run(0, 0, HighpStride, 1)

	for i, v := range x {
		if v != float32(i) {
			t.Errorf("lane %d = %v, want %d", i, v, i)
		}
	}
}

func TestMergeConditionMask(t *testing.T) {
	saved := [HighpStride]bool{true, true, false, false, true, true, false, false}
	test := [HighpStride]bool{true, false, true, false, true, false, true, false}

	for _, invert := range []bool{false, true} {
		op := OpMergeConditionMask
		if invert {
			op = OpMergeInvConditionMask
		}
		slots := append(maskSlot(saved), maskSlot(test)...)
		out := make([]float32, HighpStride)

		p := New()
		p.Append(OpInitLaneMasks, nil)
		p.Append(op, slots)
		p.Append(OpStoreConditionMask, out)
		p.Run(0, 0, HighpStride, 1)

		for i := range out {
			want := saved[i] && test[i]
			if invert {
				want = saved[i] && !test[i]
			}
			if got := f2i(out[i]) == -1; got != want {
				t.Errorf("%v lane %d = %v, want %v", op, i, got, want)
			}
			if out[i] != 0 && f2i(out[i]) != -1 {
				t.Errorf("%v lane %d = %#x, want 0 or all bits set", op, i, f2u(out[i]))
			}
		}
	}
}

func TestLoopAndReturnMasks(t *testing.T) {
	pattern := [HighpStride]bool{true, false, false, true, true, false, true, false}
	loop := make([]float32, HighpStride)
	ret := make([]float32, HighpStride)
	reenabled := make([]float32, HighpStride)

	p := New()
	withConditionMask(p, pattern)
	p.Append(OpMaskOffLoopMask, nil)
	p.Append(OpStoreLoopMask, loop)
	p.Append(OpMaskOffReturnMask, nil)
	p.Append(OpStoreReturnMask, ret)
	p.Append(OpReenableLoopMask, maskSlot(pattern))
	p.Append(OpStoreLoopMask, reenabled)
	p.Run(0, 0, 6, 1)

	for i := 0; i < HighpStride; i++ {
		inTail := i < 6
		if got, want := loop[i] != 0, inTail && !pattern[i]; got != want {
			t.Errorf("loop lane %d = %v, want %v", i, got, want)
		}
		// Active lanes are gone after mask_off_loop_mask, so the return
		// mask keeps every lane in the tail.
		if got := ret[i] != 0; got != inTail {
			t.Errorf("return lane %d = %v, want %v", i, got, inTail)
		}
		if got, want := reenabled[i] != 0, inTail || pattern[i]; got != want {
			t.Errorf("reenabled lane %d = %v, want %v", i, got, want)
		}
	}
}

func TestInitLaneMasksTail(t *testing.T) {
	out := make([]float32, HighpStride)
	p := New()
	p.Append(OpInitLaneMasks, nil)
	p.Append(OpStoreConditionMask, out)
	p.Run(0, 0, 3, 1)

	for i, v := range out {
		if got := v != 0; got != (i < 3) {
			t.Errorf("lane %d enabled = %v, want %v", i, got, i < 3)
		}
	}
}

func TestCallback(t *testing.T) {
	var seen []int
	ctx := &CallbackCtx{Fn: func(c *CallbackCtx, active int) {
		seen = append(seen, active)
		for i := 0; i < active; i++ {
			c.RGBA[4*i+0] = c.RGBA[4*i+3] * float32(i)
		}
	}}
	pixels := make([]byte, 4*10)

	p := New()
	p.AppendConstantColor(0, 0, 0, 0.1)
	p.Append(OpCallback, ctx)
	p.Append(OpStore8888, &MemoryCtx{Pixels: pixels, Stride: 10})
	p.Run(0, 0, 10, 1)

	if len(seen) != 2 || seen[0] != 8 || seen[1] != 2 {
		t.Errorf("callback saw active lanes %v, want [8 2]", seen)
	}
	// Pixel 3 is lane 3 of the first group: r = 0.1 * 3.
	if got := pixels[4*3]; got != 77 {
		t.Errorf("pixel 3 red = %d, want 77", got)
	}
}

// TestStackStaysBounded checks that stack depth inside a callback does not
// depend on how many stages ran before it.
func TestStackStaysBounded(t *testing.T) {
	depthAfter := func(stages int) int {
		var depth int
		ctx := &CallbackCtx{Fn: func(*CallbackCtx, int) {
			pcs := make([]uintptr, 4096)
			depth = runtime.Callers(0, pcs)
		}}
		p := New()
		for i := 0; i < stages; i++ {
			p.AppendStackRewind()
			p.Append(OpWhiteColor, nil)
		}
		p.Append(OpCallback, ctx)
		p.Run(0, 0, 1, 1)
		return depth
	}

	short, long := depthAfter(1), depthAfter(2000)
	if short == 0 || short != long {
		t.Errorf("stack depth in callback = %d after 2 stages, %d after 4000 stages", short, long)
	}
}
