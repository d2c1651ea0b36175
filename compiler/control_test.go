package compiler

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/rasterpipe"
)

var (
	vX      = SlotRange{Index: 0, Count: 1}
	vResult = SlotRange{Index: 1, Count: 1}
)

func laneIndex(mem SlotData) {
	fillSlot(mem, vX.Index, func(l int) float32 { return float32(l) })
}

// pushLessThan pushes x < limit.
func pushLessThan(b *Builder, limit float32) {
	b.PushSlots(vX)
	b.PushLiteralF(limit)
	b.BinaryOp(rasterpipe.OpCmpLTNFloats, 1)
}

func TestIfElse(t *testing.T) {
	var b Builder
	b.InitLaneMasks()
	b.PushConditionMask()
	pushLessThan(&b, 4)
	b.MergeConditionMask()
	{
		b.PushSlots(vX)
		b.PushLiteralF(2)
		b.BinaryOp(rasterpipe.OpMulNFloats, 1)
		b.PopSlots(vResult)
	}
	b.MergeInvConditionMask()
	{
		b.PushSlots(vX)
		b.PushLiteralF(100)
		b.BinaryOp(rasterpipe.OpAddNFloats, 1)
		b.PopSlots(vResult)
	}
	b.DiscardStack(1)
	b.PopConditionMask()
	b.PushLiteralF(9)
	b.PopSlots(SlotRange{Index: 2, Count: 1})

	mem := bindAndRun(t, finish(t, &b, 3, 0), nil, laneIndex)
	want := []float32{0, 2, 4, 6, 104, 105, 106, 107}
	if diff := cmp.Diff(want, slotLanes(mem, vResult.Index)); diff != "" {
		t.Errorf("result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(splat(9), slotLanes(mem, 2)); diff != "" {
		t.Errorf("store after the condition mask was restored (-want +got):\n%s", diff)
	}
}

func TestSelect(t *testing.T) {
	var b Builder
	b.InitLaneMasks()
	b.PushConditionMask()
	pushLessThan(&b, 4)
	b.MergeConditionMask()
	b.PushLiteralF(10)
	b.PushLiteralF(20)
	b.Select(1)
	b.PopSlotsUnmasked(vResult)
	b.DiscardStack(1)
	b.PopConditionMask()

	mem := bindAndRun(t, finish(t, &b, 2, 0), nil, laneIndex)
	want := []float32{20, 20, 20, 20, 10, 10, 10, 10}
	if diff := cmp.Diff(want, slotLanes(mem, vResult.Index)); diff != "" {
		t.Errorf("select (-want +got):\n%s", diff)
	}
}

func TestLoop(t *testing.T) {
	counter := SlotRange{Index: 1, Count: 1}
	acc := SlotRange{Index: 2, Count: 1}

	var b Builder
	b.InitLaneMasks()
	b.ZeroSlotsUnmasked(SlotRange{Index: 1, Count: 2})
	b.PushLoopMask()
	top, exit := b.NextLabelID(), b.NextLabelID()
	b.Label(top)
	{
		// while (counter < x)
		b.PushSlots(counter)
		b.PushSlots(vX)
		b.BinaryOp(rasterpipe.OpCmpLTNFloats, 1)
		b.MergeLoopMask()
		b.DiscardStack(1)
		b.BranchIfNoActiveLanes(exit)

		b.PushSlots(counter)
		b.PushLiteralF(1)
		b.BinaryOp(rasterpipe.OpAddNFloats, 1)
		b.PopSlots(counter)
		b.PushSlots(acc)
		b.PushLiteralF(2)
		b.BinaryOp(rasterpipe.OpAddNFloats, 1)
		b.PopSlots(acc)
		b.Jump(top)
	}
	b.Label(exit)
	b.PopLoopMask()

	prog := finish(t, &b, 3, 0)
	mem := bindAndRun(t, prog, nil, laneIndex)
	want := []float32{0, 2, 4, 6, 8, 10, 12, 14}
	if diff := cmp.Diff(want, slotLanes(mem, acc.Index)); diff != "" {
		t.Errorf("accumulator (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(slotLanes(mem, vX.Index), slotLanes(mem, counter.Index)); diff != "" {
		t.Errorf("counter (-want +got):\n%s", diff)
	}
}

func TestLoopBreakAndContinue(t *testing.T) {
	// for i := 0; i < 8; i++ { if i == 2 { continue }; if x <= i { break }; acc++ }
	i := SlotRange{Index: 1, Count: 1}
	acc := SlotRange{Index: 2, Count: 1}
	cont := SlotRange{Index: 3, Count: 1}

	ifThenMaskOff := func(b *Builder, test func(), record bool) {
		b.PushConditionMask()
		test()
		b.MergeConditionMask()
		if record {
			b.CopyStackToSlots(cont)
		}
		b.MaskOffLoopMask()
		b.DiscardStack(1)
		b.PopConditionMask()
	}

	var b Builder
	b.InitLaneMasks()
	b.ZeroSlotsUnmasked(SlotRange{Index: 1, Count: 2})
	b.PushLoopMask()
	top := b.NextLabelID()
	b.Label(top)
	{
		b.ZeroSlotsUnmasked(cont)
		ifThenMaskOff(&b, func() {
			b.PushSlots(i)
			b.PushLiteralF(2)
			b.BinaryOp(rasterpipe.OpCmpEQNFloats, 1)
		}, true)
		ifThenMaskOff(&b, func() {
			b.PushSlots(vX)
			b.PushSlots(i)
			b.BinaryOp(rasterpipe.OpCmpLENFloats, 1)
		}, false)

		b.PushSlots(acc)
		b.PushLiteralF(1)
		b.BinaryOp(rasterpipe.OpAddNFloats, 1)
		b.PopSlots(acc)

		b.ReenableLoopMask(cont)
		b.PushSlots(i)
		b.PushLiteralF(1)
		b.BinaryOp(rasterpipe.OpAddNFloats, 1)
		b.PopSlots(i)

		b.PushSlots(i)
		b.PushLiteralF(8)
		b.BinaryOp(rasterpipe.OpCmpLTNFloats, 1)
		b.MergeLoopMask()
		b.DiscardStack(1)
		b.BranchIfAnyActiveLanes(top)
	}
	b.PopLoopMask()

	mem := bindAndRun(t, finish(t, &b, 4, 0), nil, laneIndex)
	// Lane x counts the i below x other than 2.
	want := []float32{0, 1, 2, 2, 3, 4, 5, 6}
	if diff := cmp.Diff(want, slotLanes(mem, acc.Index)); diff != "" {
		t.Errorf("accumulator (-want +got):\n%s", diff)
	}
}

func TestEarlyReturn(t *testing.T) {
	var b Builder
	b.InitLaneMasks()
	b.PushLiteralF(1)
	b.PopSlots(vResult)
	b.PushReturnMask()
	b.PushConditionMask()
	pushLessThan(&b, 3)
	b.MergeConditionMask()
	b.MaskOffReturnMask()
	b.DiscardStack(1)
	b.PopConditionMask()
	b.PushLiteralF(5)
	b.PopSlots(vResult)
	b.PopReturnMask()
	b.PushLiteralF(8)
	b.PopSlots(SlotRange{Index: 2, Count: 1})

	mem := bindAndRun(t, finish(t, &b, 3, 0), nil, laneIndex)
	want := []float32{1, 1, 1, 5, 5, 5, 5, 5}
	if diff := cmp.Diff(want, slotLanes(mem, vResult.Index)); diff != "" {
		t.Errorf("result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(splat(8), slotLanes(mem, 2)); diff != "" {
		t.Errorf("store after the return mask was restored (-want +got):\n%s", diff)
	}
}

func TestBranchesFollowActiveLanes(t *testing.T) {
	tests := []struct {
		name   string
		test   int32
		branch func(b *Builder, id int)
		taken  bool
	}{
		{"any with no lanes", 0, (*Builder).BranchIfAnyActiveLanes, false},
		{"any with all lanes", -1, (*Builder).BranchIfAnyActiveLanes, true},
		{"no with no lanes", 0, (*Builder).BranchIfNoActiveLanes, true},
		{"no with all lanes", -1, (*Builder).BranchIfNoActiveLanes, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Builder
			b.InitLaneMasks()
			b.PushConditionMask()
			b.PushLiteralI(tt.test)
			b.MergeConditionMask()
			skip := b.NextLabelID()
			tt.branch(&b, skip)
			b.PushLiteralF(7)
			b.PopSlotsUnmasked(vX)
			b.Label(skip)
			b.DiscardStack(1)
			b.PopConditionMask()

			mem := bindAndRun(t, finish(t, &b, 1, 0), nil, nil)
			want := float32(7)
			if tt.taken {
				want = 0
			}
			if got := mem.Value(vX.Index, 0); got != want {
				t.Errorf("v0 = %v, want %v", got, want)
			}
		})
	}
}

func TestJumpOver(t *testing.T) {
	tail := func(b *Builder) {
		b.PushSlots(vX)
		b.PushLiteralF(10)
		b.BinaryOp(rasterpipe.OpAddNFloats, 1)
		b.PopSlotsUnmasked(vResult)
	}

	var with Builder
	with.PushLiteralF(1)
	with.PopSlotsUnmasked(vX)
	over := with.NextLabelID()
	with.Jump(over)
	with.PushLiteralF(2)
	with.PopSlotsUnmasked(vX)
	with.Label(over)
	tail(&with)

	var without Builder
	without.PushLiteralF(1)
	without.PopSlotsUnmasked(vX)
	tail(&without)

	trace := NewDebugTrace()
	jumped := finish(t, &with, 2, 0, WithoutOptimization(), WithDebugTrace(trace))
	a := bindAndRun(t, jumped, nil, nil)
	b := bindAndRun(t, finish(t, &without, 2, 0), nil, nil)
	if diff := cmp.Diff(b.Values, a.Values); diff != "" {
		t.Errorf("jumped program differs (-straight +jumped):\n%s", diff)
	}
	if got := a.Value(vResult.Index, 0); got != 11 {
		t.Errorf("result = %v, want 11", got)
	}

	j := slices.Index(jumped.Ops(), rasterpipe.OpJump)
	if trace.Hits(j) != 1 || trace.Hits(j+1) != 0 || trace.Hits(j+2) != 0 || trace.Hits(j+3) != 1 {
		t.Errorf("hits around the jump = %d %d %d %d, want 1 0 0 1",
			trace.Hits(j), trace.Hits(j+1), trace.Hits(j+2), trace.Hits(j+3))
	}

	// The optimizer removes the skipped code and then the jump itself.
	optimized := finish(t, &with, 2, 0)
	if slices.Contains(optimized.Ops(), rasterpipe.OpJump) {
		t.Errorf("optimized stages still jump: %v", optimized.Ops())
	}
}
