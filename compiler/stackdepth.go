package compiler

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/gogpu/rasterpipe"
)

// stackLayout places every temporary stack in one slot array.
type stackLayout struct {
	depths map[int]int // maximum depth per stack
	bases  map[int]int // first slot of each stack
	total  int
}

// maskPushes maps each mask pop to its push.
var maskPushes = map[BuilderOp]BuilderOp{
	OpPopConditionMask: OpPushConditionMask,
	OpPopLoopMask:      OpPushLoopMask,
	OpPopReturnMask:    OpPushReturnMask,
}

// stackEffect returns how many slots in reads below the top of the current
// stack and how much it changes the stack depth.
func stackEffect(in Instruction) (reads, delta int) {
	switch in.Op {
	case OpPushLiteral, OpPushConditionMask, OpPushLoopMask, OpPushReturnMask:
		return 0, 1
	case OpPushSlots, OpPushUniform, OpPushZeros:
		return 0, in.ImmA
	case OpPushClone:
		return in.ImmB, in.ImmA
	case OpCopyStackToSlots, OpCopyStackToSlotsUnmasked:
		return in.ImmB, 0
	case OpDiscardStack:
		return in.ImmA, -in.ImmA
	case OpSelect:
		return 2 * in.ImmA, -in.ImmA
	case OpPopConditionMask, OpPopLoopMask, OpPopReturnMask:
		return 1, -1
	}

	op, ok := in.Op.Native()
	if !ok {
		return 0, 0
	}
	switch op {
	case rasterpipe.OpMergeConditionMask, rasterpipe.OpMergeInvConditionMask:
		return 2, 0
	case rasterpipe.OpMergeLoopMask:
		return 1, 0
	}
	fam, ok := rasterpipe.FamilyOf(op)
	if !ok {
		return 0, 0
	}
	n := in.ImmA
	switch fam.Arity {
	case 1:
		return n, 0
	case 2:
		return 2 * n, -n
	case 3:
		return 3 * n, -2 * n
	}
	if fam.Contains(rasterpipe.OpSwizzle1) {
		return in.ImmA, fixedWidth(fam, op) - in.ImmA
	}
	// Slot to slot copies leave the stacks alone.
	return 0, 0
}

// fixedWidth returns the slot count of a fixed family member.
func fixedWidth(fam *rasterpipe.Family, op rasterpipe.Op) int {
	return slices.Index(fam.Fixed[:], op) + 1
}

// analyzeStacks walks the instructions once, tracking the depth of every
// temporary stack. It reports reads past the bottom of a stack and mask
// pops that do not match the latest push.
func analyzeStacks(instrs []Instruction) (stackLayout, error) {
	type openMask struct {
		push  BuilderOp
		stack int
		at    int
	}
	var (
		cur   int
		depth = map[int]int{0: 0}
		peak  = map[int]int{0: 0}
		masks []openMask
	)
	for i, in := range instrs {
		switch in.Op {
		case OpSetCurrentStack:
			cur = in.ImmA
			if _, ok := depth[cur]; !ok {
				depth[cur], peak[cur] = 0, 0
			}
			continue
		case OpPushConditionMask, OpPushLoopMask, OpPushReturnMask:
			masks = append(masks, openMask{push: in.Op, stack: cur, at: i})
		case OpPopConditionMask, OpPopLoopMask, OpPopReturnMask:
			if len(masks) == 0 {
				return stackLayout{}, fmt.Errorf("%w: %v at instruction %d without a push", ErrMaskNesting, in.Op, i)
			}
			top := masks[len(masks)-1]
			if top.push != maskPushes[in.Op] || top.stack != cur {
				return stackLayout{}, fmt.Errorf("%w: %v at instruction %d closes %v from instruction %d",
					ErrMaskNesting, in.Op, i, top.push, top.at)
			}
			masks = masks[:len(masks)-1]
		}

		reads, delta := stackEffect(in)
		if reads > depth[cur] {
			return stackLayout{}, fmt.Errorf("%w: %v at instruction %d needs %d slots, stack %d holds %d",
				ErrStackUnderflow, in.Op, i, reads, cur, depth[cur])
		}
		depth[cur] += delta
		peak[cur] = max(peak[cur], depth[cur])
	}
	if len(masks) > 0 {
		open := masks[len(masks)-1]
		return stackLayout{}, fmt.Errorf("%w: %v at instruction %d is never popped", ErrMaskNesting, open.push, open.at)
	}

	layout := stackLayout{depths: peak, bases: make(map[int]int, len(peak))}
	ids := lo.Keys(peak)
	slices.Sort(ids)
	for _, id := range ids {
		layout.bases[id] = layout.total
		layout.total += peak[id]
	}
	return layout, nil
}
