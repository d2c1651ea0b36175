package compiler

import (
	"fmt"

	"github.com/gogpu/rasterpipe"
)

// Slot indexes one scalar of the value, uniform or stack storage.
type Slot = int

// NA marks an unused slot operand.
const NA Slot = -1

// SlotRange is a contiguous run of slots holding a scalar, vector or matrix.
type SlotRange struct {
	Index Slot
	Count int
}

// BuilderOp identifies an instruction. Values below rasterpipe.NumOps name
// native stages; the rest are rewritten into native stages when the
// program is lowered.
type BuilderOp uint16

// Builder-only ops.
const (
	// OpPushLiteral pushes one slot; ImmA holds the 32-bit pattern.
	OpPushLiteral BuilderOp = BuilderOp(rasterpipe.NumOps) + iota
	// OpPushSlots pushes ImmA value slots starting at SlotA.
	OpPushSlots
	// OpPushUniform pushes ImmA uniforms starting at SlotA.
	OpPushUniform
	// OpPushZeros pushes ImmA zeros.
	OpPushZeros
	// OpPushClone pushes ImmA slots copied from ImmB slots below the top.
	OpPushClone
	// OpCopyStackToSlots copies ImmA slots starting ImmB below the top into
	// the value slots at SlotA, respecting the execution mask.
	OpCopyStackToSlots
	// OpCopyStackToSlotsUnmasked is OpCopyStackToSlots for every lane.
	OpCopyStackToSlotsUnmasked
	// OpDiscardStack drops ImmA slots.
	OpDiscardStack
	// OpSelect overlays the top ImmA slots onto the ImmA slots below them
	// in active lanes, then drops the top.
	OpSelect
	OpPushConditionMask
	OpPopConditionMask
	OpPushLoopMask
	OpPopLoopMask
	OpPushReturnMask
	OpPopReturnMask
	// OpSetCurrentStack makes stack ImmA the target of stack operations.
	OpSetCurrentStack
	// OpLabel places label ImmA.
	OpLabel

	opBuilderEnd
)

var builderOpNames = [...]string{
	"push_literal",
	"push_slots",
	"push_uniform",
	"push_zeros",
	"push_clone",
	"copy_stack_to_slots",
	"copy_stack_to_slots_unmasked",
	"discard_stack",
	"select",
	"push_condition_mask",
	"pop_condition_mask",
	"push_loop_mask",
	"pop_loop_mask",
	"push_return_mask",
	"pop_return_mask",
	"set_current_stack",
	"label",
}

// Native returns the BuilderOp for a native stage.
func Native(op rasterpipe.Op) BuilderOp {
	if !op.Valid() {
		panic(fmt.Sprintf("compiler: %v is not a native stage", op))
	}
	return BuilderOp(op)
}

// Native returns the stage op reports, if it names one.
func (op BuilderOp) Native() (rasterpipe.Op, bool) {
	if int(op) < rasterpipe.NumOps {
		return rasterpipe.Op(op), true
	}
	return 0, false
}

func (op BuilderOp) String() string {
	if n, ok := op.Native(); ok {
		return n.String()
	}
	if op < opBuilderEnd {
		return builderOpNames[op-OpPushLiteral]
	}
	return fmt.Sprintf("BuilderOp(%d)", uint16(op))
}

// Instruction is one recorded operation. Unused slot operands are NA.
type Instruction struct {
	Op                  BuilderOp
	SlotA, SlotB, SlotC Slot
	ImmA, ImmB          int
}

func inst(op BuilderOp, imms ...int) Instruction {
	in := Instruction{Op: op, SlotA: NA, SlotB: NA, SlotC: NA}
	if len(imms) > 0 {
		in.ImmA = imms[0]
	}
	if len(imms) > 1 {
		in.ImmB = imms[1]
	}
	return in
}

func (in Instruction) String() string {
	s := in.Op.String()
	for _, slot := range [3]Slot{in.SlotA, in.SlotB, in.SlotC} {
		if slot != NA {
			s += fmt.Sprintf(" s%d", slot)
		}
	}
	if in.ImmA != 0 || in.ImmB != 0 {
		s += fmt.Sprintf(" %d", in.ImmA)
	}
	if in.ImmB != 0 {
		s += fmt.Sprintf(" %d", in.ImmB)
	}
	return s
}

// isBranch reports whether op transfers control to the label in ImmA.
func (op BuilderOp) isBranch() bool {
	switch op {
	case BuilderOp(rasterpipe.OpJump),
		BuilderOp(rasterpipe.OpBranchIfAnyActiveLanes),
		BuilderOp(rasterpipe.OpBranchIfNoActiveLanes):
		return true
	}
	return false
}
