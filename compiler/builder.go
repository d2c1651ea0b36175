package compiler

import (
	"fmt"
	"math"

	"github.com/gogpu/rasterpipe"
)

// Swizzle components selecting a constant instead of an input slot.
const (
	SwizzleZero int8 = -1
	SwizzleOne  int8 = -2
)

// Packed swizzle nibbles for the constant components.
const (
	swizzleNibbleZero = 0xE
	swizzleNibbleOne  = 0xF
)

// Builder records instructions for a Program. The zero value is ready to
// use. Each method appends one instruction, or a short fixed sequence for
// the composite helpers.
//
// Builder methods panic on arguments that can never be valid, such as a
// label that was not reserved or a slot range of the wrong size. Problems
// that need the whole program to detect are reported by Finish.
//
// The Builder is not safe for concurrent use.
type Builder struct {
	instrs    []Instruction
	numLabels int
}

// Instructions returns a copy of the recorded instructions.
func (b *Builder) Instructions() []Instruction {
	out := make([]Instruction, len(b.instrs))
	copy(out, b.instrs)
	return out
}

func (b *Builder) add(in Instruction) {
	b.instrs = append(b.instrs, in)
}

// NextLabelID reserves a label. Place it with Label and target it with
// Jump or one of the branches, in either order.
func (b *Builder) NextLabelID() int {
	id := b.numLabels
	b.numLabels++
	return id
}

func (b *Builder) checkLabel(id int) {
	if id < 0 || id >= b.numLabels {
		panic(fmt.Sprintf("compiler: label %d was not reserved", id))
	}
}

// Label places label id at the current position.
func (b *Builder) Label(id int) {
	b.checkLabel(id)
	b.add(inst(OpLabel, id))
}

// Jump transfers control to label id for every lane.
func (b *Builder) Jump(id int) {
	b.checkLabel(id)
	b.add(inst(BuilderOp(rasterpipe.OpJump), id))
}

// BranchIfAnyActiveLanes jumps to label id when at least one lane is active.
func (b *Builder) BranchIfAnyActiveLanes(id int) {
	b.checkLabel(id)
	b.add(inst(BuilderOp(rasterpipe.OpBranchIfAnyActiveLanes), id))
}

// BranchIfNoActiveLanes jumps to label id when no lane is active.
func (b *Builder) BranchIfNoActiveLanes(id int) {
	b.checkLabel(id)
	b.add(inst(BuilderOp(rasterpipe.OpBranchIfNoActiveLanes), id))
}

// InitLaneMasks enables every lane inside the region being run.
func (b *Builder) InitLaneMasks() {
	b.add(inst(BuilderOp(rasterpipe.OpInitLaneMasks)))
}

func (b *Builder) registerOp(op rasterpipe.Op, dst SlotRange, count int) {
	if dst.Count != count {
		panic(fmt.Sprintf("compiler: %v needs %d slots, got %d", op, count, dst.Count))
	}
	in := inst(BuilderOp(op))
	in.SlotA = dst.Index
	b.add(in)
}

// StoreSrcRG stores r and g into dst, which must hold two slots.
func (b *Builder) StoreSrcRG(dst SlotRange) { b.registerOp(rasterpipe.OpStoreSrcRG, dst, 2) }

// StoreSrc stores r, g, b and a into dst.
func (b *Builder) StoreSrc(dst SlotRange) { b.registerOp(rasterpipe.OpStoreSrc, dst, 4) }

// StoreDst stores dr, dg, db and da into dst.
func (b *Builder) StoreDst(dst SlotRange) { b.registerOp(rasterpipe.OpStoreDst, dst, 4) }

// LoadSrc loads r, g, b and a from src.
func (b *Builder) LoadSrc(src SlotRange) { b.registerOp(rasterpipe.OpLoadSrc, src, 4) }

// LoadDst loads dr, dg, db and da from src.
func (b *Builder) LoadDst(src SlotRange) { b.registerOp(rasterpipe.OpLoadDst, src, 4) }

// SetCurrentStack selects the temporary stack used by later instructions.
// Stack 0 is current at the start.
func (b *Builder) SetCurrentStack(stack int) {
	if stack < 0 {
		panic(fmt.Sprintf("compiler: negative stack index %d", stack))
	}
	b.add(inst(OpSetCurrentStack, stack))
}

// ImmediateF loads a float into the r register of every lane.
func (b *Builder) ImmediateF(v float32) {
	b.add(inst(BuilderOp(rasterpipe.OpImmediateF), int(int32(math.Float32bits(v))))) // #nosec G115
}

// ImmediateI loads an int into the r register.
func (b *Builder) ImmediateI(v int32) {
	b.add(inst(BuilderOp(rasterpipe.OpImmediateF), int(v)))
}

// ImmediateU loads a uint into the r register.
func (b *Builder) ImmediateU(v uint32) {
	b.add(inst(BuilderOp(rasterpipe.OpImmediateF), int(int32(v)))) // #nosec G115
}

// PushLiteralF pushes a float constant.
func (b *Builder) PushLiteralF(v float32) {
	b.add(inst(OpPushLiteral, int(int32(math.Float32bits(v))))) // #nosec G115
}

// PushLiteralI pushes an int constant.
func (b *Builder) PushLiteralI(v int32) {
	b.add(inst(OpPushLiteral, int(v)))
}

// PushLiteralU pushes a uint constant.
func (b *Builder) PushLiteralU(v uint32) {
	b.add(inst(OpPushLiteral, int(int32(v)))) // #nosec G115
}

// PushUniform pushes the uniforms in src.
func (b *Builder) PushUniform(src SlotRange) {
	if src.Count <= 0 {
		panic(fmt.Sprintf("compiler: push_uniform of %d slots", src.Count))
	}
	in := inst(OpPushUniform, src.Count)
	in.SlotA = src.Index
	b.add(in)
}

// PushZeros pushes count zero slots.
func (b *Builder) PushZeros(count int) {
	if count < 0 {
		panic(fmt.Sprintf("compiler: push_zeros of %d slots", count))
	}
	if count > 0 {
		b.add(inst(OpPushZeros, count))
	}
}

// PushSlots pushes the value slots in src. An empty range records nothing.
func (b *Builder) PushSlots(src SlotRange) {
	if src.Count < 0 {
		panic(fmt.Sprintf("compiler: push_slots of %d slots", src.Count))
	}
	if src.Count > 0 {
		in := inst(OpPushSlots, src.Count)
		in.SlotA = src.Index
		b.add(in)
	}
}

// PushClone pushes a copy of numSlots stack slots whose top lies
// offsetFromTop slots below the stack top.
func (b *Builder) PushClone(numSlots, offsetFromTop int) {
	if numSlots <= 0 || offsetFromTop < 0 {
		panic(fmt.Sprintf("compiler: push_clone of %d slots at offset %d", numSlots, offsetFromTop))
	}
	b.add(inst(OpPushClone, numSlots, numSlots+offsetFromTop))
}

// PushDuplicates pushes count copies of the single slot on the stack top.
func (b *Builder) PushDuplicates(count int) {
	if count < 0 {
		panic(fmt.Sprintf("compiler: push_duplicates of %d", count))
	}
	if count >= 3 {
		// Splat the top into four slots, then clone in fours.
		b.Swizzle(1, 0, 0, 0, 0)
		count -= 3
	}
	for ; count >= 4; count -= 4 {
		b.PushClone(4, 0)
	}
	switch count {
	case 3:
		b.Swizzle(1, 0, 0, 0, 0)
	case 2:
		b.Swizzle(1, 0, 0, 0)
	case 1:
		b.PushClone(1, 0)
	}
}

// CopyStackToSlots copies the top dst.Count stack slots into dst in active
// lanes. The stack is unchanged.
func (b *Builder) CopyStackToSlots(dst SlotRange) {
	b.CopyStackToSlotsAt(dst, dst.Count)
}

// CopyStackToSlotsAt is CopyStackToSlots reading the dst.Count slots that
// start offsetFromTop slots below the stack top.
func (b *Builder) CopyStackToSlotsAt(dst SlotRange, offsetFromTop int) {
	b.stackToSlots(OpCopyStackToSlots, dst, offsetFromTop)
}

// CopyStackToSlotsUnmasked copies the top dst.Count stack slots into dst
// in every lane.
func (b *Builder) CopyStackToSlotsUnmasked(dst SlotRange) {
	b.CopyStackToSlotsUnmaskedAt(dst, dst.Count)
}

// CopyStackToSlotsUnmaskedAt is the unmasked form of CopyStackToSlotsAt.
func (b *Builder) CopyStackToSlotsUnmaskedAt(dst SlotRange, offsetFromTop int) {
	b.stackToSlots(OpCopyStackToSlotsUnmasked, dst, offsetFromTop)
}

func (b *Builder) stackToSlots(op BuilderOp, dst SlotRange, offsetFromTop int) {
	if dst.Count <= 0 || offsetFromTop < dst.Count {
		panic(fmt.Sprintf("compiler: %v of %d slots at offset %d", op, dst.Count, offsetFromTop))
	}
	in := inst(op, dst.Count, offsetFromTop)
	in.SlotA = dst.Index
	b.add(in)
}

// DiscardStack drops count slots from the stack top.
func (b *Builder) DiscardStack(count int) {
	if count < 0 {
		panic(fmt.Sprintf("compiler: discard_stack of %d", count))
	}
	if count > 0 {
		b.add(inst(OpDiscardStack, count))
	}
}

// PopSlots copies the stack top into dst in active lanes and drops it.
func (b *Builder) PopSlots(dst SlotRange) {
	b.CopyStackToSlots(dst)
	b.DiscardStack(dst.Count)
}

// PopSlotsUnmasked copies the stack top into dst in every lane and drops it.
func (b *Builder) PopSlotsUnmasked(dst SlotRange) {
	b.CopyStackToSlotsUnmasked(dst)
	b.DiscardStack(dst.Count)
}

// Select merges the top two slots-wide entries into one: active lanes take
// the upper entry, inactive lanes keep the lower one.
func (b *Builder) Select(slots int) {
	if slots <= 0 {
		panic(fmt.Sprintf("compiler: select of %d slots", slots))
	}
	b.add(inst(OpSelect, slots))
}

// LoadUnmasked loads a value slot into r.
func (b *Builder) LoadUnmasked(slot Slot) { b.slotOp(rasterpipe.OpLoadUnmasked, slot) }

// StoreUnmasked stores r into a value slot in every lane.
func (b *Builder) StoreUnmasked(slot Slot) { b.slotOp(rasterpipe.OpStoreUnmasked, slot) }

// StoreMasked stores r into a value slot in active lanes.
func (b *Builder) StoreMasked(slot Slot) { b.slotOp(rasterpipe.OpStoreMasked, slot) }

func (b *Builder) slotOp(op rasterpipe.Op, slot Slot) {
	if slot < 0 {
		panic(fmt.Sprintf("compiler: %v of slot %d", op, slot))
	}
	in := inst(BuilderOp(op))
	in.SlotA = slot
	b.add(in)
}

// CopySlotsMasked copies src into dst in active lanes.
func (b *Builder) CopySlotsMasked(dst, src SlotRange) {
	b.slotCopy(rasterpipe.OpCopySlotMasked, dst, src)
}

// CopySlotsUnmasked copies src into dst in every lane.
func (b *Builder) CopySlotsUnmasked(dst, src SlotRange) {
	b.slotCopy(rasterpipe.OpCopySlotUnmasked, dst, src)
}

func (b *Builder) slotCopy(op rasterpipe.Op, dst, src SlotRange) {
	if dst.Count != src.Count || dst.Count <= 0 {
		panic(fmt.Sprintf("compiler: %v from %d slots into %d", op, src.Count, dst.Count))
	}
	in := inst(BuilderOp(op), dst.Count)
	in.SlotA, in.SlotB = dst.Index, src.Index
	b.add(in)
}

// ZeroSlotsUnmasked clears dst in every lane.
func (b *Builder) ZeroSlotsUnmasked(dst SlotRange) {
	if dst.Count <= 0 {
		panic(fmt.Sprintf("compiler: zero of %d slots", dst.Count))
	}
	in := inst(BuilderOp(rasterpipe.OpZeroSlotUnmasked), dst.Count)
	in.SlotA = dst.Index
	b.add(in)
}

// Swizzle consumes inputSlots stack slots and pushes one slot per
// component. A component is an input index or SwizzleZero or SwizzleOne.
func (b *Builder) Swizzle(inputSlots int, components ...int8) {
	if len(components) < 1 || len(components) > 4 {
		panic(fmt.Sprintf("compiler: swizzle of %d components", len(components)))
	}
	if isIdentityPrefix(components) && len(components) <= inputSlots {
		b.DiscardStack(inputSlots - len(components))
		return
	}
	packed := 0
	for i, c := range components {
		var nib int
		switch {
		case c == SwizzleZero:
			nib = swizzleNibbleZero
		case c == SwizzleOne:
			nib = swizzleNibbleOne
		case c >= 0 && int(c) < inputSlots && c < swizzleNibbleZero:
			nib = int(c)
		default:
			panic(fmt.Sprintf("compiler: swizzle component %d of %d inputs", c, inputSlots))
		}
		packed |= nib << (4 * i)
	}
	fam, _ := rasterpipe.FamilyOf(rasterpipe.OpSwizzle1)
	b.add(inst(BuilderOp(fam.Select(len(components))), inputSlots, packed))
}

func isIdentityPrefix(components []int8) bool {
	for i, c := range components {
		if int(c) != i {
			return false
		}
	}
	return true
}

// UnaryOp replaces the top slots stack slots with op applied to them. op
// may be any member of a unary family, such as rasterpipe.OpAbsFloat.
func (b *Builder) UnaryOp(op rasterpipe.Op, slots int) {
	b.add(inst(BuilderOp(familyKey(op, 1, slots)), slots))
}

// BinaryOp consumes two slots-wide entries and pushes op applied to them.
// op may be any member of a binary family, such as rasterpipe.OpAddNFloats.
func (b *Builder) BinaryOp(op rasterpipe.Op, slots int) {
	b.add(inst(BuilderOp(familyKey(op, 2, slots)), slots))
}

// TernaryOp consumes three slots-wide entries and pushes op applied to
// them.
func (b *Builder) TernaryOp(op rasterpipe.Op, slots int) {
	b.add(inst(BuilderOp(familyKey(op, 3, slots)), slots))
}

// familyKey returns the op recorded for a family: its N op when it has
// one, otherwise its single slot op.
func familyKey(op rasterpipe.Op, arity, slots int) rasterpipe.Op {
	fam, ok := rasterpipe.FamilyOf(op)
	if !ok || fam.Arity != arity {
		panic(fmt.Sprintf("compiler: %v is not an operation of arity %d", op, arity))
	}
	if slots <= 0 {
		panic(fmt.Sprintf("compiler: %v over %d slots", op, slots))
	}
	if fam.N != rasterpipe.OpNone {
		return fam.N
	}
	return fam.Fixed[0]
}

// PushConditionMask saves the condition mask on the stack.
func (b *Builder) PushConditionMask() { b.add(inst(OpPushConditionMask)) }

// PopConditionMask restores the condition mask from the stack.
func (b *Builder) PopConditionMask() { b.add(inst(OpPopConditionMask)) }

// MergeConditionMask sets the condition mask to the saved mask below the
// stack top AND the test on the stack top.
func (b *Builder) MergeConditionMask() {
	b.add(inst(BuilderOp(rasterpipe.OpMergeConditionMask)))
}

// MergeInvConditionMask sets the condition mask to the saved mask AND NOT
// the test, selecting the lanes of an else branch.
func (b *Builder) MergeInvConditionMask() {
	b.add(inst(BuilderOp(rasterpipe.OpMergeInvConditionMask)))
}

// PushLoopMask saves the loop mask on the stack.
func (b *Builder) PushLoopMask() { b.add(inst(OpPushLoopMask)) }

// PopLoopMask restores the loop mask from the stack.
func (b *Builder) PopLoopMask() { b.add(inst(OpPopLoopMask)) }

// MaskOffLoopMask disables the active lanes in the loop mask, as a break
// does.
func (b *Builder) MaskOffLoopMask() {
	b.add(inst(BuilderOp(rasterpipe.OpMaskOffLoopMask)))
}

// ReenableLoopMask ORs the mask in src back into the loop mask.
func (b *Builder) ReenableLoopMask(src SlotRange) {
	b.registerOp(rasterpipe.OpReenableLoopMask, src, 1)
}

// MergeLoopMask ANDs the mask on the stack top into the loop mask.
func (b *Builder) MergeLoopMask() {
	b.add(inst(BuilderOp(rasterpipe.OpMergeLoopMask)))
}

// PushReturnMask saves the return mask on the stack.
func (b *Builder) PushReturnMask() { b.add(inst(OpPushReturnMask)) }

// PopReturnMask restores the return mask from the stack.
func (b *Builder) PopReturnMask() { b.add(inst(OpPopReturnMask)) }

// MaskOffReturnMask disables the active lanes in the return mask.
func (b *Builder) MaskOffReturnMask() {
	b.add(inst(BuilderOp(rasterpipe.OpMaskOffReturnMask)))
}
