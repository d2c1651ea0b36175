package compiler

import "github.com/gogpu/rasterpipe"

// peepholeAction says how two adjacent instructions were combined.
type peepholeAction int

const (
	keepBoth peepholeAction = iota
	dropCur                 // cur was folded into prev
	dropPrev                // prev is dead; cur may have changed
	dropBoth
)

// optimize applies the local rewrites until none fires. Only adjacent
// instructions are combined, and labels never combine with anything but a
// jump to themselves, so no rewrite reaches across a label.
func optimize(instrs []Instruction) []Instruction {
	out := instrs
	for {
		var a, b bool
		out, a = peephole(out)
		out, b = removeUnreachable(out)
		if !a && !b {
			return out
		}
	}
}

func peephole(instrs []Instruction) ([]Instruction, bool) {
	out := make([]Instruction, 0, len(instrs))
	changed := false
	for _, cur := range instrs {
	retry:
		for {
			if len(out) == 0 {
				out = append(out, cur)
				break
			}
			switch combine(&out[len(out)-1], &cur) {
			case keepBoth:
				out = append(out, cur)
				break retry
			case dropCur:
				changed = true
				break retry
			case dropPrev:
				out = out[:len(out)-1]
				changed = true
			case dropBoth:
				out = out[:len(out)-1]
				changed = true
				break retry
			}
		}
	}
	return out, changed
}

func combine(prev, cur *Instruction) peepholeAction {
	switch {
	case cur.Op == OpDiscardStack && isPush(prev.Op):
		pushed, dropped := pushCount(*prev), cur.ImmA
		switch {
		case dropped < pushed:
			prev.ImmA -= dropped
			return dropCur
		case dropped == pushed:
			return dropBoth
		default:
			cur.ImmA -= pushed
			return dropPrev
		}

	case cur.Op == OpDiscardStack && prev.Op == OpDiscardStack,
		cur.Op == OpPushZeros && prev.Op == OpPushZeros:
		prev.ImmA += cur.ImmA
		return dropCur

	case (cur.Op == OpPushSlots || cur.Op == OpPushUniform) &&
		prev.Op == cur.Op && prev.SlotA+prev.ImmA == cur.SlotA:
		prev.ImmA += cur.ImmA
		return dropCur

	case overwrites(*prev, *cur):
		return dropPrev

	case cur.Op == OpLabel && prev.Op == BuilderOp(rasterpipe.OpJump) && prev.ImmA == cur.ImmA:
		return dropPrev
	}
	return keepBoth
}

func isPush(op BuilderOp) bool {
	switch op {
	case OpPushLiteral, OpPushSlots, OpPushUniform, OpPushZeros, OpPushClone:
		return true
	}
	return false
}

func pushCount(in Instruction) int {
	if in.Op == OpPushLiteral {
		return 1
	}
	return in.ImmA
}

// slotWrite returns the value slots in writes, if it writes any.
func slotWrite(in Instruction) (SlotRange, bool) {
	switch in.Op {
	case OpCopyStackToSlots, OpCopyStackToSlotsUnmasked,
		BuilderOp(rasterpipe.OpCopySlotMasked),
		BuilderOp(rasterpipe.OpCopySlotUnmasked),
		BuilderOp(rasterpipe.OpZeroSlotUnmasked):
		return SlotRange{Index: in.SlotA, Count: in.ImmA}, true
	}
	return SlotRange{}, false
}

// overwrites reports whether cur replaces every lane prev wrote without
// reading it first.
func overwrites(prev, cur Instruction) bool {
	written, ok := slotWrite(prev)
	if !ok {
		return false
	}
	switch cur.Op {
	case OpCopyStackToSlotsUnmasked, BuilderOp(rasterpipe.OpZeroSlotUnmasked):
	case BuilderOp(rasterpipe.OpCopySlotUnmasked):
		if cur.SlotB < written.Index+written.Count && written.Index < cur.SlotB+cur.ImmA {
			return false
		}
	default:
		return false
	}
	return cur.SlotA == written.Index && cur.ImmA == written.Count
}

// removeUnreachable drops the instructions between an unconditional jump
// and the next label when they leave the stack depth unchanged and push or
// pop no mask, so neither the depth nor the mask nesting seen at the label
// moves.
func removeUnreachable(instrs []Instruction) ([]Instruction, bool) {
	out := make([]Instruction, 0, len(instrs))
	changed := false
	for i := 0; i < len(instrs); i++ {
		out = append(out, instrs[i])
		if instrs[i].Op != BuilderOp(rasterpipe.OpJump) {
			continue
		}
		end := i + 1
		for end < len(instrs) && instrs[end].Op != OpLabel {
			end++
		}
		if end > i+1 && stackBalanced(instrs[i+1:end]) {
			i = end - 1
			changed = true
		}
	}
	return out, changed
}

func stackBalanced(instrs []Instruction) bool {
	sum := 0
	for _, in := range instrs {
		switch in.Op {
		case OpSetCurrentStack,
			OpPushConditionMask, OpPopConditionMask,
			OpPushLoopMask, OpPopLoopMask,
			OpPushReturnMask, OpPopReturnMask:
			return false
		}
		_, delta := stackEffect(in)
		sum += delta
	}
	return sum == 0
}
