package compiler

import (
	"fmt"
	"math"

	"github.com/gogpu/rasterpipe"
)

// space names the storage a stage operand points into.
type space uint8

const (
	spaceNone space = iota
	spaceValue
	spaceStack
	spaceUniform
)

// ref is a slot operand of a lowered stage.
type ref struct {
	space space
	index int
}

// ctxKind selects the context a lowered stage is bound with.
type ctxKind uint8

const (
	ctxNone      ctxKind = iota
	ctxOffset            // int branch offset
	ctxImmediate         // uint32 bit pattern
	ctxRun               // []float32 starting at a
	ctxPair              // *BinaryOpCtx over a and b
	ctxConstant          // *BinaryOpCtx from uniforms at b, or the literal in imm
	ctxTernary           // *TernaryOpCtx over a, b and c
	ctxSwizzle           // *SwizzleCtx over a
)

// stage is a native stage whose operands are still symbolic. Binding turns
// the operands into slices of freshly allocated slot memory.
type stage struct {
	op      rasterpipe.Op
	kind    ctxKind
	a, b, c ref
	n       int
	imm     uint32
	label   int
	offset  int
	swizzle [4]uint16
}

type lowerer struct {
	stages      []stage
	stacks      stackLayout
	depth       map[int]int
	cur         int
	labels      map[int]int
	numValues   int
	numUniforms int
}

// lower translates instructions into stages. Pass one records the stage
// index of every label; pass two patches branch offsets.
func lower(instrs []Instruction, stacks stackLayout, numValues, numUniforms, rewindInterval int) ([]stage, map[int]int) {
	l := &lowerer{
		stacks:      stacks,
		depth:       make(map[int]int, len(stacks.depths)),
		labels:      make(map[int]int),
		numValues:   numValues,
		numUniforms: numUniforms,
	}
	lastRewind := 0
	for i, in := range instrs {
		l.instruction(in)
		if rewindInterval > 0 && len(l.stages)-lastRewind >= rewindInterval && i < len(instrs)-1 {
			l.emit(stage{op: rasterpipe.OpStackRewind})
			lastRewind = len(l.stages)
		}
	}

	for i := range l.stages {
		if s := &l.stages[i]; s.kind == ctxOffset {
			s.offset = l.labels[s.label] - i
		}
	}
	return l.stages, l.labels
}

func (l *lowerer) emit(s stage) {
	l.stages = append(l.stages, s)
}

func (l *lowerer) top() int {
	return l.stacks.bases[l.cur] + l.depth[l.cur]
}

// stack refers to the slot below slots below the current stack top.
func (l *lowerer) stack(below int) ref {
	return ref{space: spaceStack, index: l.top() - below}
}

func (l *lowerer) value(in Instruction, slot, count int) ref {
	if slot < 0 || slot+count > l.numValues {
		panic(fmt.Sprintf("compiler: %v uses value slots %d..%d of %d", in.Op, slot, slot+count-1, l.numValues))
	}
	return ref{space: spaceValue, index: slot}
}

func (l *lowerer) uniform(in Instruction, slot, count int) ref {
	if slot < 0 || slot+count > l.numUniforms {
		panic(fmt.Sprintf("compiler: %v uses uniform slots %d..%d of %d", in.Op, slot, slot+count-1, l.numUniforms))
	}
	return ref{space: spaceUniform, index: slot}
}

// chunked emits a slot family over n slots in runs of at most four.
func (l *lowerer) chunked(member rasterpipe.Op, kind ctxKind, dst, src ref, n int) {
	fam, _ := rasterpipe.FamilyOf(member)
	for n > 0 {
		k := min(n, 4)
		l.emit(stage{op: fam.Select(k), kind: kind, a: dst, b: src, n: k})
		dst.index += k
		src.index += k
		n -= k
	}
}

func (l *lowerer) instruction(in Instruction) {
	switch in.Op {
	case OpLabel:
		l.labels[in.ImmA] = len(l.stages)
	case OpSetCurrentStack:
		l.cur = in.ImmA

	case OpPushLiteral:
		if in.ImmA == 0 {
			l.emit(stage{op: rasterpipe.OpZeroSlotUnmasked, kind: ctxRun, a: l.stack(0), n: 1})
		} else {
			l.emit(stage{op: rasterpipe.OpCopyConstant, kind: ctxConstant, a: l.stack(0), n: 1,
				imm: uint32(int32(in.ImmA))}) // #nosec G115
		}
		l.depth[l.cur]++
	case OpPushZeros:
		l.chunked(rasterpipe.OpZeroSlotUnmasked, ctxRun, l.stack(0), ref{}, in.ImmA)
		l.depth[l.cur] += in.ImmA
	case OpPushSlots:
		l.chunked(rasterpipe.OpCopySlotUnmasked, ctxPair, l.stack(0), l.value(in, in.SlotA, in.ImmA), in.ImmA)
		l.depth[l.cur] += in.ImmA
	case OpPushUniform:
		l.chunked(rasterpipe.OpCopyConstant, ctxConstant, l.stack(0), l.uniform(in, in.SlotA, in.ImmA), in.ImmA)
		l.depth[l.cur] += in.ImmA
	case OpPushClone:
		l.chunked(rasterpipe.OpCopySlotUnmasked, ctxPair, l.stack(0), l.stack(in.ImmB), in.ImmA)
		l.depth[l.cur] += in.ImmA

	case OpCopyStackToSlots:
		l.chunked(rasterpipe.OpCopySlotMasked, ctxPair, l.value(in, in.SlotA, in.ImmA), l.stack(in.ImmB), in.ImmA)
	case OpCopyStackToSlotsUnmasked:
		l.chunked(rasterpipe.OpCopySlotUnmasked, ctxPair, l.value(in, in.SlotA, in.ImmA), l.stack(in.ImmB), in.ImmA)
	case OpDiscardStack:
		l.depth[l.cur] -= in.ImmA
	case OpSelect:
		l.chunked(rasterpipe.OpCopySlotMasked, ctxPair, l.stack(2*in.ImmA), l.stack(in.ImmA), in.ImmA)
		l.depth[l.cur] -= in.ImmA

	case OpPushConditionMask:
		l.pushMask(rasterpipe.OpStoreConditionMask)
	case OpPopConditionMask:
		l.popMask(rasterpipe.OpLoadConditionMask)
	case OpPushLoopMask:
		l.pushMask(rasterpipe.OpStoreLoopMask)
	case OpPopLoopMask:
		l.popMask(rasterpipe.OpLoadLoopMask)
	case OpPushReturnMask:
		l.pushMask(rasterpipe.OpStoreReturnMask)
	case OpPopReturnMask:
		l.popMask(rasterpipe.OpLoadReturnMask)

	default:
		op, ok := in.Op.Native()
		if !ok {
			panic(fmt.Sprintf("compiler: cannot lower %v", in.Op))
		}
		l.native(op, in)
	}
}

func (l *lowerer) pushMask(store rasterpipe.Op) {
	l.emit(stage{op: store, kind: ctxRun, a: l.stack(0), n: 1})
	l.depth[l.cur]++
}

func (l *lowerer) popMask(load rasterpipe.Op) {
	l.emit(stage{op: load, kind: ctxRun, a: l.stack(1), n: 1})
	l.depth[l.cur]--
}

func (l *lowerer) native(op rasterpipe.Op, in Instruction) {
	switch op {
	case rasterpipe.OpJump, rasterpipe.OpBranchIfAnyActiveLanes, rasterpipe.OpBranchIfNoActiveLanes:
		l.emit(stage{op: op, kind: ctxOffset, label: in.ImmA})
		return
	case rasterpipe.OpInitLaneMasks, rasterpipe.OpMaskOffLoopMask, rasterpipe.OpMaskOffReturnMask:
		l.emit(stage{op: op})
		return
	case rasterpipe.OpImmediateF:
		l.emit(stage{op: op, kind: ctxImmediate, imm: uint32(int32(in.ImmA))}) // #nosec G115
		return
	case rasterpipe.OpLoadUnmasked, rasterpipe.OpStoreUnmasked, rasterpipe.OpStoreMasked,
		rasterpipe.OpReenableLoopMask:
		l.emit(stage{op: op, kind: ctxRun, a: l.value(in, in.SlotA, 1), n: 1})
		return
	case rasterpipe.OpStoreSrcRG:
		l.emit(stage{op: op, kind: ctxRun, a: l.value(in, in.SlotA, 2), n: 2})
		return
	case rasterpipe.OpLoadSrc, rasterpipe.OpStoreSrc, rasterpipe.OpLoadDst, rasterpipe.OpStoreDst:
		l.emit(stage{op: op, kind: ctxRun, a: l.value(in, in.SlotA, 4), n: 4})
		return
	case rasterpipe.OpMergeConditionMask, rasterpipe.OpMergeInvConditionMask:
		l.emit(stage{op: op, kind: ctxRun, a: l.stack(2), n: 2})
		return
	case rasterpipe.OpMergeLoopMask:
		l.emit(stage{op: op, kind: ctxRun, a: l.stack(1), n: 1})
		return
	}

	fam, ok := rasterpipe.FamilyOf(op)
	if !ok {
		panic(fmt.Sprintf("compiler: %v is not supported in programs", op))
	}
	n := in.ImmA
	switch {
	case fam.Contains(rasterpipe.OpSwizzle1):
		l.swizzle(fam, op, in)
	case fam.Arity == 0 && fam.Contains(rasterpipe.OpZeroSlotUnmasked):
		l.chunked(op, ctxRun, l.value(in, in.SlotA, n), ref{}, n)
	case fam.Arity == 0:
		l.chunked(op, ctxPair, l.value(in, in.SlotA, n), l.value(in, in.SlotB, n), n)
	case fam.Arity == 1:
		l.chunked(op, ctxRun, l.stack(n), ref{}, n)
	case fam.Arity == 2:
		dst, src := l.stack(2*n), l.stack(n)
		if n <= 4 {
			// The fixed stages read src directly after dst.
			l.emit(stage{op: fam.Select(n), kind: ctxRun, a: dst, b: src, n: n})
		} else {
			l.emit(stage{op: fam.N, kind: ctxPair, a: dst, b: src, n: n})
		}
		l.depth[l.cur] -= n
	case fam.Arity == 3:
		dst, src0, src1 := l.stack(3*n), l.stack(2*n), l.stack(n)
		if n <= 4 {
			l.emit(stage{op: fam.Select(n), kind: ctxRun, a: dst, b: src0, c: src1, n: n})
		} else {
			l.emit(stage{op: fam.N, kind: ctxTernary, a: dst, b: src0, c: src1, n: n})
		}
		l.depth[l.cur] -= 2 * n
	}
}

func (l *lowerer) swizzle(fam *rasterpipe.Family, op rasterpipe.Op, in Instruction) {
	k := fixedWidth(fam, op)
	s := stage{op: op, kind: ctxSwizzle, a: l.stack(in.ImmA), n: k}
	for i := 0; i < k; i++ {
		switch nib := (in.ImmB >> (4 * i)) & 0xF; nib {
		case swizzleNibbleZero:
			s.swizzle[i] = rasterpipe.SwizzleOffsetZero
		case swizzleNibbleOne:
			s.swizzle[i] = rasterpipe.SwizzleOffsetOne
		default:
			s.swizzle[i] = uint16(nib) // #nosec G115
		}
	}
	l.emit(s)
	l.depth[l.cur] += k - in.ImmA
}

// SlotData is the memory a Program was bound to by AppendStages. Each slot
// holds rasterpipe.HighpStride lanes; integer values are stored as their
// bit patterns.
type SlotData struct {
	Values []float32
	Stack  []float32
}

// Value returns lane lane of value slot slot.
func (d SlotData) Value(slot, lane int) float32 {
	return d.Values[slot*rasterpipe.HighpStride+lane]
}

func (d SlotData) run(r ref) []float32 {
	switch r.space {
	case spaceValue:
		return d.Values[r.index*rasterpipe.HighpStride:]
	case spaceStack:
		return d.Stack[r.index*rasterpipe.HighpStride:]
	}
	return nil
}

// context builds the stage context over bound memory.
func (s *stage) context(mem SlotData, uniforms []float32, arena *rasterpipe.Arena) any {
	switch s.kind {
	case ctxOffset:
		return s.offset
	case ctxImmediate:
		return s.imm
	case ctxRun:
		return mem.run(s.a)
	case ctxPair:
		return &rasterpipe.BinaryOpCtx{Dst: mem.run(s.a), Src: mem.run(s.b), Slots: s.n}
	case ctxConstant:
		var src []float32
		if s.b.space == spaceUniform {
			src = uniforms[s.b.index : s.b.index+s.n]
		} else {
			src = arena.Floats(1)
			src[0] = math.Float32frombits(s.imm)
		}
		return &rasterpipe.BinaryOpCtx{Dst: mem.run(s.a), Src: src, Slots: s.n}
	case ctxTernary:
		return &rasterpipe.TernaryOpCtx{Dst: mem.run(s.a), Src0: mem.run(s.b), Src1: mem.run(s.c), Slots: s.n}
	case ctxSwizzle:
		return &rasterpipe.SwizzleCtx{Slots: mem.run(s.a), Offsets: s.swizzle}
	}
	return nil
}
