package compiler

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/gogpu/rasterpipe"
)

// Program is a compiled instruction list. It is immutable; AppendStages
// binds it to new slot memory on every call.
type Program struct {
	instrs          []Instruction
	stages          []stage
	labels          map[int]int // label id -> stage index
	numValueSlots   int
	numUniformSlots int
	stacks          stackLayout
	trace           *DebugTrace
}

// Finish validates and compiles the recorded instructions. The Builder is
// left unchanged and may keep recording.
//
// Errors describe a malformed instruction stream: a branch to a label that
// was never placed (ErrUndefinedLabel), a label placed twice
// (ErrDuplicateLabel), an instruction that reads below the bottom of its
// stack (ErrStackUnderflow), or mask pushes and pops that are not strictly
// nested (ErrMaskNesting). Slot operands outside numValueSlots or
// numUniformSlots panic.
func (b *Builder) Finish(numValueSlots, numUniformSlots int, opts ...FinishOption) (*Program, error) {
	o := defaultFinishOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if numValueSlots < 0 || numUniformSlots < 0 {
		panic(fmt.Sprintf("compiler: negative slot counts %d, %d", numValueSlots, numUniformSlots))
	}

	if err := checkLabels(b.instrs); err != nil {
		return nil, err
	}
	// Validate the stream as recorded so errors point at the caller's
	// instruction indices.
	stacks, err := analyzeStacks(b.instrs)
	if err != nil {
		return nil, err
	}

	instrs := slices.Clone(b.instrs)
	if o.optimize {
		instrs = optimize(instrs)
		if stacks, err = analyzeStacks(instrs); err != nil {
			return nil, fmt.Errorf("compiler: optimized program is invalid: %w", err)
		}
	}

	stages, labels := lower(instrs, stacks, numValueSlots, numUniformSlots, o.rewindInterval)
	p := &Program{
		instrs:          instrs,
		stages:          stages,
		labels:          labels,
		numValueSlots:   numValueSlots,
		numUniformSlots: numUniformSlots,
		stacks:          stacks,
		trace:           o.trace,
	}

	rasterpipe.Logger().Debug("compiler: finish",
		slog.Int("recorded", len(b.instrs)),
		slog.Int("optimized", len(instrs)),
		slog.Int("stages", len(stages)),
		slog.Int("value_slots", numValueSlots),
		slog.Int("uniform_slots", numUniformSlots),
		slog.Any("stack_depths", stacks.depths))
	return p, nil
}

// checkLabels reports labels placed twice and branches to labels never
// placed.
func checkLabels(instrs []Instruction) error {
	placed := lo.FilterMap(instrs, func(in Instruction, _ int) (int, bool) {
		return in.ImmA, in.Op == OpLabel
	})
	if dups := lo.FindDuplicates(placed); len(dups) > 0 {
		return fmt.Errorf("%w: label %d", ErrDuplicateLabel, dups[0])
	}
	targets := lo.FilterMap(instrs, func(in Instruction, _ int) (int, bool) {
		return in.ImmA, in.Op.isBranch()
	})
	if missing := lo.Without(lo.Uniq(targets), placed...); len(missing) > 0 {
		return fmt.Errorf("%w: label %d", ErrUndefinedLabel, missing[0])
	}
	return nil
}

// Instructions returns a copy of the instructions after optimization.
func (p *Program) Instructions() []Instruction {
	return slices.Clone(p.instrs)
}

// NumStages returns the number of stages AppendStages adds.
func (p *Program) NumStages() int {
	return len(p.stages)
}

// Ops returns the op of every stage AppendStages adds, in order.
func (p *Program) Ops() []rasterpipe.Op {
	return lo.Map(p.stages, func(s stage, _ int) rasterpipe.Op { return s.op })
}

// NumValueSlots returns the declared number of value slots.
func (p *Program) NumValueSlots() int { return p.numValueSlots }

// NumUniformSlots returns the declared number of uniform slots.
func (p *Program) NumUniformSlots() int { return p.numUniformSlots }

// NumStackSlots returns the slots needed by all temporary stacks together.
func (p *Program) NumStackSlots() int { return p.stacks.total }

// StackDepth returns the maximum depth reached by a temporary stack.
func (p *Program) StackDepth(stack int) int { return p.stacks.depths[stack] }

// AppendStages allocates slot memory from arena and appends the program's
// stages to pipe. uniforms must hold at least NumUniformSlots values; they
// are read when the pipeline runs, not copied.
//
// The returned SlotData gives access to the bound value slots. Running the
// pipeline from several goroutines at once requires separate bindings.
// A program bound more than once adds every binding to its debug trace.
func (p *Program) AppendStages(pipe *rasterpipe.Pipeline, arena *rasterpipe.Arena, uniforms []float32) SlotData {
	if len(uniforms) < p.numUniformSlots {
		panic(fmt.Sprintf("compiler: program needs %d uniforms, got %d", p.numUniformSlots, len(uniforms)))
	}
	mem := SlotData{
		Values: arena.Slots(p.numValueSlots),
		Stack:  arena.Slots(p.stacks.total),
	}

	base := pipe.Len()
	for i := range p.stages {
		s := &p.stages[i]
		pipe.Append(s.op, s.context(mem, uniforms, arena))
	}
	if p.trace != nil {
		p.trace.bind(base, p.Ops())
		pipe.SetTracer(p.trace)
	}

	rasterpipe.Logger().Debug("compiler: append stages",
		slog.Int("first", base),
		slog.Int("stages", len(p.stages)),
		slog.Int("arena_used", arena.Used()))
	return mem
}
