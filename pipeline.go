package rasterpipe

import (
	"fmt"
	"log/slog"
	"strings"
)

// Stage is one appended operation and its context.
type Stage struct {
	Op  Op
	Ctx any
}

// Pipeline is an ordered list of stages executed over pixel rectangles.
//
// Stages are validated and bound to their contexts by Append; a wrong
// context type panics there rather than during Run. A Pipeline is not safe
// for concurrent mutation, but the function returned by Compile may be
// called from several goroutines as long as the stage contexts they write
// do not overlap.
type Pipeline struct {
	stages []Stage
	highp  []highpStage
	opts   options
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

// Append adds a stage. ctx must have the type the op documents: nil for
// stages without a context, an int offset for jumps and branches, a
// []float32 slot run, or one of the *Ctx types.
func (p *Pipeline) Append(op Op, ctx any) {
	if !op.Valid() {
		panic(fmt.Sprintf("rasterpipe: append of invalid op %d", uint16(op)))
	}
	p.highp = append(p.highp, highpBinders[op](op, ctx))
	p.stages = append(p.stages, Stage{Op: op, Ctx: ctx})
}

// AppendStackRewind adds a stack_rewind stage. Dispatch never grows the
// Go stack, so the stage only marks a point in traces and dumps.
func (p *Pipeline) AppendStackRewind() {
	p.Append(OpStackRewind, nil)
}

// AppendConstantColor sets the source color to a premultiplied constant,
// using the dedicated black and white stages when they match exactly.
func (p *Pipeline) AppendConstantColor(r, g, b, a float32) {
	switch {
	case r == 0 && g == 0 && b == 0 && a == 1:
		p.Append(OpBlackColor, nil)
	case r == 1 && g == 1 && b == 1 && a == 1:
		p.Append(OpWhiteColor, nil)
	default:
		p.Append(OpUniformColor, NewUniformColor(r, g, b, a))
	}
}

// Extend appends every stage of other.
func (p *Pipeline) Extend(other *Pipeline) {
	p.stages = append(p.stages, other.stages...)
	p.highp = append(p.highp, other.highp...)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stages returns a copy of the appended stages.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// SetTracer replaces the tracer for subsequent Compile and Run calls.
func (p *Pipeline) SetTracer(t Tracer) {
	p.opts.tracer = t
}

// Precision reports the precision Compile would choose now.
func (p *Pipeline) Precision() Precision {
	return selectPrecision(p.stages, p.opts.precision)
}

// Run executes the pipeline over [x, x+width) × [y, y+height).
// Running an empty pipeline does nothing.
func (p *Pipeline) Run(x, y, width, height int) {
	p.Compile()(x, y, width, height)
}

// Compile freezes the current stage list into a function that runs it.
// Stages appended afterwards do not affect the returned function.
func (p *Pipeline) Compile() func(x, y, width, height int) {
	if len(p.stages) == 0 {
		return func(int, int, int, int) {}
	}

	ops := make([]Op, len(p.stages))
	for i, s := range p.stages {
		ops[i] = s.Op
	}
	tracer := p.opts.tracer
	precision := selectPrecision(p.stages, p.opts.precision)
	Logger().Debug("rasterpipe: compile",
		slog.Int("stages", len(ops)),
		slog.String("precision", precision.String()))

	if precision == PrecisionLow {
		fns := make([]lowpStage, len(p.stages))
		for i, s := range p.stages {
			fns[i] = lowpBinders[s.Op](s.Op, s.Ctx)
		}
		return func(x, y, width, height int) {
			runLowp(fns, ops, tracer, x, y, width, height)
		}
	}

	fns := make([]highpStage, len(p.highp))
	copy(fns, p.highp)
	return func(x, y, width, height int) {
		runHighp(fns, ops, tracer, x, y, width, height)
	}
}

// String lists the stages, one per line.
func (p *Pipeline) String() string {
	var sb strings.Builder
	for i, st := range p.stages {
		fmt.Fprintf(&sb, "%d. %v\n", i, st.Op)
	}
	return sb.String()
}
