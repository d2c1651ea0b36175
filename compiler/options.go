package compiler

// FinishOption configures Builder.Finish.
//
// Example:
//
//	trace := compiler.NewDebugTrace()
//	prog, err := b.Finish(16, 4,
//	    compiler.WithDebugTrace(trace),
//	    compiler.WithRewindInterval(32))
type FinishOption func(*finishOptions)

type finishOptions struct {
	trace          *DebugTrace
	rewindInterval int
	optimize       bool
}

func defaultFinishOptions() finishOptions {
	return finishOptions{optimize: true}
}

// WithDebugTrace attaches a DebugTrace. AppendStages installs it as the
// pipeline tracer, replacing any tracer set before.
func WithDebugTrace(t *DebugTrace) FinishOption {
	return func(o *finishOptions) {
		o.trace = t
	}
}

// WithRewindInterval inserts a stack_rewind stage at the first instruction
// boundary after every n lowered stages. Zero or a negative n disables it.
func WithRewindInterval(n int) FinishOption {
	return func(o *finishOptions) {
		o.rewindInterval = max(n, 0)
	}
}

// WithoutOptimization skips the peephole pass. The instruction list is
// lowered exactly as recorded.
func WithoutOptimization() FinishOption {
	return func(o *finishOptions) {
		o.optimize = false
	}
}
