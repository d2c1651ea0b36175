// Package compiler turns a stack-machine instruction list into stages of a
// rasterpipe.Pipeline.
//
// A front end records instructions with a Builder. Values live in
// persistent value slots, in uniform slots supplied at bind time, and on
// one or more temporary stacks. Divergent control flow is expressed with
// the condition, loop and return execution masks, labels and branches.
//
// # Usage
//
//	var b compiler.Builder
//	b.InitLaneMasks()
//	b.PushLiteralF(2)
//	b.PushUniform(compiler.SlotRange{Index: 0, Count: 1})
//	b.BinaryOp(rasterpipe.OpMulNFloats, 1)
//	b.PopSlots(compiler.SlotRange{Index: 0, Count: 1})
//
//	prog, err := b.Finish(1, 1)
//	if err != nil {
//	    return err
//	}
//
//	p := rasterpipe.New()
//	slots := prog.AppendStages(p, rasterpipe.NewArena(0), []float32{21})
//	p.Run(0, 0, 8, 1)
//	// slots.Value(0, lane) == 42
//
// # Compilation
//
// Finish validates labels, runs a peephole pass, computes the maximum depth
// of every temporary stack and lowers the instructions into native stages.
// Multi-slot operations are split through rasterpipe.Family: counts of 1 to
// 4 use the fixed specializations, larger counts use the N-slot op or
// chunks of 4. Branch offsets are patched in a second pass, so forward and
// backward references are both allowed.
//
// A Program is immutable. AppendStages binds it to fresh slot memory from
// an Arena each time, so one Program can be appended to several pipelines
// and run concurrently on disjoint buffers.
package compiler
