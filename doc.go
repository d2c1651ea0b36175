// Package rasterpipe runs per-pixel stage programs over rectangular pixel
// regions.
//
// # Overview
//
// A Pipeline is an ordered list of stages. Each stage is an Op paired with
// a context: a pixel buffer, a run of value slots, a constant or a branch
// offset. Run executes the stages for every lane group of the requested
// rectangle, row by row, with a final partial group when the width is not a
// multiple of the lane count.
//
// # Quick Start
//
//	pixels := make([]byte, 4*w*h)
//	mem := &rasterpipe.MemoryCtx{Pixels: pixels, Stride: w}
//
//	p := rasterpipe.New()
//	p.Append(rasterpipe.OpLoad8888Dst, mem)
//	p.AppendConstantColor(0.5, 0, 0, 0.5)
//	p.Append(rasterpipe.OpSrcOver, nil)
//	p.Append(rasterpipe.OpStore8888, mem)
//	p.Run(0, 0, w, h)
//
// # Precision
//
// Stages run either on eight float32 lanes or on sixteen 8-bit lanes held in
// uint16. The narrow path is chosen only when every stage of the pipeline
// implements it; one float-only stage moves the whole program to floats.
// WithPrecision(PrecisionHigh) forces floats.
//
// # Dispatch
//
// Each bound stage returns the offset of the next stage to run, and a flat
// loop drives the chain. Branches return their target offset. Stack usage
// stays constant however long the program is.
//
// # Execution masks
//
// The float path carries condition, loop and return masks. Their
// conjunction is the active mask that gates masked slot writes and the
// branch_if_any_active_lanes / branch_if_no_active_lanes stages. Masks start
// cleared in every lane group; init_lane_masks enables the lanes that map to
// pixels.
//
// Slot programs are normally produced by the compiler package rather than
// appended by hand.
package rasterpipe
