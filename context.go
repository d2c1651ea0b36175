package rasterpipe

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/rasterpipe/internal/color"
)

// MemoryCtx addresses a pixel buffer for the load and store stages.
// Pixel (x, y) starts at byte (y*Stride + x) * bytesPerPixel; multi-byte
// channels are little-endian.
type MemoryCtx struct {
	Pixels []byte
	Stride int // in pixels
}

// BinaryOpCtx names two slot runs of Slots slots each. The N-slot binary
// stages compute Dst = Dst op Src. The slot copy stages copy Src into Dst
// and take the count from the op; for copy_constant and its wider forms
// Src holds one scalar per slot, broadcast to every lane.
type BinaryOpCtx struct {
	Dst, Src []float32
	Slots    int
}

// TernaryOpCtx names three slot runs for the N-slot ternary stages.
type TernaryOpCtx struct {
	Dst, Src0, Src1 []float32
	Slots           int
}

// Swizzle offsets that select a constant instead of a source slot.
const (
	SwizzleOffsetZero uint16 = 0xFFFE
	SwizzleOffsetOne  uint16 = 0xFFFF
)

// SwizzleCtx rearranges slots in place: output slot i of Slots takes the
// value of slot Offsets[i], or a constant for the sentinel offsets.
type SwizzleCtx struct {
	Slots   []float32
	Offsets [4]uint16
}

// UniformColorCtx is a constant color for both precisions.
type UniformColorCtx struct {
	R, G, B, A float32
	RGBA       [4]uint16 // 0..255, used by low precision stages
}

// NewUniformColor returns a UniformColorCtx for a premultiplied color with
// components in [0, 1].
func NewUniformColor(r, g, b, a float32) *UniformColorCtx {
	return &UniformColorCtx{
		R: r, G: g, B: b, A: a,
		RGBA: [4]uint16{
			uint16(color.ToUnorm8(r)), uint16(color.ToUnorm8(g)),
			uint16(color.ToUnorm8(b)), uint16(color.ToUnorm8(a)),
		},
	}
}

// CallbackCtx hands the source registers to Fn. Before the call RGBA holds
// the active pixels interleaved (r, g, b, a per pixel); whatever Fn leaves
// there is loaded back into the registers.
type CallbackCtx struct {
	Fn   func(ctx *CallbackCtx, active int)
	RGBA [4 * HighpStride]float32
}

// Matrix2x3Ctx transforms the coordinates in r and g:
// r' = M[0]*r + M[1]*g + M[2], g' = M[3]*r + M[4]*g + M[5].
type Matrix2x3Ctx struct {
	M f32.Aff3
}

// swizzleChannels maps the characters accepted by the swizzle stage to
// register indices; 4 and 5 select constant zero and one.
var swizzleChannels = map[byte]int{'r': 0, 'g': 1, 'b': 2, 'a': 3, '0': 4, '1': 5}

// colorSwizzle validates a swizzle stage context.
func colorSwizzle(ctx [4]byte) [4]int {
	var idx [4]int
	for i, c := range ctx {
		ch, ok := swizzleChannels[c]
		if !ok {
			panic(fmt.Sprintf("rasterpipe: invalid swizzle channel %q", c))
		}
		idx[i] = ch
	}
	return idx
}

// contextAs asserts the stage context type.
func contextAs[T any](op Op, ctx any) T {
	v, ok := ctx.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("rasterpipe: %v expects context %T, got %T", op, zero, ctx))
	}
	return v
}

// slotRun checks that s holds n slots.
func slotRun(op Op, s []float32, n int) []float32 {
	if len(s) < n*HighpStride {
		panic(fmt.Sprintf("rasterpipe: %v needs %d slots, context holds %d floats", op, n, len(s)))
	}
	return s[:n*HighpStride]
}

// branchOffset validates a jump or branch context.
func branchOffset(op Op, ctx any) int {
	off := contextAs[int](op, ctx)
	if off == 0 {
		panic(fmt.Sprintf("rasterpipe: %v with zero offset", op))
	}
	return off
}
