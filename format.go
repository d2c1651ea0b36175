package rasterpipe

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/gogpu/rasterpipe/internal/color"
)

// pixelFormat describes one memory layout the load and store stages
// understand. Channels missing from a format load as 0, except alpha,
// which loads as 1 for formats without an alpha channel.
type pixelFormat struct {
	name  string
	bpp   int
	load  func(px []byte) (r, g, b, a float32)
	store func(px []byte, r, g, b, a float32)
}

var le = binary.LittleEndian

func half(px []byte) float32 {
	return float16.Frombits(le.Uint16(px)).Float32()
}

func putHalf(px []byte, v float32) {
	le.PutUint16(px, float16.Fromfloat32(v).Bits())
}

func unorm16(px []byte) float32 {
	return color.FromUnorm16(le.Uint16(px))
}

func putUnorm16(px []byte, v float32) {
	le.PutUint16(px, color.ToUnorm16(v))
}

func float32At(px []byte) float32 {
	return math.Float32frombits(le.Uint32(px))
}

func putFloat32(px []byte, v float32) {
	le.PutUint32(px, math.Float32bits(v))
}

var (
	formatA8 = &pixelFormat{
		name: "a8", bpp: 1,
		load: func(px []byte) (r, g, b, a float32) {
			return 0, 0, 0, color.FromUnorm8(px[0])
		},
		store: func(px []byte, _, _, _, a float32) {
			px[0] = color.ToUnorm8(a)
		},
	}
	formatRG88 = &pixelFormat{
		name: "rg88", bpp: 2,
		load: func(px []byte) (r, g, b, a float32) {
			return color.FromUnorm8(px[0]), color.FromUnorm8(px[1]), 0, 1
		},
		store: func(px []byte, r, g, _, _ float32) {
			px[0], px[1] = color.ToUnorm8(r), color.ToUnorm8(g)
		},
	}
	format8888 = &pixelFormat{
		name: "8888", bpp: 4,
		load: func(px []byte) (r, g, b, a float32) {
			return color.FromUnorm8(px[0]), color.FromUnorm8(px[1]),
				color.FromUnorm8(px[2]), color.FromUnorm8(px[3])
		},
		store: func(px []byte, r, g, b, a float32) {
			px[0], px[1] = color.ToUnorm8(r), color.ToUnorm8(g)
			px[2], px[3] = color.ToUnorm8(b), color.ToUnorm8(a)
		},
	}
	formatA16 = &pixelFormat{
		name: "a16", bpp: 2,
		load: func(px []byte) (r, g, b, a float32) {
			return 0, 0, 0, unorm16(px)
		},
		store: func(px []byte, _, _, _, a float32) {
			putUnorm16(px, a)
		},
	}
	formatRG1616 = &pixelFormat{
		name: "rg1616", bpp: 4,
		load: func(px []byte) (r, g, b, a float32) {
			return unorm16(px), unorm16(px[2:]), 0, 1
		},
		store: func(px []byte, r, g, _, _ float32) {
			putUnorm16(px, r)
			putUnorm16(px[2:], g)
		},
	}
	format16161616 = &pixelFormat{
		name: "16161616", bpp: 8,
		load: func(px []byte) (r, g, b, a float32) {
			return unorm16(px), unorm16(px[2:]), unorm16(px[4:]), unorm16(px[6:])
		},
		store: func(px []byte, r, g, b, a float32) {
			putUnorm16(px, r)
			putUnorm16(px[2:], g)
			putUnorm16(px[4:], b)
			putUnorm16(px[6:], a)
		},
	}
	formatAF16 = &pixelFormat{
		name: "af16", bpp: 2,
		load: func(px []byte) (r, g, b, a float32) {
			return 0, 0, 0, half(px)
		},
		store: func(px []byte, _, _, _, a float32) {
			putHalf(px, a)
		},
	}
	formatRGF16 = &pixelFormat{
		name: "rgf16", bpp: 4,
		load: func(px []byte) (r, g, b, a float32) {
			return half(px), half(px[2:]), 0, 1
		},
		store: func(px []byte, r, g, _, _ float32) {
			putHalf(px, r)
			putHalf(px[2:], g)
		},
	}
	formatF16 = &pixelFormat{
		name: "f16", bpp: 8,
		load: func(px []byte) (r, g, b, a float32) {
			return half(px), half(px[2:]), half(px[4:]), half(px[6:])
		},
		store: func(px []byte, r, g, b, a float32) {
			putHalf(px, r)
			putHalf(px[2:], g)
			putHalf(px[4:], b)
			putHalf(px[6:], a)
		},
	}
	formatRGF32 = &pixelFormat{
		name: "rgf32", bpp: 8,
		load: func(px []byte) (r, g, b, a float32) {
			return float32At(px), float32At(px[4:]), 0, 1
		},
		store: func(px []byte, r, g, _, _ float32) {
			putFloat32(px, r)
			putFloat32(px[4:], g)
		},
	}
	formatF32 = &pixelFormat{
		name: "f32", bpp: 16,
		load: func(px []byte) (r, g, b, a float32) {
			return float32At(px), float32At(px[4:]), float32At(px[8:]), float32At(px[12:])
		},
		store: func(px []byte, r, g, b, a float32) {
			putFloat32(px, r)
			putFloat32(px[4:], g)
			putFloat32(px[8:], b)
			putFloat32(px[12:], a)
		},
	}
)

// memoryOp binds a load or store stage to its format.
type memoryOp struct {
	format *pixelFormat
	store  bool
	dst    bool // load into dr..da
}

var memoryOps = map[Op]memoryOp{
	OpLoadA8:         {format: formatA8},
	OpLoadA8Dst:      {format: formatA8, dst: true},
	OpStoreA8:        {format: formatA8, store: true},
	OpLoadRG88:       {format: formatRG88},
	OpStoreRG88:      {format: formatRG88, store: true},
	OpLoad8888:       {format: format8888},
	OpLoad8888Dst:    {format: format8888, dst: true},
	OpStore8888:      {format: format8888, store: true},
	OpLoadA16:        {format: formatA16},
	OpStoreA16:       {format: formatA16, store: true},
	OpLoadRG1616:     {format: formatRG1616},
	OpStoreRG1616:    {format: formatRG1616, store: true},
	OpLoad16161616:   {format: format16161616},
	OpStore16161616:  {format: format16161616, store: true},
	OpLoadAF16:       {format: formatAF16},
	OpStoreAF16:      {format: formatAF16, store: true},
	OpLoadRGF16:      {format: formatRGF16},
	OpStoreRGF16:     {format: formatRGF16, store: true},
	OpLoadF16:        {format: formatF16},
	OpLoadF16Dst:     {format: formatF16, dst: true},
	OpStoreF16:       {format: formatF16, store: true},
	OpLoadRGF32:      {format: formatRGF32},
	OpStoreRGF32:     {format: formatRGF32, store: true},
	OpLoadF32:        {format: formatF32},
	OpStoreF32:       {format: formatF32, store: true},
}

// pixelBytes returns the bytes of n pixels starting at (dx, dy).
func (c *MemoryCtx) pixelBytes(dx, dy, n, bpp int) []byte {
	off := (dy*c.Stride + dx) * bpp
	return c.Pixels[off : off+n*bpp]
}
